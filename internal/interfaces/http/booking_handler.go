package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/malithvisio/magcin-api/internal/application/booking"
	"github.com/malithvisio/magcin-api/internal/application/dto"
)

// BookingHandler maneja reservas. Create es público (el visitante del sitio
// reserva sin cuenta); el resto requiere el TenantContext del admin.
type BookingHandler struct {
	uc *booking.UseCase
}

// NewBookingHandler construye el handler.
func NewBookingHandler(uc *booking.UseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// Create godoc
// @Summary      Crear reserva (público, sin auth)
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookingRequest  true  "Datos de la reserva"
// @Success      201   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/public/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PackageID == "" || in.RootUserID == "" || in.CustomerName == "" || in.CustomerEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "package_id, root_user_id, customer_name y customer_email son requeridos"})
	}
	if in.GuestCount < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "guest_count debe ser al menos 1"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar reservas del tenant
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Success      200     {object}  dto.BookingListResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	limit, offset := pagination(c)
	out, err := h.uc.List(c.UserContext(), tc, c.Query("status"), limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

func (h *BookingHandler) GetByID(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	out, err := h.uc.GetByID(c.UserContext(), tc, c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva no encontrada"})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Transicionar estado de la reserva
// @Tags         bookings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la reserva"
// @Param        body  body  dto.UpdateBookingStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.BookingResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/status [put]
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	var in dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), tc, c.Params("id"), in.Status)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva no encontrada"})
	}
	return c.JSON(out)
}

func (h *BookingHandler) UpdatePaymentStatus(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	var in dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdatePaymentStatus(c.UserContext(), tc, c.Params("id"), in.PaymentStatus)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva no encontrada"})
	}
	return c.JSON(out)
}

func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	if err := h.uc.Delete(c.UserContext(), tc, c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Voucher godoc
// @Summary      Descargar el voucher PDF de la reserva
// @Tags         bookings
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la reserva"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/voucher [get]
func (h *BookingHandler) Voucher(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	pdfBytes, err := h.uc.Voucher(c.UserContext(), tc, c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="voucher.pdf"`)
	return c.Send(pdfBytes)
}
