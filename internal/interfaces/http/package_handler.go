package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/internal/application/usecase"
)

// PackageHandler maneja las peticiones HTTP para paquetes turísticos (protegido).
type PackageHandler struct {
	uc *usecase.PackageUseCase
}

// NewPackageHandler construye el handler.
func NewPackageHandler(uc *usecase.PackageUseCase) *PackageHandler {
	return &PackageHandler{uc: uc}
}

// Create godoc
// @Summary      Crear paquete turístico
// @Tags         packages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePackageRequest  true  "Datos del paquete"
// @Success      201   {object}  dto.PackageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.QuotaErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/packages [post]
func (h *PackageHandler) Create(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	var in dto.CreatePackageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(c.UserContext(), tc, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener paquete por ID
// @Tags         packages
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del paquete"
// @Success      200  {object}  dto.PackageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/packages/{id} [get]
func (h *PackageHandler) GetByID(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	out, err := h.uc.GetByID(c.UserContext(), tc, c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "paquete no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar paquetes del tenant (incluye borradores)
// @Tags         packages
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PackageListResponse
// @Router       /api/packages [get]
func (h *PackageHandler) List(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	limit, offset := pagination(c)
	out, err := h.uc.List(c.UserContext(), tc, limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar paquete
// @Tags         packages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del paquete"
// @Param        body  body  dto.UpdatePackageRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PackageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/packages/{id} [put]
func (h *PackageHandler) Update(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	var in dto.UpdatePackageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), tc, c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "paquete no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar paquete
// @Tags         packages
// @Security     Bearer
// @Param        id  path  string  true  "ID del paquete"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/packages/{id} [delete]
func (h *PackageHandler) Delete(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	if err := h.uc.Delete(c.UserContext(), tc, c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reorder godoc
// @Summary      Reordenar paquetes (drag-and-drop del admin)
// @Tags         packages
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.ReorderRequest  true  "IDs en el orden deseado"
// @Success      204
// @Router       /api/packages/reorder [put]
func (h *PackageHandler) Reorder(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	var in dto.ReorderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Reorder(c.UserContext(), tc, in.OrderedIDs); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
