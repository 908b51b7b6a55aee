package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/internal/application/usecase"
)

// BlogHandler maneja las peticiones HTTP para entradas de blog (protegido).
type BlogHandler struct {
	uc *usecase.BlogUseCase
}

// NewBlogHandler construye el handler.
func NewBlogHandler(uc *usecase.BlogUseCase) *BlogHandler {
	return &BlogHandler{uc: uc}
}

// Create godoc
// @Summary      Crear entrada de blog
// @Tags         blogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBlogRequest  true  "Datos de la entrada"
// @Success      201   {object}  dto.BlogResponse
// @Failure      403   {object}  dto.QuotaErrorResponse
// @Router       /api/blogs [post]
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	var in dto.CreateBlogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	out, err := h.uc.Create(c.UserContext(), tc, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *BlogHandler) GetByID(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	out, err := h.uc.GetByID(c.UserContext(), tc, c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	}
	return c.JSON(out)
}

func (h *BlogHandler) List(c *fiber.Ctx) error {
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

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	var in dto.UpdateBlogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), tc, c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	}
	return c.JSON(out)
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	if err := h.uc.Delete(c.UserContext(), tc, c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
