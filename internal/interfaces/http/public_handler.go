package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/internal/application/usecase"
)

// PublicHandler superficie de lectura del sitio público: solo contenido
// publicado, alcanzado por el root user dueño del sitio (path param). Sin
// auth; los borradores jamás salen por acá.
type PublicHandler struct {
	packages     *usecase.PackageUseCase
	destinations *usecase.DestinationUseCase
	activities   *usecase.ActivityUseCase
	blogs        *usecase.BlogUseCase
	testimonials *usecase.TestimonialUseCase
	team         *usecase.TeamUseCase
}

// NewPublicHandler construye el handler.
func NewPublicHandler(
	packages *usecase.PackageUseCase,
	destinations *usecase.DestinationUseCase,
	activities *usecase.ActivityUseCase,
	blogs *usecase.BlogUseCase,
	testimonials *usecase.TestimonialUseCase,
	team *usecase.TeamUseCase,
) *PublicHandler {
	return &PublicHandler{
		packages:     packages,
		destinations: destinations,
		activities:   activities,
		blogs:        blogs,
		testimonials: testimonials,
		team:         team,
	}
}

// ListPackages godoc
// @Summary      Listar paquetes publicados del sitio
// @Tags         public
// @Produce      json
// @Param        rootUserId  path  string  true  "Root user dueño del sitio"
// @Success      200  {object}  dto.PackageListResponse
// @Router       /api/public/{rootUserId}/packages [get]
func (h *PublicHandler) ListPackages(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.packages.ListPublished(c.UserContext(), c.Params("rootUserId"), limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetPackageBySlug godoc
// @Summary      Detalle público de un paquete por slug
// @Tags         public
// @Produce      json
// @Param        rootUserId  path  string  true  "Root user dueño del sitio"
// @Param        slug        path  string  true  "Slug del paquete"
// @Success      200  {object}  dto.PackageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/{rootUserId}/packages/{slug} [get]
func (h *PublicHandler) GetPackageBySlug(c *fiber.Ctx) error {
	out, err := h.packages.GetPublishedBySlug(c.UserContext(), c.Params("rootUserId"), c.Params("slug"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "paquete no encontrado"})
	}
	return c.JSON(out)
}

func (h *PublicHandler) ListDestinations(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.destinations.ListPublished(c.UserContext(), c.Params("rootUserId"), limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

func (h *PublicHandler) GetDestinationBySlug(c *fiber.Ctx) error {
	out, err := h.destinations.GetPublishedBySlug(c.UserContext(), c.Params("rootUserId"), c.Params("slug"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "destino no encontrado"})
	}
	return c.JSON(out)
}

func (h *PublicHandler) ListActivities(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.activities.ListPublished(c.UserContext(), c.Params("rootUserId"), limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

func (h *PublicHandler) GetActivityBySlug(c *fiber.Ctx) error {
	out, err := h.activities.GetPublishedBySlug(c.UserContext(), c.Params("rootUserId"), c.Params("slug"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actividad no encontrada"})
	}
	return c.JSON(out)
}

func (h *PublicHandler) ListBlogs(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.blogs.ListPublished(c.UserContext(), c.Params("rootUserId"), limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

func (h *PublicHandler) GetBlogBySlug(c *fiber.Ctx) error {
	out, err := h.blogs.GetPublishedBySlug(c.UserContext(), c.Params("rootUserId"), c.Params("slug"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	}
	return c.JSON(out)
}

func (h *PublicHandler) ListTestimonials(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.testimonials.ListPublished(c.UserContext(), c.Params("rootUserId"), limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

func (h *PublicHandler) ListTeam(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.team.ListPublished(c.UserContext(), c.Params("rootUserId"), limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
