package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/internal/application/tenant"
	"github.com/malithvisio/magcin-api/internal/domain"
)

// TenantMiddleware resuelve el TenantContext del caller contra la cuenta
// almacenada en cada request. El token identifica; este middleware decide si
// la cuenta sigue existiendo, está activa y pertenece al tenant que reclama.
func TenantMiddleware(resolver *tenant.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, ok := GetTokenData(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
		}
		tc, err := resolver.Resolve(c.UserContext(), data.UserID, data.CompanyID, data.TenantID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUnauthenticated):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
			case errors.Is(err, domain.ErrAccountNotFound):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "ACCOUNT_NOT_FOUND", Message: "la cuenta no existe"})
			case errors.Is(err, domain.ErrAccountInactive):
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCOUNT_INACTIVE", Message: "la cuenta está desactivada"})
			case errors.Is(err, domain.ErrTenantMismatch):
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "TENANT_MISMATCH", Message: "la cuenta no pertenece a la empresa indicada"})
			case errors.Is(err, domain.ErrUnauthorized):
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta sin rol asignado"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Locals(LocalTenantContext, tc)
		return c.Next()
	}
}

// GetTenantContext devuelve el TenantContext resuelto (después de TenantMiddleware).
func GetTenantContext(c *fiber.Ctx) (domain.TenantContext, bool) {
	v := c.Locals(LocalTenantContext)
	if v == nil {
		return domain.TenantContext{}, false
	}
	tc, ok := v.(domain.TenantContext)
	return tc, ok
}
