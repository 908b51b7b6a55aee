package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/pkg/jwt"
)

// Locals keys para los datos del token y el TenantContext resuelto en Fiber.
const (
	LocalTokenData     = "token_data"
	LocalTenantContext = "tenant_context"
)

// AuthMiddleware valida el Bearer Token JWT y deja los datos del token en
// c.Locals. La resolución del TenantContext contra la base ocurre después,
// en TenantMiddleware: el token solo identifica, no autoriza.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		data, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalTokenData, data)
		return c.Next()
	}
}

// GetTokenData devuelve los datos del token (después del middleware de auth).
func GetTokenData(c *fiber.Ctx) (jwt.TokenData, bool) {
	v := c.Locals(LocalTokenData)
	if v == nil {
		return jwt.TokenData{}, false
	}
	data, ok := v.(jwt.TokenData)
	return data, ok
}
