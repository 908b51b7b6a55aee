package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/malithvisio/magcin-api/internal/application/analytics"
	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/internal/application/quota"
)

// StatsHandler dashboard del admin: resumen agregado, actividad reciente y
// uso del plan.
type StatsHandler struct {
	stats  *analytics.StatsUseCase
	ledger *quota.Ledger
}

// NewStatsHandler construye el handler.
func NewStatsHandler(stats *analytics.StatsUseCase, ledger *quota.Ledger) *StatsHandler {
	return &StatsHandler{stats: stats, ledger: ledger}
}

// Dashboard godoc
// @Summary      Resumen agregado del dashboard
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/stats/dashboard [get]
func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	out, err := h.stats.GetStats(c.UserContext(), tc.RootUserID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// RecentActivity godoc
// @Summary      Feed de actividad reciente (máximo 10 elementos)
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RecentActivityDTO
// @Router       /api/stats/recent [get]
func (h *StatsHandler) RecentActivity(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	out, err := h.stats.RecentActivity(c.UserContext(), tc.RootUserID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// PlanUsage godoc
// @Summary      Uso del plan de suscripción (usado vs límite por kind)
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PlanUsageResponse
// @Router       /api/stats/usage [get]
func (h *StatsHandler) PlanUsage(c *fiber.Ctx) error {
	tc, ok := GetTenantContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "autenticación requerida"})
	}
	out, err := h.ledger.UsageReport(c.UserContext(), tc.RootUserID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
