package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContentCountDTO conteos de un kind de contenido.
type ContentCountDTO struct {
	Kind      string `json:"kind"`
	Total     int    `json:"total"`
	Published int    `json:"published"`
	Draft     int    `json:"draft"`
}

// RecentItemDTO elemento del feed de actividad reciente.
type RecentItemDTO struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardStatsDTO resumen del dashboard. Forma fija: un tenant sin datos
// recibe todos los campos en cero, nunca null, para que el frontend no tenga
// que chequear campo por campo.
type DashboardStatsDTO struct {
	TotalBookings     int               `json:"total_bookings"`
	TotalRevenue      decimal.Decimal   `json:"total_revenue"`
	PendingBookings   int               `json:"pending_bookings"`
	ConfirmedBookings int               `json:"confirmed_bookings"`
	CompletedBookings int               `json:"completed_bookings"`
	CancelledBookings int               `json:"cancelled_bookings"`
	PaidBookings      int               `json:"paid_bookings"`
	PendingPayments   int               `json:"pending_payments"`
	ContentCounts     []ContentCountDTO `json:"content_counts"`
}

// RecentActivityDTO feed de actividad reciente (máximo 10 elementos).
type RecentActivityDTO struct {
	Items []RecentItemDTO `json:"items"`
}

// QuotaUsageDTO uso vs límite de un kind para la vista de plan del admin.
type QuotaUsageDTO struct {
	Kind      string `json:"kind"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"` // -1 = ilimitado
	Remaining int    `json:"remaining,omitempty"`
	Unlimited bool   `json:"unlimited"`
}

// PlanUsageResponse resumen de cuota del root user.
type PlanUsageResponse struct {
	Plan  string          `json:"plan"`
	Usage []QuotaUsageDTO `json:"usage"`
}
