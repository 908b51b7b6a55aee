package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/malithvisio/magcin-api/internal/domain"
)

// BookingStats agregados de reservas de un root user. Siempre con todos los
// campos poblados (cero para un tenant sin reservas, nunca parcial).
type BookingStats struct {
	TotalBookings     int
	TotalRevenue      decimal.Decimal // bruto: suma de total_amount sin importar payment_status
	PendingBookings   int
	ConfirmedBookings int
	CompletedBookings int
	CancelledBookings int
	PaidBookings      int
	PendingPayments   int
}

// ContentCount conteo por kind de contenido.
type ContentCount struct {
	Kind      domain.ResourceKind
	Total     int
	Published int
	Draft     int
}

// RecentItem elemento del feed de actividad reciente.
type RecentItem struct {
	Kind      string // resource kind o "bookings"
	ID        string
	Title     string
	CreatedAt time.Time
}

// StatsRepository consultas de solo lectura para el dashboard, todas
// alcanzadas por root_user_id (mismo predicado que el Scope).
type StatsRepository interface {
	GetBookingStats(ctx context.Context, rootUserID string) (BookingStats, error)
	GetContentCounts(ctx context.Context, rootUserID string) ([]ContentCount, error)
	GetRecentContent(ctx context.Context, rootUserID string, kind domain.ResourceKind, limit int) ([]RecentItem, error)
	GetRecentBookings(ctx context.Context, rootUserID string, limit int) ([]RecentItem, error)
}
