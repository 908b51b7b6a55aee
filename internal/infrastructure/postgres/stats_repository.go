package postgres

import (
	"context"
	"fmt"

	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el dashboard. Todas alcanzadas por
// root_user_id; la agregación se hace en SQL para no paginar filas en memoria.
type StatsRepo struct {
	db querier
}

func NewStatsRepository(db querier) *StatsRepo {
	return &StatsRepo{db: db}
}

// kindTables mapeo kind -> (tabla, columna de título). Cerrado igual que la
// enumeración de kinds; un kind nuevo exige entrada aquí.
var kindTables = map[domain.ResourceKind]struct {
	table    string
	titleCol string
}{
	domain.KindPackages:     {"packages", "name"},
	domain.KindDestinations: {"destinations", "name"},
	domain.KindActivities:   {"activities", "name"},
	domain.KindBlogs:        {"blogs", "title"},
	domain.KindTeamMembers:  {"team_members", "name"},
	domain.KindTestimonials: {"testimonials", "author"},
}

// GetBookingStats agrega los contadores de reservas en una sola pasada.
// COALESCE garantiza ceros (y no NULL) para un tenant sin reservas.
func (r *StatsRepo) GetBookingStats(ctx context.Context, rootUserID string) (repository.BookingStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total_amount), 0),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'confirmed'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'cancelled'),
			COUNT(*) FILTER (WHERE payment_status = 'paid'),
			COUNT(*) FILTER (WHERE payment_status = 'pending')
		FROM bookings
		WHERE root_user_id = $1`
	var s repository.BookingStats
	err := r.db.QueryRow(ctx, query, rootUserID).Scan(
		&s.TotalBookings, &s.TotalRevenue,
		&s.PendingBookings, &s.ConfirmedBookings, &s.CompletedBookings, &s.CancelledBookings,
		&s.PaidBookings, &s.PendingPayments,
	)
	if err != nil {
		return repository.BookingStats{}, fmt.Errorf("booking stats: %w", err)
	}
	return s, nil
}

// GetContentCounts cuenta total/publicado/borrador por kind. Un kind sin
// filas igual aparece en el resultado, con ceros.
func (r *StatsRepo) GetContentCounts(ctx context.Context, rootUserID string) ([]repository.ContentCount, error) {
	counts := make([]repository.ContentCount, 0, len(kindTables))
	for _, kind := range domain.AllKinds() {
		t := kindTables[kind]
		query := fmt.Sprintf(`
			SELECT COUNT(*),
				COUNT(*) FILTER (WHERE published),
				COUNT(*) FILTER (WHERE NOT published)
			FROM %s WHERE root_user_id = $1`, t.table)
		c := repository.ContentCount{Kind: kind}
		if err := r.db.QueryRow(ctx, query, rootUserID).Scan(&c.Total, &c.Published, &c.Draft); err != nil {
			return nil, fmt.Errorf("content counts %s: %w", t.table, err)
		}
		counts = append(counts, c)
	}
	return counts, nil
}

// GetRecentContent devuelve los últimos registros creados de un kind.
func (r *StatsRepo) GetRecentContent(ctx context.Context, rootUserID string, kind domain.ResourceKind, limit int) ([]repository.RecentItem, error) {
	t, ok := kindTables[kind]
	if !ok {
		return nil, domain.ErrUnknownKind
	}
	query := fmt.Sprintf(`
		SELECT id, %s, created_at FROM %s
		WHERE root_user_id = $1
		ORDER BY created_at DESC LIMIT $2`, t.titleCol, t.table)
	rows, err := r.db.Query(ctx, query, rootUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent %s: %w", t.table, err)
	}
	defer rows.Close()
	var items []repository.RecentItem
	for rows.Next() {
		item := repository.RecentItem{Kind: string(kind)}
		if err := rows.Scan(&item.ID, &item.Title, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent %s: %w", t.table, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetRecentBookings devuelve las últimas reservas creadas (código + cliente).
func (r *StatsRepo) GetRecentBookings(ctx context.Context, rootUserID string, limit int) ([]repository.RecentItem, error) {
	query := `
		SELECT id, booking_id || ' - ' || customer_name, created_at FROM bookings
		WHERE root_user_id = $1
		ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.Query(ctx, query, rootUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent bookings: %w", err)
	}
	defer rows.Close()
	var items []repository.RecentItem
	for rows.Next() {
		item := repository.RecentItem{Kind: "bookings"}
		if err := rows.Scan(&item.ID, &item.Title, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent booking: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
