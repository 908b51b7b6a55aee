package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo implementación del puerto BookingRepository sobre PostgreSQL.
// Las reservas guardan company_id y tenant_id, así que el Scope se aplica
// con las tres columnas.
type BookingRepo struct {
	db querier
}

func NewBookingRepository(db querier) *BookingRepo {
	return &BookingRepo{db: db}
}

const bookingColumns = `id, booking_id, root_user_id, COALESCE(company_id, ''), COALESCE(tenant_id, ''),
	package_id, customer_name, customer_email, customer_phone, travel_date, guest_count,
	total_amount, status, payment_status, notes, created_at, updated_at`

func (r *BookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, booking_id, root_user_id, company_id, tenant_id,
			package_id, customer_name, customer_email, customer_phone, travel_date, guest_count,
			total_amount, status, payment_status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''),
			$6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.BookingID, b.RootUserID, b.CompanyID, b.TenantID,
		b.PackageID, b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.TravelDate, b.GuestCount,
		b.TotalAmount, b.Status, b.PaymentStatus, b.Notes, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *BookingRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.Booking, error) {
	where, args := scope.Where(2, true)
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND ` + where
	return r.scanOne(r.db.QueryRow(ctx, query, append([]any{id}, args...)...), "get booking by id")
}

func (r *BookingRepo) GetByBookingCode(ctx context.Context, scope domain.Scope, code string) (*entity.Booking, error) {
	where, args := scope.Where(2, true)
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1 AND ` + where
	return r.scanOne(r.db.QueryRow(ctx, query, append([]any{code}, args...)...), "get booking by code")
}

func (r *BookingRepo) List(ctx context.Context, scope domain.Scope, status string, limit, offset int) ([]*entity.Booking, error) {
	where, args := scope.Where(1, true)
	if status != "" {
		args = append(args, status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query := fmt.Sprintf(`SELECT `+bookingColumns+`
		FROM bookings WHERE %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *BookingRepo) Update(ctx context.Context, scope domain.Scope, b *entity.Booking) error {
	where, args := scope.Where(11, true)
	query := `
		UPDATE bookings SET customer_name = $2, customer_email = $3, customer_phone = $4,
			travel_date = $5, guest_count = $6, status = $7, payment_status = $8,
			notes = $9, updated_at = $10
		WHERE id = $1 AND ` + where
	tag, err := r.db.Exec(ctx, query, append([]any{
		b.ID, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.TravelDate, b.GuestCount, b.Status, b.PaymentStatus,
		b.Notes, b.UpdatedAt,
	}, args...)...)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	where, args := scope.Where(2, true)
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1 AND `+where, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingRepo) scanOne(row pgx.Row, op string) (*entity.Booking, error) {
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	if err := row.Scan(
		&b.ID, &b.BookingID, &b.RootUserID, &b.CompanyID, &b.TenantID,
		&b.PackageID, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.TravelDate, &b.GuestCount,
		&b.TotalAmount, &b.Status, &b.PaymentStatus, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
