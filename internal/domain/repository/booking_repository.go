package repository

import (
	"context"

	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
)

// BookingRepository puerto de persistencia para reservas. A diferencia del
// catálogo, la tabla de reservas almacena company_id y tenant_id, por lo que
// el Scope se aplica con las tres columnas.
type BookingRepository interface {
	Create(ctx context.Context, b *entity.Booking) error
	GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.Booking, error)
	GetByBookingCode(ctx context.Context, scope domain.Scope, code string) (*entity.Booking, error)
	// List filtra opcionalmente por status ("" = todos).
	List(ctx context.Context, scope domain.Scope, status string, limit, offset int) ([]*entity.Booking, error)
	Update(ctx context.Context, scope domain.Scope, b *entity.Booking) error
	Delete(ctx context.Context, scope domain.Scope, id string) error
}
