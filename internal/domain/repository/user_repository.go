package repository

import (
	"context"

	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando la cuenta no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListMembers(ctx context.Context, rootUserID string, limit, offset int) ([]*entity.User, error)

	// IncrementUsage suma 1 al contador del kind en una sola operación
	// condicional: solo tiene éxito si la cuenta es root user y el contador
	// pre-incremento está bajo limit (o limit es domain.Unlimited). Devuelve
	// false sin error cuando la condición no se cumple.
	IncrementUsage(ctx context.Context, rootUserID string, kind domain.ResourceKind, limit int) (bool, error)
	// DecrementUsage resta 1 al contador del kind con piso en cero.
	DecrementUsage(ctx context.Context, rootUserID string, kind domain.ResourceKind) error
}
