package repository

import (
	"context"

	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
)

// Puertos de persistencia para el resto del contenido de catálogo. Mismo
// contrato que PackageRepository: Scope obligatorio, (nil, nil) para el
// registro ausente o fuera del tenant.

type DestinationRepository interface {
	Create(ctx context.Context, d *entity.Destination) error
	GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.Destination, error)
	GetBySlug(ctx context.Context, scope domain.Scope, slug string) (*entity.Destination, error)
	List(ctx context.Context, scope domain.Scope, onlyPublished bool, limit, offset int) ([]*entity.Destination, error)
	Update(ctx context.Context, scope domain.Scope, d *entity.Destination) error
	Delete(ctx context.Context, scope domain.Scope, id string) error
	UpdatePositions(ctx context.Context, scope domain.Scope, orderedIDs []string) error
}

type ActivityRepository interface {
	Create(ctx context.Context, a *entity.Activity) error
	GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.Activity, error)
	GetBySlug(ctx context.Context, scope domain.Scope, slug string) (*entity.Activity, error)
	List(ctx context.Context, scope domain.Scope, onlyPublished bool, limit, offset int) ([]*entity.Activity, error)
	Update(ctx context.Context, scope domain.Scope, a *entity.Activity) error
	Delete(ctx context.Context, scope domain.Scope, id string) error
	UpdatePositions(ctx context.Context, scope domain.Scope, orderedIDs []string) error
}

type BlogRepository interface {
	Create(ctx context.Context, b *entity.Blog) error
	GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.Blog, error)
	GetBySlug(ctx context.Context, scope domain.Scope, slug string) (*entity.Blog, error)
	List(ctx context.Context, scope domain.Scope, onlyPublished bool, limit, offset int) ([]*entity.Blog, error)
	Update(ctx context.Context, scope domain.Scope, b *entity.Blog) error
	Delete(ctx context.Context, scope domain.Scope, id string) error
}

type TestimonialRepository interface {
	Create(ctx context.Context, t *entity.Testimonial) error
	GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.Testimonial, error)
	List(ctx context.Context, scope domain.Scope, onlyPublished bool, limit, offset int) ([]*entity.Testimonial, error)
	Update(ctx context.Context, scope domain.Scope, t *entity.Testimonial) error
	Delete(ctx context.Context, scope domain.Scope, id string) error
}

type TeamRepository interface {
	Create(ctx context.Context, m *entity.TeamMember) error
	GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.TeamMember, error)
	List(ctx context.Context, scope domain.Scope, onlyPublished bool, limit, offset int) ([]*entity.TeamMember, error)
	Update(ctx context.Context, scope domain.Scope, m *entity.TeamMember) error
	Delete(ctx context.Context, scope domain.Scope, id string) error
	UpdatePositions(ctx context.Context, scope domain.Scope, orderedIDs []string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.Category, error)
	List(ctx context.Context, scope domain.Scope, limit, offset int) ([]*entity.Category, error)
	Update(ctx context.Context, scope domain.Scope, c *entity.Category) error
	Delete(ctx context.Context, scope domain.Scope, id string) error
	UpdatePositions(ctx context.Context, scope domain.Scope, orderedIDs []string) error
}
