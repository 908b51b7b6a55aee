package repository

import (
	"context"

	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
)

// PackageRepository puerto de persistencia para TourPackage. Toda lectura y
// escritura recibe el Scope resuelto; los Get* devuelven (nil, nil) si el
// registro no existe o pertenece a otro tenant (indistinguibles).
type PackageRepository interface {
	Create(ctx context.Context, p *entity.TourPackage) error
	GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.TourPackage, error)
	GetBySlug(ctx context.Context, scope domain.Scope, slug string) (*entity.TourPackage, error)
	List(ctx context.Context, scope domain.Scope, onlyPublished bool, limit, offset int) ([]*entity.TourPackage, error)
	Update(ctx context.Context, scope domain.Scope, p *entity.TourPackage) error
	Delete(ctx context.Context, scope domain.Scope, id string) error
	// UpdatePositions fija el orden manual del admin según orderedIDs.
	UpdatePositions(ctx context.Context, scope domain.Scope, orderedIDs []string) error
}
