package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
	"github.com/malithvisio/magcin-api/pkg/slug"
)

// CategoryUseCase CRUD de categorías. No pasan por el ledger de cuotas (las
// categorías no están en la tabla de planes) pero sí por el scope.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, tc domain.TenantContext, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	s := slug.Make(in.Name)
	if s == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Category{
		ID:         uuid.New().String(),
		RootUserID: tc.RootUserID,
		Name:       in.Name,
		Slug:       s,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// List lista las categorías del tenant.
func (uc *CategoryUseCase) List(ctx context.Context, tc domain.TenantContext, limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(ctx, domain.ScopeFromContext(tc), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update renombra una categoría (el slug se recalcula con el nombre).
func (uc *CategoryUseCase) Update(ctx context.Context, tc domain.TenantContext, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	c, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Name != nil {
		c.Name = *in.Name
		c.Slug = slug.Make(*in.Name)
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, scope, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// Delete elimina la categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, tc domain.TenantContext, id string) error {
	if !tc.CanManageContent() {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, domain.ScopeFromContext(tc), id)
}

// Reorder fija el orden manual.
func (uc *CategoryUseCase) Reorder(ctx context.Context, tc domain.TenantContext, orderedIDs []string) error {
	if !tc.CanManageContent() {
		return domain.ErrForbidden
	}
	if len(orderedIDs) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdatePositions(ctx, domain.ScopeFromContext(tc), orderedIDs)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
