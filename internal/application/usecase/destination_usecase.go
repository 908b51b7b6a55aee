package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/internal/application/quota"
	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
	"github.com/malithvisio/magcin-api/pkg/slug"
)

// DestinationUseCase CRUD de destinos, con cuota en la creación.
type DestinationUseCase struct {
	repo   repository.DestinationRepository
	ledger *quota.Ledger
	tx     TxRunner
}

// NewDestinationUseCase construye el caso de uso.
func NewDestinationUseCase(repo repository.DestinationRepository, ledger *quota.Ledger, tx TxRunner) *DestinationUseCase {
	return &DestinationUseCase{repo: repo, ledger: ledger, tx: tx}
}

// Create crea un destino si el plan del root user lo permite.
func (uc *DestinationUseCase) Create(ctx context.Context, tc domain.TenantContext, in dto.CreateDestinationRequest) (*dto.DestinationResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	s := slug.Make(in.Name)
	if s == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySlug(ctx, scope, s)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	d := &entity.Destination{
		ID:          uuid.New().String(),
		RootUserID:  tc.RootUserID,
		Name:        in.Name,
		Slug:        s,
		Country:     in.Country,
		Description: in.Description,
		Images:      in.Images,
		Highlighted: in.Highlighted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.Run(ctx, func(r TxRepos) error {
		if err := uc.ledger.Increment(ctx, r.Users, tc.RootUserID, domain.KindDestinations); err != nil {
			return err
		}
		return r.Destinations.Create(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	return toDestinationResponse(d), nil
}

// GetByID obtiene un destino dentro del scope del caller.
func (uc *DestinationUseCase) GetByID(ctx context.Context, tc domain.TenantContext, id string) (*dto.DestinationResponse, error) {
	d, err := uc.repo.GetByID(ctx, domain.ScopeFromContext(tc), id)
	if err != nil {
		return nil, err
	}
	return toDestinationResponse(d), nil
}

// List lista todos los destinos del tenant (admin).
func (uc *DestinationUseCase) List(ctx context.Context, tc domain.TenantContext, limit, offset int) (*dto.DestinationListResponse, error) {
	list, err := uc.repo.List(ctx, domain.ScopeFromContext(tc), false, limit, offset)
	if err != nil {
		return nil, err
	}
	return toDestinationList(list, limit, offset), nil
}

// ListPublished superficie pública.
func (uc *DestinationUseCase) ListPublished(ctx context.Context, rootUserID string, limit, offset int) (*dto.DestinationListResponse, error) {
	list, err := uc.repo.List(ctx, domain.ScopeForRoot(rootUserID), true, limit, offset)
	if err != nil {
		return nil, err
	}
	return toDestinationList(list, limit, offset), nil
}

// GetPublishedBySlug página de detalle del sitio público.
func (uc *DestinationUseCase) GetPublishedBySlug(ctx context.Context, rootUserID, s string) (*dto.DestinationResponse, error) {
	d, err := uc.repo.GetBySlug(ctx, domain.ScopeForRoot(rootUserID), s)
	if err != nil {
		return nil, err
	}
	if d == nil || !d.Published {
		return nil, nil
	}
	return toDestinationResponse(d), nil
}

// Update actualiza campos presentes.
func (uc *DestinationUseCase) Update(ctx context.Context, tc domain.TenantContext, id string, in dto.UpdateDestinationRequest) (*dto.DestinationResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	d, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Country != nil {
		d.Country = *in.Country
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.Images != nil {
		d.Images = in.Images
	}
	if in.Published != nil {
		d.Published = *in.Published
	}
	if in.Highlighted != nil {
		d.Highlighted = *in.Highlighted
	}
	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, scope, d); err != nil {
		return nil, err
	}
	return toDestinationResponse(d), nil
}

// Delete elimina el destino y decrementa el contador en la misma tx.
func (uc *DestinationUseCase) Delete(ctx context.Context, tc domain.TenantContext, id string) error {
	if !tc.CanManageContent() {
		return domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	return uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Destinations.Delete(ctx, scope, id); err != nil {
			return err
		}
		return uc.ledger.Decrement(ctx, r.Users, tc.RootUserID, domain.KindDestinations)
	})
}

// Reorder fija el orden manual.
func (uc *DestinationUseCase) Reorder(ctx context.Context, tc domain.TenantContext, orderedIDs []string) error {
	if !tc.CanManageContent() {
		return domain.ErrForbidden
	}
	if len(orderedIDs) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdatePositions(ctx, domain.ScopeFromContext(tc), orderedIDs)
}

func toDestinationList(list []*entity.Destination, limit, offset int) *dto.DestinationListResponse {
	items := make([]dto.DestinationResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDestinationResponse(d))
	}
	return &dto.DestinationListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toDestinationResponse(d *entity.Destination) *dto.DestinationResponse {
	if d == nil {
		return nil
	}
	return &dto.DestinationResponse{
		ID:          d.ID,
		Name:        d.Name,
		Slug:        d.Slug,
		Country:     d.Country,
		Description: d.Description,
		Images:      d.Images,
		Published:   d.Published,
		Highlighted: d.Highlighted,
		Position:    d.Position,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
