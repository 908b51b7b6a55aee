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

// PackageUseCase CRUD de paquetes turísticos. Las creaciones pasan por el
// ledger de cuotas; el incremento y el insert comparten transacción.
type PackageUseCase struct {
	repo       repository.PackageRepository
	categories repository.CategoryRepository
	ledger     *quota.Ledger
	tx         TxRunner
}

// NewPackageUseCase construye el caso de uso.
func NewPackageUseCase(repo repository.PackageRepository, categories repository.CategoryRepository, ledger *quota.Ledger, tx TxRunner) *PackageUseCase {
	return &PackageUseCase{repo: repo, categories: categories, ledger: ledger, tx: tx}
}

// Create crea un paquete si el plan del root user lo permite.
func (uc *PackageUseCase) Create(ctx context.Context, tc domain.TenantContext, in dto.CreatePackageRequest) (*dto.PackageResponse, error) {
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
	if in.CategoryID != "" {
		cat, err := uc.categories.GetByID(ctx, scope, in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	p := &entity.TourPackage{
		ID:                  uuid.New().String(),
		RootUserID:          tc.RootUserID,
		CategoryID:          in.CategoryID,
		Name:                in.Name,
		Slug:                s,
		Summary:             in.Summary,
		Description:         in.Description,
		Days:                in.Days,
		Nights:              in.Nights,
		Price:               in.Price,
		PriceBeforeDiscount: in.PriceBeforeDiscount,
		Inclusions:          in.Inclusions,
		Exclusions:          in.Exclusions,
		Itinerary:           toItinerary(in.Itinerary),
		Images:              in.Images,
		Highlighted:         in.Highlighted,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	err = uc.tx.Run(ctx, func(r TxRepos) error {
		if err := uc.ledger.Increment(ctx, r.Users, tc.RootUserID, domain.KindPackages); err != nil {
			return err
		}
		return r.Packages.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return toPackageResponse(p), nil
}

// GetByID obtiene un paquete dentro del scope del caller.
func (uc *PackageUseCase) GetByID(ctx context.Context, tc domain.TenantContext, id string) (*dto.PackageResponse, error) {
	p, err := uc.repo.GetByID(ctx, domain.ScopeFromContext(tc), id)
	if err != nil {
		return nil, err
	}
	return toPackageResponse(p), nil
}

// List lista todos los paquetes del tenant (admin: incluye borradores).
func (uc *PackageUseCase) List(ctx context.Context, tc domain.TenantContext, limit, offset int) (*dto.PackageListResponse, error) {
	list, err := uc.repo.List(ctx, domain.ScopeFromContext(tc), false, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PackageResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPackageResponse(p))
	}
	return &dto.PackageListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// ListPublished superficie pública: solo publicados, scope por root user.
func (uc *PackageUseCase) ListPublished(ctx context.Context, rootUserID string, limit, offset int) (*dto.PackageListResponse, error) {
	list, err := uc.repo.List(ctx, domain.ScopeForRoot(rootUserID), true, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PackageResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPackageResponse(p))
	}
	return &dto.PackageListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// GetPublishedBySlug página de detalle del sitio público.
func (uc *PackageUseCase) GetPublishedBySlug(ctx context.Context, rootUserID, s string) (*dto.PackageResponse, error) {
	p, err := uc.repo.GetBySlug(ctx, domain.ScopeForRoot(rootUserID), s)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Published {
		return nil, nil
	}
	return toPackageResponse(p), nil
}

// Update actualiza campos presentes. El slug no cambia (URLs estables).
func (uc *PackageUseCase) Update(ctx context.Context, tc domain.TenantContext, id string, in dto.UpdatePackageRequest) (*dto.PackageResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	p, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.Summary != nil {
		p.Summary = *in.Summary
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Days != nil {
		p.Days = *in.Days
	}
	if in.Nights != nil {
		p.Nights = *in.Nights
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.PriceBeforeDiscount != nil {
		p.PriceBeforeDiscount = *in.PriceBeforeDiscount
	}
	if in.Inclusions != nil {
		p.Inclusions = in.Inclusions
	}
	if in.Exclusions != nil {
		p.Exclusions = in.Exclusions
	}
	if in.Itinerary != nil {
		p.Itinerary = toItinerary(in.Itinerary)
	}
	if in.Images != nil {
		p.Images = in.Images
	}
	if in.Published != nil {
		p.Published = *in.Published
	}
	if in.Highlighted != nil {
		p.Highlighted = *in.Highlighted
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, scope, p); err != nil {
		return nil, err
	}
	return toPackageResponse(p), nil
}

// Delete elimina el paquete y decrementa el contador de uso en la misma tx.
func (uc *PackageUseCase) Delete(ctx context.Context, tc domain.TenantContext, id string) error {
	if !tc.CanManageContent() {
		return domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	return uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Packages.Delete(ctx, scope, id); err != nil {
			return err
		}
		return uc.ledger.Decrement(ctx, r.Users, tc.RootUserID, domain.KindPackages)
	})
}

// Reorder fija el orden manual (drag-and-drop del admin).
func (uc *PackageUseCase) Reorder(ctx context.Context, tc domain.TenantContext, orderedIDs []string) error {
	if !tc.CanManageContent() {
		return domain.ErrForbidden
	}
	if len(orderedIDs) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdatePositions(ctx, domain.ScopeFromContext(tc), orderedIDs)
}

func toItinerary(in []dto.ItineraryDayDTO) []entity.ItineraryDay {
	if in == nil {
		return nil
	}
	out := make([]entity.ItineraryDay, 0, len(in))
	for _, d := range in {
		out = append(out, entity.ItineraryDay{Day: d.Day, Title: d.Title, Description: d.Description})
	}
	return out
}

func toPackageResponse(p *entity.TourPackage) *dto.PackageResponse {
	if p == nil {
		return nil
	}
	itinerary := make([]dto.ItineraryDayDTO, 0, len(p.Itinerary))
	for _, d := range p.Itinerary {
		itinerary = append(itinerary, dto.ItineraryDayDTO{Day: d.Day, Title: d.Title, Description: d.Description})
	}
	return &dto.PackageResponse{
		ID:                  p.ID,
		CategoryID:          p.CategoryID,
		Name:                p.Name,
		Slug:                p.Slug,
		Summary:             p.Summary,
		Description:         p.Description,
		Days:                p.Days,
		Nights:              p.Nights,
		Price:               p.Price,
		PriceBeforeDiscount: p.PriceBeforeDiscount,
		Inclusions:          p.Inclusions,
		Exclusions:          p.Exclusions,
		Itinerary:           itinerary,
		Images:              p.Images,
		Published:           p.Published,
		Highlighted:         p.Highlighted,
		Position:            p.Position,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
