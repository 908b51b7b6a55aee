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
)

// TestimonialUseCase CRUD de testimonios, con cuota en la creación.
type TestimonialUseCase struct {
	repo   repository.TestimonialRepository
	ledger *quota.Ledger
	tx     TxRunner
}

// NewTestimonialUseCase construye el caso de uso.
func NewTestimonialUseCase(repo repository.TestimonialRepository, ledger *quota.Ledger, tx TxRunner) *TestimonialUseCase {
	return &TestimonialUseCase{repo: repo, ledger: ledger, tx: tx}
}

// Create crea un testimonio si el plan del root user lo permite.
func (uc *TestimonialUseCase) Create(ctx context.Context, tc domain.TenantContext, in dto.CreateTestimonialRequest) (*dto.TestimonialResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	if in.Author == "" || in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	t := &entity.Testimonial{
		ID:         uuid.New().String(),
		RootUserID: tc.RootUserID,
		Author:     in.Author,
		PackageID:  in.PackageID,
		Rating:     in.Rating,
		Body:       in.Body,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := uc.tx.Run(ctx, func(r TxRepos) error {
		if err := uc.ledger.Increment(ctx, r.Users, tc.RootUserID, domain.KindTestimonials); err != nil {
			return err
		}
		return r.Testimonials.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return toTestimonialResponse(t), nil
}

// GetByID obtiene un testimonio dentro del scope del caller.
func (uc *TestimonialUseCase) GetByID(ctx context.Context, tc domain.TenantContext, id string) (*dto.TestimonialResponse, error) {
	t, err := uc.repo.GetByID(ctx, domain.ScopeFromContext(tc), id)
	if err != nil {
		return nil, err
	}
	return toTestimonialResponse(t), nil
}

// List lista todos los testimonios del tenant (admin).
func (uc *TestimonialUseCase) List(ctx context.Context, tc domain.TenantContext, limit, offset int) (*dto.TestimonialListResponse, error) {
	list, err := uc.repo.List(ctx, domain.ScopeFromContext(tc), false, limit, offset)
	if err != nil {
		return nil, err
	}
	return toTestimonialList(list, limit, offset), nil
}

// ListPublished superficie pública.
func (uc *TestimonialUseCase) ListPublished(ctx context.Context, rootUserID string, limit, offset int) (*dto.TestimonialListResponse, error) {
	list, err := uc.repo.List(ctx, domain.ScopeForRoot(rootUserID), true, limit, offset)
	if err != nil {
		return nil, err
	}
	return toTestimonialList(list, limit, offset), nil
}

// Update actualiza campos presentes.
func (uc *TestimonialUseCase) Update(ctx context.Context, tc domain.TenantContext, id string, in dto.UpdateTestimonialRequest) (*dto.TestimonialResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	t, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if in.Author != nil {
		t.Author = *in.Author
	}
	if in.PackageID != nil {
		t.PackageID = *in.PackageID
	}
	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, domain.ErrInvalidInput
		}
		t.Rating = *in.Rating
	}
	if in.Body != nil {
		t.Body = *in.Body
	}
	if in.Published != nil {
		t.Published = *in.Published
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, scope, t); err != nil {
		return nil, err
	}
	return toTestimonialResponse(t), nil
}

// Delete elimina el testimonio y decrementa el contador en la misma tx.
func (uc *TestimonialUseCase) Delete(ctx context.Context, tc domain.TenantContext, id string) error {
	if !tc.CanManageContent() {
		return domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	return uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Testimonials.Delete(ctx, scope, id); err != nil {
			return err
		}
		return uc.ledger.Decrement(ctx, r.Users, tc.RootUserID, domain.KindTestimonials)
	})
}

func toTestimonialList(list []*entity.Testimonial, limit, offset int) *dto.TestimonialListResponse {
	items := make([]dto.TestimonialResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTestimonialResponse(t))
	}
	return &dto.TestimonialListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toTestimonialResponse(t *entity.Testimonial) *dto.TestimonialResponse {
	if t == nil {
		return nil
	}
	return &dto.TestimonialResponse{
		ID:        t.ID,
		Author:    t.Author,
		PackageID: t.PackageID,
		Rating:    t.Rating,
		Body:      t.Body,
		Published: t.Published,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
