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

// ActivityUseCase CRUD de actividades, con cuota en la creación.
type ActivityUseCase struct {
	repo   repository.ActivityRepository
	ledger *quota.Ledger
	tx     TxRunner
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository, ledger *quota.Ledger, tx TxRunner) *ActivityUseCase {
	return &ActivityUseCase{repo: repo, ledger: ledger, tx: tx}
}

func validDifficulty(s string) bool {
	switch s {
	case "", entity.DifficultyEasy, entity.DifficultyModerate, entity.DifficultyHard:
		return true
	}
	return false
}

// Create crea una actividad si el plan del root user lo permite.
func (uc *ActivityUseCase) Create(ctx context.Context, tc domain.TenantContext, in dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	s := slug.Make(in.Name)
	if s == "" || !validDifficulty(in.Difficulty) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySlug(ctx, domain.ScopeFromContext(tc), s)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	a := &entity.Activity{
		ID:          uuid.New().String(),
		RootUserID:  tc.RootUserID,
		Name:        in.Name,
		Slug:        s,
		Description: in.Description,
		Duration:    in.Duration,
		Difficulty:  in.Difficulty,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.Run(ctx, func(r TxRepos) error {
		if err := uc.ledger.Increment(ctx, r.Users, tc.RootUserID, domain.KindActivities); err != nil {
			return err
		}
		return r.Activities.Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return toActivityResponse(a), nil
}

// GetByID obtiene una actividad dentro del scope del caller.
func (uc *ActivityUseCase) GetByID(ctx context.Context, tc domain.TenantContext, id string) (*dto.ActivityResponse, error) {
	a, err := uc.repo.GetByID(ctx, domain.ScopeFromContext(tc), id)
	if err != nil {
		return nil, err
	}
	return toActivityResponse(a), nil
}

// List lista todas las actividades del tenant (admin).
func (uc *ActivityUseCase) List(ctx context.Context, tc domain.TenantContext, limit, offset int) (*dto.ActivityListResponse, error) {
	list, err := uc.repo.List(ctx, domain.ScopeFromContext(tc), false, limit, offset)
	if err != nil {
		return nil, err
	}
	return toActivityList(list, limit, offset), nil
}

// ListPublished superficie pública.
func (uc *ActivityUseCase) ListPublished(ctx context.Context, rootUserID string, limit, offset int) (*dto.ActivityListResponse, error) {
	list, err := uc.repo.List(ctx, domain.ScopeForRoot(rootUserID), true, limit, offset)
	if err != nil {
		return nil, err
	}
	return toActivityList(list, limit, offset), nil
}

// GetPublishedBySlug página de detalle del sitio público.
func (uc *ActivityUseCase) GetPublishedBySlug(ctx context.Context, rootUserID, s string) (*dto.ActivityResponse, error) {
	a, err := uc.repo.GetBySlug(ctx, domain.ScopeForRoot(rootUserID), s)
	if err != nil {
		return nil, err
	}
	if a == nil || !a.Published {
		return nil, nil
	}
	return toActivityResponse(a), nil
}

// Update actualiza campos presentes.
func (uc *ActivityUseCase) Update(ctx context.Context, tc domain.TenantContext, id string, in dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	a, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if in.Duration != nil {
		a.Duration = *in.Duration
	}
	if in.Difficulty != nil {
		if !validDifficulty(*in.Difficulty) {
			return nil, domain.ErrInvalidInput
		}
		a.Difficulty = *in.Difficulty
	}
	if in.Published != nil {
		a.Published = *in.Published
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, scope, a); err != nil {
		return nil, err
	}
	return toActivityResponse(a), nil
}

// Delete elimina la actividad y decrementa el contador en la misma tx.
func (uc *ActivityUseCase) Delete(ctx context.Context, tc domain.TenantContext, id string) error {
	if !tc.CanManageContent() {
		return domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	return uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Activities.Delete(ctx, scope, id); err != nil {
			return err
		}
		return uc.ledger.Decrement(ctx, r.Users, tc.RootUserID, domain.KindActivities)
	})
}

// Reorder fija el orden manual.
func (uc *ActivityUseCase) Reorder(ctx context.Context, tc domain.TenantContext, orderedIDs []string) error {
	if !tc.CanManageContent() {
		return domain.ErrForbidden
	}
	if len(orderedIDs) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdatePositions(ctx, domain.ScopeFromContext(tc), orderedIDs)
}

func toActivityList(list []*entity.Activity, limit, offset int) *dto.ActivityListResponse {
	items := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toActivityResponse(a))
	}
	return &dto.ActivityListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toActivityResponse(a *entity.Activity) *dto.ActivityResponse {
	if a == nil {
		return nil
	}
	return &dto.ActivityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Slug:        a.Slug,
		Description: a.Description,
		Duration:    a.Duration,
		Difficulty:  a.Difficulty,
		Published:   a.Published,
		Position:    a.Position,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
