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

// TeamUseCase CRUD del equipo, con cuota en la creación.
type TeamUseCase struct {
	repo   repository.TeamRepository
	ledger *quota.Ledger
	tx     TxRunner
}

// NewTeamUseCase construye el caso de uso.
func NewTeamUseCase(repo repository.TeamRepository, ledger *quota.Ledger, tx TxRunner) *TeamUseCase {
	return &TeamUseCase{repo: repo, ledger: ledger, tx: tx}
}

// Create agrega un integrante si el plan del root user lo permite.
func (uc *TeamUseCase) Create(ctx context.Context, tc domain.TenantContext, in dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	m := &entity.TeamMember{
		ID:         uuid.New().String(),
		RootUserID: tc.RootUserID,
		Name:       in.Name,
		RoleTitle:  in.RoleTitle,
		Bio:        in.Bio,
		Photo:      in.Photo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := uc.tx.Run(ctx, func(r TxRepos) error {
		if err := uc.ledger.Increment(ctx, r.Users, tc.RootUserID, domain.KindTeamMembers); err != nil {
			return err
		}
		return r.Team.Create(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return toTeamMemberResponse(m), nil
}

// GetByID obtiene un integrante dentro del scope del caller.
func (uc *TeamUseCase) GetByID(ctx context.Context, tc domain.TenantContext, id string) (*dto.TeamMemberResponse, error) {
	m, err := uc.repo.GetByID(ctx, domain.ScopeFromContext(tc), id)
	if err != nil {
		return nil, err
	}
	return toTeamMemberResponse(m), nil
}

// List lista todo el equipo del tenant (admin).
func (uc *TeamUseCase) List(ctx context.Context, tc domain.TenantContext, limit, offset int) (*dto.TeamListResponse, error) {
	list, err := uc.repo.List(ctx, domain.ScopeFromContext(tc), false, limit, offset)
	if err != nil {
		return nil, err
	}
	return toTeamList(list, limit, offset), nil
}

// ListPublished superficie pública.
func (uc *TeamUseCase) ListPublished(ctx context.Context, rootUserID string, limit, offset int) (*dto.TeamListResponse, error) {
	list, err := uc.repo.List(ctx, domain.ScopeForRoot(rootUserID), true, limit, offset)
	if err != nil {
		return nil, err
	}
	return toTeamList(list, limit, offset), nil
}

// Update actualiza campos presentes.
func (uc *TeamUseCase) Update(ctx context.Context, tc domain.TenantContext, id string, in dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	m, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.RoleTitle != nil {
		m.RoleTitle = *in.RoleTitle
	}
	if in.Bio != nil {
		m.Bio = *in.Bio
	}
	if in.Photo != nil {
		m.Photo = *in.Photo
	}
	if in.Published != nil {
		m.Published = *in.Published
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, scope, m); err != nil {
		return nil, err
	}
	return toTeamMemberResponse(m), nil
}

// Delete quita al integrante y decrementa el contador en la misma tx.
func (uc *TeamUseCase) Delete(ctx context.Context, tc domain.TenantContext, id string) error {
	if !tc.CanManageContent() {
		return domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	return uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Team.Delete(ctx, scope, id); err != nil {
			return err
		}
		return uc.ledger.Decrement(ctx, r.Users, tc.RootUserID, domain.KindTeamMembers)
	})
}

// Reorder fija el orden manual.
func (uc *TeamUseCase) Reorder(ctx context.Context, tc domain.TenantContext, orderedIDs []string) error {
	if !tc.CanManageContent() {
		return domain.ErrForbidden
	}
	if len(orderedIDs) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdatePositions(ctx, domain.ScopeFromContext(tc), orderedIDs)
}

func toTeamList(list []*entity.TeamMember, limit, offset int) *dto.TeamListResponse {
	items := make([]dto.TeamMemberResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toTeamMemberResponse(m))
	}
	return &dto.TeamListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toTeamMemberResponse(m *entity.TeamMember) *dto.TeamMemberResponse {
	if m == nil {
		return nil
	}
	return &dto.TeamMemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		RoleTitle: m.RoleTitle,
		Bio:       m.Bio,
		Photo:     m.Photo,
		Published: m.Published,
		Position:  m.Position,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
