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

// BlogUseCase CRUD del blog, con cuota en la creación. PublishedAt se fija
// la primera vez que la entrada pasa a publicada.
type BlogUseCase struct {
	repo   repository.BlogRepository
	ledger *quota.Ledger
	tx     TxRunner
}

// NewBlogUseCase construye el caso de uso.
func NewBlogUseCase(repo repository.BlogRepository, ledger *quota.Ledger, tx TxRunner) *BlogUseCase {
	return &BlogUseCase{repo: repo, ledger: ledger, tx: tx}
}

// Create crea una entrada (borrador) si el plan del root user lo permite.
func (uc *BlogUseCase) Create(ctx context.Context, tc domain.TenantContext, in dto.CreateBlogRequest) (*dto.BlogResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	s := slug.Make(in.Title)
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
	b := &entity.Blog{
		ID:         uuid.New().String(),
		RootUserID: tc.RootUserID,
		Title:      in.Title,
		Slug:       s,
		Author:     in.Author,
		Content:    in.Content,
		Tags:       in.Tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = uc.tx.Run(ctx, func(r TxRepos) error {
		if err := uc.ledger.Increment(ctx, r.Users, tc.RootUserID, domain.KindBlogs); err != nil {
			return err
		}
		return r.Blogs.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return toBlogResponse(b), nil
}

// GetByID obtiene una entrada dentro del scope del caller.
func (uc *BlogUseCase) GetByID(ctx context.Context, tc domain.TenantContext, id string) (*dto.BlogResponse, error) {
	b, err := uc.repo.GetByID(ctx, domain.ScopeFromContext(tc), id)
	if err != nil {
		return nil, err
	}
	return toBlogResponse(b), nil
}

// List lista todas las entradas del tenant (admin).
func (uc *BlogUseCase) List(ctx context.Context, tc domain.TenantContext, limit, offset int) (*dto.BlogListResponse, error) {
	list, err := uc.repo.List(ctx, domain.ScopeFromContext(tc), false, limit, offset)
	if err != nil {
		return nil, err
	}
	return toBlogList(list, limit, offset), nil
}

// ListPublished superficie pública.
func (uc *BlogUseCase) ListPublished(ctx context.Context, rootUserID string, limit, offset int) (*dto.BlogListResponse, error) {
	list, err := uc.repo.List(ctx, domain.ScopeForRoot(rootUserID), true, limit, offset)
	if err != nil {
		return nil, err
	}
	return toBlogList(list, limit, offset), nil
}

// GetPublishedBySlug página de detalle del sitio público.
func (uc *BlogUseCase) GetPublishedBySlug(ctx context.Context, rootUserID, s string) (*dto.BlogResponse, error) {
	b, err := uc.repo.GetBySlug(ctx, domain.ScopeForRoot(rootUserID), s)
	if err != nil {
		return nil, err
	}
	if b == nil || !b.Published {
		return nil, nil
	}
	return toBlogResponse(b), nil
}

// Update actualiza campos presentes; publicar por primera vez fija PublishedAt.
func (uc *BlogUseCase) Update(ctx context.Context, tc domain.TenantContext, id string, in dto.UpdateBlogRequest) (*dto.BlogResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	b, err := uc.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Author != nil {
		b.Author = *in.Author
	}
	if in.Content != nil {
		b.Content = *in.Content
	}
	if in.Tags != nil {
		b.Tags = in.Tags
	}
	if in.Published != nil {
		b.Published = *in.Published
		if b.Published && b.PublishedAt == nil {
			now := time.Now()
			b.PublishedAt = &now
		}
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, scope, b); err != nil {
		return nil, err
	}
	return toBlogResponse(b), nil
}

// Delete elimina la entrada y decrementa el contador en la misma tx.
func (uc *BlogUseCase) Delete(ctx context.Context, tc domain.TenantContext, id string) error {
	if !tc.CanManageContent() {
		return domain.ErrForbidden
	}
	scope := domain.ScopeFromContext(tc)
	return uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Blogs.Delete(ctx, scope, id); err != nil {
			return err
		}
		return uc.ledger.Decrement(ctx, r.Users, tc.RootUserID, domain.KindBlogs)
	})
}

func toBlogList(list []*entity.Blog, limit, offset int) *dto.BlogListResponse {
	items := make([]dto.BlogResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBlogResponse(b))
	}
	return &dto.BlogListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}
}

func toBlogResponse(b *entity.Blog) *dto.BlogResponse {
	if b == nil {
		return nil
	}
	return &dto.BlogResponse{
		ID:          b.ID,
		Title:       b.Title,
		Slug:        b.Slug,
		Author:      b.Author,
		Content:     b.Content,
		Tags:        b.Tags,
		Published:   b.Published,
		PublishedAt: b.PublishedAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
