package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
)

var _ repository.BlogRepository = (*BlogRepo)(nil)

// BlogRepo implementación del puerto BlogRepository sobre PostgreSQL.
type BlogRepo struct {
	db querier
}

func NewBlogRepository(db querier) *BlogRepo {
	return &BlogRepo{db: db}
}

const blogColumns = `id, root_user_id, title, slug, author, content, tags,
	published, published_at, created_at, updated_at`

func (r *BlogRepo) Create(ctx context.Context, b *entity.Blog) error {
	query := `
		INSERT INTO blogs (id, root_user_id, title, slug, author, content, tags,
			published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.RootUserID, b.Title, b.Slug, b.Author, b.Content, b.Tags,
		b.Published, b.PublishedAt, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

func (r *BlogRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.Blog, error) {
	where, args := scope.Where(2, false)
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1 AND ` + where
	return r.scanOne(r.db.QueryRow(ctx, query, append([]any{id}, args...)...), "get blog by id")
}

func (r *BlogRepo) GetBySlug(ctx context.Context, scope domain.Scope, slug string) (*entity.Blog, error) {
	where, args := scope.Where(2, false)
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE slug = $1 AND ` + where
	return r.scanOne(r.db.QueryRow(ctx, query, append([]any{slug}, args...)...), "get blog by slug")
}

func (r *BlogRepo) List(ctx context.Context, scope domain.Scope, onlyPublished bool, limit, offset int) ([]*entity.Blog, error) {
	where, args := scope.Where(1, false)
	if onlyPublished {
		where += " AND published"
	}
	// Para el blog ordena por fecha de publicación, no por posición manual.
	query := fmt.Sprintf(`SELECT `+blogColumns+`
		FROM blogs WHERE %s
		ORDER BY COALESCE(published_at, created_at) DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Blog
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *BlogRepo) Update(ctx context.Context, scope domain.Scope, b *entity.Blog) error {
	where, args := scope.Where(10, false)
	query := `
		UPDATE blogs SET title = $2, author = $3, content = $4, tags = $5,
			published = $6, published_at = $7, slug = $8, updated_at = $9
		WHERE id = $1 AND ` + where
	tag, err := r.db.Exec(ctx, query, append([]any{
		b.ID, b.Title, b.Author, b.Content, b.Tags,
		b.Published, b.PublishedAt, b.Slug, b.UpdatedAt,
	}, args...)...)
	if err != nil {
		return fmt.Errorf("update blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BlogRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	where, args := scope.Where(2, false)
	tag, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1 AND `+where, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BlogRepo) scanOne(row pgx.Row, op string) (*entity.Blog, error) {
	b, err := scanBlog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func scanBlog(row pgx.Row) (*entity.Blog, error) {
	var b entity.Blog
	if err := row.Scan(
		&b.ID, &b.RootUserID, &b.Title, &b.Slug, &b.Author, &b.Content, &b.Tags,
		&b.Published, &b.PublishedAt, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
