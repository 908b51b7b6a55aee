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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	db querier
}

func NewCategoryRepository(db querier) *CategoryRepo {
	return &CategoryRepo{db: db}
}

const categoryColumns = `id, root_user_id, name, slug, position, created_at, updated_at`

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (id, root_user_id, name, slug, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4,
			COALESCE((SELECT MAX(position) + 1 FROM categories WHERE root_user_id = $2), 0),
			$5, $6)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.RootUserID, c.Name, c.Slug, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.Category, error) {
	where, args := scope.Where(2, false)
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND ` + where
	c, err := scanCategory(r.db.QueryRow(ctx, query, append([]any{id}, args...)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return c, nil
}

func (r *CategoryRepo) List(ctx context.Context, scope domain.Scope, limit, offset int) ([]*entity.Category, error) {
	where, args := scope.Where(1, false)
	query := fmt.Sprintf(`SELECT `+categoryColumns+`
		FROM categories WHERE %s
		ORDER BY position, created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CategoryRepo) Update(ctx context.Context, scope domain.Scope, c *entity.Category) error {
	where, args := scope.Where(5, false)
	query := `UPDATE categories SET name = $2, slug = $3, updated_at = $4 WHERE id = $1 AND ` + where
	tag, err := r.db.Exec(ctx, query, append([]any{c.ID, c.Name, c.Slug, c.UpdatedAt}, args...)...)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	where, args := scope.Where(2, false)
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND `+where, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) UpdatePositions(ctx context.Context, scope domain.Scope, orderedIDs []string) error {
	where, args := scope.Where(3, false)
	query := `UPDATE categories SET position = $2, updated_at = now() WHERE id = $1 AND ` + where
	for i, id := range orderedIDs {
		if _, err := r.db.Exec(ctx, query, append([]any{id, i}, args...)...); err != nil {
			return fmt.Errorf("update category position: %w", err)
		}
	}
	return nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(
		&c.ID, &c.RootUserID, &c.Name, &c.Slug, &c.Position, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
