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

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación del puerto ActivityRepository sobre PostgreSQL.
type ActivityRepo struct {
	db querier
}

func NewActivityRepository(db querier) *ActivityRepo {
	return &ActivityRepo{db: db}
}

const activityColumns = `id, root_user_id, name, slug, description, duration, difficulty,
	published, position, created_at, updated_at`

func (r *ActivityRepo) Create(ctx context.Context, a *entity.Activity) error {
	query := `
		INSERT INTO activities (id, root_user_id, name, slug, description, duration, difficulty,
			published, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			COALESCE((SELECT MAX(position) + 1 FROM activities WHERE root_user_id = $2), 0),
			$9, $10)`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.RootUserID, a.Name, a.Slug, a.Description, a.Duration, a.Difficulty,
		a.Published, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.Activity, error) {
	where, args := scope.Where(2, false)
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1 AND ` + where
	a, err := scanActivity(r.db.QueryRow(ctx, query, append([]any{id}, args...)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity by id: %w", err)
	}
	return a, nil
}

// GetBySlug obtiene una actividad por slug dentro del scope.
func (r *ActivityRepo) GetBySlug(ctx context.Context, scope domain.Scope, slug string) (*entity.Activity, error) {
	where, args := scope.Where(2, false)
	query := `SELECT ` + activityColumns + ` FROM activities WHERE slug = $1 AND ` + where
	a, err := scanActivity(r.db.QueryRow(ctx, query, append([]any{slug}, args...)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity by slug: %w", err)
	}
	return a, nil
}

func (r *ActivityRepo) List(ctx context.Context, scope domain.Scope, onlyPublished bool, limit, offset int) ([]*entity.Activity, error) {
	where, args := scope.Where(1, false)
	if onlyPublished {
		where += " AND published"
	}
	query := fmt.Sprintf(`SELECT `+activityColumns+`
		FROM activities WHERE %s
		ORDER BY position, created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *ActivityRepo) Update(ctx context.Context, scope domain.Scope, a *entity.Activity) error {
	where, args := scope.Where(9, false)
	query := `
		UPDATE activities SET name = $2, description = $3, duration = $4, difficulty = $5,
			published = $6, slug = $7, updated_at = $8
		WHERE id = $1 AND ` + where
	tag, err := r.db.Exec(ctx, query, append([]any{
		a.ID, a.Name, a.Description, a.Duration, a.Difficulty,
		a.Published, a.Slug, a.UpdatedAt,
	}, args...)...)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ActivityRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	where, args := scope.Where(2, false)
	tag, err := r.db.Exec(ctx, `DELETE FROM activities WHERE id = $1 AND `+where, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ActivityRepo) UpdatePositions(ctx context.Context, scope domain.Scope, orderedIDs []string) error {
	where, args := scope.Where(3, false)
	query := `UPDATE activities SET position = $2, updated_at = now() WHERE id = $1 AND ` + where
	for i, id := range orderedIDs {
		if _, err := r.db.Exec(ctx, query, append([]any{id, i}, args...)...); err != nil {
			return fmt.Errorf("update activity position: %w", err)
		}
	}
	return nil
}

func scanActivity(row pgx.Row) (*entity.Activity, error) {
	var a entity.Activity
	if err := row.Scan(
		&a.ID, &a.RootUserID, &a.Name, &a.Slug, &a.Description, &a.Duration, &a.Difficulty,
		&a.Published, &a.Position, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
