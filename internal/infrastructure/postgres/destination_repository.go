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

var _ repository.DestinationRepository = (*DestinationRepo)(nil)

// DestinationRepo implementación del puerto DestinationRepository sobre PostgreSQL.
type DestinationRepo struct {
	db querier
}

// NewDestinationRepository construye el adaptador de persistencia para destinos.
func NewDestinationRepository(db querier) *DestinationRepo {
	return &DestinationRepo{db: db}
}

const destinationColumns = `id, root_user_id, name, slug, country, description, images,
	published, highlighted, position, created_at, updated_at`

// Create persiste un destino nuevo.
func (r *DestinationRepo) Create(ctx context.Context, d *entity.Destination) error {
	query := `
		INSERT INTO destinations (id, root_user_id, name, slug, country, description, images,
			published, highlighted, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
			COALESCE((SELECT MAX(position) + 1 FROM destinations WHERE root_user_id = $2), 0),
			$10, $11)`
	_, err := r.db.Exec(ctx, query,
		d.ID, d.RootUserID, d.Name, d.Slug, d.Country, d.Description, d.Images,
		d.Published, d.Highlighted, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert destination: %w", err)
	}
	return nil
}

// GetByID obtiene un destino dentro del scope.
func (r *DestinationRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.Destination, error) {
	where, args := scope.Where(2, false)
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1 AND ` + where
	return r.scanOne(r.db.QueryRow(ctx, query, append([]any{id}, args...)...), "get destination by id")
}

// GetBySlug obtiene un destino por slug dentro del scope.
func (r *DestinationRepo) GetBySlug(ctx context.Context, scope domain.Scope, slug string) (*entity.Destination, error) {
	where, args := scope.Where(2, false)
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE slug = $1 AND ` + where
	return r.scanOne(r.db.QueryRow(ctx, query, append([]any{slug}, args...)...), "get destination by slug")
}

// List lista destinos del scope con paginación.
func (r *DestinationRepo) List(ctx context.Context, scope domain.Scope, onlyPublished bool, limit, offset int) ([]*entity.Destination, error) {
	where, args := scope.Where(1, false)
	if onlyPublished {
		where += " AND published"
	}
	query := fmt.Sprintf(`SELECT `+destinationColumns+`
		FROM destinations WHERE %s
		ORDER BY position, created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Update actualiza un destino dentro del scope.
func (r *DestinationRepo) Update(ctx context.Context, scope domain.Scope, d *entity.Destination) error {
	where, args := scope.Where(10, false)
	query := `
		UPDATE destinations SET name = $2, country = $3, description = $4, images = $5,
			published = $6, highlighted = $7, slug = $8, updated_at = $9
		WHERE id = $1 AND ` + where
	tag, err := r.db.Exec(ctx, query, append([]any{
		d.ID, d.Name, d.Country, d.Description, d.Images,
		d.Published, d.Highlighted, d.Slug, d.UpdatedAt,
	}, args...)...)
	if err != nil {
		return fmt.Errorf("update destination: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un destino dentro del scope.
func (r *DestinationRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	where, args := scope.Where(2, false)
	tag, err := r.db.Exec(ctx, `DELETE FROM destinations WHERE id = $1 AND `+where, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete destination: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePositions fija el orden manual dentro del scope.
func (r *DestinationRepo) UpdatePositions(ctx context.Context, scope domain.Scope, orderedIDs []string) error {
	where, args := scope.Where(3, false)
	query := `UPDATE destinations SET position = $2, updated_at = now() WHERE id = $1 AND ` + where
	for i, id := range orderedIDs {
		if _, err := r.db.Exec(ctx, query, append([]any{id, i}, args...)...); err != nil {
			return fmt.Errorf("update destination position: %w", err)
		}
	}
	return nil
}

func (r *DestinationRepo) scanOne(row pgx.Row, op string) (*entity.Destination, error) {
	d, err := scanDestination(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

func scanDestination(row pgx.Row) (*entity.Destination, error) {
	var d entity.Destination
	if err := row.Scan(
		&d.ID, &d.RootUserID, &d.Name, &d.Slug, &d.Country, &d.Description, &d.Images,
		&d.Published, &d.Highlighted, &d.Position, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}
