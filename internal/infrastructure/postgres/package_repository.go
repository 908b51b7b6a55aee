package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
)

var _ repository.PackageRepository = (*PackageRepo)(nil)

// PackageRepo implementación del puerto PackageRepository sobre PostgreSQL.
// Todas las consultas llevan el predicado conjuntivo del Scope; la tabla de
// catálogo almacena solo root_user_id.
type PackageRepo struct {
	db querier
}

// NewPackageRepository construye el adaptador de persistencia para paquetes.
func NewPackageRepository(db querier) *PackageRepo {
	return &PackageRepo{db: db}
}

const packageColumns = `id, root_user_id, COALESCE(category_id, ''), name, slug, summary, description,
	days, nights, price, price_before_discount, inclusions, exclusions, itinerary, images,
	published, highlighted, position, created_at, updated_at`

// Create persiste un paquete nuevo.
func (r *PackageRepo) Create(ctx context.Context, p *entity.TourPackage) error {
	itinerary, err := json.Marshal(p.Itinerary)
	if err != nil {
		return fmt.Errorf("marshal itinerary: %w", err)
	}
	query := `
		INSERT INTO packages (id, root_user_id, category_id, name, slug, summary, description,
			days, nights, price, price_before_discount, inclusions, exclusions, itinerary, images,
			published, highlighted, position, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17,
			COALESCE((SELECT MAX(position) + 1 FROM packages WHERE root_user_id = $2), 0),
			$18, $19)`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.RootUserID, p.CategoryID, p.Name, p.Slug, p.Summary, p.Description,
		p.Days, p.Nights, p.Price, p.PriceBeforeDiscount, p.Inclusions, p.Exclusions,
		itinerary, p.Images, p.Published, p.Highlighted, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert package: %w", err)
	}
	return nil
}

// GetByID obtiene un paquete dentro del scope.
func (r *PackageRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.TourPackage, error) {
	where, args := scope.Where(2, false)
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1 AND ` + where
	return r.scanOne(r.db.QueryRow(ctx, query, append([]any{id}, args...)...), "get package by id")
}

// GetBySlug obtiene un paquete por slug dentro del scope.
func (r *PackageRepo) GetBySlug(ctx context.Context, scope domain.Scope, slug string) (*entity.TourPackage, error) {
	where, args := scope.Where(2, false)
	query := `SELECT ` + packageColumns + ` FROM packages WHERE slug = $1 AND ` + where
	return r.scanOne(r.db.QueryRow(ctx, query, append([]any{slug}, args...)...), "get package by slug")
}

// List lista paquetes del scope con paginación, opcionalmente solo publicados.
func (r *PackageRepo) List(ctx context.Context, scope domain.Scope, onlyPublished bool, limit, offset int) ([]*entity.TourPackage, error) {
	where, args := scope.Where(1, false)
	if onlyPublished {
		where += " AND published"
	}
	query := fmt.Sprintf(`SELECT `+packageColumns+`
		FROM packages WHERE %s
		ORDER BY position, created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()
	var list []*entity.TourPackage
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un paquete dentro del scope. ErrNotFound si no hay fila
// (inexistente o de otro tenant, indistinguibles).
func (r *PackageRepo) Update(ctx context.Context, scope domain.Scope, p *entity.TourPackage) error {
	itinerary, err := json.Marshal(p.Itinerary)
	if err != nil {
		return fmt.Errorf("marshal itinerary: %w", err)
	}
	where, args := scope.Where(17, false)
	query := `
		UPDATE packages SET category_id = NULLIF($2, ''), name = $3, summary = $4, description = $5,
			days = $6, nights = $7, price = $8, price_before_discount = $9,
			inclusions = $10, exclusions = $11, itinerary = $12, images = $13,
			published = $14, highlighted = $15, updated_at = $16
		WHERE id = $1 AND ` + where
	tag, err := r.db.Exec(ctx, query, append([]any{
		p.ID, p.CategoryID, p.Name, p.Summary, p.Description,
		p.Days, p.Nights, p.Price, p.PriceBeforeDiscount,
		p.Inclusions, p.Exclusions, itinerary, p.Images,
		p.Published, p.Highlighted, p.UpdatedAt,
	}, args...)...)
	if err != nil {
		return fmt.Errorf("update package: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un paquete dentro del scope. ErrNotFound si no hay fila.
func (r *PackageRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	where, args := scope.Where(2, false)
	tag, err := r.db.Exec(ctx, `DELETE FROM packages WHERE id = $1 AND `+where, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePositions fija position según el orden de orderedIDs, solo dentro
// del scope (los ids ajenos no se tocan).
func (r *PackageRepo) UpdatePositions(ctx context.Context, scope domain.Scope, orderedIDs []string) error {
	where, args := scope.Where(3, false)
	query := `UPDATE packages SET position = $2, updated_at = now() WHERE id = $1 AND ` + where
	for i, id := range orderedIDs {
		if _, err := r.db.Exec(ctx, query, append([]any{id, i}, args...)...); err != nil {
			return fmt.Errorf("update package position: %w", err)
		}
	}
	return nil
}

func (r *PackageRepo) scanOne(row pgx.Row, op string) (*entity.TourPackage, error) {
	p, err := scanPackage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func scanPackage(row pgx.Row) (*entity.TourPackage, error) {
	var p entity.TourPackage
	var itinerary []byte
	if err := row.Scan(
		&p.ID, &p.RootUserID, &p.CategoryID, &p.Name, &p.Slug, &p.Summary, &p.Description,
		&p.Days, &p.Nights, &p.Price, &p.PriceBeforeDiscount, &p.Inclusions, &p.Exclusions,
		&itinerary, &p.Images, &p.Published, &p.Highlighted, &p.Position,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(itinerary) > 0 {
		if err := json.Unmarshal(itinerary, &p.Itinerary); err != nil {
			return nil, fmt.Errorf("unmarshal itinerary: %w", err)
		}
	}
	return &p, nil
}
