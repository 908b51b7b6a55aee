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

var _ repository.TestimonialRepository = (*TestimonialRepo)(nil)

// TestimonialRepo implementación del puerto TestimonialRepository sobre PostgreSQL.
type TestimonialRepo struct {
	db querier
}

func NewTestimonialRepository(db querier) *TestimonialRepo {
	return &TestimonialRepo{db: db}
}

const testimonialColumns = `id, root_user_id, author, COALESCE(package_id, ''), rating, body,
	published, created_at, updated_at`

func (r *TestimonialRepo) Create(ctx context.Context, t *entity.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, root_user_id, author, package_id, rating, body,
			published, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.RootUserID, t.Author, t.PackageID, t.Rating, t.Body,
		t.Published, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert testimonial: %w", err)
	}
	return nil
}

func (r *TestimonialRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.Testimonial, error) {
	where, args := scope.Where(2, false)
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1 AND ` + where
	t, err := scanTestimonial(r.db.QueryRow(ctx, query, append([]any{id}, args...)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get testimonial by id: %w", err)
	}
	return t, nil
}

func (r *TestimonialRepo) List(ctx context.Context, scope domain.Scope, onlyPublished bool, limit, offset int) ([]*entity.Testimonial, error) {
	where, args := scope.Where(1, false)
	if onlyPublished {
		where += " AND published"
	}
	query := fmt.Sprintf(`SELECT `+testimonialColumns+`
		FROM testimonials WHERE %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TestimonialRepo) Update(ctx context.Context, scope domain.Scope, t *entity.Testimonial) error {
	where, args := scope.Where(8, false)
	query := `
		UPDATE testimonials SET author = $2, package_id = NULLIF($3, ''), rating = $4,
			body = $5, published = $6, updated_at = $7
		WHERE id = $1 AND ` + where
	tag, err := r.db.Exec(ctx, query, append([]any{
		t.ID, t.Author, t.PackageID, t.Rating, t.Body, t.Published, t.UpdatedAt,
	}, args...)...)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TestimonialRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	where, args := scope.Where(2, false)
	tag, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1 AND `+where, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTestimonial(row pgx.Row) (*entity.Testimonial, error) {
	var t entity.Testimonial
	if err := row.Scan(
		&t.ID, &t.RootUserID, &t.Author, &t.PackageID, &t.Rating, &t.Body,
		&t.Published, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}
