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

var _ repository.TeamRepository = (*TeamRepo)(nil)

// TeamRepo implementación del puerto TeamRepository sobre PostgreSQL.
type TeamRepo struct {
	db querier
}

func NewTeamRepository(db querier) *TeamRepo {
	return &TeamRepo{db: db}
}

const teamColumns = `id, root_user_id, name, role_title, bio, photo,
	published, position, created_at, updated_at`

func (r *TeamRepo) Create(ctx context.Context, m *entity.TeamMember) error {
	query := `
		INSERT INTO team_members (id, root_user_id, name, role_title, bio, photo,
			published, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
			COALESCE((SELECT MAX(position) + 1 FROM team_members WHERE root_user_id = $2), 0),
			$8, $9)`
	_, err := r.db.Exec(ctx, query,
		m.ID, m.RootUserID, m.Name, m.RoleTitle, m.Bio, m.Photo,
		m.Published, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert team member: %w", err)
	}
	return nil
}

func (r *TeamRepo) GetByID(ctx context.Context, scope domain.Scope, id string) (*entity.TeamMember, error) {
	where, args := scope.Where(2, false)
	query := `SELECT ` + teamColumns + ` FROM team_members WHERE id = $1 AND ` + where
	m, err := scanTeamMember(r.db.QueryRow(ctx, query, append([]any{id}, args...)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team member by id: %w", err)
	}
	return m, nil
}

func (r *TeamRepo) List(ctx context.Context, scope domain.Scope, onlyPublished bool, limit, offset int) ([]*entity.TeamMember, error) {
	where, args := scope.Where(1, false)
	if onlyPublished {
		where += " AND published"
	}
	query := fmt.Sprintf(`SELECT `+teamColumns+`
		FROM team_members WHERE %s
		ORDER BY position, created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()
	var list []*entity.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *TeamRepo) Update(ctx context.Context, scope domain.Scope, m *entity.TeamMember) error {
	where, args := scope.Where(8, false)
	query := `
		UPDATE team_members SET name = $2, role_title = $3, bio = $4, photo = $5,
			published = $6, updated_at = $7
		WHERE id = $1 AND ` + where
	tag, err := r.db.Exec(ctx, query, append([]any{
		m.ID, m.Name, m.RoleTitle, m.Bio, m.Photo, m.Published, m.UpdatedAt,
	}, args...)...)
	if err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TeamRepo) Delete(ctx context.Context, scope domain.Scope, id string) error {
	where, args := scope.Where(2, false)
	tag, err := r.db.Exec(ctx, `DELETE FROM team_members WHERE id = $1 AND `+where, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TeamRepo) UpdatePositions(ctx context.Context, scope domain.Scope, orderedIDs []string) error {
	where, args := scope.Where(3, false)
	query := `UPDATE team_members SET position = $2, updated_at = now() WHERE id = $1 AND ` + where
	for i, id := range orderedIDs {
		if _, err := r.db.Exec(ctx, query, append([]any{id, i}, args...)...); err != nil {
			return fmt.Errorf("update team member position: %w", err)
		}
	}
	return nil
}

func scanTeamMember(row pgx.Row) (*entity.TeamMember, error) {
	var m entity.TeamMember
	if err := row.Scan(
		&m.ID, &m.RootUserID, &m.Name, &m.RoleTitle, &m.Bio, &m.Photo,
		&m.Published, &m.Position, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}
