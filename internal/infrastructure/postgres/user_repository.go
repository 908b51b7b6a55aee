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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// usage_stats vive como JSONB embebido en la fila de la cuenta.
type UserRepo struct {
	db querier
}

// NewUserRepository construye el adaptador de persistencia para cuentas.
func NewUserRepository(db querier) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, name, email, password_hash, role, is_root_user, root_user_id,
	company_id, tenant_id, plan, usage_stats, is_active, created_at, updated_at`

// Create persiste una cuenta nueva.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	stats, err := marshalUsage(user.UsageStats)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.IsRootUser,
		user.RootUserID, user.CompanyID, user.TenantID, string(user.Plan), stats,
		user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id), "get user by id")
}

// GetByEmail obtiene una cuenta por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(r.db.QueryRow(ctx, query, email), "get user by email")
}

// Update actualiza los campos mutables de una cuenta. No toca usage_stats:
// esos contadores solo cambian vía IncrementUsage/DecrementUsage.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, password_hash = $4, role = $5,
			plan = $6, is_active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
		string(user.Plan), user.IsActive, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ListMembers lista las cuentas member/admin de un root user con paginación.
func (r *UserRepo) ListMembers(ctx context.Context, rootUserID string, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE root_user_id = $1 AND NOT is_root_user
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, rootUserID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// IncrementUsage suma 1 al contador del kind en una sola operación
// condicional: el WHERE exige contador pre-incremento bajo el límite (o
// límite -1), así dos creates concurrentes no pueden pasarse del tope.
func (r *UserRepo) IncrementUsage(ctx context.Context, rootUserID string, kind domain.ResourceKind, limit int) (bool, error) {
	query := `
		UPDATE users
		SET usage_stats = jsonb_set(
				COALESCE(usage_stats, '{}'::jsonb),
				ARRAY[$2],
				(COALESCE((usage_stats->>$2)::int, 0) + 1)::text::jsonb),
			updated_at = now()
		WHERE id = $1
		  AND is_root_user
		  AND ($3::int = -1 OR COALESCE((usage_stats->>$2)::int, 0) < $3)`
	tag, err := r.db.Exec(ctx, query, rootUserID, string(kind), limit)
	if err != nil {
		return false, fmt.Errorf("increment usage: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// DecrementUsage resta 1 al contador del kind con piso en cero (GREATEST).
func (r *UserRepo) DecrementUsage(ctx context.Context, rootUserID string, kind domain.ResourceKind) error {
	query := `
		UPDATE users
		SET usage_stats = jsonb_set(
				COALESCE(usage_stats, '{}'::jsonb),
				ARRAY[$2],
				GREATEST(COALESCE((usage_stats->>$2)::int, 0) - 1, 0)::text::jsonb),
			updated_at = now()
		WHERE id = $1 AND is_root_user`
	if _, err := r.db.Exec(ctx, query, rootUserID, string(kind)); err != nil {
		return fmt.Errorf("decrement usage: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var plan string
	var stats []byte
	if err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsRootUser,
		&u.RootUserID, &u.CompanyID, &u.TenantID, &plan, &stats,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Plan = domain.SubscriptionPlan(plan)
	usage, err := unmarshalUsage(stats)
	if err != nil {
		return nil, err
	}
	u.UsageStats = usage
	return &u, nil
}

func marshalUsage(stats map[domain.ResourceKind]int) ([]byte, error) {
	if stats == nil {
		stats = map[domain.ResourceKind]int{}
	}
	raw := make(map[string]int, len(stats))
	for k, v := range stats {
		raw[string(k)] = v
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal usage_stats: %w", err)
	}
	return b, nil
}

func unmarshalUsage(b []byte) (map[domain.ResourceKind]int, error) {
	if len(b) == 0 {
		return map[domain.ResourceKind]int{}, nil
	}
	raw := map[string]int{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal usage_stats: %w", err)
	}
	out := make(map[domain.ResourceKind]int, len(raw))
	for k, v := range raw {
		out[domain.ResourceKind(k)] = v
	}
	return out, nil
}
