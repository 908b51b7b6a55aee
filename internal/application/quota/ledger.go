// Package quota implementa el ledger de cuotas por plan de suscripción: los
// contadores usage_stats del root user comparados contra la tabla de límites
// antes de permitir cada creación de contenido.
package quota

import (
	"context"
	"fmt"

	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
)

// Ledger compara el uso actual contra la tabla de límites del plan. La tabla
// se inyecta en la construcción (inmutable, sin estado global) para que los
// tests puedan sustituirla.
type Ledger struct {
	users repository.UserRepository
	plans domain.PlanTable
}

// NewLedger construye el ledger con la tabla de planes indicada.
func NewLedger(users repository.UserRepository, plans domain.PlanTable) *Ledger {
	return &Ledger{users: users, plans: plans}
}

// CanCreate informa si el root user puede crear un recurso más del kind.
// Los members nunca tienen cuota propia: siempre false. Es un pre-chequeo
// informativo; la garantía real contra carreras la da Increment.
func (l *Ledger) CanCreate(ctx context.Context, rootUserID string, kind domain.ResourceKind) (bool, error) {
	user, err := l.users.GetByID(ctx, rootUserID)
	if err != nil {
		return false, fmt.Errorf("quota: cargar cuenta: %w", err)
	}
	if user == nil {
		return false, domain.ErrAccountNotFound
	}
	if !user.IsRootUser {
		return false, nil
	}
	limit := l.plans.Limit(user.Plan, kind)
	if limit == domain.Unlimited {
		return true, nil
	}
	return user.Usage(kind) < limit, nil
}

// Remaining devuelve cuántos recursos del kind puede crear aún el root user.
// domain.Unlimited (-1) significa sin límite. El resultado nunca es negativo:
// el uso sobre el límite (plan degradado) reporta 0.
func (l *Ledger) Remaining(ctx context.Context, rootUserID string, kind domain.ResourceKind) (int, error) {
	user, err := l.users.GetByID(ctx, rootUserID)
	if err != nil {
		return 0, fmt.Errorf("quota: cargar cuenta: %w", err)
	}
	if user == nil {
		return 0, domain.ErrAccountNotFound
	}
	if !user.IsRootUser {
		return 0, nil
	}
	limit := l.plans.Limit(user.Plan, kind)
	if limit == domain.Unlimited {
		return domain.Unlimited, nil
	}
	left := limit - user.Usage(kind)
	if left < 0 {
		left = 0
	}
	return left, nil
}

// UsageReport arma la vista de uso vs límite de cada kind para el admin.
func (l *Ledger) UsageReport(ctx context.Context, rootUserID string) (*dto.PlanUsageResponse, error) {
	user, err := l.users.GetByID(ctx, rootUserID)
	if err != nil {
		return nil, fmt.Errorf("quota: cargar cuenta: %w", err)
	}
	if user == nil {
		return nil, domain.ErrAccountNotFound
	}
	if !user.IsRootUser {
		return nil, domain.ErrForbidden
	}
	usage := make([]dto.QuotaUsageDTO, 0, len(domain.AllKinds()))
	for _, kind := range domain.AllKinds() {
		limit := l.plans.Limit(user.Plan, kind)
		u := dto.QuotaUsageDTO{
			Kind:  string(kind),
			Used:  user.Usage(kind),
			Limit: limit,
		}
		if limit == domain.Unlimited {
			u.Unlimited = true
		} else {
			left := limit - u.Used
			if left < 0 {
				left = 0
			}
			u.Remaining = left
		}
		usage = append(usage, u)
	}
	return &dto.PlanUsageResponse{Plan: string(user.Plan), Usage: usage}, nil
}

// Increment suma 1 al contador del kind mediante el update condicional del
// repositorio: una sola operación atómica que solo procede si el contador
// pre-incremento está bajo el límite, de modo que dos creates concurrentes
// no pueden pasarse del tope. Recibe el repositorio (posiblemente atado a
// una transacción) para que el incremento y el insert del contenido
// compartan tx y se reviertan juntos.
func (l *Ledger) Increment(ctx context.Context, users repository.UserRepository, rootUserID string, kind domain.ResourceKind) error {
	user, err := users.GetByID(ctx, rootUserID)
	if err != nil {
		return fmt.Errorf("quota: cargar cuenta: %w", err)
	}
	if user == nil {
		return domain.ErrAccountNotFound
	}
	if !user.IsRootUser {
		return domain.ErrForbidden
	}
	limit := l.plans.Limit(user.Plan, kind)
	ok, err := users.IncrementUsage(ctx, rootUserID, kind, limit)
	if err != nil {
		return fmt.Errorf("quota: incrementar uso: %w", err)
	}
	if !ok {
		return &domain.QuotaExceededError{Kind: kind, Plan: user.Plan}
	}
	return nil
}

// Decrement resta 1 al contador del kind, con piso en cero (el repositorio
// garantiza que nunca queda negativo).
func (l *Ledger) Decrement(ctx context.Context, users repository.UserRepository, rootUserID string, kind domain.ResourceKind) error {
	if err := users.DecrementUsage(ctx, rootUserID, kind); err != nil {
		return fmt.Errorf("quota: decrementar uso: %w", err)
	}
	return nil
}
