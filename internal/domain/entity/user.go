package entity

import (
	"time"

	"github.com/malithvisio/magcin-api/internal/domain"
)

// User representa una cuenta del sistema: root user (dueño del tenant y
// unidad de facturación) o member (alcanzado bajo un root user, sin cuota
// propia).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // root_user, admin, member, super_admin
	IsRootUser   bool
	RootUserID   string // para members: referencia al root user; para roots: su propio ID
	CompanyID    string
	TenantID     string
	Plan         domain.SubscriptionPlan
	UsageStats   map[domain.ResourceKind]int // contadores de uso por kind (solo roots)
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EffectiveRootID devuelve la clave de aislamiento de la cuenta: su propio
// id si es root user, la referencia almacenada si es member.
func (u *User) EffectiveRootID() string {
	if u.IsRootUser {
		return u.ID
	}
	return u.RootUserID
}

// Usage devuelve el contador actual del kind (0 si no existe la entrada).
func (u *User) Usage(kind domain.ResourceKind) int {
	if u.UsageStats == nil {
		return 0
	}
	return u.UsageStats[kind]
}
