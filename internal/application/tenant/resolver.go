// Package tenant resuelve la identidad del caller contra la cuenta
// almacenada y produce el TenantContext que alimenta todo el scoping.
package tenant

import (
	"context"
	"fmt"

	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
)

// Resolver deriva {userID, rootUserID, companyID, tenantID, role} de un
// identificador de usuario. Los ids de company/tenant que lleguen en la
// request son pistas no confiables: se verifican contra el registro, nunca
// se aceptan como autoritativos.
type Resolver struct {
	users repository.UserRepository
}

// NewResolver construye el resolver.
func NewResolver(users repository.UserRepository) *Resolver {
	return &Resolver{users: users}
}

// Resolve valida la cuenta y devuelve el contexto completo. Sin efectos
// secundarios. Errores distinguibles para que la capa HTTP mapee el status
// correcto: ErrUnauthenticated (401), ErrAccountNotFound (401),
// ErrAccountInactive (403), ErrTenantMismatch (403).
func (r *Resolver) Resolve(ctx context.Context, userID, claimedCompanyID, claimedTenantID string) (domain.TenantContext, error) {
	if userID == "" {
		return domain.TenantContext{}, domain.ErrUnauthenticated
	}
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return domain.TenantContext{}, fmt.Errorf("resolver cuenta: %w", err)
	}
	if user == nil {
		return domain.TenantContext{}, domain.ErrAccountNotFound
	}
	if !user.IsActive {
		return domain.TenantContext{}, domain.ErrAccountInactive
	}
	if claimedCompanyID != "" && claimedCompanyID != user.CompanyID {
		return domain.TenantContext{}, domain.ErrTenantMismatch
	}
	if claimedTenantID != "" && claimedTenantID != user.TenantID {
		return domain.TenantContext{}, domain.ErrTenantMismatch
	}
	// Una cuenta sin rol se rechaza; no hay default de admin.
	if user.Role == "" {
		return domain.TenantContext{}, domain.ErrUnauthorized
	}
	rootID := user.EffectiveRootID()
	if rootID == "" {
		// Member sin referencia a root: dato corrupto, tratar como cuenta inválida.
		return domain.TenantContext{}, domain.ErrAccountNotFound
	}
	return domain.TenantContext{
		UserID:     user.ID,
		RootUserID: rootID,
		CompanyID:  user.CompanyID,
		TenantID:   user.TenantID,
		Role:       user.Role,
		Plan:       user.Plan,
	}, nil
}
