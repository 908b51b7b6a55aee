package tenant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malithvisio/magcin-api/internal/application/tenant"
	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
)

// fakeUsers fake mínimo: solo GetByID se usa en el resolver.
type fakeUsers struct {
	users map[string]*entity.User
}

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUsers) GetByEmail(_ context.Context, _ string) (*entity.User, error) { return nil, nil }
func (f *fakeUsers) Update(_ context.Context, _ *entity.User) error               { return nil }
func (f *fakeUsers) ListMembers(_ context.Context, _ string, _, _ int) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUsers) IncrementUsage(_ context.Context, _ string, _ domain.ResourceKind, _ int) (bool, error) {
	return false, nil
}
func (f *fakeUsers) DecrementUsage(_ context.Context, _ string, _ domain.ResourceKind) error {
	return nil
}

func resolverWith(users ...*entity.User) *tenant.Resolver {
	f := &fakeUsers{users: map[string]*entity.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return tenant.NewResolver(f)
}

func activeRoot() *entity.User {
	return &entity.User{
		ID:         "root-1",
		Role:       "root_user",
		IsRootUser: true,
		RootUserID: "root-1",
		CompanyID:  "comp-1",
		TenantID:   "ten-1",
		Plan:       domain.PlanPro,
		IsActive:   true,
	}
}

// Root user válido: el contexto usa su propio id como clave de aislamiento.
func TestResolve_RootUser(t *testing.T) {
	r := resolverWith(activeRoot())

	tc, err := r.Resolve(context.Background(), "root-1", "", "")
	require.NoError(t, err)

	assert.Equal(t, "root-1", tc.UserID)
	assert.Equal(t, "root-1", tc.RootUserID)
	assert.Equal(t, "comp-1", tc.CompanyID)
	assert.Equal(t, domain.PlanPro, tc.Plan)
	assert.True(t, tc.IsRoot())
}

// Member válido: hereda el scope de su root user.
func TestResolve_Member_HeredaScopeDelRoot(t *testing.T) {
	member := &entity.User{
		ID:         "member-1",
		Role:       "member",
		IsRootUser: false,
		RootUserID: "root-1",
		CompanyID:  "comp-1",
		TenantID:   "ten-1",
		IsActive:   true,
	}
	r := resolverWith(member)

	tc, err := r.Resolve(context.Background(), "member-1", "", "")
	require.NoError(t, err)

	assert.Equal(t, "member-1", tc.UserID)
	assert.Equal(t, "root-1", tc.RootUserID, "el member se aísla bajo su root user")
	assert.False(t, tc.IsRoot())
}

// Sin identidad → ErrUnauthenticated.
func TestResolve_SinUserID(t *testing.T) {
	r := resolverWith(activeRoot())

	_, err := r.Resolve(context.Background(), "", "", "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

// Cuenta inexistente → ErrAccountNotFound (token viejo de cuenta borrada).
func TestResolve_CuentaInexistente(t *testing.T) {
	r := resolverWith()

	_, err := r.Resolve(context.Background(), "fantasma", "", "")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

// Cuenta desactivada → ErrAccountInactive.
func TestResolve_CuentaInactiva(t *testing.T) {
	u := activeRoot()
	u.IsActive = false
	r := resolverWith(u)

	_, err := r.Resolve(context.Background(), "root-1", "", "")
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

// El company id reclamado no coincide con el almacenado → ErrTenantMismatch.
func TestResolve_CompanyMismatch(t *testing.T) {
	r := resolverWith(activeRoot())

	_, err := r.Resolve(context.Background(), "root-1", "comp-ajena", "")
	assert.ErrorIs(t, err, domain.ErrTenantMismatch)
}

// Ídem con el tenant id.
func TestResolve_TenantMismatch(t *testing.T) {
	r := resolverWith(activeRoot())

	_, err := r.Resolve(context.Background(), "root-1", "comp-1", "ten-ajeno")
	assert.ErrorIs(t, err, domain.ErrTenantMismatch)
}

// Ids reclamados vacíos no se verifican: son pistas opcionales.
func TestResolve_ClaimsVacios_NoVerifica(t *testing.T) {
	r := resolverWith(activeRoot())

	_, err := r.Resolve(context.Background(), "root-1", "", "")
	assert.NoError(t, err)
}

// Cuenta sin rol: rechazada, nunca tratada como admin.
func TestResolve_SinRol_Rechazada(t *testing.T) {
	u := activeRoot()
	u.Role = ""
	r := resolverWith(u)

	_, err := r.Resolve(context.Background(), "root-1", "", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Member con la referencia al root corrupta (vacía) → cuenta inválida.
func TestResolve_MemberSinRoot_CuentaInvalida(t *testing.T) {
	member := &entity.User{
		ID:       "member-1",
		Role:     "member",
		IsActive: true,
	}
	r := resolverWith(member)

	_, err := r.Resolve(context.Background(), "member-1", "", "")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
