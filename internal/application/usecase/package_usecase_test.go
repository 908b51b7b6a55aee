package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/internal/application/quota"
	"github.com/malithvisio/magcin-api/internal/application/usecase"
	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El TxRunner falso toma un snapshot antes de ejecutar fn y
// lo restaura si fn falla, imitando el rollback: así el test puede verificar
// que el incremento de cuota y el insert se revierten juntos.
// ─────────────────────────────────────────────────────────────────────────────

type memUsers struct {
	repository.UserRepository
	users map[string]*entity.User
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) IncrementUsage(_ context.Context, rootUserID string, kind domain.ResourceKind, limit int) (bool, error) {
	u, ok := m.users[rootUserID]
	if !ok || !u.IsRootUser {
		return false, nil
	}
	if limit != domain.Unlimited && u.Usage(kind) >= limit {
		return false, nil
	}
	if u.UsageStats == nil {
		u.UsageStats = map[domain.ResourceKind]int{}
	}
	u.UsageStats[kind]++
	return true, nil
}

func (m *memUsers) DecrementUsage(_ context.Context, rootUserID string, kind domain.ResourceKind) error {
	u, ok := m.users[rootUserID]
	if ok && u.Usage(kind) > 0 {
		u.UsageStats[kind]--
	}
	return nil
}

type memPackages struct {
	repository.PackageRepository
	items   map[string]*entity.TourPackage
	slugErr error // error a devolver en GetBySlug (simula caída de la DB)
}

func (m *memPackages) Create(_ context.Context, p *entity.TourPackage) error {
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memPackages) GetByID(_ context.Context, scope domain.Scope, id string) (*entity.TourPackage, error) {
	p, ok := m.items[id]
	if !ok || p.RootUserID != scope.RootUserID() {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memPackages) GetBySlug(_ context.Context, scope domain.Scope, s string) (*entity.TourPackage, error) {
	if m.slugErr != nil {
		return nil, m.slugErr
	}
	for _, p := range m.items {
		if p.Slug == s && p.RootUserID == scope.RootUserID() {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memPackages) Delete(_ context.Context, scope domain.Scope, id string) error {
	p, ok := m.items[id]
	if !ok || p.RootUserID != scope.RootUserID() {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type fakeTx struct {
	users    *memUsers
	packages *memPackages
}

func (f *fakeTx) Run(_ context.Context, fn func(usecase.TxRepos) error) error {
	userSnap := make(map[string]map[domain.ResourceKind]int, len(f.users.users))
	for id, u := range f.users.users {
		stats := make(map[domain.ResourceKind]int, len(u.UsageStats))
		for k, v := range u.UsageStats {
			stats[k] = v
		}
		userSnap[id] = stats
	}
	pkgSnap := make(map[string]*entity.TourPackage, len(f.packages.items))
	for id, p := range f.packages.items {
		cp := *p
		pkgSnap[id] = &cp
	}

	if err := fn(usecase.TxRepos{Users: f.users, Packages: f.packages}); err != nil {
		for id, stats := range userSnap {
			f.users.users[id].UsageStats = stats
		}
		f.packages.items = pkgSnap
		return err
	}
	return nil
}

type stubCategories struct {
	repository.CategoryRepository
}

func (stubCategories) GetByID(_ context.Context, _ domain.Scope, _ string) (*entity.Category, error) {
	return nil, nil
}

func packageFixture(plan domain.SubscriptionPlan, used int) (*usecase.PackageUseCase, *memUsers, *memPackages) {
	users := &memUsers{users: map[string]*entity.User{
		"root-1": {
			ID:         "root-1",
			Role:       domain.RoleRootUser,
			IsRootUser: true,
			IsActive:   true,
			Plan:       plan,
			UsageStats: map[domain.ResourceKind]int{domain.KindPackages: used},
		},
	}}
	packages := &memPackages{items: map[string]*entity.TourPackage{}}
	ledger := quota.NewLedger(users, domain.DefaultPlanTable())
	tx := &fakeTx{users: users, packages: packages}
	uc := usecase.NewPackageUseCase(packages, stubCategories{}, ledger, tx)
	return uc, users, packages
}

func tcRoot() domain.TenantContext {
	return domain.TenantContext{
		UserID:     "root-1",
		RootUserID: "root-1",
		Role:       domain.RoleRootUser,
		Plan:       domain.PlanFree,
	}
}

func createPkgReq(name string) dto.CreatePackageRequest {
	return dto.CreatePackageRequest{
		Name:  name,
		Days:  4,
		Price: decimal.RequireFromString("350.00"),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Create con cuota
// ─────────────────────────────────────────────────────────────────────────────

// Bajo el límite: el paquete se crea con slug normalizado y el contador sube.
func TestPackageCreate_BajoElLimite(t *testing.T) {
	uc, users, packages := packageFixture(domain.PlanFree, 0)

	resp, err := uc.Create(context.Background(), tcRoot(), createPkgReq("Cañón del Chicamocha"))
	require.NoError(t, err)

	assert.Equal(t, "canon-del-chicamocha", resp.Slug)
	assert.Len(t, packages.items, 1)
	assert.Equal(t, 1, users.users["root-1"].Usage(domain.KindPackages))
}

// En el límite: QuotaExceededError y nada persiste, ni el paquete ni el
// incremento (rollback conjunto).
func TestPackageCreate_EnElLimite_RollbackConjunto(t *testing.T) {
	uc, users, packages := packageFixture(domain.PlanFree, 3) // free permite 3 paquetes

	_, err := uc.Create(context.Background(), tcRoot(), createPkgReq("Tour Café"))

	var qe *domain.QuotaExceededError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, domain.KindPackages, qe.Kind)
	assert.Equal(t, domain.PlanFree, qe.Plan)
	assert.Empty(t, packages.items)
	assert.Equal(t, 3, users.users["root-1"].Usage(domain.KindPackages))
}

func TestPackageCreate_SlugDuplicado(t *testing.T) {
	uc, _, _ := packageFixture(domain.PlanPro, 0)

	_, err := uc.Create(context.Background(), tcRoot(), createPkgReq("Tour Café"))
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), tcRoot(), createPkgReq("Tour CAFÉ"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Una falla del repo al verificar el slug aborta el create: no se lee como
// "sin duplicado" ni se llega al insert.
func TestPackageCreate_ErrorAlVerificarSlug(t *testing.T) {
	uc, users, packages := packageFixture(domain.PlanFree, 0)
	packages.slugErr = errors.New("conexión caída")

	_, err := uc.Create(context.Background(), tcRoot(), createPkgReq("Tour Café"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, packages.items)
	assert.Equal(t, 0, users.users["root-1"].Usage(domain.KindPackages))
}

func TestPackageCreate_MemberSinPermiso(t *testing.T) {
	uc, _, _ := packageFixture(domain.PlanFree, 0)

	member := tcRoot()
	member.UserID = "member-1"
	member.Role = domain.RoleMember
	_, err := uc.Create(context.Background(), member, createPkgReq("Tour Café"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete con cuota
// ─────────────────────────────────────────────────────────────────────────────

// Borrar devuelve la cuota: el contador baja en la misma transacción.
func TestPackageDelete_DecrementaContador(t *testing.T) {
	uc, users, packages := packageFixture(domain.PlanFree, 0)

	resp, err := uc.Create(context.Background(), tcRoot(), createPkgReq("Tour Café"))
	require.NoError(t, err)
	require.Equal(t, 1, users.users["root-1"].Usage(domain.KindPackages))

	require.NoError(t, uc.Delete(context.Background(), tcRoot(), resp.ID))
	assert.Empty(t, packages.items)
	assert.Equal(t, 0, users.users["root-1"].Usage(domain.KindPackages))
}

// Borrar algo inexistente no toca el contador (rollback del decremento).
func TestPackageDelete_Inexistente(t *testing.T) {
	uc, users, _ := packageFixture(domain.PlanFree, 2)

	err := uc.Delete(context.Background(), tcRoot(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 2, users.users["root-1"].Usage(domain.KindPackages))
}

func TestPackageReorder_ListaVacia(t *testing.T) {
	uc, _, _ := packageFixture(domain.PlanFree, 0)

	err := uc.Reorder(context.Background(), tcRoot(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
