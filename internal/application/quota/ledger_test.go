package quota_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malithvisio/magcin-api/internal/application/quota"
	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const rootID = "root-1"

// memUserRepo repo en memoria con la misma semántica condicional del
// incremento que la implementación SQL: solo procede si la cuenta es root y
// el contador pre-incremento está bajo el límite.
type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	m := &memUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return m.users[id], nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) Update(_ context.Context, u *entity.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *memUserRepo) ListMembers(_ context.Context, rootUserID string, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.users {
		if !u.IsRootUser && u.RootUserID == rootUserID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUserRepo) IncrementUsage(_ context.Context, rootUserID string, kind domain.ResourceKind, limit int) (bool, error) {
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

func (m *memUserRepo) DecrementUsage(_ context.Context, rootUserID string, kind domain.ResourceKind) error {
	u, ok := m.users[rootUserID]
	if ok && u.UsageStats != nil && u.UsageStats[kind] > 0 {
		u.UsageStats[kind]--
	}
	return nil
}

func rootWith(plan domain.SubscriptionPlan, usage map[domain.ResourceKind]int) *entity.User {
	return &entity.User{
		ID:         rootID,
		Role:       "root_user",
		IsRootUser: true,
		RootUserID: rootID,
		Plan:       plan,
		UsageStats: usage,
		IsActive:   true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CanCreate / Remaining
// ──────────────────────────────────────────────────────────────────────────────

// Plan free con 2 de 3 paquetes usados: todavía puede crear.
func TestCanCreate_BajoElLimite(t *testing.T) {
	repo := newMemUserRepo(rootWith(domain.PlanFree, map[domain.ResourceKind]int{domain.KindPackages: 2}))
	ledger := quota.NewLedger(repo, domain.DefaultPlanTable())

	ok, err := ledger.CanCreate(context.Background(), rootID, domain.KindPackages)
	require.NoError(t, err)
	assert.True(t, ok)
}

// Plan free con los 3 paquetes usados: techo alcanzado.
func TestCanCreate_EnElLimite(t *testing.T) {
	repo := newMemUserRepo(rootWith(domain.PlanFree, map[domain.ResourceKind]int{domain.KindPackages: 3}))
	ledger := quota.NewLedger(repo, domain.DefaultPlanTable())

	ok, err := ledger.CanCreate(context.Background(), rootID, domain.KindPackages)
	require.NoError(t, err)
	assert.False(t, ok, "al llegar al límite del plan no se permite crear más")
}

// pro_max: todo ilimitado, cualquier contador pasa.
func TestCanCreate_PlanIlimitado(t *testing.T) {
	repo := newMemUserRepo(rootWith(domain.PlanProMax, map[domain.ResourceKind]int{domain.KindBlogs: 100000}))
	ledger := quota.NewLedger(repo, domain.DefaultPlanTable())

	ok, err := ledger.CanCreate(context.Background(), rootID, domain.KindBlogs)
	require.NoError(t, err)
	assert.True(t, ok, "el sentinela -1 significa sin límite, no límite cero")
}

// Un member nunca tiene cuota propia.
func TestCanCreate_MemberSiempreFalse(t *testing.T) {
	member := &entity.User{ID: "member-1", Role: "member", IsRootUser: false, RootUserID: rootID, IsActive: true}
	repo := newMemUserRepo(member)
	ledger := quota.NewLedger(repo, domain.DefaultPlanTable())

	ok, err := ledger.CanCreate(context.Background(), "member-1", domain.KindPackages)
	require.NoError(t, err)
	assert.False(t, ok)
}

// Cuenta inexistente → ErrAccountNotFound.
func TestCanCreate_CuentaInexistente(t *testing.T) {
	ledger := quota.NewLedger(newMemUserRepo(), domain.DefaultPlanTable())

	_, err := ledger.CanCreate(context.Background(), "no-existe", domain.KindPackages)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

// Un plan desconocido cae a los límites de free, el más restrictivo.
func TestCanCreate_PlanDesconocido_CaeAFree(t *testing.T) {
	repo := newMemUserRepo(rootWith("plan-rarisimo", map[domain.ResourceKind]int{domain.KindPackages: 3}))
	ledger := quota.NewLedger(repo, domain.DefaultPlanTable())

	ok, err := ledger.CanCreate(context.Background(), rootID, domain.KindPackages)
	require.NoError(t, err)
	assert.False(t, ok, "un plan desconocido usa los límites de free")
}

// Remaining reporta lo que falta, ilimitado como -1, y nunca negativo.
func TestRemaining(t *testing.T) {
	repo := newMemUserRepo(rootWith(domain.PlanPro, map[domain.ResourceKind]int{
		domain.KindPackages: 10,
		domain.KindBlogs:    40, // sobre el límite de 25: plan degradado
	}))
	ledger := quota.NewLedger(repo, domain.DefaultPlanTable())

	left, err := ledger.Remaining(context.Background(), rootID, domain.KindPackages)
	require.NoError(t, err)
	assert.Equal(t, 5, left)

	left, err = ledger.Remaining(context.Background(), rootID, domain.KindBlogs)
	require.NoError(t, err)
	assert.Equal(t, 0, left, "el uso sobre el límite reporta 0 restante, nunca negativo")
}

func TestRemaining_Ilimitado(t *testing.T) {
	repo := newMemUserRepo(rootWith(domain.PlanProMax, nil))
	ledger := quota.NewLedger(repo, domain.DefaultPlanTable())

	left, err := ledger.Remaining(context.Background(), rootID, domain.KindActivities)
	require.NoError(t, err)
	assert.Equal(t, domain.Unlimited, left)
}

// ──────────────────────────────────────────────────────────────────────────────
// Increment / Decrement
// ──────────────────────────────────────────────────────────────────────────────

// Incrementar bajo el límite suma 1 al contador.
func TestIncrement_BajoElLimite(t *testing.T) {
	repo := newMemUserRepo(rootWith(domain.PlanFree, map[domain.ResourceKind]int{domain.KindDestinations: 4}))
	ledger := quota.NewLedger(repo, domain.DefaultPlanTable())

	err := ledger.Increment(context.Background(), repo, rootID, domain.KindDestinations)
	require.NoError(t, err)

	u, _ := repo.GetByID(context.Background(), rootID)
	assert.Equal(t, 5, u.Usage(domain.KindDestinations))
}

// Incrementar en el límite devuelve QuotaExceededError con kind y plan, y el
// contador no cambia.
func TestIncrement_EnElLimite_QuotaExceeded(t *testing.T) {
	repo := newMemUserRepo(rootWith(domain.PlanFree, map[domain.ResourceKind]int{domain.KindTeamMembers: 2}))
	ledger := quota.NewLedger(repo, domain.DefaultPlanTable())

	err := ledger.Increment(context.Background(), repo, rootID, domain.KindTeamMembers)
	require.Error(t, err)

	qe, ok := domain.IsQuotaExceeded(err)
	require.True(t, ok, "el error debe ser QuotaExceededError")
	assert.Equal(t, domain.KindTeamMembers, qe.Kind)
	assert.Equal(t, domain.PlanFree, qe.Plan)

	u, _ := repo.GetByID(context.Background(), rootID)
	assert.Equal(t, 2, u.Usage(domain.KindTeamMembers), "un incremento rechazado no toca el contador")
}

// Incrementar sobre un member falla: la cuota vive en el root.
func TestIncrement_Member_Forbidden(t *testing.T) {
	member := &entity.User{ID: "member-1", Role: "member", RootUserID: rootID, IsActive: true}
	repo := newMemUserRepo(member)
	ledger := quota.NewLedger(repo, domain.DefaultPlanTable())

	err := ledger.Increment(context.Background(), repo, "member-1", domain.KindPackages)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Decrementar con contador en cero no baja de cero.
func TestDecrement_PisoEnCero(t *testing.T) {
	repo := newMemUserRepo(rootWith(domain.PlanFree, nil))
	ledger := quota.NewLedger(repo, domain.DefaultPlanTable())

	err := ledger.Decrement(context.Background(), repo, rootID, domain.KindBlogs)
	require.NoError(t, err)

	u, _ := repo.GetByID(context.Background(), rootID)
	assert.Equal(t, 0, u.Usage(domain.KindBlogs))
}

// ──────────────────────────────────────────────────────────────────────────────
// UsageReport
// ──────────────────────────────────────────────────────────────────────────────

func TestUsageReport_FormaFija(t *testing.T) {
	repo := newMemUserRepo(rootWith(domain.PlanFree, map[domain.ResourceKind]int{domain.KindPackages: 1}))
	ledger := quota.NewLedger(repo, domain.DefaultPlanTable())

	report, err := ledger.UsageReport(context.Background(), rootID)
	require.NoError(t, err)

	assert.Equal(t, "free", report.Plan)
	assert.Len(t, report.Usage, len(domain.AllKinds()), "el reporte incluye todos los kinds, con o sin uso")

	byKind := map[string]int{}
	for _, u := range report.Usage {
		byKind[u.Kind] = u.Used
	}
	assert.Equal(t, 1, byKind["packages"])
	assert.Equal(t, 0, byKind["blogs"], "los kinds sin uso aparecen en cero, no ausentes")
}

func TestUsageReport_Ilimitado(t *testing.T) {
	repo := newMemUserRepo(rootWith(domain.PlanProMax, nil))
	ledger := quota.NewLedger(repo, domain.DefaultPlanTable())

	report, err := ledger.UsageReport(context.Background(), rootID)
	require.NoError(t, err)

	for _, u := range report.Usage {
		assert.True(t, u.Unlimited, "pro_max marca todos los kinds como ilimitados")
		assert.Equal(t, domain.Unlimited, u.Limit)
	}
}
