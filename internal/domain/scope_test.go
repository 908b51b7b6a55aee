package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/malithvisio/magcin-api/internal/domain"
)

func fullContext() domain.TenantContext {
	return domain.TenantContext{
		UserID:     "user-1",
		RootUserID: "root-1",
		CompanyID:  "comp-1",
		TenantID:   "ten-1",
		Role:       domain.RoleRootUser,
		Plan:       domain.PlanFree,
	}
}

// Sin columnas de tenant solo se filtra por root_user_id.
func TestScopeWhere_SoloRoot(t *testing.T) {
	scope := domain.ScopeFromContext(fullContext())

	clause, args := scope.Where(1, false)

	assert.Equal(t, "root_user_id = $1", clause)
	assert.Equal(t, []any{"root-1"}, args)
}

// Con columnas de tenant el predicado es conjuntivo: root AND company AND tenant.
func TestScopeWhere_ConTenantCols(t *testing.T) {
	scope := domain.ScopeFromContext(fullContext())

	clause, args := scope.Where(2, true)

	assert.Equal(t, "root_user_id = $2 AND company_id = $3 AND tenant_id = $4", clause)
	assert.Equal(t, []any{"root-1", "comp-1", "ten-1"}, args)
	assert.False(t, strings.Contains(clause, "OR"), "el scope jamás produce un OR")
}

// Ids de tenant vacíos se omiten sin dejar huecos en la numeración.
func TestScopeWhere_TenantParcial(t *testing.T) {
	tc := fullContext()
	tc.TenantID = ""
	scope := domain.ScopeFromContext(tc)

	clause, args := scope.Where(1, true)

	assert.Equal(t, "root_user_id = $1 AND company_id = $2", clause)
	assert.Equal(t, []any{"root-1", "comp-1"}, args)
}

// ScopeForRoot ignora company/tenant por construcción.
func TestScopeForRoot(t *testing.T) {
	scope := domain.ScopeForRoot("root-9")

	clause, args := scope.Where(1, true)

	assert.Equal(t, "root_user_id = $1", clause)
	assert.Equal(t, []any{"root-9"}, args)
	assert.Equal(t, "root-9", scope.RootUserID())
	assert.False(t, scope.IsZero())
}

func TestScope_IsZero(t *testing.T) {
	assert.True(t, domain.Scope{}.IsZero())
}

// CanManageContent: roles de gestión sí, member y rol vacío no.
func TestTenantContext_CanManageContent(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{domain.RoleRootUser, true},
		{domain.RoleAdmin, true},
		{domain.RoleSuperAdmin, true},
		{domain.RoleMember, false},
		{"", false},
	}
	for _, c := range cases {
		tc := domain.TenantContext{Role: c.role}
		assert.Equal(t, c.want, tc.CanManageContent(), "role %q", c.role)
	}
}
