package domain

import "fmt"

// Roles válidos de una cuenta.
const (
	RoleRootUser   = "root_user"
	RoleAdmin      = "admin"
	RoleMember     = "member"
	RoleSuperAdmin = "super_admin"
)

// TenantContext resultado de resolver la identidad del caller contra la
// cuenta almacenada. RootUserID es la clave primaria de aislamiento: el id
// propio si la cuenta es root user, o la referencia almacenada si es member.
type TenantContext struct {
	UserID     string
	RootUserID string
	CompanyID  string
	TenantID   string
	Role       string
	Plan       SubscriptionPlan
}

// IsRoot informa si el contexto pertenece al dueño del tenant.
func (c TenantContext) IsRoot() bool { return c.Role == RoleRootUser }

// CanManageContent informa si el rol puede crear/editar contenido del tenant.
func (c TenantContext) CanManageContent() bool {
	return c.Role == RoleRootUser || c.Role == RoleAdmin || c.Role == RoleSuperAdmin
}

// Scope predicado conjuntivo de aislamiento por tenant. Se construye SOLO
// desde un TenantContext resuelto: ningún input de request puede fijar la
// clave root_user_id.
type Scope struct {
	rootUserID string
	companyID  string
	tenantID   string
}

// ScopeFromContext deriva el Scope del contexto resuelto.
func ScopeFromContext(c TenantContext) Scope {
	return Scope{rootUserID: c.RootUserID, companyID: c.CompanyID, tenantID: c.TenantID}
}

// ScopeForRoot construye un Scope de solo root_user_id (colecciones de
// catálogo público que no almacenan company/tenant).
func ScopeForRoot(rootUserID string) Scope {
	return Scope{rootUserID: rootUserID}
}

// RootUserID clave primaria de aislamiento.
func (s Scope) RootUserID() string { return s.rootUserID }

// IsZero informa si el scope está vacío (nunca debe usarse para consultar).
func (s Scope) IsZero() bool { return s.rootUserID == "" }

// Where devuelve la cláusula SQL conjuntiva y sus argumentos, con
// placeholders a partir de $start. Siempre incluye root_user_id; company y
// tenant solo cuando la tabla los almacena (withTenantCols) y el scope los
// trae. Nunca produce un OR.
func (s Scope) Where(start int, withTenantCols bool) (string, []any) {
	clause := fmt.Sprintf("root_user_id = $%d", start)
	args := []any{s.rootUserID}
	if withTenantCols && s.companyID != "" {
		clause += fmt.Sprintf(" AND company_id = $%d", start+len(args))
		args = append(args, s.companyID)
	}
	if withTenantCols && s.tenantID != "" {
		clause += fmt.Sprintf(" AND tenant_id = $%d", start+len(args))
		args = append(args, s.tenantID)
	}
	return clause, args
}
