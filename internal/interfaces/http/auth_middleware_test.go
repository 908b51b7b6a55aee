package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malithvisio/magcin-api/internal/application/tenant"
	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
	apphttp "github.com/malithvisio/magcin-api/internal/interfaces/http"
	pkgjwt "github.com/malithvisio/magcin-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "magcin-api-test"
	testExpMin    = 60
)

// fakeUserRepo repo en memoria con las cuentas indexadas por id.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) ListMembers(_ context.Context, rootUserID string, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if !u.IsRootUser && u.RootUserID == rootUserID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) IncrementUsage(_ context.Context, rootUserID string, kind domain.ResourceKind, limit int) (bool, error) {
	u, ok := f.users[rootUserID]
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

func (f *fakeUserRepo) DecrementUsage(_ context.Context, rootUserID string, kind domain.ResourceKind) error {
	u, ok := f.users[rootUserID]
	if ok && u.UsageStats != nil && u.UsageStats[kind] > 0 {
		u.UsageStats[kind]--
	}
	return nil
}

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware +
// TenantMiddleware y un handler que expone el TenantContext resuelto.
func buildTestApp(users map[string]*entity.User) *fiber.App {
	app := fiber.New()
	resolver := tenant.NewResolver(&fakeUserRepo{users: users})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.TenantMiddleware(resolver),
		func(c *fiber.Ctx) error {
			tc, _ := apphttp.GetTenantContext(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"user_id":      tc.UserID,
				"root_user_id": tc.RootUserID,
				"role":         tc.Role,
			})
		},
	)
	return app
}

func rootAccount() *entity.User {
	return &entity.User{
		ID:         testUserID,
		Email:      "root@example.com",
		Role:       "root_user",
		IsRootUser: true,
		RootUserID: testUserID,
		CompanyID:  testCompanyID,
		Plan:       domain.PlanFree,
		IsActive:   true,
	}
}

func tokenFor(t *testing.T, data pkgjwt.TokenData) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, data, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TenantMiddleware — resolución del contexto contra la cuenta
// ──────────────────────────────────────────────────────────────────────────────

// Cuenta activa y válida → pasa y el handler ve el contexto resuelto.
func TestTenantMiddleware_CuentaValida_ResuelveContexto(t *testing.T) {
	app := buildTestApp(map[string]*entity.User{testUserID: rootAccount()})
	resp := doRequest(t, app, tokenFor(t, pkgjwt.TokenData{UserID: testUserID, CompanyID: testCompanyID}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUserID, body["root_user_id"], "para un root user el scope es su propio id")
	assert.Equal(t, "root_user", body["role"])
}

// La cuenta del token no existe → 401 aunque el token sea criptográficamente válido.
func TestTenantMiddleware_CuentaInexistente_Retorna401(t *testing.T) {
	app := buildTestApp(map[string]*entity.User{})
	resp := doRequest(t, app, tokenFor(t, pkgjwt.TokenData{UserID: testUserID}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"una cuenta borrada no debe seguir entrando con un token viejo")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ACCOUNT_NOT_FOUND")
}

// Cuenta desactivada → 403.
func TestTenantMiddleware_CuentaInactiva_Retorna403(t *testing.T) {
	acc := rootAccount()
	acc.IsActive = false
	app := buildTestApp(map[string]*entity.User{testUserID: acc})
	resp := doRequest(t, app, tokenFor(t, pkgjwt.TokenData{UserID: testUserID}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ACCOUNT_INACTIVE")
}

// El token reclama otra empresa → 403 TENANT_MISMATCH.
func TestTenantMiddleware_CompanyAjena_Retorna403(t *testing.T) {
	app := buildTestApp(map[string]*entity.User{testUserID: rootAccount()})
	resp := doRequest(t, app, tokenFor(t, pkgjwt.TokenData{UserID: testUserID, CompanyID: "otra-empresa"}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TENANT_MISMATCH")
}

// Cuenta sin rol asignado → 403, nunca acceso por defecto.
func TestTenantMiddleware_CuentaSinRol_Retorna403(t *testing.T) {
	acc := rootAccount()
	acc.Role = ""
	app := buildTestApp(map[string]*entity.User{testUserID: acc})
	resp := doRequest(t, app, tokenFor(t, pkgjwt.TokenData{UserID: testUserID}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"una cuenta sin rol no debe tratarse como admin")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — validación del Bearer token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(map[string]*entity.User{testUserID: rootAccount()})
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(map[string]*entity.User{testUserID: rootAccount()})
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	in := pkgjwt.TokenData{
		UserID:     testUserID,
		RootUserID: testUserID,
		CompanyID:  testCompanyID,
		TenantID:   "tenant-1",
		Role:       "admin",
	}
	tok, err := pkgjwt.Generate(testJWTSecret, in, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	out, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.TokenData{UserID: testUserID}, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.TokenData{UserID: testUserID}, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
