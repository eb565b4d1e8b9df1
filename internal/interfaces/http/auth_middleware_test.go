package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	apphttp "github.com/LieTttv/PDVomnierp-sub000/internal/interfaces/http"
	pkgjwt "github.com/LieTttv/PDVomnierp-sub000/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testStoreID   = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "pdv-omni-test"
	testExpMin    = 60
)

// fakePermissionChecker devuelve un PermissionSet fijo o un error.
type fakePermissionChecker struct {
	perms entity.PermissionSet
	err   error
}

func (f *fakePermissionChecker) GetPermissions(string) (entity.PermissionSet, error) {
	return f.perms, f.err
}

// fakeModuleChecker responde si el módulo está activo o falla.
type fakeModuleChecker struct {
	active bool
	err    error
}

func (f *fakeModuleChecker) HasActiveModule(context.Context, string, string) (bool, error) {
	return f.active, f.err
}

// tokenForRole genera un JWT con el rol indicado (con tienda).
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testStoreID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET a la ruta y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func okHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c)})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"store_id": apphttp.GetStoreID(c),
			"role":     apphttp.GetRole(c),
		})
	})

	resp := doRequest(t, app, "/me", tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testStoreID, body["store_id"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), okHandler)

	resp := doRequest(t, app, "/me", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), okHandler)

	resp := doRequest(t, app, "/me", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_FormatoSinBearer_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), okHandler)

	resp := doRequest(t, app, "/me", "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireMaster — consola de casa matriz
// ──────────────────────────────────────────────────────────────────────────────

func buildMasterApp() *fiber.App {
	app := fiber.New()
	app.Get("/hq", apphttp.AuthMiddleware(testJWTSecret), apphttp.RequireMaster(), okHandler)
	return app
}

func TestRequireMaster_MasterAccede(t *testing.T) {
	app := buildMasterApp()
	resp := doRequest(t, app, "/hq", tokenForRole(t, entity.RoleMaster))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"master debe poder acceder a la consola de casa matriz")
}

func TestRequireMaster_AdminDeTiendaBloqueado(t *testing.T) {
	app := buildMasterApp()
	resp := doRequest(t, app, "/hq", tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"admin de tienda no debe acceder a rutas de casa matriz")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireMaster_OperadorBloqueado(t *testing.T) {
	app := buildMasterApp()
	resp := doRequest(t, app, "/hq", tokenForRole(t, entity.RoleOperator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission — RBAC por módulo y acción
// ──────────────────────────────────────────────────────────────────────────────

func buildPermissionApp(checker *fakePermissionChecker) *fiber.App {
	app := fiber.New()
	app.Get("/billing",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(entity.ModuleBilling, entity.ActionCreate, checker),
		okHandler,
	)
	return app
}

func permsFor(t *testing.T, perms ...entity.Permission) entity.PermissionSet {
	t.Helper()
	set, err := entity.NewPermissionSet(perms)
	require.NoError(t, err)
	return set
}

func TestRequirePermission_OperadorConPermisoAccede(t *testing.T) {
	checker := &fakePermissionChecker{perms: permsFor(t,
		entity.Permission{Module: entity.ModuleBilling, CanView: true, CanCreate: true},
	)}
	app := buildPermissionApp(checker)

	resp := doRequest(t, app, "/billing", tokenForRole(t, entity.RoleOperator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequirePermission_OperadorSinPermisoBloqueado(t *testing.T) {
	// solo lectura: create debe rechazarse
	checker := &fakePermissionChecker{perms: permsFor(t,
		entity.Permission{Module: entity.ModuleBilling, CanView: true},
	)}
	app := buildPermissionApp(checker)

	resp := doRequest(t, app, "/billing", tokenForRole(t, entity.RoleOperator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequirePermission_MasterPasaSiempre(t *testing.T) {
	// checker vacío: si el rol es master ni siquiera se consulta
	checker := &fakePermissionChecker{perms: entity.PermissionSet{}}
	app := buildPermissionApp(checker)

	resp := doRequest(t, app, "/billing", tokenForRole(t, entity.RoleMaster))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"master pasa sin consultar permisos")
}

func TestRequirePermission_FalloDelChecker_Retorna503(t *testing.T) {
	checker := &fakePermissionChecker{err: errors.New("db caída")}
	app := buildPermissionApp(checker)

	resp := doRequest(t, app, "/billing", tokenForRole(t, entity.RoleOperator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "PERMISSION_CHECK_FAILED")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireModule — entitlement de la tienda
// ──────────────────────────────────────────────────────────────────────────────

func buildModuleApp(checker *fakeModuleChecker) *fiber.App {
	app := fiber.New()
	app.Get("/billing",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireModule(entity.ModuleBilling, checker),
		okHandler,
	)
	return app
}

func TestRequireModule_ModuloActivoPasa(t *testing.T) {
	app := buildModuleApp(&fakeModuleChecker{active: true})

	resp := doRequest(t, app, "/billing", tokenForRole(t, entity.RoleOperator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireModule_ModuloInactivo_Retorna403(t *testing.T) {
	app := buildModuleApp(&fakeModuleChecker{active: false})

	resp := doRequest(t, app, "/billing", tokenForRole(t, entity.RoleOperator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MODULE_DISABLED")
}

func TestRequireModule_FalloDeInfraestructura_Retorna503(t *testing.T) {
	app := buildModuleApp(&fakeModuleChecker{err: errors.New("timeout")})

	resp := doRequest(t, app, "/billing", tokenForRole(t, entity.RoleOperator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MODULE_CHECK_FAILED")
}

func TestRequireModule_TokenSinTienda_Retorna401(t *testing.T) {
	// un token de master no lleva store_id: las rutas de módulo lo rechazan
	app := buildModuleApp(&fakeModuleChecker{active: true})
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", entity.RoleMaster, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "/billing", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testStoreID, entity.RoleOperator, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, storeID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testStoreID, storeID)
	assert.Equal(t, entity.RoleOperator, role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// expiración -1 minuto: ya vencido
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testStoreID, entity.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testStoreID, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
