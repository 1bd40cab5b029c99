package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casamedica/distribucion-api/internal/domain/entity"
	apphttp "github.com/casamedica/distribucion-api/internal/interfaces/http"
	pkgjwt "github.com/casamedica/distribucion-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "distribucion-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireInterno para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(rolesPermitidos ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protegida",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireInterno(rolesPermitidos...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":  true,
				"rol": apphttp.GetRol(c),
			})
		},
	)
	return app
}

// tokenPara genera un JWT con el tipo de usuario y rol indicados.
func tokenPara(t *testing.T, tipoUsuario, rol string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, tipoUsuario, rol, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protegida y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireInterno
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: interno con el rol requerido → debe pasar (HTTP 200).
func TestRequireInterno_AdministradorAccede(t *testing.T) {
	app := buildTestApp(entity.RolAdministrador)
	resp := doRequest(t, app, tokenPara(t, entity.TipoInterno, entity.RolAdministrador))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"administrador debe poder acceder a ruta restringida a administrador")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RolAdministrador, body["rol"])
}

// Caso 1b: interno con uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireInterno_AlmacenistaAccedeRutaMultiRol(t *testing.T) {
	app := buildTestApp(entity.RolAdministrador, entity.RolAlmacenista)
	resp := doRequest(t, app, tokenPara(t, entity.TipoInterno, entity.RolAlmacenista))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"almacenista debe poder acceder a ruta que permite administrador o almacenista")
}

// Caso 2: interno con rol distinto al requerido → HTTP 403 Forbidden.
func TestRequireInterno_EjecutivoBloqueadoEnRutaAlmacen(t *testing.T) {
	app := buildTestApp(entity.RolAlmacenista)
	resp := doRequest(t, app, tokenPara(t, entity.TipoInterno, entity.RolEjecutivo))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"ejecutivo no debe poder acceder a ruta restringida a almacenista")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "acceso denegado")
}

// Caso 3: un cliente autenticado no pasa RequireInterno aunque la ruta no pida rol.
func TestRequireInterno_ClienteBloqueado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenPara(t, entity.TipoCliente, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un cliente no es personal interno")
}

// Caso 4: interno sin rol en el token en ruta con roles → HTTP 401.
func TestRequireInterno_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RolAdministrador)
	resp := doRequest(t, app, tokenPara(t, entity.TipoInterno, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token interno sin rol debe retornar 401")
}

// Caso 5: sin header Authorization → HTTP 401.
func TestRequireInterno_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RolAdministrador)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: token inválido / malformado → HTTP 401.
func TestRequireInterno_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RolAdministrador)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/yo", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":      apphttp.GetUserID(c),
			"tipo_usuario": apphttp.GetTipoUsuario(c),
			"rol":          apphttp.GetRol(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/yo", nil)
	req.Header.Set("Authorization", tokenPara(t, entity.TipoInterno, entity.RolAdministrador))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, entity.TipoInterno, body["tipo_usuario"])
	assert.Equal(t, entity.RolAdministrador, body["rol"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con rol
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRol(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.TipoInterno, entity.RolAlmacenista, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, tipoUsuario, rol, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, entity.TipoInterno, tipoUsuario)
	assert.Equal(t, entity.RolAlmacenista, rol)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.TipoCliente, "", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.TipoCliente, "", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
