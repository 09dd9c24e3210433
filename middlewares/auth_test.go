package middlewares

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func newProtectedApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/admin/ping", RequireAdmin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "username": c.Locals("username")})
	})
	return app
}

func signToken(t *testing.T, role string, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		Username: "admin",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func doRequest(t *testing.T, app *fiber.App, cookie string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: AdminCookie, Value: cookie})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestRequireAdmin(t *testing.T) {
	app := newProtectedApp()

	t.Run("missing cookie", func(t *testing.T) {
		resp, body := doRequest(t, app, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Không có token xác thực", body["message"])
	})

	t.Run("garbage token", func(t *testing.T) {
		resp, body := doRequest(t, app, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Token không hợp lệ", body["message"])
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		token := signToken(t, "admin", "other-secret", time.Now().Add(time.Hour))
		resp, body := doRequest(t, app, token)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Token không hợp lệ", body["message"])
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, "admin", "test-secret", time.Now().Add(-time.Hour))
		resp, body := doRequest(t, app, token)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Token không hợp lệ", body["message"])
	})

	t.Run("wrong role", func(t *testing.T) {
		token := signToken(t, "editor", "test-secret", time.Now().Add(time.Hour))
		resp, body := doRequest(t, app, token)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Không có quyền truy cập", body["message"])
	})

	t.Run("valid admin token", func(t *testing.T) {
		token, err := GenerateAdminJWT("admin")
		require.NoError(t, err)
		resp, body := doRequest(t, app, token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "admin", body["username"])
	})
}

func TestRequireAdminLogsDistinctDiagnostics(t *testing.T) {
	app := newProtectedApp()

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	doRequest(t, app, "")
	assert.Contains(t, buf.String(), "no admin_token cookie")

	buf.Reset()
	doRequest(t, app, "not-a-jwt")
	assert.Contains(t, buf.String(), "token rejected")
	assert.NotContains(t, buf.String(), "no admin_token cookie")
}

func TestParseAdminToken(t *testing.T) {
	token, err := GenerateAdminJWT("admin")
	require.NoError(t, err)

	claims, err := ParseAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	_, err = ParseAdminToken("bogus")
	assert.Error(t, err)
}
