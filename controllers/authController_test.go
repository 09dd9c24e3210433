package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netson-backend/middlewares"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("ADMIN_USERNAME", "admin")
	os.Setenv("ADMIN_PASSWORD", "s3cret")
	os.Exit(m.Run())
}

func newAuthApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	app.Post("/api/auth/login", Login)
	app.Post("/api/auth/logout", Logout)
	app.Get("/api/auth/check", CheckAuth)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func adminCookie(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == middlewares.AdminCookie {
			return ck
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	app := newAuthApp()

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/login", `{"username":"admin","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Nil(t, adminCookie(resp))
	})

	t.Run("unknown username", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/login", `{"username":"root","password":"s3cret"}`)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/login", `{"username":"admin"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("valid credentials set the session cookie", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/login", `{"username":"admin","password":"s3cret"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		ck := adminCookie(resp)
		require.NotNil(t, ck)
		assert.True(t, ck.HttpOnly)
		assert.Equal(t, "/", ck.Path)
		assert.Equal(t, 86400, ck.MaxAge)

		claims, err := middlewares.ParseAdminToken(ck.Value)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, "admin", claims.Role)
	})
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newAuthApp()

	resp := postJSON(t, app, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ck := adminCookie(resp)
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
}

func TestCheckAuth(t *testing.T) {
	app := newAuthApp()

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid session", func(t *testing.T) {
		token, err := middlewares.GenerateAdminJWT("admin")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
		req.AddCookie(&http.Cookie{Name: middlewares.AdminCookie, Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, true, body["success"])
	})
}
