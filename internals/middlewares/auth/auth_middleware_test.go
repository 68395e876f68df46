package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secret-untuk-test"

func signToken(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":      "9f1c6e54-0000-0000-0000-000000000001",
		"username": "takmir",
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newTestApp(opts AdminAuthOpts) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AdminAuth(opts), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"admin_username": c.Locals("admin_username"),
		})
	})
	return app
}

func TestAdminAuthTanpaToken(t *testing.T) {
	app := newTestApp(AdminAuthOpts{Secret: testSecret})

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuthTokenValid(t *testing.T) {
	app := newTestApp(AdminAuthOpts{Secret: testSecret})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "admin", time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminAuthTokenSalahSecret(t *testing.T) {
	app := newTestApp(AdminAuthOpts{Secret: testSecret})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret-lain", "admin", time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuthTokenExpired(t *testing.T) {
	app := newTestApp(AdminAuthOpts{Secret: testSecret})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "admin", -time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuthRoleBukanAdmin(t *testing.T) {
	app := newTestApp(AdminAuthOpts{Secret: testSecret})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "jamaah", time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminAuthCookieFallback(t *testing.T) {
	t.Run("diizinkan", func(t *testing.T) {
		app := newTestApp(AdminAuthOpts{Secret: testSecret, AllowCookieFallback: true})

		req := httptest.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, testSecret, "admin", time.Hour)})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("dimatikan", func(t *testing.T) {
		app := newTestApp(AdminAuthOpts{Secret: testSecret, AllowCookieFallback: false})

		req := httptest.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, testSecret, "admin", time.Hour)})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAdminAuthSecretKosong(t *testing.T) {
	app := newTestApp(AdminAuthOpts{Secret: ""})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "admin", time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
