// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type AdminAuthOpts struct {
	Secret              string
	AllowCookieFallback bool
}

// AdminAuth memverifikasi JWT admin untuk seluruh endpoint mutasi (/api/a).
// Controller tetap auth-agnostic: hasil verifikasi hanya ditaruh di Locals.
func AdminAuth(opts AdminAuthOpts) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if opts.Secret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		tokenString, err := extractBearerToken(c, opts.AllowCookieFallback)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(opts.Secret), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token invalid or expired")
		}

		role, _ := claims["role"].(string)
		if role != "admin" {
			return fiber.NewError(fiber.StatusForbidden, "Hanya admin yang boleh mengakses fitur ini")
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Locals("admin_id", sub)
		}
		if username, ok := claims["username"].(string); ok {
			c.Locals("admin_username", username)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx, allowCookie bool) (string, error) {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token != "" {
			return token, nil
		}
	}
	if allowCookie {
		if token := c.Cookies("access_token"); token != "" {
			return token, nil
		}
	}
	return "", errors.New("Unauthorized - Missing token")
}
