package middlewares

import (
	"errors"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AdminCookie is the name of the session cookie carrying the admin JWT.
const AdminCookie = "admin_token"

// Claims is the admin JWT payload.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

var (
	secretOnce sync.Once
	jwtSecret  []byte
	secretErr  error
)

func loadJWTSecret() error {
	secretOnce.Do(func() {
		sec := os.Getenv("JWT_SECRET")
		if strings.TrimSpace(sec) == "" {
			secretErr = errors.New("JWT secret not configured (set JWT_SECRET)")
			return
		}
		jwtSecret = []byte(sec)
	})
	return secretErr
}

// RequireAdmin validates the admin_token cookie, enforces HS256 and the admin
// role, and populates c.Locals("username").
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := loadJWTSecret(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Lỗi cấu hình máy chủ",
			})
		}

		raw := c.Cookies(AdminCookie)
		if strings.TrimSpace(raw) == "" {
			log.Printf("auth: no %s cookie on %s %s from %s", AdminCookie, c.Method(), c.Path(), c.IP())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Không có token xác thực",
			})
		}

		claims, err := ParseAdminToken(raw)
		if err != nil {
			log.Printf("auth: token rejected on %s %s from %s: %v", c.Method(), c.Path(), c.IP(), err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Token không hợp lệ",
			})
		}
		if claims.Role != "admin" {
			log.Printf("auth: role %q denied on %s %s (user %s)", claims.Role, c.Method(), c.Path(), claims.Username)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Không có quyền truy cập",
			})
		}

		c.Locals("username", claims.Username)
		return c.Next()
	}
}

// ParseAdminToken verifies signature, expiry and signing method of a raw
// admin JWT and returns its claims.
func ParseAdminToken(raw string) (*Claims, error) {
	if err := loadJWTSecret(); err != nil {
		return nil, err
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	var claims Claims
	token, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return &claims, nil
}

// GenerateAdminJWT signs a new HS256 admin token, expiring in 24h.
func GenerateAdminJWT(username string) (string, error) {
	if err := loadJWTSecret(); err != nil {
		return "", err
	}
	now := time.Now()
	claims := &Claims{
		Username: username,
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}
