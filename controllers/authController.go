package controllers

import (
	"crypto/subtle"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"netson-backend/middlewares"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// checkAdminCredentials compares against ADMIN_USERNAME and either
// ADMIN_PASSWORD_HASH (bcrypt) or plain ADMIN_PASSWORD.
func checkAdminCredentials(username, password string) bool {
	wantUser := os.Getenv("ADMIN_USERNAME")
	if wantUser == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) == 1

	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return userOK && bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	wantPass := os.Getenv("ADMIN_PASSWORD")
	if wantPass == "" {
		return false
	}
	return userOK && subtle.ConstantTimeCompare([]byte(password), []byte(wantPass)) == 1
}

func Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	if !checkAdminCredentials(req.Username, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Tên đăng nhập hoặc mật khẩu không đúng",
		})
	}

	token, err := middlewares.GenerateAdminJWT(req.Username)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     middlewares.AdminCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   86400,
		HTTPOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Đăng nhập thành công",
		"user":    fiber.Map{"username": req.Username, "role": "admin"},
	})
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middlewares.AdminCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Đăng xuất thành công",
	})
}

// CheckAuth reports whether the request carries a valid admin session.
func CheckAuth(c *fiber.Ctx) error {
	raw := c.Cookies(middlewares.AdminCookie)
	if raw == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Không có token xác thực",
		})
	}
	claims, err := middlewares.ParseAdminToken(raw)
	if err != nil || claims.Role != "admin" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Token không hợp lệ",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    fiber.Map{"username": claims.Username, "role": claims.Role},
	})
}
