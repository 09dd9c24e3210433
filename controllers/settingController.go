package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"netson-backend/database"
	"netson-backend/models"
)

func ListSettings(c *fiber.Ctx) error {
	activeOnly := c.Query("all") != "true"
	settings, err := database.ListSettings(c.Context(), activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": settings})
}

// UpsertSetting writes one key/value pair; values are opaque to the server.
func UpsertSetting(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))
	if key == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Thiếu khóa cài đặt")
	}
	var in models.SiteSettingUpsert
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}

	setting, err := database.UpsertSetting(c.Context(), key, in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    setting,
		"message": "Cập nhật cài đặt thành công",
	})
}
