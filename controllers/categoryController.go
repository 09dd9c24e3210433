package controllers

import (
	"github.com/gofiber/fiber/v2"

	"netson-backend/database"
	"netson-backend/middlewares"
	"netson-backend/models"
	"netson-backend/utils"
)

func ListCategories(c *fiber.Ctx) error {
	activeOnly := c.Query("all") != "true"
	categories, err := database.ListCategories(c.Context(), activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": categories})
}

func CreateCategory(c *fiber.Ctx) error {
	var in models.CategoryCreate
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}
	utils.NormalizeDTO(&in)
	if err := middlewares.ValidateStruct(in); err != nil {
		return err
	}

	category, err := database.CreateCategory(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    category,
		"message": "Tạo danh mục thành công",
	})
}

// DeleteCategory refuses to remove a category still referenced by products.
func DeleteCategory(c *fiber.Ctx) error {
	id, err := parseIdParam(c)
	if err != nil {
		return err
	}
	if err := database.DeleteCategory(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Xóa danh mục thành công",
	})
}
