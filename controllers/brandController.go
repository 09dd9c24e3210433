package controllers

import (
	"github.com/gofiber/fiber/v2"

	"netson-backend/database"
	"netson-backend/middlewares"
	"netson-backend/models"
	"netson-backend/utils"
)

func ListBrands(c *fiber.Ctx) error {
	activeOnly := c.Query("all") != "true"
	brands, err := database.ListBrands(c.Context(), activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": brands})
}

func CreateBrand(c *fiber.Ctx) error {
	var in models.BrandCreate
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}
	utils.NormalizeDTO(&in)
	if err := middlewares.ValidateStruct(in); err != nil {
		return err
	}

	brand, err := database.CreateBrand(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    brand,
		"message": "Tạo thương hiệu thành công",
	})
}

func UpdateBrand(c *fiber.Ctx) error {
	id, err := parseIdParam(c)
	if err != nil {
		return err
	}
	var patch models.BrandPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}

	brand, err := database.UpdateBrand(c.Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    brand,
		"message": "Cập nhật thương hiệu thành công",
	})
}

// DeleteBrand deactivates instead of removing; price history keeps the name.
func DeleteBrand(c *fiber.Ctx) error {
	id, err := parseIdParam(c)
	if err != nil {
		return err
	}
	if err := database.DeactivateBrand(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Đã ngừng hoạt động thương hiệu",
	})
}
