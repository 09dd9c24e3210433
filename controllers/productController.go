package controllers

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"netson-backend/database"
	"netson-backend/middlewares"
	"netson-backend/models"
	"netson-backend/utils"
)

func parseIdParam(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ID không hợp lệ")
	}
	return id, nil
}

func parseDecimalQuery(c *fiber.Ctx, key string) *decimal.Decimal {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

func paginationMap(page, limit, total int) fiber.Map {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return fiber.Map{
		"currentPage": page,
		"totalPages":  totalPages,
		"totalCount":  total,
	}
}

func parseProductFilters(c *fiber.Ctx) models.ProductFilters {
	page, limit := utils.ParsePagination(c.Query("page"), c.Query("limit"), 12, 100)
	return models.ProductFilters{
		CategorySlug: c.Query("category"),
		PriceMin:     parseDecimalQuery(c, "price_min"),
		PriceMax:     parseDecimalQuery(c, "price_max"),
		Featured:     c.Query("is_featured") == "true",
		Search:       c.Query("search"),
		SortBy:       c.Query("sort_by"),
		Page:         page,
		Limit:        limit,
	}
}

// ListProducts serves the public catalog: active products only, with
// category/price/search filters and pagination.
func ListProducts(c *fiber.Ctx) error {
	f := parseProductFilters(c)
	products, total, err := database.ListProducts(c.Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":       products,
		"pagination": paginationMap(f.Page, f.Limit, total),
	})
}

// AdminListProducts returns every product regardless of active state.
func AdminListProducts(c *fiber.Ctx) error {
	products, err := database.AdminListProducts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": products})
}

func GetProduct(c *fiber.Ctx) error {
	id, err := parseIdParam(c)
	if err != nil {
		return err
	}
	product, err := database.GetProduct(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": product})
}

func CreateProduct(c *fiber.Ctx) error {
	var in models.ProductCreate
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}
	utils.NormalizeDTO(&in)
	if err := middlewares.ValidateStruct(in); err != nil {
		return err
	}

	product, err := database.CreateProduct(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    product,
		"message": "Tạo sản phẩm thành công",
	})
}

func UpdateProduct(c *fiber.Ctx) error {
	id, err := parseIdParam(c)
	if err != nil {
		return err
	}
	var patch models.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}

	product, err := database.UpdateProduct(c.Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
		"message": "Cập nhật sản phẩm thành công",
	})
}

func DeleteProduct(c *fiber.Ctx) error {
	id, err := parseIdParam(c)
	if err != nil {
		return err
	}
	if err := database.DeleteProduct(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Xóa sản phẩm thành công",
	})
}
