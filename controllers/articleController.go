package controllers

import (
	"github.com/gofiber/fiber/v2"

	"netson-backend/database"
	"netson-backend/middlewares"
	"netson-backend/models"
	"netson-backend/utils"
)

// ListArticles serves the public listing (published only). The admin route
// reuses the same store query with the status filter enabled.
func ListArticles(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c.Query("page"), c.Query("limit"), 10, 50)
	f := models.ArticleFilters{
		Status:   "published",
		Search:   c.Query("search"),
		Featured: c.Query("featured") == "true",
		Page:     page,
		Limit:    limit,
	}

	articles, total, err := database.ListArticles(c.Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":       articles,
		"pagination": paginationMap(page, limit, total),
	})
}

// AdminListArticles lists every article; status=published|draft narrows it.
func AdminListArticles(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c.Query("page"), c.Query("limit"), 20, 100)
	f := models.ArticleFilters{
		Status:   c.Query("status", "all"),
		Search:   c.Query("search"),
		Featured: c.Query("featured") == "true",
		Page:     page,
		Limit:    limit,
	}

	articles, total, err := database.ListArticles(c.Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       articles,
		"pagination": paginationMap(page, limit, total),
	})
}

// GetArticle fetches a published article by slug and counts the view.
func GetArticle(c *fiber.Ctx) error {
	slug := c.Params("slug")
	article, err := database.GetArticleBySlug(c.Context(), slug)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": article})
}

func CreateArticle(c *fiber.Ctx) error {
	var in models.ArticleCreate
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}
	utils.NormalizeDTO(&in)
	if err := middlewares.ValidateStruct(in); err != nil {
		return err
	}

	article, err := database.CreateArticle(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    article,
		"message": "Tạo bài viết thành công",
	})
}

func UpdateArticle(c *fiber.Ctx) error {
	id, err := parseIdParam(c)
	if err != nil {
		return err
	}
	var patch models.ArticlePatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}

	article, err := database.UpdateArticle(c.Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    article,
		"message": "Cập nhật bài viết thành công",
	})
}

func DeleteArticle(c *fiber.Ctx) error {
	id, err := parseIdParam(c)
	if err != nil {
		return err
	}
	if err := database.DeleteArticle(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Xóa bài viết thành công",
	})
}
