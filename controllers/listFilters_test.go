package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netson-backend/middlewares"
	"netson-backend/models"
)

func captureImageFilters(t *testing.T, target string) (models.ImageFilters, int) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})

	var got models.ImageFilters
	app.Get("/api/images", func(c *fiber.Ctx) error {
		f, err := parseImageFilters(c)
		if err != nil {
			return err
		}
		got = f
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	return got, resp.StatusCode
}

func TestParseImageFilters(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f, code := captureImageFilters(t, "/api/images")
		assert.Equal(t, http.StatusOK, code)
		assert.Nil(t, f.ProductId)
		assert.False(t, f.Featured)
		assert.Equal(t, 50, f.Limit)
		assert.Equal(t, 0, f.Offset)
	})

	t.Run("limit offset and is_featured", func(t *testing.T) {
		f, code := captureImageFilters(t, "/api/images?limit=10&offset=20&is_featured=true")
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, f.Featured)
		assert.Equal(t, 10, f.Limit)
		assert.Equal(t, 20, f.Offset)
	})

	t.Run("product_id", func(t *testing.T) {
		f, code := captureImageFilters(t, "/api/images?product_id=7")
		assert.Equal(t, http.StatusOK, code)
		require.NotNil(t, f.ProductId)
		assert.Equal(t, 7, *f.ProductId)
	})

	t.Run("bad product_id", func(t *testing.T) {
		_, code := captureImageFilters(t, "/api/images?product_id=abc")
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestParseProductFilters(t *testing.T) {
	app := fiber.New()

	var got models.ProductFilters
	app.Get("/api/products", func(c *fiber.Ctx) error {
		got = parseProductFilters(c)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet,
		"/api/products?category=cup-the-thao&is_featured=true&sort_by=price_low&search=vang&price_min=100&page=2&limit=24", nil)
	_, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "cup-the-thao", got.CategorySlug)
	assert.True(t, got.Featured)
	assert.Equal(t, "price_low", got.SortBy)
	assert.Equal(t, "vang", got.Search)
	require.NotNil(t, got.PriceMin)
	assert.Equal(t, "100", got.PriceMin.String())
	assert.Nil(t, got.PriceMax)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 24, got.Limit)
}
