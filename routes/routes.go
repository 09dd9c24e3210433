package routes

import (
	"github.com/gofiber/fiber/v2"

	"netson-backend/controllers"
	"netson-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Auth
	api.Post("/auth/login", controllers.Login)
	api.Post("/auth/logout", controllers.Logout)
	api.Get("/auth/check", controllers.CheckAuth)

	// Public catalog
	api.Get("/products", controllers.ListProducts)
	api.Get("/products/:id", controllers.GetProduct)
	api.Get("/categories", controllers.ListCategories)
	api.Get("/articles", controllers.ListArticles)
	api.Get("/articles/:slug", controllers.GetArticle)
	api.Get("/images", controllers.ListImages)
	api.Get("/brands", controllers.ListBrands)
	api.Get("/gold-prices", controllers.ListGoldPrices)
	api.Get("/gold-prices/chart", controllers.GoldPriceChart)
	api.Get("/settings", controllers.ListSettings)

	// Admin endpoints (cookie auth)
	admin := api.Group("/admin")
	admin.Use(middlewares.RequireAdmin())

	admin.Get("/products", controllers.AdminListProducts)
	admin.Post("/products", controllers.CreateProduct)
	admin.Put("/products/:id", controllers.UpdateProduct)
	admin.Delete("/products/:id", controllers.DeleteProduct)

	admin.Post("/categories", controllers.CreateCategory)
	admin.Delete("/categories/:id", controllers.DeleteCategory)

	admin.Get("/articles", controllers.AdminListArticles)
	admin.Post("/articles", controllers.CreateArticle)
	admin.Put("/articles/:id", controllers.UpdateArticle)
	admin.Delete("/articles/:id", controllers.DeleteArticle)

	admin.Post("/brands", controllers.CreateBrand)
	admin.Put("/brands/:id", controllers.UpdateBrand)
	admin.Delete("/brands/:id", controllers.DeleteBrand)

	admin.Post("/upload-image", controllers.UploadImage)
	admin.Put("/images/:id/featured", controllers.SetFeaturedImage)
	admin.Delete("/images/:id", controllers.DeleteImage)

	admin.Post("/gold-prices", controllers.UpsertGoldPrice)
	admin.Post("/upload-excel", controllers.UploadGoldPriceExcel)
	admin.Get("/download-template", controllers.DownloadGoldPriceTemplate)

	admin.Put("/settings/:key", controllers.UpsertSetting)
}
