package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/controllers"
	"pn-nangabulik-backend/middleware"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	reportController := controllers.NewReportController(db)

	api := app.Group(config.MAIN_ROUTES + "/reports")

	api.Get("/categories", reportController.GetCategories)
	api.Post("/categories", middleware.AuthMiddleware, reportController.CreateCategory)
	api.Put("/categories", middleware.AuthMiddleware, reportController.UpdateCategory)
	api.Delete("/categories", middleware.AuthMiddleware, reportController.DeleteCategory)
	api.Post("/categories/reorder", middleware.AuthMiddleware, reportController.ReorderCategory)

	api.Get("/links", reportController.GetLinks)
	api.Post("/links", middleware.AuthMiddleware, reportController.CreateLink)
	api.Put("/links", middleware.AuthMiddleware, reportController.UpdateLink)
	api.Delete("/links", middleware.AuthMiddleware, reportController.DeleteLink)

	// Pencatatan kunjungan laporan terbuka untuk halaman publik
	api.Post("/track", reportController.TrackView)
	api.Get("/track", middleware.AuthMiddleware, reportController.GetViewStats)
}
