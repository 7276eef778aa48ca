package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/controllers"
	"pn-nangabulik-backend/middleware"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	dashboardController := controllers.NewDashboardController(db)

	api := app.Group(config.MAIN_ROUTES + "/dashboard")

	api.Get("/", middleware.AuthMiddleware, dashboardController.GetDashboard)
}
