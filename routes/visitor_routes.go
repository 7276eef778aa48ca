package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/controllers"
	"pn-nangabulik-backend/middleware"
)

func SetupVisitorRoutes(app *fiber.App, db *gorm.DB) {
	visitorController := controllers.NewVisitorController(db)
	statisticsController := controllers.NewStatisticsController(db)

	api := app.Group(config.MAIN_ROUTES)

	api.Post("/visitor", visitorController.RecordVisit)
	api.Get("/statistics", middleware.AuthMiddleware, statisticsController.GetStatistics)
	api.Get("/statistics/export", middleware.AuthMiddleware, statisticsController.ExportStatistics)
}
