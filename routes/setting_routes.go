package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/controllers"
	"pn-nangabulik-backend/middleware"
)

func SetupSettingRoutes(app *fiber.App, db *gorm.DB) {
	settingController := controllers.NewSettingController(db)

	api := app.Group(config.MAIN_ROUTES + "/settings")

	api.Get("/", settingController.GetSettings)
	api.Post("/", middleware.AuthMiddleware, settingController.UpsertSettings)
}
