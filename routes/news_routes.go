package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/controllers"
)

func SetupNewsRoutes(app *fiber.App, db *gorm.DB) {
	newsController := controllers.NewNewsController(db)
	contactController := controllers.NewContactController(db)

	api := app.Group(config.MAIN_ROUTES)

	api.Get("/news", newsController.GetNews)
	api.Post("/contact", contactController.SubmitContact)
}
