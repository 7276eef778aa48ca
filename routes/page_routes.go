package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/controllers"
	"pn-nangabulik-backend/middleware"
)

func SetupPageRoutes(app *fiber.App, db *gorm.DB) {
	pageController := controllers.NewPageController(db)

	api := app.Group(config.MAIN_ROUTES + "/pages")

	api.Get("/", pageController.GetPages)
	api.Post("/", middleware.AuthMiddleware, pageController.CreatePage)
	api.Put("/", middleware.AuthMiddleware, pageController.UpdatePage)
	api.Delete("/", middleware.AuthMiddleware, pageController.DeletePage)
}
