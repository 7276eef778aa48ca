package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/controllers"
	"pn-nangabulik-backend/middleware"
)

func SetupHeroRoutes(app *fiber.App, db *gorm.DB) {
	heroController := controllers.NewHeroController(db)

	api := app.Group(config.MAIN_ROUTES + "/heroes")

	api.Get("/", heroController.GetSlides)
	api.Post("/", middleware.AuthMiddleware, heroController.CreateSlide)
	api.Put("/", middleware.AuthMiddleware, heroController.UpdateSlide)
	api.Delete("/", middleware.AuthMiddleware, heroController.DeleteSlide)
	api.Post("/reorder", middleware.AuthMiddleware, heroController.ReorderSlide)
}
