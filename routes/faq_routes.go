package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/controllers"
	"pn-nangabulik-backend/middleware"
)

func SetupFaqRoutes(app *fiber.App, db *gorm.DB) {
	faqController := controllers.NewFaqController(db)

	api := app.Group(config.MAIN_ROUTES + "/faqs")

	api.Get("/", faqController.GetFaqs)
	api.Post("/", middleware.AuthMiddleware, faqController.CreateFaq)
	api.Put("/", middleware.AuthMiddleware, faqController.UpdateFaq)
	api.Delete("/", middleware.AuthMiddleware, faqController.DeleteFaq)
	api.Post("/reorder", middleware.AuthMiddleware, faqController.ReorderFaq)
}
