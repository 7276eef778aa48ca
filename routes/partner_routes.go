package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/controllers"
	"pn-nangabulik-backend/middleware"
)

func SetupPartnerRoutes(app *fiber.App, db *gorm.DB) {
	partnerController := controllers.NewPartnerController(db)

	api := app.Group(config.MAIN_ROUTES + "/partners")

	api.Get("/", partnerController.GetPartners)
	api.Post("/", middleware.AuthMiddleware, partnerController.CreatePartner)
	api.Put("/", middleware.AuthMiddleware, partnerController.UpdatePartner)
	api.Delete("/", middleware.AuthMiddleware, partnerController.DeletePartner)
	api.Post("/reorder", middleware.AuthMiddleware, partnerController.ReorderPartner)
}
