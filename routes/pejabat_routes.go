package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/controllers"
	"pn-nangabulik-backend/middleware"
)

func SetupPejabatRoutes(app *fiber.App, db *gorm.DB) {
	pejabatController := controllers.NewPejabatController(db)

	api := app.Group(config.MAIN_ROUTES + "/pejabat")

	api.Get("/", pejabatController.GetPejabat)
	api.Post("/", middleware.AuthMiddleware, pejabatController.CreatePejabat)
	api.Put("/", middleware.AuthMiddleware, pejabatController.UpdatePejabat)
	api.Delete("/", middleware.AuthMiddleware, pejabatController.DeletePejabat)
	api.Post("/reorder", middleware.AuthMiddleware, pejabatController.ReorderPejabat)
}
