package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/controllers"
	"pn-nangabulik-backend/middleware"
)

func SetupMenuRoutes(app *fiber.App, db *gorm.DB) {
	menuController := controllers.NewMenuController(db)

	api := app.Group(config.MAIN_ROUTES + "/menus")

	api.Get("/", menuController.GetMenus)
	api.Post("/", middleware.AuthMiddleware, menuController.CreateMenu)
	api.Put("/", middleware.AuthMiddleware, menuController.UpdateMenu)
	api.Delete("/", middleware.AuthMiddleware, menuController.DeleteMenu)
	api.Post("/reorder", middleware.AuthMiddleware, menuController.ReorderMenu)
}
