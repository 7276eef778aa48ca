package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/controllers"
	"pn-nangabulik-backend/middleware"
)

func SetupSurveyRoutes(app *fiber.App, db *gorm.DB) {
	surveyController := controllers.NewSurveyController(db)

	api := app.Group(config.MAIN_ROUTES + "/surveys")

	api.Get("/", surveyController.GetSurveys)
	api.Post("/", middleware.AuthMiddleware, surveyController.UpsertSurvey)
	api.Delete("/", middleware.AuthMiddleware, surveyController.DeleteSurvey)

	api.Get("/links", surveyController.GetSurveyLinks)
	api.Post("/links", middleware.AuthMiddleware, surveyController.CreateSurveyLink)
	api.Put("/links", middleware.AuthMiddleware, surveyController.UpdateSurveyLink)
	api.Delete("/links", middleware.AuthMiddleware, surveyController.DeleteSurveyLink)
	api.Post("/links/reorder", middleware.AuthMiddleware, surveyController.ReorderSurveyLink)
}
