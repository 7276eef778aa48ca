package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/controllers/idgen"
	"pn-nangabulik-backend/database"
	"pn-nangabulik-backend/routes"
)

func main() {

	config.LoadConfig()
	config.InitLogger()
	idgen.Init()

	// Connect to database
	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate models
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	database.RunSeeders(db)

	app := fiber.New()

	// Setup CORS middleware
	config.SetupCORS(app)

	// Setup routes
	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupMenuRoutes(app, db)
	routes.SetupHeroRoutes(app, db)
	routes.SetupPejabatRoutes(app, db)
	routes.SetupFaqRoutes(app, db)
	routes.SetupPartnerRoutes(app, db)
	routes.SetupPageRoutes(app, db)
	routes.SetupReportRoutes(app, db)
	routes.SetupSurveyRoutes(app, db)
	routes.SetupSettingRoutes(app, db)
	routes.SetupVisitorRoutes(app, db)
	routes.SetupNewsRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
