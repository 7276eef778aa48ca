package repositories

import (
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pn-nangabulik-backend/models"
)

// newTestDB membuka database sqlite in-memory terpisah per tes
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("gagal membuka sqlite in-memory: %v", err)
	}

	err = db.AutoMigrate(
		&models.Menu{},
		&models.HeroSlide{},
		&models.Faq{},
		&models.ReportCategory{},
		&models.ReportLink{},
		&models.ReportView{},
		&models.ReportLinkView{},
		&models.Visitor{},
		&models.SiteSetting{},
		&models.Survey{},
		&models.SurveyLink{},
	)
	if err != nil {
		t.Fatalf("gagal auto migrate: %v", err)
	}

	return db
}
