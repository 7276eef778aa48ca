package database

import (
	"gorm.io/gorm"

	"pn-nangabulik-backend/models"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.LoginLog{},
		&models.Menu{},
		&models.HeroSlide{},
		&models.Pejabat{},
		&models.Faq{},
		&models.Partner{},
		&models.Page{},
		&models.ReportCategory{},
		&models.ReportLink{},
		&models.ReportView{},
		&models.ReportLinkView{},
		&models.Visitor{},
		&models.SiteSetting{},
		&models.Survey{},
		&models.SurveyLink{},
	)
}
