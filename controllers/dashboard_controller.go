package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/repositories"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboard ringkasan konten + kunjungan hari ini untuk halaman depan admin
func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	today := repositories.Midnight(time.Now())

	sql := `SELECT
			(SELECT COUNT(*) FROM menus) AS total_menus,
			(SELECT COUNT(*) FROM pages) AS total_pages,
			(SELECT COUNT(*) FROM hero_slides) AS total_slides,
			(SELECT COUNT(*) FROM pejabat) AS total_pejabat,
			(SELECT COUNT(*) FROM faqs) AS total_faqs,
			(SELECT COUNT(*) FROM report_categories) AS total_report_categories,
			(SELECT COUNT(*) FROM report_links) AS total_report_links,
			(SELECT COUNT(*) FROM visitors WHERE visit_date = ?) AS visitors_today,
			(SELECT COUNT(*) FROM visitors) AS visitors_total`

	var summary struct {
		TotalMenus            int64 `json:"total_menus"`
		TotalPages            int64 `json:"total_pages"`
		TotalSlides           int64 `json:"total_slides"`
		TotalPejabat          int64 `json:"total_pejabat"`
		TotalFaqs             int64 `json:"total_faqs"`
		TotalReportCategories int64 `json:"total_report_categories"`
		TotalReportLinks      int64 `json:"total_report_links"`
		VisitorsToday         int64 `json:"visitors_today"`
		VisitorsTotal         int64 `json:"visitors_total"`
	}

	if err := c.DB.Raw(sql, today).Scan(&summary).Error; err != nil {
		config.Log.Error("Gagal mengambil ringkasan dashboard", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch dashboard"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": summary})
}
