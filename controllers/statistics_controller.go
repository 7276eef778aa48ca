package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/repositories"
)

type StatisticsController struct {
	repo *repositories.VisitorRepository
}

func NewStatisticsController(DB *gorm.DB) *StatisticsController {
	return &StatisticsController{repo: repositories.NewVisitorRepository(DB)}
}

func (c *StatisticsController) GetStatistics(ctx *fiber.Ctx) error {
	stats, err := c.repo.GetStatistics(time.Now())
	if err != nil {
		config.Log.Error("Gagal menghitung statistik pengunjung", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute statistics"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": stats})
}

// ExportStatistics menulis statistik ke file xlsx untuk laporan bulanan admin
func (c *StatisticsController) ExportStatistics(ctx *fiber.Ctx) error {
	now := time.Now()
	stats, err := c.repo.GetStatistics(now)
	if err != nil {
		config.Log.Error("Gagal menghitung statistik pengunjung", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute statistics"})
	}

	f := excelize.NewFile()
	defer f.Close()

	summary := "Ringkasan"
	f.SetSheetName(f.GetSheetName(0), summary)

	rows := [][]interface{}{
		{"Periode", now.Format("2006-01-02 15:04")},
		{},
		{"Hari ini", stats.Today},
		{"Kemarin", stats.Yesterday},
		{"Minggu ini", stats.ThisWeek},
		{"Minggu lalu", stats.LastWeek},
		{"Bulan ini", stats.ThisMonth},
		{"Bulan lalu", stats.LastMonth},
		{"Total", stats.Total},
		{"Sedang online", stats.OnlineUsers},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build export"})
		}
	}

	perPage := "Per Halaman"
	if _, err := f.NewSheet(perPage); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build export"})
	}
	header := []interface{}{"Path", "Total", "Hari Ini", "Pengunjung Unik Hari Ini"}
	if err := f.SetSheetRow(perPage, "A1", &header); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build export"})
	}
	for i, page := range stats.PerPage {
		row := []interface{}{page.Path, page.Total, page.Today, page.TodayUnique}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(perPage, cell, &row); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build export"})
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		config.Log.Error("Gagal menulis file export", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build export"})
	}

	filename := fmt.Sprintf("statistik-pengunjung-%s.xlsx", now.Format("20060102"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return ctx.Send(buf.Bytes())
}
