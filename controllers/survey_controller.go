package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/models"
	"pn-nangabulik-backend/repositories"
)

type SurveyController struct {
	repo *repositories.SurveyRepository
}

func NewSurveyController(DB *gorm.DB) *SurveyController {
	return &SurveyController{repo: repositories.NewSurveyRepository(DB)}
}

func surveyLinkScope() repositories.OrderScope {
	return repositories.OrderScope{Table: "survey_links", OrderCol: "link_order"}
}

// ===== Hasil survei (IKM/IPK per triwulan) =====

func (c *SurveyController) GetSurveys(ctx *fiber.Ctx) error {
	year := ctx.QueryInt("year")
	surveys, err := c.repo.GetAll(year)
	if err != nil {
		config.Log.Error("Gagal mengambil survei", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch surveys"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": surveys})
}

// UpsertSurvey create-or-update pada kunci (year, category, quarter)
func (c *SurveyController) UpsertSurvey(ctx *fiber.Ctx) error {
	var input struct {
		Year       int     `json:"year" validate:"required,min=2000"`
		Category   string  `json:"category" validate:"required"`
		Quarter    int     `json:"quarter" validate:"required,min=1,max=4"`
		Percentage float64 `json:"percentage" validate:"min=0,max=100"`
		ReportURL  string  `json:"report_url"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err)
	}

	survey := models.Survey{
		Year:       input.Year,
		Category:   input.Category,
		Quarter:    input.Quarter,
		Percentage: input.Percentage,
		ReportURL:  input.ReportURL,
	}

	if err := c.repo.Upsert(&survey); err != nil {
		config.Log.Error("Gagal menyimpan survei", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save survey"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": survey})
}

func (c *SurveyController) DeleteSurvey(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	if err := c.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Survey not found"})
		}
		config.Log.Error("Gagal menghapus survei", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete survey"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Survey deleted successfully"})
}

// ===== Link partisipasi survei =====

func (c *SurveyController) GetSurveyLinks(ctx *fiber.Ctx) error {
	var links []models.SurveyLink
	q := c.repo.DB.Order("link_order asc, id asc")
	if ctx.Query("admin") != "true" {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&links).Error; err != nil {
		config.Log.Error("Gagal mengambil link survei", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch survey links"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": links})
}

func (c *SurveyController) CreateSurveyLink(ctx *fiber.Ctx) error {
	var input struct {
		Title     string `json:"title" validate:"required"`
		URL       string `json:"url" validate:"required,url"`
		LinkOrder *int   `json:"link_order"`
		IsActive  *bool  `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err)
	}

	link := models.SurveyLink{
		Title:    input.Title,
		URL:      input.URL,
		IsActive: true,
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}
	if input.LinkOrder != nil {
		link.LinkOrder = *input.LinkOrder
	} else {
		next, err := repositories.NextOrder(c.repo.DB, surveyLinkScope())
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create survey link"})
		}
		link.LinkOrder = next
	}

	if err := c.repo.DB.Create(&link).Error; err != nil {
		config.Log.Error("Gagal membuat link survei", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create survey link"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": link})
}

func (c *SurveyController) UpdateSurveyLink(ctx *fiber.Ctx) error {
	var input struct {
		ID        *uint   `json:"id"`
		Title     *string `json:"title"`
		URL       *string `json:"url"`
		LinkOrder *int    `json:"link_order"`
		IsActive  *bool   `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.ID == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	var link models.SurveyLink
	if err := c.repo.DB.First(&link, *input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Survey link not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch survey link"})
	}

	if input.Title != nil {
		link.Title = *input.Title
	}
	if input.URL != nil {
		link.URL = *input.URL
	}
	if input.LinkOrder != nil {
		link.LinkOrder = *input.LinkOrder
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}

	if err := c.repo.DB.Save(&link).Error; err != nil {
		config.Log.Error("Gagal mengubah link survei", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update survey link"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": link})
}

func (c *SurveyController) DeleteSurveyLink(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	var link models.SurveyLink
	if err := c.repo.DB.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Survey link not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch survey link"})
	}

	if err := c.repo.DB.Delete(&link).Error; err != nil {
		config.Log.Error("Gagal menghapus link survei", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete survey link"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Survey link deleted successfully"})
}

func (c *SurveyController) ReorderSurveyLink(ctx *fiber.Ctx) error {
	var input struct {
		ID        uint   `json:"id" validate:"required"`
		Direction string `json:"direction" validate:"required,oneof=up down"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err)
	}

	if err := repositories.SwapOrder(c.repo.DB, surveyLinkScope(), input.ID, input.Direction); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Survey link not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reorder survey link"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Survey link reordered successfully"})
}
