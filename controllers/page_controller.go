package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/models"
	"pn-nangabulik-backend/repositories"
	"pn-nangabulik-backend/utils"
)

type PageController struct {
	DB *gorm.DB
}

func NewPageController(DB *gorm.DB) *PageController {
	return &PageController{DB: DB}
}

// GetPages daftar halaman, atau satu halaman kalau ?slug= diberikan
func (c *PageController) GetPages(ctx *fiber.Ctx) error {
	if slug := ctx.Query("slug"); slug != "" {
		var page models.Page
		if err := c.DB.Where("slug = ?", slug).First(&page).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Page not found"})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch page"})
		}
		if !page.IsActive && ctx.Query("admin") != "true" {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Page not found"})
		}
		return ctx.JSON(fiber.Map{"success": true, "data": page})
	}

	var pages []models.Page
	q := c.DB.Order("id asc")
	if ctx.Query("admin") != "true" {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&pages).Error; err != nil {
		config.Log.Error("Gagal mengambil halaman", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch pages"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": pages})
}

func (c *PageController) CreatePage(ctx *fiber.Ctx) error {
	var input struct {
		Title    string `json:"title" validate:"required"`
		Slug     string `json:"slug"`
		Content  string `json:"content"`
		IsActive *bool  `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err)
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.GenerateSlug(input.Title)
	}

	page := models.Page{
		Title:    input.Title,
		Slug:     slug,
		Content:  input.Content,
		IsActive: true,
	}
	if input.IsActive != nil {
		page.IsActive = *input.IsActive
	}

	if err := c.DB.Create(&page).Error; err != nil {
		if repositories.IsDuplicateKeyErr(err) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Slug sudah dipakai halaman lain",
			})
		}
		config.Log.Error("Gagal membuat halaman", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create page"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": page})
}

func (c *PageController) UpdatePage(ctx *fiber.Ctx) error {
	var input struct {
		ID       *uint   `json:"id"`
		Title    *string `json:"title"`
		Slug     *string `json:"slug"`
		Content  *string `json:"content"`
		IsActive *bool   `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.ID == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	var page models.Page
	if err := c.DB.First(&page, *input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Page not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch page"})
	}

	if input.Title != nil {
		page.Title = *input.Title
	}
	if input.Slug != nil {
		page.Slug = *input.Slug
	}
	if input.Content != nil {
		page.Content = *input.Content
	}
	if input.IsActive != nil {
		page.IsActive = *input.IsActive
	}

	if err := c.DB.Save(&page).Error; err != nil {
		if repositories.IsDuplicateKeyErr(err) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Slug sudah dipakai halaman lain",
			})
		}
		config.Log.Error("Gagal mengubah halaman", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update page"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": page})
}

func (c *PageController) DeletePage(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	var page models.Page
	if err := c.DB.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Page not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch page"})
	}

	if err := c.DB.Delete(&page).Error; err != nil {
		config.Log.Error("Gagal menghapus halaman", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete page"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Page deleted successfully"})
}
