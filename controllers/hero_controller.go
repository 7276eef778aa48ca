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

type HeroController struct {
	DB *gorm.DB
}

func NewHeroController(DB *gorm.DB) *HeroController {
	return &HeroController{DB: DB}
}

func heroScope() repositories.OrderScope {
	return repositories.OrderScope{Table: "hero_slides", OrderCol: "slide_order"}
}

func (c *HeroController) GetSlides(ctx *fiber.Ctx) error {
	var slides []models.HeroSlide
	q := c.DB.Order("slide_order asc, id asc")
	if ctx.Query("admin") != "true" {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&slides).Error; err != nil {
		config.Log.Error("Gagal mengambil hero slide", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch slides"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": slides})
}

func (c *HeroController) CreateSlide(ctx *fiber.Ctx) error {
	var input struct {
		Title      string `json:"title" validate:"required"`
		Subtitle   string `json:"subtitle"`
		ImageURL   string `json:"image_url" validate:"required,url"`
		LinkURL    string `json:"link_url"`
		SlideOrder *int   `json:"slide_order"`
		IsActive   *bool  `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err)
	}

	slide := models.HeroSlide{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		ImageURL: input.ImageURL,
		LinkURL:  input.LinkURL,
		IsActive: true,
	}
	if input.IsActive != nil {
		slide.IsActive = *input.IsActive
	}
	if input.SlideOrder != nil {
		slide.SlideOrder = *input.SlideOrder
	} else {
		next, err := repositories.NextOrder(c.DB, heroScope())
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create slide"})
		}
		slide.SlideOrder = next
	}

	if err := c.DB.Create(&slide).Error; err != nil {
		config.Log.Error("Gagal membuat hero slide", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create slide"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": slide})
}

func (c *HeroController) UpdateSlide(ctx *fiber.Ctx) error {
	var input struct {
		ID         *uint   `json:"id"`
		Title      *string `json:"title"`
		Subtitle   *string `json:"subtitle"`
		ImageURL   *string `json:"image_url"`
		LinkURL    *string `json:"link_url"`
		SlideOrder *int    `json:"slide_order"`
		IsActive   *bool   `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.ID == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	var slide models.HeroSlide
	if err := c.DB.First(&slide, *input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slide not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch slide"})
	}

	if input.Title != nil {
		slide.Title = *input.Title
	}
	if input.Subtitle != nil {
		slide.Subtitle = *input.Subtitle
	}
	if input.ImageURL != nil {
		slide.ImageURL = *input.ImageURL
	}
	if input.LinkURL != nil {
		slide.LinkURL = *input.LinkURL
	}
	if input.SlideOrder != nil {
		slide.SlideOrder = *input.SlideOrder
	}
	if input.IsActive != nil {
		slide.IsActive = *input.IsActive
	}

	if err := c.DB.Save(&slide).Error; err != nil {
		config.Log.Error("Gagal mengubah hero slide", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update slide"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": slide})
}

func (c *HeroController) DeleteSlide(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	var slide models.HeroSlide
	if err := c.DB.First(&slide, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slide not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch slide"})
	}

	if err := c.DB.Delete(&slide).Error; err != nil {
		config.Log.Error("Gagal menghapus hero slide", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete slide"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Slide deleted successfully"})
}

func (c *HeroController) ReorderSlide(ctx *fiber.Ctx) error {
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

	if err := repositories.SwapOrder(c.DB, heroScope(), input.ID, input.Direction); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slide not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reorder slide"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Slide reordered successfully"})
}
