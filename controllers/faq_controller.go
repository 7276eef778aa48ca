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

type FaqController struct {
	DB *gorm.DB
}

func NewFaqController(DB *gorm.DB) *FaqController {
	return &FaqController{DB: DB}
}

func faqScope() repositories.OrderScope {
	return repositories.OrderScope{Table: "faqs", OrderCol: "faq_order"}
}

func (c *FaqController) GetFaqs(ctx *fiber.Ctx) error {
	var faqs []models.Faq
	q := c.DB.Order("faq_order asc, id asc")
	if ctx.Query("admin") != "true" {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&faqs).Error; err != nil {
		config.Log.Error("Gagal mengambil FAQ", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch faqs"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": faqs})
}

func (c *FaqController) CreateFaq(ctx *fiber.Ctx) error {
	var input struct {
		Question string `json:"question" validate:"required"`
		Answer   string `json:"answer" validate:"required"`
		FaqOrder *int   `json:"faq_order"`
		IsActive *bool  `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err)
	}

	faq := models.Faq{
		Question: input.Question,
		Answer:   input.Answer,
		IsActive: true,
	}
	if input.IsActive != nil {
		faq.IsActive = *input.IsActive
	}
	if input.FaqOrder != nil {
		faq.FaqOrder = *input.FaqOrder
	} else {
		next, err := repositories.NextOrder(c.DB, faqScope())
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create faq"})
		}
		faq.FaqOrder = next
	}

	if err := c.DB.Create(&faq).Error; err != nil {
		config.Log.Error("Gagal membuat FAQ", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create faq"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": faq})
}

func (c *FaqController) UpdateFaq(ctx *fiber.Ctx) error {
	var input struct {
		ID       *uint   `json:"id"`
		Question *string `json:"question"`
		Answer   *string `json:"answer"`
		FaqOrder *int    `json:"faq_order"`
		IsActive *bool   `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.ID == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	var faq models.Faq
	if err := c.DB.First(&faq, *input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faq not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch faq"})
	}

	if input.Question != nil {
		faq.Question = *input.Question
	}
	if input.Answer != nil {
		faq.Answer = *input.Answer
	}
	if input.FaqOrder != nil {
		faq.FaqOrder = *input.FaqOrder
	}
	if input.IsActive != nil {
		faq.IsActive = *input.IsActive
	}

	if err := c.DB.Save(&faq).Error; err != nil {
		config.Log.Error("Gagal mengubah FAQ", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update faq"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": faq})
}

func (c *FaqController) DeleteFaq(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	var faq models.Faq
	if err := c.DB.First(&faq, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faq not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch faq"})
	}

	if err := c.DB.Delete(&faq).Error; err != nil {
		config.Log.Error("Gagal menghapus FAQ", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete faq"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Faq deleted successfully"})
}

func (c *FaqController) ReorderFaq(ctx *fiber.Ctx) error {
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

	if err := repositories.SwapOrder(c.DB, faqScope(), input.ID, input.Direction); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faq not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reorder faq"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Faq reordered successfully"})
}
