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

type PartnerController struct {
	DB *gorm.DB
}

func NewPartnerController(DB *gorm.DB) *PartnerController {
	return &PartnerController{DB: DB}
}

func partnerScope() repositories.OrderScope {
	return repositories.OrderScope{Table: "partners", OrderCol: "partner_order"}
}

func (c *PartnerController) GetPartners(ctx *fiber.Ctx) error {
	var partners []models.Partner
	q := c.DB.Order("partner_order asc, id asc")
	if ctx.Query("admin") != "true" {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&partners).Error; err != nil {
		config.Log.Error("Gagal mengambil partner", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch partners"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": partners})
}

func (c *PartnerController) CreatePartner(ctx *fiber.Ctx) error {
	var input struct {
		Name         string `json:"name" validate:"required"`
		LogoURL      string `json:"logo_url"`
		WebsiteURL   string `json:"website_url"`
		PartnerOrder *int   `json:"partner_order"`
		IsActive     *bool  `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err)
	}

	partner := models.Partner{
		Name:       input.Name,
		LogoURL:    input.LogoURL,
		WebsiteURL: input.WebsiteURL,
		IsActive:   true,
	}
	if input.IsActive != nil {
		partner.IsActive = *input.IsActive
	}
	if input.PartnerOrder != nil {
		partner.PartnerOrder = *input.PartnerOrder
	} else {
		next, err := repositories.NextOrder(c.DB, partnerScope())
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create partner"})
		}
		partner.PartnerOrder = next
	}

	if err := c.DB.Create(&partner).Error; err != nil {
		config.Log.Error("Gagal membuat partner", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create partner"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": partner})
}

func (c *PartnerController) UpdatePartner(ctx *fiber.Ctx) error {
	var input struct {
		ID           *uint   `json:"id"`
		Name         *string `json:"name"`
		LogoURL      *string `json:"logo_url"`
		WebsiteURL   *string `json:"website_url"`
		PartnerOrder *int    `json:"partner_order"`
		IsActive     *bool   `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.ID == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	var partner models.Partner
	if err := c.DB.First(&partner, *input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Partner not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch partner"})
	}

	if input.Name != nil {
		partner.Name = *input.Name
	}
	if input.LogoURL != nil {
		partner.LogoURL = *input.LogoURL
	}
	if input.WebsiteURL != nil {
		partner.WebsiteURL = *input.WebsiteURL
	}
	if input.PartnerOrder != nil {
		partner.PartnerOrder = *input.PartnerOrder
	}
	if input.IsActive != nil {
		partner.IsActive = *input.IsActive
	}

	if err := c.DB.Save(&partner).Error; err != nil {
		config.Log.Error("Gagal mengubah partner", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update partner"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": partner})
}

func (c *PartnerController) DeletePartner(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	var partner models.Partner
	if err := c.DB.First(&partner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Partner not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch partner"})
	}

	if err := c.DB.Delete(&partner).Error; err != nil {
		config.Log.Error("Gagal menghapus partner", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete partner"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Partner deleted successfully"})
}

func (c *PartnerController) ReorderPartner(ctx *fiber.Ctx) error {
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

	if err := repositories.SwapOrder(c.DB, partnerScope(), input.ID, input.Direction); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Partner not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reorder partner"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Partner reordered successfully"})
}
