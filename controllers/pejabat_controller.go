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

type PejabatController struct {
	DB *gorm.DB
}

func NewPejabatController(DB *gorm.DB) *PejabatController {
	return &PejabatController{DB: DB}
}

func pejabatScope() repositories.OrderScope {
	return repositories.OrderScope{Table: "pejabat", OrderCol: "pejabat_order"}
}

func (c *PejabatController) GetPejabat(ctx *fiber.Ctx) error {
	var pejabat []models.Pejabat
	q := c.DB.Order("pejabat_order asc, id asc")
	if ctx.Query("admin") != "true" {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&pejabat).Error; err != nil {
		config.Log.Error("Gagal mengambil data pejabat", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch pejabat"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": pejabat})
}

func (c *PejabatController) CreatePejabat(ctx *fiber.Ctx) error {
	var input struct {
		Name         string `json:"name" validate:"required"`
		Position     string `json:"position" validate:"required"`
		NIP          string `json:"nip"`
		PhotoURL     string `json:"photo_url"`
		PejabatOrder *int   `json:"pejabat_order"`
		IsActive     *bool  `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err)
	}

	p := models.Pejabat{
		Name:     input.Name,
		Position: input.Position,
		NIP:      input.NIP,
		PhotoURL: input.PhotoURL,
		IsActive: true,
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
	if input.PejabatOrder != nil {
		p.PejabatOrder = *input.PejabatOrder
	} else {
		next, err := repositories.NextOrder(c.DB, pejabatScope())
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create pejabat"})
		}
		p.PejabatOrder = next
	}

	if err := c.DB.Create(&p).Error; err != nil {
		config.Log.Error("Gagal membuat pejabat", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create pejabat"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": p})
}

func (c *PejabatController) UpdatePejabat(ctx *fiber.Ctx) error {
	var input struct {
		ID           *uint   `json:"id"`
		Name         *string `json:"name"`
		Position     *string `json:"position"`
		NIP          *string `json:"nip"`
		PhotoURL     *string `json:"photo_url"`
		PejabatOrder *int    `json:"pejabat_order"`
		IsActive     *bool   `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.ID == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	var p models.Pejabat
	if err := c.DB.First(&p, *input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pejabat not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch pejabat"})
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Position != nil {
		p.Position = *input.Position
	}
	if input.NIP != nil {
		p.NIP = *input.NIP
	}
	if input.PhotoURL != nil {
		p.PhotoURL = *input.PhotoURL
	}
	if input.PejabatOrder != nil {
		p.PejabatOrder = *input.PejabatOrder
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}

	if err := c.DB.Save(&p).Error; err != nil {
		config.Log.Error("Gagal mengubah pejabat", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update pejabat"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": p})
}

func (c *PejabatController) DeletePejabat(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	var p models.Pejabat
	if err := c.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pejabat not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch pejabat"})
	}

	if err := c.DB.Delete(&p).Error; err != nil {
		config.Log.Error("Gagal menghapus pejabat", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete pejabat"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Pejabat deleted successfully"})
}

func (c *PejabatController) ReorderPejabat(ctx *fiber.Ctx) error {
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

	if err := repositories.SwapOrder(c.DB, pejabatScope(), input.ID, input.Direction); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pejabat not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reorder pejabat"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Pejabat reordered successfully"})
}
