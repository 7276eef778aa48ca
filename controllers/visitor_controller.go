package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pn-nangabulik-backend/repositories"
	"pn-nangabulik-backend/utils"
)

type VisitorController struct {
	repo *repositories.VisitorRepository
}

func NewVisitorController(DB *gorm.DB) *VisitorController {
	return &VisitorController{repo: repositories.NewVisitorRepository(DB)}
}

// RecordVisit mencatat kunjungan halaman. Bot tetap dapat 200 tapi tidak
// ditulis; kunjungan kedua di hari yang sama juga 200 tanpa baris baru.
func (c *VisitorController) RecordVisit(ctx *fiber.Ctx) error {
	var input struct {
		Path string `json:"path"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.Path == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "path is required"})
	}

	ua := ctx.Get("User-Agent")
	if utils.IsBotUserAgent(ua) {
		return ctx.JSON(fiber.Map{"success": true})
	}

	ip := utils.GetClientIP(ctx)
	if err := c.repo.Record(ip, input.Path, ua, time.Now()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record visit"})
	}

	return ctx.JSON(fiber.Map{"success": true})
}
