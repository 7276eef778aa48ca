package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/models"
	"pn-nangabulik-backend/repositories"
	"pn-nangabulik-backend/utils"
)

type ContactController struct {
	settings *repositories.SettingRepository
}

func NewContactController(DB *gorm.DB) *ContactController {
	return &ContactController{settings: repositories.NewSettingRepository(DB)}
}

// SubmitContact meneruskan pesan pengunjung ke email kepaniteraan
func (c *ContactController) SubmitContact(ctx *fiber.Ctx) error {
	var input struct {
		Name    string `json:"name" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
		Subject string `json:"subject" validate:"required"`
		Message string `json:"message" validate:"required,min=10"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err)
	}

	to, err := c.settings.Get(models.SettingContactEmail)
	if err != nil || to == "" {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Alamat email tujuan belum dikonfigurasi",
		})
	}

	body := fmt.Sprintf("Dari: %s <%s>\n\n%s", input.Name, input.Email, input.Message)
	if err := utils.SendMail(to, "[Website] "+input.Subject, body); err != nil {
		if errors.Is(err, utils.ErrMailNotConfigured) {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Pengiriman email belum dikonfigurasi",
			})
		}
		config.Log.Error("Gagal mengirim email kontak", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send message"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Pesan terkirim"})
}
