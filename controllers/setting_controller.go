package controllers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/repositories"
)

type SettingController struct {
	repo *repositories.SettingRepository
}

func NewSettingController(DB *gorm.DB) *SettingController {
	return &SettingController{repo: repositories.NewSettingRepository(DB)}
}

// GetSettings semua setting sebagai objek datar, atau satu nilai kalau ?key=
func (c *SettingController) GetSettings(ctx *fiber.Ctx) error {
	if key := ctx.Query("key"); key != "" {
		value, err := c.repo.Get(key)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Setting not found"})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch setting"})
		}
		return ctx.JSON(fiber.Map{"success": true, "data": fiber.Map{key: value}})
	}

	settings, err := c.repo.GetAll()
	if err != nil {
		config.Log.Error("Gagal mengambil setting", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": settings})
}

type settingInput struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

// UpsertSettings menerima satu pasangan {key, value} atau array pasangan
func (c *SettingController) UpsertSettings(ctx *fiber.Ctx) error {
	body := ctx.Body()

	var batch []settingInput
	if err := json.Unmarshal(body, &batch); err != nil {
		var single settingInput
		if err := json.Unmarshal(body, &single); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
		}
		batch = []settingInput{single}
	}

	if len(batch) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No settings provided"})
	}

	pairs := make(map[string]string, len(batch))
	for _, item := range batch {
		if err := validate.Struct(item); err != nil {
			return validationError(ctx, err)
		}
		pairs[item.Key] = item.Value
	}

	if err := c.repo.UpsertMany(pairs); err != nil {
		config.Log.Error("Gagal menyimpan setting", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save settings"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Settings saved successfully", "data": pairs})
}
