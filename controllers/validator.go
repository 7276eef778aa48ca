package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// validationError membentuk respon 400 dengan map field -> aturan yang gagal
func validationError(ctx *fiber.Ctx, err error) error {
	if ve, ok := err.(validator.ValidationErrors); ok {
		errorsMap := make(map[string]string, len(ve))
		for _, fieldErr := range ve {
			errorsMap[fieldErr.Field()] = fieldErr.Tag()
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validasi gagal",
			"errors":  errorsMap,
		})
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Invalid input",
	})
}
