package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/models"
	"pn-nangabulik-backend/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
		})
	}

	if input.Email == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
		})
	}

	sessionID := uuid.New().String()
	ip, ua, browser, os, device := utils.GetClientInfo(ctx)
	now := time.Now()

	// default log FAILED, di-update kalau login berhasil
	loginLog := models.LoginLog{
		SessionID: sessionID,
		Email:     input.Email,
		Success:   false,
		IPAddress: ip,
		UserAgent: ua,
		Browser:   browser,
		OS:        os,
		Device:    device,
		LoginAt:   &now,
	}

	var user models.User
	err := c.DB.Where("email = ? AND is_active = ?", input.Email, true).First(&user).Error
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		c.DB.Create(&loginLog)
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Email atau password salah",
		})
	}

	expiresAt := now.Add(time.Duration(config.JWTExpiration) * time.Second)
	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"email":      user.Email,
		"session_id": sessionID,
		"exp":        expiresAt.Unix(),
		"iat":        now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		config.Log.Error("Gagal menandatangani token", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create token",
		})
	}

	loginLog.Success = true
	c.DB.Create(&loginLog)

	ctx.Cookie(config.GetTokenCookie(tokenString))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"token":      tokenString,
			"expires_at": expiresAt,
			"user": fiber.Map{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
			},
		},
	})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID, _ := ctx.Locals("sessionID").(string)

	if sessionID != "" {
		now := time.Now()
		result := c.DB.Model(&models.LoginLog{}).
			Where("session_id = ? AND logout_at IS NULL", sessionID).
			Update("logout_at", &now)
		if result.RowsAffected == 0 {
			// bisa karena double logout atau token lama
			config.SLog.Warnw("Tidak ada login log untuk ditutup", "session_id", sessionID)
		}
	}

	ctx.Cookie(config.GetTokenCookie(""))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

func (c *AuthController) Me(ctx *fiber.Ctx) error {
	email, _ := ctx.Locals("email").(string)

	var user models.User
	if err := c.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}
