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

type MenuController struct {
	repo *repositories.MenuRepository
}

func NewMenuController(DB *gorm.DB) *MenuController {
	return &MenuController{repo: repositories.NewMenuRepository(DB)}
}

// GetMenus mengembalikan pohon menu. Publik hanya yang aktif; admin=true
// mengembalikan seluruh menu (termasuk nonaktif) di bawah key "menus".
func (c *MenuController) GetMenus(ctx *fiber.Ctx) error {
	admin := ctx.Query("admin") == "true"

	menus, err := c.repo.GetAll(!admin)
	if err != nil {
		config.Log.Error("Gagal mengambil menu", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch menus"})
	}

	tree := repositories.BuildMenuTree(menus)

	if admin {
		return ctx.JSON(fiber.Map{"success": true, "menus": tree})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": tree})
}

func (c *MenuController) CreateMenu(ctx *fiber.Ctx) error {
	var input struct {
		Label        string `json:"label" validate:"required"`
		URL          string `json:"url"`
		ParentID     *uint  `json:"parent_id"`
		MenuOrder    *int   `json:"menu_order"`
		IsActive     *bool  `json:"is_active"`
		OpenInNewTab bool   `json:"open_in_new_tab"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err)
	}

	menu := models.Menu{
		Label:        input.Label,
		URL:          input.URL,
		ParentID:     input.ParentID,
		IsActive:     true,
		OpenInNewTab: input.OpenInNewTab,
	}
	if input.URL == "" {
		menu.URL = "#"
	}
	if input.IsActive != nil {
		menu.IsActive = *input.IsActive
	}
	if input.MenuOrder != nil {
		menu.MenuOrder = *input.MenuOrder
	}

	if err := c.repo.Create(&menu, input.MenuOrder != nil); err != nil {
		config.Log.Error("Gagal membuat menu", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create menu"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Menu created successfully",
		"data":    menu,
	})
}

// UpdateMenu partial update: hanya field yang dikirim yang diubah
func (c *MenuController) UpdateMenu(ctx *fiber.Ctx) error {
	var input struct {
		ID           *uint   `json:"id"`
		Label        *string `json:"label"`
		URL          *string `json:"url"`
		ParentID     *uint   `json:"parent_id"`
		ClearParent  bool    `json:"clear_parent"`
		MenuOrder    *int    `json:"menu_order"`
		IsActive     *bool   `json:"is_active"`
		OpenInNewTab *bool   `json:"open_in_new_tab"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.ID == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	menu, err := c.repo.GetByID(*input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch menu"})
	}

	applyMenuPatch(menu, input.Label, input.URL, input.ParentID, input.ClearParent,
		input.MenuOrder, input.IsActive, input.OpenInNewTab)

	if err := c.repo.Update(menu); err != nil {
		config.Log.Error("Gagal mengubah menu", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update menu"})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Menu updated successfully",
		"data":    menu,
	})
}

// applyMenuPatch merge eksplisit per field supaya semua handler PUT konsisten
func applyMenuPatch(menu *models.Menu, label, url *string, parentID *uint, clearParent bool,
	order *int, isActive, openInNewTab *bool) {
	if label != nil {
		menu.Label = *label
	}
	if url != nil {
		menu.URL = *url
	}
	if clearParent {
		menu.ParentID = nil
	} else if parentID != nil {
		menu.ParentID = parentID
	}
	if order != nil {
		menu.MenuOrder = *order
	}
	if isActive != nil {
		menu.IsActive = *isActive
	}
	if openInNewTab != nil {
		menu.OpenInNewTab = *openInNewTab
	}
}

func (c *MenuController) DeleteMenu(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	if err := c.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
		}
		config.Log.Error("Gagal menghapus menu", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete menu"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Menu deleted successfully"})
}

func (c *MenuController) ReorderMenu(ctx *fiber.Ctx) error {
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

	if err := c.repo.Reorder(input.ID, input.Direction); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
		}
		config.Log.Error("Gagal reorder menu", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reorder menu"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Menu reordered successfully"})
}
