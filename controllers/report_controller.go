package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/models"
	"pn-nangabulik-backend/repositories"
	"pn-nangabulik-backend/utils"
)

type ReportController struct {
	repo *repositories.ReportRepository
}

func NewReportController(DB *gorm.DB) *ReportController {
	return &ReportController{repo: repositories.NewReportRepository(DB)}
}

// ===== Kategori laporan =====

func (c *ReportController) GetCategories(ctx *fiber.Ctx) error {
	admin := ctx.Query("admin") == "true"
	categories, err := c.repo.GetCategories(!admin, true)
	if err != nil {
		config.Log.Error("Gagal mengambil kategori laporan", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch categories"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": categories})
}

func (c *ReportController) CreateCategory(ctx *fiber.Ctx) error {
	var input struct {
		Name          string `json:"name" validate:"required"`
		Slug          string `json:"slug"`
		Description   string `json:"description"`
		CategoryOrder *int   `json:"category_order"`
		IsActive      *bool  `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err)
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.GenerateSlug(input.Name)
	}

	category := models.ReportCategory{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		IsActive:    true,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if input.CategoryOrder != nil {
		category.CategoryOrder = *input.CategoryOrder
	} else {
		next, err := repositories.NextOrder(c.repo.DB, repositories.OrderScope{
			Table: "report_categories", OrderCol: "category_order",
		})
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create category"})
		}
		category.CategoryOrder = next
	}

	if err := c.repo.CreateCategory(&category); err != nil {
		if errors.Is(err, repositories.ErrDuplicateSlug) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Slug sudah dipakai kategori lain",
			})
		}
		config.Log.Error("Gagal membuat kategori laporan", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create category"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": category})
}

func (c *ReportController) UpdateCategory(ctx *fiber.Ctx) error {
	var input struct {
		ID            *uint   `json:"id"`
		Name          *string `json:"name"`
		Slug          *string `json:"slug"`
		Description   *string `json:"description"`
		CategoryOrder *int    `json:"category_order"`
		IsActive      *bool   `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.ID == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	category, err := c.repo.GetCategoryByID(*input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch category"})
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Slug != nil {
		category.Slug = *input.Slug
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.CategoryOrder != nil {
		category.CategoryOrder = *input.CategoryOrder
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := c.repo.UpdateCategory(category); err != nil {
		if errors.Is(err, repositories.ErrDuplicateSlug) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Slug sudah dipakai kategori lain",
			})
		}
		config.Log.Error("Gagal mengubah kategori laporan", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update category"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": category})
}

func (c *ReportController) DeleteCategory(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	if err := c.repo.DeleteCategory(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		config.Log.Error("Gagal menghapus kategori laporan", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete category"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Category deleted successfully"})
}

func (c *ReportController) ReorderCategory(ctx *fiber.Ctx) error {
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

	sc := repositories.OrderScope{Table: "report_categories", OrderCol: "category_order"}
	if err := repositories.SwapOrder(c.repo.DB, sc, input.ID, input.Direction); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reorder category"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Category reordered successfully"})
}

// ===== Link laporan =====

func (c *ReportController) GetLinks(ctx *fiber.Ctx) error {
	admin := ctx.Query("admin") == "true"
	categoryID := uint(ctx.QueryInt("categoryId"))

	links, err := c.repo.GetLinks(categoryID, !admin)
	if err != nil {
		config.Log.Error("Gagal mengambil link laporan", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch links"})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": links})
}

func (c *ReportController) CreateLink(ctx *fiber.Ctx) error {
	var input struct {
		CategoryID uint   `json:"category_id" validate:"required"`
		Title      string `json:"title" validate:"required"`
		URL        string `json:"url" validate:"required,url"`
		Year       int    `json:"year"`
		LinkOrder  *int   `json:"link_order"`
		IsActive   *bool  `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return validationError(ctx, err)
	}

	if _, err := c.repo.GetCategoryByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch category"})
	}

	link := models.ReportLink{
		CategoryID: input.CategoryID,
		Title:      input.Title,
		URL:        input.URL,
		Year:       input.Year,
		IsActive:   true,
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}
	if input.LinkOrder != nil {
		link.LinkOrder = *input.LinkOrder
	} else {
		next, err := repositories.NextOrder(c.repo.DB, repositories.OrderScope{
			Table: "report_links", OrderCol: "link_order",
			Where: "category_id = ?", Args: []interface{}{input.CategoryID},
		})
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create link"})
		}
		link.LinkOrder = next
	}

	if err := c.repo.CreateLink(&link); err != nil {
		config.Log.Error("Gagal membuat link laporan", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create link"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": link})
}

func (c *ReportController) UpdateLink(ctx *fiber.Ctx) error {
	var input struct {
		ID         *uint   `json:"id"`
		CategoryID *uint   `json:"category_id"`
		Title      *string `json:"title"`
		URL        *string `json:"url"`
		Year       *int    `json:"year"`
		LinkOrder  *int    `json:"link_order"`
		IsActive   *bool   `json:"is_active"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.ID == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	link, err := c.repo.GetLinkByID(*input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Link not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch link"})
	}

	if input.CategoryID != nil {
		link.CategoryID = *input.CategoryID
	}
	if input.Title != nil {
		link.Title = *input.Title
	}
	if input.URL != nil {
		link.URL = *input.URL
	}
	if input.Year != nil {
		link.Year = *input.Year
	}
	if input.LinkOrder != nil {
		link.LinkOrder = *input.LinkOrder
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}

	if err := c.repo.UpdateLink(link); err != nil {
		config.Log.Error("Gagal mengubah link laporan", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update link"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": link})
}

func (c *ReportController) DeleteLink(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	if id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}

	if err := c.repo.DeleteLink(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Link not found"})
		}
		config.Log.Error("Gagal menghapus link laporan", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete link"})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Link deleted successfully"})
}

// ===== Tracking view =====

// TrackView mencatat event view kategori atau klik link
func (c *ReportController) TrackView(ctx *fiber.Ctx) error {
	var input struct {
		CategoryID uint `json:"categoryId"`
		LinkID     uint `json:"linkId"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.CategoryID == 0 && input.LinkID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "categoryId or linkId is required"})
	}

	ip := utils.GetClientIP(ctx)
	ua := ctx.Get("User-Agent")

	var err error
	if input.CategoryID != 0 {
		err = c.repo.TrackCategoryView(input.CategoryID, ip, ua)
	} else {
		err = c.repo.TrackLinkView(input.LinkID, ip, ua)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Entity not found"})
		}
		config.Log.Error("Gagal mencatat view laporan", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to track view"})
	}

	return ctx.JSON(fiber.Map{"success": true})
}

// GetViewStats total view + pengunjung berbeda untuk satu entitas, atau
// ringkasan semua entitas kalau tanpa parameter
func (c *ReportController) GetViewStats(ctx *fiber.Ctx) error {
	categoryID := ctx.QueryInt("categoryId")
	linkID := ctx.QueryInt("linkId")

	if categoryID > 0 {
		stats, err := c.repo.GetCategoryViewStats(uint(categoryID))
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch stats"})
		}
		return ctx.JSON(fiber.Map{"success": true, "data": stats})
	}

	if linkID > 0 {
		stats, err := c.repo.GetLinkViewStats(uint(linkID))
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch stats"})
		}
		return ctx.JSON(fiber.Map{"success": true, "data": stats})
	}

	categories, links, err := c.repo.GetAllViewSummaries()
	if err != nil {
		config.Log.Error("Gagal mengambil ringkasan view", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch stats"})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"categories": categories,
			"links":      links,
		},
	})
}
