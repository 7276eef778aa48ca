package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/models"
	"pn-nangabulik-backend/repositories"
)

type NewsController struct {
	settings *repositories.SettingRepository
	client   *http.Client
}

func NewNewsController(DB *gorm.DB) *NewsController {
	return &NewsController{
		settings: repositories.NewSettingRepository(DB),
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// GetNews proxy daftar berita dari WordPress REST API. URL instance dibaca
// dari setting wordpress_url lewat cache 5 menit; body diteruskan apa adanya.
func (c *NewsController) GetNews(ctx *fiber.Ctx) error {
	baseURL, err := c.settings.GetCached(models.SettingWordpressURL)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Sumber berita belum dikonfigurasi",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch news source"})
	}
	if baseURL == "" {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Sumber berita belum dikonfigurasi",
		})
	}

	page := ctx.QueryInt("page", 1)
	perPage := ctx.QueryInt("per_page", 10)
	if perPage > 50 {
		perPage = 50
	}

	endpoint := fmt.Sprintf("%s/wp-json/wp/v2/posts?_embed=1&page=%d&per_page=%d",
		strings.TrimRight(baseURL, "/"), page, perPage)
	if search := ctx.Query("search"); search != "" {
		endpoint += "&search=" + url.QueryEscape(search)
	}

	resp, err := c.client.Get(endpoint)
	if err != nil {
		config.Log.Error("Gagal mengambil berita dari WordPress", zap.String("endpoint", endpoint), zap.Error(err))
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to fetch news"})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to read news"})
	}

	ctx.Set("Content-Type", "application/json")
	if total := resp.Header.Get("X-WP-Total"); total != "" {
		ctx.Set("X-WP-Total", total)
	}
	if pages := resp.Header.Get("X-WP-TotalPages"); pages != "" {
		ctx.Set("X-WP-TotalPages", pages)
	}

	return ctx.Status(resp.StatusCode).Send(body)
}
