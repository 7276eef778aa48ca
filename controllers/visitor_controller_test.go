package controllers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pn-nangabulik-backend/models"
)

func newVisitorApp(t *testing.T) (*fiber.App, func() int64) {
	t.Helper()

	db := newTestDB(t)
	app := fiber.New()
	app.Post("/api/visitor", NewVisitorController(db).RecordVisit)

	countRows := func() int64 {
		var count int64
		db.Model(&models.Visitor{}).Count(&count)
		return count
	}
	return app, countRows
}

func TestRecordVisitStoresRow(t *testing.T) {
	app, countRows := newVisitorApp(t)

	req := jsonRequest(t, "POST", "/api/visitor", fiber.Map{"path": "/beranda"})
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0) Chrome/120.0")
	req.Header.Set("X-Forwarded-For", "203.0.113.7")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, int64(1), countRows())
}

func TestRecordVisitIgnoresBots(t *testing.T) {
	app, countRows := newVisitorApp(t)

	req := jsonRequest(t, "POST", "/api/visitor", fiber.Map{"path": "/beranda"})
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")

	resp, err := app.Test(req)
	require.NoError(t, err)

	// bot tetap 200 supaya frontend tidak retry, tapi tidak ada baris baru
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, int64(0), countRows())
}

func TestRecordVisitSameDayIdempotent(t *testing.T) {
	app, countRows := newVisitorApp(t)

	for i := 0; i < 2; i++ {
		req := jsonRequest(t, "POST", "/api/visitor", fiber.Map{"path": "/beranda"})
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0) Chrome/120.0")
		req.Header.Set("X-Forwarded-For", "203.0.113.7")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	assert.Equal(t, int64(1), countRows())
}

func TestRecordVisitRequiresPath(t *testing.T) {
	app, countRows := newVisitorApp(t)

	req := jsonRequest(t, "POST", "/api/visitor", fiber.Map{})
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0) Chrome/120.0")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	assert.Equal(t, int64(0), countRows())
}
