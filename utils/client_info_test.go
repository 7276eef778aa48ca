package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBotUserAgent(t *testing.T) {
	bots := []string{
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"Mozilla/5.0 (compatible; bingbot/2.0)",
		"curl/8.4.0",
		"Wget/1.21",
		"python-requests/2.31.0",
		"Go-http-client/1.1",
		"axios/1.6.2",
		"facebookexternalhit/1.1",
		"WhatsApp/2.23.20",
		"Mozilla/5.0 (X11; Linux x86_64) HeadlessChrome/119.0",
	}
	for _, ua := range bots {
		assert.True(t, IsBotUserAgent(ua), "harus terdeteksi bot: %s", ua)
	}

	humans := []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148 Safari/604.1",
		"",
	}
	for _, ua := range humans {
		assert.False(t, IsBotUserAgent(ua), "tidak boleh terdeteksi bot: %q", ua)
	}
}

// ipEcho handler kecil untuk memeriksa hasil GetClientIP lewat app.Test
func ipEcho(t *testing.T, headers map[string]string) string {
	t.Helper()

	app := fiber.New()
	var got string
	app.Get("/", func(ctx *fiber.Ctx) error {
		got = GetClientIP(ctx)
		return ctx.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	return got
}

func TestGetClientIPHeaderPriority(t *testing.T) {
	// Cloudflare menang atas semua header lain
	ip := ipEcho(t, map[string]string{
		"Cf-Connecting-Ip": "203.0.113.7",
		"X-Forwarded-For":  "198.51.100.1, 10.0.0.1",
		"X-Real-Ip":        "192.0.2.9",
	})
	assert.Equal(t, "203.0.113.7", ip)

	// X-Forwarded-For diambil entri pertamanya
	ip = ipEcho(t, map[string]string{
		"X-Forwarded-For": " 198.51.100.1 , 10.0.0.1",
		"X-Real-Ip":       "192.0.2.9",
	})
	assert.Equal(t, "198.51.100.1", ip)

	ip = ipEcho(t, map[string]string{
		"X-Real-Ip": "192.0.2.9",
	})
	assert.Equal(t, "192.0.2.9", ip)

	// tanpa header proxy jatuh ke remote address
	ip = ipEcho(t, nil)
	assert.NotEmpty(t, ip)
}

func TestGetClientInfo(t *testing.T) {
	app := fiber.New()
	var browser, os, device string
	app.Get("/", func(ctx *fiber.Ctx) error {
		_, _, browser, os, device = GetClientInfo(ctx)
		return ctx.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "Chrome", browser)
	assert.Equal(t, "Windows", os)
	assert.Equal(t, "DESKTOP", device)
}
