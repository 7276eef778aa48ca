package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// botSignatures substring (lowercase) yang menandai user agent otomatis.
// Kunjungan dari client seperti ini diterima tapi tidak dicatat.
var botSignatures = []string{
	"bot",
	"crawl",
	"spider",
	"preview",
	"headless",
	"curl",
	"wget",
	"python-requests",
	"go-http-client",
	"axios",
	"java/",
	"libwww",
	"okhttp",
	"scrapy",
	"phantom",
	"lighthouse",
	"pingdom",
	"facebookexternalhit",
	"whatsapp",
	"telegrambot",
	"slurp",
}

// IsBotUserAgent cek apakah user agent cocok dengan salah satu signature bot
func IsBotUserAgent(ua string) bool {
	if ua == "" {
		return false
	}
	uaLower := strings.ToLower(ua)
	for _, sig := range botSignatures {
		if strings.Contains(uaLower, sig) {
			return true
		}
	}
	return false
}

// GetClientIP mengambil IP pengunjung dengan urutan prioritas header:
// cf-connecting-ip -> x-forwarded-for (entri pertama) -> x-real-ip -> "unknown"
func GetClientIP(ctx *fiber.Ctx) string {
	if ip := strings.TrimSpace(ctx.Get("Cf-Connecting-Ip")); ip != "" {
		return ip
	}

	if fwd := ctx.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	if ip := strings.TrimSpace(ctx.Get("X-Real-Ip")); ip != "" {
		return ip
	}

	if ip := ctx.IP(); ip != "" {
		return ip
	}

	return "unknown"
}

// GetClientInfo dipakai audit login: IP, user agent, plus tebakan browser/os/device
func GetClientInfo(ctx *fiber.Ctx) (ip, ua, browser, os, device string) {
	ip = GetClientIP(ctx)
	ua = ctx.Get("User-Agent")

	uaLower := strings.ToLower(ua)

	switch {
	case strings.Contains(uaLower, "edg"):
		browser = "Edge"
	case strings.Contains(uaLower, "chrome"):
		browser = "Chrome"
	case strings.Contains(uaLower, "firefox"):
		browser = "Firefox"
	case strings.Contains(uaLower, "safari"):
		browser = "Safari"
	default:
		browser = "Unknown"
	}

	switch {
	case strings.Contains(uaLower, "windows"):
		os = "Windows"
	case strings.Contains(uaLower, "android"):
		os = "Android"
	case strings.Contains(uaLower, "iphone"):
		os = "iOS"
	case strings.Contains(uaLower, "linux"):
		os = "Linux"
	default:
		os = "Unknown"
	}

	if strings.Contains(uaLower, "mobile") {
		device = "MOBILE"
	} else {
		device = "DESKTOP"
	}

	return
}
