package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/models"
)

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
	SeedMenus(db)
	SeedSettings(db)
}

// SeedAdminUser membuat akun admin awal dari konfigurasi bila belum ada
func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	err := db.Where("email = ?", config.AdminEmail).First(&existing).Error
	if err == nil {
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Gagal memeriksa user admin: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Gagal hash password admin: %v", err)
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    config.AdminEmail,
		Password: string(hashed),
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Gagal membuat user admin: %v", err)
	}
}

// SeedMenus mengisi menu navigasi awal bila tabel masih kosong
func SeedMenus(db *gorm.DB) {
	var count int64
	db.Model(&models.Menu{}).Count(&count)
	if count > 0 {
		return
	}

	menus := []models.Menu{
		{Label: "Beranda", URL: "/", MenuOrder: 0, IsActive: true},
		{Label: "Profil", URL: "#", MenuOrder: 1, IsActive: true},
		{Label: "Layanan Publik", URL: "#", MenuOrder: 2, IsActive: true},
		{Label: "Berita", URL: "/berita", MenuOrder: 3, IsActive: true},
		{Label: "Hubungi Kami", URL: "/kontak", MenuOrder: 4, IsActive: true},
	}

	for i := range menus {
		if err := db.Create(&menus[i]).Error; err != nil {
			log.Printf("Gagal seed menu %s: %v", menus[i].Label, err)
		}
	}
}

// SeedSettings mengisi setting dasar dengan nilai kosong agar key-nya tersedia
func SeedSettings(db *gorm.DB) {
	settings := []models.SiteSetting{
		{Key: models.SettingWordpressURL, Value: ""},
		{Key: models.SettingContactEmail, Value: ""},
	}

	for _, s := range settings {
		var existing models.SiteSetting
		if err := db.Where(&models.SiteSetting{Key: s.Key}).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&s)
			}
		}
	}
}
