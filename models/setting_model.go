package models

import "time"

// SiteSetting pasangan key-value konfigurasi situs, selalu ditulis lewat upsert
type SiteSetting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"size:100;uniqueIndex;not null"`
	Value     string    `json:"value" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Kunci setting yang dipakai aplikasi
const (
	SettingWordpressURL = "wordpress_url"
	SettingContactEmail = "contact_email"
)
