package models

import (
	"time"

	"pn-nangabulik-backend/types"
)

// ReportCategory kategori dokumen laporan (DIPA, LKjIP, Renstra, dst).
// Slug dipakai frontend sebagai path, harus unik.
type ReportCategory struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	Name          string       `json:"name" gorm:"size:150;not null"`
	Slug          string       `json:"slug" gorm:"size:160;uniqueIndex;not null"`
	Description   string       `json:"description" gorm:"type:text"`
	CategoryOrder int          `json:"category_order" gorm:"column:category_order;default:0;index"`
	IsActive      bool         `json:"is_active"`
	Links         []ReportLink `json:"links,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// ReportLink tautan dokumen dalam satu kategori
type ReportLink struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CategoryID uint      `json:"category_id" gorm:"index;not null"`
	Title      string    `json:"title" gorm:"size:255;not null"`
	URL        string    `json:"url" gorm:"size:255;not null"`
	Year       int       `json:"year"`
	LinkOrder  int       `json:"link_order" gorm:"column:link_order;default:0;index"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReportView event mentah kunjungan halaman kategori
type ReportView struct {
	ID         types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint              `json:"category_id" gorm:"index;not null"`
	IPAddress  string            `json:"ip_address" gorm:"size:64"`
	UserAgent  string            `json:"user_agent" gorm:"type:text"`
	CreatedAt  time.Time         `json:"created_at" gorm:"index"`
}

// ReportLinkView event mentah klik tautan dokumen
type ReportLinkView struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	LinkID    uint              `json:"link_id" gorm:"index;not null"`
	IPAddress string            `json:"ip_address" gorm:"size:64"`
	UserAgent string            `json:"user_agent" gorm:"type:text"`
	CreatedAt time.Time         `json:"created_at" gorm:"index"`
}
