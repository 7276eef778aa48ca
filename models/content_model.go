package models

import "time"

// HeroSlide untuk carousel di halaman utama
type HeroSlide struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:255;not null"`
	Subtitle   string    `json:"subtitle" gorm:"size:255"`
	ImageURL   string    `json:"image_url" gorm:"size:255;not null"`
	LinkURL    string    `json:"link_url" gorm:"size:255"`
	SlideOrder int       `json:"slide_order" gorm:"column:slide_order;default:0;index"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Pejabat struktur organisasi pengadilan
type Pejabat struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:150;not null"`
	Position     string    `json:"position" gorm:"size:150;not null"`
	NIP          string    `json:"nip" gorm:"size:30"`
	PhotoURL     string    `json:"photo_url" gorm:"size:255"`
	PejabatOrder int       `json:"pejabat_order" gorm:"column:pejabat_order;default:0;index"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Pejabat) TableName() string {
	return "pejabat"
}

// Faq tanya jawab layanan pengadilan
type Faq struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Question  string    `json:"question" gorm:"type:text;not null"`
	Answer    string    `json:"answer" gorm:"type:text;not null"`
	FaqOrder  int       `json:"faq_order" gorm:"column:faq_order;default:0;index"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Partner logo tautan instansi terkait (MA, Badilum, dsb)
type Partner struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:150;not null"`
	LogoURL      string    `json:"logo_url" gorm:"size:255"`
	WebsiteURL   string    `json:"website_url" gorm:"size:255"`
	PartnerOrder int       `json:"partner_order" gorm:"column:partner_order;default:0;index"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Page halaman statis (profil, prosedur, dsb) yang dirender frontend
type Page struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Slug      string    `json:"slug" gorm:"size:160;uniqueIndex;not null"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
