package models

import "time"

// Survey hasil survei IKM/IPK per triwulan, upsert pada (year, category, quarter)
type Survey struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Year       int       `json:"year" gorm:"not null;uniqueIndex:idx_surveys_year_category_quarter"`
	Category   string    `json:"category" gorm:"size:50;not null;uniqueIndex:idx_surveys_year_category_quarter"`
	Quarter    int       `json:"quarter" gorm:"not null;uniqueIndex:idx_surveys_year_category_quarter"`
	Percentage float64   `json:"percentage"`
	ReportURL  string    `json:"report_url" gorm:"size:255"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SurveyLink tautan partisipasi survei yang sedang berjalan
type SurveyLink struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	URL       string    `json:"url" gorm:"size:255;not null"`
	LinkOrder int       `json:"link_order" gorm:"column:link_order;default:0;index"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
