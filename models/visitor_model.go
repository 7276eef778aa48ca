package models

import "time"

// Visitor satu baris per (ip, path, hari kalender). Unique index gabungan
// menjadi satu-satunya mekanisme dedup untuk insert bersamaan.
type Visitor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	IPAddress string    `json:"ip_address" gorm:"size:64;not null;uniqueIndex:idx_visitors_ip_path_date"`
	Path      string    `json:"path" gorm:"size:255;not null;uniqueIndex:idx_visitors_ip_path_date"`
	UserAgent string    `json:"user_agent" gorm:"type:text"`
	VisitDate time.Time `json:"visit_date" gorm:"not null;uniqueIndex:idx_visitors_ip_path_date"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// VisitorStatistics hasil agregasi untuk dashboard admin
type VisitorStatistics struct {
	Today       int64           `json:"today"`
	Yesterday   int64           `json:"yesterday"`
	ThisWeek    int64           `json:"this_week"`
	LastWeek    int64           `json:"last_week"`
	ThisMonth   int64           `json:"this_month"`
	LastMonth   int64           `json:"last_month"`
	Total       int64           `json:"total"`
	OnlineUsers int64           `json:"online_users"`
	PerPage     []PageStatistic `json:"per_page"`
}

// PageStatistic rincian kunjungan per path
type PageStatistic struct {
	Path        string `json:"path"`
	Total       int64  `json:"total"`
	Today       int64  `json:"today"`
	TodayUnique int64  `json:"today_unique"`
}
