package models

import "time"

// User akun pengelola konten
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:150;not null"`
	Email     string    `json:"email" gorm:"size:150;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginLog audit percobaan login admin
type LoginLog struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	SessionID string     `json:"session_id" gorm:"size:64;index"`
	Email     string     `json:"email" gorm:"size:150"`
	Success   bool       `json:"success"`
	IPAddress string     `json:"ip_address" gorm:"size:64"`
	UserAgent string     `json:"user_agent" gorm:"type:text"`
	Browser   string     `json:"browser" gorm:"size:30"`
	OS        string     `json:"os" gorm:"size:30"`
	Device    string     `json:"device" gorm:"size:20"`
	LoginAt   *time.Time `json:"login_at"`
	LogoutAt  *time.Time `json:"logout_at"`
}
