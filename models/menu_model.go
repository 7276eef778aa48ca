package models

import "time"

// Menu adalah item navigasi publik. ParentID self-referencing untuk submenu,
// MenuOrder hanya unik antar saudara (sibling) dengan parent yang sama.
type Menu struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Label        string    `json:"label" gorm:"size:100;not null"`
	URL          string    `json:"url" gorm:"size:255;default:'#'"` // "#" untuk node induk tanpa tautan
	ParentID     *uint     `json:"parent_id" gorm:"index"`
	MenuOrder    int       `json:"menu_order" gorm:"column:menu_order;default:0;index"`
	IsActive     bool      `json:"is_active"`
	OpenInNewTab bool      `json:"open_in_new_tab" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Menu) TableName() string {
	return "menus"
}

// MenuNode adalah bentuk pohon yang dikirim ke frontend
type MenuNode struct {
	Menu
	Children []MenuNode `json:"children"`
}
