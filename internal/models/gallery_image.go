package models

import (
	"time"
)

// GalleryCategory pairs the stored category code with its display name.
type GalleryCategory struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var GalleryCategories = []GalleryCategory{
	{Code: "dogs", Name: "Köpekler"},
	{Code: "cats", Name: "Kediler"},
	{Code: "clinic", Name: "Klinik"},
	{Code: "team", Name: "Ekip"},
}

type GalleryImage struct {
	ID          uint   `gorm:"primaryKey" json:"id" example:"1"`
	Title       string `gorm:"size:200;not null" json:"title" binding:"required"`
	Description string `gorm:"type:text" json:"description"`
	// Image is a URL or path string, never an upload.
	Image     string    `gorm:"type:text;not null" json:"image" binding:"required"`
	Category  string    `gorm:"size:50" json:"category"`
	Tags      string    `gorm:"size:500" json:"tags"`
	Order     int       `gorm:"column:display_order;default:0" json:"order"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
