package models

import (
	"time"
)

type Service struct {
	ID               uint   `gorm:"primaryKey" json:"id" example:"1"`
	Slug             string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Icon             string `gorm:"size:10;default:🏥" json:"icon"`
	Title            string `gorm:"size:200;not null" json:"title" binding:"required"`
	ShortDescription string `gorm:"size:500" json:"short_description"`
	IsActive         bool   `gorm:"default:true" json:"is_active"`
	Order            int    `gorm:"column:display_order;default:0" json:"order"`

	// Per-service SEO overrides; empty values fall back to title and
	// short_description on the frontend.
	MetaTitle       string `gorm:"size:70" json:"meta_title"`
	MetaDescription string `gorm:"size:170" json:"meta_description"`
	MetaKeywords    string `gorm:"size:255" json:"meta_keywords"`
	OgImage         string `gorm:"size:255;default:/og-service.jpg" json:"og_image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
