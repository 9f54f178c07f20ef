package models

import (
	"time"
)

// GoogleReview is display copy of an external review; nothing here talks to
// the Google API.
type GoogleReview struct {
	ID      uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name    string `gorm:"size:200;not null" json:"name" binding:"required"`
	Initial string `gorm:"size:2" json:"initial"`
	Rating  int    `gorm:"default:5" json:"rating"`
	Text    string `gorm:"type:text" json:"text"`
	// Relative display string, e.g. "2 hafta önce".
	Date       string `gorm:"size:50" json:"date"`
	Verified   bool   `gorm:"default:true" json:"verified"`
	LocalGuide bool   `gorm:"default:false" json:"local_guide"`
	IsActive   bool   `gorm:"default:true" json:"is_active"`
	Order      int    `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
