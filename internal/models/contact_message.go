package models

import (
	"time"
)

const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

type ContactMessage struct {
	ID         uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name       string `gorm:"size:200;not null" json:"name" binding:"required"`
	Email      string `gorm:"size:254;not null" json:"email" binding:"required"`
	Phone      string `gorm:"size:20" json:"phone"`
	Subject    string `gorm:"size:200" json:"subject"`
	Message    string `gorm:"type:text" json:"message" binding:"required"`
	Status     string `gorm:"size:20;default:new" json:"status"`
	AdminReply string `gorm:"type:text" json:"admin_reply"`
	// Deletion is logical; the row stays until permanent_delete.
	IsDeleted bool       `gorm:"default:false;index" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
