package models

import (
	"time"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// AppointmentStatuses is the set of values update_status accepts.
var AppointmentStatuses = []string{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

func IsValidAppointmentStatus(status string) bool {
	for _, s := range AppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID               uint          `gorm:"primaryKey" json:"id" example:"1"`
	VeterinarianID   uint          `gorm:"not null;index" json:"veterinarian" binding:"required"`
	Veterinarian     *Veterinarian `gorm:"foreignKey:VeterinarianID" json:"-"`
	VeterinarianName string        `gorm:"-" json:"veterinarian_name"`
	PetName          string        `gorm:"size:100;not null" json:"pet_name" binding:"required"`
	PetType          string        `gorm:"size:50" json:"pet_type"`
	PetBreed         string        `gorm:"size:100" json:"pet_breed"`
	PetAge           string        `gorm:"size:50" json:"pet_age"`
	OwnerName        string        `gorm:"size:200" json:"owner_name"`
	OwnerEmail       string        `gorm:"size:254" json:"owner_email"`
	OwnerPhone       string        `gorm:"size:20" json:"owner_phone"`
	// Date is ISO yyyy-mm-dd, Time is HH:MM; both compare lexicographically.
	Date       string    `gorm:"size:10;not null;index" json:"date" binding:"required"`
	Time       string    `gorm:"size:5;not null" json:"time" binding:"required"`
	Service    string    `gorm:"size:200" json:"service"`
	Notes      string    `gorm:"type:text" json:"notes"`
	Status     string    `gorm:"size:20;default:pending" json:"status"`
	AdminNotes string    `gorm:"type:text" json:"admin_notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
