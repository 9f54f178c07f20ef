package models

import (
	"time"
)

type Veterinarian struct {
	ID              uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name            string `gorm:"size:200;not null" json:"name" binding:"required" example:"Dr. Ayşe Yılmaz"`
	Slug            string `gorm:"size:200;uniqueIndex" json:"slug"`
	Specialty       string `gorm:"size:200" json:"specialty" example:"Genel Veteriner Hekim"`
	Bio             string `gorm:"type:text" json:"bio"`
	Avatar          string `gorm:"type:text" json:"avatar"`
	ExperienceYears int    `json:"experience_years"`
	Education       string `gorm:"type:text" json:"education"`
	GraduationYear  *int   `json:"graduation_year"`
	Certifications  string `gorm:"type:text" json:"certifications"`
	ExpertiseAreas  string `gorm:"type:text" json:"expertise_areas"`
	Achievements    string `gorm:"type:text" json:"achievements"`

	// Working hours, one free-text string per weekday
	MondayHours    string `gorm:"size:50" json:"monday_hours"`
	TuesdayHours   string `gorm:"size:50" json:"tuesday_hours"`
	WednesdayHours string `gorm:"size:50" json:"wednesday_hours"`
	ThursdayHours  string `gorm:"size:50" json:"thursday_hours"`
	FridayHours    string `gorm:"size:50" json:"friday_hours"`
	SaturdayHours  string `gorm:"size:50" json:"saturday_hours"`
	SundayHours    string `gorm:"size:50" json:"sunday_hours"`

	Phone    string `gorm:"size:20" json:"phone"`
	Email    string `gorm:"size:254" json:"email"`
	Address  string `gorm:"type:text" json:"address"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Deleting a veterinarian cascades to both relations.
	BlogPosts    []BlogPost    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:VeterinarianID;constraint:OnDelete:CASCADE" json:"-"`
}
