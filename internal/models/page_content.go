package models

import (
	"time"
)

// PageContent holds the editable content block of a single site page. The
// JSON sub-documents are consumer-defined and stored without server-side
// shape validation.
type PageContent struct {
	ID       uint   `gorm:"primaryKey" json:"id" example:"1"`
	PageName string `gorm:"size:50;uniqueIndex;not null" json:"page_name" binding:"required"`
	Title    string `gorm:"size:300" json:"title"`
	Content  string `gorm:"type:text" json:"content"`

	Sections            []map[string]interface{} `gorm:"serializer:json" json:"sections"`
	Faqs                []map[string]interface{} `gorm:"serializer:json" json:"faqs"`
	Features            []map[string]interface{} `gorm:"serializer:json" json:"features"`
	ProcessSteps        []map[string]interface{} `gorm:"serializer:json" json:"process_steps"`
	VaccinationSchedule map[string]interface{}   `gorm:"serializer:json" json:"vaccination_schedule"`

	UpdatedAt time.Time `json:"updated_at"`
}
