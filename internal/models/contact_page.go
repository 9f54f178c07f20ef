package models

import (
	"time"
)

type ContactPage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	HeroTitle    string `gorm:"size:200" json:"hero_title"`
	HeroSubtitle string `gorm:"type:text" json:"hero_subtitle"`

	PhoneNumber    string `gorm:"size:50" json:"phone_number"`
	PhoneLabel     string `gorm:"size:100" json:"phone_label"`
	WhatsappNumber string `gorm:"size:50" json:"whatsapp_number"`
	WhatsappLabel  string `gorm:"size:100" json:"whatsapp_label"`
	EmailPrimary   string `gorm:"size:254" json:"email_primary"`
	EmailSecondary string `gorm:"size:254" json:"email_secondary"`

	AddressLine1    string `gorm:"size:200" json:"address_line1"`
	AddressLine2    string `gorm:"size:200" json:"address_line2"`
	GoogleMapsURL   string `gorm:"size:500" json:"google_maps_url"`
	GoogleMapsEmbed string `gorm:"type:text" json:"google_maps_embed"`

	WorkingHours []map[string]interface{} `gorm:"serializer:json" json:"working_hours"`
	WhyContactUs []map[string]interface{} `gorm:"serializer:json" json:"why_contact_us"`

	EmergencyTitle    string `gorm:"size:200" json:"emergency_title"`
	EmergencySubtitle string `gorm:"type:text" json:"emergency_subtitle"`
	EmergencyPhone    string `gorm:"size:50" json:"emergency_phone"`
	EmergencyWhatsapp string `gorm:"size:50" json:"emergency_whatsapp"`

	UpdatedAt time.Time `json:"updated_at"`
}

func DefaultContactPage() ContactPage {
	return ContactPage{
		ID:              SingletonID,
		HeroTitle:       "Bizimle İletişime Geçin",
		HeroSubtitle:    "Sevimli dostlarınızın sağlığı için her zaman yanınızdayız. 7/24 hizmetinizdeyiz!",
		PhoneNumber:     "(0212) 123 45 67",
		PhoneLabel:      "7/24 Acil Hat",
		WhatsappNumber:  "0555 123 45 67",
		WhatsappLabel:   "Hızlı İletişim",
		EmailPrimary:    "info@petkey.com",
		EmailSecondary:  "destek@petkey.com",
		AddressLine1:    "Kadıköy, İstanbul",
		AddressLine2:    "Türkiye",
		GoogleMapsURL:   "https://www.google.com/maps/place/Kad%C4%B1k%C3%B6y,+Istanbul/@40.9887328,29.0242891,13z",
		GoogleMapsEmbed: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d48377.833789145195!2d29.00782952167968!3d40.98876200000001!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x14cab9bdf0702a83%3A0xe9e46e5fdbf96af!2zS2FkxLFrw7Z5LCDEsHN0YW5idWw!5e0!3m2!1str!2str!4v1647000000000!5m2!1str!2str",
		WorkingHours: []map[string]interface{}{
			{"day": "Pazartesi - Cuma", "hours": "09:00 - 19:00"},
			{"day": "Cumartesi", "hours": "10:00 - 17:00"},
			{"day": "Pazar", "hours": "10:00 - 15:00"},
			{"day": "Acil Servis", "hours": "7/24 Hizmet"},
		},
		WhyContactUs: []map[string]interface{}{
			{"icon": "🏥", "title": "7/24 Hizmet", "description": "Acil durumlar için her zaman ulaşılabilir"},
			{"icon": "👨‍⚕️", "title": "Uzman Kadro", "description": "Deneyimli veteriner hekimler"},
			{"icon": "⚡", "title": "Hızlı Yanıt", "description": "En kısa sürede size dönüş yapıyoruz"},
			{"icon": "💚", "title": "Güvenilir", "description": "Binlerce mutlu müşteri"},
		},
		EmergencyTitle:    "🚨 Acil Durumlar İçin",
		EmergencySubtitle: "Evcil dostunuzun acil bir durumu mu var? Hemen bizi arayın!",
		EmergencyPhone:    "(0212) 123 45 67",
		EmergencyWhatsapp: "0555 123 45 67",
	}
}
