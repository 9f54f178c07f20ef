package models

import (
	"time"
)

type SiteSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SiteTitle        string `gorm:"size:200" json:"site_title"`
	SiteLogoImage    string `gorm:"type:text" json:"site_logo_image"`
	SiteLogoText     string `gorm:"size:100" json:"site_logo_text"`
	SiteLogoSubtitle string `gorm:"size:100" json:"site_logo_subtitle"`
	// Shown when no logo image is set.
	SiteLogoEmoji string `gorm:"size:10" json:"site_logo_emoji"`

	ContactPhone     string `gorm:"size:20" json:"contact_phone"`
	ContactPhoneLink string `gorm:"size:20" json:"contact_phone_link"`
	ContactWhatsapp  string `gorm:"size:20" json:"contact_whatsapp"`
	ContactEmail     string `gorm:"size:254" json:"contact_email"`
	ContactAddress   string `gorm:"type:text" json:"contact_address"`

	FooterAboutText    string `gorm:"type:text" json:"footer_about_text"`
	FooterFacebookURL  string `gorm:"size:500" json:"footer_facebook_url"`
	FooterInstagramURL string `gorm:"size:500" json:"footer_instagram_url"`
	FooterTwitterURL   string `gorm:"size:500" json:"footer_twitter_url"`

	WorkingHoursWeekday string `gorm:"size:100" json:"working_hours_weekday"`
	WorkingHoursWeekend string `gorm:"size:100" json:"working_hours_weekend"`
	WorkingHoursInfo    string `gorm:"size:200" json:"working_hours_info"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:                  SingletonID,
		SiteTitle:           "Veteriner Kliniği",
		SiteLogoText:        "Veteriner",
		SiteLogoSubtitle:    "Veteriner Kliniği",
		SiteLogoEmoji:       "🐾",
		ContactPhone:        "(0212) 123 45 67",
		ContactPhoneLink:    "+902121234567",
		ContactWhatsapp:     "+905001234567",
		ContactEmail:        "info@veteriner.com",
		ContactAddress:      "Kadıköy, İstanbul",
		FooterAboutText:     "Sevimli dostlarınızın sağlığı için modern ekipman ve deneyimli kadromuzla 7/24 hizmetinizdeyiz. Onların mutluluğu bizim önceliğimiz.",
		FooterFacebookURL:   "https://facebook.com/veteriner",
		FooterInstagramURL:  "https://instagram.com/veteriner",
		FooterTwitterURL:    "https://twitter.com/veteriner",
		WorkingHoursWeekday: "09:00 - 18:00",
		WorkingHoursWeekend: "10:00 - 16:00",
		WorkingHoursInfo:    "7/24 Acil Servis",
	}
}
