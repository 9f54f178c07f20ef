package models

import (
	"time"
)

// HomePage drives every section of the landing page; each section carries a
// visibility switch so the admin can turn it off without losing the copy.
type HomePage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HeroTitle            string `gorm:"size:200" json:"hero_title"`
	HeroSubtitle         string `gorm:"size:300" json:"hero_subtitle"`
	HeroCtaText          string `gorm:"size:50" json:"hero_cta_text"`
	HeroCtaLink          string `gorm:"size:200" json:"hero_cta_link"`
	HeroSecondaryCtaText string `gorm:"size:50" json:"hero_secondary_cta_text"`
	HeroSecondaryCtaLink string `gorm:"size:200" json:"hero_secondary_cta_link"`

	ShowStats   bool   `gorm:"default:true" json:"show_stats"`
	Stat1Number string `gorm:"size:20" json:"stat1_number"`
	Stat1Label  string `gorm:"size:100" json:"stat1_label"`
	Stat2Number string `gorm:"size:20" json:"stat2_number"`
	Stat2Label  string `gorm:"size:100" json:"stat2_label"`
	Stat3Number string `gorm:"size:20" json:"stat3_number"`
	Stat3Label  string `gorm:"size:100" json:"stat3_label"`
	Stat4Number string `gorm:"size:20" json:"stat4_number"`
	Stat4Label  string `gorm:"size:100" json:"stat4_label"`

	ShowServices     bool   `gorm:"default:true" json:"show_services"`
	ServicesTitle    string `gorm:"size:200" json:"services_title"`
	ServicesSubtitle string `gorm:"size:300" json:"services_subtitle"`

	ShowWhyChoose     bool                     `gorm:"default:true" json:"show_why_choose"`
	WhyChooseTitle    string                   `gorm:"size:200" json:"why_choose_title"`
	WhyChooseSubtitle string                   `gorm:"size:300" json:"why_choose_subtitle"`
	WhyChooseFeatures []map[string]interface{} `gorm:"serializer:json" json:"why_choose_features"`

	ShowAbout        bool   `gorm:"default:true" json:"show_about"`
	AboutTitle       string `gorm:"size:200" json:"about_title"`
	AboutDescription string `gorm:"type:text" json:"about_description"`
	AboutCtaText     string `gorm:"size:50" json:"about_cta_text"`

	ShowVeterinarians     bool   `gorm:"default:true" json:"show_veterinarians"`
	VeterinariansTitle    string `gorm:"size:200" json:"veterinarians_title"`
	VeterinariansSubtitle string `gorm:"size:300" json:"veterinarians_subtitle"`

	ShowAppointmentCta        bool                     `gorm:"default:true" json:"show_appointment_cta"`
	AppointmentCtaTitle       string                   `gorm:"size:200" json:"appointment_cta_title"`
	AppointmentCtaDescription string                   `gorm:"type:text" json:"appointment_cta_description"`
	AppointmentCtaButton      string                   `gorm:"size:50" json:"appointment_cta_button"`
	AppointmentCtaPhone       string                   `gorm:"size:20" json:"appointment_cta_phone"`
	AppointmentCtaPhoneLink   string                   `gorm:"size:20" json:"appointment_cta_phone_link"`
	AppointmentCtaFeatures    []map[string]interface{} `gorm:"serializer:json" json:"appointment_cta_features"`
	AppointmentCtaStat1Number string                   `gorm:"size:20" json:"appointment_cta_stat1_number"`
	AppointmentCtaStat1Label  string                   `gorm:"size:50" json:"appointment_cta_stat1_label"`
	AppointmentCtaStat2Number string                   `gorm:"size:20" json:"appointment_cta_stat2_number"`
	AppointmentCtaStat2Label  string                   `gorm:"size:50" json:"appointment_cta_stat2_label"`
	AppointmentCtaStat3Number string                   `gorm:"size:20" json:"appointment_cta_stat3_number"`
	AppointmentCtaStat3Label  string                   `gorm:"size:50" json:"appointment_cta_stat3_label"`

	ShowReviews     bool   `gorm:"default:true" json:"show_reviews"`
	ReviewsTitle    string `gorm:"size:200" json:"reviews_title"`
	ReviewsSubtitle string `gorm:"size:300" json:"reviews_subtitle"`
	ReviewsRating   string `gorm:"size:10" json:"reviews_rating"`
	ReviewsCount    string `gorm:"size:20" json:"reviews_count"`
	ReviewsCtaText  string `gorm:"size:100" json:"reviews_cta_text"`
	ReviewsCtaLink  string `gorm:"size:500" json:"reviews_cta_link"`

	ShowBlog     bool   `gorm:"default:true" json:"show_blog"`
	BlogTitle    string `gorm:"size:200" json:"blog_title"`
	BlogSubtitle string `gorm:"size:300" json:"blog_subtitle"`

	ShowContact        bool   `gorm:"default:true" json:"show_contact"`
	ContactTitle       string `gorm:"size:200" json:"contact_title"`
	ContactDescription string `gorm:"type:text" json:"contact_description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func DefaultHomePage() HomePage {
	return HomePage{
		ID:                        SingletonID,
		HeroTitle:                 "İstanbul'un En Güvenilir Veteriner Kliniği",
		HeroSubtitle:              "Modern ekipmanlarımız ve uzman veteriner kadromuzla evcil dostlarınızın sağlığı için 7/24 hizmetinizdeyiz",
		HeroCtaText:               "Randevu Al",
		HeroCtaLink:               "/randevu",
		HeroSecondaryCtaText:      "Hizmetlerimiz",
		HeroSecondaryCtaLink:      "/hizmetler",
		ShowStats:                 true,
		Stat1Number:               "15+",
		Stat1Label:                "Yıllık Deneyim",
		Stat2Number:               "10,000+",
		Stat2Label:                "Mutlu Hayvan Sahibi",
		Stat3Number:               "7/24",
		Stat3Label:                "Acil Servis",
		Stat4Number:               "25+",
		Stat4Label:                "Uzman Veteriner",
		ShowServices:              true,
		ServicesTitle:             "Hizmetlerimiz",
		ServicesSubtitle:          "Evcil dostlarınız için kapsamlı veteriner hizmetleri",
		ShowWhyChoose:             true,
		WhyChooseTitle:            "Neden Biz?",
		WhyChooseSubtitle:         "Modern teknoloji ve sevgi dolu yaklaşımımızla fark yaratıyoruz",
		ShowAbout:                 true,
		AboutTitle:                "Biz Kimiz?",
		AboutDescription:          "İstanbul'un güvenilir veteriner kliniği olarak evcil dostlarınızın sağlığı için hizmet veriyoruz.",
		AboutCtaText:              "Daha Fazla Bilgi",
		ShowVeterinarians:         true,
		VeterinariansTitle:        "Uzman Kadromuz",
		VeterinariansSubtitle:     "Deneyimli ve uzman veteriner hekimlerimiz",
		ShowAppointmentCta:        true,
		AppointmentCtaTitle:       "Randevu Almaya Hazır mısınız?",
		AppointmentCtaDescription: "Evcil dostunuz için hemen online randevu oluşturun",
		AppointmentCtaButton:      "Hemen Randevu Al",
		AppointmentCtaPhone:       "(0212) 123 45 67",
		AppointmentCtaPhoneLink:   "+902121234567",
		AppointmentCtaStat1Number: "4.9",
		AppointmentCtaStat1Label:  "Google Puanı",
		AppointmentCtaStat2Number: "5,000+",
		AppointmentCtaStat2Label:  "Mutlu Hayvan",
		AppointmentCtaStat3Number: "15+",
		AppointmentCtaStat3Label:  "Uzman Veteriner",
		ShowReviews:               true,
		ReviewsTitle:              "Müşteri Yorumları",
		ReviewsSubtitle:           "Google'da aldığımız gerçek müşteri değerlendirmeleri",
		ReviewsRating:             "4.9",
		ReviewsCount:              "250+",
		ReviewsCtaText:            "Tüm Yorumları Google'da Gör",
		ReviewsCtaLink:            "https://www.google.com/maps",
		ShowBlog:                  true,
		BlogTitle:                 "Blog Yazılarımız",
		BlogSubtitle:              "Evcil hayvan bakımı hakkında faydalı bilgiler",
		ShowContact:               true,
		ContactTitle:              "Bize Ulaşın",
		ContactDescription:        "Sorularınız için bizimle iletişime geçin",
	}
}
