package models

import (
	"time"
)

type ServicesPage struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	HeroTitleLine1  string `gorm:"size:200" json:"hero_title_line1"`
	HeroTitleLine2  string `gorm:"size:200" json:"hero_title_line2"`
	HeroDescription string `gorm:"type:text" json:"hero_description"`
	HeroPhone       string `gorm:"size:50" json:"hero_phone"`
	HeroPhoneLink   string `gorm:"size:50" json:"hero_phone_link"`

	FeaturePills []map[string]interface{} `gorm:"serializer:json" json:"feature_pills"`
	Stats        []map[string]interface{} `gorm:"serializer:json" json:"stats"`

	CtaTitle       string `gorm:"size:200" json:"cta_title"`
	CtaSubtitle    string `gorm:"size:200" json:"cta_subtitle"`
	CtaDescription string `gorm:"type:text" json:"cta_description"`
	CtaPhone       string `gorm:"size:50" json:"cta_phone"`

	UpdatedAt time.Time `json:"updated_at"`
}

func DefaultServicesPage() ServicesPage {
	return ServicesPage{
		ID:              SingletonID,
		HeroTitleLine1:  "Evcil Dostlarınız İçin",
		HeroTitleLine2:  "Kapsamlı Hizmetler",
		HeroDescription: "Modern ekipmanlarımız ve uzman veteriner kadromuzla evcil hayvanlarınızın sağlığı için her türlü hizmeti sunuyoruz.",
		HeroPhone:       "(0212) 123 45 67",
		HeroPhoneLink:   "+902121234567",
		FeaturePills: []map[string]interface{}{
			{"icon": "🏥", "text": "Modern Klinik"},
			{"icon": "⚡", "text": "7/24 Acil Servis"},
			{"icon": "👨‍⚕️", "text": "Uzman Kadro"},
		},
		Stats: []map[string]interface{}{
			{"number": "21+", "label": "Hizmet Dalı", "icon": "🩺", "gradient": "from-emerald-500 to-cyan-500"},
			{"number": "7/24", "label": "Acil Hizmet", "icon": "⏰", "gradient": "from-blue-500 to-purple-500"},
			{"number": "15+", "label": "Yıllık Deneyim", "icon": "👨‍⚕️", "gradient": "from-emerald-500 to-cyan-500"},
			{"number": "100%", "label": "Modern Ekipman", "icon": "🏥", "gradient": "from-orange-500 to-pink-500"},
			{"number": "10K+", "label": "Mutlu Hayvan", "icon": "💚", "gradient": "from-green-500 to-emerald-500"},
		},
		CtaTitle:       "Daha Fazla Bilgi İçin",
		CtaSubtitle:    "Bize Ulaşın",
		CtaDescription: "Size en uygun hizmeti bulmak ve randevu oluşturmak için 7/24 hizmetinizdeyiz",
		CtaPhone:       "(0212) 123 45 67",
	}
}
