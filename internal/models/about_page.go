package models

import (
	"time"
)

// SingletonID is the fixed primary key shared by all single-row page tables.
const SingletonID uint = 1

type AboutPage struct {
	ID           uint                     `gorm:"primaryKey" json:"id"`
	HeroSubtitle string                   `gorm:"type:text" json:"hero_subtitle"`
	Stats        []map[string]interface{} `gorm:"serializer:json" json:"stats"`

	StoryTitle      string `gorm:"size:200" json:"story_title"`
	StoryParagraph1 string `gorm:"type:text" json:"story_paragraph_1"`
	StoryParagraph2 string `gorm:"type:text" json:"story_paragraph_2"`

	Values []map[string]interface{} `gorm:"serializer:json" json:"values"`

	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultAboutPage is the row inserted on first access.
func DefaultAboutPage() AboutPage {
	return AboutPage{
		ID:           SingletonID,
		HeroSubtitle: "Evcil dostlarınızın sağlığı ve mutluluğu için 10+ yıldır hizmetinizdeyiz",
		Stats: []map[string]interface{}{
			{"number": "10+", "label": "Yıllık Tecrübe"},
			{"number": "25K+", "label": "Mutlu Hasta"},
			{"number": "15+", "label": "Uzman Veteriner"},
			{"number": "%99", "label": "Memnuniyet Oranı"},
		},
		StoryTitle:      "Hikayemiz",
		StoryParagraph1: "PetKey Veteriner Kliniği, 2014 yılında evcil hayvan sevgisi ve veterinerlik tutkusuyla kuruldu. Küçük bir klinikten başlayan yolculuğumuz, bugün binlerce mutlu evcil hayvan ve sahiplerinin güvendiği bir merkez haline geldi.",
		StoryParagraph2: "Modern teknoloji, deneyimli kadro ve sınırsız sevgi ile her gün daha fazla canına dokunuyoruz. Misyonumuz basit: Her evcil hayvana en iyi sağlık hizmetini sunmak ve onların mutlu, sağlıklı bir yaşam sürmelerini sağlamak.",
		Values: []map[string]interface{}{
			{"icon": "FaHeart", "title": "Sevgi ve Özen", "description": "Her hayvana aile ferdiniz gibi yaklaşıyor, onların mutluluğunu ön planda tutuyoruz."},
			{"icon": "FaAward", "title": "Profesyonellik", "description": "En yüksek kalite standartlarında, modern ekipmanlarla hizmet veriyoruz."},
			{"icon": "FaUserMd", "title": "Uzman Kadro", "description": "Alanında deneyimli, sürekli kendini geliştiren veteriner hekimlerimiz."},
			{"icon": "FaPaw", "title": "7/24 Hizmet", "description": "Acil durumlarda her an ulaşabileceğiniz kesintisiz veteriner hizmeti sunuyoruz."},
		},
	}
}
