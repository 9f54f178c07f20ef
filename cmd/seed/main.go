package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"petkey/database"
	"petkey/internal/models"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Warn("No .env file found, using environment variables")
		}
	}
}

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.WithError(err).Fatal("Failed to run database migrations")
	}

	switch os.Args[1] {
	case "admin":
		seedAdmin()
	case "services":
		seedServices()
	case "all":
		seedAdmin()
		seedServices()
	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage: seed <command>")
	fmt.Println("Commands:")
	fmt.Println("  admin     Create the admin user from ADMIN_USERNAME/ADMIN_EMAIL/ADMIN_PASSWORD")
	fmt.Println("  services  Insert the default service catalog when the table is empty")
	fmt.Println("  all       Run every seeder")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// seedAdmin creates the bootstrap superuser unless the username is taken.
func seedAdmin() {
	username := envOr("ADMIN_USERNAME", "admin")
	email := envOr("ADMIN_EMAIL", "admin@petkey.com")
	password := envOr("ADMIN_PASSWORD", "admin123")

	var count int64
	database.DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.WithField("username", username).Warn("Admin user already exists, skipping")
		return
	}

	user := models.User{
		Username:    username,
		Email:       email,
		IsStaff:     true,
		IsSuperuser: true,
		IsActive:    true,
	}
	if err := user.SetPassword(password); err != nil {
		log.WithError(err).Fatal("Failed to hash admin password")
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.WithError(err).Fatal("Failed to create admin user")
	}
	log.WithField("username", username).Info("Admin user created")
}

var defaultServices = []models.Service{
	{Slug: "yurtdisi-cikis", Icon: "✈️", Title: "Yurtdışı Çıkış İşlemleri", ShortDescription: "Sevimli dostlarınızla yurt dışına seyahat için gerekli tüm veteriner işlemleri.", Order: 1},
	{Slug: "kalp-muayenesi", Icon: "❤️", Title: "Kalp Muayenesi", ShortDescription: "Evcil hayvanınızın kardiyovasküler sağlığını detaylı olarak değerlendiriyoruz.", Order: 2},
	{Slug: "check-up", Icon: "🩺", Title: "Check-Up", ShortDescription: "Düzenli genel sağlık kontrolü ile hastalıkların erken teşhisi.", Order: 3},
	{Slug: "kuduz-titrasyon-testi", Icon: "🧪", Title: "Kuduz Titrasyon Testi", ShortDescription: "Yurtdışı seyahatler için gerekli olan kuduz antikor seviyesinin ölçümü.", Order: 4},
	{Slug: "asilama", Icon: "💉", Title: "Aşılama", ShortDescription: "Evcil hayvanınızı hastalıklardan korumak için düzenli aşılama programları.", Order: 5},
	{Slug: "cerrahi-operasyonlar", Icon: "🏥", Title: "Cerrahi Operasyonlar", ShortDescription: "Modern ameliyathane ve deneyimli ekibimizle tüm cerrahi müdahaleler.", Order: 6},
	{Slug: "parazit-tedavisi", Icon: "🐛", Title: "Parazit Tedavisi", ShortDescription: "İç ve dış parazitlere karşı kapsamlı koruma ve tedavi programları.", Order: 7},
	{Slug: "laboratuvar-hizmetleri", Icon: "🔬", Title: "Laboratuvar Hizmetleri", ShortDescription: "Modern laboratuvar teknolojisi ile hızlı ve güvenilir test sonuçları.", Order: 8},
	{Slug: "dogum-ve-jinekoloji", Icon: "🍼", Title: "Doğum ve Jinekoloji", ShortDescription: "Üreme sağlığı, gebelik takibi ve doğum hizmetleri.", Order: 9},
	{Slug: "viral-hastaliklar", Icon: "🦠", Title: "Viral Hastalıklar", ShortDescription: "Viral enfeksiyonların teşhis, tedavi ve önlenmesi.", Order: 10},
	{Slug: "goruntuleme-hizmetleri", Icon: "📡", Title: "Görüntüleme Hizmetleri", ShortDescription: "Dijital röntgen, ultrason ve diğer görüntüleme teknikleri.", Order: 11},
	{Slug: "mikrocip-implantasyonu", Icon: "💾", Title: "Mikroçip İmplantasyonu", ShortDescription: "Evcil hayvanınızın kalıcı kimlik tanımlaması ve kayıt sistemi.", Order: 12},
	{Slug: "kedi-kopek-konaklama", Icon: "🏨", Title: "Kedi & Köpek Konaklaması", ShortDescription: "Güvenli, konforlu ve hijyenik ortamda evcil hayvan pansiyon hizmeti.", Order: 13},
	{Slug: "mama", Icon: "🍖", Title: "Mama ve Besin Desteği", ShortDescription: "Premium kalite mama ve besin takviyesi ürünleri.", Order: 14},
	{Slug: "pet-kuafor", Icon: "✂️", Title: "Pet Kuaför", ShortDescription: "Profesyonel tımar ve bakım hizmetleri.", Order: 15},
	{Slug: "pet-malzeme", Icon: "🧸", Title: "Pet Malzeme", ShortDescription: "Evcil hayvanınız için kaliteli ürün ve aksesuarlar.", Order: 16},
	{Slug: "vaccinated-pets", Icon: "📋", Title: "Aşılı Hayvan Sertifikası", ShortDescription: "Resmi aşı belgesi ve sertifika düzenleme hizmeti.", Order: 17},
}

// seedServices fills the catalog only when it is empty; reruns are no-ops.
func seedServices() {
	var count int64
	database.DB.Model(&models.Service{}).Count(&count)
	if count > 0 {
		log.WithField("count", count).Warn("Services already exist, skipping")
		return
	}

	created := 0
	for i := range defaultServices {
		service := defaultServices[i]
		service.IsActive = true
		if err := database.DB.Create(&service).Error; err != nil {
			log.WithError(err).WithField("slug", service.Slug).Error("Failed to create service")
			continue
		}
		created++
	}
	log.WithField("created", created).Info("Service catalog seeded")
}
