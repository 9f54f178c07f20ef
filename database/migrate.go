package database

import (
	"log"

	"petkey/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Veterinarian{},
		&models.BlogPost{},
		&models.Appointment{},
		&models.ContactMessage{},
		&models.GalleryImage{},
		&models.PageContent{},
		&models.Service{},
		&models.AboutPage{},
		&models.ContactPage{},
		&models.ServicesPage{},
		&models.HomePage{},
		&models.SiteSettings{},
		&models.SEOSettings{},
		&models.GoogleReview{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
