package repository

import (
	"gorm.io/gorm"

	"petkey/internal/models"
)

type SiteSettingsRepository interface {
	Get() (*models.SiteSettings, error)
	Update(settings *models.SiteSettings) error
}

type siteSettingsRepository struct {
	db *gorm.DB
}

func NewSiteSettingsRepository(db *gorm.DB) SiteSettingsRepository {
	return &siteSettingsRepository{db: db}
}

func (r *siteSettingsRepository) Get() (*models.SiteSettings, error) {
	settings := models.DefaultSiteSettings()
	if err := r.db.Where("id = ?", models.SingletonID).FirstOrCreate(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *siteSettingsRepository) Update(settings *models.SiteSettings) error {
	settings.ID = models.SingletonID
	return r.db.Save(settings).Error
}
