package repository

import (
	"gorm.io/gorm"

	"petkey/internal/models"
)

type SEOSettingsRepository interface {
	Create(settings *models.SEOSettings) error
	FindAll() ([]models.SEOSettings, error)
	FindByID(id uint) (*models.SEOSettings, error)
	FindByPageName(pageName string) (*models.SEOSettings, error)
	Update(settings *models.SEOSettings) error
	Upsert(pageName string, apply func(*models.SEOSettings)) (*models.SEOSettings, error)
	Delete(id uint) error
}

type seoSettingsRepository struct {
	db *gorm.DB
}

func NewSEOSettingsRepository(db *gorm.DB) SEOSettingsRepository {
	return &seoSettingsRepository{db: db}
}

func (r *seoSettingsRepository) Create(settings *models.SEOSettings) error {
	return r.db.Create(settings).Error
}

func (r *seoSettingsRepository) FindAll() ([]models.SEOSettings, error) {
	var settings []models.SEOSettings
	err := r.db.Order("page_name").Find(&settings).Error
	return settings, err
}

func (r *seoSettingsRepository) FindByID(id uint) (*models.SEOSettings, error) {
	var settings models.SEOSettings
	if err := r.db.First(&settings, id).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *seoSettingsRepository) FindByPageName(pageName string) (*models.SEOSettings, error) {
	var settings models.SEOSettings
	if err := r.db.Where("page_name = ?", pageName).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *seoSettingsRepository) Update(settings *models.SEOSettings) error {
	return r.db.Save(settings).Error
}

// Upsert loads the row for pageName, creating it when absent, applies the
// mutation and persists the result in one call.
func (r *seoSettingsRepository) Upsert(pageName string, apply func(*models.SEOSettings)) (*models.SEOSettings, error) {
	var settings models.SEOSettings
	err := r.db.Where("page_name = ?", pageName).First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		settings = models.SEOSettings{PageName: pageName}
	} else if err != nil {
		return nil, err
	}

	apply(&settings)

	if err := r.db.Save(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *seoSettingsRepository) Delete(id uint) error {
	return r.db.Delete(&models.SEOSettings{}, id).Error
}
