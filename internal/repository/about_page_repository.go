package repository

import (
	"gorm.io/gorm"

	"petkey/internal/models"
)

type AboutPageRepository interface {
	Get() (*models.AboutPage, error)
	Update(page *models.AboutPage) error
}

type aboutPageRepository struct {
	db *gorm.DB
}

func NewAboutPageRepository(db *gorm.DB) AboutPageRepository {
	return &aboutPageRepository{db: db}
}

// Get returns the single about page row, creating it with defaults on first use.
func (r *aboutPageRepository) Get() (*models.AboutPage, error) {
	page := models.DefaultAboutPage()
	if err := r.db.Where("id = ?", models.SingletonID).FirstOrCreate(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *aboutPageRepository) Update(page *models.AboutPage) error {
	page.ID = models.SingletonID
	return r.db.Save(page).Error
}
