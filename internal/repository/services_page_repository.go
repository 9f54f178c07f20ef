package repository

import (
	"gorm.io/gorm"

	"petkey/internal/models"
)

type ServicesPageRepository interface {
	Get() (*models.ServicesPage, error)
	Update(page *models.ServicesPage) error
}

type servicesPageRepository struct {
	db *gorm.DB
}

func NewServicesPageRepository(db *gorm.DB) ServicesPageRepository {
	return &servicesPageRepository{db: db}
}

func (r *servicesPageRepository) Get() (*models.ServicesPage, error) {
	page := models.DefaultServicesPage()
	if err := r.db.Where("id = ?", models.SingletonID).FirstOrCreate(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *servicesPageRepository) Update(page *models.ServicesPage) error {
	page.ID = models.SingletonID
	return r.db.Save(page).Error
}
