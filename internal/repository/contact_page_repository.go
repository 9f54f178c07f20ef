package repository

import (
	"gorm.io/gorm"

	"petkey/internal/models"
)

type ContactPageRepository interface {
	Get() (*models.ContactPage, error)
	Update(page *models.ContactPage) error
}

type contactPageRepository struct {
	db *gorm.DB
}

func NewContactPageRepository(db *gorm.DB) ContactPageRepository {
	return &contactPageRepository{db: db}
}

func (r *contactPageRepository) Get() (*models.ContactPage, error) {
	page := models.DefaultContactPage()
	if err := r.db.Where("id = ?", models.SingletonID).FirstOrCreate(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *contactPageRepository) Update(page *models.ContactPage) error {
	page.ID = models.SingletonID
	return r.db.Save(page).Error
}
