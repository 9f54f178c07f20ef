package repository

import (
	"gorm.io/gorm"

	"petkey/internal/models"
)

type HomePageRepository interface {
	Get() (*models.HomePage, error)
	Update(page *models.HomePage) error
}

type homePageRepository struct {
	db *gorm.DB
}

func NewHomePageRepository(db *gorm.DB) HomePageRepository {
	return &homePageRepository{db: db}
}

func (r *homePageRepository) Get() (*models.HomePage, error) {
	page := models.DefaultHomePage()
	if err := r.db.Where("id = ?", models.SingletonID).FirstOrCreate(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *homePageRepository) Update(page *models.HomePage) error {
	page.ID = models.SingletonID
	return r.db.Save(page).Error
}
