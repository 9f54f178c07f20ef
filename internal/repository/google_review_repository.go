package repository

import (
	"gorm.io/gorm"

	"petkey/internal/models"
)

type GoogleReviewRepository interface {
	Create(review *models.GoogleReview) error
	FindAll(activeOnly bool) ([]models.GoogleReview, error)
	FindByID(id uint) (*models.GoogleReview, error)
	Update(review *models.GoogleReview) error
	Delete(id uint) error
}

type googleReviewRepository struct {
	db *gorm.DB
}

func NewGoogleReviewRepository(db *gorm.DB) GoogleReviewRepository {
	return &googleReviewRepository{db: db}
}

func (r *googleReviewRepository) Create(review *models.GoogleReview) error {
	return r.db.Create(review).Error
}

func (r *googleReviewRepository) FindAll(activeOnly bool) ([]models.GoogleReview, error) {
	query := r.db.Session(&gorm.Session{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var reviews []models.GoogleReview
	err := query.Order("display_order, created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *googleReviewRepository) FindByID(id uint) (*models.GoogleReview, error) {
	var review models.GoogleReview
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *googleReviewRepository) Update(review *models.GoogleReview) error {
	return r.db.Save(review).Error
}

func (r *googleReviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.GoogleReview{}, id).Error
}
