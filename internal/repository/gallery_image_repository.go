package repository

import (
	"gorm.io/gorm"

	"petkey/internal/models"
)

type GalleryImageFilter struct {
	ActiveOnly bool
	Category   string
}

type GalleryImageRepository interface {
	Create(image *models.GalleryImage) error
	FindAll(filter GalleryImageFilter) ([]models.GalleryImage, error)
	FindByID(id uint) (*models.GalleryImage, error)
	Update(image *models.GalleryImage) error
	Delete(id uint) error
	CountActiveByCategory(category string) (int64, error)
}

type galleryImageRepository struct {
	db *gorm.DB
}

func NewGalleryImageRepository(db *gorm.DB) GalleryImageRepository {
	return &galleryImageRepository{db: db}
}

func (r *galleryImageRepository) Create(image *models.GalleryImage) error {
	return r.db.Create(image).Error
}

func (r *galleryImageRepository) FindAll(filter GalleryImageFilter) ([]models.GalleryImage, error) {
	query := r.db.Session(&gorm.Session{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var images []models.GalleryImage
	err := query.Order("display_order, created_at DESC").Find(&images).Error
	return images, err
}

func (r *galleryImageRepository) FindByID(id uint) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *galleryImageRepository) Update(image *models.GalleryImage) error {
	return r.db.Save(image).Error
}

func (r *galleryImageRepository) Delete(id uint) error {
	return r.db.Delete(&models.GalleryImage{}, id).Error
}

func (r *galleryImageRepository) CountActiveByCategory(category string) (int64, error) {
	var count int64
	err := r.db.Model(&models.GalleryImage{}).
		Where("is_active = ? AND category = ?", true, category).Count(&count).Error
	return count, err
}
