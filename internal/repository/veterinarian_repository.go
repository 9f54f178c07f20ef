package repository

import (
	"fmt"

	"gorm.io/gorm"

	"petkey/internal/models"
	"petkey/internal/utils"
)

type VeterinarianRepository interface {
	Create(vet *models.Veterinarian) error
	FindAll() ([]models.Veterinarian, error)
	FindActive() ([]models.Veterinarian, error)
	FindBySlug(slug string) (*models.Veterinarian, error)
	Update(vet *models.Veterinarian) error
	Delete(slug string) error
}

type veterinarianRepository struct {
	db *gorm.DB
}

func NewVeterinarianRepository(db *gorm.DB) VeterinarianRepository {
	return &veterinarianRepository{db: db}
}

// Create derives the slug from the name, suffixing -1, -2, ... on collision.
func (r *veterinarianRepository) Create(vet *models.Veterinarian) error {
	if vet.Slug == "" {
		base := utils.Slugify(vet.Name)
		slug := base
		for counter := 1; ; counter++ {
			var count int64
			if err := r.db.Model(&models.Veterinarian{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				break
			}
			slug = fmt.Sprintf("%s-%d", base, counter)
		}
		vet.Slug = slug
	}
	return r.db.Create(vet).Error
}

func (r *veterinarianRepository) FindAll() ([]models.Veterinarian, error) {
	var vets []models.Veterinarian
	err := r.db.Order("created_at DESC").Find(&vets).Error
	return vets, err
}

func (r *veterinarianRepository) FindActive() ([]models.Veterinarian, error) {
	var vets []models.Veterinarian
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&vets).Error
	return vets, err
}

func (r *veterinarianRepository) FindBySlug(slug string) (*models.Veterinarian, error) {
	var vet models.Veterinarian
	if err := r.db.Where("slug = ?", slug).First(&vet).Error; err != nil {
		return nil, err
	}
	return &vet, nil
}

func (r *veterinarianRepository) Update(vet *models.Veterinarian) error {
	return r.db.Save(vet).Error
}

func (r *veterinarianRepository) Delete(slug string) error {
	return r.db.Where("slug = ?", slug).Delete(&models.Veterinarian{}).Error
}
