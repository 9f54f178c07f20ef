package repository

import (
	"gorm.io/gorm"

	"petkey/internal/models"
)

type PageContentRepository interface {
	Create(content *models.PageContent) error
	FindAll() ([]models.PageContent, error)
	FindByID(id uint) (*models.PageContent, error)
	FindByName(pageName string) (*models.PageContent, error)
	Update(content *models.PageContent) error
	Delete(id uint) error
}

type pageContentRepository struct {
	db *gorm.DB
}

func NewPageContentRepository(db *gorm.DB) PageContentRepository {
	return &pageContentRepository{db: db}
}

func (r *pageContentRepository) Create(content *models.PageContent) error {
	return r.db.Create(content).Error
}

func (r *pageContentRepository) FindAll() ([]models.PageContent, error) {
	var contents []models.PageContent
	err := r.db.Order("page_name").Find(&contents).Error
	return contents, err
}

func (r *pageContentRepository) FindByID(id uint) (*models.PageContent, error) {
	var content models.PageContent
	if err := r.db.First(&content, id).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *pageContentRepository) FindByName(pageName string) (*models.PageContent, error) {
	var content models.PageContent
	if err := r.db.Where("page_name = ?", pageName).First(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *pageContentRepository) Update(content *models.PageContent) error {
	return r.db.Save(content).Error
}

func (r *pageContentRepository) Delete(id uint) error {
	return r.db.Delete(&models.PageContent{}, id).Error
}
