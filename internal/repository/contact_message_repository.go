package repository

import (
	"time"

	"gorm.io/gorm"

	"petkey/internal/models"
)

// ContactMessageFilter narrows list queries. Deleted=false (the default)
// hides soft-deleted rows; Deleted=true shows only the trash.
type ContactMessageFilter struct {
	Deleted bool
	Status  string
}

type ContactMessageRepository interface {
	Create(message *models.ContactMessage) error
	FindAll(filter ContactMessageFilter) ([]models.ContactMessage, error)
	// FindByID sees soft-deleted rows too; restore and permanent delete
	// need to reach into the trash.
	FindByID(id uint) (*models.ContactMessage, error)
	Update(message *models.ContactMessage) error
	SoftDelete(id uint) error
	Restore(id uint) error
	PermanentDelete(id uint) error
}

type contactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

func (r *contactMessageRepository) FindAll(filter ContactMessageFilter) ([]models.ContactMessage, error) {
	query := r.db.Where("is_deleted = ?", filter.Deleted)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var messages []models.ContactMessage
	err := query.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *contactMessageRepository) FindByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := r.db.First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *contactMessageRepository) Update(message *models.ContactMessage) error {
	return r.db.Save(message).Error
}

func (r *contactMessageRepository) SoftDelete(id uint) error {
	now := time.Now()
	return r.db.Model(&models.ContactMessage{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": &now}).Error
}

func (r *contactMessageRepository) Restore(id uint) error {
	return r.db.Model(&models.ContactMessage{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": false, "deleted_at": nil}).Error
}

func (r *contactMessageRepository) PermanentDelete(id uint) error {
	return r.db.Delete(&models.ContactMessage{}, id).Error
}
