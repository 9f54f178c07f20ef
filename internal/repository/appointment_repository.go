package repository

import (
	"gorm.io/gorm"

	"petkey/internal/models"
)

// AppointmentFilter narrows list queries; zero values mean "no filter".
type AppointmentFilter struct {
	VeterinarianID uint
	Status         string
	DateFrom       string
	DateTo         string
	UpcomingFrom   string
}

type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	FindAll(filter AppointmentFilter) ([]models.Appointment, error)
	FindByID(id uint) (*models.Appointment, error)
	Update(appointment *models.Appointment) error
	Delete(id uint) error
	// FindBookedTimes returns HH:MM values already taken by a pending or
	// confirmed appointment for the veterinarian on the given date.
	FindBookedTimes(date string, veterinarianID uint) ([]string, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

func (r *appointmentRepository) FindAll(filter AppointmentFilter) ([]models.Appointment, error) {
	query := r.db.Preload("Veterinarian")

	if filter.VeterinarianID != 0 {
		query = query.Where("veterinarian_id = ?", filter.VeterinarianID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		query = query.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("date <= ?", filter.DateTo)
	}
	if filter.UpcomingFrom != "" {
		query = query.Where("date >= ?", filter.UpcomingFrom)
	}

	var appointments []models.Appointment
	err := query.Order("date, time").Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.Preload("Veterinarian").First(&appointment, id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

func (r *appointmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Appointment{}, id).Error
}

func (r *appointmentRepository) FindBookedTimes(date string, veterinarianID uint) ([]string, error) {
	var times []string
	err := r.db.Model(&models.Appointment{}).
		Where("date = ? AND veterinarian_id = ? AND status IN ?",
			date, veterinarianID,
			[]string{models.AppointmentStatusPending, models.AppointmentStatusConfirmed}).
		Pluck("time", &times).Error
	return times, err
}
