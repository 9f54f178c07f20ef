package mocks

import (
	"github.com/stretchr/testify/mock"

	"petkey/internal/models"
	"petkey/internal/repository"
)

// Shared MockVeterinarianRepository
type MockVeterinarianRepository struct {
	mock.Mock
}

func (m *MockVeterinarianRepository) Create(vet *models.Veterinarian) error {
	args := m.Called(vet)
	return args.Error(0)
}

func (m *MockVeterinarianRepository) FindAll() ([]models.Veterinarian, error) {
	args := m.Called()
	return args.Get(0).([]models.Veterinarian), args.Error(1)
}

func (m *MockVeterinarianRepository) FindActive() ([]models.Veterinarian, error) {
	args := m.Called()
	return args.Get(0).([]models.Veterinarian), args.Error(1)
}

func (m *MockVeterinarianRepository) FindBySlug(slug string) (*models.Veterinarian, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Veterinarian), args.Error(1)
}

func (m *MockVeterinarianRepository) Update(vet *models.Veterinarian) error {
	args := m.Called(vet)
	return args.Error(0)
}

func (m *MockVeterinarianRepository) Delete(slug string) error {
	args := m.Called(slug)
	return args.Error(0)
}

// Shared MockBlogPostRepository
type MockBlogPostRepository struct {
	mock.Mock
}

func (m *MockBlogPostRepository) Create(post *models.BlogPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockBlogPostRepository) FindAll(filter repository.BlogPostFilter) ([]models.BlogPost, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) FindBySlug(slug string, publishedOnly bool) (*models.BlogPost, error) {
	args := m.Called(slug, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) IncrementViews(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBlogPostRepository) Update(post *models.BlogPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockBlogPostRepository) Delete(slug string) error {
	args := m.Called(slug)
	return args.Error(0)
}

func (m *MockBlogPostRepository) FindFeatured(limit int) ([]models.BlogPost, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) DistinctCategories() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

// Shared MockAppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(appointment *models.Appointment) error {
	args := m.Called(appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindAll(filter repository.AppointmentFilter) ([]models.Appointment, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Update(appointment *models.Appointment) error {
	args := m.Called(appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindBookedTimes(date string, veterinarianID uint) ([]string, error) {
	args := m.Called(date, veterinarianID)
	return args.Get(0).([]string), args.Error(1)
}

// Shared MockContactMessageRepository
type MockContactMessageRepository struct {
	mock.Mock
}

func (m *MockContactMessageRepository) Create(message *models.ContactMessage) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockContactMessageRepository) FindAll(filter repository.ContactMessageFilter) ([]models.ContactMessage, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

func (m *MockContactMessageRepository) FindByID(id uint) (*models.ContactMessage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockContactMessageRepository) Update(message *models.ContactMessage) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockContactMessageRepository) SoftDelete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContactMessageRepository) Restore(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContactMessageRepository) PermanentDelete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockGalleryImageRepository
type MockGalleryImageRepository struct {
	mock.Mock
}

func (m *MockGalleryImageRepository) Create(image *models.GalleryImage) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *MockGalleryImageRepository) FindAll(filter repository.GalleryImageFilter) ([]models.GalleryImage, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.GalleryImage), args.Error(1)
}

func (m *MockGalleryImageRepository) FindByID(id uint) (*models.GalleryImage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryImage), args.Error(1)
}

func (m *MockGalleryImageRepository) Update(image *models.GalleryImage) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *MockGalleryImageRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockGalleryImageRepository) CountActiveByCategory(category string) (int64, error) {
	args := m.Called(category)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(service *models.Service) error {
	args := m.Called(service)
	return args.Error(0)
}

func (m *MockServiceRepository) FindAll(activeOnly bool) ([]models.Service, error) {
	args := m.Called(activeOnly)
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) FindBySlug(slug string) (*models.Service, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepository) Update(service *models.Service) error {
	args := m.Called(service)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(slug string) error {
	args := m.Called(slug)
	return args.Error(0)
}

func (m *MockServiceRepository) InvalidateCache(slug string) error {
	args := m.Called(slug)
	return args.Error(0)
}

func (m *MockServiceRepository) InvalidateListCache() error {
	args := m.Called()
	return args.Error(0)
}

// Shared MockSEOSettingsRepository
type MockSEOSettingsRepository struct {
	mock.Mock
}

func (m *MockSEOSettingsRepository) Create(settings *models.SEOSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSEOSettingsRepository) FindAll() ([]models.SEOSettings, error) {
	args := m.Called()
	return args.Get(0).([]models.SEOSettings), args.Error(1)
}

func (m *MockSEOSettingsRepository) FindByID(id uint) (*models.SEOSettings, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SEOSettings), args.Error(1)
}

func (m *MockSEOSettingsRepository) FindByPageName(pageName string) (*models.SEOSettings, error) {
	args := m.Called(pageName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SEOSettings), args.Error(1)
}

func (m *MockSEOSettingsRepository) Update(settings *models.SEOSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSEOSettingsRepository) Upsert(pageName string, apply func(*models.SEOSettings)) (*models.SEOSettings, error) {
	args := m.Called(pageName, apply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SEOSettings), args.Error(1)
}

func (m *MockSEOSettingsRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
