package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"petkey/internal/mocks"
	"petkey/internal/models"
)

func setupServiceController() (*ServiceController, *mocks.MockServiceRepository) {
	mockRepo := new(mocks.MockServiceRepository)
	controller := NewServiceController(mockRepo)
	return controller, mockRepo
}

func TestGetAllServices(t *testing.T) {
	services := []models.Service{
		{ID: 1, Title: "Aşılama", Slug: "asilama", IsActive: true},
		{ID: 2, Title: "Check-Up", Slug: "check-up", IsActive: true},
	}

	tests := []struct {
		name          string
		authenticated bool
		activeOnly    bool
	}{
		{name: "anonymous callers get active services", authenticated: false, activeOnly: true},
		{name: "authenticated callers get everything", authenticated: true, activeOnly: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupServiceController()
			mockRepo.On("FindAll", tt.activeOnly).Return(services, nil)

			router := setupTestRouter()
			if tt.authenticated {
				router.Use(addAuthMiddleware(1))
			}
			router.GET("/services", controller.GetAllServices)

			req := httptest.NewRequest("GET", "/services", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Len(t, response["data"], 2)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetServiceBySlugIgnoresActiveFlag(t *testing.T) {
	controller, mockRepo := setupServiceController()
	mockRepo.On("FindBySlug", "pet-kuafor").Return(&models.Service{
		ID:       3,
		Title:    "Pet Kuaför",
		Slug:     "pet-kuafor",
		IsActive: false,
	}, nil)

	router := setupTestRouter()
	router.GET("/services/:slug", controller.GetServiceBySlug)

	req := httptest.NewRequest("GET", "/services/pet-kuafor", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "pet-kuafor", data["slug"])
	assert.Equal(t, false, data["is_active"])

	mockRepo.AssertExpectations(t)
}

func TestUpdateServicePartialBody(t *testing.T) {
	stored := func() *models.Service {
		return &models.Service{
			ID:               2,
			Title:            "Check-Up",
			Slug:             "check-up",
			Icon:             "🩺",
			ShortDescription: "Genel sağlık taraması",
			IsActive:         true,
			Order:            2,
		}
	}

	tests := []struct {
		name        string
		requestBody map[string]interface{}
		verify      func(*models.Service) bool
	}{
		{
			name:        "reordering keeps description and icon",
			requestBody: map[string]interface{}{"title": "Check-Up", "order": 5},
			verify: func(s *models.Service) bool {
				return s.Order == 5 &&
					s.ShortDescription == "Genel sağlık taraması" &&
					s.Icon == "🩺" &&
					s.IsActive
			},
		},
		{
			name:        "deactivating without resending title",
			requestBody: map[string]interface{}{"is_active": false},
			verify: func(s *models.Service) bool {
				return !s.IsActive &&
					s.Title == "Check-Up" &&
					s.ShortDescription == "Genel sağlık taraması"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupServiceController()
			mockRepo.On("FindBySlug", "check-up").Return(stored(), nil)
			mockRepo.On("Update", mock.MatchedBy(tt.verify)).Return(nil)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.PATCH("/services/:slug", controller.UpdateService)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("PATCH", "/services/check-up", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, "Service updated successfully", response["message"])

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteService(t *testing.T) {
	tests := []struct {
		name           string
		slug           string
		setupMock      func(*mocks.MockServiceRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful deletion",
			slug: "mama",
			setupMock: func(m *mocks.MockServiceRepository) {
				m.On("Delete", "mama").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Service deleted successfully",
		},
		{
			name: "unknown slug",
			slug: "yok",
			setupMock: func(m *mocks.MockServiceRepository) {
				m.On("Delete", "yok").Return(errors.New("record not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Service not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupServiceController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.DELETE("/services/:slug", controller.DeleteService)

			req := httptest.NewRequest("DELETE", "/services/"+tt.slug, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}
