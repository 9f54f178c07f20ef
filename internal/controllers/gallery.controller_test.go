package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"petkey/internal/mocks"
	"petkey/internal/models"
	"petkey/internal/repository"
)

func setupGalleryController() (*GalleryController, *mocks.MockGalleryImageRepository) {
	mockRepo := new(mocks.MockGalleryImageRepository)
	controller := NewGalleryController(mockRepo)
	return controller, mockRepo
}

func TestGetAllGalleryImages(t *testing.T) {
	images := []models.GalleryImage{
		{ID: 1, Title: "Klinik girişi", Image: "/media/gallery/giris.jpg", Category: "clinic", IsActive: true},
	}

	tests := []struct {
		name          string
		authenticated bool
		query         string
		expectFilter  repository.GalleryImageFilter
	}{
		{
			name:         "anonymous callers only see active images",
			expectFilter: repository.GalleryImageFilter{ActiveOnly: true},
		},
		{
			name:          "authenticated callers see hidden images",
			authenticated: true,
			expectFilter:  repository.GalleryImageFilter{ActiveOnly: false},
		},
		{
			name:         "category filter passes through",
			query:        "?category=cats",
			expectFilter: repository.GalleryImageFilter{ActiveOnly: true, Category: "cats"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupGalleryController()
			mockRepo.On("FindAll", tt.expectFilter).Return(images, nil)

			router := setupTestRouter()
			if tt.authenticated {
				router.Use(addAuthMiddleware(1))
			}
			router.GET("/gallery", controller.GetAllGalleryImages)

			req := httptest.NewRequest("GET", "/gallery"+tt.query, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Len(t, response["data"], 1)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetGalleryCategories(t *testing.T) {
	controller, mockRepo := setupGalleryController()
	mockRepo.On("CountActiveByCategory", "dogs").Return(int64(4), nil)
	mockRepo.On("CountActiveByCategory", "cats").Return(int64(2), nil)
	mockRepo.On("CountActiveByCategory", "clinic").Return(int64(0), nil)
	mockRepo.On("CountActiveByCategory", "team").Return(int64(1), nil)

	router := setupTestRouter()
	router.GET("/gallery/categories", controller.GetGalleryCategories)

	req := httptest.NewRequest("GET", "/gallery/categories", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	categories := response["data"].([]interface{})
	assert.Len(t, categories, len(models.GalleryCategories))

	first := categories[0].(map[string]interface{})
	assert.Equal(t, "dogs", first["code"])
	assert.Equal(t, "Köpekler", first["name"])
	assert.Equal(t, float64(4), first["count"])

	mockRepo.AssertExpectations(t)
}

func TestDeleteGalleryImage(t *testing.T) {
	controller, mockRepo := setupGalleryController()
	mockRepo.On("FindByID", uint(9)).Return(&models.GalleryImage{ID: 9, Title: "Eski fotoğraf", Image: "/media/gallery/eski.jpg"}, nil)
	mockRepo.On("Delete", uint(9)).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.DELETE("/gallery/:id", controller.DeleteGalleryImage)

	req := httptest.NewRequest("DELETE", "/gallery/9", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Image deleted successfully", response["message"])

	mockRepo.AssertExpectations(t)
}
