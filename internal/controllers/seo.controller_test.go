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

func setupSEOController() (*SEOController, *mocks.MockSEOSettingsRepository) {
	mockRepo := new(mocks.MockSEOSettingsRepository)
	controller := NewSEOController(mockRepo)
	return controller, mockRepo
}

func TestGetSEOSettingsByPage(t *testing.T) {
	tests := []struct {
		name           string
		pageName       string
		setupMock      func(*mocks.MockSEOSettingsRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:     "successful retrieval",
			pageName: "homepage",
			setupMock: func(m *mocks.MockSEOSettingsRepository) {
				m.On("FindByPageName", "homepage").Return(&models.SEOSettings{
					ID:       1,
					PageName: "homepage",
					Title:    "PetKey Veteriner Kliniği",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "SEO settings retrieved successfully",
		},
		{
			name:           "unknown page name",
			pageName:       "pricing",
			setupMock:      func(m *mocks.MockSEOSettingsRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid page name",
		},
		{
			name:     "page without a row",
			pageName: "about",
			setupMock: func(m *mocks.MockSEOSettingsRepository) {
				m.On("FindByPageName", "about").Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "SEO settings not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupSEOController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.GET("/seo/:page_name", controller.GetSEOSettingsByPage)

			req := httptest.NewRequest("GET", "/seo/"+tt.pageName, nil)
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

func TestGetAllSettingsExternal(t *testing.T) {
	controller, mockRepo := setupSEOController()
	mockRepo.On("FindAll").Return([]models.SEOSettings{
		{ID: 1, PageName: "homepage", Title: "PetKey Veteriner Kliniği", OgImage: "/og-image.jpg"},
		{ID: 2, PageName: "global", SiteName: "PetKey", TwitterHandle: "@petkey"},
	}, nil)

	router := setupTestRouter()
	router.GET("/seo/all_settings", controller.GetAllSettingsExternal)

	req := httptest.NewRequest("GET", "/seo/all_settings", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// this endpoint returns the bare page map, no envelope
	var response map[string]map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 2)

	homepage := response["homepage"]
	assert.Equal(t, "PetKey Veteriner Kliniği", homepage["title"])
	assert.Equal(t, "/og-image.jpg", homepage["ogImage"])
	_, hasSiteName := homepage["siteName"]
	assert.False(t, hasSiteName)

	global := response["global"]
	assert.Equal(t, "PetKey", global["siteName"])
	assert.Equal(t, "@petkey", global["twitterHandle"])

	mockRepo.AssertExpectations(t)
}

func TestBulkUpdateSettings(t *testing.T) {
	controller, mockRepo := setupSEOController()

	stored := &models.SEOSettings{
		ID:          1,
		PageName:    "homepage",
		Title:       "Eski Başlık",
		Description: "Mevcut açıklama",
	}
	mockRepo.On("Upsert", "homepage", mock.AnythingOfType("func(*models.SEOSettings)")).
		Run(func(args mock.Arguments) {
			args.Get(1).(func(*models.SEOSettings))(stored)
		}).
		Return(stored, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/seo/bulk_update", controller.BulkUpdateSettings)

	body, _ := json.Marshal(map[string]interface{}{
		"homepage": map[string]interface{}{
			"title": "Yeni Başlık",
		},
	})
	req := httptest.NewRequest("POST", "/seo/bulk_update", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "SEO settings updated successfully", response["message"])

	// only the provided key changed
	data := response["data"].(map[string]interface{})
	homepage := data["homepage"].(map[string]interface{})
	assert.Equal(t, "Yeni Başlık", homepage["title"])
	assert.Equal(t, "Mevcut açıklama", homepage["description"])

	mockRepo.AssertExpectations(t)
}

func TestBulkUpdateSettingsRejectsUnknownPage(t *testing.T) {
	controller, mockRepo := setupSEOController()

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/seo/bulk_update", controller.BulkUpdateSettings)

	body, _ := json.Marshal(map[string]interface{}{
		"pricing": map[string]interface{}{"title": "Fiyatlar"},
	})
	req := httptest.NewRequest("POST", "/seo/bulk_update", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], "Invalid page name")

	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUpdateSEOSettings(t *testing.T) {
	controller, mockRepo := setupSEOController()

	stored := &models.SEOSettings{ID: 1, PageName: "blog", Title: "Eski", Description: "Mevcut açıklama"}
	mockRepo.On("FindByPageName", "blog").Return(stored, nil)
	mockRepo.On("Upsert", "blog", mock.AnythingOfType("func(*models.SEOSettings)")).
		Run(func(args mock.Arguments) {
			args.Get(1).(func(*models.SEOSettings))(stored)
		}).
		Return(stored, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PUT("/seo/:page_name", controller.UpdateSEOSettings)

	body, _ := json.Marshal(map[string]interface{}{
		"page_name": "blog",
		"title":     "Blog | PetKey",
	})
	req := httptest.NewRequest("PUT", "/seo/blog", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "SEO settings updated successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Blog | PetKey", data["title"])
	assert.Equal(t, "blog", data["page_name"])
	// A body that omits description must not blank the stored value.
	assert.Equal(t, "Mevcut açıklama", data["description"])

	mockRepo.AssertExpectations(t)
}
