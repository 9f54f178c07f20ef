package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"petkey/internal/mocks"
	"petkey/internal/models"
	"petkey/internal/utils"
)

func setupContactController() (*ContactController, *mocks.MockContactMessageRepository) {
	mockRepo := new(mocks.MockContactMessageRepository)
	controller := NewContactController(mockRepo, utils.MailConfig{})
	return controller, mockRepo
}

func TestCreateContactMessage(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockContactMessageRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "new messages always start in status new",
			requestBody: map[string]interface{}{
				"name":    "Ali Kaya",
				"email":   "ali@example.com",
				"subject": "Randevu sorusu",
				"message": "Hafta sonu açık mısınız?",
				"status":  "replied",
			},
			setupMock: func(m *mocks.MockContactMessageRepository) {
				m.On("Create", mock.MatchedBy(func(msg *models.ContactMessage) bool {
					return msg.Status == models.ContactStatusNew && !msg.IsDeleted
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Message created successfully",
		},
		{
			name: "missing email",
			requestBody: map[string]interface{}{
				"name":    "Ali Kaya",
				"message": "Hafta sonu açık mısınız?",
			},
			setupMock:      func(m *mocks.MockContactMessageRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "repository error",
			requestBody: map[string]interface{}{
				"name":    "Ali Kaya",
				"email":   "ali@example.com",
				"message": "Hafta sonu açık mısınız?",
			},
			setupMock: func(m *mocks.MockContactMessageRepository) {
				m.On("Create", mock.AnythingOfType("*models.ContactMessage")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupContactController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/contact", controller.CreateContactMessage)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/contact", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
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

func TestDeleteContactMessageIsSoft(t *testing.T) {
	controller, mockRepo := setupContactController()
	mockRepo.On("FindByID", uint(5)).Return(&models.ContactMessage{ID: 5, Name: "Ali Kaya"}, nil)
	mockRepo.On("SoftDelete", uint(5)).Return(nil)

	router := setupTestRouter()
	router.DELETE("/contact/:id", controller.DeleteContactMessage)

	req := httptest.NewRequest("DELETE", "/contact/5", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Message deleted successfully", response["message"])

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "PermanentDelete", mock.Anything)
}

func TestRestoreContactMessage(t *testing.T) {
	now := time.Now()
	controller, mockRepo := setupContactController()
	mockRepo.On("FindByID", uint(5)).Return(&models.ContactMessage{
		ID:        5,
		Name:      "Ali Kaya",
		IsDeleted: true,
		DeletedAt: &now,
	}, nil)
	mockRepo.On("Restore", uint(5)).Return(nil)

	router := setupTestRouter()
	router.POST("/contact/:id/restore", controller.RestoreContactMessage)

	req := httptest.NewRequest("POST", "/contact/5/restore", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Message restored successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, false, data["is_deleted"])
	assert.Nil(t, data["deleted_at"])

	mockRepo.AssertExpectations(t)
}

func TestPermanentDeleteContactMessage(t *testing.T) {
	controller, mockRepo := setupContactController()
	mockRepo.On("FindByID", uint(5)).Return(&models.ContactMessage{ID: 5, IsDeleted: true}, nil)
	mockRepo.On("PermanentDelete", uint(5)).Return(nil)

	router := setupTestRouter()
	router.DELETE("/contact/:id/permanent_delete", controller.PermanentDeleteContactMessage)

	req := httptest.NewRequest("DELETE", "/contact/5/permanent_delete", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Message permanently deleted", response["message"])

	mockRepo.AssertExpectations(t)
}

func TestMarkContactMessageRead(t *testing.T) {
	controller, mockRepo := setupContactController()
	mockRepo.On("FindByID", uint(5)).Return(&models.ContactMessage{
		ID:     5,
		Status: models.ContactStatusNew,
	}, nil)
	mockRepo.On("Update", mock.MatchedBy(func(msg *models.ContactMessage) bool {
		return msg.Status == models.ContactStatusRead
	})).Return(nil)

	router := setupTestRouter()
	router.POST("/contact/:id/mark_read", controller.MarkContactMessageRead)

	req := httptest.NewRequest("POST", "/contact/5/mark_read", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Message marked as read", response["message"])

	mockRepo.AssertExpectations(t)
}

func TestReplyContactMessage(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockContactMessageRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "reply flips status to replied",
			requestBody: map[string]interface{}{"reply": "Evet, cumartesi 09:00-14:00 arası açığız."},
			setupMock: func(m *mocks.MockContactMessageRepository) {
				m.On("FindByID", uint(5)).Return(&models.ContactMessage{
					ID:     5,
					Status: models.ContactStatusRead,
				}, nil)
				m.On("Update", mock.MatchedBy(func(msg *models.ContactMessage) bool {
					return msg.Status == models.ContactStatusReplied && msg.AdminReply != ""
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Reply saved successfully",
		},
		{
			name:        "empty reply is rejected",
			requestBody: map[string]interface{}{"reply": ""},
			setupMock: func(m *mocks.MockContactMessageRepository) {
				m.On("FindByID", uint(5)).Return(&models.ContactMessage{ID: 5}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Reply text is required",
		},
		{
			name:        "whitespace-only reply is rejected",
			requestBody: map[string]interface{}{"reply": "   "},
			setupMock: func(m *mocks.MockContactMessageRepository) {
				m.On("FindByID", uint(5)).Return(&models.ContactMessage{ID: 5}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Reply text is required",
		},
		{
			name:        "message not found",
			requestBody: map[string]interface{}{"reply": "Merhaba"},
			setupMock: func(m *mocks.MockContactMessageRepository) {
				m.On("FindByID", uint(5)).Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Message not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupContactController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/contact/:id/reply", controller.ReplyContactMessage)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/contact/5/reply", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
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
