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

func setupUserController() (*UserController, *mocks.MockUserRepository) {
	mockRepo := new(mocks.MockUserRepository)
	controller := NewUserController(mockRepo)
	return controller, mockRepo
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "new users default to staff",
			requestBody: map[string]interface{}{
				"username": "ayse",
				"email":    "ayse@petkey.com",
				"password": "gizli123",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("ExistsByUsername", "ayse").Return(false, nil)
				m.On("Create", mock.MatchedBy(func(u *models.User) bool {
					return u.IsStaff && u.IsActive && u.Password != "gizli123"
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Kullanıcı başarıyla oluşturuldu",
		},
		{
			name: "duplicate username",
			requestBody: map[string]interface{}{
				"username": "admin",
				"password": "gizli123",
			},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("ExistsByUsername", "admin").Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Bu kullanıcı adı zaten kullanılıyor",
		},
		{
			name:           "missing password",
			requestBody:    map[string]interface{}{"username": "ayse"},
			setupMock:      func(m *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Kullanıcı adı ve şifre gereklidir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupUserController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.POST("/users", controller.CreateUser)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/users", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, response["message"])

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateUserOnlyChangesProvidedFields(t *testing.T) {
	controller, mockRepo := setupUserController()
	mockRepo.On("FindByID", uint(2)).Return(&models.User{
		ID:        2,
		Username:  "ayse",
		Email:     "ayse@petkey.com",
		FirstName: "Ayşe",
		IsStaff:   true,
		IsActive:  true,
	}, nil)
	mockRepo.On("Update", mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "ayse@petkey.com" && u.FirstName == "Zeynep" && u.IsStaff
	})).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PUT("/users/:id", controller.UpdateUser)

	body, _ := json.Marshal(map[string]interface{}{"first_name": "Zeynep"})
	req := httptest.NewRequest("PUT", "/users/2", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Kullanıcı başarıyla güncellendi", response["message"])

	user := response["user"].(map[string]interface{})
	assert.Equal(t, "Zeynep", user["first_name"])

	mockRepo.AssertExpectations(t)
}

func TestUpdateUserNotFound(t *testing.T) {
	controller, mockRepo := setupUserController()
	mockRepo.On("FindByID", uint(99)).Return(nil, errors.New("record not found"))

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PUT("/users/:id", controller.UpdateUser)

	body, _ := json.Marshal(map[string]interface{}{"first_name": "Zeynep"})
	req := httptest.NewRequest("PUT", "/users/99", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Kullanıcı bulunamadı", response["message"])
}

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name           string
		sessionUserID  uint
		targetID       string
		setupMock      func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:          "successful deletion",
			sessionUserID: 1,
			targetID:      "2",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByID", uint(2)).Return(&models.User{ID: 2, Username: "ayse"}, nil)
				m.On("Delete", uint(2)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Kullanıcı başarıyla silindi",
		},
		{
			name:          "deleting own account is rejected",
			sessionUserID: 1,
			targetID:      "1",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByID", uint(1)).Return(&models.User{ID: 1, Username: "admin"}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Kendi hesabınızı silemezsiniz",
		},
		{
			name:          "user not found",
			sessionUserID: 1,
			targetID:      "99",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByID", uint(99)).Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Kullanıcı bulunamadı",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupUserController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.sessionUserID))
			router.DELETE("/users/:id", controller.DeleteUser)

			req := httptest.NewRequest("DELETE", "/users/"+tt.targetID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, response["message"])

			mockRepo.AssertExpectations(t)
			if tt.expectedStatus != http.StatusOK {
				mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
			}
		})
	}
}
