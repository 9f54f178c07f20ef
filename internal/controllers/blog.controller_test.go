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
	"petkey/internal/repository"
)

func setupBlogController() (*BlogController, *mocks.MockBlogPostRepository) {
	mockRepo := new(mocks.MockBlogPostRepository)
	controller := NewBlogController(mockRepo)
	return controller, mockRepo
}

func TestGetAllBlogPosts(t *testing.T) {
	posts := []models.BlogPost{
		{
			ID:       1,
			AuthorID: 2,
			Author:   &models.Veterinarian{ID: 2, Name: "Dr. Ayşe Demir"},
			Title:    "Kış Bakımı",
			Slug:     "kis-bakimi",
			Excerpt:  "Soğuk aylarda evcil hayvan bakımı",
			Content:  "Uzun makale metni",
			Category: "Bakım",
			Status:   models.BlogStatusPublished,
			Views:    12,
		},
	}

	tests := []struct {
		name          string
		authenticated bool
		query         string
		setupMock     func(*mocks.MockBlogPostRepository)
	}{
		{
			name:          "anonymous callers only see published posts",
			authenticated: false,
			setupMock: func(m *mocks.MockBlogPostRepository) {
				m.On("FindAll", mock.MatchedBy(func(f repository.BlogPostFilter) bool {
					return f.PublishedOnly
				})).Return(posts, nil)
			},
		},
		{
			name:          "authenticated callers see drafts too",
			authenticated: true,
			setupMock: func(m *mocks.MockBlogPostRepository) {
				m.On("FindAll", mock.MatchedBy(func(f repository.BlogPostFilter) bool {
					return !f.PublishedOnly
				})).Return(posts, nil)
			},
		},
		{
			name:          "category and author filters pass through",
			authenticated: false,
			query:         "?category=Bakım&author=2",
			setupMock: func(m *mocks.MockBlogPostRepository) {
				m.On("FindAll", mock.MatchedBy(func(f repository.BlogPostFilter) bool {
					return f.Category == "Bakım" && f.AuthorID == uint(2)
				})).Return(posts, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupBlogController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			if tt.authenticated {
				router.Use(addAuthMiddleware(1))
			}
			router.GET("/blog", controller.GetAllBlogPosts)

			req := httptest.NewRequest("GET", "/blog"+tt.query, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)

			items := response["data"].([]interface{})
			assert.Len(t, items, 1)

			// list items carry the excerpt but never the body
			item := items[0].(map[string]interface{})
			assert.Equal(t, "kis-bakimi", item["slug"])
			assert.Equal(t, "Dr. Ayşe Demir", item["author_name"])
			_, hasContent := item["content"]
			assert.False(t, hasContent)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetBlogPostBySlug(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mocks.MockBlogPostRepository)
		expectedStatus int
		expectedViews  float64
	}{
		{
			name: "detail fetch increments views",
			setupMock: func(m *mocks.MockBlogPostRepository) {
				m.On("FindBySlug", "kis-bakimi", true).Return(&models.BlogPost{
					ID:     1,
					Title:  "Kış Bakımı",
					Slug:   "kis-bakimi",
					Status: models.BlogStatusPublished,
					Views:  7,
				}, nil)
				m.On("IncrementViews", uint(1)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedViews:  8,
		},
		{
			name: "counter failure leaves the stored value",
			setupMock: func(m *mocks.MockBlogPostRepository) {
				m.On("FindBySlug", "kis-bakimi", true).Return(&models.BlogPost{
					ID:     1,
					Title:  "Kış Bakımı",
					Slug:   "kis-bakimi",
					Status: models.BlogStatusPublished,
					Views:  7,
				}, nil)
				m.On("IncrementViews", uint(1)).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusOK,
			expectedViews:  7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupBlogController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.GET("/blog/:slug", controller.GetBlogPostBySlug)

			req := httptest.NewRequest("GET", "/blog/kis-bakimi", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)

			data := response["data"].(map[string]interface{})
			assert.Equal(t, tt.expectedViews, data["views"])

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetBlogPostBySlugNotFound(t *testing.T) {
	controller, mockRepo := setupBlogController()
	mockRepo.On("FindBySlug", "yok", true).Return(nil, errors.New("record not found"))

	router := setupTestRouter()
	router.GET("/blog/:slug", controller.GetBlogPostBySlug)

	req := httptest.NewRequest("GET", "/blog/yok", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Blog post not found", response["message"])
}

func TestCreateBlogPost(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockBlogPostRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful creation",
			requestBody: map[string]interface{}{
				"author":  2,
				"title":   "Aşı Takvimi",
				"excerpt": "Yavru kediler için aşı takvimi",
				"content": "Makale metni",
			},
			setupMock: func(m *mocks.MockBlogPostRepository) {
				m.On("Create", mock.MatchedBy(func(p *models.BlogPost) bool {
					// slug and views are server-assigned
					return p.Slug == "" && p.Views == 0
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Blog post created successfully",
		},
		{
			name: "missing title",
			requestBody: map[string]interface{}{
				"author":  2,
				"content": "Makale metni",
			},
			setupMock:      func(m *mocks.MockBlogPostRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "repository error",
			requestBody: map[string]interface{}{
				"author": 2,
				"title":  "Aşı Takvimi",
			},
			setupMock: func(m *mocks.MockBlogPostRepository) {
				m.On("Create", mock.AnythingOfType("*models.BlogPost")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create blog post",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupBlogController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.POST("/blog", controller.CreateBlogPost)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/blog", bytes.NewBuffer(body))
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

func TestGetFeaturedBlogPosts(t *testing.T) {
	controller, mockRepo := setupBlogController()
	mockRepo.On("FindFeatured", 5).Return([]models.BlogPost{
		{ID: 1, Title: "Kış Bakımı", Slug: "kis-bakimi", Views: 40, Status: models.BlogStatusPublished},
		{ID: 2, Title: "Aşı Takvimi", Slug: "asi-takvimi", Views: 25, Status: models.BlogStatusPublished},
	}, nil)

	router := setupTestRouter()
	router.GET("/blog/featured", controller.GetFeaturedBlogPosts)

	req := httptest.NewRequest("GET", "/blog/featured", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	items := response["data"].([]interface{})
	assert.Len(t, items, 2)

	mockRepo.AssertExpectations(t)
}

func TestGetBlogCategories(t *testing.T) {
	controller, mockRepo := setupBlogController()
	mockRepo.On("DistinctCategories").Return([]string{"Bakım", "Beslenme", "Genel"}, nil)

	router := setupTestRouter()
	router.GET("/blog/categories", controller.GetBlogCategories)

	req := httptest.NewRequest("GET", "/blog/categories", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	categories := response["data"].([]interface{})
	assert.Len(t, categories, 3)
	assert.Contains(t, categories, "Beslenme")

	mockRepo.AssertExpectations(t)
}
