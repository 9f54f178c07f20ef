package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestSessionStoreConcurrentInit(t *testing.T) {
	const goroutines = 16

	stores := make([]interface{}, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			stores[i] = SessionStore()
		}(i)
	}
	wg.Wait()

	assert.NotNil(t, stores[0])
	for i := 1; i < goroutines; i++ {
		assert.Same(t, stores[0], stores[i])
	}
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	router := setupTestRouter()
	router.GET("/admin", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	req := httptest.NewRequest("GET", "/admin", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Oturum açmanız gerekiyor")
}

func TestOptionalAuthLeavesAnonymousRequestsAlone(t *testing.T) {
	router := setupTestRouter()
	router.GET("/services", OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authenticated": IsAuthenticated(c)})
	})

	req := httptest.NewRequest("GET", "/services", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestCORSMiddlewareAllowedOrigin(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://petkey.example,https://admin.petkey.example")

	router := setupTestRouter()
	router.Use(CORSMiddleware())
	router.GET("/services", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	req := httptest.NewRequest("GET", "/services", nil)
	req.Header.Set("Origin", "https://petkey.example")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://petkey.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMiddlewareUnknownOrigin(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://petkey.example")

	router := setupTestRouter()
	router.Use(CORSMiddleware())
	router.GET("/services", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	req := httptest.NewRequest("GET", "/services", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://petkey.example")

	router := setupTestRouter()
	router.Use(CORSMiddleware())

	req := httptest.NewRequest("OPTIONS", "/services", nil)
	req.Header.Set("Origin", "https://petkey.example")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GET, POST, PUT, PATCH, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}
