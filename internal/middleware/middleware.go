package middleware

import (
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const sessionName = "petkey_session"

var (
	store     *sessions.CookieStore
	storeOnce sync.Once
)

// SessionStore returns the shared cookie store, initializing it from
// SESSION_SECRET on first use.
func SessionStore() *sessions.CookieStore {
	storeOnce.Do(func() {
		secret := os.Getenv("SESSION_SECRET")
		if secret == "" {
			secret = "petkey-dev-secret-change-me"
		}
		store = sessions.NewCookieStore([]byte(secret))
		store.Options = &sessions.Options{
			Path:     "/",
			MaxAge:   86400 * 14,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
	})
	return store
}

// GetSession returns the request session, ignoring decode errors so a stale
// cookie behaves like an anonymous visitor.
func GetSession(c *gin.Context) *sessions.Session {
	session, _ := SessionStore().Get(c.Request, sessionName)
	return session
}

// RequireAuth rejects requests that do not carry an authenticated session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		userID, ok := session.Values["user_id"].(uint)
		if !ok || userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Oturum açmanız gerekiyor",
				"error":   "Authentication required",
			})
			c.Abort()
			return
		}
		c.Set("authenticated", true)
		c.Set("user_id", userID)
		c.Next()
	}
}

// OptionalAuth populates the context when a valid session is present but
// never rejects the request. Handlers use it to widen visibility for staff.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if userID, ok := session.Values["user_id"].(uint); ok && userID != 0 {
			c.Set("authenticated", true)
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

// IsAuthenticated reports whether the current request carries a session.
func IsAuthenticated(c *gin.Context) bool {
	return c.GetBool("authenticated")
}

// allowedOrigins reads the CORS allow-list from CORS_ALLOWED_ORIGINS
// (comma-separated), falling back to the local frontend dev servers.
func allowedOrigins() map[string]bool {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		raw = "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173"
	}
	origins := make(map[string]bool)
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins[origin] = true
		}
	}
	return origins
}

// CORSMiddleware echoes the Origin header only when it is on the
// allow-list; credentials never pair with an unlisted origin.
func CORSMiddleware() gin.HandlerFunc {
	origins := allowedOrigins()
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origins[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
			c.Writer.Header().Set("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
