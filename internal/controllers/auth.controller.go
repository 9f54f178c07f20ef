package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"petkey/internal/middleware"
	"petkey/internal/repository"
)

// AuthController covers session login plus the user management surface the
// admin panel uses. Responses keep the original success/message shape and
// Turkish copy instead of the standard envelope.
type AuthController struct {
	repo repository.UserRepository
}

func NewAuthController(repo repository.UserRepository) *AuthController {
	return &AuthController{repo: repo}
}

// Login godoc
// @Summary Log in with username and password
// @Description Validates credentials and establishes a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Giriş başarılı"
// @Failure 400 {object} map[string]interface{} "Missing credentials"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Username == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Kullanıcı adı ve şifre gereklidir",
		})
		return
	}

	user, err := ac.repo.FindByUsername(input.Username)
	if err != nil || !user.IsActive || !user.CheckPassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Kullanıcı adı veya şifre hatalı",
		})
		return
	}

	session := middleware.GetSession(c)
	session.Values["user_id"] = user.ID
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.WithError(err).Error("Failed to save session")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Oturum oluşturulamadı",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Giriş başarılı",
		"user":    user.Summary(),
	})
}

// Logout godoc
// @Summary Destroy the current session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Çıkış başarılı"
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	session := middleware.GetSession(c)
	delete(session.Values, "user_id")
	session.Options.MaxAge = -1
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.WithError(err).Error("Failed to destroy session")
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Çıkış başarılı",
	})
}

// CheckAuth godoc
// @Summary Report the current session identity
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Authenticated user"
// @Failure 401 {object} map[string]interface{} "No session"
// @Router /auth/check [get]
func (ac *AuthController) CheckAuth(c *gin.Context) {
	userID := c.GetUint("user_id")
	user, err := ac.repo.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":       false,
			"authenticated": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"authenticated": true,
		"user":          user.Summary(),
	})
}
