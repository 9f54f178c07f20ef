package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petkey/internal/models"
	"petkey/internal/repository"
)

type UserController struct {
	repo repository.UserRepository
}

func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{repo: repo}
}

// GetUsers godoc
// @Summary Get all users
// @Tags user
// @Produce json
// @Success 200 {object} map[string]interface{} "Users"
// @Router /users [get]
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Kullanıcılar alınamadı",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}

// CreateUser godoc
// @Summary Create a new user
// @Description New users default to staff; duplicate usernames are rejected
// @Tags user
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Kullanıcı başarıyla oluşturuldu"
// @Failure 400 {object} map[string]interface{} "Missing or duplicate username"
// @Router /users [post]
func (uc *UserController) CreateUser(c *gin.Context) {
	var input struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		IsStaff     *bool  `json:"is_staff"`
		IsSuperuser bool   `json:"is_superuser"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Username == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Kullanıcı adı ve şifre gereklidir",
		})
		return
	}

	exists, err := uc.repo.ExistsByUsername(input.Username)
	if err == nil && exists {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Bu kullanıcı adı zaten kullanılıyor",
		})
		return
	}

	isStaff := true
	if input.IsStaff != nil {
		isStaff = *input.IsStaff
	}
	user := models.User{
		Username:    input.Username,
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		IsStaff:     isStaff,
		IsSuperuser: input.IsSuperuser,
		IsActive:    true,
	}
	if err := user.SetPassword(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Kullanıcı oluşturulamadı",
		})
		return
	}

	if err := uc.repo.Create(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Bu kullanıcı adı zaten kullanılıyor",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Kullanıcı başarıyla oluşturuldu",
		"user":    user.Summary(),
	})
}

// UpdateUser godoc
// @Summary Update a user
// @Description Only provided fields change; username is immutable
// @Tags user
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Kullanıcı başarıyla güncellendi"
// @Failure 404 {object} map[string]interface{} "Kullanıcı bulunamadı"
// @Router /users/{id} [put]
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Kullanıcı bulunamadı",
		})
		return
	}

	user, err := uc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Kullanıcı bulunamadı",
		})
		return
	}

	var input struct {
		Email       *string `json:"email"`
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		IsStaff     *bool   `json:"is_staff"`
		IsSuperuser *bool   `json:"is_superuser"`
		IsActive    *bool   `json:"is_active"`
		Password    string  `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Geçersiz istek",
		})
		return
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.IsStaff != nil {
		user.IsStaff = *input.IsStaff
	}
	if input.IsSuperuser != nil {
		user.IsSuperuser = *input.IsSuperuser
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Password != "" {
		if err := user.SetPassword(input.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Kullanıcı güncellenemedi",
			})
			return
		}
	}

	if err := uc.repo.Update(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Kullanıcı güncellenemedi",
		})
		return
	}

	summary := user.Summary()
	summary["is_active"] = user.IsActive
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Kullanıcı başarıyla güncellendi",
		"user":    summary,
	})
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Deleting the account behind the current session is rejected
// @Tags user
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Kullanıcı başarıyla silindi"
// @Failure 400 {object} map[string]interface{} "Kendi hesabınızı silemezsiniz"
// @Failure 404 {object} map[string]interface{} "Kullanıcı bulunamadı"
// @Router /users/{id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Kullanıcı bulunamadı",
		})
		return
	}

	user, err := uc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Kullanıcı bulunamadı",
		})
		return
	}

	if user.ID == c.GetUint("user_id") {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Kendi hesabınızı silemezsiniz",
		})
		return
	}

	if err := uc.repo.Delete(user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Kullanıcı silinemedi",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Kullanıcı başarıyla silindi",
	})
}
