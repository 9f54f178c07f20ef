package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petkey/internal/repository"
)

// AboutPageController serves the single about page row. Create and delete
// are not routed; the row comes into existence on first read.
type AboutPageController struct {
	repo repository.AboutPageRepository
}

func NewAboutPageController(repo repository.AboutPageRepository) *AboutPageController {
	return &AboutPageController{repo: repo}
}

func (ac *AboutPageController) GetAboutPage(c *gin.Context) {
	page, err := ac.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve about page",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "About page retrieved successfully",
		"data":    page,
	})
}

func (ac *AboutPageController) UpdateAboutPage(c *gin.Context) {
	page, err := ac.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve about page",
			"error":   err.Error(),
		})
		return
	}

	// Bind over a copy of the stored row so partial bodies
	// leave unsupplied fields untouched.
	input := *page
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	input.ID = page.ID

	if err := ac.repo.Update(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update about page",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "About page updated successfully",
		"data":    input,
	})
}
