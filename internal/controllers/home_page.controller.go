package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petkey/internal/repository"
)

type HomePageController struct {
	repo repository.HomePageRepository
}

func NewHomePageController(repo repository.HomePageRepository) *HomePageController {
	return &HomePageController{repo: repo}
}

func (hc *HomePageController) GetHomePage(c *gin.Context) {
	page, err := hc.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve home page",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Home page retrieved successfully",
		"data":    page,
	})
}

// GetHomePageContent returns the bare row; the public frontend consumes
// this shape directly.
func (hc *HomePageController) GetHomePageContent(c *gin.Context) {
	page, err := hc.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve home page",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (hc *HomePageController) UpdateHomePage(c *gin.Context) {
	existing, err := hc.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve home page",
			"error":   err.Error(),
		})
		return
	}

	// Bind over a copy of the stored row so partial bodies
	// leave unsupplied fields untouched.
	input := *existing
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	input.ID = existing.ID
	input.CreatedAt = existing.CreatedAt
	if err := hc.repo.Update(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update home page",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Home page updated successfully",
		"data":    input,
	})
}
