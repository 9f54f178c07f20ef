package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petkey/internal/repository"
)

type SiteSettingsController struct {
	repo repository.SiteSettingsRepository
}

func NewSiteSettingsController(repo repository.SiteSettingsRepository) *SiteSettingsController {
	return &SiteSettingsController{repo: repo}
}

// GetSettings returns the bare settings row for the public frontend.
func (sc *SiteSettingsController) GetSettings(c *gin.Context) {
	settings, err := sc.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve site settings",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (sc *SiteSettingsController) GetSiteSettings(c *gin.Context) {
	settings, err := sc.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve site settings",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Site settings retrieved successfully",
		"data":    settings,
	})
}

func (sc *SiteSettingsController) UpdateSiteSettings(c *gin.Context) {
	existing, err := sc.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve site settings",
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
	if err := sc.repo.Update(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update site settings",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Site settings updated successfully",
		"data":    input,
	})
}
