package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petkey/internal/repository"
)

type ServicesPageController struct {
	repo repository.ServicesPageRepository
}

func NewServicesPageController(repo repository.ServicesPageRepository) *ServicesPageController {
	return &ServicesPageController{repo: repo}
}

func (sc *ServicesPageController) GetServicesPage(c *gin.Context) {
	page, err := sc.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve services page",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Services page retrieved successfully",
		"data":    page,
	})
}

func (sc *ServicesPageController) UpdateServicesPage(c *gin.Context) {
	page, err := sc.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve services page",
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

	if err := sc.repo.Update(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update services page",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Services page updated successfully",
		"data":    input,
	})
}
