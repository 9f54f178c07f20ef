package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petkey/internal/models"
	"petkey/internal/repository"
)

type ContactPageController struct {
	repo repository.ContactPageRepository
}

func NewContactPageController(repo repository.ContactPageRepository) *ContactPageController {
	return &ContactPageController{repo: repo}
}

// ListContactPage wraps the single row in an array; older frontend code
// expects a collection here.
func (cc *ContactPageController) ListContactPage(c *gin.Context) {
	page, err := cc.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve contact page",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Contact page retrieved successfully",
		"data":    []models.ContactPage{*page},
	})
}

func (cc *ContactPageController) GetContactPage(c *gin.Context) {
	page, err := cc.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve contact page",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Contact page retrieved successfully",
		"data":    page,
	})
}

func (cc *ContactPageController) UpdateContactPage(c *gin.Context) {
	page, err := cc.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve contact page",
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

	if err := cc.repo.Update(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update contact page",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Contact page updated successfully",
		"data":    input,
	})
}
