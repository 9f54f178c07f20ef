package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petkey/internal/models"
	"petkey/internal/repository"
)

type PageContentController struct {
	repo repository.PageContentRepository
}

func NewPageContentController(repo repository.PageContentRepository) *PageContentController {
	return &PageContentController{repo: repo}
}

// CreatePageContent godoc
// @Summary Create a new page content block
// @Tags page-content
// @Accept json
// @Produce json
// @Param content body models.PageContent true "Page content data"
// @Success 201 {object} map[string]interface{} "Page content created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /page-contents [post]
func (pc *PageContentController) CreatePageContent(c *gin.Context) {
	var content models.PageContent
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	content.ID = 0
	if err := pc.repo.Create(&content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create page content",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Page content created successfully",
		"data":    content,
	})
}

// GetAllPageContents godoc
// @Summary Get all page content blocks
// @Description Never paginated; the admin UI expects the full set
// @Tags page-content
// @Produce json
// @Success 200 {object} map[string]interface{} "Page contents retrieved successfully"
// @Router /page-contents [get]
func (pc *PageContentController) GetAllPageContents(c *gin.Context) {
	contents, err := pc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve page contents",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Page contents retrieved successfully",
		"data":    contents,
	})
}

// GetPageContentByID godoc
// @Summary Get a page content block by ID
// @Tags page-content
// @Produce json
// @Param id path int true "Page content ID"
// @Success 200 {object} map[string]interface{} "Page content retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Page content not found"
// @Router /page-contents/{id} [get]
func (pc *PageContentController) GetPageContentByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid page content ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	content, err := pc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Page content not found",
			"error":   "No page content exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Page content retrieved successfully",
		"data":    content,
	})
}

// GetPageContentByName godoc
// @Summary Get a page content block by page name
// @Tags page-content
// @Produce json
// @Param page_name path string true "Page name"
// @Success 200 {object} map[string]interface{} "Page content retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Page content not found"
// @Router /page-contents/by_name/{page_name} [get]
func (pc *PageContentController) GetPageContentByName(c *gin.Context) {
	content, err := pc.repo.FindByName(c.Param("page_name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Page content not found",
			"error":   "No page content exists with the provided name",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Page content retrieved successfully",
		"data":    content,
	})
}

// UpdatePageContent godoc
// @Summary Update a page content block
// @Tags page-content
// @Accept json
// @Produce json
// @Param id path int true "Page content ID"
// @Param content body models.PageContent true "Page content data"
// @Success 200 {object} map[string]interface{} "Page content updated successfully"
// @Failure 404 {object} map[string]interface{} "Page content not found"
// @Router /page-contents/{id} [put]
func (pc *PageContentController) UpdatePageContent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid page content ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	existing, err := pc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Page content not found",
			"error":   "No page content exists with the provided ID",
		})
		return
	}

	// Bind over a copy of the stored record so partial bodies
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

	if err := pc.repo.Update(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update page content",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Page content updated successfully",
		"data":    input,
	})
}

// DeletePageContent godoc
// @Summary Delete a page content block
// @Tags page-content
// @Produce json
// @Param id path int true "Page content ID"
// @Success 200 {object} map[string]interface{} "Page content deleted successfully"
// @Failure 404 {object} map[string]interface{} "Page content not found"
// @Router /page-contents/{id} [delete]
func (pc *PageContentController) DeletePageContent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid page content ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := pc.repo.FindByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Page content not found",
			"error":   "No page content exists with the provided ID",
		})
		return
	}

	if err := pc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete page content",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Page content deleted successfully",
		"data":    nil,
	})
}
