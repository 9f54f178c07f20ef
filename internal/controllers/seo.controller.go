package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petkey/internal/models"
	"petkey/internal/repository"
)

type SEOController struct {
	repo repository.SEOSettingsRepository
}

func NewSEOController(repo repository.SEOSettingsRepository) *SEOController {
	return &SEOController{repo: repo}
}

// GetAllSEOSettings godoc
// @Summary Get all SEO settings rows
// @Tags seo
// @Produce json
// @Success 200 {object} map[string]interface{} "SEO settings retrieved successfully"
// @Router /seo [get]
func (sc *SEOController) GetAllSEOSettings(c *gin.Context) {
	settings, err := sc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve SEO settings",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "SEO settings retrieved successfully",
		"data":    settings,
	})
}

// GetSEOSettingsByPage godoc
// @Summary Get the SEO settings for one page
// @Tags seo
// @Produce json
// @Param page_name path string true "Page name (homepage|services|blog|about|contact|global)"
// @Success 200 {object} map[string]interface{} "SEO settings retrieved successfully"
// @Failure 404 {object} map[string]interface{} "SEO settings not found"
// @Router /seo/{page_name} [get]
func (sc *SEOController) GetSEOSettingsByPage(c *gin.Context) {
	pageName := c.Param("page_name")
	if !models.IsValidSEOPage(pageName) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid page name",
			"error":   "Page must be one of: homepage, services, blog, about, contact, global",
		})
		return
	}

	settings, err := sc.repo.FindByPageName(pageName)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "SEO settings not found",
			"error":   "No SEO settings exist for the provided page",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "SEO settings retrieved successfully",
		"data":    settings,
	})
}

// UpdateSEOSettings godoc
// @Summary Update the SEO settings for one page
// @Description Creates the row when it does not exist yet
// @Tags seo
// @Accept json
// @Produce json
// @Param page_name path string true "Page name"
// @Param settings body models.SEOSettings true "SEO settings data"
// @Success 200 {object} map[string]interface{} "SEO settings updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /seo/{page_name} [put]
func (sc *SEOController) UpdateSEOSettings(c *gin.Context) {
	pageName := c.Param("page_name")
	if !models.IsValidSEOPage(pageName) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid page name",
			"error":   "Page must be one of: homepage, services, blog, about, contact, global",
		})
		return
	}

	// Seed from the stored row so partial bodies leave
	// unsupplied fields untouched.
	var input models.SEOSettings
	if existing, err := sc.repo.FindByPageName(pageName); err == nil {
		input = *existing
	} else {
		input.PageName = pageName
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	settings, err := sc.repo.Upsert(pageName, func(s *models.SEOSettings) {
		input.ID = s.ID
		input.PageName = s.PageName
		input.CreatedAt = s.CreatedAt
		*s = input
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update SEO settings",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "SEO settings updated successfully",
		"data":    settings,
	})
}

// GetAllSettingsExternal godoc
// @Summary Get every page's SEO settings keyed by page name
// @Description Returns the camelCase external shape; the global row carries the site-wide fields
// @Tags seo
// @Produce json
// @Success 200 {object} map[string]interface{} "Settings map"
// @Router /seo/all_settings [get]
func (sc *SEOController) GetAllSettingsExternal(c *gin.Context) {
	settings, err := sc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve SEO settings",
			"error":   err.Error(),
		})
		return
	}

	out := make(map[string]interface{}, len(settings))
	for i := range settings {
		out[settings[i].PageName] = settings[i].External()
	}
	c.JSON(http.StatusOK, out)
}

// BulkUpdateSettings godoc
// @Summary Upsert SEO settings for several pages in one call
// @Description Accepts a map of page name to camelCase settings; unknown pages are rejected
// @Tags seo
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "SEO settings updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /seo/bulk_update [post]
func (sc *SEOController) BulkUpdateSettings(c *gin.Context) {
	var input map[string]map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	for pageName := range input {
		if !models.IsValidSEOPage(pageName) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid page name: " + pageName,
				"error":   "Page must be one of: homepage, services, blog, about, contact, global",
			})
			return
		}
	}

	updated := make(map[string]interface{}, len(input))
	for pageName, fields := range input {
		settings, err := sc.repo.Upsert(pageName, func(s *models.SEOSettings) {
			s.ApplyExternal(fields)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update SEO settings",
				"error":   err.Error(),
			})
			return
		}
		updated[pageName] = settings.External()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "SEO settings updated successfully",
		"data":    updated,
	})
}
