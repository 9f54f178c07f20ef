package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petkey/internal/middleware"
	"petkey/internal/models"
	"petkey/internal/repository"
	"petkey/internal/utils"
)

type GalleryController struct {
	repo repository.GalleryImageRepository
}

func NewGalleryController(repo repository.GalleryImageRepository) *GalleryController {
	return &GalleryController{repo: repo}
}

func (gc *GalleryController) presentImage(c *gin.Context, image *models.GalleryImage) {
	image.Image = utils.AbsoluteMediaURL(c, image.Image)
}

func (gc *GalleryController) findImage(c *gin.Context) (*models.GalleryImage, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid image ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, false
	}

	image, err := gc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Image not found",
			"error":   "No image exists with the provided ID",
		})
		return nil, false
	}
	return image, true
}

// CreateGalleryImage godoc
// @Summary Create a new gallery image
// @Description Image is a URL or path reference, never an upload
// @Tags gallery
// @Accept json
// @Produce json
// @Param image body models.GalleryImage true "Gallery image data"
// @Success 201 {object} map[string]interface{} "Image created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /gallery [post]
func (gc *GalleryController) CreateGalleryImage(c *gin.Context) {
	var image models.GalleryImage
	if err := c.ShouldBindJSON(&image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	image.ID = 0
	if err := gc.repo.Create(&image); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create image",
			"error":   err.Error(),
		})
		return
	}

	gc.presentImage(c, &image)
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Image created successfully",
		"data":    image,
	})
}

// GetAllGalleryImages godoc
// @Summary Get all gallery images
// @Description Anonymous callers only see active images; category filter optional
// @Tags gallery
// @Produce json
// @Param category query string false "Category (dogs|cats|clinic|team)"
// @Success 200 {object} map[string]interface{} "Images retrieved successfully"
// @Router /gallery [get]
func (gc *GalleryController) GetAllGalleryImages(c *gin.Context) {
	filter := repository.GalleryImageFilter{
		ActiveOnly: !middleware.IsAuthenticated(c),
		Category:   c.Query("category"),
	}

	images, err := gc.repo.FindAll(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve images",
			"error":   err.Error(),
		})
		return
	}

	for i := range images {
		gc.presentImage(c, &images[i])
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Images retrieved successfully",
		"data":    images,
	})
}

// GetGalleryImageByID godoc
// @Summary Get a gallery image by ID
// @Tags gallery
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} map[string]interface{} "Image retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Image not found"
// @Router /gallery/{id} [get]
func (gc *GalleryController) GetGalleryImageByID(c *gin.Context) {
	image, ok := gc.findImage(c)
	if !ok {
		return
	}

	gc.presentImage(c, image)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Image retrieved successfully",
		"data":    image,
	})
}

// UpdateGalleryImage godoc
// @Summary Update a gallery image
// @Tags gallery
// @Accept json
// @Produce json
// @Param id path int true "Image ID"
// @Param image body models.GalleryImage true "Gallery image data"
// @Success 200 {object} map[string]interface{} "Image updated successfully"
// @Failure 404 {object} map[string]interface{} "Image not found"
// @Router /gallery/{id} [put]
func (gc *GalleryController) UpdateGalleryImage(c *gin.Context) {
	existing, ok := gc.findImage(c)
	if !ok {
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
	input.CreatedAt = existing.CreatedAt

	if err := gc.repo.Update(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update image",
			"error":   err.Error(),
		})
		return
	}

	gc.presentImage(c, &input)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Image updated successfully",
		"data":    input,
	})
}

// DeleteGalleryImage godoc
// @Summary Delete a gallery image
// @Tags gallery
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} map[string]interface{} "Image deleted successfully"
// @Failure 404 {object} map[string]interface{} "Image not found"
// @Router /gallery/{id} [delete]
func (gc *GalleryController) DeleteGalleryImage(c *gin.Context) {
	image, ok := gc.findImage(c)
	if !ok {
		return
	}

	if err := gc.repo.Delete(image.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete image",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Image deleted successfully",
		"data":    nil,
	})
}

// GetGalleryCategories godoc
// @Summary Get gallery categories with active image counts
// @Tags gallery
// @Produce json
// @Success 200 {object} map[string]interface{} "Categories retrieved successfully"
// @Router /gallery/categories [get]
func (gc *GalleryController) GetGalleryCategories(c *gin.Context) {
	type categoryCount struct {
		Code  string `json:"code"`
		Name  string `json:"name"`
		Count int64  `json:"count"`
	}

	categories := make([]categoryCount, 0, len(models.GalleryCategories))
	for _, cat := range models.GalleryCategories {
		count, err := gc.repo.CountActiveByCategory(cat.Code)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to retrieve categories",
				"error":   err.Error(),
			})
			return
		}
		categories = append(categories, categoryCount{Code: cat.Code, Name: cat.Name, Count: count})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}
