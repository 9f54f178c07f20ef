package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petkey/internal/middleware"
	"petkey/internal/models"
	"petkey/internal/repository"
	"petkey/internal/utils"
)

type VeterinarianController struct {
	repo repository.VeterinarianRepository
}

func NewVeterinarianController(repo repository.VeterinarianRepository) *VeterinarianController {
	return &VeterinarianController{repo: repo}
}

func (vc *VeterinarianController) presentVeterinarian(c *gin.Context, vet *models.Veterinarian) {
	vet.Avatar = utils.AbsoluteMediaURL(c, vet.Avatar)
}

// CreateVeterinarian godoc
// @Summary Create a new veterinarian
// @Description Create a veterinarian; the slug is derived from the name
// @Tags veterinarian
// @Accept json
// @Produce json
// @Param veterinarian body models.Veterinarian true "Veterinarian data"
// @Success 201 {object} map[string]interface{} "Veterinarian created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /veterinarians [post]
func (vc *VeterinarianController) CreateVeterinarian(c *gin.Context) {
	var vet models.Veterinarian
	if err := c.ShouldBindJSON(&vet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// Slug and timestamps are server-assigned
	vet.ID = 0
	vet.Slug = ""

	if utils.IsDataURI(vet.Avatar) {
		path, err := utils.SaveDataURI(vet.Avatar, "veterinarians")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid avatar image",
				"error":   err.Error(),
			})
			return
		}
		vet.Avatar = path
	}

	if err := vc.repo.Create(&vet); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create veterinarian",
			"error":   err.Error(),
		})
		return
	}

	vc.presentVeterinarian(c, &vet)
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Veterinarian created successfully",
		"data":    vet,
	})
}

// GetAllVeterinarians godoc
// @Summary Get all veterinarians
// @Description Anonymous callers only see active veterinarians
// @Tags veterinarian
// @Produce json
// @Success 200 {object} map[string]interface{} "Veterinarians retrieved successfully"
// @Router /veterinarians [get]
func (vc *VeterinarianController) GetAllVeterinarians(c *gin.Context) {
	var (
		vets []models.Veterinarian
		err  error
	)
	if middleware.IsAuthenticated(c) {
		vets, err = vc.repo.FindAll()
	} else {
		vets, err = vc.repo.FindActive()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve veterinarians",
			"error":   err.Error(),
		})
		return
	}

	for i := range vets {
		vc.presentVeterinarian(c, &vets[i])
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Veterinarians retrieved successfully",
		"data":    vets,
	})
}

// GetActiveVeterinarians godoc
// @Summary Get active veterinarians
// @Tags veterinarian
// @Produce json
// @Success 200 {object} map[string]interface{} "Veterinarians retrieved successfully"
// @Router /veterinarians/active [get]
func (vc *VeterinarianController) GetActiveVeterinarians(c *gin.Context) {
	vets, err := vc.repo.FindActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve veterinarians",
			"error":   err.Error(),
		})
		return
	}

	for i := range vets {
		vc.presentVeterinarian(c, &vets[i])
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Veterinarians retrieved successfully",
		"data":    vets,
	})
}

// GetVeterinarianBySlug godoc
// @Summary Get a veterinarian by slug
// @Tags veterinarian
// @Produce json
// @Param slug path string true "Veterinarian slug"
// @Success 200 {object} map[string]interface{} "Veterinarian retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Veterinarian not found"
// @Router /veterinarians/{slug} [get]
func (vc *VeterinarianController) GetVeterinarianBySlug(c *gin.Context) {
	vet, err := vc.repo.FindBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Veterinarian not found",
			"error":   "No veterinarian exists with the provided slug",
		})
		return
	}

	vc.presentVeterinarian(c, vet)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Veterinarian retrieved successfully",
		"data":    vet,
	})
}

// UpdateVeterinarian godoc
// @Summary Update a veterinarian
// @Tags veterinarian
// @Accept json
// @Produce json
// @Param slug path string true "Veterinarian slug"
// @Param veterinarian body models.Veterinarian true "Veterinarian data"
// @Success 200 {object} map[string]interface{} "Veterinarian updated successfully"
// @Failure 404 {object} map[string]interface{} "Veterinarian not found"
// @Router /veterinarians/{slug} [put]
func (vc *VeterinarianController) UpdateVeterinarian(c *gin.Context) {
	existing, err := vc.repo.FindBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Veterinarian not found",
			"error":   "No veterinarian exists with the provided slug",
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

	// Identity and slug are immutable
	input.ID = existing.ID
	input.Slug = existing.Slug
	input.CreatedAt = existing.CreatedAt

	if utils.IsDataURI(input.Avatar) {
		path, err := utils.SaveDataURI(input.Avatar, "veterinarians")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid avatar image",
				"error":   err.Error(),
			})
			return
		}
		input.Avatar = path
	}

	if err := vc.repo.Update(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update veterinarian",
			"error":   err.Error(),
		})
		return
	}

	vc.presentVeterinarian(c, &input)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Veterinarian updated successfully",
		"data":    input,
	})
}

// DeleteVeterinarian godoc
// @Summary Delete a veterinarian
// @Description Deleting a veterinarian also removes their blog posts and appointments
// @Tags veterinarian
// @Produce json
// @Param slug path string true "Veterinarian slug"
// @Success 200 {object} map[string]interface{} "Veterinarian deleted successfully"
// @Failure 404 {object} map[string]interface{} "Veterinarian not found"
// @Router /veterinarians/{slug} [delete]
func (vc *VeterinarianController) DeleteVeterinarian(c *gin.Context) {
	slug := c.Param("slug")
	if _, err := vc.repo.FindBySlug(slug); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Veterinarian not found",
			"error":   "No veterinarian exists with the provided slug",
		})
		return
	}

	if err := vc.repo.Delete(slug); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete veterinarian",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Veterinarian deleted successfully",
		"data":    nil,
	})
}
