package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petkey/internal/middleware"
	"petkey/internal/models"
	"petkey/internal/repository"
)

type ServiceController struct {
	repo repository.ServiceRepository
}

func NewServiceController(repo repository.ServiceRepository) *ServiceController {
	return &ServiceController{repo: repo}
}

// CreateService godoc
// @Summary Create a new service
// @Description The slug is derived from the title when omitted
// @Tags service
// @Accept json
// @Produce json
// @Param service body models.Service true "Service data"
// @Success 201 {object} map[string]interface{} "Service created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /services [post]
func (sc *ServiceController) CreateService(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	service.ID = 0
	if err := sc.repo.Create(&service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create service",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Service created successfully",
		"data":    service,
	})
}

// GetAllServices godoc
// @Summary Get all services
// @Description Anonymous callers only see active services; never paginated
// @Tags service
// @Produce json
// @Success 200 {object} map[string]interface{} "Services retrieved successfully"
// @Router /services [get]
func (sc *ServiceController) GetAllServices(c *gin.Context) {
	services, err := sc.repo.FindAll(!middleware.IsAuthenticated(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve services",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Services retrieved successfully",
		"data":    services,
	})
}

// GetActiveServices godoc
// @Summary Get active services
// @Tags service
// @Produce json
// @Success 200 {object} map[string]interface{} "Services retrieved successfully"
// @Router /services/active [get]
func (sc *ServiceController) GetActiveServices(c *gin.Context) {
	services, err := sc.repo.FindAll(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve services",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Services retrieved successfully",
		"data":    services,
	})
}

// GetAllServicesUnfiltered godoc
// @Summary Get every service regardless of active flag
// @Description Admin listing; includes disabled services so they can be reactivated
// @Tags service
// @Produce json
// @Success 200 {object} map[string]interface{} "Services retrieved successfully"
// @Router /services/all [get]
func (sc *ServiceController) GetAllServicesUnfiltered(c *gin.Context) {
	services, err := sc.repo.FindAll(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve services",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Services retrieved successfully",
		"data":    services,
	})
}

// GetServiceBySlug godoc
// @Summary Get a service by slug
// @Description Bypasses the active filter so admins can reach disabled services
// @Tags service
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} map[string]interface{} "Service retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Router /services/{slug} [get]
func (sc *ServiceController) GetServiceBySlug(c *gin.Context) {
	service, err := sc.repo.FindBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Service not found",
			"error":   "No service exists with the provided slug",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Service retrieved successfully",
		"data":    service,
	})
}

// UpdateService godoc
// @Summary Update a service
// @Tags service
// @Accept json
// @Produce json
// @Param slug path string true "Service slug"
// @Param service body models.Service true "Service data"
// @Success 200 {object} map[string]interface{} "Service updated successfully"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Router /services/{slug} [put]
func (sc *ServiceController) UpdateService(c *gin.Context) {
	existing, err := sc.repo.FindBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Service not found",
			"error":   "No service exists with the provided slug",
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
	input.Slug = existing.Slug
	input.CreatedAt = existing.CreatedAt

	if err := sc.repo.Update(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update service",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Service updated successfully",
		"data":    input,
	})
}

// DeleteService godoc
// @Summary Delete a service
// @Tags service
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} map[string]interface{} "Service deleted successfully"
// @Failure 404 {object} map[string]interface{} "Service not found"
// @Router /services/{slug} [delete]
func (sc *ServiceController) DeleteService(c *gin.Context) {
	if err := sc.repo.Delete(c.Param("slug")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Service not found",
			"error":   "No service exists with the provided slug",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Service deleted successfully",
		"data":    nil,
	})
}
