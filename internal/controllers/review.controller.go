package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"petkey/internal/models"
	"petkey/internal/repository"
)

type ReviewController struct {
	repo repository.GoogleReviewRepository
}

func NewReviewController(repo repository.GoogleReviewRepository) *ReviewController {
	return &ReviewController{repo: repo}
}

func (rc *ReviewController) findReview(c *gin.Context) (*models.GoogleReview, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid review ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, false
	}

	review, err := rc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Review not found",
			"error":   "No review exists with the provided ID",
		})
		return nil, false
	}
	return review, true
}

// CreateReview godoc
// @Summary Create a new review entry
// @Tags review
// @Accept json
// @Produce json
// @Param review body models.GoogleReview true "Review data"
// @Success 201 {object} map[string]interface{} "Review created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /reviews [post]
func (rc *ReviewController) CreateReview(c *gin.Context) {
	var review models.GoogleReview
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	review.ID = 0
	if review.Initial == "" && review.Name != "" {
		review.Initial = strings.ToUpper(string([]rune(review.Name)[0]))
	}

	if err := rc.repo.Create(&review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create review",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Review created successfully",
		"data":    review,
	})
}

// GetAllReviews godoc
// @Summary Get all reviews
// @Description active_only=true narrows to active reviews; ordered by display order then recency
// @Tags review
// @Produce json
// @Param active_only query bool false "Only active reviews"
// @Success 200 {object} map[string]interface{} "Reviews retrieved successfully"
// @Router /reviews [get]
func (rc *ReviewController) GetAllReviews(c *gin.Context) {
	reviews, err := rc.repo.FindAll(c.Query("active_only") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve reviews",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reviews retrieved successfully",
		"data":    reviews,
	})
}

// GetReviewByID godoc
// @Summary Get a review by ID
// @Tags review
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} map[string]interface{} "Review retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Review not found"
// @Router /reviews/{id} [get]
func (rc *ReviewController) GetReviewByID(c *gin.Context) {
	review, ok := rc.findReview(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Review retrieved successfully",
		"data":    review,
	})
}

// UpdateReview godoc
// @Summary Update a review
// @Tags review
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param review body models.GoogleReview true "Review data"
// @Success 200 {object} map[string]interface{} "Review updated successfully"
// @Failure 404 {object} map[string]interface{} "Review not found"
// @Router /reviews/{id} [put]
func (rc *ReviewController) UpdateReview(c *gin.Context) {
	existing, ok := rc.findReview(c)
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

	if err := rc.repo.Update(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update review",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Review updated successfully",
		"data":    input,
	})
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags review
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} map[string]interface{} "Review deleted successfully"
// @Failure 404 {object} map[string]interface{} "Review not found"
// @Router /reviews/{id} [delete]
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	review, ok := rc.findReview(c)
	if !ok {
		return
	}

	if err := rc.repo.Delete(review.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete review",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Review deleted successfully",
		"data":    nil,
	})
}
