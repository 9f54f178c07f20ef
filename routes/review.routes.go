package routes

import (
	"github.com/gin-gonic/gin"

	"petkey/internal/controllers"
	"petkey/internal/middleware"
)

func RegisterReviewRoutes(router *gin.Engine, reviewController *controllers.ReviewController) {
	reviewRoutes := router.Group("/reviews")
	{
		reviewRoutes.GET("/", reviewController.GetAllReviews)
		reviewRoutes.GET("/:id", reviewController.GetReviewByID)
		reviewRoutes.POST("/", middleware.RequireAuth(), reviewController.CreateReview)
		reviewRoutes.PUT("/:id", middleware.RequireAuth(), reviewController.UpdateReview)
		reviewRoutes.PATCH("/:id", middleware.RequireAuth(), reviewController.UpdateReview)
		reviewRoutes.DELETE("/:id", middleware.RequireAuth(), reviewController.DeleteReview)
	}
}
