package routes

import (
	"github.com/gin-gonic/gin"

	"petkey/internal/controllers"
	"petkey/internal/middleware"
)

func RegisterBlogRoutes(router *gin.Engine, blogController *controllers.BlogController) {
	blogRoutes := router.Group("/blog")
	{
		blogRoutes.GET("/", middleware.OptionalAuth(), blogController.GetAllBlogPosts)
		blogRoutes.GET("/featured", blogController.GetFeaturedBlogPosts)
		blogRoutes.GET("/categories", blogController.GetBlogCategories)
		blogRoutes.GET("/:slug", middleware.OptionalAuth(), blogController.GetBlogPostBySlug)
		blogRoutes.POST("/", middleware.RequireAuth(), blogController.CreateBlogPost)
		blogRoutes.PUT("/:slug", middleware.RequireAuth(), blogController.UpdateBlogPost)
		blogRoutes.PATCH("/:slug", middleware.RequireAuth(), blogController.UpdateBlogPost)
		blogRoutes.DELETE("/:slug", middleware.RequireAuth(), blogController.DeleteBlogPost)
	}
}
