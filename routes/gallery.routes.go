package routes

import (
	"github.com/gin-gonic/gin"

	"petkey/internal/controllers"
	"petkey/internal/middleware"
)

func RegisterGalleryRoutes(router *gin.Engine, galleryController *controllers.GalleryController) {
	galleryRoutes := router.Group("/gallery")
	{
		galleryRoutes.GET("/", middleware.OptionalAuth(), galleryController.GetAllGalleryImages)
		galleryRoutes.GET("/categories", galleryController.GetGalleryCategories)
		galleryRoutes.GET("/:id", galleryController.GetGalleryImageByID)
		galleryRoutes.POST("/", middleware.RequireAuth(), galleryController.CreateGalleryImage)
		galleryRoutes.PUT("/:id", middleware.RequireAuth(), galleryController.UpdateGalleryImage)
		galleryRoutes.PATCH("/:id", middleware.RequireAuth(), galleryController.UpdateGalleryImage)
		galleryRoutes.DELETE("/:id", middleware.RequireAuth(), galleryController.DeleteGalleryImage)
	}
}
