package routes

import (
	"github.com/gin-gonic/gin"

	"petkey/internal/controllers"
	"petkey/internal/middleware"
)

func RegisterVeterinarianRoutes(router *gin.Engine, vetController *controllers.VeterinarianController) {
	vetRoutes := router.Group("/veterinarians")
	{
		vetRoutes.GET("/", middleware.OptionalAuth(), vetController.GetAllVeterinarians)
		vetRoutes.GET("/active", vetController.GetActiveVeterinarians)
		vetRoutes.GET("/:slug", vetController.GetVeterinarianBySlug)
		vetRoutes.POST("/", middleware.RequireAuth(), vetController.CreateVeterinarian)
		vetRoutes.PUT("/:slug", middleware.RequireAuth(), vetController.UpdateVeterinarian)
		vetRoutes.PATCH("/:slug", middleware.RequireAuth(), vetController.UpdateVeterinarian)
		vetRoutes.DELETE("/:slug", middleware.RequireAuth(), vetController.DeleteVeterinarian)
	}
}
