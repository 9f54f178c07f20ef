package routes

import (
	"github.com/gin-gonic/gin"

	"petkey/internal/controllers"
	"petkey/internal/middleware"
)

func RegisterServiceRoutes(router *gin.Engine, serviceController *controllers.ServiceController) {
	serviceRoutes := router.Group("/services")
	{
		serviceRoutes.GET("/", middleware.OptionalAuth(), serviceController.GetAllServices)
		serviceRoutes.GET("/active", serviceController.GetActiveServices)
		serviceRoutes.GET("/all", serviceController.GetAllServicesUnfiltered)
		serviceRoutes.GET("/:slug", serviceController.GetServiceBySlug)
		serviceRoutes.POST("/", middleware.RequireAuth(), serviceController.CreateService)
		serviceRoutes.PUT("/:slug", middleware.RequireAuth(), serviceController.UpdateService)
		serviceRoutes.PATCH("/:slug", middleware.RequireAuth(), serviceController.UpdateService)
		serviceRoutes.DELETE("/:slug", middleware.RequireAuth(), serviceController.DeleteService)
	}
}
