package routes

import (
	"github.com/gin-gonic/gin"

	"petkey/internal/controllers"
	"petkey/internal/middleware"
)

func RegisterSEORoutes(router *gin.Engine, seoController *controllers.SEOController) {
	seoRoutes := router.Group("/seo")
	{
		seoRoutes.GET("/", seoController.GetAllSEOSettings)
		seoRoutes.GET("/all_settings", seoController.GetAllSettingsExternal)
		seoRoutes.GET("/:page_name", seoController.GetSEOSettingsByPage)
		seoRoutes.POST("/bulk_update", middleware.RequireAuth(), seoController.BulkUpdateSettings)
		seoRoutes.PUT("/:page_name", middleware.RequireAuth(), seoController.UpdateSEOSettings)
		seoRoutes.PATCH("/:page_name", middleware.RequireAuth(), seoController.UpdateSEOSettings)
	}
}
