package routes

import (
	"github.com/gin-gonic/gin"

	"petkey/internal/controllers"
	"petkey/internal/middleware"
)

func RegisterPageContentRoutes(router *gin.Engine, pageContentController *controllers.PageContentController) {
	pageContentRoutes := router.Group("/page-contents")
	{
		pageContentRoutes.GET("/", pageContentController.GetAllPageContents)
		pageContentRoutes.GET("/by_name/:page_name", pageContentController.GetPageContentByName)
		pageContentRoutes.GET("/:id", pageContentController.GetPageContentByID)
		pageContentRoutes.POST("/", middleware.RequireAuth(), pageContentController.CreatePageContent)
		pageContentRoutes.PUT("/:id", middleware.RequireAuth(), pageContentController.UpdatePageContent)
		pageContentRoutes.PATCH("/:id", middleware.RequireAuth(), pageContentController.UpdatePageContent)
		pageContentRoutes.DELETE("/:id", middleware.RequireAuth(), pageContentController.DeletePageContent)
	}
}
