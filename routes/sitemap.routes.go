package routes

import (
	"github.com/gin-gonic/gin"

	"petkey/internal/controllers"
)

func RegisterSitemapRoutes(router *gin.Engine, sitemapController *controllers.SitemapController) {
	router.GET("/sitemap.xml", sitemapController.GetSitemap)
}
