package routes

import (
	"github.com/gin-gonic/gin"

	"petkey/internal/controllers"
	"petkey/internal/middleware"
)

// RegisterPageRoutes wires the singleton page resources. Only read and
// update are exposed; create and delete never reach the controllers.
func RegisterPageRoutes(
	router *gin.Engine,
	aboutController *controllers.AboutPageController,
	contactPageController *controllers.ContactPageController,
	servicesPageController *controllers.ServicesPageController,
	homePageController *controllers.HomePageController,
	siteSettingsController *controllers.SiteSettingsController,
) {
	aboutRoutes := router.Group("/about-page")
	{
		aboutRoutes.GET("/", aboutController.GetAboutPage)
		aboutRoutes.GET("/:id", aboutController.GetAboutPage)
		aboutRoutes.PUT("/:id", middleware.RequireAuth(), aboutController.UpdateAboutPage)
		aboutRoutes.PATCH("/:id", middleware.RequireAuth(), aboutController.UpdateAboutPage)
	}

	contactPageRoutes := router.Group("/contact-page")
	{
		contactPageRoutes.GET("/", contactPageController.ListContactPage)
		contactPageRoutes.GET("/:id", contactPageController.GetContactPage)
		contactPageRoutes.PUT("/:id", middleware.RequireAuth(), contactPageController.UpdateContactPage)
		contactPageRoutes.PATCH("/:id", middleware.RequireAuth(), contactPageController.UpdateContactPage)
	}

	servicesPageRoutes := router.Group("/services-page")
	{
		servicesPageRoutes.GET("/", servicesPageController.GetServicesPage)
		servicesPageRoutes.GET("/:id", servicesPageController.GetServicesPage)
		servicesPageRoutes.PUT("/:id", middleware.RequireAuth(), servicesPageController.UpdateServicesPage)
		servicesPageRoutes.PATCH("/:id", middleware.RequireAuth(), servicesPageController.UpdateServicesPage)
	}

	homePageRoutes := router.Group("/homepage")
	{
		homePageRoutes.GET("/", homePageController.GetHomePage)
		homePageRoutes.GET("/content", homePageController.GetHomePageContent)
		homePageRoutes.GET("/:id", homePageController.GetHomePage)
		homePageRoutes.PUT("/:id", middleware.RequireAuth(), homePageController.UpdateHomePage)
		homePageRoutes.PATCH("/:id", middleware.RequireAuth(), homePageController.UpdateHomePage)
	}

	siteSettingsRoutes := router.Group("/site-settings")
	{
		siteSettingsRoutes.GET("/", siteSettingsController.GetSiteSettings)
		siteSettingsRoutes.GET("/get_settings", siteSettingsController.GetSettings)
		siteSettingsRoutes.GET("/:id", siteSettingsController.GetSiteSettings)
		siteSettingsRoutes.PUT("/:id", middleware.RequireAuth(), siteSettingsController.UpdateSiteSettings)
		siteSettingsRoutes.PATCH("/:id", middleware.RequireAuth(), siteSettingsController.UpdateSiteSettings)
		siteSettingsRoutes.POST("/update_settings", middleware.RequireAuth(), siteSettingsController.UpdateSiteSettings)
	}
}
