package routes

import (
	"github.com/gin-gonic/gin"

	"petkey/internal/controllers"
)

// Contact endpoints stay open; the admin panel reaches them before login,
// as the public form does.
func RegisterContactRoutes(router *gin.Engine, contactController *controllers.ContactController) {
	contactRoutes := router.Group("/contact")
	{
		contactRoutes.GET("/", contactController.GetAllContactMessages)
		contactRoutes.GET("/:id", contactController.GetContactMessageByID)
		contactRoutes.POST("/", contactController.CreateContactMessage)
		contactRoutes.PUT("/:id", contactController.UpdateContactMessage)
		contactRoutes.PATCH("/:id", contactController.UpdateContactMessage)
		contactRoutes.DELETE("/:id", contactController.DeleteContactMessage)
		contactRoutes.POST("/:id/mark_read", contactController.MarkContactMessageRead)
		contactRoutes.POST("/:id/reply", contactController.ReplyContactMessage)
		contactRoutes.POST("/:id/restore", contactController.RestoreContactMessage)
		contactRoutes.DELETE("/:id/permanent_delete", contactController.PermanentDeleteContactMessage)
	}
}
