package routes

import (
	"github.com/gin-gonic/gin"

	"petkey/internal/controllers"
)

// Appointment endpoints stay open to anonymous callers; the public booking
// form drives all of them.
func RegisterAppointmentRoutes(router *gin.Engine, appointmentController *controllers.AppointmentController) {
	appointmentRoutes := router.Group("/appointments")
	{
		appointmentRoutes.GET("/", appointmentController.GetAllAppointments)
		appointmentRoutes.GET("/available_slots", appointmentController.GetAvailableSlots)
		appointmentRoutes.GET("/:id", appointmentController.GetAppointmentByID)
		appointmentRoutes.POST("/", appointmentController.CreateAppointment)
		appointmentRoutes.PUT("/:id", appointmentController.UpdateAppointment)
		appointmentRoutes.PATCH("/:id", appointmentController.UpdateAppointment)
		appointmentRoutes.PATCH("/:id/update_status", appointmentController.UpdateAppointmentStatus)
		appointmentRoutes.DELETE("/:id", appointmentController.DeleteAppointment)
	}
}
