package routes

import (
	"github.com/gin-gonic/gin"

	"petkey/internal/controllers"
	"petkey/internal/middleware"
)

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController, userController *controllers.UserController) {
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/login", authController.Login)
		authRoutes.POST("/logout", middleware.RequireAuth(), authController.Logout)
		authRoutes.GET("/check", middleware.RequireAuth(), authController.CheckAuth)
	}

	userRoutes := router.Group("/users", middleware.RequireAuth())
	{
		userRoutes.GET("/", userController.GetUsers)
		userRoutes.POST("/", userController.CreateUser)
		userRoutes.PUT("/:id", userController.UpdateUser)
		userRoutes.PATCH("/:id", userController.UpdateUser)
		userRoutes.DELETE("/:id", userController.DeleteUser)
	}
}
