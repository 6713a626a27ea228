package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)

	// Protected routes
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.GET("/get-user-data", controllers.GetUserData)
		authed.PUT("/update-user-data", controllers.UpdateUserData)
		authed.POST("/log-food", controllers.LogFood)
		authed.GET("/daily-logs", controllers.DailyLogs)
		authed.GET("/logs-by-date", controllers.LogsByDate)
	}

	return r
}
