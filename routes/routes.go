package routes

import (
	"github.com/D0n4ld07/healthtracker/controllers"
	"github.com/D0n4ld07/healthtracker/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestID())

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Everything else requires a bearer token
	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/dashboard", controllers.GetDashboard)

		protected.GET("/meals", controllers.ListMeals)
		protected.POST("/meals", controllers.CreateMeal)
		protected.POST("/meals/:id/delete", controllers.DeleteMeal)

		protected.GET("/fitness", controllers.ListFitness)
		protected.POST("/fitness", controllers.CreateFitness)
		protected.POST("/fitness/:id/delete", controllers.DeleteFitness)

		protected.GET("/sleep", controllers.ListSleep)
		protected.POST("/sleep", controllers.CreateSleep)
		protected.POST("/sleep/:id/delete", controllers.DeleteSleep)

		protected.GET("/weight", controllers.ListWeight)
		protected.POST("/weight", controllers.CreateWeight)
		protected.POST("/weight/:id/delete", controllers.DeleteWeight)

		protected.GET("/goals", controllers.GetGoals)
		protected.PUT("/goals", controllers.UpdateGoals)

		protected.GET("/api/charts/:kind", controllers.GetChartData)
	}

	return r
}
