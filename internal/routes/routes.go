package routes

import (
	"career-path-api/internal/handlers"
	"career-path-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204) // This depends on the implementation of the frontend
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Career Path API is running in Health Check Endpoint",
		})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// Team endpoints
		protectedRoutes.GET("/teams", handlers.GetTeams)
		protectedRoutes.POST("/teams", handlers.CreateTeam)
		protectedRoutes.GET("/teams/:id", handlers.GetTeamByID)
		protectedRoutes.PUT("/teams/:id", handlers.UpdateTeam)
		protectedRoutes.DELETE("/teams/:id", handlers.DeleteTeam)

		// Member endpoints
		protectedRoutes.GET("/teams/:id/members", handlers.GetTeamMembers)
		protectedRoutes.POST("/teams/:id/members", handlers.CreateMember)
		protectedRoutes.PUT("/members/:id", handlers.UpdateMember)
		protectedRoutes.DELETE("/members/:id", handlers.DeleteMember)

		// Competency catalog endpoints
		protectedRoutes.GET("/competencies", handlers.GetCompetencies)
		protectedRoutes.POST("/teams/:id/competencies", handlers.CreateTeamCompetency)
		protectedRoutes.PUT("/competencies/:id", handlers.UpdateCompetency)
		protectedRoutes.DELETE("/competencies/:id", handlers.DeleteCompetency)

		// Task endpoints
		protectedRoutes.GET("/competencies/:id/tasks", handlers.GetCompetencyTasks)
		protectedRoutes.POST("/competencies/:id/tasks", handlers.CreateTask)
		protectedRoutes.PUT("/tasks/:id", handlers.UpdateTask)
		protectedRoutes.DELETE("/tasks/:id", handlers.DeleteTask)

		// Rating endpoints
		protectedRoutes.PUT("/members/:id/ratings", handlers.UpsertRating)
		protectedRoutes.GET("/members/:id/ratings", handlers.GetMemberRatings)

		// Decision endpoints
		protectedRoutes.GET("/members/:id/decision", handlers.GetDecision)
		protectedRoutes.GET("/members/:id/report", handlers.GetDecisionReport)

		// Users endpoint
		protectedRoutes.GET("/users", handlers.GetAllUsers)

		// Realtime change feed
		protectedRoutes.GET("/ws", handlers.WebSocketHandler)
	}

	return ginRouter
}
