package main

import (
	"log"
	"os"

	"career-path-api/internal/database"
	"career-path-api/internal/routes"
)

func main() {
	// Init database
	database.InitDB()

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes()

	// Start server
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8008"
	}
	log.Printf("Server starting on port :%s", port)
	log.Println("API endpoints:")
	log.Println("  POST   /api/register")
	log.Println("  POST   /api/login")
	log.Println("  GET    /api/teams")
	log.Println("  GET    /api/competencies?role=&teamId=")
	log.Println("  PUT    /api/members/:id/ratings")
	log.Println("  GET    /api/members/:id/decision")
	log.Println("  GET    /api/members/:id/report")
	log.Println("  GET    /api/ws?teamId=")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
