package main

import (
	"log"
	"os"
	"time"

	"github.com/aarlint/wokeometer-api/internal/infrastructure/database"
	"github.com/aarlint/wokeometer-api/internal/interfaces/http/middleware"
	"github.com/aarlint/wokeometer-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Configure Fiber
	app := fiber.New(fiber.Config{
		BodyLimit:    2 * 1024 * 1024, // 2MB, imports are small JSON arrays
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server is running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
