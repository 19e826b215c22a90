package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/config"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/mailer"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/routes"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.GetAppConfig()

	// Initialize database
	db := config.InitDB()

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Initialize routes
	routes.SetupRoutes(r, db, cfg, mailer.NewSMTPMailer(cfg.SMTP))

	// Start the server
	log.Printf("Starting server on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}
