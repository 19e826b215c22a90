package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/config"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/controllers"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/mailer"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.AppConfig, m mailer.Mailer) {
	// Initialize controllers
	authController := controllers.NewAuthController(db, cfg, m)
	reportController := controllers.NewReportController(db, cfg)
	forumController := controllers.NewForumController(db)
	discussionController := controllers.NewDiscussionController(db)
	userController := controllers.NewUserController(db)
	adminController := controllers.NewAdminController(db)
	pollutionController := controllers.NewPollutionController(db, cfg)

	// Uploaded report images are served straight from disk
	r.Static("/uploads", cfg.UploadDir)

	// Public routes
	public := r.Group("/api")
	{
		SetupAuthRoutes(public, authController)
		SetupDiscussionRoutes(public, discussionController)
		SetupPollutionRoutes(public, pollutionController)
		SetupPublicForumRoutes(public, forumController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(db))
	{
		SetupReportRoutes(protected, reportController)
		SetupForumRoutes(protected, forumController)
		SetupUserRoutes(protected, userController)
		SetupAdminRoutes(protected, adminController)
	}
}
