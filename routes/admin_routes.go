package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/controllers"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/middleware"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/models"
)

func SetupAdminRoutes(rg *gin.RouterGroup, adminController *controllers.AdminController) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/users", adminController.ListUsers)
		admin.PUT("/users/:id", adminController.UpdateUser)
		admin.DELETE("/users/:id", adminController.DeleteUser)
		admin.GET("/user-stats", adminController.UserStats)
	}
}
