package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/controllers"
)

func SetupUserRoutes(rg *gin.RouterGroup, userController *controllers.UserController) {
	users := rg.Group("/users")
	{
		users.GET("/:id", userController.GetUser)
		users.PUT("/:id", userController.UpdateUser)
		users.PUT("/:id/profile-picture", userController.UpdateProfilePicture)
	}
}
