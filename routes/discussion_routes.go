package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/controllers"
)

func SetupDiscussionRoutes(rg *gin.RouterGroup, discussionController *controllers.DiscussionController) {
	discussions := rg.Group("/discussions")
	{
		discussions.POST("", discussionController.CreateDiscussion)
		discussions.GET("", discussionController.ListDiscussions)
	}
}
