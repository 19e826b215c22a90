package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/controllers"
)

// SetupPublicForumRoutes registers the read-only forum endpoints that need no
// authentication.
func SetupPublicForumRoutes(rg *gin.RouterGroup, forumController *controllers.ForumController) {
	rg.GET("/posts", forumController.ListPosts)
	rg.GET("/posts/:id/comments", forumController.ListComments)
}

func SetupForumRoutes(rg *gin.RouterGroup, forumController *controllers.ForumController) {
	posts := rg.Group("/posts")
	{
		posts.POST("", forumController.CreatePost)
		posts.PATCH("/:id/like", forumController.ToggleLike)
		posts.POST("/:id/comments", forumController.CreateComment)
	}
}
