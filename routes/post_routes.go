package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mingle-social/api-go/controllers"
)

func SetupPostRoutes(r *gin.Engine, auth gin.HandlerFunc, postController *controllers.PostController, feedController *controllers.FeedController, interactionController *controllers.InteractionController) {
	posts := r.Group("/posts")
	posts.Use(auth)
	{
		posts.GET("", feedController.GetFeed)
		posts.POST("", postController.CreatePost)
		posts.POST("/:id/like", interactionController.ToggleLike)
		posts.POST("/:id/comment", postController.CreateComment)
	}
}
