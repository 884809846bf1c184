package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mingle-social/api-go/controllers"
)

func SetupUserRoutes(r *gin.Engine, auth gin.HandlerFunc, userController *controllers.UserController, interactionController *controllers.InteractionController) {
	users := r.Group("/users")
	{
		users.GET("/me", auth, userController.GetCurrentUser)
		users.GET("/:id", userController.GetUserByID)
		users.POST("/:id/follow", auth, interactionController.ToggleFollow)
	}
}
