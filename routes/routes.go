package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mingle-social/api-go/config"
	"github.com/mingle-social/api-go/controllers"
	"github.com/mingle-social/api-go/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize controllers
	userController := controllers.NewUserController(db)
	postController := controllers.NewPostController(db)
	feedController := controllers.NewFeedController(db)
	interactionController := controllers.NewInteractionController(db)

	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	// Liveness probe
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Social Media API is running...")
	})

	SetupUserRoutes(r, auth, userController, interactionController)
	SetupPostRoutes(r, auth, postController, feedController, interactionController)
}
