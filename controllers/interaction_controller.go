package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mingle-social/api-go/models"
	"github.com/mingle-social/api-go/utils"
	"gorm.io/gorm"
)

type InteractionController struct {
	DB *gorm.DB
}

func NewInteractionController(db *gorm.DB) *InteractionController {
	return &InteractionController{DB: db}
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Description Flips the like state of a post for the authenticated user
// @Tags interactions
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/like [post]
func (ic *InteractionController) ToggleLike(c *gin.Context) {
	claims := utils.GetClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	postID := c.Param("id")

	actor, ok := ic.resolveActor(c, claims.Email)
	if !ok {
		return
	}

	var post models.Post
	if err := ic.DB.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		slog.Error("Failed to load post", "error", err.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
		return
	}

	var existingLike models.Like
	result := ic.DB.Where("post_id = ? AND user_id = ?", post.ID, actor.ID).First(&existingLike)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		like := models.Like{PostID: post.ID, UserID: actor.ID}
		if err := ic.DB.Create(&like).Error; err != nil {
			// A concurrent identical request beat us to the insert; the
			// composite key already holds, so the toggle landed on "liked".
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusOK, gin.H{"message": "Liked"})
				return
			}
			slog.Error("Failed to create like", "error", err.Error(), "request_id", c.GetString("request_id"))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Liked"})
		return
	}
	if result.Error != nil {
		slog.Error("Failed to check like", "error", result.Error.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
		return
	}

	if err := ic.DB.Delete(&existingLike).Error; err != nil {
		slog.Error("Failed to delete like", "error", err.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unliked"})
}

// ToggleFollow godoc
// @Summary Follow or unfollow a user
// @Description Flips the follow edge from the authenticated user to the target
// @Tags interactions
// @Produce json
// @Param id path string true "User ID to follow"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/follow [post]
func (ic *InteractionController) ToggleFollow(c *gin.Context) {
	claims := utils.GetClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	actor, ok := ic.resolveActor(c, claims.Email)
	if !ok {
		return
	}

	var target models.User
	if err := ic.DB.First(&target, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		slog.Error("Failed to load target user", "error", err.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		return
	}

	if actor.ID == target.ID {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot follow yourself"})
		return
	}

	var existingFollow models.Follow
	result := ic.DB.Where("follower_id = ? AND following_id = ?", actor.ID, target.ID).First(&existingFollow)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		follow := models.Follow{FollowerID: actor.ID, FollowingID: target.ID}
		if err := ic.DB.Create(&follow).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusOK, gin.H{"message": "Followed"})
				return
			}
			slog.Error("Failed to create follow", "error", err.Error(), "request_id", c.GetString("request_id"))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Followed"})
		return
	}
	if result.Error != nil {
		slog.Error("Failed to check follow", "error", result.Error.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		return
	}

	if err := ic.DB.Where("follower_id = ? AND following_id = ?", actor.ID, target.ID).
		Delete(&models.Follow{}).Error; err != nil {
		slog.Error("Failed to delete follow", "error", err.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed"})
}

// resolveActor maps the token's email claim to a user record. It writes the
// response itself on failure; callers just bail out when ok is false.
func (ic *InteractionController) resolveActor(c *gin.Context, email string) (*models.User, bool) {
	var actor models.User
	if err := ic.DB.Where("email = ?", email).First(&actor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Current user not found"})
			return nil, false
		}
		slog.Error("Failed to resolve acting user", "error", err.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		return nil, false
	}
	return &actor, true
}
