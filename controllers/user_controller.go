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

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (uc *UserController) GetCurrentUser(c *gin.Context) {
	claims := utils.GetClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", claims.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		slog.Error("Failed to load current user", "error", err.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		return
	}

	var postsCount, followersCount, followingCount int64
	uc.DB.Model(&models.Post{}).Where("author_id = ?", user.ID).Count(&postsCount)
	uc.DB.Model(&models.Follow{}).Where("following_id = ?", user.ID).Count(&followersCount)
	uc.DB.Model(&models.Follow{}).Where("follower_id = ?", user.ID).Count(&followingCount)

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"image":     user.Image,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
		"_count": gin.H{
			"posts":     postsCount,
			"followers": followersCount,
			"following": followingCount,
		},
	})
}

func (uc *UserController) GetUserByID(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		slog.Error("Failed to load user", "error", err.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		return
	}

	var posts []models.Post
	if err := uc.DB.Where("author_id = ?", user.ID).
		Order("created_at DESC").
		Limit(5).
		Find(&posts).Error; err != nil {
		slog.Error("Failed to load user posts", "error", err.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		return
	}

	var followersCount, followingCount int64
	uc.DB.Model(&models.Follow{}).Where("following_id = ?", user.ID).Count(&followersCount)
	uc.DB.Model(&models.Follow{}).Where("follower_id = ?", user.ID).Count(&followingCount)

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"image":     user.Image,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
		"posts":     posts,
		"_count": gin.H{
			"followers": followersCount,
			"following": followingCount,
		},
	})
}
