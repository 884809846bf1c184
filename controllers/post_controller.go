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

type PostController struct {
	DB *gorm.DB
}

type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db}
}

// CreatePost godoc
// @Summary Create a new post
// @Description Persists a post authored by the authenticated user
// @Tags posts
// @Accept json
// @Produce json
// @Param post body CreatePostRequest true "Post content"
// @Success 200 {object} controllers.PostResponse
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	claims := utils.GetClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Content is required"})
		return
	}

	author, ok := pc.resolveAuthor(c, claims.Email)
	if !ok {
		return
	}

	post := models.Post{
		Content:  req.Content,
		AuthorID: author.ID,
	}
	if err := pc.DB.Create(&post).Error; err != nil {
		slog.Error("Failed to create post", "error", err.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusOK, PostResponse{
		ID:        post.ID,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		Author:    author.Public(),
	})
}

// CreateComment godoc
// @Summary Comment on a post
// @Description Persists a comment on the path-specified post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param comment body CreateCommentRequest true "Comment content"
// @Success 200 {object} controllers.CommentResponse
// @Router /posts/{id}/comment [post]
func (pc *PostController) CreateComment(c *gin.Context) {
	claims := utils.GetClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Content is required"})
		return
	}

	author, ok := pc.resolveAuthor(c, claims.Email)
	if !ok {
		return
	}

	var post models.Post
	if err := pc.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		slog.Error("Failed to load post", "error", err.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	comment := models.Comment{
		Content:  req.Content,
		PostID:   post.ID,
		AuthorID: author.ID,
	}
	if err := pc.DB.Create(&comment).Error; err != nil {
		slog.Error("Failed to create comment", "error", err.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.JSON(http.StatusOK, CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		CreatedAt: comment.CreatedAt,
		Author:    author.Public(),
	})
}

func (pc *PostController) resolveAuthor(c *gin.Context, email string) (*models.User, bool) {
	var author models.User
	if err := pc.DB.Where("email = ?", email).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return nil, false
		}
		slog.Error("Failed to resolve author", "error", err.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		return nil, false
	}
	return &author, true
}
