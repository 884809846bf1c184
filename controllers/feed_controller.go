package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mingle-social/api-go/models"
	"github.com/mingle-social/api-go/utils"
	"gorm.io/gorm"
)

type FeedController struct {
	DB *gorm.DB
}

// FeedQuery is optional; without page/pageSize every post is returned, which
// is the contract the frontend was built against.
type FeedQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

func NewFeedController(db *gorm.DB) *FeedController {
	return &FeedController{DB: db}
}

type feedRow struct {
	ID            string
	Content       string
	AuthorID      string
	CreatedAt     time.Time
	AuthorName    string
	AuthorImage   string
	LikesCount    int64
	CommentsCount int64
	IsLiked       bool
}

// GetFeed godoc
// @Summary Get the post feed
// @Description Returns posts newest-first with author, counts and a per-actor isLiked flag
// @Tags posts
// @Produce json
// @Param page query integer false "Page number"
// @Param pageSize query integer false "Items per page"
// @Success 200 {array} controllers.FeedPost
// @Router /posts [get]
func (fc *FeedController) GetFeed(c *gin.Context) {
	claims := utils.GetClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var query FeedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid pagination parameters"})
		return
	}

	// The isLiked subquery keys on the actor's email rather than a resolved
	// user id, so an actor with no user record simply sees false everywhere.
	db := fc.DB.Model(&models.Post{}).
		Select(`
			posts.id,
			posts.content,
			posts.author_id,
			posts.created_at,
			users.name as author_name,
			users.image as author_image,
			(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count,
			(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count,
			EXISTS(
				SELECT 1 FROM likes
				JOIN users liker ON liker.id = likes.user_id
				WHERE likes.post_id = posts.id AND liker.email = ?
			) as is_liked
		`, claims.Email).
		Joins("JOIN users ON users.id = posts.author_id").
		Order("posts.created_at DESC")

	if query.PageSize > 0 {
		page := query.Page
		if page == 0 {
			page = 1
		}
		db = db.Offset((page - 1) * query.PageSize).Limit(query.PageSize)
	}

	var rows []feedRow
	if err := db.Find(&rows).Error; err != nil {
		slog.Error("Failed to load feed", "error", err.Error(), "request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feed"})
		return
	}

	feed := make([]FeedPost, 0, len(rows))
	for _, row := range rows {
		feed = append(feed, FeedPost{
			ID:        row.ID,
			Content:   row.Content,
			AuthorID:  row.AuthorID,
			CreatedAt: row.CreatedAt,
			Author: models.PublicUser{
				ID:    row.AuthorID,
				Name:  row.AuthorName,
				Image: row.AuthorImage,
			},
			Count: PostCounts{
				Likes:    row.LikesCount,
				Comments: row.CommentsCount,
			},
			IsLiked: row.IsLiked,
		})
	}

	c.JSON(http.StatusOK, feed)
}
