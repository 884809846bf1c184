package controllers

import (
	"time"

	"github.com/mingle-social/api-go/models"
)

// Response shapes mirror the contract the frontend already consumes:
// camelCase entity fields, aggregate counts under "_count".

type PostCounts struct {
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

type PostResponse struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	AuthorID  string            `json:"authorId"`
	CreatedAt time.Time         `json:"createdAt"`
	Author    models.PublicUser `json:"author"`
}

type CommentResponse struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	PostID    string            `json:"postId"`
	AuthorID  string            `json:"authorId"`
	CreatedAt time.Time         `json:"createdAt"`
	Author    models.PublicUser `json:"author"`
}

type FeedPost struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	AuthorID  string            `json:"authorId"`
	CreatedAt time.Time         `json:"createdAt"`
	Author    models.PublicUser `json:"author"`
	Count     PostCounts        `json:"_count"`
	IsLiked   bool              `json:"isLiked"`
}
