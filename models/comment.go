package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	PostID    string    `gorm:"type:varchar(36);not null;index" json:"postId"`
	Post      Post      `json:"-" gorm:"foreignKey:PostID"`
	AuthorID  string    `gorm:"type:varchar(36);not null" json:"authorId"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
