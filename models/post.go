package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  string    `gorm:"type:varchar(36);not null;index" json:"authorId"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"createdAt"`

	Comments []Comment `json:"-" gorm:"foreignKey:PostID"`
	Likes    []Like    `json:"-" gorm:"foreignKey:PostID"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
