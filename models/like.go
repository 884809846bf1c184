package models

import (
	"time"
)

// Like is identified by its (post, user) pair; the composite primary key is
// what keeps a concurrent double-like from producing two rows.
type Like struct {
	PostID    string    `gorm:"primaryKey;type:varchar(36)" json:"postId"`
	UserID    string    `gorm:"primaryKey;type:varchar(36)" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	User User `json:"-" gorm:"foreignKey:UserID"`
	Post Post `json:"-" gorm:"foreignKey:PostID"`
}
