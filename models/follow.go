package models

import (
	"time"
)

// Follow is a directed edge; at most one row per ordered pair, enforced by
// the composite primary key. Self-follows are rejected at the handler.
type Follow struct {
	FollowerID  string    `gorm:"primaryKey;type:varchar(36)" json:"followerId"`
	FollowingID string    `gorm:"primaryKey;type:varchar(36)" json:"followingId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Follower  User `json:"-" gorm:"foreignKey:FollowerID"`
	Following User `json:"-" gorm:"foreignKey:FollowingID"`
}
