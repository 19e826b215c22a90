package models

import (
	"time"
)

// PostLike is one account's like on one forum post. The composite unique
// index makes the one-like-per-user invariant hold even under concurrent
// toggle requests.
type PostLike struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_likes_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_likes_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	Post ForumPost `json:"-" gorm:"foreignKey:PostID"`
	User User      `json:"-" gorm:"foreignKey:UserID"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
