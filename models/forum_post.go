package models

import (
	"time"
)

type ForumPost struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID"`
	Likes     []PostLike `json:"-" gorm:"foreignKey:PostID"`
	Comments  []Comment  `json:"-" gorm:"foreignKey:PostID"`
}

func (ForumPost) TableName() string {
	return "forum_posts"
}
