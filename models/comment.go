package models

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID"`
	PostID    uint      `gorm:"not null" json:"post_id"`
	Post      ForumPost `json:"-" gorm:"foreignKey:PostID"`
}
