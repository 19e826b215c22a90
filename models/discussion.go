package models

import (
	"time"
)

type Discussion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null;type:text" json:"description"`
	Category    string    `gorm:"not null" json:"category"`
	Content     string    `gorm:"not null;type:text" json:"content"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	User        User      `json:"-" gorm:"foreignKey:UserID"`
}
