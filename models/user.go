package models

import (
	"time"
)

// Roles assignable to an account. Registration defaults to RoleCitizen.
const (
	RoleCitizen  = "citizen"
	RoleAdmin    = "admin"
	RoleUrbanist = "urbanist"
)

type User struct {
	ID                  uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
	Username            string      `gorm:"not null" json:"username"`
	Email               string      `gorm:"unique;not null" json:"email"`
	Password            string      `gorm:"not null" json:"-"` // bcrypt hash, never exposed
	Role                string      `gorm:"not null;default:'citizen'" json:"role"`
	PhoneNumber         string      `json:"phone_number"`
	Address             string      `json:"address"`
	DateOfBirth         *time.Time  `json:"date_of_birth"`
	ProfilePictureURL   string      `gorm:"type:text" json:"profile_picture_url"`
	ResetToken          *string     `gorm:"index" json:"-"`
	ResetTokenExpiresAt *time.Time  `json:"-"`
	Reports             []Report    `json:"reports,omitempty" gorm:"foreignKey:UserID"`
	Posts               []ForumPost `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
	Comments            []Comment   `json:"comments,omitempty" gorm:"foreignKey:AuthorID"`
}
