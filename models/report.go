package models

import (
	"time"
)

// Report statuses. A freshly submitted report is always StatusSubmitted;
// the other values are set by admins through the status update endpoint.
const (
	StatusSubmitted  = "soumis"
	StatusPending    = "en attente"
	StatusInProgress = "en cours"
	StatusResolved   = "résolu"
)

// ValidReportStatus reports whether s is one of the allowed status values.
func ValidReportStatus(s string) bool {
	switch s {
	case StatusSubmitted, StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

type Report struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Description string    `gorm:"not null;type:text" json:"description"`
	Location    string    `gorm:"not null" json:"location"`
	ImageURL    string    `json:"image"`
	Status      string    `gorm:"not null;default:'soumis'" json:"status"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	User        User      `json:"-" gorm:"foreignKey:UserID"`
}
