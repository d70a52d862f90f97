package models

import "time"

// Request status values.
const (
	RequestPending    = "pending"
	RequestInProgress = "in-progress"
	RequestCompleted  = "completed"
)

// Request is a user-submitted report of a waste location needing cleanup.
type Request struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"size:100;not null"`
	Pincode     string    `json:"pincode" gorm:"size:10;index;not null"`
	Latitude    float64   `json:"latitude" gorm:"not null"`
	Longitude   float64   `json:"longitude" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Address     string    `json:"address" gorm:"size:255"`
	Link        string    `json:"link" gorm:"size:255"` // optional image URL
	Status      string    `json:"status" gorm:"size:20;default:pending"`
	UserID      uint      `json:"user_id" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
}
