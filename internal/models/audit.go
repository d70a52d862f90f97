package models

import "time"

// AuditLog records moderation and other mutating actions for review.
type AuditLog struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    *uint  `gorm:"index"`
	Method    string `gorm:"size:10"`
	Path      string `gorm:"size:255"`
	Action    string `gorm:"size:2000"`
	IP        string `gorm:"size:64"`
	UserAgent string `gorm:"size:255"`
	CreatedAt time.Time
}
