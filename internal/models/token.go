package models

import "time"

// RevokedToken blacklists a JWT by its jti claim after logout. Stored in the
// database so a restart does not resurrect revoked tokens.
type RevokedToken struct {
	JTI       string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"index"`
	ExpiresAt time.Time `gorm:"index"` // rows past this are safe to prune
	CreatedAt time.Time
}
