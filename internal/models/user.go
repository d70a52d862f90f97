package models

import "time"

// Role values permitted for User.Role.
const (
	RoleUser      = "user"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

// User represents an application user.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:200;not null"`
	Role         string `gorm:"size:20;default:user"` // user, volunteer, admin
	Address      string `gorm:"size:255"`
	Pincode      string `gorm:"size:10"`
	Latitude     float64
	Longitude    float64
	IsBlocked    bool `gorm:"default:false"`
	CreatedAt    time.Time

	Requests []Request `gorm:"foreignKey:UserID"`
	Badges   []Badge   `gorm:"foreignKey:UserID"`
}

// Public returns the JSON projection exposed to clients (never the hash).
func (u *User) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"role":       u.Role,
		"address":    u.Address,
		"pincode":    u.Pincode,
		"latitude":   u.Latitude,
		"longitude":  u.Longitude,
		"is_blocked": u.IsBlocked,
		"created_at": u.CreatedAt,
	}
}
