package database

import (
	"fmt"

	"github.com/23F3001886/CleanEarth/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Request{},
		&models.Campaign{},
		&models.CampaignVolunteer{},
		&models.Badge{},
		&models.RevokedToken{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
