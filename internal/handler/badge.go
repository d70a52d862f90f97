package handler

import (
	"net/http"

	"github.com/23F3001886/CleanEarth/internal/middleware"
	"github.com/23F3001886/CleanEarth/internal/models"
	"github.com/23F3001886/CleanEarth/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListBadges returns the current user's badges.
func ListBadges(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			util.Error(c, http.StatusUnauthorized, "Authorization required")
			return
		}

		var badges []models.Badge
		if err := db.Where("user_id = ?", user.ID).Find(&badges).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, "Failed to load badges")
			return
		}
		util.JSON(c, badges)
	}
}
