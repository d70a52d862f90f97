package handler

import (
	"net/http"

	"github.com/23F3001886/CleanEarth/internal/middleware"
	"github.com/23F3001886/CleanEarth/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProfile returns the current user's profile.
func GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}
	util.JSON(c, user.Public())
}

type updateProfileReq struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Pincode   string   `json:"pincode"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// UpdateProfile updates the allowed profile fields.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			util.Error(c, http.StatusUnauthorized, "Authorization required")
			return
		}

		var req updateProfileReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid payload")
			return
		}

		if req.Name != "" {
			user.Name = req.Name
		}
		if req.Address != "" {
			user.Address = req.Address
		}
		if req.Pincode != "" {
			if err := util.ValidatePincode(req.Pincode); err != nil {
				util.Error(c, http.StatusBadRequest, "Invalid pincode")
				return
			}
			user.Pincode = req.Pincode
		}
		if req.Latitude != nil {
			user.Latitude = *req.Latitude
		}
		if req.Longitude != nil {
			user.Longitude = *req.Longitude
		}

		if err := db.Save(user).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, "Failed to update profile")
			return
		}
		util.JSON(c, gin.H{
			"message": "Profile updated successfully",
			"user":    user.Public(),
		})
	}
}
