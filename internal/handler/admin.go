package handler

import (
	"net/http"
	"strconv"

	"github.com/23F3001886/CleanEarth/internal/models"
	"github.com/23F3001886/CleanEarth/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHandler serves user moderation and badge awarding. Routes using it
// sit behind RequireRole(admin).
type AdminHandler struct {
	DB *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{DB: db}
}

// ListUsers returns every account for the moderation table.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Find(&users).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load users")
		return
	}
	out := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	util.JSON(c, out)
}

// ToggleBlock flips a user's blocked flag.
func (h *AdminHandler) ToggleBlock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "User not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to load user")
		}
		return
	}

	user.IsBlocked = !user.IsBlocked
	if err := h.DB.Save(&user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	msg := "User unblocked successfully"
	if user.IsBlocked {
		msg = "User blocked successfully"
	}
	util.JSON(c, gin.H{
		"message": msg,
		"user":    user.Public(),
	})
}

type awardBadgeReq struct {
	UserID      uint   `json:"user_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// AwardBadge grants a badge to a user.
func (h *AdminHandler) AwardBadge(c *gin.Context) {
	var req awardBadgeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	var user models.User
	if err := h.DB.First(&user, req.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "User not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to load user")
		}
		return
	}

	icon := req.Icon
	if icon == "" {
		icon = "trophy"
	}
	badge := models.Badge{
		Name:        req.Name,
		Description: req.Description,
		Icon:        icon,
		UserID:      user.ID,
	}
	if err := h.DB.Create(&badge).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to award badge")
		return
	}
	util.JSON(c, gin.H{
		"message": "Badge awarded successfully",
		"badge":   badge,
	})
}
