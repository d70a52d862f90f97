package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/23F3001886/CleanEarth/internal/middleware"
	"github.com/23F3001886/CleanEarth/internal/models"
	"github.com/23F3001886/CleanEarth/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler serves register/login/logout and the auth probe.
type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

func NewAuthHandler(db *gorm.DB, jwtSecret, issuer string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		DB:        db,
		JWTSecret: jwtSecret,
		Issuer:    issuer,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

// ---------- register ----------

type registerReq struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	Address   string  `json:"address"`
	Pincode   string  `json:"pincode"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Role      string  `json:"role"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if err := util.ValidateRole(role); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid role")
		return
	}
	if req.Pincode != "" {
		if err := util.ValidatePincode(req.Pincode); err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid pincode")
			return
		}
	}

	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("email = ?", req.Email).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to check user")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, "User already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Address:      req.Address,
		Pincode:      req.Pincode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// instant login after registration
	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, user.ID, user.Email, user.Role, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	util.Created(c, gin.H{
		"message":      "User registered successfully",
		"user_id":      user.ID,
		"access_token": token,
		"user":         user.Public(),
	})
}

// ---------- login ----------

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"` // optional role assertion
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Missing email or password")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to load user")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// the login form can assert a role; a mismatch is rejected outright
	if req.Role != "" && user.Role != req.Role {
		util.Error(c, http.StatusForbidden, "User is not a "+req.Role)
		return
	}

	if user.IsBlocked {
		util.Error(c, http.StatusForbidden, "Your account has been blocked")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, user.ID, user.Email, user.Role, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	util.JSON(c, gin.H{
		"message":      "Login successful",
		"access_token": token,
		"user":         user.Public(),
	})
}

// ---------- logout ----------

func (h *AuthHandler) Logout(c *gin.Context) {
	v, ok := c.Get("claims")
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}
	claims, ok := v.(*util.Claims)
	if !ok || claims == nil {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	var expires time.Time
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time
	}
	revoked := models.RevokedToken{
		JTI:       claims.ID,
		UserID:    claims.UserID,
		ExpiresAt: expires,
	}
	if err := h.DB.Create(&revoked).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	// prune entries whose token already expired anyway
	_ = h.DB.Where("expires_at < ?", time.Now()).Delete(&models.RevokedToken{}).Error

	util.JSON(c, gin.H{"message": "Successfully logged out"})
}

// AuthCheck reports whether the presented token maps to a live session.
func (h *AuthHandler) AuthCheck(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}
	util.JSON(c, gin.H{
		"authenticated": true,
		"user":          user.Public(),
	})
}
