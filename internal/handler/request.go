package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/23F3001886/CleanEarth/internal/middleware"
	"github.com/23F3001886/CleanEarth/internal/models"
	"github.com/23F3001886/CleanEarth/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequestHandler serves waste report submission and listing.
type RequestHandler struct {
	DB *gorm.DB
}

func NewRequestHandler(db *gorm.DB) *RequestHandler {
	return &RequestHandler{DB: db}
}

type createRequestReq struct {
	Email       string  `json:"email" binding:"required,email"`
	Pincode     string  `json:"pincode" binding:"required"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description" binding:"required"`
	Address     string  `json:"address" binding:"required"`
	Link        string  `json:"link"` // optional image URL
}

// Create registers a new waste report for the current user.
func (h *RequestHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req createRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := util.ValidatePincode(strings.TrimSpace(req.Pincode)); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid pincode")
		return
	}
	if err := util.ValidateCoordinates(req.Latitude, req.Longitude); err != nil {
		util.Error(c, http.StatusUnprocessableEntity, "Latitude and longitude must be valid numbers")
		return
	}

	wr := models.Request{
		Email:       req.Email,
		Pincode:     strings.TrimSpace(req.Pincode),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Description: req.Description,
		Address:     req.Address,
		Link:        req.Link,
		Status:      models.RequestPending,
		UserID:      user.ID,
	}
	if err := h.DB.Create(&wr).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to process request")
		return
	}

	util.Created(c, gin.H{
		"message": "Request created successfully",
		"id":      wr.ID,
		"request": wr,
	})
}

// ListOwn returns the current user's reports.
func (h *RequestHandler) ListOwn(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	var requests []models.Request
	if err := h.DB.Where("user_id = ?", user.ID).Find(&requests).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to process request")
		return
	}
	util.JSON(c, requests)
}

// ListForVolunteer returns reports in the volunteer's pincode.
func (h *RequestHandler) ListForVolunteer(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}
	if user.Role != models.RoleVolunteer && user.Role != models.RoleAdmin {
		util.Error(c, http.StatusForbidden, "Not authorized")
		return
	}
	if user.Pincode == "" {
		util.Error(c, http.StatusBadRequest, "No pincode associated with your account")
		return
	}

	var requests []models.Request
	if err := h.DB.Where("pincode = ?", user.Pincode).Find(&requests).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to process request")
		return
	}
	util.JSON(c, requests)
}

// Manage returns all reports, or a single one via ?id=.
func (h *RequestHandler) Manage(c *gin.Context) {
	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			util.Error(c, http.StatusBadRequest, "Invalid request ID")
			return
		}
		var wr models.Request
		if err := h.DB.First(&wr, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				util.Error(c, http.StatusNotFound, "Request not found")
			} else {
				util.Error(c, http.StatusInternalServerError, "Failed to process request")
			}
			return
		}
		util.JSON(c, wr)
		return
	}

	var requests []models.Request
	if err := h.DB.Find(&requests).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to process request")
		return
	}
	util.JSON(c, requests)
}

// GetByID returns a single report, used by camp registration.
func (h *RequestHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var wr models.Request
	if err := h.DB.First(&wr, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Request not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to process request")
		}
		return
	}
	util.JSON(c, wr)
}
