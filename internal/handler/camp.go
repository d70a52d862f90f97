package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/23F3001886/CleanEarth/internal/middleware"
	"github.com/23F3001886/CleanEarth/internal/models"
	"github.com/23F3001886/CleanEarth/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CampHandler serves the cleanup camp lifecycle: creation, browsing,
// participation and completion.
type CampHandler struct {
	DB *gorm.DB
}

func NewCampHandler(db *gorm.DB) *CampHandler {
	return &CampHandler{DB: db}
}

func (h *CampHandler) loadCamp(c *gin.Context, id int) (*models.Campaign, bool) {
	var camp models.Campaign
	err := h.DB.Preload("Request").Preload("Volunteers").First(&camp, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Campaign not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to process request")
		}
		return nil, false
	}
	return &camp, true
}

// ---------- creation ----------

type registerCampReq struct {
	RequestID          uint   `json:"requestId" binding:"required"`
	CampName           string `json:"campName" binding:"required"`
	DateOfCamp         string `json:"dateOfCamp" binding:"required"`
	TimeOfCamp         string `json:"timeOfCamp" binding:"required"`
	NumberOfVolunteers int    `json:"numberOfVolunteers" binding:"required"`
	Description        string `json:"description" binding:"required"`
}

// Register creates a camp against a waste request (volunteer flow).
func (h *CampHandler) Register(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}
	if user.Role != models.RoleVolunteer && user.Role != models.RoleAdmin {
		util.Error(c, http.StatusForbidden, "Not authorized to create camps")
		return
	}

	var req registerCampReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	date, err := time.Parse("2006-01-02", req.DateOfCamp)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	var wr models.Request
	if err := h.DB.First(&wr, req.RequestID).Error; err != nil {
		util.Error(c, http.StatusBadRequest, "Referenced waste request does not exist")
		return
	}

	camp := models.Campaign{
		Name:          req.CampName,
		RequestID:     req.RequestID,
		Date:          date,
		NumVolunteers: req.NumberOfVolunteers,
		Timing:        req.TimeOfCamp,
		Description:   req.Description,
		Status:        models.CampPlanned,
		CreatorID:     user.ID,
	}
	if err := h.DB.Create(&camp).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create campaign")
		return
	}

	// the pending report moves to in-progress once a camp targets it
	_ = h.DB.Model(&wr).Update("status", models.RequestInProgress).Error

	camp.Request = &wr
	util.Created(c, gin.H{
		"message":  "Campaign created successfully",
		"id":       camp.ID,
		"campaign": camp.ToDict(),
	})
}

// ---------- manage (admin/creator CRUD) ----------

type manageCampReq struct {
	Name          string `json:"name"`
	RequestID     uint   `json:"request_id"`
	Date          string `json:"date"`
	NumVolunteers int    `json:"num_volunteers"`
	Timing        string `json:"timing"`
	Description   string `json:"description"`
	Status        string `json:"status"`
}

// Manage lists all camps, or a single one via ?id=.
func (h *CampHandler) Manage(c *gin.Context) {
	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			util.Error(c, http.StatusBadRequest, "Invalid campaign ID")
			return
		}
		camp, ok := h.loadCamp(c, id)
		if !ok {
			return
		}
		util.JSON(c, camp.ToDict())
		return
	}

	var camps []models.Campaign
	if err := h.DB.Preload("Request").Preload("Volunteers").Find(&camps).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to process request")
		return
	}
	out := make([]map[string]interface{}, 0, len(camps))
	for i := range camps {
		out = append(out, camps[i].ToDict())
	}
	util.JSON(c, out)
}

// Update modifies a camp; only the creator or an admin may do so.
func (h *CampHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "No campaign ID provided")
		return
	}
	camp, ok := h.loadCamp(c, id)
	if !ok {
		return
	}
	if camp.CreatorID != user.ID && user.Role != models.RoleAdmin {
		util.Error(c, http.StatusForbidden, "Not authorized to update this campaign")
		return
	}

	var req manageCampReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	if req.Name != "" {
		camp.Name = req.Name
	}
	if req.RequestID != 0 {
		var wr models.Request
		if err := h.DB.First(&wr, req.RequestID).Error; err != nil {
			util.Error(c, http.StatusBadRequest, "Referenced waste request does not exist")
			return
		}
		camp.RequestID = req.RequestID
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		camp.Date = date
	}
	if req.NumVolunteers != 0 {
		camp.NumVolunteers = req.NumVolunteers
	}
	if req.Timing != "" {
		camp.Timing = req.Timing
	}
	if req.Description != "" {
		camp.Description = req.Description
	}
	if req.Status != "" {
		camp.Status = req.Status
	}

	if err := h.DB.Save(camp).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to update campaign")
		return
	}
	util.JSON(c, gin.H{
		"message":  "Campaign updated successfully",
		"campaign": camp.ToDict(),
	})
}

// Delete removes a camp; only the creator or an admin may do so.
func (h *CampHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "No campaign ID provided")
		return
	}
	camp, ok := h.loadCamp(c, id)
	if !ok {
		return
	}
	if camp.CreatorID != user.ID && user.Role != models.RoleAdmin {
		util.Error(c, http.StatusForbidden, "Not authorized to delete this campaign")
		return
	}

	if err := h.DB.Where("campaign_id = ?", camp.ID).Delete(&models.CampaignVolunteer{}).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to delete campaign")
		return
	}
	if err := h.DB.Delete(&models.Campaign{}, camp.ID).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to delete campaign")
		return
	}
	util.JSON(c, gin.H{"message": "Campaign deleted successfully"})
}

// ---------- browsing ----------

// ListForUser returns planned camps in the user's pincode with the caller's
// participation info, feeding the home page's join-campaign feed.
func (h *CampHandler) ListForUser(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}
	if user.Pincode == "" {
		util.Error(c, http.StatusBadRequest, "No pincode associated with your account")
		return
	}

	var camps []models.Campaign
	err := h.DB.Preload("Request").Preload("Volunteers").
		Joins("JOIN requests ON campaigns.request_id = requests.id").
		Where("campaigns.status = ? AND requests.pincode = ?", models.CampPlanned, user.Pincode).
		Find(&camps).Error
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to process request")
		return
	}

	out := make([]map[string]interface{}, 0, len(camps))
	for i := range camps {
		camp := &camps[i]
		d := camp.ToDict()
		participating := false
		for _, v := range camp.Volunteers {
			if v.VolunteerID == user.ID {
				participating = true
				break
			}
		}
		count := len(camp.Volunteers)
		spots := camp.NumVolunteers - count
		if spots < 0 {
			spots = 0
		}
		d["isParticipating"] = participating
		d["participationCount"] = count
		d["spotsLeft"] = spots
		out = append(out, d)
	}
	util.JSON(c, out)
}

// ListForVolunteer returns every camp in the volunteer's pincode, any status,
// with the caller's persisted participation status. The dashboard splits
// upcoming vs completed client-side.
func (h *CampHandler) ListForVolunteer(c *gin.Context) {
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

	var camps []models.Campaign
	err := h.DB.Preload("Request").Preload("Volunteers").
		Joins("JOIN requests ON campaigns.request_id = requests.id").
		Where("requests.pincode = ?", user.Pincode).
		Find(&camps).Error
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to process request")
		return
	}

	out := make([]map[string]interface{}, 0, len(camps))
	for i := range camps {
		camp := &camps[i]
		d := camp.ToDict()
		for _, v := range camp.Volunteers {
			if v.VolunteerID == user.ID {
				d["participation_status"] = v.Status
				break
			}
		}
		out = append(out, d)
	}
	util.JSON(c, out)
}

// ---------- participation ----------

// Participate joins the caller to a camp, enforcing capacity and uniqueness.
func (h *CampHandler) Participate(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid campaign ID")
		return
	}
	camp, ok := h.loadCamp(c, id)
	if !ok {
		return
	}

	var existing int64
	h.DB.Model(&models.CampaignVolunteer{}).
		Where("campaign_id = ? AND volunteer_id = ?", camp.ID, user.ID).
		Count(&existing)
	if existing > 0 {
		util.Error(c, http.StatusBadRequest, "Already participating in this camp")
		return
	}

	var count int64
	h.DB.Model(&models.CampaignVolunteer{}).
		Where("campaign_id = ?", camp.ID).
		Count(&count)
	if int(count) >= camp.NumVolunteers {
		util.Error(c, http.StatusBadRequest, "This camp is already full")
		return
	}

	participation := models.CampaignVolunteer{
		CampaignID:  camp.ID,
		VolunteerID: user.ID,
		Status:      models.ParticipationJoined,
		JoinedAt:    time.Now(),
	}
	if err := h.DB.Create(&participation).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to process request")
		return
	}

	newCount := int(count) + 1
	spots := camp.NumVolunteers - newCount
	if spots < 0 {
		spots = 0
	}
	util.JSON(c, gin.H{
		"message":            "Successfully joined the campaign",
		"participationCount": newCount,
		"spotsLeft":          spots,
		"campDetails":        camp.ToDict(),
	})
}

// Join adds a volunteer to an active camp (volunteer-only entry point).
func (h *CampHandler) Join(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}
	if user.Role != models.RoleVolunteer {
		util.Error(c, http.StatusForbidden, "Only volunteers can join campaigns")
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid campaign ID")
		return
	}
	camp, ok := h.loadCamp(c, id)
	if !ok {
		return
	}
	if camp.Status != models.CampPlanned && camp.Status != models.CampInProgress {
		util.Error(c, http.StatusBadRequest, "Cannot join campaign that is not active")
		return
	}

	var existing int64
	h.DB.Model(&models.CampaignVolunteer{}).
		Where("campaign_id = ? AND volunteer_id = ?", camp.ID, user.ID).
		Count(&existing)
	if existing > 0 {
		util.Error(c, http.StatusBadRequest, "Already joined this campaign")
		return
	}

	participation := models.CampaignVolunteer{
		CampaignID:  camp.ID,
		VolunteerID: user.ID,
		Status:      models.ParticipationJoined,
		JoinedAt:    time.Now(),
	}
	if err := h.DB.Create(&participation).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to process request")
		return
	}
	util.JSON(c, gin.H{
		"message":  "Successfully joined the campaign",
		"campaign": camp.ToDict(),
	})
}

// Leave removes the caller's participation record.
func (h *CampHandler) Leave(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid campaign ID")
		return
	}

	var record models.CampaignVolunteer
	err = h.DB.Where("campaign_id = ? AND volunteer_id = ?", id, user.ID).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Not participating in this campaign")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to process request")
		}
		return
	}
	if err := h.DB.Delete(&record).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to process request")
		return
	}
	util.JSON(c, gin.H{"message": "Successfully left the campaign"})
}

type respondReq struct {
	Response string `json:"response" binding:"required,oneof=confirmed declined"`
}

// Respond persists a volunteer's confirm/decline answer for a joined camp.
func (h *CampHandler) Respond(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid campaign ID")
		return
	}

	var req respondReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Response must be confirmed or declined")
		return
	}

	var record models.CampaignVolunteer
	err = h.DB.Where("campaign_id = ? AND volunteer_id = ?", id, user.ID).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Not participating in this campaign")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to process request")
		}
		return
	}

	record.Status = req.Response
	if err := h.DB.Save(&record).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to process request")
		return
	}
	util.JSON(c, gin.H{
		"message":              "Participation updated",
		"participation_status": record.Status,
	})
}

// ---------- completion ----------

type completeCampReq struct {
	ActualParticipants int    `json:"actual_participants"`
	WasteCollected     string `json:"waste_collected"`
	ImageLink          string `json:"image_link"`
	CompletionNotes    string `json:"completion_notes"`
}

// Complete records completion details, marks the camp completed and cascades
// the originating request's status.
func (h *CampHandler) Complete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid campaign ID")
		return
	}
	camp, ok := h.loadCamp(c, id)
	if !ok {
		return
	}
	if camp.CreatorID != user.ID && user.Role != models.RoleAdmin {
		util.Error(c, http.StatusForbidden, "Not authorized to complete this campaign")
		return
	}

	var req completeCampReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "No data provided")
		return
	}

	now := time.Now()
	camp.ActualParticipants = req.ActualParticipants
	camp.WasteCollected = req.WasteCollected
	camp.ImageLink = req.ImageLink
	camp.CompletionNotes = req.CompletionNotes
	camp.Status = models.CampCompleted
	camp.CompletedAt = &now

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(camp).Error; err != nil {
			return err
		}
		return tx.Model(&models.Request{}).
			Where("id = ?", camp.RequestID).
			Update("status", models.RequestCompleted).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to complete campaign")
		return
	}

	if camp.Request != nil {
		camp.Request.Status = models.RequestCompleted
	}
	util.JSON(c, gin.H{
		"message":  "Campaign marked as completed successfully",
		"campaign": camp.ToDict(),
	})
}

// MarkCompleted flips a camp to completed without detail fields.
func (h *CampHandler) MarkCompleted(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "Authorization required")
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid campaign ID")
		return
	}
	camp, ok := h.loadCamp(c, id)
	if !ok {
		return
	}
	if camp.CreatorID != user.ID && user.Role != models.RoleAdmin {
		util.Error(c, http.StatusForbidden, "Not authorized")
		return
	}

	now := time.Now()
	camp.Status = models.CampCompleted
	camp.CompletedAt = &now
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(camp).Error; err != nil {
			return err
		}
		return tx.Model(&models.Request{}).
			Where("id = ?", camp.RequestID).
			Update("status", models.RequestCompleted).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to complete campaign")
		return
	}
	util.JSON(c, gin.H{
		"message":  "Campaign marked as completed",
		"campaign": camp.ToDict(),
	})
}
