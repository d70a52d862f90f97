package models

import "time"

// Campaign status values.
const (
	CampPlanned    = "planned"
	CampInProgress = "in-progress"
	CampCompleted  = "completed"
)

// Campaign is a scheduled cleanup camp created by a volunteer against a
// waste request.
type Campaign struct {
	ID            uint      `gorm:"primaryKey"`
	Name          string    `gorm:"size:100"`
	RequestID     uint      `gorm:"index"`
	Date          time.Time `gorm:"not null"`
	NumVolunteers int       `gorm:"default:0"` // capacity
	Timing        string    `gorm:"size:50"`
	Description   string    `gorm:"type:text"`
	Status        string    `gorm:"size:20;default:planned"`
	CreatorID     uint      `gorm:"index"`
	CreatedAt     time.Time

	// completion details
	ActualParticipants int    `gorm:"default:0"`
	WasteCollected     string `gorm:"size:255"`
	ImageLink          string `gorm:"size:255"`
	CompletionNotes    string `gorm:"type:text"`
	CompletedAt        *time.Time

	Request    *Request            `gorm:"foreignKey:RequestID"`
	Volunteers []CampaignVolunteer `gorm:"foreignKey:CampaignID"`
}

// ToDict builds the wire projection, matching what views consume.
func (c *Campaign) ToDict() map[string]interface{} {
	var date, completedAt interface{}
	if !c.Date.IsZero() {
		date = c.Date.Format("2006-01-02")
	}
	if c.CompletedAt != nil {
		completedAt = c.CompletedAt
	}
	var location interface{}
	if c.Request != nil {
		location = c.Request.Address
	}
	return map[string]interface{}{
		"id":                  c.ID,
		"name":                c.Name,
		"request_id":          c.RequestID,
		"date":                date,
		"num_volunteers":      c.NumVolunteers,
		"timing":              c.Timing,
		"description":         c.Description,
		"status":              c.Status,
		"creator_id":          c.CreatorID,
		"volunteer_count":     len(c.Volunteers),
		"created_at":          c.CreatedAt,
		"actual_participants": c.ActualParticipants,
		"waste_collected":     c.WasteCollected,
		"image_link":          c.ImageLink,
		"completion_notes":    c.CompletionNotes,
		"completed_at":        completedAt,
		"location":            location,
	}
}

// Participation status values. Persisted server-side so the volunteer
// dashboard reflects the same state on every device.
const (
	ParticipationJoined    = "joined"
	ParticipationConfirmed = "confirmed"
	ParticipationDeclined  = "declined"
)

// CampaignVolunteer records a volunteer's participation in a campaign.
type CampaignVolunteer struct {
	ID          uint   `gorm:"primaryKey"`
	CampaignID  uint   `gorm:"index;not null"`
	VolunteerID uint   `gorm:"index;not null"`
	Status      string `gorm:"size:20;default:joined"` // joined, confirmed, declined
	JoinedAt    time.Time

	Volunteer *User `gorm:"foreignKey:VolunteerID"`
}
