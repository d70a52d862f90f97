// Package views holds the page-level view controllers, the route guard and
// the navigation shells. Every view follows the same data-sync contract:
// verify the session on mount, issue independent fetches into its own state
// slices, surface errors inline and update projections in place after
// mutations.
package views

import "time"

// Request is the client projection of a waste report.
type Request struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Pincode     string    `json:"pincode"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Link        string    `json:"link"`
	Status      string    `json:"status"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Camp is the client projection of a cleanup campaign.
type Camp struct {
	ID                  uint   `json:"id"`
	Name                string `json:"name"`
	RequestID           uint   `json:"request_id"`
	Date                string `json:"date"`
	NumVolunteers       int    `json:"num_volunteers"`
	Timing              string `json:"timing"`
	Description         string `json:"description"`
	Status              string `json:"status"`
	CreatorID           uint   `json:"creator_id"`
	VolunteerCount      int    `json:"volunteer_count"`
	ActualParticipants  int    `json:"actual_participants"`
	WasteCollected      string `json:"waste_collected"`
	ImageLink           string `json:"image_link"`
	CompletionNotes     string `json:"completion_notes"`
	Location            string `json:"location"`
	IsParticipating     bool   `json:"isParticipating"`
	ParticipationCount  int    `json:"participationCount"`
	SpotsLeft           int    `json:"spotsLeft"`
	ParticipationStatus string `json:"participation_status"`
}

// Badge is the client projection of an awarded badge.
type Badge struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// AdminUser is the moderation-table projection of an account.
type AdminUser struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Pincode   string `json:"pincode"`
	IsBlocked bool   `json:"is_blocked"`
}

// LeaderboardRow is one ranked leaderboard entry.
type LeaderboardRow struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	CampsAttended  int    `json:"campsAttended"`
	CampsCompleted int    `json:"campsCompleted"`
	Points         int    `json:"points"`
	Badges         int    `json:"badges"`
}
