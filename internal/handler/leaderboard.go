package handler

import (
	"net/http"
	"sort"

	"github.com/23F3001886/CleanEarth/internal/models"
	"github.com/23F3001886/CleanEarth/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Scoring policy: 10 points per completed camp a volunteer participated in,
// plus 5 points per badge held. Ties break by camps attended, then name.
const (
	pointsPerCompletedCamp = 10
	pointsPerBadge         = 5
)

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	CampsAttended  int    `json:"campsAttended"`
	CampsCompleted int    `json:"campsCompleted"`
	Points         int    `json:"points"`
	Badges         int    `json:"badges"`
}

// Leaderboard ranks volunteers by the scoring policy above.
func Leaderboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var volunteers []models.User
		if err := db.Where("role = ?", models.RoleVolunteer).Find(&volunteers).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, "Failed to load leaderboard")
			return
		}

		type participation struct {
			VolunteerID uint
			CampStatus  string
		}
		var rows []participation
		err := db.Model(&models.CampaignVolunteer{}).
			Select("campaign_volunteers.volunteer_id AS volunteer_id, campaigns.status AS camp_status").
			Joins("JOIN campaigns ON campaigns.id = campaign_volunteers.campaign_id").
			Scan(&rows).Error
		if err != nil {
			util.Error(c, http.StatusInternalServerError, "Failed to load leaderboard")
			return
		}

		attended := make(map[uint]int)
		completed := make(map[uint]int)
		for _, r := range rows {
			attended[r.VolunteerID]++
			if r.CampStatus == models.CampCompleted {
				completed[r.VolunteerID]++
			}
		}

		type badgeCount struct {
			UserID uint
			N      int
		}
		var badgeRows []badgeCount
		err = db.Model(&models.Badge{}).
			Select("user_id, COUNT(*) AS n").
			Group("user_id").
			Scan(&badgeRows).Error
		if err != nil {
			util.Error(c, http.StatusInternalServerError, "Failed to load leaderboard")
			return
		}
		badges := make(map[uint]int)
		for _, b := range badgeRows {
			badges[b.UserID] = b.N
		}

		board := make([]LeaderboardEntry, 0, len(volunteers))
		for i := range volunteers {
			v := &volunteers[i]
			entry := LeaderboardEntry{
				ID:             v.ID,
				Name:           v.Name,
				CampsAttended:  attended[v.ID],
				CampsCompleted: completed[v.ID],
				Badges:         badges[v.ID],
			}
			entry.Points = entry.CampsCompleted*pointsPerCompletedCamp + entry.Badges*pointsPerBadge
			board = append(board, entry)
		}

		sort.Slice(board, func(i, j int) bool {
			if board[i].Points != board[j].Points {
				return board[i].Points > board[j].Points
			}
			if board[i].CampsAttended != board[j].CampsAttended {
				return board[i].CampsAttended > board[j].CampsAttended
			}
			return board[i].Name < board[j].Name
		})

		util.JSON(c, board)
	}
}
