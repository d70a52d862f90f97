package views

import (
	"context"
	"sync"

	"github.com/23F3001886/CleanEarth/internal/apiclient"
	"github.com/23F3001886/CleanEarth/internal/session"
)

// VolunteerDashboardView backs the volunteer landing page: pending pickup
// requests in the volunteer's area, upcoming and completed camps, badges.
type VolunteerDashboardView struct {
	client *apiclient.Client
	store  *session.Store

	Loading  bool
	Redirect Route

	PendingRequests []Request
	UpcomingCamps   []Camp
	CompletedCamps  []Camp
	Badges          []Badge

	RequestsErr string
	CampsErr    string
	BadgesErr   string
	ActionErr   string
}

func NewVolunteerDashboardView(client *apiclient.Client, store *session.Store) *VolunteerDashboardView {
	return &VolunteerDashboardView{client: client, store: store}
}

// Load runs the three dashboard fetches concurrently. Each fetch fails
// independently; one panel erroring never blanks the others.
func (v *VolunteerDashboardView) Load(ctx context.Context) {
	if _, ok := v.store.Get(); !ok {
		v.Redirect = RouteLogin
		return
	}
	v.Loading = true

	var (
		wg                               sync.WaitGroup
		requests                         []Request
		camps                            []Camp
		badges                           []Badge
		requestsErr, campsErr, badgesErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		requests, requestsErr = fetchSlice(ctx, v.client, "/api/volunteer_requests", func(r Request) bool {
			return r.Status == "pending"
		})
	}()
	go func() {
		defer wg.Done()
		camps, campsErr = fetchSlice[Camp](ctx, v.client, "/api/volunteer_camps", nil)
	}()
	go func() {
		defer wg.Done()
		badges, badgesErr = fetchSlice[Badge](ctx, v.client, "/api/badges", nil)
	}()
	wg.Wait()

	if requestsErr != nil {
		v.RequestsErr = errText(requestsErr, "Failed to load requests")
	} else {
		v.RequestsErr = ""
		v.PendingRequests = requests
	}
	if campsErr != nil {
		v.CampsErr = errText(campsErr, "Failed to load camps")
	} else {
		v.CampsErr = ""
		v.splitCamps(camps)
	}
	if badgesErr != nil {
		v.BadgesErr = errText(badgesErr, "Failed to load badges")
	} else {
		v.BadgesErr = ""
		v.Badges = badges
	}

	if sessionExpired(requestsErr) || sessionExpired(campsErr) {
		v.Redirect = RouteLogin
	}
	v.Loading = false
}

func (v *VolunteerDashboardView) splitCamps(camps []Camp) {
	upcoming := make([]Camp, 0, len(camps))
	completed := make([]Camp, 0)
	for _, c := range camps {
		if c.Status == "completed" {
			completed = append(completed, c)
		} else {
			upcoming = append(upcoming, c)
		}
	}
	v.UpcomingCamps = upcoming
	v.CompletedCamps = completed
}

// RespondToCamp records confirmed or declined for a camp the volunteer has
// joined, patching the local row on success.
func (v *VolunteerDashboardView) RespondToCamp(ctx context.Context, campID uint, status string) error {
	payload := map[string]string{"response": status}
	var resp struct {
		Status string `json:"participation_status"`
	}
	if err := v.client.Post(ctx, "/api/camp_respond/"+uitoa(campID), payload, &resp); err != nil {
		v.ActionErr = errText(err, "Failed to update participation")
		if sessionExpired(err) {
			v.Redirect = RouteLogin
		}
		return err
	}
	v.ActionErr = ""
	for i := range v.UpcomingCamps {
		if v.UpcomingCamps[i].ID == campID {
			v.UpcomingCamps[i].ParticipationStatus = resp.Status
			break
		}
	}
	return nil
}

// CompleteCampForm carries the completion details.
type CompleteCampForm struct {
	ActualParticipants int    `json:"actual_participants"`
	WasteCollected     string `json:"waste_collected"`
	ImageLink          string `json:"image_link"`
	Notes              string `json:"completion_notes"`
}

// CompleteCamp marks a camp completed. On success the camp moves from the
// upcoming list to the completed list and the pending request the camp was
// created for disappears, all in one step.
func (v *VolunteerDashboardView) CompleteCamp(ctx context.Context, campID uint, form CompleteCampForm) error {
	var resp struct {
		Campaign Camp `json:"campaign"`
	}
	if err := v.client.Post(ctx, "/api/complete-camp/"+uitoa(campID), form, &resp); err != nil {
		v.ActionErr = errText(err, "Failed to complete camp")
		if sessionExpired(err) {
			v.Redirect = RouteLogin
		}
		return err
	}
	v.ActionErr = ""

	upcoming := v.UpcomingCamps[:0]
	for _, c := range v.UpcomingCamps {
		if c.ID != campID {
			upcoming = append(upcoming, c)
		}
	}
	v.UpcomingCamps = upcoming
	v.CompletedCamps = append(v.CompletedCamps, resp.Campaign)

	pending := v.PendingRequests[:0]
	for _, r := range v.PendingRequests {
		if r.ID != resp.Campaign.RequestID {
			pending = append(pending, r)
		}
	}
	v.PendingRequests = pending
	return nil
}
