package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/23F3001886/CleanEarth/internal/apiclient"
	"github.com/23F3001886/CleanEarth/internal/session"
)

// HomeView is the dashboard: the activity feed with pincode filter, the
// user's completed logs, badges, and the nearby-camp join feed. The feeds
// are independent; one failing does not blank the others.
type HomeView struct {
	client *apiclient.Client
	store  *session.Store

	Loading  bool
	Redirect Route

	Requests         []Request
	FilteredRequests []Request
	CompletedLogs    []Request
	NearbyCamps      []Camp
	Badges           []Badge
	Pincode          string

	RequestsErr string
	CampsErr    string
	BadgesErr   string
	JoinErr     string
}

func NewHomeView(client *apiclient.Client, store *session.Store) *HomeView {
	return &HomeView{client: client, store: store}
}

// Load populates all feeds concurrently.
func (v *HomeView) Load(ctx context.Context) {
	sess, ok := v.store.Get()
	if !ok {
		v.Redirect = RouteLogin
		return
	}
	if v.Pincode == "" {
		v.Pincode = sess.User.Pincode
	}

	v.Loading = true

	// each fetch writes only its own captured results; the view state is
	// assigned once all of them settle
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
		requests, requestsErr = fetchSlice[Request](ctx, v.client, "/api/managerequest", nil)
	}()
	go func() {
		defer wg.Done()
		camps, campsErr = fetchSlice[Camp](ctx, v.client, "/api/user_camps", nil)
	}()
	go func() {
		defer wg.Done()
		badges, badgesErr = fetchSlice[Badge](ctx, v.client, "/api/badges", nil)
	}()
	wg.Wait()

	if requestsErr != nil {
		v.RequestsErr = errText(requestsErr, "Failed to load requests")
	} else {
		v.Requests = requests
		own := make([]Request, 0)
		for _, r := range requests {
			if r.Status == "completed" && r.UserID == sess.User.ID {
				own = append(own, r)
			}
		}
		v.CompletedLogs = own
	}
	if campsErr != nil {
		v.CampsErr = errText(campsErr, "Failed to fetch nearby camps")
	} else {
		v.NearbyCamps = camps
	}
	if badgesErr != nil {
		v.BadgesErr = errText(badgesErr, "Failed to load badges")
	} else {
		v.Badges = badges
	}
	if sessionExpired(requestsErr) || sessionExpired(campsErr) {
		v.Redirect = RouteLogin
	}

	v.applyFilter()
	v.Loading = false
}

// SetPincode updates the filter field and recomputes the filtered list.
func (v *HomeView) SetPincode(pincode string) {
	v.Pincode = pincode
	v.applyFilter()
}

// applyFilter is the pure pincode predicate over the fetched request list:
// exact match, and an empty filter yields an empty filtered list.
func (v *HomeView) applyFilter() {
	if v.Pincode == "" || len(v.Requests) == 0 {
		v.FilteredRequests = nil
		return
	}
	filtered := make([]Request, 0)
	for _, r := range v.Requests {
		if r.Pincode == v.Pincode {
			filtered = append(filtered, r)
		}
	}
	v.FilteredRequests = filtered
}

// joinResponse is the camp_participate success payload.
type joinResponse struct {
	ParticipationCount int `json:"participationCount"`
	SpotsLeft          int `json:"spotsLeft"`
}

// JoinCamp joins a nearby camp and patches that camp's row in place.
func (v *HomeView) JoinCamp(ctx context.Context, campID uint) error {
	var resp joinResponse
	err := v.client.Post(ctx, fmt.Sprintf("/api/camp_participate/%d", campID), nil, &resp)
	if err != nil {
		v.JoinErr = errText(err, "Failed to join the campaign")
		if sessionExpired(err) {
			v.Redirect = RouteLogin
		}
		return err
	}

	v.JoinErr = ""
	for i := range v.NearbyCamps {
		if v.NearbyCamps[i].ID == campID {
			v.NearbyCamps[i].IsParticipating = true
			v.NearbyCamps[i].ParticipationCount = resp.ParticipationCount
			v.NearbyCamps[i].SpotsLeft = resp.SpotsLeft
			break
		}
	}
	return nil
}
