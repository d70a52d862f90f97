package views

import (
	"context"
	"sync"

	"github.com/23F3001886/CleanEarth/internal/apiclient"
	"github.com/23F3001886/CleanEarth/internal/session"
)

// AdminView backs the moderation dashboard: every account, every report and
// every camp, with block/unblock and badge controls.
type AdminView struct {
	client *apiclient.Client
	store  *session.Store

	Loading  bool
	Redirect Route

	Users    []AdminUser
	Requests []Request
	Camps    []Camp

	UsersErr    string
	RequestsErr string
	CampsErr    string
	ActionErr   string
}

func NewAdminView(client *apiclient.Client, store *session.Store) *AdminView {
	return &AdminView{client: client, store: store}
}

// Load fetches the three admin tables concurrently; each panel errors
// independently.
func (v *AdminView) Load(ctx context.Context) {
	sess, ok := v.store.Get()
	if !ok {
		v.Redirect = RouteLogin
		return
	}
	if sess.User.Role != "admin" {
		v.Redirect = RouteHome
		return
	}
	v.Loading = true

	var (
		wg                              sync.WaitGroup
		users                           []AdminUser
		requests                        []Request
		camps                           []Camp
		usersErr, requestsErr, campsErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		users, usersErr = fetchSlice[AdminUser](ctx, v.client, "/api/admin/users", nil)
	}()
	go func() {
		defer wg.Done()
		requests, requestsErr = fetchSlice[Request](ctx, v.client, "/api/managerequest", nil)
	}()
	go func() {
		defer wg.Done()
		camps, campsErr = fetchSlice[Camp](ctx, v.client, "/api/managecamp", nil)
	}()
	wg.Wait()

	if usersErr != nil {
		v.UsersErr = errText(usersErr, "Failed to load users")
	} else {
		v.UsersErr = ""
		v.Users = users
	}
	if requestsErr != nil {
		v.RequestsErr = errText(requestsErr, "Failed to load requests")
	} else {
		v.RequestsErr = ""
		v.Requests = requests
	}
	if campsErr != nil {
		v.CampsErr = errText(campsErr, "Failed to load camps")
	} else {
		v.CampsErr = ""
		v.Camps = camps
	}

	if sessionExpired(usersErr) || sessionExpired(requestsErr) {
		v.Redirect = RouteLogin
	}
	v.Loading = false
}

// ToggleBlock flips an account's blocked flag and patches only that row.
func (v *AdminView) ToggleBlock(ctx context.Context, userID uint) error {
	var resp struct {
		User AdminUser `json:"user"`
	}
	if err := v.client.Post(ctx, "/api/admin/toggle_block/"+uitoa(userID), nil, &resp); err != nil {
		v.ActionErr = errText(err, "Failed to update user")
		if sessionExpired(err) {
			v.Redirect = RouteLogin
		}
		return err
	}
	v.ActionErr = ""
	for i := range v.Users {
		if v.Users[i].ID == userID {
			v.Users[i] = resp.User
			break
		}
	}
	return nil
}

// AwardBadge grants a badge to a user.
func (v *AdminView) AwardBadge(ctx context.Context, userID uint, name, description, icon string) error {
	payload := map[string]interface{}{
		"user_id":     userID,
		"name":        name,
		"description": description,
		"icon":        icon,
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := v.client.Post(ctx, "/api/admin/award_badge", payload, &resp); err != nil {
		v.ActionErr = errText(err, "Failed to award badge")
		if sessionExpired(err) {
			v.Redirect = RouteLogin
		}
		return err
	}
	v.ActionErr = ""
	return nil
}
