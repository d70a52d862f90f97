package views

import (
	"context"
	"log"

	"github.com/23F3001886/CleanEarth/internal/apiclient"
	"github.com/23F3001886/CleanEarth/internal/session"
)

// NavItem is one entry in a navigation shell.
type NavItem struct {
	Name   string
	Route  Route
	Active bool
}

// Shell is a role-specific navigation presentation. It derives its items
// from the stored session and exposes the logout action.
type Shell struct {
	client *apiclient.Client
	store  *session.Store
	Active string
}

func NewShell(client *apiclient.Client, store *session.Store, active string) *Shell {
	return &Shell{client: client, store: store, Active: active}
}

var userItems = []NavItem{
	{Name: "Home", Route: RouteHome},
	{Name: "Report Location", Route: RouteReport},
	{Name: "Completed Logs", Route: RouteHome},
	{Name: "Your Badges", Route: RouteHome},
	{Name: "About Us", Route: RouteAbout},
}

var volunteerItems = []NavItem{
	{Name: "Dashboard", Route: RouteVolunteer},
	{Name: "Camps", Route: RouteVolunteer},
	{Name: "Leaderboard", Route: RouteLeaderboard},
	{Name: "About Us", Route: RouteAbout},
}

// LoggedIn reports the derived login state.
func (s *Shell) LoggedIn() bool {
	_, ok := s.store.Get()
	return ok
}

// Items returns the shell for the stored role with the active item marked.
// Logged-out shells offer Login/Register instead of Logout.
func (s *Shell) Items() []NavItem {
	sess, ok := s.store.Get()

	var base []NavItem
	if ok && sess.User.Role == "volunteer" {
		base = volunteerItems
	} else {
		base = userItems
	}

	items := make([]NavItem, 0, len(base)+2)
	for _, item := range base {
		item.Active = item.Name == s.Active
		items = append(items, item)
	}
	if !ok {
		items = append(items,
			NavItem{Name: "Login", Route: RouteLogin, Active: s.Active == "Login"},
			NavItem{Name: "Register", Route: RouteRegister, Active: s.Active == "Register"},
		)
	}
	return items
}

// Logout tells the backend best-effort, then clears the credential store
// unconditionally. Logout is client-authoritative: local state goes away
// even when the server call fails.
func (s *Shell) Logout(ctx context.Context) Route {
	if err := s.client.Post(ctx, "/api/logout", nil, nil); err != nil {
		log.Printf("logout: %v", err)
	}
	_ = s.store.Clear()
	return RouteLogin
}
