package views

import (
	"context"

	"github.com/23F3001886/CleanEarth/internal/apiclient"
	"github.com/23F3001886/CleanEarth/internal/session"
)

// LeaderboardView renders the ranked volunteer standings. The endpoint is
// public; when a session exists the caller's own row is flagged.
type LeaderboardView struct {
	client *apiclient.Client
	store  *session.Store

	Loading bool
	Err     string

	Rows          []LeaderboardRow
	CurrentUserID uint
}

func NewLeaderboardView(client *apiclient.Client, store *session.Store) *LeaderboardView {
	return &LeaderboardView{client: client, store: store}
}

func (v *LeaderboardView) Load(ctx context.Context) {
	if sess, ok := v.store.Get(); ok {
		v.CurrentUserID = sess.User.ID
	}
	v.Loading = true
	rows, err := fetchSlice[LeaderboardRow](ctx, v.client, "/api/leaderboard", nil)
	if err != nil {
		v.Err = errText(err, "Failed to load leaderboard")
	} else {
		v.Err = ""
		v.Rows = rows
	}
	v.Loading = false
}

// IsCurrentUser reports whether a row belongs to the logged-in account.
func (v *LeaderboardView) IsCurrentUser(row LeaderboardRow) bool {
	return v.CurrentUserID != 0 && row.ID == v.CurrentUserID
}
