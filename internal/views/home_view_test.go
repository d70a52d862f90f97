package views

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHomeView_LoadsFeedsAndDefaultsPincode(t *testing.T) {
	env := newTestEnv(t)

	env.loginAs(t, "Asha", "asha@example.com", "user", "560001")
	sess, _ := env.store.Get()
	reqID := env.seedRequest(t, sess.Token, "560001")
	env.seedRequest(t, sess.Token, "110001")

	_, volToken := env.registerAccount(t, "Vol", "vol@example.com", "volunteer", "560001")
	env.seedCamp(t, volToken, reqID, 4)

	view := NewHomeView(env.client, env.store)
	view.Load(testCtx())

	require.False(t, view.Loading)
	require.Empty(t, view.Redirect)
	require.Empty(t, view.RequestsErr)
	require.Empty(t, view.CampsErr)

	require.Len(t, view.Requests, 2, "the feed shows every report")
	require.Equal(t, "560001", view.Pincode, "filter defaults to the user's pincode")
	require.Len(t, view.FilteredRequests, 1, "only the matching pincode survives the filter")
	require.Len(t, view.NearbyCamps, 1)
	require.Equal(t, 4, view.NearbyCamps[0].SpotsLeft)
}

func TestHomeView_PincodeFilterSemantics(t *testing.T) {
	view := &HomeView{
		Requests: []Request{
			{ID: 1, Pincode: "560001"},
			{ID: 2, Pincode: "560001"},
			{ID: 3, Pincode: "110001"},
		},
	}

	view.SetPincode("560001")
	require.Len(t, view.FilteredRequests, 2)

	// exact match only, no prefixes
	view.SetPincode("5600")
	require.Empty(t, view.FilteredRequests)

	// an empty filter means an empty list, not the full list
	view.SetPincode("")
	require.Nil(t, view.FilteredRequests)
}

func TestHomeView_JoinCampPatchesRowInPlace(t *testing.T) {
	env := newTestEnv(t)

	env.loginAs(t, "Asha", "asha@example.com", "user", "560001")
	sess, _ := env.store.Get()
	reqID := env.seedRequest(t, sess.Token, "560001")
	_, volToken := env.registerAccount(t, "Vol", "vol@example.com", "volunteer", "560001")
	campID := env.seedCamp(t, volToken, reqID, 3)

	view := NewHomeView(env.client, env.store)
	view.Load(testCtx())
	require.Len(t, view.NearbyCamps, 1)
	require.False(t, view.NearbyCamps[0].IsParticipating)

	require.NoError(t, view.JoinCamp(testCtx(), campID))
	require.Empty(t, view.JoinErr)
	require.True(t, view.NearbyCamps[0].IsParticipating)
	require.Equal(t, 1, view.NearbyCamps[0].ParticipationCount)
	require.Equal(t, 2, view.NearbyCamps[0].SpotsLeft)

	// joining the same camp again surfaces the backend message inline
	err := view.JoinCamp(testCtx(), campID)
	require.Error(t, err)
	require.Equal(t, "Already participating in this camp", view.JoinErr)
}

func TestHomeView_CompletedLogsAreOwnCompletedOnly(t *testing.T) {
	env := newTestEnv(t)

	userID := env.loginAs(t, "Asha", "asha@example.com", "user", "560001")
	sess, _ := env.store.Get()
	reqID := env.seedRequest(t, sess.Token, "560001")

	_, volToken := env.registerAccount(t, "Vol", "vol@example.com", "volunteer", "560001")
	campID := env.seedCamp(t, volToken, reqID, 3)
	env.postJSON(t, "/api/complete-camp/"+uitoa(campID), volToken, map[string]interface{}{
		"actual_participants": 1,
	})

	view := NewHomeView(env.client, env.store)
	view.Load(testCtx())

	require.Len(t, view.CompletedLogs, 1)
	require.Equal(t, userID, view.CompletedLogs[0].UserID)
	require.Equal(t, "completed", view.CompletedLogs[0].Status)
}

func TestHomeView_ExpiredSessionRedirects(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "Asha", "asha@example.com", "user", "560001")

	// revoke the token behind the store's back
	sess, _ := env.store.Get()
	env.postJSON(t, "/api/logout", sess.Token, nil)

	view := NewHomeView(env.client, env.store)
	view.Load(testCtx())

	require.Equal(t, RouteLogin, view.Redirect)
	_, ok := env.store.Get()
	require.False(t, ok, "the 401 wipes the stored credential")
}
