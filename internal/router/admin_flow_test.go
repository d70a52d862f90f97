package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdminRoutes_RoleGated(t *testing.T) {
	server, _ := newTestServer(t)

	user := registerUser(t, server.URL, "Plain", "plain@example.com", "user", "560001")
	vol := registerUser(t, server.URL, "Vol", "vol@example.com", "volunteer", "560001")

	for _, token := range []string{user, vol} {
		status, _ := doJSON(t, http.MethodGet, server.URL+"/api/admin/users", token, nil)
		require.Equal(t, http.StatusForbidden, status)
	}
}

func TestAdminListUsersAndToggleBlock(t *testing.T) {
	server, _ := newTestServer(t)

	admin := registerUser(t, server.URL, "Admin", "admin@example.com", "admin", "560001")
	target := registerUser(t, server.URL, "Target", "target@example.com", "user", "560001")

	status, list := doJSONList(t, http.MethodGet, server.URL+"/api/admin/users", admin)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 2)

	var targetID uint
	for _, u := range list {
		if u["email"] == "target@example.com" {
			targetID = uint(u["id"].(float64))
			require.Equal(t, false, u["is_blocked"])
		}
	}
	require.NotZero(t, targetID)

	status, body := doJSON(t, http.MethodPost, campURL(server.URL, "/api/admin/toggle_block", targetID), admin, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "User blocked successfully", body["message"])
	blocked := body["user"].(map[string]interface{})
	require.Equal(t, true, blocked["is_blocked"])

	// a blocked user's existing token stops working
	status, body = doJSON(t, http.MethodGet, server.URL+"/api/auth-check", target, nil)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "Your account has been blocked", body["error"])

	// toggling again unblocks
	status, body = doJSON(t, http.MethodPost, campURL(server.URL, "/api/admin/toggle_block", targetID), admin, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "User unblocked successfully", body["message"])

	status, _ = doJSON(t, http.MethodGet, server.URL+"/api/auth-check", target, nil)
	require.Equal(t, http.StatusOK, status)
}

func TestAdminToggleBlock_UnknownUser(t *testing.T) {
	server, _ := newTestServer(t)
	admin := registerUser(t, server.URL, "Admin", "admin@example.com", "admin", "560001")

	status, body := doJSON(t, http.MethodPost, server.URL+"/api/admin/toggle_block/99999", admin, nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "User not found", body["error"])
}

func TestAwardBadge_ShowsUpForUser(t *testing.T) {
	server, _ := newTestServer(t)

	admin := registerUser(t, server.URL, "Admin", "admin@example.com", "admin", "560001")
	vol := registerUser(t, server.URL, "Vol", "vol@example.com", "volunteer", "560001")

	status, body := doJSON(t, http.MethodGet, server.URL+"/api/auth-check", vol, nil)
	require.Equal(t, http.StatusOK, status)
	volID := uint(body["user"].(map[string]interface{})["id"].(float64))

	status, body = doJSON(t, http.MethodPost, server.URL+"/api/admin/award_badge", admin, map[string]interface{}{
		"user_id":     volID,
		"name":        "First Cleanup",
		"description": "Completed a first camp",
	})
	require.Equal(t, http.StatusOK, status, "%v", body)
	badge := body["badge"].(map[string]interface{})
	require.Equal(t, "trophy", badge["icon"], "icon defaults when omitted")

	status, list := doJSONList(t, http.MethodGet, server.URL+"/api/badges", vol)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 1)
	require.Equal(t, "First Cleanup", list[0]["name"])
}

func TestAdminExportXLSX(t *testing.T) {
	server, _ := newTestServer(t)
	admin := registerUser(t, server.URL, "Admin", "admin@example.com", "admin", "560001")

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/admin/export/xlsx", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+admin)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	require.Contains(t, resp.Header.Get("Content-Disposition"), "cleanearth_report_")
}
