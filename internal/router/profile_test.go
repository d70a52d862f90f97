package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfile_GetAndUpdate(t *testing.T) {
	server, _ := newTestServer(t)
	token := registerUser(t, server.URL, "Asha", "asha@example.com", "user", "560001")

	status, body := doJSON(t, http.MethodGet, server.URL+"/api/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Asha", body["name"])
	require.Equal(t, "560001", body["pincode"])

	status, body = doJSON(t, http.MethodPut, server.URL+"/api/profile", token, map[string]interface{}{
		"name":      "Asha K",
		"pincode":   "110001",
		"latitude":  28.6139,
		"longitude": 77.2090,
	})
	require.Equal(t, http.StatusOK, status, "%v", body)
	user := body["user"].(map[string]interface{})
	require.Equal(t, "Asha K", user["name"])
	require.Equal(t, "110001", user["pincode"])
	require.Equal(t, 28.6139, user["latitude"])

	// omitted fields are untouched
	status, body = doJSON(t, http.MethodPut, server.URL+"/api/profile", token, map[string]interface{}{
		"address": "New address only",
	})
	require.Equal(t, http.StatusOK, status)
	user = body["user"].(map[string]interface{})
	require.Equal(t, "Asha K", user["name"])
	require.Equal(t, "New address only", user["address"])
}

func TestProfile_InvalidPincodeRejected(t *testing.T) {
	server, _ := newTestServer(t)
	token := registerUser(t, server.URL, "Asha", "asha@example.com", "user", "560001")

	status, body := doJSON(t, http.MethodPut, server.URL+"/api/profile", token, map[string]interface{}{
		"pincode": "not a pin",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Invalid pincode", body["error"])

	// the stored pincode is unchanged
	status, body = doJSON(t, http.MethodGet, server.URL+"/api/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "560001", body["pincode"])
}
