package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/23F3001886/CleanEarth/internal/config"
	"github.com/23F3001886/CleanEarth/internal/database"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		JWT: config.JWTConfig{
			Secret:      "integration-test-secret",
			Issuer:      "cleanearth-test",
			ExpireHours: 1,
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 1000},
	}
}

// newTestServer boots the full API against a throwaway sqlite database.
func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()
	return newTestServerWithConfig(t, testConfig())
}

func newTestServerWithConfig(t *testing.T, cfg *config.Config) (*httptest.Server, *gorm.DB) {
	t.Helper()

	db, err := database.Init(config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	server := httptest.NewServer(SetupRouter(cfg, db))
	t.Cleanup(server.Close)
	return server, db
}

// doJSON issues one request with an optional bearer token and decodes the
// response body into a generic map.
func doJSON(t *testing.T, method, url, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

// doJSONList is doJSON for endpoints that return a bare array.
func doJSONList(t *testing.T, method, url, token string) (int, []map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out []map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, serverURL, name, email, role, pincode string) string {
	t.Helper()

	status, body := doJSON(t, http.MethodPost, serverURL+"/api/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"role":     role,
		"pincode":  pincode,
		"address":  name + "'s place",
	})
	require.Equal(t, http.StatusCreated, status, "register %s: %v", email, body)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

// createRequest files a waste report and returns its id.
func createRequest(t *testing.T, serverURL, token, pincode string) uint {
	t.Helper()

	status, body := doJSON(t, http.MethodPost, serverURL+"/api/request_register", token, map[string]interface{}{
		"email":       "reporter@example.com",
		"pincode":     pincode,
		"latitude":    12.9716,
		"longitude":   77.5946,
		"description": "Overflowing bins near the park",
		"address":     "5th Cross, Jayanagar",
	})
	require.Equal(t, http.StatusCreated, status, "create request: %v", body)
	id, ok := body["id"].(float64)
	require.True(t, ok, "create request response missing id: %v", body)
	return uint(id)
}

// createCamp registers a camp against a request and returns the camp id.
func createCamp(t *testing.T, serverURL, token string, requestID uint, capacity int) uint {
	t.Helper()

	status, body := doJSON(t, http.MethodPost, serverURL+"/api/camp_register", token, map[string]interface{}{
		"requestId":          requestID,
		"campName":           "Park cleanup",
		"dateOfCamp":         "2027-03-14",
		"timeOfCamp":         "09:00",
		"numberOfVolunteers": capacity,
		"description":        "Morning cleanup drive",
	})
	require.Equal(t, http.StatusCreated, status, "create camp: %v", body)
	id, ok := body["id"].(float64)
	require.True(t, ok, "create camp response missing id: %v", body)
	return uint(id)
}

func campURL(serverURL, path string, id uint) string {
	return fmt.Sprintf("%s%s/%d", serverURL, path, id)
}

func itoa(id uint) string {
	return fmt.Sprintf("%d", id)
}
