package views

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/23F3001886/CleanEarth/internal/apiclient"
	"github.com/23F3001886/CleanEarth/internal/config"
	"github.com/23F3001886/CleanEarth/internal/database"
	"github.com/23F3001886/CleanEarth/internal/router"
	"github.com/23F3001886/CleanEarth/internal/session"
)

// testEnv is a full client-against-server fixture: a live API on sqlite
// plus a session store and HTTP client the way the app wires them.
type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
	store  *session.Store
	client *apiclient.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Init(config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{
		Server:    config.ServerConfig{Mode: gin.TestMode},
		JWT:       config.JWTConfig{Secret: "views-test-secret", ExpireHours: 1},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 1000},
	}
	server := httptest.NewServer(router.SetupRouter(cfg, db))
	t.Cleanup(server.Close)

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	return &testEnv{
		server: server,
		db:     db,
		store:  store,
		client: apiclient.New(server.URL, store),
	}
}

// postJSON issues a raw API call outside the client under test, for seeding.
func (e *testEnv) postJSON(t *testing.T, path, token string, body interface{}) map[string]interface{} {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, e.server.URL+path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Less(t, resp.StatusCode, 300, "seed call %s failed", path)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerAccount seeds an account directly and returns its id and token.
func (e *testEnv) registerAccount(t *testing.T, name, email, role, pincode string) (uint, string) {
	t.Helper()

	body := e.postJSON(t, "/api/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"role":     role,
		"pincode":  pincode,
	})
	return uint(body["user_id"].(float64)), body["access_token"].(string)
}

// loginAs seeds an account and signs the client's store in as it.
func (e *testEnv) loginAs(t *testing.T, name, email, role, pincode string) uint {
	t.Helper()

	id, token := e.registerAccount(t, name, email, role, pincode)
	require.NoError(t, e.store.Set(token, session.User{
		ID:      id,
		Name:    name,
		Email:   email,
		Role:    role,
		Pincode: pincode,
	}))
	return id
}

// seedRequest files a waste report for the given token.
func (e *testEnv) seedRequest(t *testing.T, token, pincode string) uint {
	t.Helper()

	body := e.postJSON(t, "/api/request_register", token, map[string]interface{}{
		"email":       "seed@example.com",
		"pincode":     pincode,
		"latitude":    12.9716,
		"longitude":   77.5946,
		"description": "Trash pileup behind the market",
		"address":     "Market Lane",
	})
	return uint(body["id"].(float64))
}

// seedCamp registers a camp for the given volunteer token.
func (e *testEnv) seedCamp(t *testing.T, token string, requestID uint, capacity int) uint {
	t.Helper()

	body := e.postJSON(t, "/api/camp_register", token, map[string]interface{}{
		"requestId":          requestID,
		"campName":           "Market cleanup",
		"dateOfCamp":         "2027-05-01",
		"timeOfCamp":         "08:30",
		"numberOfVolunteers": capacity,
		"description":        "Weekend cleanup",
	})
	return uint(body["id"].(float64))
}

func testCtx() context.Context {
	return context.Background()
}
