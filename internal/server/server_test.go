package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"anoa.com/gamificationdemo/internal/bootstrap"
	"anoa.com/gamificationdemo/internal/config"
	"anoa.com/gamificationdemo/internal/entity"
	"anoa.com/gamificationdemo/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataset, err := bootstrap.NewDataset()
	require.NoError(t, err)

	cfg := &config.Config{
		AppEnv:         "test",
		Port:           "8000",
		AllowedOrigins: "*",
	}

	return NewServer(cfg, dataset, nil)
}

func performRequest(srv *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestRoot(t *testing.T) {
	srv := newTestServer(t)

	w := performRequest(srv, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decodeJSON(t, w, &body)
	assert.Equal(t, "Gamification Demo API running", body["message"])
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	w := performRequest(srv, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decodeJSON(t, w, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "demo", body["mode"])
	assert.Equal(t, config.Version, body["version"])
}

func TestGetLeaderboard(t *testing.T) {
	srv := newTestServer(t)

	w := performRequest(srv, http.MethodGet, "/api/demo/leaderboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []entity.LeaderboardEntry
	decodeJSON(t, w, &entries)
	require.Len(t, entries, 4)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 18250, entries[0].Points)
	assert.Equal(t, 13320, entries[3].Points)
}

func TestGetBadges(t *testing.T) {
	srv := newTestServer(t)

	w := performRequest(srv, http.MethodGet, "/api/demo/badges", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var badges []entity.Badge
	decodeJSON(t, w, &badges)
	require.Len(t, badges, 3)
	assert.Equal(t, "b_hero", badges[0].ID)
	assert.Equal(t, "#F59E0B", badges[0].Color)
}

func TestGetUsers(t *testing.T) {
	srv := newTestServer(t)

	w := performRequest(srv, http.MethodGet, "/api/demo/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []entity.User
	decodeJSON(t, w, &users)
	require.Len(t, users, 4)
	assert.Equal(t, "u_001", users[0].ID)
	assert.Equal(t, "Sales Captain", users[0].Title)
	assert.Nil(t, users[0].Avatar)
}

func TestGetUserSummary(t *testing.T) {
	srv := newTestServer(t)

	w := performRequest(srv, http.MethodGet, "/api/demo/user/u_001", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary entity.UserSummary
	decodeJSON(t, w, &summary)
	assert.Equal(t, "u_001", summary.User.ID)
	assert.Equal(t, 18250, summary.Points)
	assert.Equal(t, 8, summary.StreakDays)
	assert.Len(t, summary.Badges, 2)
	assert.Len(t, summary.RecentActions, 3)
}

func TestGetUserSummaryNotFound(t *testing.T) {
	srv := newTestServer(t)

	w := performRequest(srv, http.MethodGet, "/api/demo/user/u_999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	decodeJSON(t, w, &body)
	assert.Equal(t, "User not found in demo dataset", body["error"])
}

func TestAwardPoints(t *testing.T) {
	srv := newTestServer(t)

	before := performRequest(srv, http.MethodGet, "/api/demo/leaderboard", nil)

	w := performRequest(srv, http.MethodPost, "/api/demo/award", []byte(`{"action":"test","points":50}`))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decodeJSON(t, w, &body)
	assert.Equal(t, "demo", body["mode"])
	assert.Equal(t, "Read-only demo: no data was changed.", body["message"])

	after := performRequest(srv, http.MethodGet, "/api/demo/leaderboard", nil)
	assert.JSONEq(t, before.Body.String(), after.Body.String())
}

func TestAwardPointsMissingAction(t *testing.T) {
	srv := newTestServer(t)

	w := performRequest(srv, http.MethodPost, "/api/demo/award", []byte(`{"points":50}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiagnosticWithoutCollaborator(t *testing.T) {
	srv := newTestServer(t)

	w := performRequest(srv, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	decodeJSON(t, w, &body)
	assert.Equal(t, "✅ Running", body["backend"])
	assert.Equal(t, "❌ Database module not found", body["database"])
	assert.Equal(t, "❌ Not Set", body["database_url"])
	assert.Equal(t, "❌ Not Set", body["database_name"])
	assert.Equal(t, "Not Connected", body["connection_status"])
	assert.Equal(t, []any{}, body["collections"])
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/demo/leaderboard", nil)
	req.Header.Set("Origin", "https://demo.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://demo.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	w := performRequest(srv, http.MethodGet, "/api/health", nil)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
