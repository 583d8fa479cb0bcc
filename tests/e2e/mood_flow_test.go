//go:build e2e

package e2e_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2E_MoodLoggingAndAnalytics logs a full good week and verifies the
// snapshot reflects it: streak, weekly summary, celebration, boosters.
func TestE2E_MoodLoggingAndAnalytics(t *testing.T) {
	ts := setupTestServer(t)
	access, _ := registerUser(t, ts)

	today := time.Now().UTC()
	for offset := 6; offset >= 0; offset-- {
		date := today.AddDate(0, 0, -offset).Format("2006-01-02")
		status, result := ts.doJSON(t, http.MethodPost, "/api/v1/moods", access, map[string]any{
			"state":     "HAPPY",
			"intensity": 8,
			"date":      date,
			"note":      "good day",
		})
		require.Equal(t, http.StatusCreated, status, "log mood %s: %v", date, result)
		assert.Equal(t, "HAPPY", result["state"])
		assert.NotEmpty(t, result["id"])
	}

	// History returns all seven entries ascending.
	status, result := ts.doJSON(t, http.MethodGet, "/api/v1/moods", access, nil)
	require.Equal(t, http.StatusOK, status)
	entries, ok := result["entries"].([]any)
	require.True(t, ok, "expected entries array: %v", result)
	assert.Len(t, entries, 7)

	// Snapshot reflects the streak.
	status, snap := ts.doJSON(t, http.MethodGet, "/api/v1/analytics/snapshot", access, nil)
	require.Equal(t, http.StatusOK, status, "snapshot: %v", snap)

	assert.Equal(t, float64(7), snap["goodMoodStreak"])
	assert.Equal(t, float64(0), snap["negativeStreak"])
	assert.Equal(t, "VERY_STABLE", snap["stability"])
	assert.Equal(t, "STABLE", snap["trend"])
	assert.False(t, snap["dataStale"].(bool))

	weekly, ok := snap["weekly"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), weekly["goodDays"])
	assert.Equal(t, float64(0), weekly["challengingDays"])

	history, ok := snap["sevenDayHistory"].([]any)
	require.True(t, ok)
	assert.Len(t, history, 7)

	boosters, ok := snap["boosters"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, boosters)

	celebrations, ok := snap["celebrations"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, celebrations, "a 7-day streak must celebrate")

	// The celebration is date-gated: a second snapshot the same day stays
	// quiet.
	status, snap = ts.doJSON(t, http.MethodGet, "/api/v1/analytics/snapshot", access, nil)
	require.Equal(t, http.StatusOK, status)
	celebrations, _ = snap["celebrations"].([]any)
	for _, c := range celebrations {
		celebration := c.(map[string]any)
		assert.NotEqual(t, "MOOD_STREAK", celebration["type"], "streak celebration must not re-fire")
	}
}

// TestE2E_LowWeekRecommendations logs a rough stretch and verifies the
// negative streak alert and recommendation surface.
func TestE2E_LowWeekRecommendations(t *testing.T) {
	ts := setupTestServer(t)
	access, _ := registerUser(t, ts)

	today := time.Now().UTC()
	for offset := 3; offset >= 1; offset-- {
		date := today.AddDate(0, 0, -offset).Format("2006-01-02")
		status, _ := ts.doJSON(t, http.MethodPost, "/api/v1/moods", access, map[string]any{
			"state":     "SAD",
			"intensity": 3,
			"date":      date,
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, snap := ts.doJSON(t, http.MethodGet, "/api/v1/analytics/snapshot", access, nil)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, float64(3), snap["negativeStreak"])

	alert, ok := snap["alert"].(map[string]any)
	require.True(t, ok, "expected an alert: %v", snap)
	assert.Equal(t, "NEGATIVE_STREAK", alert["type"])
	assert.Equal(t, "OPEN_BOOSTER_TAB", alert["action"])

	recs, ok := snap["recommendations"].([]any)
	require.True(t, ok)
	found := false
	for _, r := range recs {
		if r.(map[string]any)["title"] == "Break the Pattern" {
			found = true
		}
	}
	assert.True(t, found, "expected the streak recommendation: %v", recs)
}

func TestE2E_MoodValidation(t *testing.T) {
	ts := setupTestServer(t)
	access, _ := registerUser(t, ts)

	status, result := ts.doJSON(t, http.MethodPost, "/api/v1/moods", access, map[string]any{
		"state":     "HAPPY",
		"intensity": 42,
	})
	require.Equal(t, http.StatusBadRequest, status)

	fields, ok := result["fields"].([]any)
	require.True(t, ok, "expected field errors: %v", result)
	fieldNames := make([]string, 0, len(fields))
	for _, f := range fields {
		fieldNames = append(fieldNames, fmt.Sprint(f.(map[string]any)["field"]))
	}
	assert.Contains(t, fieldNames, "intensity")
}

func TestE2E_MoodsRequireAuth(t *testing.T) {
	ts := setupTestServer(t)

	status, _ := ts.doJSON(t, http.MethodPost, "/api/v1/moods", "", map[string]any{
		"state":     "HAPPY",
		"intensity": 5,
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = ts.doJSON(t, http.MethodGet, "/api/v1/analytics/snapshot", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

// TestE2E_UsersAreIsolated verifies one user's entries never leak into
// another's history or snapshot.
func TestE2E_UsersAreIsolated(t *testing.T) {
	ts := setupTestServer(t)
	alice, _ := registerUser(t, ts)
	bob, _ := registerUser(t, ts)

	status, _ := ts.doJSON(t, http.MethodPost, "/api/v1/moods", alice, map[string]any{
		"state":     "HAPPY",
		"intensity": 9,
	})
	require.Equal(t, http.StatusCreated, status)

	status, result := ts.doJSON(t, http.MethodGet, "/api/v1/moods", bob, nil)
	require.Equal(t, http.StatusOK, status)
	entries, _ := result["entries"].([]any)
	assert.Empty(t, entries)
}

func TestE2E_HealthEndpoints(t *testing.T) {
	ts := setupTestServer(t)

	for _, path := range []string{"/live", "/ready", "/health"} {
		status, result := ts.doJSON(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, status, "%s: %v", path, result)
		assert.Equal(t, "ok", result["status"], path)
	}
}
