package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/calmbird/moodtrack-backend/internal/domain"
	"github.com/calmbird/moodtrack-backend/internal/service/analytics"
)

// analyticsService defines the minimal interface needed by AnalyticsHandler.
type analyticsService interface {
	BuildSnapshot(ctx context.Context, today time.Time) (domain.AnalyticsSnapshot, error)
}

// AnalyticsHandler serves the analytics snapshot and booster catalog.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

type snapshotResponse struct {
	GoodMoodStreak  int                      `json:"goodMoodStreak"`
	NegativeStreak  int                      `json:"negativeStreak"`
	Weekly          weeklySummaryResponse    `json:"weekly"`
	Stability       string                   `json:"stability"`
	Trend           string                   `json:"trend"`
	SevenDayHistory []dayBucketResponse      `json:"sevenDayHistory"`
	Patterns        []patternResponse        `json:"patterns"`
	Alert           *alertResponse           `json:"alert,omitempty"`
	Celebrations    []celebrationResponse    `json:"celebrations"`
	Recommendations []recommendationResponse `json:"recommendations"`
	Boosters        []boosterResponse        `json:"boosters"`
	DataStale       bool                     `json:"dataStale"`
}

type weeklySummaryResponse struct {
	GoodDays        int     `json:"goodDays"`
	ChallengingDays int     `json:"challengingDays"`
	TotalDays       int     `json:"totalDays"`
	AvgMood         float64 `json:"avgMood"`
}

type dayBucketResponse struct {
	Date  string   `json:"date"`
	Mood  *float64 `json:"mood"`
	Count int      `json:"count"`
}

type patternResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Actionable  bool   `json:"actionable"`
}

type alertResponse struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

type celebrationResponse struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type recommendationResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Actionable  bool   `json:"actionable"`
	ActionText  string `json:"actionText,omitempty"`
	Action      string `json:"action,omitempty"`
}

type boosterResponse struct {
	Title       string   `json:"title"`
	Icon        string   `json:"icon"`
	Duration    string   `json:"duration"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// Snapshot handles GET /api/v1/analytics/snapshot.
func (h *AnalyticsHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.BuildSnapshot(r.Context(), time.Now())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

// Boosters handles GET /api/v1/analytics/boosters. The catalog is static
// and requires no user context.
func (h *AnalyticsHandler) Boosters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"boosters": toBoosterResponses(analytics.BoosterCatalog()),
	})
}

func toSnapshotResponse(s domain.AnalyticsSnapshot) snapshotResponse {
	resp := snapshotResponse{
		GoodMoodStreak: s.GoodMoodStreak,
		NegativeStreak: s.NegativeStreak,
		Weekly: weeklySummaryResponse{
			GoodDays:        s.Weekly.GoodDays,
			ChallengingDays: s.Weekly.ChallengingDays,
			TotalDays:       s.Weekly.TotalDays,
			AvgMood:         s.Weekly.AvgMood,
		},
		Stability:       s.Stability.String(),
		Trend:           s.Trend.String(),
		SevenDayHistory: make([]dayBucketResponse, 0, len(s.SevenDayHistory)),
		Patterns:        make([]patternResponse, 0, len(s.Patterns)),
		Celebrations:    make([]celebrationResponse, 0, len(s.Celebrations)),
		Recommendations: make([]recommendationResponse, 0, len(s.Recommendations)),
		Boosters:        toBoosterResponses(s.Boosters),
		DataStale:       s.DataStale,
	}

	for _, b := range s.SevenDayHistory {
		resp.SevenDayHistory = append(resp.SevenDayHistory, dayBucketResponse{
			Date:  b.Date.Format(dateLayout),
			Mood:  b.Mood,
			Count: b.Count,
		})
	}

	for _, p := range s.Patterns {
		resp.Patterns = append(resp.Patterns, patternResponse{
			Type:        p.Type.String(),
			Title:       p.Title,
			Description: p.Description,
			Severity:    p.Severity,
			Actionable:  p.Actionable,
		})
	}

	if s.Alert != nil {
		resp.Alert = &alertResponse{
			Type:    s.Alert.Type.String(),
			Title:   s.Alert.Title,
			Message: s.Alert.Message,
			Action:  s.Alert.Action.String(),
		}
	}

	for _, c := range s.Celebrations {
		resp.Celebrations = append(resp.Celebrations, celebrationResponse{
			Type:    c.Type.String(),
			Title:   c.Title,
			Message: c.Message,
		})
	}

	for _, rec := range s.Recommendations {
		resp.Recommendations = append(resp.Recommendations, recommendationResponse{
			Type:        rec.Type.String(),
			Title:       rec.Title,
			Description: rec.Description,
			Icon:        rec.Icon,
			Color:       rec.Color,
			Actionable:  rec.Actionable,
			ActionText:  rec.ActionText,
			Action:      rec.Action.String(),
		})
	}

	return resp
}

func toBoosterResponses(boosters []domain.Booster) []boosterResponse {
	out := make([]boosterResponse, 0, len(boosters))
	for _, b := range boosters {
		out = append(out, boosterResponse{
			Title:       b.Title,
			Icon:        b.Icon,
			Duration:    b.Duration,
			Category:    b.Category,
			Description: b.Description,
			Steps:       b.Steps,
		})
	}
	return out
}
