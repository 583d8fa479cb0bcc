package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/calmbird/moodtrack-backend/internal/domain"
	"github.com/calmbird/moodtrack-backend/internal/service/moodlog"
)

const dateLayout = "2006-01-02"

// moodLogService defines the minimal interface needed by MoodHandler.
type moodLogService interface {
	LogMood(ctx context.Context, input moodlog.LogMoodInput) (*domain.MoodEntry, error)
	History(ctx context.Context, input moodlog.HistoryInput) ([]domain.MoodEntry, error)
}

// MoodHandler serves mood entry REST endpoints.
type MoodHandler struct {
	svc moodLogService
	log *slog.Logger
}

// NewMoodHandler creates a MoodHandler.
func NewMoodHandler(svc moodLogService, logger *slog.Logger) *MoodHandler {
	return &MoodHandler{svc: svc, log: logger.With("handler", "mood")}
}

type logMoodRequest struct {
	State     string `json:"state"`
	Intensity int    `json:"intensity"`
	Date      string `json:"date"` // YYYY-MM-DD, defaults to today
	Note      string `json:"note"`
}

type moodEntryResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	State     string    `json:"state"`
	Intensity int       `json:"intensity"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Create handles POST /api/v1/moods.
func (h *MoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req logMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	entry, err := h.svc.LogMood(r.Context(), moodlog.LogMoodInput{
		State:     domain.MoodState(req.State),
		Intensity: req.Intensity,
		Date:      date,
		Note:      req.Note,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMoodEntryResponse(entry))
}

// List handles GET /api/v1/moods. The optional since query parameter
// (YYYY-MM-DD) lower-bounds the returned entries.
func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
	var input moodlog.HistoryInput

	if raw := r.URL.Query().Get("since"); raw != "" {
		since, err := time.Parse(dateLayout, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid since, expected YYYY-MM-DD")
			return
		}
		input.Since = &since
	}

	entries, err := h.svc.History(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]moodEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, toMoodEntryResponse(&entries[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{"entries": resp})
}

func toMoodEntryResponse(e *domain.MoodEntry) moodEntryResponse {
	return moodEntryResponse{
		ID:        e.ID.String(),
		Date:      e.Date.Format(dateLayout),
		State:     e.State.String(),
		Intensity: e.Intensity,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}
