package moodlog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/calmbird/moodtrack-backend/internal/domain"
)

// LogMoodInput holds parameters for logging one mood entry.
type LogMoodInput struct {
	State     domain.MoodState
	Intensity int
	Date      time.Time
	Note      string
}

// Validate enforces the ingestion contract before anything reaches the
// store: known mood state, integer intensity 1..10, valid non-future
// calendar date, note within length limits.
func (i *LogMoodInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.State == "" {
		errs = append(errs, domain.FieldError{Field: "state", Message: "required"})
	} else if !i.State.IsValid() {
		errs = append(errs, domain.FieldError{Field: "state", Message: "unknown mood state"})
	}

	if i.Intensity < 1 || i.Intensity > 10 {
		errs = append(errs, domain.FieldError{Field: "intensity", Message: "must be between 1 and 10"})
	}

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	} else if domain.DateOnly(i.Date).After(domain.DateOnly(now)) {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must not be in the future"})
	}

	i.Note = strings.TrimSpace(i.Note)
	if utf8.RuneCountInString(i.Note) > domain.MaxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HistoryInput holds parameters for listing mood entries.
type HistoryInput struct {
	Since *time.Time
}
