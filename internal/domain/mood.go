package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxNoteLength is the cap on a mood entry's optional note, in runes.
const MaxNoteLength = 50

// MoodEntry is one raw logged data point. Entries are immutable once stored
// and are only removed by a full account reset.
type MoodEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time // calendar date, UTC midnight
	CreatedAt time.Time
	State     MoodState
	Intensity int // 1..10
	Note      string
}

// DayMood is the per-calendar-date aggregate of mood entries.
// Invariant: AverageMood is within [1, 10] for any Count >= 1.
type DayMood struct {
	Date        time.Time
	AverageMood float64
	Count       int
}

// HistorySnapshot is an ordered (ascending by date), immutable sequence of
// DayMood covering all known days. It is the sole input to the analytics
// engine; dates are normalized to UTC midnight.
type HistorySnapshot []DayMood

// Latest returns the most recent DayMood in the snapshot.
func (h HistorySnapshot) Latest() (DayMood, bool) {
	if len(h) == 0 {
		return DayMood{}, false
	}
	return h[len(h)-1], true
}

// DateOnly truncates t to its UTC calendar date (midnight).
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar date.
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
