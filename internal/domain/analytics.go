package domain

import (
	"time"

	"github.com/google/uuid"
)

// WeeklySummary aggregates the trailing window of recorded days.
// Invariant: GoodDays + ChallengingDays <= TotalDays.
type WeeklySummary struct {
	GoodDays        int
	ChallengingDays int
	TotalDays       int
	AvgMood         float64
}

// DayBucket is one calendar-complete display bucket. Mood is nil for days
// with no recorded entries.
type DayBucket struct {
	Date  time.Time
	Mood  *float64
	Count int
}

// Pattern is a detected recurring behavioral signal. Patterns are computed
// fresh on every evaluation and never persisted.
type Pattern struct {
	Type        PatternType
	Title       string
	Description string
	Severity    string // display token: "success", "info", "warning"
	Actionable  bool
}

// Recommendation is an actionable suggestion derived from current
// statistics and patterns.
type Recommendation struct {
	Type        RecommendationType
	Title       string
	Description string
	Icon        string
	Color       string
	Actionable  bool
	ActionText  string
	Action      ActionToken
}

// Alert is a gated notification surfaced to the consumer. Acting on it
// yields the Action token; dismissing it persists nothing.
type Alert struct {
	Type    AlertType
	Title   string
	Message string
	Action  ActionToken
}

// Celebration marks a positive milestone.
type Celebration struct {
	Type    CelebrationType
	Title   string
	Message string
}

// Booster is a short mood-lifting activity from the static catalog.
type Booster struct {
	Title       string
	Icon        string
	Duration    string
	Category    string
	Description string
	Steps       []string
}

// SchedulerState holds the persisted per-user gating fields that prevent
// duplicate alerts and celebrations within the same day. It is owned
// exclusively by the notification scheduler.
type SchedulerState struct {
	UserID              uuid.UUID
	LastMoodLogDate     *time.Time
	LastCelebrationDate *time.Time
}

// Equal reports whether two states carry the same gating dates.
func (s SchedulerState) Equal(other SchedulerState) bool {
	return s.UserID == other.UserID &&
		equalDatePtr(s.LastMoodLogDate, other.LastMoodLogDate) &&
		equalDatePtr(s.LastCelebrationDate, other.LastCelebrationDate)
}

func equalDatePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return SameDay(*a, *b)
}

// AnalyticsSnapshot is the single immutable result handed to the consumer.
type AnalyticsSnapshot struct {
	GoodMoodStreak  int
	NegativeStreak  int
	Weekly          WeeklySummary
	Stability       MoodStability
	Trend           MoodTrend
	SevenDayHistory []DayBucket
	Patterns        []Pattern
	Alert           *Alert
	Celebrations    []Celebration
	Recommendations []Recommendation
	Boosters        []Booster
	DataStale       bool
}
