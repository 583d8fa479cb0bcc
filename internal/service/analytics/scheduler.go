package analytics

import (
	"fmt"
	"time"

	"github.com/calmbird/moodtrack-backend/internal/domain"
)

const (
	// negativeAlertStreak is the low-mood run length that raises an alert.
	negativeAlertStreak = 3

	// reminderGapDays is how many days without a log trigger a reminder.
	// A user who never logged counts as past the gap.
	reminderGapDays = 2

	// celebrationStreak is the good-mood run length worth celebrating.
	celebrationStreak = 7
)

// EvaluateNotifications runs the date-gated alert and celebration rules.
// It returns at most one alert, zero or more celebrations, and the next
// scheduler state. The caller persists the state only when it changed;
// the function itself performs no I/O.
func EvaluateNotifications(history domain.HistorySnapshot, today time.Time, state domain.SchedulerState) (*domain.Alert, []domain.Celebration, domain.SchedulerState) {
	today = domain.DateOnly(today)
	next := state

	alert := evaluateAlert(history, today, state)

	var celebrations []domain.Celebration
	if goodStreakCelebration(history, today, state) {
		celebrations = append(celebrations, domain.Celebration{
			Type:    domain.CelebrationMoodStreak,
			Title:   "One Week Strong",
			Message: fmt.Sprintf("%d good days in a row — keep it going!", GoodMoodStreak(history, today)),
		})
		next.LastCelebrationDate = &today
	}
	if patternBreakCelebration(history, today) {
		celebrations = append(celebrations, domain.Celebration{
			Type:    domain.CelebrationPatternBreak,
			Title:   "You Turned It Around",
			Message: "You pulled out of a rough patch this week. That takes real effort.",
		})
	}

	return alert, celebrations, next
}

// evaluateAlert applies the alert rules in order; the first match wins and
// at most one alert is surfaced per evaluation.
func evaluateAlert(history domain.HistorySnapshot, today time.Time, state domain.SchedulerState) *domain.Alert {
	if streak := NegativeStreak(history, today); streak >= negativeAlertStreak {
		return &domain.Alert{
			Type:    domain.AlertNegativeStreak,
			Title:   "Rough Few Days",
			Message: fmt.Sprintf("Your mood has been low for %d days. A short mood booster might help.", streak),
			Action:  domain.ActionOpenBoosterTab,
		}
	}

	if state.LastMoodLogDate == nil {
		return loggingReminder()
	}
	last := domain.DateOnly(*state.LastMoodLogDate)
	if !last.Equal(today) && daysBetween(last, today) >= reminderGapDays {
		return loggingReminder()
	}

	return nil
}

func loggingReminder() *domain.Alert {
	return &domain.Alert{
		Type:    domain.AlertLoggingReminder,
		Title:   "How Are You Feeling?",
		Message: "You haven't logged your mood in a while. A quick check-in keeps your insights accurate.",
		Action:  domain.ActionOpenLoggingTab,
	}
}

// goodStreakCelebration fires at most once per calendar day.
func goodStreakCelebration(history domain.HistorySnapshot, today time.Time, state domain.SchedulerState) bool {
	if GoodMoodStreak(history, today) < celebrationStreak {
		return false
	}
	return state.LastCelebrationDate == nil || !domain.SameDay(*state.LastCelebrationDate, today)
}

// patternBreakCelebration fires when a recent rough patch (a sub-5 day in
// the trailing window past its first three entries) has fully cleared.
// This celebration carries no date gate; repeated same-day evaluations can
// re-surface it.
func patternBreakCelebration(history domain.HistorySnapshot, today time.Time) bool {
	if NegativeStreak(history, today) != 0 || len(history) < trailingWindowDays {
		return false
	}
	window := trailingWindow(history)
	for _, day := range window[3:] {
		if day.AverageMood < challengingDayThreshold {
			return true
		}
	}
	return false
}

// RecordMoodLog is the only sanctioned mutation of LastMoodLogDate. Mood
// ingestion routes through here so the scheduler stays the sole owner of
// its state.
func RecordMoodLog(state domain.SchedulerState, today time.Time) domain.SchedulerState {
	day := domain.DateOnly(today)
	state.LastMoodLogDate = &day
	return state
}

func daysBetween(from, to time.Time) int {
	return int(domain.DateOnly(to).Sub(domain.DateOnly(from)).Hours() / 24)
}
