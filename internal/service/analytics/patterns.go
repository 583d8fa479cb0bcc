package analytics

import (
	"fmt"
	"time"

	"github.com/calmbird/moodtrack-backend/internal/domain"
)

const (
	// A weekday needs at least this many samples before it can carry a
	// day-of-week pattern.
	weekdayMinSamples = 2

	bestDayThreshold  = 7.0
	worstDayThreshold = 4.0

	// improvementDelta is how much the recent half of the trailing window
	// must exceed the earlier half for the improvement pattern to fire.
	improvementDelta = 1.5

	// triggerMinDays is the minimum history before the note analyzer runs.
	triggerMinDays = 5
)

// NoteAnalyzer turns logged history into an optional trigger pattern. It is
// a strategy extension point; the default implementation does not inspect
// note content.
type NoteAnalyzer interface {
	Analyze(history domain.HistorySnapshot) (domain.Pattern, bool)
}

// DetectPatterns runs every detector over the snapshot. Detectors are
// independent; any subset may fire. The result order is fixed: negative
// streak, day-of-week (best, then challenging), improvement, trigger.
func DetectPatterns(history domain.HistorySnapshot, today time.Time, notes NoteAnalyzer) []domain.Pattern {
	var patterns []domain.Pattern

	if p, ok := detectNegativeStreak(history, today); ok {
		patterns = append(patterns, p)
	}
	patterns = append(patterns, detectDayOfWeek(history)...)
	if p, ok := detectImprovement(history); ok {
		patterns = append(patterns, p)
	}
	if notes != nil && len(history) >= triggerMinDays {
		if p, ok := notes.Analyze(history); ok {
			patterns = append(patterns, p)
		}
	}

	return patterns
}

func detectNegativeStreak(history domain.HistorySnapshot, today time.Time) (domain.Pattern, bool) {
	streak := NegativeStreak(history, today)
	if streak == 0 {
		return domain.Pattern{}, false
	}

	noun := "days"
	if streak == 1 {
		noun = "day"
	}
	return domain.Pattern{
		Type:        domain.PatternNegativeStreak,
		Title:       "Low Mood Streak",
		Description: fmt.Sprintf("Your mood has been low for %d %s in a row.", streak, noun),
		Severity:    "warning",
		Actionable:  true,
	}, true
}

// detectDayOfWeek mines the full history grouped by weekday. The weekday
// domain is closed and small, so a fixed 7-slot accumulator is used instead
// of a keyed map. Ties keep the first-encountered weekday (Sunday-first
// index order); the tie-break is deterministic but not meaningful.
func detectDayOfWeek(history domain.HistorySnapshot) []domain.Pattern {
	var acc [7]struct {
		sum   float64
		count int
	}
	for _, day := range history {
		wd := day.Date.Weekday()
		acc[wd].sum += day.AverageMood
		acc[wd].count++
	}

	bestDay, worstDay := -1, -1
	bestMean, worstMean := 0.0, 0.0
	for wd := 0; wd < 7; wd++ {
		if acc[wd].count < weekdayMinSamples {
			continue
		}
		m := acc[wd].sum / float64(acc[wd].count)
		if bestDay == -1 || m > bestMean {
			bestDay, bestMean = wd, m
		}
		if worstDay == -1 || m < worstMean {
			worstDay, worstMean = wd, m
		}
	}

	var patterns []domain.Pattern
	if bestDay >= 0 && bestMean >= bestDayThreshold {
		name := time.Weekday(bestDay).String()
		patterns = append(patterns, domain.Pattern{
			Type:        domain.PatternDayOfWeek,
			Title:       fmt.Sprintf("%ss Lift You Up", name),
			Description: fmt.Sprintf("%ss tend to be your best days, averaging %.1f.", name, bestMean),
			Severity:    "success",
			Actionable:  false,
		})
	}
	if worstDay >= 0 && worstMean <= worstDayThreshold {
		name := time.Weekday(worstDay).String()
		patterns = append(patterns, domain.Pattern{
			Type:        domain.PatternDayOfWeek,
			Title:       fmt.Sprintf("%ss Are Challenging", name),
			Description: fmt.Sprintf("%ss tend to be your hardest days, averaging %.1f.", name, worstMean),
			Severity:    "warning",
			Actionable:  true,
		})
	}

	return patterns
}

// detectImprovement splits the trailing 7 recorded days into the first three
// and the last three (middle day dropped) and fires when the recent mean
// clearly exceeds the earlier one.
func detectImprovement(history domain.HistorySnapshot) (domain.Pattern, bool) {
	if len(history) < trailingWindowDays {
		return domain.Pattern{}, false
	}

	window := trailingWindow(history)
	firstThree := window[:3]
	lastThree := window[4:]

	recent := mean(lastThree)
	earlier := mean(firstThree)
	if recent <= earlier+improvementDelta {
		return domain.Pattern{}, false
	}

	return domain.Pattern{
		Type:        domain.PatternImprovement,
		Title:       "On the Upswing",
		Description: fmt.Sprintf("Your mood improved from %.1f to %.1f over the past week.", earlier, recent),
		Severity:    "success",
		Actionable:  false,
	}, true
}

// StaticNoteAnalyzer is the default NoteAnalyzer. It emits one fixed
// categorical pattern and never inspects note text.
type StaticNoteAnalyzer struct{}

// Analyze returns the placeholder trigger pattern. DetectPatterns has
// already enforced the minimum-history requirement.
func (StaticNoteAnalyzer) Analyze(_ domain.HistorySnapshot) (domain.Pattern, bool) {
	return domain.Pattern{
		Type:        domain.PatternTrigger,
		Title:       "Possible Triggers",
		Description: "Review your notes on low days; recurring situations often show up there.",
		Severity:    "info",
		Actionable:  false,
	}, true
}
