package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/calmbird/moodtrack-backend/internal/domain"
)

// Lookback windows for the streak scans. The scans walk backward day by day
// and exit on the first missing or disqualifying day.
const (
	goodStreakLookbackDays     = 30
	negativeStreakLookbackDays = 7

	// trailingWindowDays is the size of the window used by the weekly
	// summary, stability, trend, and the improvement detector.
	trailingWindowDays = 7

	// A day qualifies as good at averageMood >= goodDayThreshold and as
	// challenging at averageMood < challengingDayThreshold.
	goodDayThreshold        = 6.0
	challengingDayThreshold = 5.0
)

// AggregateDays collapses raw entries into one DayMood per calendar date,
// ordered ascending. Multiple entries on the same date are combined by the
// arithmetic mean of their intensities.
func AggregateDays(entries []domain.MoodEntry) domain.HistorySnapshot {
	if len(entries) == 0 {
		return domain.HistorySnapshot{}
	}

	type acc struct {
		sum   float64
		count int
	}
	byDate := make(map[time.Time]*acc, len(entries))
	for _, e := range entries {
		d := domain.DateOnly(e.Date)
		a, ok := byDate[d]
		if !ok {
			a = &acc{}
			byDate[d] = a
		}
		a.sum += float64(e.Intensity)
		a.count++
	}

	history := make(domain.HistorySnapshot, 0, len(byDate))
	for d, a := range byDate {
		history = append(history, domain.DayMood{
			Date:        d,
			AverageMood: a.sum / float64(a.count),
			Count:       a.count,
		})
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})

	return history
}

// GoodMoodStreak counts consecutive days ending at today with
// averageMood >= 6, scanning back at most 30 days. A day not yet logged
// today does not break the streak; the scan then starts at yesterday.
func GoodMoodStreak(history domain.HistorySnapshot, today time.Time) int {
	return qualifyingStreak(history, today, goodStreakLookbackDays, func(avg float64) bool {
		return avg >= goodDayThreshold
	})
}

// NegativeStreak counts consecutive days ending at today with
// averageMood < 5, scanning back at most 7 days. Same today-grace rule as
// GoodMoodStreak.
func NegativeStreak(history domain.HistorySnapshot, today time.Time) int {
	return qualifyingStreak(history, today, negativeStreakLookbackDays, func(avg float64) bool {
		return avg < challengingDayThreshold
	})
}

func qualifyingStreak(history domain.HistorySnapshot, today time.Time, lookbackDays int, qualifies func(float64) bool) int {
	if len(history) == 0 {
		return 0
	}

	byDate := indexByDate(history)
	expected := domain.DateOnly(today)
	if _, ok := byDate[expected]; !ok {
		expected = expected.AddDate(0, 0, -1)
	}

	streak := 0
	for i := 0; i < lookbackDays; i++ {
		day, ok := byDate[expected]
		if !ok || !qualifies(day.AverageMood) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}

	return streak
}

// WeekSummary aggregates the trailing window: good days, challenging days,
// mean mood, and the number of recorded days actually present.
func WeekSummary(history domain.HistorySnapshot) domain.WeeklySummary {
	window := trailingWindow(history)
	summary := domain.WeeklySummary{TotalDays: len(window)}
	if len(window) == 0 {
		return summary
	}

	sum := 0.0
	for _, day := range window {
		sum += day.AverageMood
		if day.AverageMood >= goodDayThreshold {
			summary.GoodDays++
		} else if day.AverageMood < challengingDayThreshold {
			summary.ChallengingDays++
		}
	}
	summary.AvgMood = sum / float64(len(window))

	return summary
}

// Stability classifies the population standard deviation of the trailing
// window. Fewer than 7 recorded days is not enough signal to classify.
func Stability(history domain.HistorySnapshot) domain.MoodStability {
	window := trailingWindow(history)
	if len(window) < trailingWindowDays {
		return domain.StabilityInsufficient
	}

	mean := 0.0
	for _, day := range window {
		mean += day.AverageMood
	}
	mean /= float64(len(window))

	variance := 0.0
	for _, day := range window {
		diff := day.AverageMood - mean
		variance += diff * diff
	}
	stddev := math.Sqrt(variance / float64(len(window)))

	switch {
	case stddev < 1:
		return domain.StabilityVeryStable
	case stddev < 2:
		return domain.StabilityStable
	case stddev < 3:
		return domain.StabilityModerate
	default:
		return domain.StabilityVariable
	}
}

// Trend compares the first and last recorded day of the trailing window.
// A difference beyond +/-1 counts as movement.
func Trend(history domain.HistorySnapshot) domain.MoodTrend {
	window := trailingWindow(history)
	if len(window) < 2 {
		return domain.TrendStable
	}

	first := window[0].AverageMood
	last := window[len(window)-1].AverageMood
	switch {
	case last > first+1:
		return domain.TrendImproving
	case last < first-1:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

// SevenDayHistory produces exactly 7 calendar-complete display buckets
// covering today-6 through today, nil mood for missing days.
func SevenDayHistory(history domain.HistorySnapshot, today time.Time) []domain.DayBucket {
	byDate := indexByDate(history)
	start := domain.DateOnly(today).AddDate(0, 0, -(trailingWindowDays - 1))

	buckets := make([]domain.DayBucket, trailingWindowDays)
	for i := range buckets {
		date := start.AddDate(0, 0, i)
		buckets[i] = domain.DayBucket{Date: date}
		if day, ok := byDate[date]; ok {
			mood := day.AverageMood
			buckets[i].Mood = &mood
			buckets[i].Count = day.Count
		}
	}

	return buckets
}

// trailingWindow returns the last up-to-7 recorded days of the snapshot.
// Calendar gaps reduce the window rather than padding it.
func trailingWindow(history domain.HistorySnapshot) domain.HistorySnapshot {
	if len(history) <= trailingWindowDays {
		return history
	}
	return history[len(history)-trailingWindowDays:]
}

func indexByDate(history domain.HistorySnapshot) map[time.Time]domain.DayMood {
	byDate := make(map[time.Time]domain.DayMood, len(history))
	for _, day := range history {
		byDate[domain.DateOnly(day.Date)] = day
	}
	return byDate
}

func mean(days []domain.DayMood) float64 {
	if len(days) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range days {
		sum += d.AverageMood
	}
	return sum / float64(len(days))
}
