package analytics

import (
	"fmt"
	"time"

	"github.com/calmbird/moodtrack-backend/internal/domain"
)

// minStabilityHistoryDays gates the consistency recommendation; stability
// itself already needs a full trailing window.
const minStabilityHistoryDays = 7

// BuildRecommendations evaluates the fixed rule table in order. Several
// rules may emit; the output order is stable for identical inputs.
//
//	1. negative streak >= 3        -> STREAK "Break the Pattern"
//	2. actionable day-of-week      -> PATTERN "Prepare for Challenging Days"
//	3. improvement pattern         -> IMPROVEMENT "Keep the Momentum"
//	4. >= 7 days, variable mood    -> STABILITY "Build Consistency"
func BuildRecommendations(history domain.HistorySnapshot, today time.Time, patterns []domain.Pattern) []domain.Recommendation {
	var recs []domain.Recommendation

	if streak := NegativeStreak(history, today); streak >= negativeAlertStreak {
		recs = append(recs, domain.Recommendation{
			Type:        domain.RecommendationStreak,
			Title:       "Break the Pattern",
			Description: fmt.Sprintf("After %d low days, one small uplifting activity can shift the trajectory.", streak),
			Icon:        "refresh",
			Color:       "red",
			Actionable:  true,
			ActionText:  "Try a Mood Booster",
			Action:      domain.ActionOpenBoosterTab,
		})
	}

	if p, ok := findPattern(patterns, domain.PatternDayOfWeek, true); ok {
		recs = append(recs, domain.Recommendation{
			Type:        domain.RecommendationPattern,
			Title:       "Prepare for Challenging Days",
			Description: fmt.Sprintf("%s Planning something kind for yourself on those days softens them.", p.Description),
			Icon:        "calendar",
			Color:       "amber",
			Actionable:  true,
			ActionText:  "Set a Reminder",
			Action:      domain.ActionSetReminder,
		})
	}

	if p, ok := findPattern(patterns, domain.PatternImprovement, false); ok {
		recs = append(recs, domain.Recommendation{
			Type:        domain.RecommendationImprovement,
			Title:       "Keep the Momentum",
			Description: fmt.Sprintf("%s Whatever you changed recently is working.", p.Description),
			Icon:        "trending-up",
			Color:       "green",
			Actionable:  true,
			ActionText:  "Plan Tomorrow",
			Action:      domain.ActionOpenPlanner,
		})
	}

	if len(history) >= minStabilityHistoryDays && Stability(history) == domain.StabilityVariable {
		recs = append(recs, domain.Recommendation{
			Type:        domain.RecommendationStability,
			Title:       "Build Consistency",
			Description: "Your mood has been swinging widely. A steady daily anchor — same walk, same tea, same time — evens things out.",
			Icon:        "anchor",
			Color:       "blue",
			Actionable:  true,
			ActionText:  "Build a Routine",
			Action:      domain.ActionOpenRoutineBuilder,
		})
	}

	return recs
}

// findPattern returns the first pattern of the given type. When
// mustBeActionable is set, only actionable patterns match.
func findPattern(patterns []domain.Pattern, t domain.PatternType, mustBeActionable bool) (domain.Pattern, bool) {
	for _, p := range patterns {
		if p.Type != t {
			continue
		}
		if mustBeActionable && !p.Actionable {
			continue
		}
		return p, true
	}
	return domain.Pattern{}, false
}
