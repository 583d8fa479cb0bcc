package domain

// MoodState is the fixed label set a logged mood is drawn from.
type MoodState string

const (
	MoodStateHappy     MoodState = "HAPPY"
	MoodStateCalm      MoodState = "CALM"
	MoodStateEnergetic MoodState = "ENERGETIC"
	MoodStateNeutral   MoodState = "NEUTRAL"
	MoodStateTired     MoodState = "TIRED"
	MoodStateStressed  MoodState = "STRESSED"
	MoodStateAnxious   MoodState = "ANXIOUS"
	MoodStateSad       MoodState = "SAD"
)

func (s MoodState) String() string { return string(s) }

func (s MoodState) IsValid() bool {
	switch s {
	case MoodStateHappy, MoodStateCalm, MoodStateEnergetic, MoodStateNeutral,
		MoodStateTired, MoodStateStressed, MoodStateAnxious, MoodStateSad:
		return true
	}
	return false
}

// MoodStability is a coarse bucket derived from trailing-window variance.
type MoodStability string

const (
	StabilityInsufficient MoodStability = "INSUFFICIENT"
	StabilityVeryStable   MoodStability = "VERY_STABLE"
	StabilityStable       MoodStability = "STABLE"
	StabilityModerate     MoodStability = "MODERATE"
	StabilityVariable     MoodStability = "VARIABLE"
)

func (s MoodStability) String() string { return string(s) }

func (s MoodStability) IsValid() bool {
	switch s {
	case StabilityInsufficient, StabilityVeryStable, StabilityStable,
		StabilityModerate, StabilityVariable:
		return true
	}
	return false
}

// MoodTrend compares the start and end of the trailing window.
type MoodTrend string

const (
	TrendImproving MoodTrend = "IMPROVING"
	TrendStable    MoodTrend = "STABLE"
	TrendDeclining MoodTrend = "DECLINING"
)

func (t MoodTrend) String() string { return string(t) }

// PatternType identifies the kind of detected behavioral pattern.
type PatternType string

const (
	PatternNegativeStreak PatternType = "NEGATIVE_STREAK"
	PatternDayOfWeek      PatternType = "DAY_OF_WEEK"
	PatternImprovement    PatternType = "IMPROVEMENT"
	PatternTrigger        PatternType = "TRIGGER"
)

func (p PatternType) String() string { return string(p) }

// RecommendationType identifies which rule produced a recommendation.
type RecommendationType string

const (
	RecommendationStreak      RecommendationType = "STREAK"
	RecommendationPattern     RecommendationType = "PATTERN"
	RecommendationImprovement RecommendationType = "IMPROVEMENT"
	RecommendationStability   RecommendationType = "STABILITY"
)

func (r RecommendationType) String() string { return string(r) }

// AlertType identifies the kind of surfaced alert.
type AlertType string

const (
	AlertNegativeStreak  AlertType = "NEGATIVE_STREAK"
	AlertLoggingReminder AlertType = "LOGGING_REMINDER"
)

func (a AlertType) String() string { return string(a) }

// CelebrationType identifies the kind of surfaced celebration.
type CelebrationType string

const (
	CelebrationMoodStreak   CelebrationType = "MOOD_STREAK"
	CelebrationPatternBreak CelebrationType = "PATTERN_BREAK"
)

func (c CelebrationType) String() string { return string(c) }

// ActionToken is an abstract action the consumer's dispatcher interprets.
// The engine decides what to suggest, never how to execute it.
type ActionToken string

const (
	ActionOpenBoosterTab     ActionToken = "OPEN_BOOSTER_TAB"
	ActionOpenLoggingTab     ActionToken = "OPEN_LOGGING_TAB"
	ActionSetReminder        ActionToken = "SET_REMINDER"
	ActionOpenPlanner        ActionToken = "OPEN_PLANNER"
	ActionSuggestHabit       ActionToken = "SUGGEST_HABIT"
	ActionOpenRoutineBuilder ActionToken = "OPEN_ROUTINE_BUILDER"
)

func (a ActionToken) String() string { return string(a) }

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}
