package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/calmbird/moodtrack-backend/internal/domain"
	"github.com/calmbird/moodtrack-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type moodLogRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, since *time.Time) ([]domain.MoodEntry, error)
}

type schedulerStateRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.SchedulerState, error)
	Upsert(ctx context.Context, state domain.SchedulerState) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service builds the analytics snapshot handed to the consumer. The
// computation stages are pure; the service only adds storage access, the
// cached-history fallback, and scheduler state persistence.
type Service struct {
	moods  moodLogRepo
	states schedulerStateRepo
	notes  NoteAnalyzer
	log    *slog.Logger

	mu    sync.Mutex
	cache map[uuid.UUID]domain.HistorySnapshot
}

// NewService creates the analytics service. A nil analyzer falls back to
// the static placeholder strategy.
func NewService(logger *slog.Logger, moods moodLogRepo, states schedulerStateRepo, notes NoteAnalyzer) *Service {
	if notes == nil {
		notes = StaticNoteAnalyzer{}
	}
	return &Service{
		moods:  moods,
		states: states,
		notes:  notes,
		log:    logger.With("service", "analytics"),
		cache:  make(map[uuid.UUID]domain.HistorySnapshot),
	}
}

// BuildSnapshot is the single consumer entry point. It never fails the
// whole request on a storage hiccup: a failed history read falls back to
// the last cached history (DataStale set), or to neutral statistics when
// no cache exists.
func (s *Service) BuildSnapshot(ctx context.Context, today time.Time) (domain.AnalyticsSnapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.AnalyticsSnapshot{}, domain.ErrUnauthorized
	}

	today = domain.DateOnly(today)

	history, stale := s.loadHistory(ctx, userID)

	snapshot := domain.AnalyticsSnapshot{
		GoodMoodStreak:  GoodMoodStreak(history, today),
		NegativeStreak:  NegativeStreak(history, today),
		Weekly:          WeekSummary(history),
		Stability:       Stability(history),
		Trend:           Trend(history),
		SevenDayHistory: SevenDayHistory(history, today),
		Boosters:        BoosterCatalog(),
		DataStale:       stale,
	}

	snapshot.Patterns = DetectPatterns(history, today, s.notes)
	snapshot.Recommendations = BuildRecommendations(history, today, snapshot.Patterns)

	state := s.loadSchedulerState(ctx, userID)
	if state.LastMoodLogDate == nil {
		// A user can have history without gate state (seeded data, a
		// lost state row). The newest recorded day then stands in for
		// the last log so the reminder gap is not measured from never.
		if latest, ok := history.Latest(); ok {
			d := latest.Date
			state.LastMoodLogDate = &d
		}
	}
	alert, celebrations, next := EvaluateNotifications(history, today, state)
	snapshot.Alert = alert
	snapshot.Celebrations = celebrations

	if !next.Equal(state) {
		// A write failure degrades the at-most-once-per-day gate to
		// best-effort; the snapshot is still returned.
		if err := s.states.Upsert(ctx, next); err != nil {
			s.log.WarnContext(ctx, "scheduler state write failed",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}
	}

	s.log.InfoContext(ctx, "analytics snapshot built",
		slog.String("user_id", userID.String()),
		slog.Int("good_streak", snapshot.GoodMoodStreak),
		slog.Int("negative_streak", snapshot.NegativeStreak),
		slog.Int("patterns", len(snapshot.Patterns)),
		slog.Int("recommendations", len(snapshot.Recommendations)),
		slog.Bool("data_stale", snapshot.DataStale),
	)

	return snapshot, nil
}

// MarkMoodLogged records a successful mood log in the scheduler state.
// Mood ingestion calls this; no other component mutates the state.
func (s *Service) MarkMoodLogged(ctx context.Context, today time.Time) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	state := s.loadSchedulerState(ctx, userID)
	next := RecordMoodLog(state, today)
	if next.Equal(state) {
		return nil
	}
	if err := s.states.Upsert(ctx, next); err != nil {
		return fmt.Errorf("persist scheduler state: %w", err)
	}

	return nil
}

// InvalidateCache drops the cached history for a user, forcing the next
// snapshot to re-read the store.
func (s *Service) InvalidateCache(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, userID)
}

// loadHistory fetches and aggregates the user's mood log. On a read failure
// it falls back to the cached history and reports staleness; with no cache
// it returns the empty snapshot, which yields neutral statistics.
func (s *Service) loadHistory(ctx context.Context, userID uuid.UUID) (domain.HistorySnapshot, bool) {
	entries, err := s.moods.ListByUser(ctx, userID, nil)
	if err == nil {
		history := AggregateDays(entries)
		s.mu.Lock()
		s.cache[userID] = history
		s.mu.Unlock()
		return history, false
	}

	s.log.WarnContext(ctx, "mood log read failed, serving fallback",
		slog.String("user_id", userID.String()),
		slog.Any("error", err),
	)

	s.mu.Lock()
	cached, ok := s.cache[userID]
	s.mu.Unlock()
	if !ok {
		return domain.HistorySnapshot{}, true
	}
	return cached, true
}

// loadSchedulerState reads the persisted gate state. Absence is the normal
// first-run case; any other failure is logged and treated as empty state.
func (s *Service) loadSchedulerState(ctx context.Context, userID uuid.UUID) domain.SchedulerState {
	state, err := s.states.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "scheduler state read failed, assuming empty",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}
		return domain.SchedulerState{UserID: userID}
	}
	return state
}
