package moodlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/calmbird/moodtrack-backend/internal/domain"
	"github.com/calmbird/moodtrack-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type moodLogRepo interface {
	Create(ctx context.Context, entry *domain.MoodEntry) (*domain.MoodEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID, since *time.Time) ([]domain.MoodEntry, error)
}

type analyticsTracker interface {
	MarkMoodLogged(ctx context.Context, today time.Time) error
	InvalidateCache(userID uuid.UUID)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements mood log ingestion and history reads.
type Service struct {
	moods     moodLogRepo
	analytics analyticsTracker
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new mood log service.
func NewService(logger *slog.Logger, moods moodLogRepo, analytics analyticsTracker) *Service {
	return &Service{
		moods:     moods,
		analytics: analytics,
		log:       logger.With("service", "moodlog"),
		now:       time.Now,
	}
}

// LogMood validates and stores one mood entry, then records log recency
// with the analytics scheduler. Invalid entries are rejected before any
// state changes.
func (s *Service) LogMood(ctx context.Context, input LogMoodInput) (*domain.MoodEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now().UTC()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	entry := &domain.MoodEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      domain.DateOnly(input.Date),
		CreatedAt: now,
		State:     input.State,
		Intensity: input.Intensity,
		Note:      input.Note,
	}

	created, err := s.moods.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("store mood entry: %w", err)
	}

	s.analytics.InvalidateCache(userID)
	// Recency tracks the act of logging, not the (possibly backfilled)
	// entry date. Best-effort; the entry is already durable.
	if err := s.analytics.MarkMoodLogged(ctx, now); err != nil {
		s.log.WarnContext(ctx, "mark mood logged failed",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}

	s.log.InfoContext(ctx, "mood logged",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", created.ID.String()),
		slog.String("state", created.State.String()),
		slog.Int("intensity", created.Intensity),
	)

	return created, nil
}

// History returns the user's mood entries ascending by date, optionally
// filtered to entries on or after Since.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.MoodEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.moods.ListByUser(ctx, userID, input.Since)
	if err != nil {
		return nil, fmt.Errorf("list mood entries: %w", err)
	}

	return entries, nil
}
