// Package schedulerstate persists the per-user notification gate state.
// One row per user; the scheduler reads it at the start of each evaluation
// and writes it only when a gated event fires.
package schedulerstate

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/calmbird/moodtrack-backend/internal/adapter/postgres"
	"github.com/calmbird/moodtrack-backend/internal/domain"
)

// Repo provides scheduler state persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new scheduler state repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getSQL = `
SELECT user_id, last_mood_log_date, last_celebration_date
FROM scheduler_states
WHERE user_id = $1`

const upsertSQL = `
INSERT INTO scheduler_states (user_id, last_mood_log_date, last_celebration_date, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (user_id) DO UPDATE
SET last_mood_log_date = EXCLUDED.last_mood_log_date,
    last_celebration_date = EXCLUDED.last_celebration_date,
    updated_at = now()`

// Get returns the user's scheduler state.
// Returns domain.ErrNotFound when the user has never triggered a write.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (domain.SchedulerState, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var state domain.SchedulerState
	err := querier.QueryRow(ctx, getSQL, userID).Scan(
		&state.UserID, &state.LastMoodLogDate, &state.LastCelebrationDate,
	)
	if err != nil {
		return domain.SchedulerState{}, postgres.MapError(err, "scheduler_state", userID)
	}

	return state, nil
}

// Upsert writes the state, last-write-wins. Single-active-session is the
// caller's assumption; no row locking is used.
func (r *Repo) Upsert(ctx context.Context, state domain.SchedulerState) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, upsertSQL,
		state.UserID, state.LastMoodLogDate, state.LastCelebrationDate,
	)
	if err != nil {
		return postgres.MapError(err, "scheduler_state", state.UserID)
	}

	return nil
}
