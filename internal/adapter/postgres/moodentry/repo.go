// Package moodentry implements the mood log store using PostgreSQL.
// The insert is a fixed statement; the list query is built with squirrel
// because of its optional since-date filter.
package moodentry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/calmbird/moodtrack-backend/internal/adapter/postgres"
	"github.com/calmbird/moodtrack-backend/internal/domain"
)

// Repo provides mood entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mood entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const createSQL = `
INSERT INTO mood_entries (id, user_id, entry_date, state, intensity, note, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, entry_date, state, intensity, note, created_at`

const latestDateSQL = `
SELECT max(entry_date) FROM mood_entries WHERE user_id = $1`

// Create inserts a new mood entry and returns the persisted row.
// Entries are append-only; there is no update path.
func (r *Repo) Create(ctx context.Context, entry *domain.MoodEntry) (*domain.MoodEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	row := querier.QueryRow(ctx, createSQL,
		entry.ID, entry.UserID, entry.Date, entry.State.String(),
		entry.Intensity, entry.Note, entry.CreatedAt,
	)

	created, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "mood_entry", entry.ID)
	}

	return created, nil
}

// ListByUser returns the user's mood entries ascending by entry date and
// creation time. A non-nil since restricts to entries on or after it.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, since *time.Time) ([]domain.MoodEntry, error) {
	qb := psql.
		Select("id", "user_id", "entry_date", "state", "intensity", "note", "created_at").
		From("mood_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("entry_date ASC", "created_at ASC")
	if since != nil {
		qb = qb.Where(sq.GtOrEq{"entry_date": domain.DateOnly(*since)})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build mood_entries query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mood_entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.MoodEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mood_entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mood_entries: %w", err)
	}

	if entries == nil {
		entries = []domain.MoodEntry{}
	}

	return entries, nil
}

// LatestDate returns the most recent entry date for a user.
// Returns domain.ErrNotFound when the user has no entries.
func (r *Repo) LatestDate(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var latest *time.Time
	if err := querier.QueryRow(ctx, latestDateSQL, userID).Scan(&latest); err != nil {
		return time.Time{}, postgres.MapError(err, "mood_entry", userID)
	}
	if latest == nil {
		return time.Time{}, fmt.Errorf("mood_entry %s: %w", userID, domain.ErrNotFound)
	}

	return *latest, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.MoodEntry, error) {
	var (
		entry domain.MoodEntry
		state string
	)
	if err := row.Scan(&entry.ID, &entry.UserID, &entry.Date, &state,
		&entry.Intensity, &entry.Note, &entry.CreatedAt); err != nil {
		return nil, err
	}
	entry.State = domain.MoodState(state)
	entry.Date = domain.DateOnly(entry.Date)
	return &entry, nil
}
