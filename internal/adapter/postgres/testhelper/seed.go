package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calmbird/moodtrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with default values. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		Role:         domain.UserRoleUser,
		PasswordHash: "$2a$10$test-hash-" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, string(user.Role), user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedMoodEntry inserts one mood entry for the given user and date.
// Returns the filled domain.MoodEntry.
func SeedMoodEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, date time.Time, state domain.MoodState, intensity int) domain.MoodEntry {
	t.Helper()
	ctx := context.Background()

	entry := domain.MoodEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      domain.DateOnly(date),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		State:     state,
		Intensity: intensity,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO mood_entries (id, user_id, entry_date, state, intensity, note, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.UserID, entry.Date, string(entry.State), entry.Intensity, entry.Note, entry.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMoodEntry insert: %v", err)
	}

	return entry
}
