package schedulerstate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres/schedulerstate"
	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres/testhelper"
	"github.com/calmbird/moodtrack-backend/internal/domain"
)

func newRepo(t *testing.T) (*schedulerstate.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return schedulerstate.New(pool), pool
}

func TestRepo_Get_NotFound(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	_, err := repo.Get(ctx, user.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for fresh user, got %v", err)
	}
}

func TestRepo_Upsert_InsertThenGet(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	logDate := domain.DateOnly(time.Now())
	state := domain.SchedulerState{
		UserID:          user.ID,
		LastMoodLogDate: &logDate,
	}

	if err := repo.Upsert(ctx, state); err != nil {
		t.Fatalf("Upsert: unexpected error: %v", err)
	}

	got, err := repo.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if got.UserID != user.ID {
		t.Errorf("UserID mismatch: got %s, want %s", got.UserID, user.ID)
	}
	if got.LastMoodLogDate == nil || !domain.SameDay(*got.LastMoodLogDate, logDate) {
		t.Errorf("LastMoodLogDate mismatch: got %v, want %s", got.LastMoodLogDate, logDate)
	}
	if got.LastCelebrationDate != nil {
		t.Errorf("expected nil LastCelebrationDate, got %v", got.LastCelebrationDate)
	}
}

func TestRepo_Upsert_UpdateExisting(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	day1 := domain.DateOnly(time.Now().AddDate(0, 0, -1))
	day2 := domain.DateOnly(time.Now())

	if err := repo.Upsert(ctx, domain.SchedulerState{UserID: user.ID, LastMoodLogDate: &day1}); err != nil {
		t.Fatalf("first Upsert: unexpected error: %v", err)
	}
	if err := repo.Upsert(ctx, domain.SchedulerState{
		UserID:              user.ID,
		LastMoodLogDate:     &day2,
		LastCelebrationDate: &day2,
	}); err != nil {
		t.Fatalf("second Upsert: unexpected error: %v", err)
	}

	got, err := repo.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if got.LastMoodLogDate == nil || !domain.SameDay(*got.LastMoodLogDate, day2) {
		t.Errorf("LastMoodLogDate not updated: got %v, want %s", got.LastMoodLogDate, day2)
	}
	if got.LastCelebrationDate == nil || !domain.SameDay(*got.LastCelebrationDate, day2) {
		t.Errorf("LastCelebrationDate not updated: got %v, want %s", got.LastCelebrationDate, day2)
	}
}

func TestRepo_Upsert_ClearsDates(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	day := domain.DateOnly(time.Now())
	if err := repo.Upsert(ctx, domain.SchedulerState{
		UserID:              user.ID,
		LastMoodLogDate:     &day,
		LastCelebrationDate: &day,
	}); err != nil {
		t.Fatalf("Upsert: unexpected error: %v", err)
	}

	// An account reset writes an empty state.
	if err := repo.Upsert(ctx, domain.SchedulerState{UserID: user.ID}); err != nil {
		t.Fatalf("reset Upsert: unexpected error: %v", err)
	}

	got, err := repo.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if got.LastMoodLogDate != nil || got.LastCelebrationDate != nil {
		t.Errorf("expected cleared dates, got %+v", got)
	}
}

func TestRepo_Upsert_UnknownUser(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	day := domain.DateOnly(time.Now())
	err := repo.Upsert(ctx, domain.SchedulerState{UserID: uuid.New(), LastMoodLogDate: &day})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for FK violation, got %v", err)
	}
}
