package token_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres/testhelper"
	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres/token"
	"github.com/calmbird/moodtrack-backend/internal/domain"
)

func newRepo(t *testing.T) (*token.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return token.New(pool), pool
}

func buildToken(userID uuid.UUID, expiresAt time.Time) *domain.RefreshToken {
	return &domain.RefreshToken{
		UserID:    userID,
		TokenHash: "hash-" + uuid.New().String(),
		ExpiresAt: expiresAt,
	}
}

func TestRepo_Create_GeneratesID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	tok := buildToken(user.ID, time.Now().Add(time.Hour))
	if err := repo.Create(ctx, tok); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if tok.ID == uuid.Nil {
		t.Error("expected generated ID")
	}
}

func TestRepo_GetByHash(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	tok := buildToken(user.ID, time.Now().Add(time.Hour).UTC().Truncate(time.Microsecond))
	if err := repo.Create(ctx, tok); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.GetByHash(ctx, tok.TokenHash)
	if err != nil {
		t.Fatalf("GetByHash: unexpected error: %v", err)
	}
	if got.ID != tok.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, tok.ID)
	}
	if got.UserID != user.ID {
		t.Errorf("UserID mismatch: got %s, want %s", got.UserID, user.ID)
	}
	if !got.ExpiresAt.Equal(tok.ExpiresAt) {
		t.Errorf("ExpiresAt mismatch: got %s, want %s", got.ExpiresAt, tok.ExpiresAt)
	}
}

func TestRepo_GetByHash_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByHash(ctx, "no-such-hash")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	tok := buildToken(user.ID, time.Now().Add(time.Hour))
	if err := repo.Create(ctx, tok); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if err := repo.Delete(ctx, tok.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	if _, err := repo.GetByHash(ctx, tok.TokenHash); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRepo_Delete_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	err := repo.Delete(ctx, uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_DeleteByUser(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	first := buildToken(user.ID, time.Now().Add(time.Hour))
	second := buildToken(user.ID, time.Now().Add(2*time.Hour))
	for _, tok := range []*domain.RefreshToken{first, second} {
		if err := repo.Create(ctx, tok); err != nil {
			t.Fatalf("Create: unexpected error: %v", err)
		}
	}

	if err := repo.DeleteByUser(ctx, user.ID); err != nil {
		t.Fatalf("DeleteByUser: unexpected error: %v", err)
	}

	for _, tok := range []*domain.RefreshToken{first, second} {
		if _, err := repo.GetByHash(ctx, tok.TokenHash); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after DeleteByUser, got %v", err)
		}
	}
}

func TestRepo_DeleteExpired(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	expired := buildToken(user.ID, time.Now().Add(-time.Hour))
	live := buildToken(user.ID, time.Now().Add(time.Hour))
	for _, tok := range []*domain.RefreshToken{expired, live} {
		if err := repo.Create(ctx, tok); err != nil {
			t.Fatalf("Create: unexpected error: %v", err)
		}
	}

	// Other parallel tests may have their own expired tokens, so only
	// assert a lower bound and per-token outcomes.
	n, err := repo.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("DeleteExpired: unexpected error: %v", err)
	}
	if n < 1 {
		t.Errorf("expected at least 1 deleted token, got %d", n)
	}

	if _, err := repo.GetByHash(ctx, expired.TokenHash); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected expired token gone, got %v", err)
	}
	if _, err := repo.GetByHash(ctx, live.TokenHash); err != nil {
		t.Fatalf("expected live token to survive, got %v", err)
	}
}
