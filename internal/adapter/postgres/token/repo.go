// Package token implements the refresh token repository using PostgreSQL.
// Only token hashes are stored.
package token

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/calmbird/moodtrack-backend/internal/adapter/postgres"
	"github.com/calmbird/moodtrack-backend/internal/domain"
)

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new refresh token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, now())`

const getByHashSQL = `
SELECT id, user_id, token_hash, expires_at, created_at
FROM refresh_tokens WHERE token_hash = $1`

const deleteByIDSQL = `DELETE FROM refresh_tokens WHERE id = $1`

const deleteByUserSQL = `DELETE FROM refresh_tokens WHERE user_id = $1`

const deleteExpiredSQL = `DELETE FROM refresh_tokens WHERE expires_at < now()`

// Create stores a refresh token hash.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	_, err := querier.Exec(ctx, createSQL, t.ID, t.UserID, t.TokenHash, t.ExpiresAt)
	if err != nil {
		return postgres.MapError(err, "refresh_token", t.ID)
	}

	return nil
}

// GetByHash looks a token up by its hash, or returns domain.ErrNotFound.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.RefreshToken
	err := querier.QueryRow(ctx, getByHashSQL, tokenHash).Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", "hash")
	}

	return &t, nil
}

// Delete removes a token by ID. Returns domain.ErrNotFound on 0 rows.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByIDSQL, id)
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refresh_token %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByUser removes all of a user's refresh tokens (logout everywhere).
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByUserSQL, userID); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}

	return nil
}

// DeleteExpired prunes expired tokens and returns how many were removed.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, fmt.Errorf("delete expired refresh_tokens: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
