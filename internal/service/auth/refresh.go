package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	internalauth "github.com/calmbird/moodtrack-backend/internal/auth"
	"github.com/calmbird/moodtrack-backend/internal/domain"
)

// Refresh rotates a refresh token: the presented token is validated,
// revoked, and replaced alongside a fresh access token.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.tokens.GetByHash(ctx, internalauth.HashRefreshToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if stored.Expired(time.Now()) {
		// Expired tokens are removed eagerly; pruning also happens in bulk.
		_ = s.tokens.Delete(ctx, stored.ID)
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	// Revocation and reissue commit together so a failure mid-rotation
	// cannot leave the user without a valid refresh token.
	var result *AuthResult
	err = s.txm.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tokens.Delete(ctx, stored.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("revoke token: %w", err)
		}
		issued, err := s.issueTokens(ctx, user)
		if err != nil {
			return fmt.Errorf("issue tokens: %w", err)
		}
		result = issued
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh rotate: %w", err)
	}

	s.log.InfoContext(ctx, "tokens refreshed",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
