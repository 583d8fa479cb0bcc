package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/calmbird/moodtrack-backend/internal/domain"
)

// Register creates a new account with a bcrypt-hashed password and issues
// the first token pair. Returns domain.ErrAlreadyExists on a taken email.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		Role:         domain.UserRoleUser,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
