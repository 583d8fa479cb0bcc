package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/calmbird/moodtrack-backend/internal/domain"
)

// userRepoMock is a hand-rolled mock of the userRepo interface.
type userRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc     func(ctx context.Context, user *domain.User) (*domain.User, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.CreateFunc(ctx, user)
}

// tokenRepoMock is a hand-rolled mock of the tokenRepo interface.
type tokenRepoMock struct {
	GetByHashFunc func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)

	mu           sync.Mutex
	created      []*domain.RefreshToken
	deleted      []uuid.UUID
	deletedUsers []uuid.UUID
}

func (m *tokenRepoMock) Create(_ context.Context, token *domain.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, token)
	return nil
}

func (m *tokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if m.GetByHashFunc != nil {
		return m.GetByHashFunc(ctx, tokenHash)
	}
	return nil, domain.ErrNotFound
}

func (m *tokenRepoMock) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *tokenRepoMock) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletedUsers = append(m.deletedUsers, userID)
	return nil
}

func (m *tokenRepoMock) CreatedTokens() []*domain.RefreshToken {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.RefreshToken(nil), m.created...)
}

func (m *tokenRepoMock) DeletedIDs() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uuid.UUID(nil), m.deleted...)
}

func (m *tokenRepoMock) DeletedUsers() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uuid.UUID(nil), m.deletedUsers...)
}

// txManagerMock runs the callback directly without a real transaction.
type txManagerMock struct{}

func (txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// jwtManagerMock is a hand-rolled mock of the jwtManager interface.
type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(userID uuid.UUID, role string) (string, error)
	ValidateAccessTokenFunc  func(token string) (uuid.UUID, string, error)
	GenerateRefreshTokenFunc func() (string, string, error)
}

func (m *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(userID, role)
	}
	return "access-" + userID.String(), nil
}

func (m *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	return m.ValidateAccessTokenFunc(token)
}

func (m *jwtManagerMock) GenerateRefreshToken() (string, string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc()
	}
	return "raw-refresh", "hash-refresh", nil
}
