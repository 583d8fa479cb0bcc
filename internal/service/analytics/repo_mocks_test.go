package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/calmbird/moodtrack-backend/internal/domain"
)

// moodLogRepoMock is a hand-rolled mock of the moodLogRepo interface.
type moodLogRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, since *time.Time) ([]domain.MoodEntry, error)

	mu        sync.Mutex
	listCalls []uuid.UUID
}

func (m *moodLogRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, since *time.Time) ([]domain.MoodEntry, error) {
	m.mu.Lock()
	m.listCalls = append(m.listCalls, userID)
	m.mu.Unlock()
	return m.ListByUserFunc(ctx, userID, since)
}

func (m *moodLogRepoMock) ListByUserCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listCalls)
}

// schedulerStateRepoMock is a hand-rolled mock of the schedulerStateRepo
// interface.
type schedulerStateRepoMock struct {
	GetFunc    func(ctx context.Context, userID uuid.UUID) (domain.SchedulerState, error)
	UpsertFunc func(ctx context.Context, state domain.SchedulerState) error

	mu          sync.Mutex
	upsertCalls []domain.SchedulerState
}

func (m *schedulerStateRepoMock) Get(ctx context.Context, userID uuid.UUID) (domain.SchedulerState, error) {
	return m.GetFunc(ctx, userID)
}

func (m *schedulerStateRepoMock) Upsert(ctx context.Context, state domain.SchedulerState) error {
	m.mu.Lock()
	m.upsertCalls = append(m.upsertCalls, state)
	m.mu.Unlock()
	return m.UpsertFunc(ctx, state)
}

func (m *schedulerStateRepoMock) UpsertCalls() []domain.SchedulerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SchedulerState(nil), m.upsertCalls...)
}
