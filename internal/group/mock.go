package group

import (
	"context"
	"sync"

	"github.com/mauv0809/padel-cup/internal/padel"
)

// MockStore is a mock implementation of the GroupStore interface for testing.
// Create records its argument and echoes it back unless CreateFunc is set.
type MockStore struct {
	mu sync.Mutex

	ListFunc            func(ctx context.Context) ([]padel.Group, error)
	GetByIDFunc         func(ctx context.Context, id string) (*padel.Group, error)
	GetByTournamentFunc func(ctx context.Context, tournamentID string) ([]padel.Group, error)
	CreateFunc          func(ctx context.Context, g padel.Group) (*padel.Group, error)
	UpdateFunc          func(ctx context.Context, id string, patch padel.GroupUpdate) (*padel.Group, error)
	DeleteFunc          func(ctx context.Context, id string) (bool, error)

	CreateCalls []padel.Group
}

var _ GroupStore = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) List(ctx context.Context) ([]padel.Group, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []padel.Group{}, nil
}

func (m *MockStore) GetByID(ctx context.Context, id string) (*padel.Group, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) GetByTournament(ctx context.Context, tournamentID string) ([]padel.Group, error) {
	if m.GetByTournamentFunc != nil {
		return m.GetByTournamentFunc(ctx, tournamentID)
	}
	return []padel.Group{}, nil
}

func (m *MockStore) Create(ctx context.Context, g padel.Group) (*padel.Group, error) {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, g)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, g)
	}
	return &g, nil
}

func (m *MockStore) Update(ctx context.Context, id string, patch padel.GroupUpdate) (*padel.Group, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, nil
}

func (m *MockStore) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}
