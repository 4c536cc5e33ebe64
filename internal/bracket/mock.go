package bracket

import (
	"context"
	"sync"

	"github.com/mauv0809/padel-cup/internal/padel"
)

// MockStore is a mock implementation of the BracketStore interface for testing.
type MockStore struct {
	mu sync.Mutex

	ListFunc            func(ctx context.Context) ([]padel.Bracket, error)
	GetByIDFunc         func(ctx context.Context, id string) (*padel.Bracket, error)
	GetByTournamentFunc func(ctx context.Context, tournamentID string) ([]padel.Bracket, error)
	CreateFunc          func(ctx context.Context, b padel.Bracket) (*padel.Bracket, error)
	UpdateFunc          func(ctx context.Context, id string, patch padel.BracketUpdate) (*padel.Bracket, error)
	DeleteFunc          func(ctx context.Context, id string) (bool, error)

	CreateCalls []padel.Bracket
}

var _ BracketStore = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) List(ctx context.Context) ([]padel.Bracket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []padel.Bracket{}, nil
}

func (m *MockStore) GetByID(ctx context.Context, id string) (*padel.Bracket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) GetByTournament(ctx context.Context, tournamentID string) ([]padel.Bracket, error) {
	if m.GetByTournamentFunc != nil {
		return m.GetByTournamentFunc(ctx, tournamentID)
	}
	return []padel.Bracket{}, nil
}

func (m *MockStore) Create(ctx context.Context, b padel.Bracket) (*padel.Bracket, error) {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, b)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return &b, nil
}

func (m *MockStore) Update(ctx context.Context, id string, patch padel.BracketUpdate) (*padel.Bracket, error) {
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
