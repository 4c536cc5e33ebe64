package match

import (
	"context"
	"sync"

	"github.com/mauv0809/padel-cup/internal/padel"
)

// MockStore is a mock implementation of the MatchStore interface for testing.
// Create records its argument and echoes it back unless CreateFunc is set.
type MockStore struct {
	mu sync.Mutex

	ListFunc            func(ctx context.Context) ([]padel.Match, error)
	GetByIDFunc         func(ctx context.Context, id string) (*padel.Match, error)
	GetByTournamentFunc func(ctx context.Context, tournamentID string) ([]padel.Match, error)
	GetByGroupFunc      func(ctx context.Context, groupID string) ([]padel.Match, error)
	GetByBracketFunc    func(ctx context.Context, bracketID string) ([]padel.Match, error)
	CreateFunc          func(ctx context.Context, m padel.Match) (*padel.Match, error)
	UpdateFunc          func(ctx context.Context, id string, patch padel.MatchUpdate) (*padel.Match, error)
	DeleteFunc          func(ctx context.Context, id string) (bool, error)

	CreateCalls []padel.Match
}

var _ MatchStore = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) List(ctx context.Context) ([]padel.Match, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []padel.Match{}, nil
}

func (m *MockStore) GetByID(ctx context.Context, id string) (*padel.Match, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) GetByTournament(ctx context.Context, tournamentID string) ([]padel.Match, error) {
	if m.GetByTournamentFunc != nil {
		return m.GetByTournamentFunc(ctx, tournamentID)
	}
	return []padel.Match{}, nil
}

func (m *MockStore) GetByGroup(ctx context.Context, groupID string) ([]padel.Match, error) {
	if m.GetByGroupFunc != nil {
		return m.GetByGroupFunc(ctx, groupID)
	}
	return []padel.Match{}, nil
}

func (m *MockStore) GetByBracket(ctx context.Context, bracketID string) ([]padel.Match, error) {
	if m.GetByBracketFunc != nil {
		return m.GetByBracketFunc(ctx, bracketID)
	}
	return []padel.Match{}, nil
}

func (m *MockStore) Create(ctx context.Context, match padel.Match) (*padel.Match, error) {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, match)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, match)
	}
	return &match, nil
}

func (m *MockStore) Update(ctx context.Context, id string, patch padel.MatchUpdate) (*padel.Match, error) {
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
