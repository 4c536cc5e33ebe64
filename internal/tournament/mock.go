package tournament

import (
	"context"
	"sync"

	"github.com/mauv0809/padel-cup/internal/padel"
)

// MockStore is a mock implementation of the TournamentStore interface for testing.
// It is safe for concurrent use. Unset Funcs return zero values.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ListFunc         func(ctx context.Context) ([]padel.Tournament, error)
	GetByIDFunc      func(ctx context.Context, id string) (*padel.Tournament, error)
	CreateFunc       func(ctx context.Context, in padel.CreateTournamentInput) (*padel.Tournament, error)
	UpdateFunc       func(ctx context.Context, id string, patch padel.TournamentUpdate) (*padel.Tournament, error)
	DeleteFunc       func(ctx context.Context, id string) (bool, error)
	ChangeStatusFunc func(ctx context.Context, id string, status padel.TournamentStatus) (*padel.Tournament, error)
	SearchFunc       func(ctx context.Context, params padel.SearchParams) (padel.Page[padel.Tournament], error)
	ActiveFunc       func(ctx context.Context) ([]padel.Tournament, error)
	IsFullFunc       func(ctx context.Context, id string) (bool, error)
	AdjustCountsFunc func(ctx context.Context, id string, teams, matches int) error

	// Call records
	GetByIDCalls      []string
	CreateCalls       []padel.CreateTournamentInput
	DeleteCalls       []string
	AdjustCountsCalls []struct {
		ID      string
		Teams   int
		Matches int
	}
}

var _ TournamentStore = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetByIDCalls = nil
	m.CreateCalls = nil
	m.DeleteCalls = nil
	m.AdjustCountsCalls = nil
}

func (m *MockStore) List(ctx context.Context) ([]padel.Tournament, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []padel.Tournament{}, nil
}

func (m *MockStore) GetByID(ctx context.Context, id string) (*padel.Tournament, error) {
	m.mu.Lock()
	m.GetByIDCalls = append(m.GetByIDCalls, id)
	m.mu.Unlock()
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) Create(ctx context.Context, in padel.CreateTournamentInput) (*padel.Tournament, error) {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, in)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &padel.Tournament{Name: in.Name, MaxTeams: in.MaxTeams, Status: in.Status, Format: in.Format}, nil
}

func (m *MockStore) Update(ctx context.Context, id string, patch padel.TournamentUpdate) (*padel.Tournament, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, nil
}

func (m *MockStore) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockStore) ChangeStatus(ctx context.Context, id string, status padel.TournamentStatus) (*padel.Tournament, error) {
	if m.ChangeStatusFunc != nil {
		return m.ChangeStatusFunc(ctx, id, status)
	}
	return nil, nil
}

func (m *MockStore) Search(ctx context.Context, params padel.SearchParams) (padel.Page[padel.Tournament], error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, params)
	}
	return padel.Page[padel.Tournament]{Items: []padel.Tournament{}}, nil
}

func (m *MockStore) Active(ctx context.Context) ([]padel.Tournament, error) {
	if m.ActiveFunc != nil {
		return m.ActiveFunc(ctx)
	}
	return []padel.Tournament{}, nil
}

func (m *MockStore) IsFull(ctx context.Context, id string) (bool, error) {
	if m.IsFullFunc != nil {
		return m.IsFullFunc(ctx, id)
	}
	return false, nil
}

func (m *MockStore) AdjustCounts(ctx context.Context, id string, teams, matches int) error {
	m.mu.Lock()
	m.AdjustCountsCalls = append(m.AdjustCountsCalls, struct {
		ID      string
		Teams   int
		Matches int
	}{id, teams, matches})
	m.mu.Unlock()
	if m.AdjustCountsFunc != nil {
		return m.AdjustCountsFunc(ctx, id, teams, matches)
	}
	return nil
}
