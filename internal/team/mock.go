package team

import (
	"context"
	"sync"

	"github.com/mauv0809/padel-cup/internal/padel"
)

// MockStore is a mock implementation of the TeamStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ListFunc              func(ctx context.Context) ([]padel.Team, error)
	GetByIDFunc           func(ctx context.Context, id string) (*padel.Team, error)
	GetByTournamentFunc   func(ctx context.Context, tournamentID string) ([]padel.Team, error)
	CountByTournamentFunc func(ctx context.Context, tournamentID string) (int, error)
	CreateFunc            func(ctx context.Context, in padel.CreateTeamInput) (*padel.Team, error)
	UpdateFunc            func(ctx context.Context, id string, patch padel.TeamUpdate) (*padel.Team, error)
	AssignGroupFunc       func(ctx context.Context, id, groupID string, position int) (*padel.Team, error)
	DeleteFunc            func(ctx context.Context, id string) (bool, error)

	// Call records
	CreateCalls      []padel.CreateTeamInput
	AssignGroupCalls []struct {
		ID       string
		GroupID  string
		Position int
	}
	DeleteCalls []string
}

var _ TeamStore = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = nil
	m.AssignGroupCalls = nil
	m.DeleteCalls = nil
}

func (m *MockStore) List(ctx context.Context) ([]padel.Team, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []padel.Team{}, nil
}

func (m *MockStore) GetByID(ctx context.Context, id string) (*padel.Team, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) GetByTournament(ctx context.Context, tournamentID string) ([]padel.Team, error) {
	if m.GetByTournamentFunc != nil {
		return m.GetByTournamentFunc(ctx, tournamentID)
	}
	return []padel.Team{}, nil
}

func (m *MockStore) CountByTournament(ctx context.Context, tournamentID string) (int, error) {
	if m.CountByTournamentFunc != nil {
		return m.CountByTournamentFunc(ctx, tournamentID)
	}
	return 0, nil
}

func (m *MockStore) Create(ctx context.Context, in padel.CreateTeamInput) (*padel.Team, error) {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, in)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &padel.Team{Name: in.Name, Player1: in.Player1, Player2: in.Player2, TournamentID: in.TournamentID}, nil
}

func (m *MockStore) Update(ctx context.Context, id string, patch padel.TeamUpdate) (*padel.Team, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, nil
}

func (m *MockStore) AssignGroup(ctx context.Context, id, groupID string, position int) (*padel.Team, error) {
	m.mu.Lock()
	m.AssignGroupCalls = append(m.AssignGroupCalls, struct {
		ID       string
		GroupID  string
		Position int
	}{id, groupID, position})
	m.mu.Unlock()
	if m.AssignGroupFunc != nil {
		return m.AssignGroupFunc(ctx, id, groupID, position)
	}
	return &padel.Team{ID: id, GroupID: &groupID, GroupPosition: &position}, nil
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
