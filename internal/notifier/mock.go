package notifier

import (
	"sync"

	"github.com/mauv0809/padel-cup/internal/padel"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendTournamentCreatedCalls []struct {
		Tournament *padel.Tournament
		DryRun     bool
	}
	SendTeamRegisteredCalls []struct {
		Tournament *padel.Tournament
		Team       *padel.Team
		DryRun     bool
	}
	SendStructureGeneratedCalls []struct {
		Tournament *padel.Tournament
		Result     *padel.StructureResult
		DryRun     bool
	}

	// Spies
	SendTournamentCreatedFunc  func(t *padel.Tournament, dryRun bool) error
	SendTeamRegisteredFunc     func(t *padel.Tournament, team *padel.Team, dryRun bool) error
	SendStructureGeneratedFunc func(t *padel.Tournament, result *padel.StructureResult, dryRun bool) error
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendTournamentCreatedCalls = nil
	m.SendTeamRegisteredCalls = nil
	m.SendStructureGeneratedCalls = nil
}

func (m *Mock) SendTournamentCreated(t *padel.Tournament, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendTournamentCreatedCalls = append(m.SendTournamentCreatedCalls, struct {
		Tournament *padel.Tournament
		DryRun     bool
	}{t, dryRun})
	if m.SendTournamentCreatedFunc != nil {
		return m.SendTournamentCreatedFunc(t, dryRun)
	}
	return nil
}

func (m *Mock) SendTeamRegistered(t *padel.Tournament, team *padel.Team, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendTeamRegisteredCalls = append(m.SendTeamRegisteredCalls, struct {
		Tournament *padel.Tournament
		Team       *padel.Team
		DryRun     bool
	}{t, team, dryRun})
	if m.SendTeamRegisteredFunc != nil {
		return m.SendTeamRegisteredFunc(t, team, dryRun)
	}
	return nil
}

func (m *Mock) SendStructureGenerated(t *padel.Tournament, result *padel.StructureResult, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStructureGeneratedCalls = append(m.SendStructureGeneratedCalls, struct {
		Tournament *padel.Tournament
		Result     *padel.StructureResult
		DryRun     bool
	}{t, result, dryRun})
	if m.SendStructureGeneratedFunc != nil {
		return m.SendStructureGeneratedFunc(t, result, dryRun)
	}
	return nil
}

// Calls returns the total number of notifications sent through the mock.
func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendTournamentCreatedCalls) + len(m.SendTeamRegisteredCalls) + len(m.SendStructureGeneratedCalls)
}
