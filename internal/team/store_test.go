package team_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mauv0809/padel-cup/internal/padel"
	"github.com/mauv0809/padel-cup/internal/storage"
	"github.com/mauv0809/padel-cup/internal/team"
	"github.com/mauv0809/padel-cup/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, maxTeams int) (team.TeamStore, tournament.TournamentStore, *padel.Tournament) {
	t.Helper()
	runner := storage.NewRunner(storage.NewMemoryStore(), nil)
	tournaments := tournament.New(runner)
	teams := team.New(runner, tournaments)

	start := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)
	tr, err := tournaments.Create(context.Background(), padel.CreateTournamentInput{
		Name: "Club Cup", StartDate: start, EndDate: start.AddDate(0, 0, 1), MaxTeams: maxTeams,
	})
	require.NoError(t, err)
	return teams, tournaments, tr
}

func teamInput(tournamentID string, n int) padel.CreateTeamInput {
	return padel.CreateTeamInput{
		Name:         fmt.Sprintf("Team %d", n),
		Player1:      padel.Player{FirstName: "Ana", LastName: fmt.Sprintf("P%d", n)},
		Player2:      padel.Player{FirstName: "Bea", LastName: fmt.Sprintf("Q%d", n), Email: "bea@example.com"},
		TournamentID: tournamentID,
	}
}

func teamCount(t *testing.T, tournaments tournament.TournamentStore, id string) int {
	t.Helper()
	tr, err := tournaments.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, tr)
	return tr.Count.Teams
}

func TestCreate_IncrementsTeamCount(t *testing.T) {
	teams, tournaments, tr := setup(t, 8)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		created, err := teams.Create(ctx, teamInput(tr.ID, i))
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Nil(t, created.GroupID)
	}

	assert.Equal(t, 3, teamCount(t, tournaments, tr.ID))
	n, err := teams.CountByTournament(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCreate_UnknownTournament(t *testing.T) {
	teams, _, _ := setup(t, 8)
	_, err := teams.Create(context.Background(), teamInput("missing", 1))
	assert.ErrorIs(t, err, padel.ErrNotFound)

	all, err := teams.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all, "nothing is written when the unit fails")
}

func TestCreate_FullTournament(t *testing.T) {
	teams, tournaments, tr := setup(t, 2)
	ctx := context.Background()
	for i := 1; i <= 2; i++ {
		_, err := teams.Create(ctx, teamInput(tr.ID, i))
		require.NoError(t, err)
	}

	_, err := teams.Create(ctx, teamInput(tr.ID, 3))
	assert.True(t, errors.Is(err, padel.ErrTournamentFull))
	assert.Equal(t, 2, teamCount(t, tournaments, tr.ID))
}

func TestCreate_Validation(t *testing.T) {
	teams, _, tr := setup(t, 8)
	in := teamInput(tr.ID, 1)
	in.Player2.FirstName = ""
	_, err := teams.Create(context.Background(), in)
	assert.ErrorIs(t, err, padel.ErrValidation)
}

func TestGetByTournament_FiltersAndKeepsOrder(t *testing.T) {
	teams, tournaments, tr := setup(t, 8)
	ctx := context.Background()
	start := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	other, err := tournaments.Create(ctx, padel.CreateTournamentInput{Name: "Other", StartDate: start, EndDate: start, MaxTeams: 4})
	require.NoError(t, err)

	_, err = teams.Create(ctx, teamInput(tr.ID, 1))
	require.NoError(t, err)
	_, err = teams.Create(ctx, teamInput(other.ID, 2))
	require.NoError(t, err)
	_, err = teams.Create(ctx, teamInput(tr.ID, 3))
	require.NoError(t, err)

	got, err := teams.GetByTournament(ctx, tr.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Team 1", got[0].Name)
	assert.Equal(t, "Team 3", got[1].Name)
}

func TestAssignGroup(t *testing.T) {
	teams, _, tr := setup(t, 8)
	ctx := context.Background()
	created, err := teams.Create(ctx, teamInput(tr.ID, 1))
	require.NoError(t, err)

	updated, err := teams.AssignGroup(ctx, created.ID, "group-a", 2)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "group-a", *updated.GroupID)
	assert.Equal(t, 2, *updated.GroupPosition)

	got, err := teams.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "group-a", *got.GroupID)

	missing, err := teams.AssignGroup(ctx, "nope", "group-a", 1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdate(t *testing.T) {
	teams, _, tr := setup(t, 8)
	ctx := context.Background()
	created, err := teams.Create(ctx, teamInput(tr.ID, 1))
	require.NoError(t, err)

	updated, err := teams.Update(ctx, created.ID, padel.TeamUpdate{
		Name:         padel.Ptr("Renamed"),
		IsEliminated: padel.Ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.True(t, updated.IsEliminated)
	assert.Equal(t, created.Player1, updated.Player1)

	_, err = teams.Update(ctx, created.ID, padel.TeamUpdate{Player1: &padel.Player{FirstName: "Solo"}})
	assert.ErrorIs(t, err, padel.ErrValidation)
}

func TestDelete_DecrementsTeamCount(t *testing.T) {
	teams, tournaments, tr := setup(t, 8)
	ctx := context.Background()
	a, err := teams.Create(ctx, teamInput(tr.ID, 1))
	require.NoError(t, err)
	_, err = teams.Create(ctx, teamInput(tr.ID, 2))
	require.NoError(t, err)

	ok, err := teams.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, teamCount(t, tournaments, tr.ID))

	ok, err = teams.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, teamCount(t, tournaments, tr.ID))
}

func TestTeamCountMatchesLiveRows(t *testing.T) {
	teams, tournaments, tr := setup(t, 16)
	ctx := context.Background()
	var ids []string
	for i := 1; i <= 6; i++ {
		created, err := teams.Create(ctx, teamInput(tr.ID, i))
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	for _, id := range ids[:4] {
		_, err := teams.Delete(ctx, id)
		require.NoError(t, err)
	}

	live, err := teams.CountByTournament(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, live, teamCount(t, tournaments, tr.ID))
}

// flakyTeamsStore fails the next Load of the teams collection once armed.
type flakyTeamsStore struct {
	*storage.MemoryStore
	armed bool
}

func (s *flakyTeamsStore) Load(ctx context.Context, key storage.Key) ([]byte, error) {
	if s.armed && key == storage.KeyTeams {
		s.armed = false
		return nil, errors.New("connection reset")
	}
	return s.MemoryStore.Load(ctx, key)
}

func TestCreate_FailedTeamsLoadKeepsExistingTeams(t *testing.T) {
	ctx := context.Background()
	store := &flakyTeamsStore{MemoryStore: storage.NewMemoryStore()}
	runner := storage.NewRunner(store, nil)
	tournaments := tournament.New(runner)
	teams := team.New(runner, tournaments)

	start := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)
	tr, err := tournaments.Create(ctx, padel.CreateTournamentInput{
		Name: "Club Cup", StartDate: start, EndDate: start.AddDate(0, 0, 1), MaxTeams: 8,
	})
	require.NoError(t, err)
	for i := 1; i <= 5; i++ {
		_, err := teams.Create(ctx, teamInput(tr.ID, i))
		require.NoError(t, err)
	}

	store.armed = true
	_, err = teams.Create(ctx, teamInput(tr.ID, 6))
	require.Error(t, err)
	assert.ErrorIs(t, err, padel.ErrStorage)

	stored, err := teams.GetByTournament(ctx, tr.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 5)
	assert.Equal(t, 5, teamCount(t, tournaments, tr.ID))
}
