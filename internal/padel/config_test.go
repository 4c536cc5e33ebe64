package padel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournamentConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     TournamentConfig
		wantErr bool
	}{
		{"valid", TournamentConfig{NumberOfGroups: 2, TeamsPerGroup: 4, TeamsAdvancingPerGroup: 2}, false},
		{"advancing equals group size", TournamentConfig{NumberOfGroups: 1, TeamsPerGroup: 2, TeamsAdvancingPerGroup: 2}, false},
		{"no groups", TournamentConfig{NumberOfGroups: 0, TeamsPerGroup: 4, TeamsAdvancingPerGroup: 2}, true},
		{"group of one", TournamentConfig{NumberOfGroups: 2, TeamsPerGroup: 1, TeamsAdvancingPerGroup: 1}, true},
		{"nobody advances", TournamentConfig{NumberOfGroups: 2, TeamsPerGroup: 4, TeamsAdvancingPerGroup: 0}, true},
		{"more advancing than members", TournamentConfig{NumberOfGroups: 2, TeamsPerGroup: 3, TeamsAdvancingPerGroup: 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTournamentConfig_ValidateFor(t *testing.T) {
	cfg := TournamentConfig{NumberOfGroups: 2, TeamsPerGroup: 4, TeamsAdvancingPerGroup: 2}

	assert.NoError(t, cfg.ValidateFor(8))
	assert.NoError(t, cfg.ValidateFor(9), "surplus teams are allowed")

	err := cfg.ValidateFor(7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "need 8 teams")
}

func TestSuggestConfig(t *testing.T) {
	tests := []struct {
		total, groups int
		want          TournamentConfig
	}{
		{16, 4, TournamentConfig{NumberOfGroups: 4, TeamsPerGroup: 4, TeamsAdvancingPerGroup: 2}},
		{10, 3, TournamentConfig{NumberOfGroups: 3, TeamsPerGroup: 4, TeamsAdvancingPerGroup: 2}},
		{3, 1, TournamentConfig{NumberOfGroups: 1, TeamsPerGroup: 3, TeamsAdvancingPerGroup: 1}},
		{4, 0, TournamentConfig{NumberOfGroups: 1, TeamsPerGroup: 4, TeamsAdvancingPerGroup: 2}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SuggestConfig(tt.total, tt.groups))
	}
}

func TestPlannedBrackets(t *testing.T) {
	assert.Equal(t, []string{BracketQuarterfinals, BracketSemifinals, BracketFinal},
		PlannedBrackets(TournamentConfig{NumberOfGroups: 4, TeamsPerGroup: 4, TeamsAdvancingPerGroup: 2}))
	assert.Equal(t, []string{BracketSemifinals, BracketFinal},
		PlannedBrackets(TournamentConfig{NumberOfGroups: 2, TeamsPerGroup: 4, TeamsAdvancingPerGroup: 2}))
	assert.Equal(t, []string{BracketFinal},
		PlannedBrackets(TournamentConfig{NumberOfGroups: 1, TeamsPerGroup: 3, TeamsAdvancingPerGroup: 3}))
	assert.Empty(t, PlannedBrackets(TournamentConfig{NumberOfGroups: 1, TeamsPerGroup: 2, TeamsAdvancingPerGroup: 1}))
}

func TestNewPreview(t *testing.T) {
	p := NewPreview(10, SuggestConfig(10, 3))
	assert.False(t, p.Valid, "3 groups of 4 cannot be filled by 10 teams")
	assert.NotEmpty(t, p.Problem)

	p = NewPreview(8, TournamentConfig{NumberOfGroups: 2, TeamsPerGroup: 4, TeamsAdvancingPerGroup: 2})
	assert.True(t, p.Valid)
	assert.Equal(t, 12, p.GroupMatches)
	assert.Equal(t, []string{BracketSemifinals, BracketFinal}, p.Brackets)
}

func TestValidate_CreateInputs(t *testing.T) {
	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	err := Validate(CreateTournamentInput{Name: "Summer", StartDate: start, EndDate: start.AddDate(0, 0, 2), MaxTeams: 16})
	require.NoError(t, err)

	err = Validate(CreateTournamentInput{Name: "", StartDate: start, EndDate: start.AddDate(0, 0, -1), MaxTeams: 1})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "endDate must not be before")
	assert.Contains(t, err.Error(), "maxTeams must be at least 2")

	err = Validate(CreateTeamInput{
		Name:         "Smash Bros",
		Player1:      Player{FirstName: "Ana", LastName: "Ruiz", Email: "not-an-email"},
		Player2:      Player{FirstName: "Luis"},
		TournamentID: "t1",
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "email must be a valid email address")
	assert.Contains(t, err.Error(), "lastName is required")
}

func TestTournament_IsFull(t *testing.T) {
	tr := &Tournament{MaxTeams: 2}
	assert.False(t, tr.IsFull())
	tr.Count.Teams = 2
	assert.True(t, tr.IsFull())
}
