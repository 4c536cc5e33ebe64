package team

import (
	"context"

	"github.com/mauv0809/padel-cup/internal/padel"
)

// TeamStore defines the interface for registering and reading teams.
type TeamStore interface {
	List(ctx context.Context) ([]padel.Team, error)
	GetByID(ctx context.Context, id string) (*padel.Team, error)
	GetByTournament(ctx context.Context, tournamentID string) ([]padel.Team, error)
	CountByTournament(ctx context.Context, tournamentID string) (int, error)
	Create(ctx context.Context, in padel.CreateTeamInput) (*padel.Team, error)
	Update(ctx context.Context, id string, patch padel.TeamUpdate) (*padel.Team, error)
	AssignGroup(ctx context.Context, id, groupID string, position int) (*padel.Team, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Tournaments is the part of the tournament store teams depend on.
type Tournaments interface {
	GetByID(ctx context.Context, id string) (*padel.Tournament, error)
	AdjustCounts(ctx context.Context, id string, teams, matches int) error
}
