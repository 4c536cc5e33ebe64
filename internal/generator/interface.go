package generator

import (
	"context"

	"github.com/mauv0809/padel-cup/internal/padel"
)

// Tournaments is the tournament lookup the generator needs.
type Tournaments interface {
	GetByID(ctx context.Context, id string) (*padel.Tournament, error)
}

// Teams reads registered teams and records their group membership.
type Teams interface {
	GetByTournament(ctx context.Context, tournamentID string) ([]padel.Team, error)
	AssignGroup(ctx context.Context, id, groupID string, position int) (*padel.Team, error)
}

// Groups persists generated groups.
type Groups interface {
	Create(ctx context.Context, g padel.Group) (*padel.Group, error)
	GetByTournament(ctx context.Context, tournamentID string) ([]padel.Group, error)
}

// Matches persists generated matches.
type Matches interface {
	Create(ctx context.Context, m padel.Match) (*padel.Match, error)
}

// Brackets persists generated elimination rounds.
type Brackets interface {
	Create(ctx context.Context, b padel.Bracket) (*padel.Bracket, error)
}

// Transactor runs fn so that every store call made with the context it
// receives commits or fails as one.
type Transactor interface {
	Atomically(ctx context.Context, fn func(ctx context.Context) error) error
}

// AdvancementStrategy picks, from the generated groups, the ordered list of
// teams that move on to the elimination rounds.
type AdvancementStrategy interface {
	Advancing(ctx context.Context, groups []padel.Group, perGroup int) ([]padel.Team, error)
}
