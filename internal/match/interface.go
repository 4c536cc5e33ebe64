package match

import (
	"context"

	"github.com/mauv0809/padel-cup/internal/padel"
)

// MatchStore defines the interface for persisting matches. Create and Delete
// keep the owning tournament's match counter in step.
type MatchStore interface {
	List(ctx context.Context) ([]padel.Match, error)
	GetByID(ctx context.Context, id string) (*padel.Match, error)
	GetByTournament(ctx context.Context, tournamentID string) ([]padel.Match, error)
	GetByGroup(ctx context.Context, groupID string) ([]padel.Match, error)
	GetByBracket(ctx context.Context, bracketID string) ([]padel.Match, error)
	Create(ctx context.Context, m padel.Match) (*padel.Match, error)
	Update(ctx context.Context, id string, patch padel.MatchUpdate) (*padel.Match, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Counter is the part of the tournament store matches depend on.
type Counter interface {
	AdjustCounts(ctx context.Context, id string, teams, matches int) error
}
