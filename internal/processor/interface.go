package processor

import (
	"context"

	"github.com/mauv0809/padel-cup/internal/bracket"
	"github.com/mauv0809/padel-cup/internal/group"
	"github.com/mauv0809/padel-cup/internal/match"
	"github.com/mauv0809/padel-cup/internal/notifier"
	"github.com/mauv0809/padel-cup/internal/padel"
	"github.com/mauv0809/padel-cup/internal/team"
	"github.com/mauv0809/padel-cup/internal/tournament"
)

// Stores are the repositories the processor reads and writes.
type Stores struct {
	Tournaments tournament.TournamentStore
	Teams       team.TeamStore
	Groups      group.GroupStore
	Matches     match.MatchStore
	Brackets    bracket.BracketStore
	// Tx groups reads that must come from one commit. Nil runs them one by one.
	Tx Transactor
}

// Transactor runs fn in one unit of work that repository calls made with its ctx join.
type Transactor interface {
	Atomically(ctx context.Context, fn func(ctx context.Context) error) error
}

// Generator builds a tournament structure.
type Generator interface {
	Generate(ctx context.Context, tournamentID string, cfg padel.TournamentConfig) (*padel.StructureResult, error)
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}
