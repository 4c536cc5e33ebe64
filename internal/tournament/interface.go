package tournament

import (
	"context"

	"github.com/mauv0809/padel-cup/internal/padel"
)

// TournamentStore defines the interface for reading and writing tournaments.
// GetByID, Update and ChangeStatus return nil without an error when the id is unknown.
type TournamentStore interface {
	List(ctx context.Context) ([]padel.Tournament, error)
	GetByID(ctx context.Context, id string) (*padel.Tournament, error)
	Create(ctx context.Context, in padel.CreateTournamentInput) (*padel.Tournament, error)
	Update(ctx context.Context, id string, patch padel.TournamentUpdate) (*padel.Tournament, error)
	Delete(ctx context.Context, id string) (bool, error)
	ChangeStatus(ctx context.Context, id string, status padel.TournamentStatus) (*padel.Tournament, error)
	Search(ctx context.Context, params padel.SearchParams) (padel.Page[padel.Tournament], error)
	Active(ctx context.Context) ([]padel.Tournament, error)
	IsFull(ctx context.Context, id string) (bool, error)
	// AdjustCounts moves the cached team and match counters by the given deltas.
	AdjustCounts(ctx context.Context, id string, teams, matches int) error
}
