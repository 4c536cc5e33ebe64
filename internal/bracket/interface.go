package bracket

import (
	"context"

	"github.com/mauv0809/padel-cup/internal/padel"
)

// BracketStore defines the interface for persisting elimination rounds.
type BracketStore interface {
	List(ctx context.Context) ([]padel.Bracket, error)
	GetByID(ctx context.Context, id string) (*padel.Bracket, error)
	GetByTournament(ctx context.Context, tournamentID string) ([]padel.Bracket, error)
	Create(ctx context.Context, b padel.Bracket) (*padel.Bracket, error)
	Update(ctx context.Context, id string, patch padel.BracketUpdate) (*padel.Bracket, error)
	Delete(ctx context.Context, id string) (bool, error)
}
