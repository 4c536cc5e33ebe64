package group

import (
	"context"

	"github.com/mauv0809/padel-cup/internal/padel"
)

// GroupStore defines the interface for persisting generated groups.
type GroupStore interface {
	List(ctx context.Context) ([]padel.Group, error)
	GetByID(ctx context.Context, id string) (*padel.Group, error)
	GetByTournament(ctx context.Context, tournamentID string) ([]padel.Group, error)
	Create(ctx context.Context, g padel.Group) (*padel.Group, error)
	Update(ctx context.Context, id string, patch padel.GroupUpdate) (*padel.Group, error)
	Delete(ctx context.Context, id string) (bool, error)
}
