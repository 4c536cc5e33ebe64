package group

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/mauv0809/padel-cup/internal/padel"
	"github.com/mauv0809/padel-cup/internal/storage"
)

type store struct {
	runner *storage.Runner
}

var _ GroupStore = (*store)(nil)

// New creates a GroupStore on top of runner.
func New(runner *storage.Runner) GroupStore {
	return &store{runner: runner}
}

func load(ctx context.Context, u *storage.Unit) []padel.Group {
	return storage.Read[padel.Group](ctx, u, storage.KeyGroups)
}

func indexOf(items []padel.Group, id string) int {
	return slices.IndexFunc(items, func(g padel.Group) bool { return g.ID == id })
}

func (s *store) List(ctx context.Context) ([]padel.Group, error) {
	var out []padel.Group
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		out = load(ctx, u)
		return nil
	})
	return out, err
}

func (s *store) GetByID(ctx context.Context, id string) (*padel.Group, error) {
	var out *padel.Group
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		if i := indexOf(items, id); i >= 0 {
			out = &items[i]
		}
		return nil
	})
	return out, err
}

func (s *store) GetByTournament(ctx context.Context, tournamentID string) ([]padel.Group, error) {
	var out []padel.Group
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		out = slices.DeleteFunc(load(ctx, u), func(g padel.Group) bool { return g.TournamentID != tournamentID })
		return nil
	})
	return out, err
}

// Create stores g, keeping a caller supplied ID and generating one otherwise.
func (s *store) Create(ctx context.Context, g padel.Group) (*padel.Group, error) {
	if g.TournamentID == "" {
		return nil, fmt.Errorf("%w: group needs a tournament", padel.ErrValidation)
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Teams == nil {
		g.Teams = []padel.Team{}
	}
	now := time.Now().UTC()
	g.CreatedAt, g.UpdatedAt = now, now

	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		if indexOf(items, g.ID) >= 0 {
			return fmt.Errorf("%w: group %s already exists", padel.ErrValidation, g.ID)
		}
		return storage.Write(u, storage.KeyGroups, append(items, g))
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *store) Update(ctx context.Context, id string, patch padel.GroupUpdate) (*padel.Group, error) {
	var out *padel.Group
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		i := indexOf(items, id)
		if i < 0 {
			return nil
		}
		g := items[i]
		if patch.Name != nil {
			g.Name = *patch.Name
		}
		g.UpdatedAt = time.Now().UTC()
		items[i] = g
		out = &g
		return storage.Write(u, storage.KeyGroups, items)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *store) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		i := indexOf(items, id)
		if i < 0 {
			return nil
		}
		deleted = true
		return storage.Write(u, storage.KeyGroups, slices.Delete(items, i, i+1))
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
