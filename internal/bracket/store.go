package bracket

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

var _ BracketStore = (*store)(nil)

// New creates a BracketStore on top of runner.
func New(runner *storage.Runner) BracketStore {
	return &store{runner: runner}
}

func load(ctx context.Context, u *storage.Unit) []padel.Bracket {
	return storage.Read[padel.Bracket](ctx, u, storage.KeyBrackets)
}

func indexOf(items []padel.Bracket, id string) int {
	return slices.IndexFunc(items, func(b padel.Bracket) bool { return b.ID == id })
}

func (s *store) List(ctx context.Context) ([]padel.Bracket, error) {
	var out []padel.Bracket
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		out = load(ctx, u)
		return nil
	})
	return out, err
}

func (s *store) GetByID(ctx context.Context, id string) (*padel.Bracket, error) {
	var out *padel.Bracket
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		if i := indexOf(items, id); i >= 0 {
			out = &items[i]
		}
		return nil
	})
	return out, err
}

// GetByTournament returns the tournament's brackets ordered by round.
func (s *store) GetByTournament(ctx context.Context, tournamentID string) ([]padel.Bracket, error) {
	var out []padel.Bracket
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		out = slices.DeleteFunc(load(ctx, u), func(b padel.Bracket) bool { return b.TournamentID != tournamentID })
		slices.SortStableFunc(out, func(a, b padel.Bracket) int { return a.Round - b.Round })
		return nil
	})
	return out, err
}

// Create stores b, keeping a caller supplied ID and generating one otherwise.
func (s *store) Create(ctx context.Context, b padel.Bracket) (*padel.Bracket, error) {
	if b.TournamentID == "" {
		return nil, fmt.Errorf("%w: bracket needs a tournament", padel.ErrValidation)
	}
	if b.Round <= padel.RoundGroupStage || b.Round > padel.RoundFinal {
		return nil, fmt.Errorf("%w: bracket round %d out of range", padel.ErrValidation, b.Round)
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Matches == nil {
		b.Matches = []padel.Match{}
	}
	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now

	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		if indexOf(items, b.ID) >= 0 {
			return fmt.Errorf("%w: bracket %s already exists", padel.ErrValidation, b.ID)
		}
		return storage.Write(u, storage.KeyBrackets, append(items, b))
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *store) Update(ctx context.Context, id string, patch padel.BracketUpdate) (*padel.Bracket, error) {
	var out *padel.Bracket
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		i := indexOf(items, id)
		if i < 0 {
			return nil
		}
		b := items[i]
		if patch.Name != nil {
			b.Name = *patch.Name
		}
		if patch.Matches != nil {
			b.Matches = patch.Matches
		}
		b.UpdatedAt = time.Now().UTC()
		items[i] = b
		out = &b
		return storage.Write(u, storage.KeyBrackets, items)
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
		return storage.Write(u, storage.KeyBrackets, slices.Delete(items, i, i+1))
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
