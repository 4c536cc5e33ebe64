package match

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/padel-cup/internal/padel"
	"github.com/mauv0809/padel-cup/internal/storage"
)

type store struct {
	runner  *storage.Runner
	counter Counter
}

var _ MatchStore = (*store)(nil)

// New creates a MatchStore. counter must share runner.
func New(runner *storage.Runner, counter Counter) MatchStore {
	return &store{runner: runner, counter: counter}
}

func load(ctx context.Context, u *storage.Unit) []padel.Match {
	return storage.Read[padel.Match](ctx, u, storage.KeyMatches)
}

func indexOf(items []padel.Match, id string) int {
	return slices.IndexFunc(items, func(m padel.Match) bool { return m.ID == id })
}

func (s *store) List(ctx context.Context) ([]padel.Match, error) {
	return s.filter(ctx, func(padel.Match) bool { return true })
}

func (s *store) GetByID(ctx context.Context, id string) (*padel.Match, error) {
	var out *padel.Match
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		if i := indexOf(items, id); i >= 0 {
			out = &items[i]
		}
		return nil
	})
	return out, err
}

func (s *store) GetByTournament(ctx context.Context, tournamentID string) ([]padel.Match, error) {
	return s.filter(ctx, func(m padel.Match) bool { return m.TournamentID == tournamentID })
}

func (s *store) GetByGroup(ctx context.Context, groupID string) ([]padel.Match, error) {
	return s.filter(ctx, func(m padel.Match) bool { return m.GroupID != nil && *m.GroupID == groupID })
}

func (s *store) GetByBracket(ctx context.Context, bracketID string) ([]padel.Match, error) {
	return s.filter(ctx, func(m padel.Match) bool { return m.BracketID != nil && *m.BracketID == bracketID })
}

func (s *store) filter(ctx context.Context, keep func(padel.Match) bool) ([]padel.Match, error) {
	var out []padel.Match
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		out = slices.DeleteFunc(load(ctx, u), func(m padel.Match) bool { return !keep(m) })
		return nil
	})
	return out, err
}

// checkPlacement enforces that group stage matches hang off a group and
// elimination matches off a bracket, never both.
func checkPlacement(m padel.Match) error {
	switch {
	case m.Round < padel.RoundGroupStage || m.Round > padel.RoundFinal:
		return fmt.Errorf("%w: round %d out of range", padel.ErrValidation, m.Round)
	case m.Round == padel.RoundGroupStage && (m.GroupID == nil || m.BracketID != nil):
		return fmt.Errorf("%w: group stage match needs a group and no bracket", padel.ErrValidation)
	case m.Round > padel.RoundGroupStage && (m.BracketID == nil || m.GroupID != nil):
		return fmt.Errorf("%w: elimination match needs a bracket and no group", padel.ErrValidation)
	case m.HomeTeamID == "" || m.AwayTeamID == "" || m.HomeTeamID == m.AwayTeamID:
		return fmt.Errorf("%w: match needs two distinct teams", padel.ErrValidation)
	}
	return nil
}

// Create stores m and bumps the tournament's match counter in the same unit.
func (s *store) Create(ctx context.Context, m padel.Match) (*padel.Match, error) {
	if err := checkPlacement(m); err != nil {
		return nil, err
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = padel.MatchScheduled
	}
	now := time.Now().UTC()
	m.CreatedAt, m.UpdatedAt = now, now

	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		if indexOf(items, m.ID) >= 0 {
			return fmt.Errorf("%w: match %s already exists", padel.ErrValidation, m.ID)
		}
		if err := storage.Write(u, storage.KeyMatches, append(items, m)); err != nil {
			return err
		}
		return s.counter.AdjustCounts(ctx, m.TournamentID, 0, 1)
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *store) Update(ctx context.Context, id string, patch padel.MatchUpdate) (*padel.Match, error) {
	if err := padel.Validate(patch); err != nil {
		return nil, err
	}
	var out *padel.Match
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		i := indexOf(items, id)
		if i < 0 {
			return nil
		}
		m := items[i]
		if patch.WinnerID != nil && *patch.WinnerID != m.HomeTeamID && *patch.WinnerID != m.AwayTeamID {
			return fmt.Errorf("%w: winner must be one of the match teams", padel.ErrValidation)
		}
		applyUpdate(&m, patch)
		m.UpdatedAt = time.Now().UTC()
		items[i] = m
		out = &m
		return storage.Write(u, storage.KeyMatches, items)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func applyUpdate(m *padel.Match, patch padel.MatchUpdate) {
	if patch.HomeScore != nil {
		m.HomeScore = *patch.HomeScore
	}
	if patch.AwayScore != nil {
		m.AwayScore = *patch.AwayScore
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.ScheduledAt != nil {
		m.ScheduledAt = patch.ScheduledAt
	}
	if patch.StartedAt != nil {
		m.StartedAt = patch.StartedAt
	}
	if patch.EndedAt != nil {
		m.EndedAt = patch.EndedAt
	}
	if patch.WinnerID != nil {
		m.WinnerID = patch.WinnerID
	}
}

// Delete removes a match and decrements its tournament's match counter.
func (s *store) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		i := indexOf(items, id)
		if i < 0 {
			return nil
		}
		tournamentID := items[i].TournamentID
		if err := storage.Write(u, storage.KeyMatches, slices.Delete(items, i, i+1)); err != nil {
			return err
		}
		deleted = true
		err := s.counter.AdjustCounts(ctx, tournamentID, 0, -1)
		if errors.Is(err, padel.ErrNotFound) {
			log.Warn("Deleted match without a tournament", "matchID", id, "tournamentID", tournamentID)
			return nil
		}
		return err
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
