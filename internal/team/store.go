package team

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/padel-cup/internal/padel"
	"github.com/mauv0809/padel-cup/internal/storage"
)

type store struct {
	runner      *storage.Runner
	tournaments Tournaments
}

var _ TeamStore = (*store)(nil)

// New creates a TeamStore. tournaments must share runner so counter updates
// commit with the team write.
func New(runner *storage.Runner, tournaments Tournaments) TeamStore {
	return &store{runner: runner, tournaments: tournaments}
}

func load(ctx context.Context, u *storage.Unit) []padel.Team {
	return storage.Read[padel.Team](ctx, u, storage.KeyTeams)
}

func indexOf(items []padel.Team, id string) int {
	return slices.IndexFunc(items, func(t padel.Team) bool { return t.ID == id })
}

func (s *store) List(ctx context.Context) ([]padel.Team, error) {
	var out []padel.Team
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		out = load(ctx, u)
		return nil
	})
	return out, err
}

func (s *store) GetByID(ctx context.Context, id string) (*padel.Team, error) {
	var out *padel.Team
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		if i := indexOf(items, id); i >= 0 {
			out = &items[i]
		}
		return nil
	})
	return out, err
}

// GetByTournament returns the tournament's teams in registration order.
func (s *store) GetByTournament(ctx context.Context, tournamentID string) ([]padel.Team, error) {
	var out []padel.Team
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		out = slices.DeleteFunc(load(ctx, u), func(t padel.Team) bool { return t.TournamentID != tournamentID })
		return nil
	})
	return out, err
}

func (s *store) CountByTournament(ctx context.Context, tournamentID string) (int, error) {
	teams, err := s.GetByTournament(ctx, tournamentID)
	return len(teams), err
}

// Create registers a team and bumps the tournament's team counter in the same unit.
func (s *store) Create(ctx context.Context, in padel.CreateTeamInput) (*padel.Team, error) {
	if err := padel.Validate(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	team := padel.Team{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Player1:      in.Player1,
		Player2:      in.Player2,
		TournamentID: in.TournamentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		t, err := s.tournaments.GetByID(ctx, in.TournamentID)
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("tournament %s: %w", in.TournamentID, padel.ErrNotFound)
		}
		if t.IsFull() {
			return fmt.Errorf("tournament %s has %d of %d teams: %w", t.ID, t.Count.Teams, t.MaxTeams, padel.ErrTournamentFull)
		}
		if err := storage.Write(u, storage.KeyTeams, append(load(ctx, u), team)); err != nil {
			return err
		}
		return s.tournaments.AdjustCounts(ctx, in.TournamentID, 1, 0)
	})
	if err != nil {
		return nil, err
	}
	log.Info("Team registered", "teamID", team.ID, "name", team.Name, "tournamentID", team.TournamentID)
	return &team, nil
}

func (s *store) Update(ctx context.Context, id string, patch padel.TeamUpdate) (*padel.Team, error) {
	if err := padel.Validate(patch); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(t *padel.Team) error {
		if patch.Name != nil {
			t.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Player1 != nil {
			if err := padel.Validate(*patch.Player1); err != nil {
				return err
			}
			t.Player1 = *patch.Player1
		}
		if patch.Player2 != nil {
			if err := padel.Validate(*patch.Player2); err != nil {
				return err
			}
			t.Player2 = *patch.Player2
		}
		if patch.IsEliminated != nil {
			t.IsEliminated = *patch.IsEliminated
		}
		return nil
	})
}

// AssignGroup records the team's group and its 1-based position in it.
func (s *store) AssignGroup(ctx context.Context, id, groupID string, position int) (*padel.Team, error) {
	return s.mutate(ctx, id, func(t *padel.Team) error {
		t.GroupID = &groupID
		t.GroupPosition = &position
		return nil
	})
}

func (s *store) mutate(ctx context.Context, id string, fn func(t *padel.Team) error) (*padel.Team, error) {
	var out *padel.Team
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		i := indexOf(items, id)
		if i < 0 {
			return nil
		}
		t := items[i]
		if err := fn(&t); err != nil {
			return err
		}
		t.UpdatedAt = time.Now().UTC()
		items[i] = t
		out = &t
		return storage.Write(u, storage.KeyTeams, items)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a team and decrements its tournament's team counter.
func (s *store) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		i := indexOf(items, id)
		if i < 0 {
			return nil
		}
		tournamentID := items[i].TournamentID
		if err := storage.Write(u, storage.KeyTeams, slices.Delete(items, i, i+1)); err != nil {
			return err
		}
		deleted = true
		err := s.tournaments.AdjustCounts(ctx, tournamentID, -1, 0)
		if errors.Is(err, padel.ErrNotFound) {
			log.Warn("Deleted team without a tournament", "teamID", id, "tournamentID", tournamentID)
			return nil
		}
		return err
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
