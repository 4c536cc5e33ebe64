package tournament

import (
	"context"
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
	runner *storage.Runner
	now    func() time.Time
}

var _ TournamentStore = (*store)(nil)

// New creates a TournamentStore on top of runner.
func New(runner *storage.Runner) TournamentStore {
	return &store{
		runner: runner,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func load(ctx context.Context, u *storage.Unit) []padel.Tournament {
	return storage.Read[padel.Tournament](ctx, u, storage.KeyTournaments)
}

func indexOf(items []padel.Tournament, id string) int {
	return slices.IndexFunc(items, func(t padel.Tournament) bool { return t.ID == id })
}

func (s *store) List(ctx context.Context) ([]padel.Tournament, error) {
	var out []padel.Tournament
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		out = load(ctx, u)
		return nil
	})
	return out, err
}

func (s *store) GetByID(ctx context.Context, id string) (*padel.Tournament, error) {
	var out *padel.Tournament
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		if i := indexOf(items, id); i >= 0 {
			out = &items[i]
		}
		return nil
	})
	return out, err
}

func (s *store) Create(ctx context.Context, in padel.CreateTournamentInput) (*padel.Tournament, error) {
	if err := padel.Validate(in); err != nil {
		return nil, err
	}
	now := s.now()
	t := padel.Tournament{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		MaxTeams:    in.MaxTeams,
		Status:      in.Status,
		Format:      in.Format,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.Status == "" {
		t.Status = padel.StatusDraft
	}
	if t.Format == "" {
		t.Format = padel.FormatSingleElimination
	}

	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		items = append(items, t)
		return storage.Write(u, storage.KeyTournaments, items)
	})
	if err != nil {
		return nil, err
	}
	log.Info("Tournament created", "tournamentID", t.ID, "name", t.Name)
	return &t, nil
}

func (s *store) Update(ctx context.Context, id string, patch padel.TournamentUpdate) (*padel.Tournament, error) {
	if err := padel.Validate(patch); err != nil {
		return nil, err
	}
	var out *padel.Tournament
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		i := indexOf(items, id)
		if i < 0 {
			return nil
		}
		t := items[i]
		applyUpdate(&t, patch)
		if t.EndDate.Before(t.StartDate) {
			return fmt.Errorf("%w: endDate must not be before startDate", padel.ErrValidation)
		}
		t.UpdatedAt = s.now()
		items[i] = t
		out = &t
		return storage.Write(u, storage.KeyTournaments, items)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func applyUpdate(t *padel.Tournament, patch padel.TournamentUpdate) {
	if patch.Name != nil {
		t.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.StartDate != nil {
		t.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		t.EndDate = *patch.EndDate
	}
	if patch.MaxTeams != nil {
		t.MaxTeams = *patch.MaxTeams
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Format != nil {
		t.Format = *patch.Format
	}
}

// Delete removes the tournament together with every team, group, match and
// bracket that references it.
func (s *store) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		i := indexOf(items, id)
		if i < 0 {
			return nil
		}
		deleted = true
		if err := storage.Write(u, storage.KeyTournaments, slices.Delete(items, i, i+1)); err != nil {
			return err
		}
		if err := cascade(ctx, u, storage.KeyTeams, id, func(t padel.Team) string { return t.TournamentID }); err != nil {
			return err
		}
		if err := cascade(ctx, u, storage.KeyGroups, id, func(g padel.Group) string { return g.TournamentID }); err != nil {
			return err
		}
		if err := cascade(ctx, u, storage.KeyMatches, id, func(m padel.Match) string { return m.TournamentID }); err != nil {
			return err
		}
		return cascade(ctx, u, storage.KeyBrackets, id, func(b padel.Bracket) string { return b.TournamentID })
	})
	if err != nil {
		return false, err
	}
	if deleted {
		log.Info("Tournament deleted", "tournamentID", id)
	}
	return deleted, nil
}

func cascade[T any](ctx context.Context, u *storage.Unit, key storage.Key, tournamentID string, owner func(T) string) error {
	items := storage.Read[T](ctx, u, key)
	kept := slices.DeleteFunc(items, func(item T) bool { return owner(item) == tournamentID })
	removed := len(items) - len(kept)
	if removed == 0 {
		return nil
	}
	log.Debug("Removing orphaned records", "collection", key, "count", removed, "tournamentID", tournamentID)
	return storage.Write(u, key, kept)
}

func (s *store) ChangeStatus(ctx context.Context, id string, status padel.TournamentStatus) (*padel.Tournament, error) {
	return s.Update(ctx, id, padel.TournamentUpdate{Status: &status})
}

// Search matches Query case-insensitively against name and description.
func (s *store) Search(ctx context.Context, params padel.SearchParams) (padel.Page[padel.Tournament], error) {
	all, err := s.List(ctx)
	if err != nil {
		return padel.Page[padel.Tournament]{}, err
	}
	query := strings.ToLower(strings.TrimSpace(params.Query))
	matches := make([]padel.Tournament, 0, len(all))
	for _, t := range all {
		if params.Status != "" && t.Status != params.Status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Name), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		matches = append(matches, t)
	}
	return paginate(matches, params.Page, params.Limit), nil
}

func paginate(items []padel.Tournament, page, limit int) padel.Page[padel.Tournament] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = padel.DefaultPageLimit
	}
	limit = min(limit, padel.MaxPageLimit)
	total := len(items)
	totalPages := (total + limit - 1) / limit
	// Pages past the end are empty; checked before multiplying so huge page numbers cannot overflow.
	start, end := total, total
	if page-1 < totalPages {
		start = (page - 1) * limit
		end = min(start+limit, total)
	}
	return padel.Page[padel.Tournament]{
		Items:      items[start:end],
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Active returns tournaments open for registration or in progress.
func (s *store) Active(ctx context.Context) ([]padel.Tournament, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]padel.Tournament, 0, len(all))
	for _, t := range all {
		if t.Status == padel.StatusRegistration || t.Status == padel.StatusInProgress {
			active = append(active, t)
		}
	}
	return active, nil
}

func (s *store) IsFull(ctx context.Context, id string) (bool, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if t == nil {
		return false, fmt.Errorf("tournament %s: %w", id, padel.ErrNotFound)
	}
	return t.IsFull(), nil
}

func (s *store) AdjustCounts(ctx context.Context, id string, teams, matches int) error {
	return s.runner.Do(ctx, func(ctx context.Context, u *storage.Unit) error {
		items := load(ctx, u)
		i := indexOf(items, id)
		if i < 0 {
			return fmt.Errorf("tournament %s: %w", id, padel.ErrNotFound)
		}
		items[i].Count.Teams = max(0, items[i].Count.Teams+teams)
		items[i].Count.Matches = max(0, items[i].Count.Matches+matches)
		items[i].UpdatedAt = s.now()
		return storage.Write(u, storage.KeyTournaments, items)
	})
}
