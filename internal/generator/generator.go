package generator

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/padel-cup/internal/padel"
)

// New creates a Generator writing through deps.
func New(deps Deps, opts ...Option) *Generator {
	g := &Generator{
		deps:        deps,
		advancement: RegistrationOrderAdvancement{},
		shuffle:     shuffle,
		policy:      AllowRegeneration,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func shuffle(teams []padel.Team) {
	rand.Shuffle(len(teams), func(i, j int) { teams[i], teams[j] = teams[j], teams[i] })
}

// Generate splits the tournament's registered teams into groups, schedules a
// round-robin inside every group and builds the elimination brackets from the
// advancing teams. Teams beyond NumberOfGroups*TeamsPerGroup are left out.
// A tournament without teams yields an empty result.
func (g *Generator) Generate(ctx context.Context, tournamentID string, cfg padel.TournamentConfig) (*padel.StructureResult, error) {
	result := &padel.StructureResult{
		Groups:   []padel.Group{},
		Brackets: []padel.Bracket{},
		Matches:  []padel.Match{},
	}
	err := g.atomically(ctx, func(ctx context.Context) error {
		t, err := g.deps.Tournaments.GetByID(ctx, tournamentID)
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("tournament %s: %w", tournamentID, padel.ErrNotFound)
		}

		teams, err := g.deps.Teams.GetByTournament(ctx, t.ID)
		if err != nil {
			return err
		}
		if len(teams) == 0 {
			log.Info("No registered teams, nothing to generate", "tournamentID", t.ID)
			return nil
		}
		if err := cfg.ValidateFor(len(teams)); err != nil {
			return err
		}
		if err := g.checkPolicy(ctx, t.ID); err != nil {
			return err
		}

		log.Info("Generating tournament structure", "tournamentID", t.ID, "teams", len(teams),
			"groups", cfg.NumberOfGroups, "teamsPerGroup", cfg.TeamsPerGroup, "advancingPerGroup", cfg.TeamsAdvancingPerGroup)

		g.shuffle(teams)
		if dropped := len(teams) - cfg.Capacity(); dropped > 0 {
			log.Warn("Teams left out of the group stage", "tournamentID", t.ID, "count", dropped)
		}

		for i := 0; i < cfg.NumberOfGroups; i++ {
			lo := i * cfg.TeamsPerGroup
			if lo >= len(teams) {
				break
			}
			hi := min(lo+cfg.TeamsPerGroup, len(teams))
			group, err := g.createGroup(ctx, t.ID, GroupName(i), teams[lo:hi])
			if err != nil {
				return err
			}
			result.Groups = append(result.Groups, *group)

			matches, err := g.roundRobin(ctx, group)
			if err != nil {
				return err
			}
			result.Matches = append(result.Matches, matches...)
		}

		advancing, err := g.advancement.Advancing(ctx, result.Groups, cfg.TeamsAdvancingPerGroup)
		if err != nil {
			return fmt.Errorf("failed to select advancing teams: %w", err)
		}
		for _, e := range eliminations {
			if len(advancing) < e.teams {
				continue
			}
			b, err := g.createBracket(ctx, t.ID, e, advancing[:e.teams])
			if err != nil {
				return err
			}
			result.Brackets = append(result.Brackets, *b)
			result.Matches = append(result.Matches, b.Matches...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Tournament structure generated", "tournamentID", tournamentID,
		"groups", len(result.Groups), "brackets", len(result.Brackets), "matches", len(result.Matches))
	return result, nil
}

func (g *Generator) atomically(ctx context.Context, fn func(ctx context.Context) error) error {
	if g.deps.Tx == nil {
		return fn(ctx)
	}
	return g.deps.Tx.Atomically(ctx, fn)
}

func (g *Generator) checkPolicy(ctx context.Context, tournamentID string) error {
	if g.policy != RejectRegeneration {
		return nil
	}
	existing, err := g.deps.Groups.GetByTournament(ctx, tournamentID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("tournament %s has %d groups: %w", tournamentID, len(existing), padel.ErrAlreadyGenerated)
	}
	return nil
}

func (g *Generator) createGroup(ctx context.Context, tournamentID, name string, members []padel.Team) (*padel.Group, error) {
	groupID := uuid.NewString()
	snapshot := make([]padel.Team, 0, len(members))
	for i, member := range members {
		assigned, err := g.deps.Teams.AssignGroup(ctx, member.ID, groupID, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to assign team %s to group %s: %w", member.ID, name, err)
		}
		if assigned == nil {
			return nil, fmt.Errorf("team %s: %w", member.ID, padel.ErrNotFound)
		}
		snapshot = append(snapshot, *assigned)
	}
	group, err := g.deps.Groups.Create(ctx, padel.Group{
		ID:           groupID,
		Name:         name,
		TournamentID: tournamentID,
		Teams:        snapshot,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create group %s: %w", name, err)
	}
	log.Debug("Group created", "group", name, "teams", len(snapshot))
	return group, nil
}

// roundRobin schedules every unordered pair of group members once. Match
// numbers start at 1 within each group.
func (g *Generator) roundRobin(ctx context.Context, group *padel.Group) ([]padel.Match, error) {
	n := len(group.Teams)
	matches := make([]padel.Match, 0, n*(n-1)/2)
	number := 1
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m, err := g.deps.Matches.Create(ctx, padel.Match{
				TournamentID: group.TournamentID,
				HomeTeamID:   group.Teams[i].ID,
				AwayTeamID:   group.Teams[j].ID,
				Status:       padel.MatchScheduled,
				Round:        padel.RoundGroupStage,
				MatchNumber:  number,
				GroupID:      padel.Ptr(group.ID),
			})
			if err != nil {
				return nil, fmt.Errorf("failed to create match %d of group %s: %w", number, group.Name, err)
			}
			matches = append(matches, *m)
			number++
		}
	}
	return matches, nil
}

// createBracket pairs teams [0,1], [2,3], ... into the matches of one round.
func (g *Generator) createBracket(ctx context.Context, tournamentID string, e elimination, teams []padel.Team) (*padel.Bracket, error) {
	bracketID := uuid.NewString()
	matches := make([]padel.Match, 0, len(teams)/2)
	for k := 0; k+1 < len(teams); k += 2 {
		m, err := g.deps.Matches.Create(ctx, padel.Match{
			TournamentID: tournamentID,
			HomeTeamID:   teams[k].ID,
			AwayTeamID:   teams[k+1].ID,
			Status:       padel.MatchScheduled,
			Round:        e.round,
			MatchNumber:  k/2 + 1,
			BracketID:    padel.Ptr(bracketID),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s match: %w", e.name, err)
		}
		matches = append(matches, *m)
	}
	b, err := g.deps.Brackets.Create(ctx, padel.Bracket{
		ID:           bracketID,
		Name:         e.name,
		TournamentID: tournamentID,
		Round:        e.round,
		Matches:      matches,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s bracket: %w", e.name, err)
	}
	log.Debug("Bracket created", "bracket", e.name, "matches", len(matches))
	return b, nil
}

// GroupName returns the letter name of the i-th group (0-based): A..Z, then AA, AB, ...
func GroupName(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return name
}
