package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-cup/internal/metrics"
	"github.com/mauv0809/padel-cup/internal/padel"
	"github.com/mauv0809/padel-cup/internal/playtomic"
	"github.com/mauv0809/padel-cup/internal/pubsub"
	"golang.org/x/sync/errgroup"
)

// New creates a new Processor. pubsub may be nil, in which case events are
// handled in-process. playtomic may be nil, which disables team import.
func New(stores Stores, generator Generator, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient, playtomic playtomic.PlaytomicClient) *Processor {
	return &Processor{
		stores:    stores,
		generator: generator,
		pubsub:    pubsub,
		notifier:  notifier,
		metrics:   metrics,
		playtomic: playtomic,
	}
}

// CreateTournament stores a new tournament and announces it.
func (p *Processor) CreateTournament(ctx context.Context, in padel.CreateTournamentInput, dryRun bool) (*padel.Tournament, error) {
	t, err := p.stores.Tournaments.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	p.metrics.IncTournamentsCreated()
	log.Info("Tournament created", "tournamentID", t.ID, "name", t.Name)
	p.emit(ctx, pubsub.Event{Type: pubsub.EventTournamentCreated, TournamentID: t.ID, DryRun: dryRun})
	return t, nil
}

// RegisterTeam registers a team into its tournament and announces it.
func (p *Processor) RegisterTeam(ctx context.Context, in padel.CreateTeamInput, dryRun bool) (*padel.Team, error) {
	team, err := p.stores.Teams.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	p.metrics.IncTeamsRegistered()
	log.Info("Team registered", "tournamentID", team.TournamentID, "teamID", team.ID, "name", team.Name)
	p.emit(ctx, pubsub.Event{Type: pubsub.EventTeamRegistered, TournamentID: team.TournamentID, TeamID: team.ID, DryRun: dryRun})
	return team, nil
}

// GenerateStructure runs the generator for a tournament and announces the result.
func (p *Processor) GenerateStructure(ctx context.Context, tournamentID string, cfg padel.TournamentConfig, dryRun bool) (*padel.StructureResult, error) {
	start := time.Now()
	result, err := p.generator.Generate(ctx, tournamentID, cfg)
	p.metrics.ObserveGenerationDuration(time.Since(start).Seconds())
	if err != nil {
		p.metrics.IncGenerationFailed()
		log.Error("Failed to generate structure", "tournamentID", tournamentID, "error", err)
		return nil, err
	}
	p.metrics.IncStructuresGenerated()
	if len(result.Groups) > 0 {
		p.emit(ctx, pubsub.Event{Type: pubsub.EventStructureGenerated, TournamentID: tournamentID, DryRun: dryRun})
	}
	return result, nil
}

// Structure returns the stored groups and brackets of a tournament.
func (p *Processor) Structure(ctx context.Context, tournamentID string) (*padel.Structure, error) {
	var s padel.Structure
	err := p.snapshot(ctx, func(ctx context.Context) error {
		if _, err := p.tournament(ctx, tournamentID); err != nil {
			return err
		}
		var err error
		if s.Groups, err = p.stores.Groups.GetByTournament(ctx, tournamentID); err != nil {
			return err
		}
		s.Brackets, err = p.stores.Brackets.GetByTournament(ctx, tournamentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if s.Groups == nil {
		s.Groups = []padel.Group{}
	}
	if s.Brackets == nil {
		s.Brackets = []padel.Bracket{}
	}
	s.HasGroups = len(s.Groups) > 0
	s.HasBrackets = len(s.Brackets) > 0
	return &s, nil
}

// snapshot runs fn so that every read inside it sees the same commit.
func (p *Processor) snapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	if p.stores.Tx == nil {
		return fn(ctx)
	}
	return p.stores.Tx.Atomically(ctx, fn)
}

// Stats summarises registration and play progress of a tournament.
func (p *Processor) Stats(ctx context.Context, tournamentID string) (*padel.Stats, error) {
	var (
		t       *padel.Tournament
		matches []padel.Match
	)
	err := p.snapshot(ctx, func(ctx context.Context) error {
		var err error
		if t, err = p.tournament(ctx, tournamentID); err != nil {
			return err
		}
		matches, err = p.stores.Matches.GetByTournament(ctx, tournamentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	stats := &padel.Stats{
		TotalTeams:   t.Count.Teams,
		TotalPlayers: 2 * t.Count.Teams,
		TotalMatches: len(matches),
	}
	for _, m := range matches {
		if m.Status == padel.MatchCompleted {
			stats.CompletedMatches++
		}
	}
	if stats.TotalMatches > 0 {
		stats.CompletionPercentage = float64(stats.CompletedMatches) / float64(stats.TotalMatches) * 100
	}
	return stats, nil
}

// Preview evaluates the suggested config for splitting the tournament's teams into numberOfGroups groups.
func (p *Processor) Preview(ctx context.Context, tournamentID string, numberOfGroups int) (*padel.Preview, error) {
	if _, err := p.tournament(ctx, tournamentID); err != nil {
		return nil, err
	}
	total, err := p.stores.Teams.CountByTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	preview := padel.NewPreview(total, padel.SuggestConfig(total, numberOfGroups))
	return &preview, nil
}

// ImportTeams registers the doubles pairs found in a club's Playtomic matches
// until the tournament is full. Pairs already imported are skipped.
func (p *Processor) ImportTeams(ctx context.Context, tournamentID string, params ImportParams, dryRun bool) (*ImportResult, error) {
	if p.playtomic == nil {
		return nil, errors.New("playtomic import is not configured")
	}
	if err := padel.Validate(params); err != nil {
		return nil, err
	}
	if _, err := p.tournament(ctx, tournamentID); err != nil {
		return nil, err
	}

	summaries, err := p.playtomic.GetMatches(ctx, &playtomic.SearchMatchesParams{
		SportID:       "PADEL",
		HasPlayers:    true,
		Sort:          "start_date,ASC",
		TenantIDs:     []string{params.TenantID},
		FromStartDate: params.FromStartDate,
		MaxMatches:    params.MaxMatches,
	})
	if err != nil {
		return nil, err
	}

	details := p.fetchMatches(ctx, summaries)

	result := &ImportResult{Imported: []padel.Team{}}
	seen := make(map[string]bool)
	for _, m := range details {
		if m == nil {
			continue
		}
		for _, pair := range m.Pairs() {
			if seen[pair.Key()] {
				result.Skipped++
				continue
			}
			seen[pair.Key()] = true

			team, err := p.RegisterTeam(ctx, teamFromPair(tournamentID, pair), dryRun)
			switch {
			case errors.Is(err, padel.ErrTournamentFull):
				result.Full = true
				p.metrics.IncTeamsImported(len(result.Imported))
				return result, nil
			case errors.Is(err, padel.ErrValidation):
				log.Warn("Skipping Playtomic pair", "matchID", pair.MatchID, "error", err)
				result.Skipped++
			case err != nil:
				return nil, err
			default:
				result.Imported = append(result.Imported, *team)
			}
		}
	}
	p.metrics.IncTeamsImported(len(result.Imported))
	log.Info("Imported teams from Playtomic", "tournamentID", tournamentID, "imported", len(result.Imported), "skipped", result.Skipped)
	return result, nil
}

// fetchMatches loads match details concurrently. The result is in summary
// order; matches that could not be fetched are nil.
func (p *Processor) fetchMatches(ctx context.Context, summaries []playtomic.MatchSummary) []*playtomic.PadelMatch {
	details := make([]*playtomic.PadelMatch, len(summaries))
	var g errgroup.Group
	g.SetLimit(importConcurrency)
	for i, summary := range summaries {
		g.Go(func() error {
			m, err := p.playtomic.GetSpecificMatch(ctx, summary.MatchID)
			if err != nil {
				log.Warn("Skipping Playtomic match", "matchID", summary.MatchID, "error", err)
				return nil
			}
			details[i] = &m
			return nil
		})
	}
	g.Wait()
	return details
}

func teamFromPair(tournamentID string, pair playtomic.Pair) padel.CreateTeamInput {
	first1, last1 := pair.Players[0].SplitName()
	first2, last2 := pair.Players[1].SplitName()
	return padel.CreateTeamInput{
		Name:         fmt.Sprintf("%s / %s", pair.Players[0].Name, pair.Players[1].Name),
		Player1:      padel.Player{FirstName: first1, LastName: last1},
		Player2:      padel.Player{FirstName: first2, LastName: last2},
		TournamentID: tournamentID,
	}
}

func (p *Processor) tournament(ctx context.Context, id string) (*padel.Tournament, error) {
	t, err := p.stores.Tournaments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("tournament %s: %w", id, padel.ErrNotFound)
	}
	return t, nil
}
