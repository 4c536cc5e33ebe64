package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-cup/internal/padel"
	"github.com/mauv0809/padel-cup/internal/pubsub"
)

// emit publishes ev, or handles it directly when no Pub/Sub client is
// configured or publishing fails. Failures never reach the caller.
func (p *Processor) emit(ctx context.Context, ev pubsub.Event) {
	ev.OccurredAt = time.Now().UTC()
	if p.pubsub != nil {
		err := p.pubsub.SendMessage(ctx, ev.Type, ev)
		if err == nil {
			p.metrics.IncEventsPublished(string(ev.Type))
			return
		}
		log.Warn("Failed to publish event, handling in-process", "type", ev.Type, "tournamentID", ev.TournamentID, "error", err)
	}
	if err := p.HandleEvent(ctx, ev); err != nil {
		log.Error("Failed to handle event", "type", ev.Type, "tournamentID", ev.TournamentID, "error", err)
	}
}

// HandleEvent sends the notification that belongs to ev.
func (p *Processor) HandleEvent(ctx context.Context, ev pubsub.Event) error {
	log.Debug("Handling event", "type", ev.Type, "tournamentID", ev.TournamentID, "dryRun", ev.DryRun)
	t, err := p.tournament(ctx, ev.TournamentID)
	if err != nil {
		return err
	}

	switch ev.Type {
	case pubsub.EventTournamentCreated:
		return p.notifier.SendTournamentCreated(t, ev.DryRun)

	case pubsub.EventTeamRegistered:
		team, err := p.stores.Teams.GetByID(ctx, ev.TeamID)
		if err != nil {
			return err
		}
		if team == nil {
			return fmt.Errorf("team %s: %w", ev.TeamID, padel.ErrNotFound)
		}
		return p.notifier.SendTeamRegistered(t, team, ev.DryRun)

	case pubsub.EventStructureGenerated:
		result, err := p.storedResult(ctx, t.ID)
		if err != nil {
			return err
		}
		return p.notifier.SendStructureGenerated(t, result, ev.DryRun)

	default:
		log.Warn("Ignoring unknown event", "type", ev.Type)
		return nil
	}
}

// storedResult loads a tournament's groups, brackets and matches from one commit.
func (p *Processor) storedResult(ctx context.Context, tournamentID string) (*padel.StructureResult, error) {
	var result padel.StructureResult
	err := p.snapshot(ctx, func(ctx context.Context) error {
		var err error
		if result.Groups, err = p.stores.Groups.GetByTournament(ctx, tournamentID); err != nil {
			return err
		}
		if result.Brackets, err = p.stores.Brackets.GetByTournament(ctx, tournamentID); err != nil {
			return err
		}
		result.Matches, err = p.stores.Matches.GetByTournament(ctx, tournamentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
