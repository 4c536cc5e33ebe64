package notifier

import "github.com/mauv0809/padel-cup/internal/padel"

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	SendTournamentCreated(t *padel.Tournament, dryRun bool) error
	SendTeamRegistered(t *padel.Tournament, team *padel.Team, dryRun bool) error
	SendStructureGenerated(t *padel.Tournament, result *padel.StructureResult, dryRun bool) error
}
