package notifier

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-cup/internal/padel"
)

var _ Notifier = LogNotifier{}

// LogNotifier writes notifications to the application log. It is used when no
// Slack credentials are configured.
type LogNotifier struct{}

func (LogNotifier) SendTournamentCreated(t *padel.Tournament, dryRun bool) error {
	log.Info("Tournament created", "tournamentID", t.ID, "name", t.Name, "maxTeams", t.MaxTeams, "dryRun", dryRun)
	return nil
}

func (LogNotifier) SendTeamRegistered(t *padel.Tournament, team *padel.Team, dryRun bool) error {
	log.Info("Team registered", "tournamentID", t.ID, "team", team.Name,
		"registered", t.Count.Teams, "maxTeams", t.MaxTeams, "dryRun", dryRun)
	return nil
}

func (LogNotifier) SendStructureGenerated(t *padel.Tournament, result *padel.StructureResult, dryRun bool) error {
	log.Info("Structure generated", "tournamentID", t.ID, "groups", len(result.Groups),
		"brackets", len(result.Brackets), "matches", len(result.Matches), "dryRun", dryRun)
	return nil
}
