package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-cup/internal/metrics"
	"github.com/mauv0809/padel-cup/internal/notifier"
	"github.com/mauv0809/padel-cup/internal/padel"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

const dateLayout = "Mon 02 Jan 2006"

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendTournamentCreated(t *padel.Tournament, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatTournamentCreated(t), dryRun)
	return err
}

func (s *Notifier) SendTeamRegistered(t *padel.Tournament, team *padel.Team, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatTeamRegistered(t, team), dryRun)
	return err
}

func (s *Notifier) SendStructureGenerated(t *padel.Tournament, result *padel.StructureResult, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatStructureGenerated(t, result), dryRun)
	return err
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject("plain_text", text, true, false)
}

func markdown(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject("mrkdwn", text, false, false)
}

// formatTournamentCreated announces a new tournament using Block Kit.
func (s *Notifier) formatTournamentCreated(t *padel.Tournament) slack.Message {
	blocks := make([]slack.Block, 0, 3)
	blocks = append(blocks, slack.NewHeaderBlock(plainText(fmt.Sprintf("🏆 New tournament: %s", t.Name))))

	details := fmt.Sprintf("*Dates:* %s - %s\n*Format:* %s\n*Teams:* up to %d",
		t.StartDate.Format(dateLayout), t.EndDate.Format(dateLayout), humanize(string(t.Format)), t.MaxTeams)
	blocks = append(blocks, slack.NewSectionBlock(markdown(details), nil, nil))

	if t.Description != "" {
		blocks = append(blocks, slack.NewContextBlock("", plainText(t.Description)))
	}
	return slack.NewBlockMessage(blocks...)
}

// formatTeamRegistered announces a team registration using Block Kit.
func (s *Notifier) formatTeamRegistered(t *padel.Tournament, team *padel.Team) slack.Message {
	blocks := make([]slack.Block, 0, 3)
	blocks = append(blocks, slack.NewHeaderBlock(plainText("🎾 Team registered!")))

	text := fmt.Sprintf("*%s* joined *%s*\n• %s\n• %s", team.Name, t.Name, team.Player1.FullName(), team.Player2.FullName())
	blocks = append(blocks, slack.NewSectionBlock(markdown(text), nil, nil))

	spots := fmt.Sprintf("%d/%d teams registered", t.Count.Teams, t.MaxTeams)
	if t.IsFull() {
		spots += ", registration is full"
	}
	blocks = append(blocks, slack.NewContextBlock("", plainText(spots)))
	return slack.NewBlockMessage(blocks...)
}

// formatStructureGenerated lists the groups and elimination rounds of a freshly generated structure.
func (s *Notifier) formatStructureGenerated(t *padel.Tournament, result *padel.StructureResult) slack.Message {
	blocks := make([]slack.Block, 0, len(result.Groups)+4)
	blocks = append(blocks, slack.NewHeaderBlock(plainText(fmt.Sprintf("📋 %s: the draw is out!", t.Name))))

	names := make(map[string]string)
	for _, g := range result.Groups {
		lines := make([]string, 0, len(g.Teams))
		for i, team := range g.Teams {
			names[team.ID] = team.Name
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, team.Name))
		}
		text := fmt.Sprintf("*Group %s*\n%s", g.Name, strings.Join(lines, "\n"))
		blocks = append(blocks, slack.NewSectionBlock(markdown(text), nil, nil))
	}

	if len(result.Brackets) > 0 {
		blocks = append(blocks, slack.NewDividerBlock())
		lines := make([]string, 0, len(result.Brackets))
		for _, b := range result.Brackets {
			pairings := make([]string, 0, len(b.Matches))
			for _, m := range b.Matches {
				pairings = append(pairings, fmt.Sprintf("%s vs %s", teamName(names, m.HomeTeamID), teamName(names, m.AwayTeamID)))
			}
			lines = append(lines, fmt.Sprintf("*%s:* %s", b.Name, strings.Join(pairings, ", ")))
		}
		blocks = append(blocks, slack.NewSectionBlock(markdown(strings.Join(lines, "\n")), nil, nil))
	}

	summary := fmt.Sprintf("%d groups, %d matches scheduled", len(result.Groups), len(result.Matches))
	blocks = append(blocks, slack.NewContextBlock("", plainText(summary)))
	return slack.NewBlockMessage(blocks...)
}

func teamName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}

// humanize turns SINGLE_ELIMINATION into "Single elimination".
func humanize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(strings.ReplaceAll(s, "_", " "))
	return strings.ToUpper(lower[:1]) + lower[1:]
}
