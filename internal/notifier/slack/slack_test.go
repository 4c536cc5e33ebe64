package slack

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/padel-cup/internal/metrics"
	"github.com/mauv0809/padel-cup/internal/padel"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func sampleTournament() *padel.Tournament {
	start := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	return &padel.Tournament{
		ID:          "t1",
		Name:        "Torneo de Verano",
		Description: "Summer cup",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		MaxTeams:    2,
		Format:      padel.FormatSingleElimination,
		Count:       padel.Counts{Teams: 2},
	}
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, ts, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
	assert.Equal(t, "dry-run-thread-ts", ts)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestSendTeamRegistered_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}
	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	team := &padel.Team{ID: "tm1", Name: "Los Rápidos"}
	err := notifier.SendTeamRegistered(sampleTournament(), team, false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendTeamRegistered")
}

func TestFormatTournamentCreated(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatTournamentCreated(sampleTournament())
	require.Len(t, msg.Blocks.BlockSet, 3)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "first block should be a header")
	assert.Contains(t, header.Text.Text, "Torneo de Verano")

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Single elimination")
	assert.Contains(t, section.Text.Text, "Mon 15 Jul 2024 - Wed 17 Jul 2024")
	assert.Contains(t, section.Text.Text, "up to 2")
}

func TestFormatTeamRegistered(t *testing.T) {
	team := &padel.Team{
		Name:    "Los Rápidos",
		Player1: padel.Player{FirstName: "Ana", LastName: "García"},
		Player2: padel.Player{FirstName: "Luis", LastName: "Pérez"},
	}
	client := &Notifier{channelID: "C123"}
	msg := client.formatTeamRegistered(sampleTournament(), team)
	require.Len(t, msg.Blocks.BlockSet, 3)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Ana García")
	assert.Contains(t, section.Text.Text, "Luis Pérez")

	ctxBlock, ok := msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
	require.True(t, ok)
	require.Len(t, ctxBlock.ContextElements.Elements, 1)
	text, ok := ctxBlock.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Equal(t, "2/2 teams registered, registration is full", text.Text)
}

func TestFormatStructureGenerated(t *testing.T) {
	result := &padel.StructureResult{
		Groups: []padel.Group{
			{Name: "A", Teams: []padel.Team{{ID: "a1", Name: "Alpha"}, {ID: "a2", Name: "Bravo"}}},
			{Name: "B", Teams: []padel.Team{{ID: "b1", Name: "Charlie"}, {ID: "b2", Name: "Delta"}}},
		},
		Brackets: []padel.Bracket{
			{Name: padel.BracketFinal, Matches: []padel.Match{{HomeTeamID: "a1", AwayTeamID: "b1"}}},
		},
		Matches: make([]padel.Match, 3),
	}
	client := &Notifier{channelID: "C123"}
	msg := client.formatStructureGenerated(sampleTournament(), result)

	// header, two groups, divider, brackets, context
	require.Len(t, msg.Blocks.BlockSet, 6)
	groupA, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "*Group A*\n1. Alpha\n2. Bravo", groupA.Text.Text)

	_, ok = msg.Blocks.BlockSet[3].(*slackapi.DividerBlock)
	assert.True(t, ok)

	brackets, ok := msg.Blocks.BlockSet[4].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "*Final:* Alpha vs Charlie", brackets.Text.Text)
}

func TestFormatStructureGenerated_NoBrackets(t *testing.T) {
	result := &padel.StructureResult{
		Groups: []padel.Group{{Name: "A", Teams: []padel.Team{{ID: "a1", Name: "Alpha"}, {ID: "a2", Name: "Bravo"}}}},
	}
	msg := (&Notifier{}).formatStructureGenerated(sampleTournament(), result)
	assert.Len(t, msg.Blocks.BlockSet, 3)
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Swiss system", humanize("SWISS_SYSTEM"))
	assert.Equal(t, "", humanize(""))
}
