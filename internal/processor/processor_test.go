package processor

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mauv0809/padel-cup/internal/bracket"
	"github.com/mauv0809/padel-cup/internal/generator"
	"github.com/mauv0809/padel-cup/internal/group"
	"github.com/mauv0809/padel-cup/internal/match"
	"github.com/mauv0809/padel-cup/internal/metrics"
	"github.com/mauv0809/padel-cup/internal/notifier"
	"github.com/mauv0809/padel-cup/internal/padel"
	"github.com/mauv0809/padel-cup/internal/playtomic"
	"github.com/mauv0809/padel-cup/internal/pubsub"
	"github.com/mauv0809/padel-cup/internal/storage"
	"github.com/mauv0809/padel-cup/internal/team"
	"github.com/mauv0809/padel-cup/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	p      *Processor
	stores Stores
	notif  *notifier.Mock
	metr   *metrics.Mock
	ps     *pubsub.MockPubSubClient
	pt     *playtomic.MockClient
	tx     *countingTx
}

// countingTx counts the units the processor opens itself.
type countingTx struct {
	*storage.Runner
	calls int
}

func (c *countingTx) Atomically(ctx context.Context, fn func(ctx context.Context) error) error {
	c.calls++
	return c.Runner.Atomically(ctx, fn)
}

// newHarness wires a processor over in-memory stores. With withPubSub false,
// events are handled in-process.
func newHarness(withPubSub bool) *harness {
	runner := storage.NewRunner(storage.NewMemoryStore(), nil)
	tournaments := tournament.New(runner)
	tx := &countingTx{Runner: runner}
	stores := Stores{
		Tournaments: tournaments,
		Teams:       team.New(runner, tournaments),
		Groups:      group.New(runner),
		Matches:     match.New(runner, tournaments),
		Brackets:    bracket.New(runner),
		Tx:          tx,
	}
	gen := generator.New(generator.Deps{
		Tournaments: stores.Tournaments,
		Teams:       stores.Teams,
		Groups:      stores.Groups,
		Matches:     stores.Matches,
		Brackets:    stores.Brackets,
		Tx:          runner,
	})
	h := &harness{
		stores: stores,
		notif:  notifier.NewMock(),
		metr:   metrics.NewMock(),
		pt:     playtomic.NewMockClient(),
		tx:     tx,
	}
	var ps pubsub.PubSubClient
	if withPubSub {
		h.ps = pubsub.NewMock("TEST")
		ps = h.ps
	}
	h.p = New(stores, gen, h.notif, h.metr, ps, h.pt)
	return h
}

func (h *harness) tournament(t *testing.T, maxTeams, teams int) *padel.Tournament {
	t.Helper()
	ctx := context.Background()
	start := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	tr, err := h.p.CreateTournament(ctx, padel.CreateTournamentInput{
		Name: "Copa Invierno", StartDate: start, EndDate: start.AddDate(0, 0, 1), MaxTeams: maxTeams,
	}, false)
	require.NoError(t, err)
	for i := 1; i <= teams; i++ {
		_, err := h.p.RegisterTeam(ctx, padel.CreateTeamInput{
			Name:         fmt.Sprintf("Team %d", i),
			Player1:      padel.Player{FirstName: "Ana", LastName: fmt.Sprintf("A%d", i)},
			Player2:      padel.Player{FirstName: "Luis", LastName: fmt.Sprintf("L%d", i)},
			TournamentID: tr.ID,
		}, false)
		require.NoError(t, err)
	}
	return tr
}

func TestProcessor_EventsHandledInProcess(t *testing.T) {
	h := newHarness(false)
	tr := h.tournament(t, 8, 2)

	require.Len(t, h.notif.SendTournamentCreatedCalls, 1)
	assert.Equal(t, tr.ID, h.notif.SendTournamentCreatedCalls[0].Tournament.ID)
	require.Len(t, h.notif.SendTeamRegisteredCalls, 2)
	assert.Equal(t, "Team 2", h.notif.SendTeamRegisteredCalls[1].Team.Name)
	assert.Equal(t, 2, h.notif.SendTeamRegisteredCalls[1].Tournament.Count.Teams)
	assert.Equal(t, 1, h.metr.TournamentsCreated())
	assert.Equal(t, 2, h.metr.TeamsRegistered())
}

func TestProcessor_EventsPublished(t *testing.T) {
	h := newHarness(true)
	tr := h.tournament(t, 8, 1)

	require.Len(t, h.ps.SendMessageCalls, 2)
	assert.Equal(t, string(pubsub.EventTournamentCreated), h.ps.SendMessageCalls[0].Topic)
	ev, ok := h.ps.SendMessageCalls[1].Data.(pubsub.Event)
	require.True(t, ok)
	assert.Equal(t, pubsub.EventTeamRegistered, ev.Type)
	assert.Equal(t, tr.ID, ev.TournamentID)
	assert.NotEmpty(t, ev.TeamID)
	assert.False(t, ev.OccurredAt.IsZero())

	assert.Zero(t, h.notif.Calls(), "published events are notified by the push handler")
	assert.Equal(t, 1, h.metr.EventsPublished(string(pubsub.EventTeamRegistered)))
}

func TestProcessor_PublishFailureFallsBack(t *testing.T) {
	h := newHarness(true)
	h.ps.SendMessageFunc = func(topic pubsub.EventType, data any) error {
		return errors.New("pubsub unavailable")
	}
	h.tournament(t, 8, 0)

	assert.Len(t, h.notif.SendTournamentCreatedCalls, 1)
	assert.Zero(t, h.metr.EventsPublished(string(pubsub.EventTournamentCreated)))
}

func TestProcessor_NotificationFailureDoesNotFailRequest(t *testing.T) {
	h := newHarness(false)
	h.notif.SendTournamentCreatedFunc = func(*padel.Tournament, bool) error {
		return errors.New("slack down")
	}
	tr := h.tournament(t, 8, 0)
	assert.NotEmpty(t, tr.ID)
}

func TestProcessor_GenerateStructure(t *testing.T) {
	h := newHarness(false)
	tr := h.tournament(t, 8, 8)
	h.notif.Reset()

	res, err := h.p.GenerateStructure(context.Background(), tr.ID,
		padel.TournamentConfig{NumberOfGroups: 2, TeamsPerGroup: 4, TeamsAdvancingPerGroup: 2}, true)
	require.NoError(t, err)
	assert.Len(t, res.Groups, 2)

	assert.Equal(t, 1, h.metr.StructuresGenerated())
	assert.Len(t, h.metr.GenerationDurations(), 1)

	require.Len(t, h.notif.SendStructureGeneratedCalls, 1)
	call := h.notif.SendStructureGeneratedCalls[0]
	assert.True(t, call.DryRun)
	assert.Len(t, call.Result.Groups, 2)
	assert.Len(t, call.Result.Brackets, 2)
	assert.Len(t, call.Result.Matches, 15)
}

func TestProcessor_GenerateStructureErrors(t *testing.T) {
	h := newHarness(false)
	tr := h.tournament(t, 8, 3)
	h.notif.Reset()

	_, err := h.p.GenerateStructure(context.Background(), tr.ID,
		padel.TournamentConfig{NumberOfGroups: 2, TeamsPerGroup: 2, TeamsAdvancingPerGroup: 1}, false)
	assert.ErrorIs(t, err, padel.ErrValidation)

	_, err = h.p.GenerateStructure(context.Background(), "missing",
		padel.TournamentConfig{NumberOfGroups: 1, TeamsPerGroup: 2, TeamsAdvancingPerGroup: 1}, false)
	assert.ErrorIs(t, err, padel.ErrNotFound)

	assert.Equal(t, 2, h.metr.GenerationFailed())
	assert.Zero(t, h.metr.StructuresGenerated())
	assert.Empty(t, h.notif.SendStructureGeneratedCalls)
}

func TestProcessor_GenerateWithoutTeamsIsQuiet(t *testing.T) {
	h := newHarness(false)
	tr := h.tournament(t, 8, 0)
	h.notif.Reset()

	res, err := h.p.GenerateStructure(context.Background(), tr.ID, padel.TournamentConfig{}, false)
	require.NoError(t, err)
	assert.Empty(t, res.Groups)
	assert.Empty(t, h.notif.SendStructureGeneratedCalls)
}

func TestProcessor_Structure(t *testing.T) {
	ctx := context.Background()
	h := newHarness(false)
	tr := h.tournament(t, 8, 4)

	s, err := h.p.Structure(ctx, tr.ID)
	require.NoError(t, err)
	assert.False(t, s.HasGroups)
	assert.False(t, s.HasBrackets)
	assert.NotNil(t, s.Groups)

	_, err = h.p.GenerateStructure(ctx, tr.ID, padel.TournamentConfig{NumberOfGroups: 1, TeamsPerGroup: 4, TeamsAdvancingPerGroup: 2}, false)
	require.NoError(t, err)

	s, err = h.p.Structure(ctx, tr.ID)
	require.NoError(t, err)
	assert.True(t, s.HasGroups)
	assert.True(t, s.HasBrackets)
	require.Len(t, s.Brackets, 1)
	assert.Equal(t, padel.BracketFinal, s.Brackets[0].Name)

	_, err = h.p.Structure(ctx, "missing")
	assert.ErrorIs(t, err, padel.ErrNotFound)
}

func TestProcessor_Stats(t *testing.T) {
	ctx := context.Background()
	h := newHarness(false)
	tr := h.tournament(t, 8, 4)

	stats, err := h.p.Stats(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, padel.Stats{TotalTeams: 4, TotalPlayers: 8}, *stats)

	res, err := h.p.GenerateStructure(ctx, tr.ID, padel.TournamentConfig{NumberOfGroups: 2, TeamsPerGroup: 2, TeamsAdvancingPerGroup: 1}, false)
	require.NoError(t, err)
	require.Len(t, res.Matches, 3)

	_, err = h.stores.Matches.Update(ctx, res.Matches[0].ID, padel.MatchUpdate{Status: padel.Ptr(padel.MatchCompleted)})
	require.NoError(t, err)

	stats, err = h.p.Stats(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalMatches)
	assert.Equal(t, 1, stats.CompletedMatches)
	assert.InDelta(t, 33.33, stats.CompletionPercentage, 0.01)
}

func TestProcessor_Preview(t *testing.T) {
	h := newHarness(false)
	tr := h.tournament(t, 16, 10)

	preview, err := h.p.Preview(context.Background(), tr.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, preview.TotalTeams)
	assert.Equal(t, 4, preview.Config.TeamsPerGroup)
	assert.False(t, preview.Valid, "3 groups of 4 need 12 teams")

	preview, err = h.p.Preview(context.Background(), tr.ID, 2)
	require.NoError(t, err)
	assert.True(t, preview.Valid)
	assert.Equal(t, []string{padel.BracketSemifinals, padel.BracketFinal}, preview.Brackets)
}

func playtomicMatch(id string, teams ...[2]string) playtomic.PadelMatch {
	m := playtomic.PadelMatch{MatchID: id}
	for _, names := range teams {
		m.Teams = append(m.Teams, playtomic.Team{Players: []playtomic.Player{
			{UserID: names[0], Name: names[0] + " Uno"},
			{UserID: names[1], Name: names[1] + " Dos"},
		}})
	}
	return m
}

func TestProcessor_ImportTeams(t *testing.T) {
	h := newHarness(false)
	tr := h.tournament(t, 3, 0)

	h.pt.GetMatchesFunc = func(params *playtomic.SearchMatchesParams) ([]playtomic.MatchSummary, error) {
		assert.Equal(t, []string{"club-1"}, params.TenantIDs)
		return []playtomic.MatchSummary{{MatchID: "m1"}, {MatchID: "m2"}, {MatchID: "m3"}}, nil
	}
	matches := map[string]playtomic.PadelMatch{
		"m1": playtomicMatch("m1", [2]string{"ana", "bea"}, [2]string{"carlos", "dani"}),
		"m2": playtomicMatch("m2", [2]string{"bea", "ana"}, [2]string{"eva", "fran"}),
		"m3": playtomicMatch("m3", [2]string{"gil", "hugo"}),
	}
	h.pt.GetSpecificMatchFunc = func(id string) (playtomic.PadelMatch, error) {
		return matches[id], nil
	}

	res, err := h.p.ImportTeams(context.Background(), tr.ID, ImportParams{TenantID: "club-1"}, false)
	require.NoError(t, err)
	assert.True(t, res.Full)
	assert.Equal(t, 1, res.Skipped, "ana/bea appears twice")
	require.Len(t, res.Imported, 3)
	assert.Equal(t, "ana Uno / bea Dos", res.Imported[0].Name)
	assert.Equal(t, "Uno", res.Imported[0].Player1.LastName)
	assert.Equal(t, 3, h.metr.TeamsImported())
	assert.Len(t, h.pt.GetSpecificMatchCalls, 3)

	count, err := h.stores.Teams.CountByTournament(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestProcessor_ImportTeamsValidation(t *testing.T) {
	h := newHarness(false)
	tr := h.tournament(t, 4, 0)

	_, err := h.p.ImportTeams(context.Background(), tr.ID, ImportParams{}, false)
	assert.ErrorIs(t, err, padel.ErrValidation)

	_, err = h.p.ImportTeams(context.Background(), "missing", ImportParams{TenantID: "club-1"}, false)
	assert.ErrorIs(t, err, padel.ErrNotFound)

	h.p.playtomic = nil
	_, err = h.p.ImportTeams(context.Background(), tr.ID, ImportParams{TenantID: "club-1"}, false)
	assert.Error(t, err)
}

func TestProcessor_HandleEvent(t *testing.T) {
	ctx := context.Background()
	h := newHarness(true)
	tr := h.tournament(t, 8, 1)
	teams, err := h.stores.Teams.GetByTournament(ctx, tr.ID)
	require.NoError(t, err)

	err = h.p.HandleEvent(ctx, pubsub.Event{Type: pubsub.EventTeamRegistered, TournamentID: tr.ID, TeamID: teams[0].ID})
	require.NoError(t, err)
	require.Len(t, h.notif.SendTeamRegisteredCalls, 1)

	err = h.p.HandleEvent(ctx, pubsub.Event{Type: pubsub.EventTeamRegistered, TournamentID: tr.ID, TeamID: "gone"})
	assert.ErrorIs(t, err, padel.ErrNotFound)

	err = h.p.HandleEvent(ctx, pubsub.Event{Type: pubsub.EventStructureGenerated, TournamentID: "gone"})
	assert.ErrorIs(t, err, padel.ErrNotFound)

	err = h.p.HandleEvent(ctx, pubsub.Event{Type: "something-else", TournamentID: tr.ID})
	assert.NoError(t, err)
}

func TestProcessor_StoredReadsShareOneUnit(t *testing.T) {
	ctx := context.Background()
	h := newHarness(true)
	tr := h.tournament(t, 8, 4)
	_, err := h.p.GenerateStructure(ctx, tr.ID, padel.TournamentConfig{NumberOfGroups: 2, TeamsPerGroup: 2, TeamsAdvancingPerGroup: 1}, false)
	require.NoError(t, err)

	h.tx.calls = 0
	s, err := h.p.Structure(ctx, tr.ID)
	require.NoError(t, err)
	assert.Len(t, s.Groups, 2)
	assert.Equal(t, 1, h.tx.calls)

	stats, err := h.p.Stats(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalMatches)
	assert.Equal(t, 2, h.tx.calls)

	err = h.p.HandleEvent(ctx, pubsub.Event{Type: pubsub.EventStructureGenerated, TournamentID: tr.ID})
	require.NoError(t, err)
	assert.Equal(t, 3, h.tx.calls)
	require.Len(t, h.notif.SendStructureGeneratedCalls, 1)
	result := h.notif.SendStructureGeneratedCalls[0].Result
	assert.Len(t, result.Groups, 2)
	assert.Len(t, result.Brackets, 1)
	assert.Len(t, result.Matches, 3)
}

func TestProcessor_ImportTeamsSkipsFailedLookups(t *testing.T) {
	h := newHarness(false)
	tr := h.tournament(t, 8, 0)

	h.pt.GetMatchesFunc = func(params *playtomic.SearchMatchesParams) ([]playtomic.MatchSummary, error) {
		return []playtomic.MatchSummary{{MatchID: "m1"}, {MatchID: "m2"}, {MatchID: "m3"}}, nil
	}
	h.pt.GetSpecificMatchFunc = func(id string) (playtomic.PadelMatch, error) {
		switch id {
		case "m1":
			return playtomicMatch("m1", [2]string{"ana", "bea"}), nil
		case "m3":
			return playtomicMatch("m3", [2]string{"gil", "hugo"}), nil
		}
		return playtomic.PadelMatch{}, errors.New("upstream unavailable")
	}

	res, err := h.p.ImportTeams(context.Background(), tr.ID, ImportParams{TenantID: "club-1"}, false)
	require.NoError(t, err)
	require.Len(t, res.Imported, 2)
	assert.Equal(t, "ana Uno / bea Dos", res.Imported[0].Name)
	assert.Equal(t, "gil Uno / hugo Dos", res.Imported[1].Name)
	assert.Len(t, h.pt.GetSpecificMatchCalls, 3)
}
