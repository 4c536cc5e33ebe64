package bracket

import (
	"context"
	"testing"

	"github.com/mauv0809/padel-cup/internal/padel"
	"github.com/mauv0809/padel-cup/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBracketStore(t *testing.T) {
	s := New(storage.NewRunner(storage.NewMemoryStore(), storage.MsgpackCodec{}))
	ctx := context.Background()

	final, err := s.Create(ctx, padel.Bracket{Name: padel.BracketFinal, TournamentID: "t1", Round: padel.RoundFinal})
	require.NoError(t, err)
	assert.NotEmpty(t, final.ID)
	_, err = s.Create(ctx, padel.Bracket{Name: padel.BracketSemifinals, TournamentID: "t1", Round: padel.RoundSemifinals})
	require.NoError(t, err)
	_, err = s.Create(ctx, padel.Bracket{Name: padel.BracketFinal, TournamentID: "t2", Round: padel.RoundFinal})
	require.NoError(t, err)

	_, err = s.Create(ctx, padel.Bracket{Name: "Groups", TournamentID: "t1", Round: padel.RoundGroupStage})
	assert.ErrorIs(t, err, padel.ErrValidation)

	brackets, err := s.GetByTournament(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, brackets, 2)
	assert.Equal(t, padel.BracketSemifinals, brackets[0].Name, "ordered by round")
	assert.Equal(t, padel.BracketFinal, brackets[1].Name)

	bracketID := final.ID
	updated, err := s.Update(ctx, final.ID, padel.BracketUpdate{Matches: []padel.Match{{ID: "m1", BracketID: &bracketID, Round: padel.RoundFinal}}})
	require.NoError(t, err)
	require.Len(t, updated.Matches, 1)

	got, err := s.GetByID(ctx, final.ID)
	require.NoError(t, err)
	require.Len(t, got.Matches, 1)
	assert.Equal(t, "m1", got.Matches[0].ID)

	ok, err := s.Delete(ctx, final.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.Delete(ctx, final.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
