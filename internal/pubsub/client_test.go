package pubsub

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/pubsub/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newTestClient(t *testing.T) (*pstest.Server, PubSubClient) {
	t.Helper()
	srv := pstest.NewServer()
	t.Cleanup(func() { srv.Close() })

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	c, err := New(context.Background(), "padel-test", "dev-", option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return srv, c
}

func TestSendMessage_PublishesMsgpackEvent(t *testing.T) {
	srv, c := newTestClient(t)
	ctx := context.Background()

	_, err := c.(*client).client.CreateTopic(ctx, "dev-structure-generated")
	require.NoError(t, err)

	event := Event{
		Type:         EventStructureGenerated,
		TournamentID: "t1",
		OccurredAt:   time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, c.SendMessage(ctx, EventStructureGenerated, event))

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "structure-generated", msgs[0].Attributes["type"])

	var got Event
	require.NoError(t, c.ProcessMessage(msgs[0].Data, &got))
	assert.Equal(t, event.TournamentID, got.TournamentID)
	assert.Equal(t, event.Type, got.Type)
	assert.True(t, event.OccurredAt.Equal(got.OccurredAt))
}

func TestSendMessage_MissingTopic(t *testing.T) {
	_, c := newTestClient(t)
	err := c.SendMessage(context.Background(), EventTeamRegistered, Event{Type: EventTeamRegistered})
	assert.Error(t, err)
}

func TestProcessMessage_RejectsGarbage(t *testing.T) {
	c := &client{}
	var got Event
	assert.Error(t, c.ProcessMessage([]byte{0xc1}, &got))
}

func TestMock_ProcessMessageDecodes(t *testing.T) {
	m := NewMock("ignored")
	data, err := msgpack.Marshal(Event{Type: EventTeamRegistered, TeamID: "tm1"})
	require.NoError(t, err)

	var got Event
	require.NoError(t, m.ProcessMessage(data, &got))
	assert.Equal(t, "tm1", got.TeamID)
	require.NoError(t, m.SendMessage(context.Background(), EventTeamRegistered, got))
	assert.Equal(t, 1, m.Sent())
}
