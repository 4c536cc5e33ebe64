package playtomic

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rafa-garcia/go-playtomic-api/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSpecificMatch(t *testing.T) {
	// Sample JSON response from the Playtomic API
	mockJSONResponse := `{
		"owner_id": "user-123",
		"start_date": "2025-07-09T18:00:00",
		"end_date": "2025-07-09T19:30:00",
		"status": "CONFIRMED",
		"game_status": "PLAYED",
		"resource_name": "Court 1",
		"tenant": { "tenant_id": "tenant-abc", "tenant_name": "Padel Club" },
		"teams": [{
			"team_id": "1",
			"players": [
				{ "user_id": "user-123", "name": "Ana García", "level_value": 3.5 },
				{ "user_id": "user-456", "name": "Bea" }
			]
		}, {
			"team_id": "2",
			"players": [
				{ "user_id": "user-789", "name": "Carlos Ruiz" }
			]
		}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/matches/match-abc", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, mockJSONResponse)
	}))
	defer server.Close()

	client := APIClient{
		httpClient: server.Client(),
		apiClient:  client.NewClient(), // Dummy client, not used in this specific test
		BaseURL:    server.URL,
	}

	match, err := client.GetSpecificMatch(context.Background(), "match-abc")

	require.NoError(t, err)
	assert.Equal(t, "match-abc", match.MatchID)
	assert.Equal(t, "user-123", match.OwnerID)
	assert.Equal(t, "Court 1", match.ResourceName)
	assert.Equal(t, "Padel Club", match.Tenant.Name)
	assert.Equal(t, GameStatusPlayed, match.GameStatus)
	assert.NotEqual(t, int64(0), match.Start, "Start time should be parsed")
	require.Len(t, match.Teams, 2)
	assert.Equal(t, 3.5, match.Teams[0].Players[0].Level)

	pairs := match.Pairs()
	require.Len(t, pairs, 1, "only the full team forms a pair")
	assert.Equal(t, "match-abc", pairs[0].MatchID)
	assert.Equal(t, "user-123+user-456", pairs[0].Key())
}

func TestGetSpecificMatch_NonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	c := APIClient{httpClient: server.Client(), apiClient: client.NewClient(), BaseURL: server.URL}
	_, err := c.GetSpecificMatch(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestPlayerSplitName(t *testing.T) {
	tests := []struct {
		name, first, last string
	}{
		{"Ana García López", "Ana", "García López"},
		{"Bea", "Bea", "Bea"},
		{"  ", "", ""},
	}
	for _, tt := range tests {
		first, last := Player{Name: tt.name}.SplitName()
		assert.Equal(t, tt.first, first)
		assert.Equal(t, tt.last, last)
	}
}

func TestPairKey_IgnoresOrder(t *testing.T) {
	a := Pair{Players: [2]Player{{UserID: "u2"}, {UserID: "u1"}}}
	b := Pair{Players: [2]Player{{UserID: "u1"}, {UserID: "u2"}}}
	assert.Equal(t, a.Key(), b.Key())
}

func TestParseGameStatus(t *testing.T) {
	assert.Equal(t, GameStatusPending, parseGameStatus("PENDING"))
	assert.Equal(t, GameStatusUnknown, parseGameStatus("SOMETHING_NEW"))
}
