package playtomic

import "strings"

// SearchMatchesParams defines the parameters for searching for matches.
type SearchMatchesParams struct {
	SportID       string
	HasPlayers    bool
	Sort          string
	TenantIDs     []string
	FromStartDate string
	// MaxMatches stops paging once this many summaries are collected. Zero means no limit.
	MaxMatches int
}

// MatchSummary contains the essential details of a match from a search result.
type MatchSummary struct {
	MatchID string
	OwnerID *string
}

// PadelMatch represents a single padel match with the details needed to build teams from it.
type PadelMatch struct {
	MatchID      string
	OwnerID      string
	Start        int64
	End          int64
	Status       string
	GameStatus   GameStatus
	Teams        []Team
	ResourceName string
	Tenant       Tenant
}

// GameStatus defines the status of a game.
type GameStatus string

const (
	GameStatusPending    GameStatus = "PENDING"
	GameStatusPlayed     GameStatus = "PLAYED"
	GameStatusUnknown    GameStatus = "UNKNOWN"
	GameStatusCanceled   GameStatus = "CANCELED"
	GameStatusWaitingFor GameStatus = "WAITING_FOR"
	GameStatusExpired    GameStatus = "EXPIRED"
	GameStatusInProgress GameStatus = "IN_PROGRESS"
)

func parseGameStatus(s string) GameStatus {
	switch gs := GameStatus(s); gs {
	case GameStatusPending, GameStatusPlayed, GameStatusCanceled, GameStatusWaitingFor, GameStatusExpired, GameStatusInProgress:
		return gs
	default:
		return GameStatusUnknown
	}
}

// Team represents a team in a match.
type Team struct {
	ID      string
	Players []Player
}

// Player represents a player in a match.
type Player struct {
	UserID string
	Name   string
	Level  float64
}

// SplitName splits a Playtomic display name into first and last name.
// A single-word name is used for both.
func (p Player) SplitName() (string, string) {
	fields := strings.Fields(p.Name)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], fields[0]
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}

// Pair is a doubles team found in a match.
type Pair struct {
	MatchID string
	Players [2]Player
}

// Key identifies a pair regardless of player order.
func (p Pair) Key() string {
	a, b := p.Players[0].UserID, p.Players[1].UserID
	if a > b {
		a, b = b, a
	}
	return a + "+" + b
}

// Pairs returns the teams of the match that have exactly two named players.
func (m PadelMatch) Pairs() []Pair {
	var pairs []Pair
	for _, t := range m.Teams {
		if len(t.Players) != 2 || t.Players[0].Name == "" || t.Players[1].Name == "" {
			continue
		}
		pairs = append(pairs, Pair{MatchID: m.MatchID, Players: [2]Player{t.Players[0], t.Players[1]}})
	}
	return pairs
}

// Tenant represents a Playtomic tenant (club).
type Tenant struct {
	ID   string
	Name string
}

// playtomicMatchResponse defines the structure for the JSON response from the Playtomic API for a single match.
type playtomicMatchResponse struct {
	OwnerID      string                  `json:"owner_id"`
	StartDate    string                  `json:"start_date"`
	EndDate      string                  `json:"end_date"`
	Status       string                  `json:"status"`
	GameStatus   string                  `json:"game_status"`
	Teams        []playtomicTeamResponse `json:"teams"`
	ResourceName string                  `json:"resource_name"`
	Tenant       playtomicTenant         `json:"tenant"`
}

// playtomicTenant defines the structure for the tenant information in the response.
type playtomicTenant struct {
	ID   string `json:"tenant_id"`
	Name string `json:"tenant_name"`
}

// playtomicTeamResponse defines the structure for a team within the match response.
type playtomicTeamResponse struct {
	TeamID  string                    `json:"team_id"`
	Players []playtomicPlayerResponse `json:"players"`
}

// playtomicPlayerResponse defines the structure for a player within a team.
type playtomicPlayerResponse struct {
	UserID     string   `json:"user_id"`
	Name       string   `json:"name"`
	LevelValue *float64 `json:"level_value"`
}
