package padel

import "time"

// TournamentStatus is the operator-controlled lifecycle state of a tournament.
// Any status may be set from any other status.
type TournamentStatus string

const (
	StatusDraft        TournamentStatus = "DRAFT"
	StatusRegistration TournamentStatus = "REGISTRATION"
	StatusInProgress   TournamentStatus = "IN_PROGRESS"
	StatusCompleted    TournamentStatus = "COMPLETED"
	StatusCancelled    TournamentStatus = "CANCELLED"
)

// Format is the competition format a tournament is advertised with.
type Format string

const (
	FormatSingleElimination Format = "SINGLE_ELIMINATION"
	FormatDoubleElimination Format = "DOUBLE_ELIMINATION"
	FormatRoundRobin        Format = "ROUND_ROBIN"
	FormatSwissSystem       Format = "SWISS_SYSTEM"
)

// MatchStatus is the state of a single match.
type MatchStatus string

const (
	MatchScheduled  MatchStatus = "SCHEDULED"
	MatchInProgress MatchStatus = "IN_PROGRESS"
	MatchCompleted  MatchStatus = "COMPLETED"
	MatchCancelled  MatchStatus = "CANCELLED"
	MatchWalkover   MatchStatus = "WALKOVER"
)

// Round numbers. Round 1 is the group stage, everything above it is elimination.
const (
	RoundGroupStage    = 1
	RoundQuarterfinals = 2
	RoundSemifinals    = 3
	RoundFinal         = 4
)

// Bracket names, one per elimination round.
const (
	BracketQuarterfinals = "Quarterfinals"
	BracketSemifinals    = "Semifinals"
	BracketFinal         = "Final"
)

// Counts holds the denormalized counters kept on a Tournament.
type Counts struct {
	Teams   int `json:"teams"`
	Matches int `json:"matches"`
}

// Tournament is the top-level competition teams register into.
type Tournament struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	StartDate   time.Time        `json:"startDate"`
	EndDate     time.Time        `json:"endDate"`
	MaxTeams    int              `json:"maxTeams"`
	Status      TournamentStatus `json:"status"`
	Format      Format           `json:"format"`
	CreatedBy   string           `json:"createdBy"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Count       Counts           `json:"_count"`
}

// IsFull reports whether the tournament has reached its team capacity.
func (t *Tournament) IsFull() bool {
	return t.Count.Teams >= t.MaxTeams
}

// Player is one half of a Team.
type Player struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
}

// FullName returns "First Last".
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Team is a two-player pairing registered to a tournament.
type Team struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Player1       Player    `json:"player1"`
	Player2       Player    `json:"player2"`
	TournamentID  string    `json:"tournamentId"`
	GroupID       *string   `json:"groupId,omitempty"`
	GroupPosition *int      `json:"groupPosition,omitempty"`
	IsEliminated  bool      `json:"isEliminated"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Group is a subset of a tournament's teams that play a round-robin among themselves.
// Teams is a snapshot of the members in group order taken at generation time.
type Group struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TournamentID string    `json:"tournamentId"`
	Teams        []Team    `json:"teams"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Match is a single game between two teams.
// Group stage matches carry GroupID, elimination matches carry BracketID.
type Match struct {
	ID           string      `json:"id"`
	TournamentID string      `json:"tournamentId"`
	HomeTeamID   string      `json:"homeTeamId"`
	AwayTeamID   string      `json:"awayTeamId"`
	HomeScore    int         `json:"homeScore"`
	AwayScore    int         `json:"awayScore"`
	Status       MatchStatus `json:"status"`
	ScheduledAt  *time.Time  `json:"scheduledAt,omitempty"`
	StartedAt    *time.Time  `json:"startedAt,omitempty"`
	EndedAt      *time.Time  `json:"endedAt,omitempty"`
	Round        int         `json:"round"`
	MatchNumber  int         `json:"matchNumber"`
	GroupID      *string     `json:"groupId,omitempty"`
	BracketID    *string     `json:"bracketId,omitempty"`
	WinnerID     *string     `json:"winnerId,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Bracket is one named elimination round and its matches.
type Bracket struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TournamentID string    `json:"tournamentId"`
	Round        int       `json:"round"`
	Matches      []Match   `json:"matches"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// StructureResult is what a generation run produced.
type StructureResult struct {
	Groups   []Group   `json:"groups"`
	Brackets []Bracket `json:"brackets"`
	Matches  []Match   `json:"matches"`
}

// Structure is the stored group and bracket tree of a tournament.
type Structure struct {
	Groups      []Group   `json:"groups"`
	Brackets    []Bracket `json:"brackets"`
	HasGroups   bool      `json:"hasGroups"`
	HasBrackets bool      `json:"hasBrackets"`
}

// Stats summarises registration and play progress of a tournament.
type Stats struct {
	TotalTeams           int     `json:"totalTeams"`
	TotalPlayers         int     `json:"totalPlayers"`
	CompletedMatches     int     `json:"completedMatches"`
	TotalMatches         int     `json:"totalMatches"`
	CompletionPercentage float64 `json:"completionPercentage"`
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
