package padel

import "time"

// CreateTournamentInput is the payload for creating a tournament.
// Status defaults to Draft and Format to SingleElimination when empty.
type CreateTournamentInput struct {
	Name        string           `json:"name" validate:"required,max=120"`
	Description string           `json:"description" validate:"max=1000"`
	StartDate   time.Time        `json:"startDate" validate:"required"`
	EndDate     time.Time        `json:"endDate" validate:"required,gtefield=StartDate"`
	MaxTeams    int              `json:"maxTeams" validate:"min=2"`
	Status      TournamentStatus `json:"status" validate:"omitempty,oneof=DRAFT REGISTRATION IN_PROGRESS COMPLETED CANCELLED"`
	Format      Format           `json:"format" validate:"omitempty,oneof=SINGLE_ELIMINATION DOUBLE_ELIMINATION ROUND_ROBIN SWISS_SYSTEM"`
	CreatedBy   string           `json:"createdBy"`
}

// TournamentUpdate is a partial update; nil fields are left untouched.
type TournamentUpdate struct {
	Name        *string           `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string           `json:"description" validate:"omitempty,max=1000"`
	StartDate   *time.Time        `json:"startDate"`
	EndDate     *time.Time        `json:"endDate"`
	MaxTeams    *int              `json:"maxTeams" validate:"omitempty,min=2"`
	Status      *TournamentStatus `json:"status" validate:"omitempty,oneof=DRAFT REGISTRATION IN_PROGRESS COMPLETED CANCELLED"`
	Format      *Format           `json:"format" validate:"omitempty,oneof=SINGLE_ELIMINATION DOUBLE_ELIMINATION ROUND_ROBIN SWISS_SYSTEM"`
}

// SearchParams filters and paginates the tournament listing.
// Page is 1-based; zero values fall back to page 1 and DefaultPageLimit.
// Limit is capped at MaxPageLimit.
type SearchParams struct {
	Query  string
	Status TournamentStatus
	Page   int
	Limit  int
}

// DefaultPageLimit is used when SearchParams.Limit is not set.
const DefaultPageLimit = 10

// MaxPageLimit is the largest page size a search returns.
const MaxPageLimit = 100

// CreateTeamInput is the payload for registering a team.
type CreateTeamInput struct {
	Name         string `json:"name" validate:"required,max=120"`
	Player1      Player `json:"player1"`
	Player2      Player `json:"player2"`
	TournamentID string `json:"tournamentId" validate:"required"`
}

// TeamUpdate is a partial team update.
type TeamUpdate struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=120"`
	Player1      *Player `json:"player1"`
	Player2      *Player `json:"player2"`
	IsEliminated *bool   `json:"isEliminated"`
}

// GroupUpdate is a partial group update. Membership changes go through the
// team store so that a team's GroupID stays in step with the group.
type GroupUpdate struct {
	Name *string `json:"name"`
}

// MatchUpdate is a partial match update used by score entry.
type MatchUpdate struct {
	HomeScore   *int         `json:"homeScore" validate:"omitempty,min=0"`
	AwayScore   *int         `json:"awayScore" validate:"omitempty,min=0"`
	Status      *MatchStatus `json:"status" validate:"omitempty,oneof=SCHEDULED IN_PROGRESS COMPLETED CANCELLED WALKOVER"`
	ScheduledAt *time.Time   `json:"scheduledAt"`
	StartedAt   *time.Time   `json:"startedAt"`
	EndedAt     *time.Time   `json:"endedAt"`
	WinnerID    *string      `json:"winnerId"`
}

// BracketUpdate is a partial bracket update.
type BracketUpdate struct {
	Name    *string `json:"name"`
	Matches []Match `json:"matches"`
}
