package padel

import "fmt"

// TournamentConfig controls how registered teams are split into groups
// and how many of them move on to the elimination rounds.
type TournamentConfig struct {
	NumberOfGroups         int `json:"numberOfGroups" validate:"min=1"`
	TeamsPerGroup          int `json:"teamsPerGroup" validate:"min=2"`
	TeamsAdvancingPerGroup int `json:"teamsAdvancingPerGroup" validate:"min=1,ltefield=TeamsPerGroup"`
}

// Capacity is the number of group slots the config creates.
func (c TournamentConfig) Capacity() int {
	return c.NumberOfGroups * c.TeamsPerGroup
}

// Advancing is the number of teams the config promotes out of the group stage.
func (c TournamentConfig) Advancing() int {
	return c.NumberOfGroups * c.TeamsAdvancingPerGroup
}

// Validate checks the field rules of the config.
func (c TournamentConfig) Validate() error {
	return Validate(c)
}

// ValidateFor checks the field rules and that every group slot can be filled by one of totalTeams teams.
func (c TournamentConfig) ValidateFor(totalTeams int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Capacity() > totalTeams {
		return fmt.Errorf("%w: %d groups of %d need %d teams, only %d registered",
			ErrValidation, c.NumberOfGroups, c.TeamsPerGroup, c.Capacity(), totalTeams)
	}
	return nil
}

// SuggestConfig proposes a config for totalTeams spread over numberOfGroups.
// The suggestion rounds group size up, so it may still fail ValidateFor.
func SuggestConfig(totalTeams, numberOfGroups int) TournamentConfig {
	if numberOfGroups < 1 {
		numberOfGroups = 1
	}
	perGroup := (totalTeams + numberOfGroups - 1) / numberOfGroups
	return TournamentConfig{
		NumberOfGroups:         numberOfGroups,
		TeamsPerGroup:          perGroup,
		TeamsAdvancingPerGroup: max(1, perGroup/2),
	}
}

// PlannedBrackets lists the elimination rounds a config would produce, in play order.
func PlannedBrackets(c TournamentConfig) []string {
	advancing := c.Advancing()
	var rounds []string
	if advancing >= 8 {
		rounds = append(rounds, BracketQuarterfinals)
	}
	if advancing >= 4 {
		rounds = append(rounds, BracketSemifinals)
	}
	if advancing >= 2 {
		rounds = append(rounds, BracketFinal)
	}
	return rounds
}

// Preview describes what generating with a config would produce for a tournament.
type Preview struct {
	TotalTeams   int              `json:"totalTeams"`
	Config       TournamentConfig `json:"config"`
	Valid        bool             `json:"valid"`
	Problem      string           `json:"problem,omitempty"`
	GroupMatches int              `json:"groupMatches"`
	Brackets     []string         `json:"brackets"`
}

// NewPreview evaluates c against totalTeams.
func NewPreview(totalTeams int, c TournamentConfig) Preview {
	p := Preview{
		TotalTeams:   totalTeams,
		Config:       c,
		Valid:        true,
		GroupMatches: c.NumberOfGroups * c.TeamsPerGroup * (c.TeamsPerGroup - 1) / 2,
		Brackets:     PlannedBrackets(c),
	}
	if err := c.ValidateFor(totalTeams); err != nil {
		p.Valid = false
		p.Problem = err.Error()
	}
	return p
}
