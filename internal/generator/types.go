package generator

import "github.com/mauv0809/padel-cup/internal/padel"

// RegenerationPolicy decides what happens when a tournament that already has
// groups is generated again.
type RegenerationPolicy int

const (
	// AllowRegeneration generates a fresh structure next to the existing one,
	// duplicating groups and matches.
	AllowRegeneration RegenerationPolicy = iota
	// RejectRegeneration fails with padel.ErrAlreadyGenerated once groups exist.
	RejectRegeneration
)

func (p RegenerationPolicy) String() string {
	if p == RejectRegeneration {
		return "reject"
	}
	return "allow"
}

// Shuffler permutes teams in place.
type Shuffler func(teams []padel.Team)

// Deps are the stores a Generator writes through.
// Tx may be nil, in which case store calls are not grouped.
type Deps struct {
	Tournaments Tournaments
	Teams       Teams
	Groups      Groups
	Matches     Matches
	Brackets    Brackets
	Tx          Transactor
}

// Generator builds groups, round-robin matches and elimination brackets for a tournament.
type Generator struct {
	deps        Deps
	advancement AdvancementStrategy
	shuffle     Shuffler
	policy      RegenerationPolicy
}

// Option configures a Generator.
type Option func(*Generator)

// WithAdvancement replaces the default RegistrationOrderAdvancement.
func WithAdvancement(s AdvancementStrategy) Option {
	return func(g *Generator) { g.advancement = s }
}

// WithShuffler replaces the uniform random shuffle.
func WithShuffler(s Shuffler) Option {
	return func(g *Generator) { g.shuffle = s }
}

// WithPolicy sets the regeneration policy. The default is AllowRegeneration.
func WithPolicy(p RegenerationPolicy) Option {
	return func(g *Generator) { g.policy = p }
}

// elimination describes one knockout round built from the advancing list.
type elimination struct {
	name  string
	round int
	teams int
}

// Rounds are built independently from the head of the advancing list, so a
// Semifinals bracket pairs the first four advancing teams even when
// Quarterfinals exist.
var eliminations = []elimination{
	{name: padel.BracketQuarterfinals, round: padel.RoundQuarterfinals, teams: 8},
	{name: padel.BracketSemifinals, round: padel.RoundSemifinals, teams: 4},
	{name: padel.BracketFinal, round: padel.RoundFinal, teams: 2},
}
