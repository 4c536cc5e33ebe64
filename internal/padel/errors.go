package padel

import "errors"

var (
	// ErrNotFound is returned when a referenced tournament, team, group, match or bracket does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when input or configuration breaks a rule.
	ErrValidation = errors.New("validation failed")
	// ErrStorage is returned when a write could not be committed to the blob store.
	ErrStorage = errors.New("storage failure")
	// ErrTournamentFull is returned when registering a team past a tournament's capacity.
	ErrTournamentFull = errors.New("tournament is full")
	// ErrAlreadyGenerated is returned when regeneration is rejected for a tournament that already has groups.
	ErrAlreadyGenerated = errors.New("tournament structure already generated")
)
