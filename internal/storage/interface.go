package storage

import "context"

// Key names one stored collection.
type Key string

const (
	KeyTournaments Key = "tournaments"
	KeyTeams       Key = "teams"
	KeyGroups      Key = "groups"
	KeyMatches     Key = "matches"
	KeyBrackets    Key = "brackets"
)

// Keys lists every collection the application stores.
var Keys = []Key{KeyTournaments, KeyTeams, KeyGroups, KeyMatches, KeyBrackets}

// Store is a key-value blob store holding one encoded collection per key.
// Backends differ only in where the bytes live.
type Store interface {
	// Load returns the blob stored under key, or nil with no error when the key is absent.
	Load(ctx context.Context, key Key) ([]byte, error)
	// Save writes every entry of values. Backends that can do so apply all entries or none.
	Save(ctx context.Context, values map[Key][]byte) error
	Close() error
}
