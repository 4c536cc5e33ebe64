package processor

import (
	"github.com/mauv0809/padel-cup/internal/metrics"
	"github.com/mauv0809/padel-cup/internal/padel"
	"github.com/mauv0809/padel-cup/internal/playtomic"
	"github.com/mauv0809/padel-cup/internal/pubsub"
)

// Processor handles the business logic behind the HTTP surface: it writes
// through the repositories, runs the generator and emits domain events.
type Processor struct {
	stores    Stores
	generator Generator
	pubsub    pubsub.PubSubClient
	notifier  Notifier
	metrics   metrics.Metrics
	playtomic playtomic.PlaytomicClient
}

// importConcurrency bounds the Playtomic match lookups in flight during an import.
const importConcurrency = 4

// ImportParams selects the Playtomic matches teams are imported from.
type ImportParams struct {
	TenantID      string `json:"tenantId" validate:"required"`
	FromStartDate string `json:"fromStartDate,omitempty"`
	MaxMatches    int    `json:"maxMatches,omitempty" validate:"omitempty,min=1"`
}

// ImportResult reports what an import registered.
type ImportResult struct {
	Imported []padel.Team `json:"imported"`
	Skipped  int          `json:"skipped"`
	Full     bool         `json:"full"`
}
