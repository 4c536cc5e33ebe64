package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	TournamentsCreated  prometheus.Counter
	TeamsRegistered     prometheus.Counter
	TeamsImported       prometheus.Counter
	StructuresGenerated prometheus.Counter
	GenerationFailed    prometheus.Counter
	GenerationDuration  prometheus.Histogram
	StorageFailures     *prometheus.CounterVec
	EventsPublished     *prometheus.CounterVec
	SlackNotifSent      prometheus.Counter
	SlackNotifFailed    prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}
