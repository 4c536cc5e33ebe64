package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		TournamentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_tournaments_created_total",
			Help: "The total number of tournaments created.",
		}),
		TeamsRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_teams_registered_total",
			Help: "The total number of teams registered to a tournament.",
		}),
		TeamsImported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_teams_imported_total",
			Help: "The total number of teams imported from Playtomic.",
		}),
		StructuresGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_structures_generated_total",
			Help: "The total number of successful structure generations.",
		}),
		GenerationFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_structure_generation_failed_total",
			Help: "The total number of structure generations that returned an error.",
		}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "padel_structure_generation_duration_seconds",
			Help:    "The duration of a structure generation run.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StorageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "padel_storage_failures_total",
			Help: "The total number of failed collection reads and writes.",
		}, []string{"collection"}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "padel_events_published_total",
			Help: "The total number of domain events published.",
		}, []string{"type"}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "padel_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.TournamentsCreated,
		s.TeamsRegistered,
		s.TeamsImported,
		s.StructuresGenerated,
		s.GenerationFailed,
		s.GenerationDuration,
		s.StorageFailures,
		s.EventsPublished,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncTournamentsCreated() {
	s.TournamentsCreated.Inc()
}

func (s *Service) IncTeamsRegistered() {
	s.TeamsRegistered.Inc()
}

func (s *Service) IncTeamsImported(n int) {
	s.TeamsImported.Add(float64(n))
}

func (s *Service) IncStructuresGenerated() {
	s.StructuresGenerated.Inc()
}

func (s *Service) IncGenerationFailed() {
	s.GenerationFailed.Inc()
}

func (s *Service) ObserveGenerationDuration(duration float64) {
	s.GenerationDuration.Observe(duration)
}

func (s *Service) IncStorageFailures(collection string) {
	s.StorageFailures.WithLabelValues(collection).Inc()
}

func (s *Service) IncEventsPublished(eventType string) {
	s.EventsPublished.WithLabelValues(eventType).Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
