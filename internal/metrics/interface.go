package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncTournamentsCreated()
	IncTeamsRegistered()
	IncTeamsImported(n int)
	IncStructuresGenerated()
	IncGenerationFailed()
	ObserveGenerationDuration(duration float64)
	IncStorageFailures(collection string)
	IncEventsPublished(eventType string)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
