package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	tournamentsCreated  int
	teamsRegistered     int
	teamsImported       int
	structuresGenerated int
	generationFailed    int
	generationDurations []float64
	storageFailures     map[string]int
	eventsPublished     map[string]int
	slackNotifSent      int
	slackNotifFailed    int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		generationDurations: make([]float64, 0),
		storageFailures:     make(map[string]int),
		eventsPublished:     make(map[string]int),
	}
}

func (m *Mock) IncTournamentsCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournamentsCreated++
}

func (m *Mock) IncTeamsRegistered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teamsRegistered++
}

func (m *Mock) IncTeamsImported(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teamsImported += n
}

func (m *Mock) IncStructuresGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.structuresGenerated++
}

func (m *Mock) IncGenerationFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generationFailed++
}

func (m *Mock) ObserveGenerationDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generationDurations = append(m.generationDurations, duration)
}

func (m *Mock) IncStorageFailures(collection string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storageFailures[collection]++
}

func (m *Mock) IncEventsPublished(eventType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsPublished[eventType]++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// TournamentsCreated returns the number of times IncTournamentsCreated was called.
func (m *Mock) TournamentsCreated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tournamentsCreated
}

// TeamsRegistered returns the number of times IncTeamsRegistered was called.
func (m *Mock) TeamsRegistered() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.teamsRegistered
}

// TeamsImported returns the sum of all IncTeamsImported calls.
func (m *Mock) TeamsImported() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.teamsImported
}

// StructuresGenerated returns the number of times IncStructuresGenerated was called.
func (m *Mock) StructuresGenerated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.structuresGenerated
}

// GenerationFailed returns the number of times IncGenerationFailed was called.
func (m *Mock) GenerationFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generationFailed
}

// GenerationDurations returns every observed generation duration.
func (m *Mock) GenerationDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.generationDurations...)
}

// StorageFailures returns the failure count recorded for collection.
func (m *Mock) StorageFailures(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storageFailures[collection]
}

// EventsPublished returns the publish count recorded for eventType.
func (m *Mock) EventsPublished(eventType string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsPublished[eventType]
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
