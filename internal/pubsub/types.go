package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
)

type client struct {
	client   *pubsub.Client
	prefix   string
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
// It doubles as the topic name.
type EventType string

const (
	EventTournamentCreated  EventType = "tournament-created"
	EventTeamRegistered     EventType = "team-registered"
	EventStructureGenerated EventType = "structure-generated"
)

// Event is the payload of every message published by the service.
type Event struct {
	Type         EventType `msgpack:"type" json:"type"`
	TournamentID string    `msgpack:"tournamentId" json:"tournamentId"`
	TeamID       string    `msgpack:"teamId,omitempty" json:"teamId,omitempty"`
	DryRun       bool      `msgpack:"dryRun" json:"dryRun"`
	OccurredAt   time.Time `msgpack:"occurredAt" json:"occurredAt"`
}

// PushRequest is the envelope Pub/Sub push subscriptions POST to the service.
type PushRequest struct {
	Message struct {
		Data        []byte            `json:"data"`
		ID          string            `json:"messageId"`
		Attributes  map[string]string `json:"attributes"`
		PublishTime time.Time         `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}
