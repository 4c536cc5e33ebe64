package pubsub

import "context"

// PubSubClient publishes domain events and decodes pushed ones.
type PubSubClient interface {
	SendMessage(ctx context.Context, topic EventType, data any) error
	ProcessMessage(data []byte, returnValue any) error
	Close() error
}
