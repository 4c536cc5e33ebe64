package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps blobs in process memory. Blobs are copied on the way in
// and out so callers never share a backing array with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[Key][]byte
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[Key][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key Key) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), b...), nil
}

func (s *MemoryStore) Save(_ context.Context, values map[Key][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range values {
		s.blobs[key] = append([]byte(nil), value...)
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
