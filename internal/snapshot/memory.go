package snapshot

import (
	"context"
	"encoding/json"
	"sync"
)

// MemStore is an in-memory Store for tests and ephemeral sessions. Records
// round-trip through JSON so it exercises the same (de)serialization path as
// the durable store.
type MemStore struct {
	mu   sync.Mutex
	rows map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{rows: make(map[string][]byte)}
}

// Load implements Store.
func (s *MemStore) Load(_ context.Context, collectionID string) (*Record, error) {
	s.mu.Lock()
	payload, ok := s.rows[collectionID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoSnapshot
	}
	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, &CorruptError{CollectionID: collectionID, Err: err}
	}
	return &rec, nil
}

// Save implements Store.
func (s *MemStore) Save(_ context.Context, collectionID string, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.rows[collectionID] = payload
	s.mu.Unlock()
	return nil
}

// Delete implements Store.
func (s *MemStore) Delete(_ context.Context, collectionID string) error {
	s.mu.Lock()
	delete(s.rows, collectionID)
	s.mu.Unlock()
	return nil
}

// Close implements Store.
func (s *MemStore) Close() error { return nil }

// Corrupt overwrites the stored payload for collectionID with bytes that do
// not decode, for exercising recovery paths in tests.
func (s *MemStore) Corrupt(collectionID string) {
	s.mu.Lock()
	s.rows[collectionID] = []byte("{not json")
	s.mu.Unlock()
}
