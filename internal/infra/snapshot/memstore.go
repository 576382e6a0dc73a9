package snapshot

import (
	"context"
	"sync"

	"ecocollect/internal/infra"
)

// MemStore is the ephemeral repository used by tests and by runs that opt
// out of durability.
type MemStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

func (s *MemStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, infra.WrapRepoErr("no snapshot for key "+key, nil, infra.KindNotFound)
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (s *MemStore) Save(_ context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(blob))
	copy(stored, blob)
	s.blobs[key] = stored
	return nil
}

func (s *MemStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}
