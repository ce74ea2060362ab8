package storage

import "sync"

// memoryStore is the in-memory test double.
type memoryStore struct {
	mu   sync.RWMutex
	vals map[string]string
}

// NewMemoryStore creates an empty in-memory KV store.
func NewMemoryStore() KV {
	return &kvStore{raw: &memoryStore{vals: make(map[string]string)}}
}

func (s *memoryStore) read(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vals[key]
	return v, ok
}

func (s *memoryStore) write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals[key] = value
	return nil
}

func (s *memoryStore) has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.vals[key]
	return ok
}

func (s *memoryStore) erase(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.vals, key)
	return nil
}

func (s *memoryStore) close() error {
	return nil
}
