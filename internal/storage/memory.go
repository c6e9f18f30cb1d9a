package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps blobs in process memory. Reads and writes copy the data.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	saves int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (m *MemoryStore) Load(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.blobs[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), b...), nil
}

func (m *MemoryStore) Save(ctx context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[key] = append([]byte(nil), blob...)
	m.saves++
	return nil
}

// Put seeds a blob without counting it as a save.
func (m *MemoryStore) Put(key string, blob []byte) {
	m.mu.Lock()
	m.blobs[key] = append([]byte(nil), blob...)
	m.mu.Unlock()
}

// Saves reports how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}
