package storage

import (
	"context"
	"sync"
)

// MemoryKV is a process-local KV. The zero value is not usable; use NewMemoryKV.
type MemoryKV struct {
	mu       sync.RWMutex
	records  map[string][]byte
	putError error
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{records: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putError != nil {
		return m.putError
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.records[key] = v
	return nil
}

// FailPuts makes every following Put return err, simulating a full or
// read-only medium. A nil err restores normal writes.
func (m *MemoryKV) FailPuts(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putError = err
}

// Set stores raw bytes under key, bypassing FailPuts.
func (m *MemoryKV) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = value
}
