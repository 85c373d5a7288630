package kv

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// MemoryStore is a process-lifetime Store used when the durable substrate is
// unavailable. Values survive only as long as the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := decodeValue(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, value any) error {
	raw, err := encodeValue(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// Open returns a durable store at path, falling back to an in-memory store
// when the substrate cannot be opened. It never fails; persistence is
// best-effort by policy.
func Open(path string, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	store, err := NewSQLite(path)
	if err != nil {
		logger.Warn("durable store unavailable, using in-memory store", "path", path, "error", err)
		return NewMemory()
	}
	return store
}
