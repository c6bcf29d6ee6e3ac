package store

import (
	"context"
	"errors"
	"sync"
)

// ErrSlotEmpty is returned by Get when nothing has been written under the key.
var ErrSlotEmpty = errors.New("cart slot is empty")

// CartSlot is a per-session key-value slot holding the serialized cart.
// Writes replace the whole value; last writer wins (no locking across
// requests, mirroring the single-tab storage model the cart was built for).
type CartSlot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type MemorySlot struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{slots: make(map[string][]byte)}
}

func (m *MemorySlot) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.slots[key]
	if !ok {
		return nil, ErrSlotEmpty
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemorySlot) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.slots[key] = stored
	return nil
}

func (m *MemorySlot) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}
