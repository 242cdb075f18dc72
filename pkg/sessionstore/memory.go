package sessionstore

import (
	"context"
	"sort"
	"sync"

	"github.com/goliatone/go-formschema/pkg/history"
)

// Memory keeps sessions in process memory.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]history.Snapshot
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]history.Snapshot)}
}

func (m *Memory) Load(ctx context.Context, name string) (history.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return history.Snapshot{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap, ok := m.sessions[name]
	if !ok {
		return history.Snapshot{}, notFound(name)
	}
	return cloneSnapshot(snap), nil
}

func (m *Memory) Save(ctx context.Context, name string, snap history.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[name] = cloneSnapshot(snap)
	return nil
}

func (m *Memory) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[name]; !ok {
		return notFound(name)
	}
	delete(m.sessions, name)
	return nil
}

func (m *Memory) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.sessions))
	for name := range m.sessions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Close() error { return nil }
