package store

import "sync"

// Memory is an in-memory store. Its bindings vanish when the process exits.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get retrieves a binding by name.
func (m *Memory) Get(name string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	src, ok := m.data[name]
	return src, ok, nil
}

// Put stores a binding by name.
func (m *Memory) Put(name, src string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[name] = src
	return nil
}

// Delete removes a binding by name.
func (m *Memory) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, name)
	return nil
}

// All returns a copy of every binding.
func (m *Memory) All() (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r := make(map[string]string, len(m.data))
	for k, v := range m.data {
		r[k] = v
	}
	return r, nil
}

// Close is a no-op for the memory store.
func (m *Memory) Close() error {
	return nil
}
