// Package testutil provides in-memory test doubles for the cache engine.
package testutil

import (
	"io/fs"
	"sync"
	"sync/atomic"
)

// MockFS implements the engine's filesystem adapter over an in-memory map.
// It counts Stat and ReadAll calls so tests can assert how often the adapter
// was consulted.
type MockFS struct {
	mu    sync.RWMutex
	files map[string][]byte
	stats atomic.Int64
	reads atomic.Int64
}

// NewMockFS constructs an empty mock filesystem.
func NewMockFS() *MockFS {
	return &MockFS{files: make(map[string][]byte)}
}

// Add registers a file with the given contents, replacing any previous entry.
func (m *MockFS) Add(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = data
}

// Remove deletes a file.
func (m *MockFS) Remove(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
}

// Stat returns the file's size in bytes.
func (m *MockFS) Stat(path string) (int64, error) {
	m.stats.Add(1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	if !ok {
		return 0, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return int64(len(data)), nil
}

// ReadAll returns a copy of the file's contents.
func (m *MockFS) ReadAll(path string) ([]byte, error) {
	m.reads.Add(1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Stats returns the number of Stat calls observed.
func (m *MockFS) Stats() int64 {
	return m.stats.Load()
}

// Reads returns the number of ReadAll calls observed.
func (m *MockFS) Reads() int64 {
	return m.reads.Load()
}
