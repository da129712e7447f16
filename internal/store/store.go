// Package store owns the raw bytes of cached file contents, keyed by path.
//
// The store is a plain mapping with no knowledge of recency ordering or byte
// budgets; the engine composes it with the recency index and enforces the
// capacity invariant on top.
package store

import (
	"errors"

	"github.com/opencontainers/go-digest"
)

var (
	// ErrDuplicateKey is returned by Insert when the key is already present.
	ErrDuplicateKey = errors.New("store: key already present")

	// ErrNotFound is returned by Remove when the key is absent.
	ErrNotFound = errors.New("store: key not found")
)

// Entry holds one cached file's bytes. The slice is owned exclusively by the
// entry and must not be mutated after insertion; replacement is
// remove-then-insert under the same key.
type Entry struct {
	Key  string
	Data []byte

	// Digest is the canonical digest of Data, recorded by the engine when
	// integrity checks are enabled. Empty otherwise.
	Digest digest.Digest
}

// Size returns the byte length of the entry's data.
func (e *Entry) Size() int64 {
	return int64(len(e.Data))
}

// Store maps keys to owned byte buffers with O(1) expected operations.
type Store struct {
	entries map[string]*Entry
}

// New returns an empty store.
func New() *Store {
	return &Store{entries: make(map[string]*Entry)}
}

// Insert adds a new entry owning data. The caller must pass a buffer the
// store may keep; sharing it afterwards breaks the ownership contract.
func (s *Store) Insert(key string, data []byte) (*Entry, error) {
	if _, ok := s.entries[key]; ok {
		return nil, ErrDuplicateKey
	}
	entry := &Entry{Key: key, Data: data}
	s.entries[key] = entry
	return entry, nil
}

// Remove deletes the entry for key and returns its size for budget accounting.
func (s *Store) Remove(key string) (int64, error) {
	entry, ok := s.entries[key]
	if !ok {
		return 0, ErrNotFound
	}
	delete(s.entries, key)
	return entry.Size(), nil
}

// Lookup returns the entry for key without transferring ownership.
func (s *Store) Lookup(key string) (*Entry, bool) {
	entry, ok := s.entries[key]
	return entry, ok
}

// Len returns the number of live entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Sum recomputes the total size of all live entries by full rescan. It exists
// so callers can cross-check incrementally maintained byte counters.
func (s *Store) Sum() int64 {
	var total int64
	for _, entry := range s.entries {
		total += entry.Size()
	}
	return total
}

// Clear drops all entries.
func (s *Store) Clear() {
	clear(s.entries)
}
