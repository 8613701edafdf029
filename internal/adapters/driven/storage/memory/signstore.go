// Package memory provides an in-memory SignStore for tests and for
// running without a data directory.
package memory

import (
	"context"
	"sync"

	"github.com/tpgillam/cuneifyplus/internal/core/ports/driven"
)

// Ensure SignStore implements the interface.
var _ driven.SignStore = (*SignStore)(nil)

// SignStore keeps sign mappings in a map guarded by a mutex.
type SignStore struct {
	mu    sync.RWMutex
	signs map[string]string
}

// NewSignStore creates an empty in-memory sign store.
func NewSignStore() *SignStore {
	return &SignStore{signs: make(map[string]string)}
}

// Get returns the glyph for a sign.
func (s *SignStore) Get(_ context.Context, sign string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	glyph, ok := s.signs[sign]
	return glyph, ok, nil
}

// Put stores or overwrites the glyph for a sign.
func (s *SignStore) Put(_ context.Context, sign, glyph string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signs[sign] = glyph
	return nil
}

// Delete removes a sign.
func (s *SignStore) Delete(_ context.Context, sign string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.signs, sign)
	return nil
}

// All returns a copy of every stored mapping.
func (s *SignStore) All(_ context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.signs))
	for sign, glyph := range s.signs {
		out[sign] = glyph
	}
	return out, nil
}

// Count returns the number of stored mappings.
func (s *SignStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.signs), nil
}
