// README: Flat-file JSON repository; whole-collection rewrite on every mutation.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"railway/internal/types"
)

// JSONStore keeps the full collection in memory and rewrites one JSON file
// per flush. The mutex serializes callers; the store was originally
// single-writer, so this is the explicit exclusion boundary around
// load and flush.
type JSONStore[T any] struct {
	mu       sync.Mutex
	path     string
	selector IDSelector[T]
	data     []T
}

// OpenJSON loads the collection at path, treating a missing file as empty.
func OpenJSON[T any](path string, selector IDSelector[T]) (*JSONStore[T], error) {
	s := &JSONStore[T]{path: path, selector: selector}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorage, path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrStorage, path, err)
	}
	return s, nil
}

func (s *JSONStore[T]) GetByID(ctx context.Context, id types.ID) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.data[i], true, nil
	}
	var zero T
	return zero, false, nil
}

func (s *JSONStore[T]) GetAll(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *JSONStore[T]) Add(ctx context.Context, entity T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = append(s.data, entity)
	return s.flushLocked()
}

// Update replaces by id: remove the existing entry, append the new value,
// flush. The record moves to the end of iteration order. Absent id is a no-op.
func (s *JSONStore[T]) Update(ctx context.Context, entity T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(s.selector(entity))
	if i < 0 {
		return nil
	}
	s.data = append(s.data[:i], s.data[i+1:]...)
	s.data = append(s.data, entity)
	return s.flushLocked()
}

func (s *JSONStore[T]) Delete(ctx context.Context, id types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.data = append(s.data[:i], s.data[i+1:]...)
	return s.flushLocked()
}

func (s *JSONStore[T]) indexOf(id types.ID) int {
	for i := range s.data {
		if s.selector(s.data[i]) == id {
			return i
		}
	}
	return -1
}

func (s *JSONStore[T]) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStorage, s.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: mkdir for %s: %v", ErrStorage, s.path, err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorage, s.path, err)
	}
	return nil
}
