// Package memory implements the repository ports in process memory.
package memory

import (
	"fmt"
	"sync"

	"ipoadvisor/internal/repository"
)

// table is an insertion-ordered collection with a unique string key.
type table[T any] struct {
	mu   sync.RWMutex
	key  func(T) string
	rows []T
}

func newTable[T any](key func(T) string) *table[T] {
	return &table[T]{key: key}
}

func (t *table[T]) index(k string) int {
	for i, r := range t.rows {
		if t.key(r) == k {
			return i
		}
	}
	return -1
}

func (t *table[T]) insert(v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.index(t.key(v)) >= 0 {
		return fmt.Errorf("%s: %w", t.key(v), repository.ErrDuplicate)
	}
	t.rows = append(t.rows, v)
	return nil
}

func (t *table[T]) get(k string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if i := t.index(k); i >= 0 {
		return t.rows[i], nil
	}
	var zero T
	return zero, fmt.Errorf("%s: %w", k, repository.ErrNotFound)
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

// replace swaps the row under k for v, keeping its position.
func (t *table[T]) replace(k string, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(k)
	if i < 0 {
		return fmt.Errorf("%s: %w", k, repository.ErrNotFound)
	}
	if nk := t.key(v); nk != k && t.index(nk) >= 0 {
		return fmt.Errorf("%s: %w", nk, repository.ErrDuplicate)
	}
	t.rows[i] = v
	return nil
}

func (t *table[T]) remove(k string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(k)
	if i < 0 {
		return fmt.Errorf("%s: %w", k, repository.ErrNotFound)
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return nil
}

// removeIf drops every row matching pred and returns how many were dropped.
func (t *table[T]) removeIf(pred func(T) bool) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	kept := t.rows[:0]
	for _, r := range t.rows {
		if !pred(r) {
			kept = append(kept, r)
		}
	}
	n := len(t.rows) - len(kept)
	clear(t.rows[len(kept):])
	t.rows = kept
	return n
}
