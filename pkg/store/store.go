// Package store provides the identity-sorted collection shared by tasks
// and notes.
package store

import (
	"slices"

	"github.com/google/uuid"

	"github.com/tlasser/regia/pkg/core"
)

// DefaultGroup is the group name assigned to a freshly constructed store.
const DefaultGroup = "root"

// Store is a sorted, duplicate-free, identity-indexed collection of records
// of one kind. The sequence is always sorted by ascending identity, so
// lookup and removal use binary search.
type Store[T core.Record] struct {
	id      uuid.UUID
	group   string
	records []T
}

// New creates an empty store with a fresh group identity.
func New[T core.Record]() *Store[T] {
	return &Store[T]{
		id:    uuid.New(),
		group: DefaultGroup,
	}
}

// Restore rebuilds a store from decoded state. The records are re-sorted to
// re-establish the ordering invariant; among records with equal identity the
// last one wins, matching Add's replace policy.
func Restore[T core.Record](id uuid.UUID, group string, records []T) *Store[T] {
	s := &Store[T]{id: id, group: group}
	for _, r := range records {
		s.Add(r)
	}
	return s
}

// ID returns the store's owning-group identity.
func (s *Store[T]) ID() uuid.UUID {
	return s.id
}

// Group returns the human-readable group name.
func (s *Store[T]) Group() string {
	return s.group
}

// Len returns the number of records held.
func (s *Store[T]) Len() int {
	return len(s.records)
}

// search locates the insertion point for id.
func (s *Store[T]) search(id uuid.UUID) (int, bool) {
	return slices.BinarySearchFunc(s.records, id, func(r T, target uuid.UUID) int {
		return core.CompareID(r.Key(), target)
	})
}

// Add inserts a record preserving ascending-identity order. If a record with
// the same identity already exists, it is replaced.
func (s *Store[T]) Add(rec T) {
	idx, found := s.search(rec.Key())
	if found {
		s.records[idx] = rec
		return
	}
	s.records = slices.Insert(s.records, idx, rec)
}

// Get returns the record with the given identity, or false if absent.
func (s *Store[T]) Get(id uuid.UUID) (T, bool) {
	idx, found := s.search(id)
	if !found {
		var zero T
		return zero, false
	}
	return s.records[idx], true
}

// Remove deletes the record with the given identity, preserving the order of
// the remainder. Removing an absent identity is a no-op; the return value
// reports whether anything was removed.
func (s *Store[T]) Remove(id uuid.UUID) bool {
	idx, found := s.search(id)
	if !found {
		return false
	}
	s.records = slices.Delete(s.records, idx, idx+1)
	return true
}

// All returns a snapshot of the records in ascending identity order. Callers
// may re-sort the copy (e.g. by creation time for display) without affecting
// the store.
func (s *Store[T]) All() []T {
	return slices.Clone(s.records)
}
