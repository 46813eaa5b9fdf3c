// Package database holds the application's records. All state lives in
// memory and is lost when the process exits.
package database

import (
	"fmt"
	"slices"
	"sync"

	"student-results/app/models"
)

// Store owns the Students, Sections and Results collections.
//
// Every mutation builds a new slice and swaps it in, so a slice handed out
// by a read is never modified afterwards.
type Store struct {
	mu       sync.RWMutex
	students []models.Student
	sections []models.Section
	results  []models.Result
	lastID   map[models.EntityType]int64
}

// New returns an empty store.
func New() *Store {
	return &Store{
		students: []models.Student{},
		sections: []models.Section{},
		results:  []models.Result{},
		lastID:   make(map[models.EntityType]int64, len(models.EntityTypes)),
	}
}

// nextID must be called with mu held for writing. Ids are never reused.
func (s *Store) nextID(t models.EntityType) int64 {
	s.lastID[t]++
	return s.lastID[t]
}

// Create commits a new record built from d and returns its id.
func (s *Store) Create(d models.Draft) (int64, error) {
	switch d := d.(type) {
	case models.StudentDraft:
		return s.CreateStudent(d), nil
	case models.SectionDraft:
		return s.CreateSection(d), nil
	case models.ResultDraft:
		return s.CreateResult(d)
	}
	return 0, fmt.Errorf("%w: %T", ErrUnknownEntityType, d)
}

// Update replaces the record with the given id by one built from d.
func (s *Store) Update(id int64, d models.Draft) error {
	switch d := d.(type) {
	case models.StudentDraft:
		return s.UpdateStudent(id, d)
	case models.SectionDraft:
		return s.UpdateSection(id, d)
	case models.ResultDraft:
		return s.UpdateResult(id, d)
	}
	return fmt.Errorf("%w: %T", ErrUnknownEntityType, d)
}

// Delete removes the record with the given id from the collection for t.
// Other collections are left untouched.
func (s *Store) Delete(t models.EntityType, id int64) error {
	switch t {
	case models.StudentEntity:
		return s.DeleteStudent(id)
	case models.SectionEntity:
		return s.DeleteSection(id)
	case models.ResultEntity:
		return s.DeleteResult(id)
	}
	return fmt.Errorf("%w: %q", ErrUnknownEntityType, t)
}

// List returns the collection for t in insertion order.
func (s *Store) List(t models.EntityType) ([]models.Record, error) {
	switch t {
	case models.StudentEntity:
		return records(s.GetAllStudents()), nil
	case models.SectionEntity:
		return records(s.GetAllSections()), nil
	case models.ResultEntity:
		return records(s.GetAllResults()), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, t)
}

// Snapshot returns all three collections as they are at this instant.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Students: slices.Clone(s.students),
		Sections: slices.Clone(s.sections),
		Results:  slices.Clone(s.results),
	}
}

func records[T models.Record](items []T) []models.Record {
	out := make([]models.Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func indexByID[T models.Record](items []T, id int64) int {
	return slices.IndexFunc(items, func(item T) bool { return item.RecordID() == id })
}

// replaceAt returns a copy of items with the element at i set to v.
func replaceAt[T any](items []T, i int, v T) []T {
	out := slices.Clone(items)
	out[i] = v
	return out
}

// removeAt returns a copy of items without the element at i.
func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

// appendCopy returns a copy of items with v appended.
func appendCopy[T any](items []T, v T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, v)
}
