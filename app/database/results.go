package database

import (
	"fmt"
	"slices"

	"student-results/app/models"
)

// GetAllResults returns the results in insertion order.
func (s *Store) GetAllResults() []models.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.results)
}

// GetResultByID returns the result with the given id.
func (s *Store) GetResultByID(id int64) (models.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexByID(s.results, id)
	if i < 0 {
		return models.Result{}, &NotFoundError{Entity: models.ResultEntity, ID: id}
	}
	return s.results[i], nil
}

// CreateResult appends a new result, copying the current name of the
// referenced student, and returns its id.
func (s *Store) CreateResult(d models.ResultDraft) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := d.Record(0, "")
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedDraft, err)
	}
	r.ID = s.nextID(models.ResultEntity)
	r.StudentName = s.studentName(r.StudentID)
	s.results = appendCopy(s.results, r)
	return r.ID, nil
}

// UpdateResult replaces the result with the given id and copies the
// referenced student's name again.
func (s *Store) UpdateResult(id int64, d models.ResultDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.results, id)
	if i < 0 {
		return &NotFoundError{Entity: models.ResultEntity, ID: id}
	}
	r, err := d.Record(id, "")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDraft, err)
	}
	r.StudentName = s.studentName(r.StudentID)
	s.results = replaceAt(s.results, i, r)
	return nil
}

// DeleteResult removes the result with the given id.
func (s *Store) DeleteResult(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.results, id)
	if i < 0 {
		return &NotFoundError{Entity: models.ResultEntity, ID: id}
	}
	s.results = removeAt(s.results, i)
	return nil
}

// studentName must be called with mu held. An unknown id yields "".
func (s *Store) studentName(id int64) string {
	if i := indexByID(s.students, id); i >= 0 {
		return s.students[i].Name
	}
	return ""
}
