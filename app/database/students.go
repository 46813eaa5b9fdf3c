package database

import (
	"slices"

	"student-results/app/models"
)

// GetAllStudents returns the students in insertion order.
func (s *Store) GetAllStudents() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.students)
}

// GetStudentByID returns the student with the given id.
func (s *Store) GetStudentByID(id int64) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexByID(s.students, id)
	if i < 0 {
		return models.Student{}, &NotFoundError{Entity: models.StudentEntity, ID: id}
	}
	return s.students[i], nil
}

// CreateStudent appends a new student and returns its id.
func (s *Store) CreateStudent(d models.StudentDraft) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID(models.StudentEntity)
	s.students = appendCopy(s.students, d.Record(id))
	return id
}

// UpdateStudent replaces the student with the given id. Results that copied
// the old name keep it.
func (s *Store) UpdateStudent(id int64, d models.StudentDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.students, id)
	if i < 0 {
		return &NotFoundError{Entity: models.StudentEntity, ID: id}
	}
	s.students = replaceAt(s.students, i, d.Record(id))
	return nil
}

// DeleteStudent removes the student with the given id. Results referring to
// the student are kept with their stored name.
func (s *Store) DeleteStudent(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.students, id)
	if i < 0 {
		return &NotFoundError{Entity: models.StudentEntity, ID: id}
	}
	s.students = removeAt(s.students, i)
	return nil
}
