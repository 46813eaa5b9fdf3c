package database

import "student-results/app/models"

// NewSeeded returns a store holding the demo records shown on first start.
func NewSeeded() *Store {
	s := New()
	Seed(s)
	return s
}

// Seed adds the demo students, sections and results to s.
func Seed(s *Store) {
	john := s.CreateStudent(models.StudentDraft{Name: "John Doe", Email: "john@example.com", Section: "Section A", EnrollmentDate: "2024-01-15"})
	jane := s.CreateStudent(models.StudentDraft{Name: "Jane Smith", Email: "jane@example.com", Section: "Section B", EnrollmentDate: "2024-01-20"})

	s.CreateSection(models.SectionDraft{Name: "Section A", Description: "Computer Science Students"})
	s.CreateSection(models.SectionDraft{Name: "Section B", Description: "Mathematics Students"})

	// ids come from the store, so the drafts are always well formed
	_, _ = s.CreateResult(models.ResultDraft{StudentID: models.IDValue(john), Subject: "Mathematics", Marks: "95", ExamDate: "2024-03-15"})
	_, _ = s.CreateResult(models.ResultDraft{StudentID: models.IDValue(jane), Subject: "Physics", Marks: "88", ExamDate: "2024-03-16"})
}
