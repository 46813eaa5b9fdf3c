package database

import "student-results/app/models"

// Snapshot is the full in-memory state at a point in time.
type Snapshot struct {
	Students []models.Student `json:"students"`
	Sections []models.Section `json:"sections"`
	Results  []models.Result  `json:"results"`
}

// HasStudent reports whether a student with the given id exists.
func (s Snapshot) HasStudent(id int64) bool {
	return indexByID(s.Students, id) >= 0
}

// StudentName returns the current name of the student with the given id.
func (s Snapshot) StudentName(id int64) (string, bool) {
	i := indexByID(s.Students, id)
	if i < 0 {
		return "", false
	}
	return s.Students[i].Name, true
}
