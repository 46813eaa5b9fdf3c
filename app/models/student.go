package models

// Student is an enrolled learner. Section holds a section name, not an id.
type Student struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Section        string `json:"section,omitempty"`
	EnrollmentDate string `json:"enrollmentDate,omitempty"`
}

func (s Student) RecordID() int64        { return s.ID }
func (s Student) EntityType() EntityType { return StudentEntity }
