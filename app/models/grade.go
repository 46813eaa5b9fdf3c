package models

// Grade is the derived letter grade for a result, e.g., A+, B, F
type Grade struct {
	Letter GradeLetter `json:"grade"`
	Color  ColorToken  `json:"color"`
}

// GradeBand is a closed marks range mapped to a grade.
type GradeBand struct {
	Grade    Grade
	MinMarks int
	MaxMarks int
}

// Contains reports whether marks fall inside the band, bounds included.
func (b GradeBand) Contains(marks int) bool {
	return marks >= b.MinMarks && marks <= b.MaxMarks
}
