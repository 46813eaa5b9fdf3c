package models

import (
	"fmt"
	"strings"
)

// EntityType identifies one of the three collections held by the store.
type EntityType string

const (
	StudentEntity EntityType = "student"
	SectionEntity EntityType = "section"
	ResultEntity  EntityType = "result"
)

// EntityTypes lists every entity type in display (tab) order.
var EntityTypes = []EntityType{StudentEntity, SectionEntity, ResultEntity}

// ParseEntityType accepts the singular token or the plural tab name.
func ParseEntityType(s string) (EntityType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student", "students":
		return StudentEntity, nil
	case "section", "sections":
		return SectionEntity, nil
	case "result", "results":
		return ResultEntity, nil
	}
	return "", fmt.Errorf("unknown entity type %q", s)
}

// Label is the capitalised name used in messages.
func (t EntityType) Label() string {
	switch t {
	case StudentEntity:
		return "Student"
	case SectionEntity:
		return "Section"
	case ResultEntity:
		return "Result"
	}
	return string(t)
}

// Plural is the collection name, also used as the dashboard tab key.
func (t EntityType) Plural() string {
	return string(t) + "s"
}

// GradeLetter is a letter grade derived from marks.
type GradeLetter string

const (
	GradeAPlus GradeLetter = "A+"
	GradeA     GradeLetter = "A"
	GradeB     GradeLetter = "B"
	GradeC     GradeLetter = "C"
	GradeD     GradeLetter = "D"
	GradeF     GradeLetter = "F"
)

// GradeLetters lists the grades from best to worst.
var GradeLetters = []GradeLetter{GradeAPlus, GradeA, GradeB, GradeC, GradeD, GradeF}

// ColorToken is an opaque display colour attached to a grade.
type ColorToken string

const (
	ColorEmerald ColorToken = "emerald"
	ColorBlue    ColorToken = "blue"
	ColorViolet  ColorToken = "violet"
	ColorAmber   ColorToken = "amber"
	ColorRed     ColorToken = "red"
	ColorCrimson ColorToken = "crimson"
)

var colorHex = map[ColorToken]string{
	ColorEmerald: "#10b981",
	ColorBlue:    "#3b82f6",
	ColorViolet:  "#8b5cf6",
	ColorAmber:   "#f59e0b",
	ColorRed:     "#ef4444",
	ColorCrimson: "#dc2626",
}

// Hex returns the CSS colour for the token, or an empty string for an unknown token.
func (c ColorToken) Hex() string {
	return colorHex[c]
}
