// Package validation checks drafts before they are committed to the store.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"student-results/app/models"
)

// Field names used as FieldErrors keys. They match the JSON form fields.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldStudentID = "studentId"
	FieldSubject   = "subject"
	FieldMarks     = "marks"
)

const (
	MsgNameRequired    = "Name is required"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Invalid email"
	MsgStudentRequired = "Student is required"
	MsgStudentNotFound = "Student not found"
	MsgSubjectRequired = "Subject is required"
	MsgMarksRequired   = "Marks are required"
	MsgMarksNotInteger = "Marks must be a whole number"
	MsgMarksOutOfRange = "Marks must be between 0 and 100"
)

const (
	MinMarks = 0
	MaxMarks = 100
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Lookup resolves references to other records.
type Lookup interface {
	HasStudent(id int64) bool
}

// FieldErrors maps a form field to the message shown beneath it.
type FieldErrors map[string]string

// Valid reports whether there are no errors.
func (fe FieldErrors) Valid() bool { return len(fe) == 0 }

// Err returns nil when valid, otherwise a *ValidationError carrying fe.
func (fe FieldErrors) Err() error {
	if fe.Valid() {
		return nil
	}
	return &ValidationError{Fields: fe}
}

// ValidationError wraps field errors for callers that need an error value.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks d against the rules for its entity type. It has no side
// effects; an empty result means d may be committed.
func Validate(d models.Draft, lookup Lookup) FieldErrors {
	errs := FieldErrors{}
	switch d := d.(type) {
	case models.StudentDraft:
		validateStudent(d, errs)
	case models.SectionDraft:
		validateSection(d, errs)
	case models.ResultDraft:
		validateResult(d, lookup, errs)
	}
	return errs
}

func validateStudent(d models.StudentDraft, errs FieldErrors) {
	if d.Name.IsBlank() {
		errs[FieldName] = MsgNameRequired
	}
	if d.Email.IsBlank() {
		errs[FieldEmail] = MsgEmailRequired
	} else if !emailPattern.MatchString(d.Email.String()) {
		errs[FieldEmail] = MsgEmailInvalid
	}
}

func validateSection(d models.SectionDraft, errs FieldErrors) {
	if d.Name.IsBlank() {
		errs[FieldName] = MsgNameRequired
	}
}

func validateResult(d models.ResultDraft, lookup Lookup, errs FieldErrors) {
	if d.StudentID.IsBlank() {
		errs[FieldStudentID] = MsgStudentRequired
	} else if id, err := d.StudentID.ID(); err != nil || lookup == nil || !lookup.HasStudent(id) {
		errs[FieldStudentID] = MsgStudentNotFound
	}

	if d.Subject.IsBlank() {
		errs[FieldSubject] = MsgSubjectRequired
	}

	if d.Marks.IsBlank() {
		errs[FieldMarks] = MsgMarksRequired
		return
	}
	marks, err := d.Marks.Int()
	switch {
	case errors.Is(err, strconv.ErrRange):
		errs[FieldMarks] = MsgMarksOutOfRange
	case err != nil:
		errs[FieldMarks] = MsgMarksNotInteger
	case marks < MinMarks || marks > MaxMarks:
		errs[FieldMarks] = MsgMarksOutOfRange
	}
}
