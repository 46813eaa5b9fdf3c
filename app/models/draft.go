package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FieldValue is a raw form value as sent by the UI. It decodes from a JSON
// string, a JSON number or null, so {"marks": 95} and {"marks": "95"} are equal.
type FieldValue string

func (v *FieldValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*v = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FieldValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("field value must be a string or a number: %w", err)
	}
	*v = FieldValue(n.String())
	return nil
}

// String returns the value unchanged.
func (v FieldValue) String() string { return string(v) }

// Trimmed returns the value with surrounding whitespace removed.
func (v FieldValue) Trimmed() string { return strings.TrimSpace(string(v)) }

// IsBlank reports whether the value is empty after trimming.
func (v FieldValue) IsBlank() bool { return v.Trimmed() == "" }

// Int parses the trimmed value as a base-10 integer.
func (v FieldValue) Int() (int, error) {
	return strconv.Atoi(v.Trimmed())
}

// ID parses the trimmed value as a record id.
func (v FieldValue) ID() (int64, error) {
	return strconv.ParseInt(v.Trimmed(), 10, 64)
}

// IDValue renders a record id as a form value.
func IDValue(id int64) FieldValue {
	return FieldValue(strconv.FormatInt(id, 10))
}

// Draft is an unvalidated candidate record for create or update.
// Exactly one of StudentDraft, SectionDraft or ResultDraft.
type Draft interface {
	EntityType() EntityType
	isDraft()
}

type StudentDraft struct {
	Name           FieldValue `json:"name"`
	Email          FieldValue `json:"email"`
	Section        FieldValue `json:"section"`
	EnrollmentDate FieldValue `json:"enrollmentDate"`
}

func (StudentDraft) EntityType() EntityType { return StudentEntity }
func (StudentDraft) isDraft()               {}

// Record builds the committed form of the draft.
func (d StudentDraft) Record(id int64) Student {
	return Student{
		ID:             id,
		Name:           d.Name.String(),
		Email:          d.Email.String(),
		Section:        d.Section.String(),
		EnrollmentDate: d.EnrollmentDate.String(),
	}
}

type SectionDraft struct {
	Name        FieldValue `json:"name"`
	Description FieldValue `json:"description"`
}

func (SectionDraft) EntityType() EntityType { return SectionEntity }
func (SectionDraft) isDraft()               {}

func (d SectionDraft) Record(id int64) Section {
	return Section{
		ID:          id,
		Name:        d.Name.String(),
		Description: d.Description.String(),
	}
}

type ResultDraft struct {
	StudentID FieldValue `json:"studentId"`
	Subject   FieldValue `json:"subject"`
	Marks     FieldValue `json:"marks"`
	ExamDate  FieldValue `json:"examDate"`
}

func (ResultDraft) EntityType() EntityType { return ResultEntity }
func (ResultDraft) isDraft()               {}

// Record builds the committed form of the draft. studentName is the name of
// the referenced student at the time of writing.
func (d ResultDraft) Record(id int64, studentName string) (Result, error) {
	studentID, err := d.StudentID.ID()
	if err != nil {
		return Result{}, fmt.Errorf("studentId %q: %w", d.StudentID, err)
	}
	marks, err := d.Marks.Int()
	if err != nil {
		return Result{}, fmt.Errorf("marks %q: %w", d.Marks, err)
	}
	return Result{
		ID:          id,
		StudentID:   studentID,
		StudentName: studentName,
		Subject:     d.Subject.String(),
		Marks:       marks,
		ExamDate:    d.ExamDate.String(),
	}, nil
}

// DecodeDraft decodes a JSON form body into the draft type for t.
func DecodeDraft(t EntityType, body []byte) (Draft, error) {
	switch t {
	case StudentEntity:
		var d StudentDraft
		if err := json.Unmarshal(body, &d); err != nil {
			return nil, err
		}
		return d, nil
	case SectionEntity:
		var d SectionDraft
		if err := json.Unmarshal(body, &d); err != nil {
			return nil, err
		}
		return d, nil
	case ResultEntity:
		var d ResultDraft
		if err := json.Unmarshal(body, &d); err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, fmt.Errorf("unknown entity type %q", t)
}
