package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-results/app/models"
)

type students map[int64]bool

func (s students) HasStudent(id int64) bool { return s[id] }

func TestValidate_Student(t *testing.T) {
	tests := []struct {
		name  string
		draft models.StudentDraft
		want  FieldErrors
	}{
		{
			name:  "valid",
			draft: models.StudentDraft{Name: "Amy", Email: "amy@x.com"},
			want:  FieldErrors{},
		},
		{
			name:  "empty name and malformed email",
			draft: models.StudentDraft{Name: "", Email: "x"},
			want:  FieldErrors{FieldName: MsgNameRequired, FieldEmail: MsgEmailInvalid},
		},
		{
			name:  "whitespace only",
			draft: models.StudentDraft{Name: "   ", Email: "  "},
			want:  FieldErrors{FieldName: MsgNameRequired, FieldEmail: MsgEmailRequired},
		},
		{
			name:  "email without dot in domain",
			draft: models.StudentDraft{Name: "Amy", Email: "amy@localhost"},
			want:  FieldErrors{FieldEmail: MsgEmailInvalid},
		},
		{
			name:  "optional fields ignored",
			draft: models.StudentDraft{Name: "Amy", Email: "a@b.c", Section: "nowhere", EnrollmentDate: "soon"},
			want:  FieldErrors{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.draft, students{}))
		})
	}
}

func TestValidate_Section(t *testing.T) {
	assert.Equal(t, FieldErrors{FieldName: MsgNameRequired}, Validate(models.SectionDraft{Name: " \t"}, nil))
	assert.True(t, Validate(models.SectionDraft{Name: "Section C"}, nil).Valid())
}

func TestValidate_Result(t *testing.T) {
	known := students{1: true}

	tests := []struct {
		name  string
		draft models.ResultDraft
		want  FieldErrors
	}{
		{
			name:  "valid",
			draft: models.ResultDraft{StudentID: "1", Subject: "Math", Marks: "50"},
			want:  FieldErrors{},
		},
		{
			name:  "unknown student",
			draft: models.ResultDraft{StudentID: "99", Subject: "Math", Marks: "50"},
			want:  FieldErrors{FieldStudentID: MsgStudentNotFound},
		},
		{
			name:  "unparseable student id",
			draft: models.ResultDraft{StudentID: "abc", Subject: "Math", Marks: "50"},
			want:  FieldErrors{FieldStudentID: MsgStudentNotFound},
		},
		{
			name:  "everything missing",
			draft: models.ResultDraft{},
			want: FieldErrors{
				FieldStudentID: MsgStudentRequired,
				FieldSubject:   MsgSubjectRequired,
				FieldMarks:     MsgMarksRequired,
			},
		},
		{
			name:  "marks above range",
			draft: models.ResultDraft{StudentID: "1", Subject: "Math", Marks: "101"},
			want:  FieldErrors{FieldMarks: MsgMarksOutOfRange},
		},
		{
			name:  "marks below range",
			draft: models.ResultDraft{StudentID: "1", Subject: "Math", Marks: "-1"},
			want:  FieldErrors{FieldMarks: MsgMarksOutOfRange},
		},
		{
			name:  "marks overflow",
			draft: models.ResultDraft{StudentID: "1", Subject: "Math", Marks: "99999999999999999999"},
			want:  FieldErrors{FieldMarks: MsgMarksOutOfRange},
		},
		{
			name:  "fractional marks",
			draft: models.ResultDraft{StudentID: "1", Subject: "Math", Marks: "50.5"},
			want:  FieldErrors{FieldMarks: MsgMarksNotInteger},
		},
		{
			name:  "boundaries accepted",
			draft: models.ResultDraft{StudentID: "1", Subject: "Math", Marks: "0"},
			want:  FieldErrors{},
		},
		{
			name:  "upper boundary accepted",
			draft: models.ResultDraft{StudentID: "1", Subject: "Math", Marks: "100"},
			want:  FieldErrors{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.draft, known))
		})
	}
}

func TestValidate_Deterministic(t *testing.T) {
	d := models.ResultDraft{StudentID: "5", Subject: "", Marks: "200"}
	first := Validate(d, students{})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Validate(d, students{}))
	}
}

func TestFieldErrors_Err(t *testing.T) {
	assert.NoError(t, FieldErrors{}.Err())

	err := FieldErrors{FieldName: MsgNameRequired, FieldEmail: MsgEmailInvalid}.Err()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
	assert.Equal(t, "validation failed: email: Invalid email; name: Name is required", err.Error())
}
