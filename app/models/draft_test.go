package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FieldValue
	}{
		{name: "string", in: `"Amy"`, want: "Amy"},
		{name: "integer", in: `95`, want: "95"},
		{name: "negative", in: `-3`, want: "-3"},
		{name: "decimal", in: `9.5`, want: "9.5"},
		{name: "null", in: `null`, want: ""},
		{name: "empty string", in: `""`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v FieldValue
			require.NoError(t, json.Unmarshal([]byte(tt.in), &v))
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestFieldValue_RejectsObjects(t *testing.T) {
	var v FieldValue
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`true`), &v))
}

func TestFieldValue_Helpers(t *testing.T) {
	assert.True(t, FieldValue("   ").IsBlank())
	assert.False(t, FieldValue(" x ").IsBlank())
	assert.Equal(t, "x", FieldValue(" x ").Trimmed())

	n, err := FieldValue(" 42 ").Int()
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = FieldValue("4.2").Int()
	assert.Error(t, err)

	id, err := IDValue(1234567890123).ID()
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890123), id)
}

func TestDecodeDraft(t *testing.T) {
	d, err := DecodeDraft(ResultEntity, []byte(`{"studentId": 1, "subject": "Math", "marks": 50}`))
	require.NoError(t, err)
	rd, ok := d.(ResultDraft)
	require.True(t, ok, "got %T", d)
	assert.Equal(t, ResultDraft{StudentID: "1", Subject: "Math", Marks: "50"}, rd)
	assert.Equal(t, ResultEntity, d.EntityType())

	d, err = DecodeDraft(StudentEntity, []byte(`{"name": "Amy", "email": "amy@x.com", "section": "Section A"}`))
	require.NoError(t, err)
	assert.Equal(t, StudentDraft{Name: "Amy", Email: "amy@x.com", Section: "Section A"}, d)

	d, err = DecodeDraft(SectionEntity, []byte(`{"name": "Section C"}`))
	require.NoError(t, err)
	assert.Equal(t, SectionDraft{Name: "Section C"}, d)

	_, err = DecodeDraft("course", []byte(`{}`))
	assert.Error(t, err)

	_, err = DecodeDraft(StudentEntity, []byte(`not json`))
	assert.Error(t, err)
}

func TestResultDraft_Record(t *testing.T) {
	r, err := ResultDraft{StudentID: "7", Subject: "Physics", Marks: "88", ExamDate: "2024-03-16"}.Record(3, "Jane Smith")
	require.NoError(t, err)
	assert.Equal(t, Result{ID: 3, StudentID: 7, StudentName: "Jane Smith", Subject: "Physics", Marks: 88, ExamDate: "2024-03-16"}, r)

	_, err = ResultDraft{StudentID: "7", Marks: ""}.Record(1, "")
	assert.Error(t, err)
	_, err = ResultDraft{StudentID: "x", Marks: "1"}.Record(1, "")
	assert.Error(t, err)
}

func TestParseEntityType(t *testing.T) {
	for in, want := range map[string]EntityType{
		"student":   StudentEntity,
		"Students":  StudentEntity,
		"section":   SectionEntity,
		"sections":  SectionEntity,
		" results ": ResultEntity,
	} {
		got, err := ParseEntityType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseEntityType("courses")
	assert.Error(t, err)
}

func TestColorToken_Hex(t *testing.T) {
	assert.Equal(t, "#10b981", ColorEmerald.Hex())
	assert.Equal(t, "#dc2626", ColorCrimson.Hex())
	assert.Empty(t, ColorToken("mauve").Hex())
}
