package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"student-results/app/models"
)

var sampleResults = []models.Result{
	{ID: 1, StudentID: 1, StudentName: "John Doe", Subject: "Mathematics", Marks: 95},
	{ID: 2, StudentID: 2, StudentName: "Jane Smith", Subject: "Physics", Marks: 88},
	{ID: 3, StudentID: 2, StudentName: "Jane Smith", Subject: "Applied Mathematics", Marks: 61},
}

func TestFilterResults(t *testing.T) {
	tests := []struct {
		name    string
		student string
		subject string
		wantIDs []int64
	}{
		{name: "no filters", wantIDs: []int64{1, 2, 3}},
		{name: "student case-insensitive", student: "jane", wantIDs: []int64{2, 3}},
		{name: "subject substring", subject: "MATH", wantIDs: []int64{1, 3}},
		{name: "both filters", student: "smith", subject: "math", wantIDs: []int64{3}},
		{name: "no match", student: "zed", wantIDs: []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterResults(sampleResults, tt.student, tt.subject)
			ids := make([]int64, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterResults_EmptyFiltersReturnAllUnchanged(t *testing.T) {
	got := FilterResults(sampleResults, "", "")
	if diff := cmp.Diff(sampleResults, got); diff != "" {
		t.Errorf("FilterResults mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterResults_NeverNil(t *testing.T) {
	assert.NotNil(t, FilterResults(nil, "", ""))
	assert.NotNil(t, FilterResults(sampleResults, "nobody", ""))
}

func TestEnrollmentCount(t *testing.T) {
	students := []models.Student{
		{ID: 1, Section: "Section A"},
		{ID: 2, Section: "Section A"},
		{ID: 3, Section: "section a"},
		{ID: 4, Section: "Section A "},
		{ID: 5},
	}
	assert.Equal(t, 2, EnrollmentCount("Section A", students))
	assert.Equal(t, 0, EnrollmentCount("Section Z", students))
	assert.Equal(t, 1, EnrollmentCount("", students))
	assert.Equal(t, 0, EnrollmentCount("Section A", nil))
}

func TestSectionResponses(t *testing.T) {
	sections := []models.Section{{ID: 1, Name: "Section A"}, {ID: 2, Name: "Section B"}}
	students := []models.Student{{Section: "Section A"}, {Section: "Section A"}}

	got := SectionResponses(sections, students)
	assert.Equal(t, []models.SectionResponse{
		{Section: sections[0], StudentCount: 2},
		{Section: sections[1], StudentCount: 0},
	}, got)
}

func TestResultResponses(t *testing.T) {
	got := ResultResponses(sampleResults[:2])
	assert.Equal(t, models.GradeAPlus, got[0].Letter)
	assert.Equal(t, models.GradeA, got[1].Letter)
	assert.Equal(t, "Jane Smith", got[1].StudentName)
}
