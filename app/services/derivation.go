package services

import (
	"strings"

	"student-results/app/models"
)

// EnrollmentCount returns how many students name sectionName as their
// section. The comparison is exact: case-sensitive, no trimming.
func EnrollmentCount(sectionName string, students []models.Student) int {
	count := 0
	for _, s := range students {
		if s.Section == sectionName {
			count++
		}
	}
	return count
}

// FilterResults keeps the results whose student name contains student and
// whose subject contains subject, ignoring case. An empty filter matches
// everything. The input order is kept and the input slice is not modified.
func FilterResults(results []models.Result, student, subject string) []models.Result {
	student = strings.ToLower(student)
	subject = strings.ToLower(subject)

	filtered := make([]models.Result, 0, len(results))
	for _, r := range results {
		if student != "" && !strings.Contains(strings.ToLower(r.StudentName), student) {
			continue
		}
		if subject != "" && !strings.Contains(strings.ToLower(r.Subject), subject) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// SectionResponses pairs every section with its enrollment count.
func SectionResponses(sections []models.Section, students []models.Student) []models.SectionResponse {
	out := make([]models.SectionResponse, len(sections))
	for i, sec := range sections {
		out[i] = models.SectionResponse{Section: sec, StudentCount: EnrollmentCount(sec.Name, students)}
	}
	return out
}

// ResultResponses pairs every result with its grade.
func ResultResponses(results []models.Result) []models.ResultResponse {
	out := make([]models.ResultResponse, len(results))
	for i, r := range results {
		out[i] = models.ResultResponse{Result: r, Grade: GradeOf(r.Marks)}
	}
	return out
}
