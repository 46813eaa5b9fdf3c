package models

// Result stores a student's marks for a subject.
// StudentName is copied from the student when the result is written and is not kept in sync.
type Result struct {
	ID          int64  `json:"id"`
	StudentID   int64  `json:"studentId"`
	StudentName string `json:"studentName"`
	Subject     string `json:"subject"`
	Marks       int    `json:"marks"`
	ExamDate    string `json:"examDate,omitempty"`
}

func (r Result) RecordID() int64        { return r.ID }
func (r Result) EntityType() EntityType { return ResultEntity }

// ResultResponse extends Result with the derived grade for display.
type ResultResponse struct {
	Result
	Grade
}
