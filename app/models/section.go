package models

// Section groups students. Students refer to it by Name.
type Section struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (s Section) RecordID() int64        { return s.ID }
func (s Section) EntityType() EntityType { return SectionEntity }

// SectionResponse extends Section with the derived enrollment count for display.
type SectionResponse struct {
	Section
	StudentCount int `json:"student_count"`
}
