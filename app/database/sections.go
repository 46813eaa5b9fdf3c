package database

import (
	"slices"

	"student-results/app/models"
)

func (s *Store) GetAllSections() []models.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.sections)
}

func (s *Store) GetSectionByID(id int64) (models.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexByID(s.sections, id)
	if i < 0 {
		return models.Section{}, &NotFoundError{Entity: models.SectionEntity, ID: id}
	}
	return s.sections[i], nil
}

func (s *Store) CreateSection(d models.SectionDraft) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID(models.SectionEntity)
	s.sections = appendCopy(s.sections, d.Record(id))
	return id
}

// UpdateSection replaces the section with the given id. Renaming a section
// does not touch Student.Section.
func (s *Store) UpdateSection(id int64, d models.SectionDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.sections, id)
	if i < 0 {
		return &NotFoundError{Entity: models.SectionEntity, ID: id}
	}
	s.sections = replaceAt(s.sections, i, d.Record(id))
	return nil
}

func (s *Store) DeleteSection(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.sections, id)
	if i < 0 {
		return &NotFoundError{Entity: models.SectionEntity, ID: id}
	}
	s.sections = removeAt(s.sections, i)
	return nil
}
