package database

import (
	"errors"
	"fmt"

	"student-results/app/models"
)

var (
	// ErrNotFound is matched by every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("record not found")
	// ErrUnknownEntityType is returned for an entity type the store does not hold.
	ErrUnknownEntityType = errors.New("unknown entity type")
	// ErrMalformedDraft is returned when a draft cannot be turned into a record.
	// Validated drafts never produce it.
	ErrMalformedDraft = errors.New("malformed draft")
)

// NotFoundError reports an update or delete against an id that is not in the collection.
type NotFoundError struct {
	Entity models.EntityType
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
