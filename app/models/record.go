package models

// Record is any committed entity held by the store.
type Record interface {
	RecordID() int64
	EntityType() EntityType
}
