package habit

import "errors"

var (
	// ErrValidation is returned when user input for a habit is rejected.
	ErrValidation = errors.New("validation failed")
	// ErrImportFormat is returned when an import payload is not a JSON array of habits.
	ErrImportFormat = errors.New("invalid import format")
	// ErrStorageParse marks a corrupt data file. The store recovers from it by
	// starting with an empty collection.
	ErrStorageParse = errors.New("corrupt habit storage")
	// ErrNotFound is returned when no habit matches an identifier.
	ErrNotFound = errors.New("habit not found")
)
