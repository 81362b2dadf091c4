package repositories

import "errors"

// Common repository errors
var (
	// ErrNilRecord is returned when Insert is called without a record
	ErrNilRecord = errors.New("capture record is nil")

	// ErrConnection is returned when the document store is unreachable
	ErrConnection = errors.New("document store connection error")
)
