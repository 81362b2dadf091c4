package repositories

import (
	"context"

	"request-capture-api/internal/models"
)

// CaptureRepository persists capture records into an append-only collection.
type CaptureRepository interface {
	// Insert writes a capture record and returns the store-generated
	// document ID. It assigns the record's requestId and createdAt fields
	// immediately before the write; requestId is assigned exactly once and
	// never reused.
	Insert(ctx context.Context, record *models.CaptureRecord) (string, error)
}
