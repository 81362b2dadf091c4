// Package firestore implements the capture repository on Cloud Firestore.
package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"request-capture-api/internal/models"
	"request-capture-api/internal/repositories"
)

// CaptureRepository writes capture records into a single Firestore
// collection. The client is shared process-wide and safe for concurrent use.
type CaptureRepository struct {
	client     *firestore.Client
	collection string
}

// NewCaptureRepository creates a Firestore-backed capture repository.
func NewCaptureRepository(client *firestore.Client, collection string) *CaptureRepository {
	return &CaptureRepository{
		client:     client,
		collection: collection,
	}
}

// Insert appends the record to the collection. The requestId and createdAt
// fields are stamped here, just before the write.
func (r *CaptureRepository) Insert(ctx context.Context, record *models.CaptureRecord) (string, error) {
	if record == nil {
		return "", repositories.ErrNilRecord
	}

	if record.RequestID == "" {
		record.RequestID = models.NewRequestID()
	}
	now := time.Now().UTC()
	record.CreatedAt = &now

	ref, _, err := r.client.Collection(r.collection).Add(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to insert capture record: %w", err)
	}

	return ref.ID, nil
}
