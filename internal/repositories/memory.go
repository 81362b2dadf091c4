package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"request-capture-api/internal/models"
)

// MemoryCaptureRepository is an in-memory capture repository used by tests
// and local development without Firestore credentials.
type MemoryCaptureRepository struct {
	mu      sync.Mutex
	records map[string]*models.CaptureRecord
}

// NewMemoryCaptureRepository creates an empty in-memory repository.
func NewMemoryCaptureRepository() *MemoryCaptureRepository {
	return &MemoryCaptureRepository{
		records: make(map[string]*models.CaptureRecord),
	}
}

// Insert stores the record under a generated document ID, stamping
// requestId and createdAt the same way the Firestore repository does.
func (r *MemoryCaptureRepository) Insert(ctx context.Context, record *models.CaptureRecord) (string, error) {
	if record == nil {
		return "", ErrNilRecord
	}

	if record.RequestID == "" {
		record.RequestID = models.NewRequestID()
	}
	now := time.Now().UTC()
	record.CreatedAt = &now

	docID := uuid.New().String()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[docID] = record

	return docID, nil
}

// Get returns a stored record by document ID.
func (r *MemoryCaptureRepository) Get(docID string) (*models.CaptureRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[docID]
	return record, ok
}

// Count returns the number of stored records.
func (r *MemoryCaptureRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
