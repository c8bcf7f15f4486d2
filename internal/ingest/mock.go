package ingest

import (
	"context"
	"sync"

	"campusfin/procure-csv/internal/models"
)

// MockStore is an in-memory DocumentStore for tests. It records commits
// and upserts and can inject scripted errors on the first N commit calls.
type MockStore struct {
	mu sync.Mutex

	Batches   map[string][][]Row
	Metadata  map[string]models.UploadBatch
	Summaries map[string]map[string]models.SummaryDocument

	// FailFirst errors are returned by successive CommitBatch calls until
	// the slice is exhausted.
	FailFirst []error

	CommitCalls int
}

// NewMockStore creates an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		Batches:   make(map[string][][]Row),
		Metadata:  make(map[string]models.UploadBatch),
		Summaries: make(map[string]map[string]models.SummaryDocument),
	}
}

// CommitBatch implements DocumentStore.
func (m *MockStore) CommitBatch(_ context.Context, uploadID string, rows []Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CommitCalls++
	if len(m.FailFirst) > 0 {
		err := m.FailFirst[0]
		m.FailFirst = m.FailFirst[1:]
		if err != nil {
			return err
		}
	}

	copied := make([]Row, len(rows))
	copy(copied, rows)
	m.Batches[uploadID] = append(m.Batches[uploadID], copied)
	return nil
}

// UpsertMetadata implements DocumentStore with merge-upsert semantics.
func (m *MockStore) UpsertMetadata(_ context.Context, batch models.UploadBatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Metadata[batch.UploadID] = batch
	return nil
}

// UpsertSummary implements DocumentStore with merge-upsert semantics.
func (m *MockStore) UpsertSummary(_ context.Context, uploadID string, doc models.SummaryDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Summaries[uploadID] == nil {
		m.Summaries[uploadID] = make(map[string]models.SummaryDocument)
	}
	m.Summaries[uploadID][doc.Name] = doc
	return nil
}
