package ingest

import (
	"context"
	"errors"
	"fmt"

	"campusfin/procure-csv/internal/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore document layout:
//
//	uploads/{upload_id}                    metadata
//	uploads/{upload_id}/rows/{auto_id}     row documents
//	uploads/{upload_id}/summaries/{name}   summary documents
const (
	uploadsCollection   = "uploads"
	rowsCollection      = "rows"
	summariesCollection = "summaries"
)

// FirestoreStore is the production DocumentStore backed by Cloud
// Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an existing Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// IsTimeout classifies timeout-class commit failures worth retrying.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return status.Code(err) == codes.DeadlineExceeded
}

// CommitBatch writes one batch of row documents atomically under the
// upload's rows subcollection.
func (s *FirestoreStore) CommitBatch(ctx context.Context, uploadID string, rows []Row) error {
	rowsCol := s.client.Collection(uploadsCollection).Doc(uploadID).Collection(rowsCollection)

	batch := s.client.Batch()
	for _, row := range rows {
		batch.Set(rowsCol.NewDoc(), map[string]interface{}(row))
	}
	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("committing %d rows for upload %s: %w", len(rows), uploadID, err)
	}
	return nil
}

// UpsertMetadata merge-upserts the upload's metadata document so
// re-ingesting the same upload id overwrites instead of duplicating.
func (s *FirestoreStore) UpsertMetadata(ctx context.Context, batch models.UploadBatch) error {
	doc := map[string]interface{}{
		"dataset":   batch.Dataset,
		"rowCount":  batch.RowCount,
		"createdAt": batch.CreatedAt,
		"schema":    batch.Schema,
	}
	if batch.StoragePath != "" {
		doc["storagePath"] = batch.StoragePath
	}

	ref := s.client.Collection(uploadsCollection).Doc(batch.UploadID)
	if _, err := ref.Set(ctx, doc, firestore.MergeAll); err != nil {
		return fmt.Errorf("upserting metadata for upload %s: %w", batch.UploadID, err)
	}
	return nil
}

// UpsertSummary merge-upserts a summary document keyed by its name.
func (s *FirestoreStore) UpsertSummary(ctx context.Context, uploadID string, summary models.SummaryDocument) error {
	doc := map[string]interface{}{
		"name":        summary.Name,
		"dataset":     summary.Dataset,
		"generatedAt": summary.GeneratedAt,
		"payload":     summary.Payload,
	}
	if summary.StoragePath != "" {
		doc["storagePath"] = summary.StoragePath
	}

	ref := s.client.Collection(uploadsCollection).Doc(uploadID).Collection(summariesCollection).Doc(summary.Name)
	if _, err := ref.Set(ctx, doc, firestore.MergeAll); err != nil {
		return fmt.Errorf("upserting summary %s for upload %s: %w", summary.Name, uploadID, err)
	}
	return nil
}
