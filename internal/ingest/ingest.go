// Package ingest implements the batched ingestion contract against an
// external document store: bounded-size batch construction, idempotent
// per-batch retry with exponential backoff, and merge-upsert of batch
// metadata and summary documents.
package ingest

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"campusfin/procure-csv/internal/logging"
	"campusfin/procure-csv/internal/models"
	"campusfin/procure-csv/internal/pipeerror"

	"github.com/google/uuid"
)

// Row is one canonical row document keyed by sanitized field names.
type Row map[string]interface{}

// DocumentStore is the persistence collaborator. Each CommitBatch call is
// one atomic unit; metadata and summaries are merge upserts so re-running
// with the same upload id overwrites rather than duplicates.
type DocumentStore interface {
	CommitBatch(ctx context.Context, uploadID string, rows []Row) error
	UpsertMetadata(ctx context.Context, batch models.UploadBatch) error
	UpsertSummary(ctx context.Context, uploadID string, doc models.SummaryDocument) error
}

// TimeoutClassifier reports whether a commit failure is a transient
// timeout worth retrying. Anything else fails the batch immediately.
type TimeoutClassifier func(error) bool

// Options configures an Ingestor.
type Options struct {
	BatchSize   int           // rows per commit, default 200
	MaxRetries  int           // attempts per batch, default 4
	BaseBackoff time.Duration // first retry delay, doubles each attempt, default 1s
	IsTimeout   TimeoutClassifier
}

func (o *Options) applyDefaults() {
	if o.BatchSize <= 0 {
		o.BatchSize = 200
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = 4
	}
	if o.BaseBackoff <= 0 {
		o.BaseBackoff = time.Second
	}
	if o.IsTimeout == nil {
		o.IsTimeout = func(error) bool { return false }
	}
}

// Ingestor submits canonical tables to a DocumentStore in bounded batches.
type Ingestor struct {
	store  DocumentStore
	opts   Options
	logger logging.Logger
}

// New creates an Ingestor over the given store.
func New(store DocumentStore, opts Options, logger logging.Logger) *Ingestor {
	opts.applyDefaults()
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Ingestor{store: store, opts: opts, logger: logger}
}

// NewUploadID mints a fresh random upload id.
func NewUploadID() string {
	return uuid.New().String()
}

// IngestTransactions writes a canonical transaction set plus its batch
// metadata under uploadID, generating a fresh id when none is given.
// Returns the upload id actually used. A batch that still fails after all
// retries aborts the run with a CommitError carrying the batch index and
// attempt count; committed batches stay committed, making re-runs with the
// same upload id resumable.
func (ing *Ingestor) IngestTransactions(ctx context.Context, uploadID, dataset, storagePath string, transactions []models.CanonicalTransaction) (string, error) {
	if uploadID == "" {
		uploadID = uuid.New().String()
	}
	log := ing.logger.WithFields(
		logging.Field{Key: logging.FieldDataset, Value: dataset},
		logging.Field{Key: logging.FieldUploadID, Value: uploadID},
	)

	meta := models.UploadBatch{
		UploadID:    uploadID,
		Dataset:     dataset,
		RowCount:    len(transactions),
		CreatedAt:   time.Now().UTC(),
		Schema:      sanitizedSchema(),
		StoragePath: storagePath,
	}
	if err := ing.store.UpsertMetadata(ctx, meta); err != nil {
		return uploadID, fmt.Errorf("upserting metadata for %s: %w", uploadID, err)
	}

	if len(transactions) == 0 {
		log.Info("Empty dataset; wrote metadata only")
		return uploadID, nil
	}

	rows := make([]Row, 0, len(transactions))
	for i := range transactions {
		rows = append(rows, transactionRow(&transactions[i]))
	}

	for batchIndex, batch := range partition(rows, ing.opts.BatchSize) {
		if err := ing.commitWithRetry(ctx, uploadID, batchIndex, batch, log); err != nil {
			return uploadID, err
		}
	}

	log.Info("Stored canonical rows", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return uploadID, nil
}

// UpsertSummary overwrites the summary document with the same name under
// the same upload (merge upsert, not append).
func (ing *Ingestor) UpsertSummary(ctx context.Context, uploadID string, doc models.SummaryDocument) error {
	if doc.GeneratedAt.IsZero() {
		doc.GeneratedAt = time.Now().UTC()
	}
	ing.logger.Info("Upserting summary",
		logging.Field{Key: logging.FieldUploadID, Value: uploadID},
		logging.Field{Key: logging.FieldSummary, Value: doc.Name})
	return ing.store.UpsertSummary(ctx, uploadID, doc)
}

// commitWithRetry submits one batch, retrying the identical payload on
// timeout-class failures with exponential backoff. The backoff sleep
// honors ctx so concurrent sources are never blocked by each other.
func (ing *Ingestor) commitWithRetry(ctx context.Context, uploadID string, batchIndex int, batch []Row, log logging.Logger) error {
	delay := ing.opts.BaseBackoff
	var lastErr error

	for attempt := 1; attempt <= ing.opts.MaxRetries; attempt++ {
		lastErr = ing.store.CommitBatch(ctx, uploadID, batch)
		if lastErr == nil {
			return nil
		}
		if !ing.opts.IsTimeout(lastErr) {
			return &pipeerror.CommitError{UploadID: uploadID, BatchIndex: batchIndex, Attempts: attempt, Err: lastErr}
		}
		if attempt == ing.opts.MaxRetries {
			break
		}

		log.Warn("Batch commit timed out; retrying",
			logging.Field{Key: logging.FieldBatch, Value: batchIndex},
			logging.Field{Key: logging.FieldAttempt, Value: attempt})

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return &pipeerror.CommitError{UploadID: uploadID, BatchIndex: batchIndex, Attempts: attempt, Err: ctx.Err()}
		}
		delay *= 2
	}

	return &pipeerror.CommitError{UploadID: uploadID, BatchIndex: batchIndex, Attempts: ing.opts.MaxRetries, Err: lastErr}
}

func partition(rows []Row, size int) [][]Row {
	var batches [][]Row
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		batches = append(batches, rows[start:end])
	}
	return batches
}

var (
	fieldSpaceRe = regexp.MustCompile(`\s+`)
	fieldJunkRe  = regexp.MustCompile(`[^\w\-]`)
)

// SanitizeFieldName keeps document keys simple: spaces become underscores
// and anything outside word characters and hyphens is dropped.
func SanitizeFieldName(name string) string {
	name = fieldSpaceRe.ReplaceAllString(strings.TrimSpace(name), "_")
	name = fieldJunkRe.ReplaceAllString(name, "")
	if len(name) > 150 {
		name = name[:150]
	}
	if name == "" {
		return "field"
	}
	return name
}

func sanitizedSchema() []string {
	fields := make([]string, 0, len(models.CanonicalColumns))
	for _, col := range models.CanonicalColumns {
		fields = append(fields, SanitizeFieldName(col))
	}
	return fields
}

// transactionRow converts a canonical transaction into a document keyed by
// sanitized canonical field names, with nil for absent values.
func transactionRow(tx *models.CanonicalTransaction) Row {
	row := Row{
		"Item_Name":        tx.ItemName,
		"Sales_Tax":        tx.SalesTax.InexactFloat64(),
		"Total_Price":      tx.TotalPrice.InexactFloat64(),
		"Transaction_Type": tx.TransactionType,
		"Merchant_Type":    tx.MerchantType,
	}
	row["Transaction_Date"] = nilOr(tx.TransactionDate != nil, func() interface{} {
		return tx.TransactionDate.Format("2006-01-02")
	})
	row["Category"] = nilOrString(tx.Category)
	row["Merchant_Name"] = nilOrString(tx.MerchantName)
	row["Merchant_State"] = nilOrString(tx.MerchantState)
	row["Quantity"] = nilOr(tx.Quantity != nil, func() interface{} {
		return tx.Quantity.InexactFloat64()
	})
	row["Subtotal"] = nilOr(tx.Subtotal != nil, func() interface{} {
		return tx.Subtotal.InexactFloat64()
	})
	return row
}

func nilOr(present bool, value func() interface{}) interface{} {
	if !present {
		return nil
	}
	return value()
}

func nilOrString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
