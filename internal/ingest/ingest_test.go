package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusfin/procure-csv/internal/logging"
	"campusfin/procure-csv/internal/models"
	"campusfin/procure-csv/internal/pipeerror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTimeout = errors.New("deadline exceeded")

func timeoutClassifier(err error) bool {
	return errors.Is(err, errTimeout)
}

func fastOptions() Options {
	return Options{
		BatchSize:   2,
		MaxRetries:  3,
		BaseBackoff: time.Millisecond,
		IsTimeout:   timeoutClassifier,
	}
}

func sampleTransactions(n int) []models.CanonicalTransaction {
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	txs := make([]models.CanonicalTransaction, 0, n)
	for i := 0; i < n; i++ {
		txs = append(txs, models.CanonicalTransaction{
			TransactionDate: &date,
			ItemName:        "Item",
			TotalPrice:      decimal.NewFromInt(int64(i + 1)),
			TransactionType: models.TransactionTypePurchase,
			MerchantType:    models.MerchantTypeExternal,
		})
	}
	return txs
}

func TestIngestTransactions_Batching(t *testing.T) {
	store := NewMockStore()
	ing := New(store, fastOptions(), &logging.MockLogger{})

	uploadID, err := ing.IngestTransactions(context.Background(), "up-1", "card", "gs://b/o.csv", sampleTransactions(5))
	require.NoError(t, err)
	assert.Equal(t, "up-1", uploadID)

	// 5 rows at batch size 2 means batches of 2, 2, 1.
	batches := store.Batches["up-1"]
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 2)
	assert.Len(t, batches[1], 2)
	assert.Len(t, batches[2], 1)

	meta := store.Metadata["up-1"]
	assert.Equal(t, "card", meta.Dataset)
	assert.Equal(t, 5, meta.RowCount)
	assert.Equal(t, "gs://b/o.csv", meta.StoragePath)
	assert.Contains(t, meta.Schema, "Transaction_Date")
	assert.Contains(t, meta.Schema, "Total_Price")
}

func TestIngestTransactions_GeneratesUploadID(t *testing.T) {
	store := NewMockStore()
	ing := New(store, fastOptions(), &logging.MockLogger{})

	uploadID, err := ing.IngestTransactions(context.Background(), "", "card", "", sampleTransactions(1))
	require.NoError(t, err)
	assert.NotEmpty(t, uploadID)
	assert.Len(t, store.Batches[uploadID], 1)
}

func TestIngestTransactions_EmptyWritesMetadataOnly(t *testing.T) {
	store := NewMockStore()
	ing := New(store, fastOptions(), &logging.MockLogger{})

	uploadID, err := ing.IngestTransactions(context.Background(), "up-2", "card", "", nil)
	require.NoError(t, err)

	assert.Empty(t, store.Batches[uploadID])
	assert.Equal(t, 0, store.Metadata[uploadID].RowCount)
	assert.Equal(t, 0, store.CommitCalls)
}

func TestIngestTransactions_RetriesTimeouts(t *testing.T) {
	store := NewMockStore()
	store.FailFirst = []error{errTimeout, errTimeout}
	ing := New(store, fastOptions(), &logging.MockLogger{})

	_, err := ing.IngestTransactions(context.Background(), "up-3", "card", "", sampleTransactions(2))
	require.NoError(t, err)

	// Two timeouts then success on the third attempt.
	assert.Equal(t, 3, store.CommitCalls)
	require.Len(t, store.Batches["up-3"], 1)
	assert.Len(t, store.Batches["up-3"][0], 2)
}

func TestIngestTransactions_ExhaustedRetriesAbort(t *testing.T) {
	store := NewMockStore()
	store.FailFirst = []error{errTimeout, errTimeout, errTimeout}
	ing := New(store, fastOptions(), &logging.MockLogger{})

	_, err := ing.IngestTransactions(context.Background(), "up-4", "card", "", sampleTransactions(1))
	require.Error(t, err)

	var commitErr *pipeerror.CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.Equal(t, "up-4", commitErr.UploadID)
	assert.Equal(t, 0, commitErr.BatchIndex)
	assert.Equal(t, 3, commitErr.Attempts)
	assert.ErrorIs(t, commitErr.Err, errTimeout)
}

func TestIngestTransactions_NonTimeoutFailsImmediately(t *testing.T) {
	permanent := errors.New("permission denied")
	store := NewMockStore()
	store.FailFirst = []error{permanent}
	ing := New(store, fastOptions(), &logging.MockLogger{})

	_, err := ing.IngestTransactions(context.Background(), "up-5", "card", "", sampleTransactions(1))
	require.Error(t, err)

	var commitErr *pipeerror.CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.Equal(t, 1, commitErr.Attempts)
	assert.Equal(t, 1, store.CommitCalls)
}

func TestIngestTransactions_LaterBatchFailureKeepsEarlierBatches(t *testing.T) {
	store := NewMockStore()
	// First batch commits, second fails permanently.
	store.FailFirst = []error{nil, errors.New("permission denied")}
	ing := New(store, fastOptions(), &logging.MockLogger{})

	_, err := ing.IngestTransactions(context.Background(), "up-6", "card", "", sampleTransactions(4))
	require.Error(t, err)

	var commitErr *pipeerror.CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.Equal(t, 1, commitErr.BatchIndex)
	// The first batch stays committed.
	assert.Len(t, store.Batches["up-6"], 1)
}

func TestIngestTransactions_ContextCancelDuringBackoff(t *testing.T) {
	store := NewMockStore()
	store.FailFirst = []error{errTimeout, errTimeout, errTimeout}

	opts := fastOptions()
	opts.BaseBackoff = time.Minute
	ing := New(store, opts, &logging.MockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := ing.IngestTransactions(ctx, "up-7", "card", "", sampleTransactions(1))
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)

	var commitErr *pipeerror.CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.ErrorIs(t, commitErr.Err, context.Canceled)
}

func TestUpsertSummary(t *testing.T) {
	store := NewMockStore()
	ing := New(store, fastOptions(), &logging.MockLogger{})

	doc := models.SummaryDocument{
		Name:    "top_items_detailed",
		Dataset: "card",
		Payload: models.NewTopCountsPayload("Top Items", nil),
	}
	require.NoError(t, ing.UpsertSummary(context.Background(), "up-8", doc))

	stored := store.Summaries["up-8"]["top_items_detailed"]
	assert.Equal(t, "card", stored.Dataset)
	assert.False(t, stored.GeneratedAt.IsZero())

	// Re-upserting the same name overwrites, never appends.
	doc.Dataset = "marketplace"
	require.NoError(t, ing.UpsertSummary(context.Background(), "up-8", doc))
	assert.Len(t, store.Summaries["up-8"], 1)
	assert.Equal(t, "marketplace", store.Summaries["up-8"]["top_items_detailed"].Dataset)
}

func TestSanitizeFieldName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Spaces become underscores", "Transaction Date", "Transaction_Date"},
		{"Multiple spaces collapse", "a   b", "a_b"},
		{"Punctuation dropped", "Total $ (USD)", "Total__USD"},
		{"Hyphens kept", "state-code", "state-code"},
		{"Already clean", "Merchant_Type", "Merchant_Type"},
		{"Empty falls back", "", "field"},
		{"Symbols only falls back", "$%&", "field"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeFieldName(tc.input))
		})
	}

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	assert.Len(t, SanitizeFieldName(string(long)), 150)
}

func TestTransactionRow(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	qty := decimal.NewFromInt(2)

	tx := models.CanonicalTransaction{
		TransactionDate: &date,
		ItemName:        "Copy Paper",
		MerchantName:    "Staples",
		Quantity:        &qty,
		SalesTax:        decimal.NewFromFloat(1.75),
		TotalPrice:      decimal.NewFromFloat(21.74),
		TransactionType: models.TransactionTypePurchase,
		MerchantType:    models.MerchantTypeExternal,
	}

	row := transactionRow(&tx)
	assert.Equal(t, "2024-03-15", row["Transaction_Date"])
	assert.Equal(t, "Copy Paper", row["Item_Name"])
	assert.Equal(t, 2.0, row["Quantity"])
	assert.Equal(t, 21.74, row["Total_Price"])
	// Absent values store as explicit nulls, not missing keys.
	assert.Nil(t, row["Subtotal"])
	assert.Nil(t, row["Category"])
	assert.Nil(t, row["Merchant_State"])
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	opts.applyDefaults()

	assert.Equal(t, 200, opts.BatchSize)
	assert.Equal(t, 4, opts.MaxRetries)
	assert.Equal(t, time.Second, opts.BaseBackoff)
	require.NotNil(t, opts.IsTimeout)
	assert.False(t, opts.IsTimeout(errors.New("x")))
}
