// Package pipeline orchestrates the full flow for each procurement
// source: read the raw export, clean it onto the canonical shape, write
// the canonical CSV, optionally archive it, ingest it in batches and
// upsert the summary documents.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"campusfin/procure-csv/internal/aggregate"
	"campusfin/procure-csv/internal/cleaner"
	"campusfin/procure-csv/internal/ingest"
	"campusfin/procure-csv/internal/logging"
	"campusfin/procure-csv/internal/models"
	"campusfin/procure-csv/internal/pipeerror"
	"campusfin/procure-csv/internal/tabular"
)

// Archiver stores a cleaned CSV file durably and returns its storage path.
type Archiver interface {
	ArchiveFile(ctx context.Context, dataset, uploadID, filePath string) (string, error)
}

// SourceInput names one raw export file and the source schema it uses.
type SourceInput struct {
	Source string
	Path   string
}

// Options configures a pipeline run.
type Options struct {
	// OutputDir receives the cleaned canonical CSV files.
	OutputDir string
	// TopLimit bounds the ranked item summaries.
	TopLimit int
	// Interval buckets the spend series.
	Interval aggregate.Interval
	// IncludeRefunds keeps refund rows in the spend series.
	IncludeRefunds bool
}

// SourceResult is the outcome of one source's run.
type SourceResult struct {
	Source    string
	UploadID  string
	RowCount  int
	Dropped   int
	CleanPath string
	// StoragePath is empty when archiving is disabled.
	StoragePath string
}

// Result collects per-source outcomes and per-source failures. A failed
// source never hides the others' results.
type Result struct {
	Sources []SourceResult
	Errors  map[string]error
}

// Pipeline wires the cleaning engine, the ingestor and the optional
// archiver together.
type Pipeline struct {
	cleaner  *cleaner.Cleaner
	ingestor *ingest.Ingestor
	archiver Archiver
	logger   logging.Logger
}

// New assembles a pipeline. The archiver may be nil, which skips the
// storage step and leaves storage paths empty.
func New(cl *cleaner.Cleaner, ing *ingest.Ingestor, archiver Archiver, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Pipeline{cleaner: cl, ingestor: ing, archiver: archiver, logger: logger}
}

func (o *Options) applyDefaults() {
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if o.TopLimit <= 0 {
		o.TopLimit = 20
	}
	if o.Interval == "" {
		o.Interval = aggregate.IntervalMonth
	}
}

// Run processes every input independently. A source that fails to read,
// clean or summarize is recorded in Result.Errors and the remaining
// sources still run; only an aborted batch commit stops the whole run,
// since later steps would publish summaries over partially stored rows.
func (p *Pipeline) Run(ctx context.Context, inputs []SourceInput, opts Options) (Result, error) {
	opts.applyDefaults()
	result := Result{Errors: make(map[string]error)}

	for _, input := range inputs {
		src, err := p.runSource(ctx, input, opts)
		if err != nil {
			var commitErr *pipeerror.CommitError
			if errors.As(err, &commitErr) {
				result.Errors[input.Source] = err
				return result, err
			}
			p.logger.Error("Source failed",
				logging.Field{Key: logging.FieldSource, Value: input.Source},
				logging.Field{Key: logging.FieldError, Value: err.Error()})
			result.Errors[input.Source] = err
			continue
		}
		result.Sources = append(result.Sources, src)
	}
	return result, nil
}

func (p *Pipeline) runSource(ctx context.Context, input SourceInput, opts Options) (SourceResult, error) {
	profile, ok := cleaner.ProfileBySource(input.Source)
	if !ok {
		return SourceResult{}, &pipeerror.SourceError{Source: input.Source, Reason: "unknown source"}
	}

	table, err := tabular.ReadRawTableFile(input.Path, p.logger)
	if err != nil {
		return SourceResult{}, err
	}

	cleaned := p.cleaner.Clean(table, profile)
	if len(cleaned.Transactions) == 0 {
		return SourceResult{}, &pipeerror.SourceError{
			Source: input.Source,
			Reason: fmt.Sprintf("no usable rows in %s (%d dropped)", input.Path, cleaned.Dropped),
		}
	}

	cleanPath := filepath.Join(opts.OutputDir, cleanFileName(input.Source, input.Path))
	if err := tabular.WriteTransactionsCSV(cleaned.Transactions, cleanPath, p.logger); err != nil {
		return SourceResult{}, err
	}

	src := SourceResult{
		Source:    input.Source,
		RowCount:  len(cleaned.Transactions),
		Dropped:   cleaned.Dropped,
		CleanPath: cleanPath,
	}

	if p.ingestor == nil {
		return src, nil
	}

	// The upload id is minted before archiving so the stored object and the
	// document tree share it.
	uploadID := ingest.NewUploadID()
	if p.archiver != nil {
		storagePath, err := p.archiver.ArchiveFile(ctx, input.Source, uploadID, cleanPath)
		if err != nil {
			return SourceResult{}, err
		}
		src.StoragePath = storagePath
	}

	src.UploadID = uploadID
	if _, err := p.ingestor.IngestTransactions(ctx, uploadID, input.Source, src.StoragePath, cleaned.Transactions); err != nil {
		return SourceResult{}, err
	}

	if err := p.upsertSummaries(ctx, src, cleaned.Transactions, opts); err != nil {
		return SourceResult{}, err
	}
	return src, nil
}

// upsertSummaries computes and stores the standard summary set for one
// ingested source.
func (p *Pipeline) upsertSummaries(ctx context.Context, src SourceResult, transactions []models.CanonicalTransaction, opts Options) error {
	blacklist := p.cleaner.ItemBlacklist()

	topItems := aggregate.TopItems(transactions, blacklist, aggregate.TopItemsOptions{Limit: opts.TopLimit})
	if err := p.ingestor.UpsertSummary(ctx, src.UploadID, models.SummaryDocument{
		Name:        "top_items_detailed",
		Dataset:     src.Source,
		StoragePath: src.StoragePath,
		Payload:     models.NewTopCountsPayload("Top Items", topItems),
	}); err != nil {
		return err
	}

	topMerchants := aggregate.TopValues(transactions, func(tx *models.CanonicalTransaction) string {
		return tx.MerchantName
	}, 10, "Unknown")
	if err := p.ingestor.UpsertSummary(ctx, src.UploadID, models.SummaryDocument{
		Name:        "top_merchants_10",
		Dataset:     src.Source,
		StoragePath: src.StoragePath,
		Payload:     models.NewTopCountsPayload("Top Merchants", topMerchants),
	}); err != nil {
		return err
	}

	points, err := aggregate.SpendOverTime(transactions, aggregate.SpendOptions{
		Interval:       opts.Interval,
		IncludeRefunds: opts.IncludeRefunds,
	})
	if err != nil {
		return err
	}
	return p.ingestor.UpsertSummary(ctx, src.UploadID, models.SummaryDocument{
		Name:        "spend_by_" + string(opts.Interval),
		Dataset:     src.Source,
		StoragePath: src.StoragePath,
		Payload: models.SpendOverTimePayload{
			Type:     models.PayloadTypeSpendOverTime,
			Title:    "Spend Over Time",
			Interval: string(opts.Interval),
			Currency: "USD",
			Points:   points,
		},
	})
}

// cleanFileName derives the canonical output file name from the raw input.
func cleanFileName(source, rawPath string) string {
	base := filepath.Base(rawPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_%s_clean.csv", source, stem)
}
