// Package pipeline handles the end-to-end multi-source run
package pipeline

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"github.com/spf13/cobra"

	"campusfin/procure-csv/cmd/root"
	"campusfin/procure-csv/internal/aggregate"
	"campusfin/procure-csv/internal/archive"
	"campusfin/procure-csv/internal/cleaner"
	"campusfin/procure-csv/internal/ingest"
	"campusfin/procure-csv/internal/pipeline"
	"campusfin/procure-csv/internal/schema"
)

var (
	marketplacePath string
	procurementPath string
	cardPath        string
	includeRefunds  bool
)

// Cmd represents the pipeline command
var Cmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run the full clean, archive, ingest and summarize flow",
	Long: `Pipeline processes every given source export end to end: clean onto the
canonical schema, write the canonical CSV, archive it to Cloud Storage,
ingest the rows as a batched document upload and upsert the summary
documents. Sources run independently; one bad export never blocks the
others. Firestore and Cloud Storage steps are skipped unless enabled in
configuration.

Example:
  procure-csv pipeline --card card.csv --marketplace amzn.csv -o out/`,
	Run: pipelineFunc,
}

func init() {
	Cmd.Flags().StringVar(&marketplacePath, "marketplace", "", "Marketplace export file")
	Cmd.Flags().StringVar(&procurementPath, "procurement", "", "Campus e-procurement export file")
	Cmd.Flags().StringVar(&cardPath, "card", "", "Corporate-card export file")
	Cmd.Flags().BoolVar(&includeRefunds, "include-refunds", false, "Keep refund rows in the spend series")
}

func pipelineFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	cfg := root.Cfg
	ctx := context.Background()

	inputs := gatherInputs()
	if len(inputs) == 0 {
		logger.Fatal("At least one source file must be specified (--marketplace, --procurement, --card)")
	}

	ruleTable, err := root.LoadRules()
	if err != nil {
		logger.Fatalf("Error loading rule tables: %v", err)
	}

	var ingestor *ingest.Ingestor
	if cfg.Firestore.Enabled {
		client, err := firestore.NewClient(ctx, cfg.Firestore.Project)
		if err != nil {
			logger.Fatalf("Error creating Firestore client: %v", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				logger.WithError(err).Warn("Failed to close Firestore client")
			}
		}()
		ingestor = ingest.New(ingest.NewFirestoreStore(client), ingest.Options{
			BatchSize:   cfg.Ingest.BatchSize,
			MaxRetries:  cfg.Ingest.MaxRetries,
			BaseBackoff: cfg.BaseBackoff(),
			IsTimeout:   ingest.IsTimeout,
		}, logger)
	} else {
		logger.Info("Firestore disabled; cleaning and writing canonical CSVs only")
	}

	var archiver pipeline.Archiver
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(ctx)
		if err != nil {
			logger.Fatalf("Error creating storage client: %v", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				logger.WithError(err).Warn("Failed to close storage client")
			}
		}()
		archiver = archive.New(client, cfg.Storage.Bucket, logger)
	}

	p := pipeline.New(cleaner.New(ruleTable, logger), ingestor, archiver, logger)
	result, err := p.Run(ctx, inputs, pipeline.Options{
		OutputDir:      root.SharedFlags.Output,
		TopLimit:       cfg.Summaries.TopLimit,
		Interval:       aggregate.Interval(cfg.Summaries.Interval),
		IncludeRefunds: includeRefunds,
	})
	if err != nil {
		logger.Fatalf("Pipeline aborted: %v", err)
	}

	for _, src := range result.Sources {
		logger.Infof("Source %s: %d rows (%d dropped), upload %s",
			src.Source, src.RowCount, src.Dropped, src.UploadID)
	}
	for source, srcErr := range result.Errors {
		logger.Errorf("Source %s failed: %v", source, srcErr)
	}
	if len(result.Errors) > 0 {
		logger.Fatalf("%d of %d sources failed", len(result.Errors), len(inputs))
	}
	logger.Info("Pipeline completed successfully")
}

func gatherInputs() []pipeline.SourceInput {
	var inputs []pipeline.SourceInput
	if marketplacePath != "" {
		inputs = append(inputs, pipeline.SourceInput{Source: schema.SourceMarketplace, Path: marketplacePath})
	}
	if procurementPath != "" {
		inputs = append(inputs, pipeline.SourceInput{Source: schema.SourceProcurement, Path: procurementPath})
	}
	if cardPath != "" {
		inputs = append(inputs, pipeline.SourceInput{Source: schema.SourceCard, Path: cardPath})
	}
	return inputs
}
