// Package analytics merges per-dataset summary files into one combined view
package analytics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"campusfin/procure-csv/cmd/root"
	"campusfin/procure-csv/internal/aggregate"
	"campusfin/procure-csv/internal/logging"
	"campusfin/procure-csv/internal/models"
	"campusfin/procure-csv/internal/normalize"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var limit int

// Cmd represents the analytics command
var Cmd = &cobra.Command{
	Use:   "analytics [summary files]",
	Short: "Merge per-dataset summary files into cross-dataset analytics",
	Long: `Analytics reads two or more summary JSON files produced by the summarize
command and merges them: top items are re-ranked over the summed counts
(vendor sets unioned, contributing datasets recorded) and the spend series
are combined per period. Each file's dataset name is taken from its file
name.

Example:
  procure-csv analytics card_summaries.json marketplace_summaries.json -o merged.json`,
	Args: cobra.MinimumNArgs(1),
	Run:  analyticsFunc,
}

func init() {
	Cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries in the merged top-item ranking")
}

// summaryFile is the subset of the summarize output the merge consumes.
type summaryFile struct {
	RowCount int                         `json:"rowCount"`
	TopItems models.TopCountsPayload     `json:"topItems"`
	Spend    models.SpendOverTimePayload `json:"spend"`
}

// mergedSet is the JSON document written by the analytics command.
type mergedSet struct {
	GeneratedAt time.Time                   `json:"generatedAt"`
	Datasets    []string                    `json:"datasets"`
	RowCount    int                         `json:"rowCount"`
	TotalSpend  string                      `json:"totalSpend"`
	TopItems    models.TopCountsPayload     `json:"topItems"`
	Spend       models.SpendOverTimePayload `json:"spend"`
}

func analyticsFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	files := make(map[string]summaryFile, len(args))
	for _, path := range args {
		dataset := datasetName(path)
		if _, dup := files[dataset]; dup {
			logger.Fatalf("Duplicate dataset %q (from %s)", dataset, path)
		}
		sf, err := readSummaryFile(path)
		if err != nil {
			logger.Fatalf("Error reading summary file: %v", err)
		}
		files[dataset] = sf
	}

	set := buildMergedSet(files, limit, logger)

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		logger.Fatalf("Error encoding merged analytics: %v", err)
	}

	if root.SharedFlags.Output == "" {
		cmd.Println(string(data))
		return
	}
	if err := os.WriteFile(root.SharedFlags.Output, data, 0600); err != nil {
		logger.Fatalf("Error writing merged analytics: %v", err)
	}
	logger.Infof("Merged %d summary files into %s", len(files), root.SharedFlags.Output)
}

// datasetName derives the dataset label from a summary file name:
// "card_summaries.json" becomes "card".
func datasetName(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.TrimSuffix(name, "_summaries")
}

func readSummaryFile(path string) (summaryFile, error) {
	var sf summaryFile
	data, err := os.ReadFile(path)
	if err != nil {
		return sf, err
	}
	if err := json.Unmarshal(data, &sf); err != nil {
		return sf, fmt.Errorf("parse %s: %w", path, err)
	}
	return sf, nil
}

// buildMergedSet re-ranks top items over all datasets and combines their
// spend series. Files bucketed at different intervals still merge; the
// mismatch is logged since mixed period labels rarely chart well.
func buildMergedSet(files map[string]summaryFile, limit int, logger logging.Logger) mergedSet {
	byDataset := make(map[string][]aggregate.StoredItem, len(files))
	series := make(map[string][]models.SpendPoint, len(files))

	var rowCount int
	var interval, currency string
	for dataset, sf := range files {
		rowCount += sf.RowCount

		items := make([]aggregate.StoredItem, 0, len(sf.TopItems.Items))
		for _, item := range sf.TopItems.Items {
			items = append(items, aggregate.StoredItem{
				Name:       item.Name,
				Count:      item.Count,
				TotalSpent: item.TotalSpent,
				Vendors:    item.Vendors,
			})
		}
		byDataset[dataset] = items
		series[dataset] = sf.Spend.Points

		if currency == "" {
			currency = sf.Spend.Currency
		}
		if interval == "" {
			interval = sf.Spend.Interval
		} else if sf.Spend.Interval != "" && sf.Spend.Interval != interval {
			logger.Warn("Summary files use different spend intervals",
				logging.Field{Key: logging.FieldDataset, Value: dataset},
				logging.Field{Key: logging.FieldInterval, Value: sf.Spend.Interval})
		}
	}

	combined := aggregate.CombineSpendSeries(series)

	total := decimal.Zero
	for _, p := range combined {
		total = total.Add(decimal.NewFromFloat(p.Spend))
	}

	datasets := make([]string, 0, len(files))
	for dataset := range files {
		datasets = append(datasets, dataset)
	}
	sort.Strings(datasets)

	return mergedSet{
		GeneratedAt: time.Now().UTC(),
		Datasets:    datasets,
		RowCount:    rowCount,
		TotalSpend:  normalize.FormatAmount(total, currency),
		TopItems: models.NewTopCountsPayload("Top Items (All Sources)",
			aggregate.MergeTopItems(byDataset, limit)),
		Spend: models.SpendOverTimePayload{
			Type:     models.PayloadTypeSpendOverTime,
			Title:    "Spend Over Time (All Sources)",
			Interval: interval,
			Currency: currency,
			Points:   combined,
		},
	}
}
