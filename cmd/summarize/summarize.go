// Package summarize handles offline summary computation over canonical CSVs
package summarize

import (
	"encoding/json"
	"os"
	"time"

	"campusfin/procure-csv/cmd/root"
	"campusfin/procure-csv/internal/aggregate"
	"campusfin/procure-csv/internal/models"
	"campusfin/procure-csv/internal/tabular"

	"github.com/spf13/cobra"
)

var (
	interval       string
	limit          int
	includeRefunds bool
	withDemand     bool
)

// Cmd represents the summarize command
var Cmd = &cobra.Command{
	Use:   "summarize",
	Short: "Compute dashboard summaries from a canonical CSV",
	Long: `Summarize reads a canonical transaction CSV and computes the standard
summary set: ranked top items with spend and vendors, top merchants, and
a time-bucketed spend series. Results are written as JSON.

Example:
  procure-csv summarize -i card_clean.csv -o card_summaries.json --interval month`,
	Run: summarizeFunc,
}

func init() {
	Cmd.Flags().StringVar(&interval, "interval", "month", "Spend bucketing interval (day, week, month)")
	Cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries in ranked summaries")
	Cmd.Flags().BoolVar(&includeRefunds, "include-refunds", false, "Keep refund rows in the spend series")
	Cmd.Flags().BoolVar(&withDemand, "demand", false, "Include demand-ranked restock recommendations")
}

// summarySet is the JSON document written by the summarize command.
type summarySet struct {
	GeneratedAt  time.Time                   `json:"generatedAt"`
	RowCount     int                         `json:"rowCount"`
	TopItems     models.TopCountsPayload     `json:"topItems"`
	TopMerchants models.TopCountsPayload     `json:"topMerchants"`
	Spend        models.SpendOverTimePayload `json:"spend"`
	Demand       []aggregate.RankedDemand    `json:"demand,omitempty"`
}

func summarizeFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	if root.SharedFlags.Input == "" {
		logger.Fatal("Input file must be specified")
	}
	if err := aggregate.ValidateInterval(aggregate.Interval(interval)); err != nil {
		logger.Fatalf("Invalid interval: %v", err)
	}

	ruleTable, err := root.LoadRules()
	if err != nil {
		logger.Fatalf("Error loading rule tables: %v", err)
	}

	transactions, err := tabular.ReadTransactionsCSV(root.SharedFlags.Input, logger)
	if err != nil {
		logger.Fatalf("Error reading canonical CSV: %v", err)
	}

	points, err := aggregate.SpendOverTime(transactions, aggregate.SpendOptions{
		Interval:       aggregate.Interval(interval),
		IncludeRefunds: includeRefunds,
	})
	if err != nil {
		logger.Fatalf("Error computing spend series: %v", err)
	}

	set := summarySet{
		GeneratedAt: time.Now().UTC(),
		RowCount:    len(transactions),
		TopItems: models.NewTopCountsPayload("Top Items",
			aggregate.TopItems(transactions, ruleTable.ItemBlacklist, aggregate.TopItemsOptions{Limit: limit})),
		TopMerchants: models.NewTopCountsPayload("Top Merchants",
			aggregate.TopValues(transactions, func(tx *models.CanonicalTransaction) string {
				return tx.MerchantName
			}, 10, "Unknown")),
		Spend: models.SpendOverTimePayload{
			Type:     models.PayloadTypeSpendOverTime,
			Title:    "Spend Over Time",
			Interval: interval,
			Currency: "USD",
			Points:   points,
		},
	}

	if withDemand {
		demand := aggregate.BuildItemDemand(transactions, time.Now().UTC())
		set.Demand = aggregate.RankDemand(demand, aggregate.DemandOptions{})
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		logger.Fatalf("Error encoding summaries: %v", err)
	}

	if root.SharedFlags.Output == "" {
		cmd.Println(string(data))
		return
	}
	if err := os.WriteFile(root.SharedFlags.Output, data, 0600); err != nil {
		logger.Fatalf("Error writing summary file: %v", err)
	}
	logger.Infof("Wrote summaries for %d rows to %s", len(transactions), root.SharedFlags.Output)
}
