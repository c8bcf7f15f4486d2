// Package clean handles cleaning one raw export onto the canonical schema
package clean

import (
	"campusfin/procure-csv/cmd/root"
	"campusfin/procure-csv/internal/cleaner"
	"campusfin/procure-csv/internal/tabular"

	"github.com/spf13/cobra"
)

// Cmd represents the clean command
var Cmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a raw source export into a canonical CSV",
	Long: `Clean reads one raw export, maps its headers onto the canonical schema
through the source's alias table and writes the normalized rows as CSV.

Example:
  procure-csv clean -s card -i card_export.csv -o card_clean.csv`,
	Run: cleanFunc,
}

func cleanFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		logger.Fatal("Input and output files must be specified")
	}

	profile, ok := cleaner.ProfileBySource(root.SharedFlags.Source)
	if !ok {
		logger.Fatalf("Unknown source %q (expected marketplace, procurement or card)", root.SharedFlags.Source)
	}

	ruleTable, err := root.LoadRules()
	if err != nil {
		logger.Fatalf("Error loading rule tables: %v", err)
	}

	table, err := tabular.ReadRawTableFile(root.SharedFlags.Input, logger)
	if err != nil {
		logger.Fatalf("Error reading raw file: %v", err)
	}

	result := cleaner.New(ruleTable, logger).Clean(table, profile)
	if err := tabular.WriteTransactionsCSV(result.Transactions, root.SharedFlags.Output, logger); err != nil {
		logger.Fatalf("Error writing canonical CSV: %v", err)
	}

	logger.Infof("Cleaned %d rows (%d dropped) into %s",
		len(result.Transactions), result.Dropped, root.SharedFlags.Output)
}
