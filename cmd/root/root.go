// Package root contains the root command for the application
package root

import (
	"campusfin/procure-csv/internal/config"
	"campusfin/procure-csv/internal/logging"
	"campusfin/procure-csv/internal/rules"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Source string
	Rules  string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the application configuration after PersistentPreRun
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "procure-csv",
		Short: "A CLI tool to reconcile heterogeneous procurement exports into one canonical transaction feed.",
		Long: `procure-csv cleans marketplace, campus e-procurement and corporate-card
exports onto a single canonical schema, computes dashboard summaries and
stores the results as batched document uploads.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to procure-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Env-based logging first so config loading itself is logged.
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg

			// Reconfigure from the loaded config; its log settings win
			// over the plain env defaults.
			Log = config.ConfigureLoggingFromConfig(cfg)
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Source, "source", "s", "", "Source schema (marketplace, procurement, card)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Rules, "rules", "", "Rule-table override file (YAML)")
}

// GetLogrusAdapter returns the shared logger behind the Logger interface
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// LoadRules loads the rule tables, preferring the --rules flag over the
// configured file.
func LoadRules() (*rules.Table, error) {
	path := SharedFlags.Rules
	if path == "" && Cfg != nil {
		path = Cfg.Rules.File
	}
	return rules.Load(path)
}
