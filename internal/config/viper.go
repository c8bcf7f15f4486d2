// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	Ingest struct {
		BatchSize          int `mapstructure:"batch_size" yaml:"batch_size"`
		MaxRetries         int `mapstructure:"max_retries" yaml:"max_retries"`
		BaseBackoffSeconds int `mapstructure:"base_backoff_seconds" yaml:"base_backoff_seconds"`
	} `mapstructure:"ingest" yaml:"ingest"`

	Firestore struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Project string `mapstructure:"project" yaml:"project"`
	} `mapstructure:"firestore" yaml:"firestore"`

	Storage struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Bucket  string `mapstructure:"bucket" yaml:"bucket"`
	} `mapstructure:"storage" yaml:"storage"`

	Summaries struct {
		TopLimit int    `mapstructure:"top_limit" yaml:"top_limit"`
		Interval string `mapstructure:"interval" yaml:"interval"`
	} `mapstructure:"summaries" yaml:"summaries"`
}

// BaseBackoff returns the configured retry base delay as a duration.
func (c *Config) BaseBackoff() time.Duration {
	return time.Duration(c.Ingest.BaseBackoffSeconds) * time.Second
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/procure-csv")
	v.AddConfigPath(".procure-csv")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("PROCSV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	// 5. Cloud project comes from the standard unprefixed variable as well
	if err := v.BindEnv("firestore.project", "GOOGLE_CLOUD_PROJECT"); err != nil {
		fmt.Printf("Warning: failed to bind GOOGLE_CLOUD_PROJECT environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Rule table defaults
	v.SetDefault("rules.file", "")

	// Ingestion defaults
	v.SetDefault("ingest.batch_size", 200)
	v.SetDefault("ingest.max_retries", 4)
	v.SetDefault("ingest.base_backoff_seconds", 1)

	// Cloud defaults
	v.SetDefault("firestore.enabled", false)
	v.SetDefault("firestore.project", "")
	v.SetDefault("storage.enabled", false)
	v.SetDefault("storage.bucket", "")

	// Summary defaults
	v.SetDefault("summaries.top_limit", 20)
	v.SetDefault("summaries.interval", "month")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate ingestion parameters
	if config.Ingest.BatchSize < 1 || config.Ingest.BatchSize > 500 {
		return fmt.Errorf("ingest.batch_size must be between 1 and 500, got: %d", config.Ingest.BatchSize)
	}
	if config.Ingest.MaxRetries < 1 || config.Ingest.MaxRetries > 10 {
		return fmt.Errorf("ingest.max_retries must be between 1 and 10, got: %d", config.Ingest.MaxRetries)
	}
	if config.Ingest.BaseBackoffSeconds < 1 || config.Ingest.BaseBackoffSeconds > 60 {
		return fmt.Errorf("ingest.base_backoff_seconds must be between 1 and 60, got: %d", config.Ingest.BaseBackoffSeconds)
	}

	// Validate cloud configuration
	if config.Firestore.Enabled && config.Firestore.Project == "" {
		return fmt.Errorf("firestore.project required when Firestore is enabled")
	}
	if config.Storage.Enabled && config.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket required when archiving is enabled")
	}

	// Validate summary parameters
	if config.Summaries.TopLimit < 1 || config.Summaries.TopLimit > 100 {
		return fmt.Errorf("summaries.top_limit must be between 1 and 100, got: %d", config.Summaries.TopLimit)
	}
	switch config.Summaries.Interval {
	case "day", "week", "month":
	default:
		return fmt.Errorf("summaries.interval must be day, week or month, got: %s", config.Summaries.Interval)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
