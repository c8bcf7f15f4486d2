// Package pipeerror defines the error taxonomy shared across the pipeline.
package pipeerror

import "fmt"

// ParseError represents a per-field parsing failure. Callers normally treat
// it as recoverable: the field is nulled or the row is dropped.
type ParseError struct {
	Source string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Source, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SourceError represents a per-source failure (missing raw file, missing
// identifier). One degraded source never aborts the other sources.
type SourceError struct {
	Source string
	Reason string
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s unavailable: %s", e.Source, e.Reason)
}

// ConfigError represents invalid caller input, such as an unknown
// spend-over-time interval. It is never retried and never defaulted.
type ConfigError struct {
	Parameter string
	Value     string
	Msg       string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s='%s': %s", e.Parameter, e.Value, e.Msg)
}

// CommitError represents a batch commit that failed after exhausting all
// retry attempts. It carries enough context for manual resumption.
type CommitError struct {
	UploadID   string
	BatchIndex int
	Attempts   int
	Err        error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit of batch %d for upload %s failed after %d attempts: %v",
		e.BatchIndex, e.UploadID, e.Attempts, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}
