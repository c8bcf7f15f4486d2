package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile      = "file_path"
	FieldSource    = "source"
	FieldDataset   = "dataset"
	FieldUploadID  = "upload_id"
	FieldBatch     = "batch_index"
	FieldAttempt   = "attempt"
	FieldSummary   = "summary"
	FieldInterval  = "interval"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldCount     = "count"
	FieldDropped   = "dropped"
	FieldDuration  = "duration_ms"
)
