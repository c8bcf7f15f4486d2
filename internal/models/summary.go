package models

import "time"

// Summary payload type discriminators.
const (
	PayloadTypeTopCounts     = "top_counts"
	PayloadTypeSpendOverTime = "spend_over_time"
)

// TopCountItem is one ranked entry in a top_counts payload. TotalSpent and
// Vendors are only populated by the detailed item aggregation; the plain
// frequency aggregation leaves them at their zero values.
type TopCountItem struct {
	Name       string   `json:"name" firestore:"name"`
	Count      int      `json:"count" firestore:"count"`
	TotalSpent float64  `json:"total_spent,omitempty" firestore:"total_spent,omitempty"`
	Vendors    []string `json:"vendors,omitempty" firestore:"vendors,omitempty"`
	Sources    []string `json:"sources,omitempty" firestore:"sources,omitempty"`
}

// TopCountsPayload is the dashboard payload for ranked frequency summaries.
type TopCountsPayload struct {
	Type  string         `json:"type" firestore:"type"`
	Title string         `json:"title" firestore:"title"`
	Unit  string         `json:"unit" firestore:"unit"`
	Items []TopCountItem `json:"items" firestore:"items"`
}

// NewTopCountsPayload builds a top_counts payload with the default unit.
func NewTopCountsPayload(title string, items []TopCountItem) TopCountsPayload {
	return TopCountsPayload{
		Type:  PayloadTypeTopCounts,
		Title: title,
		Unit:  "count",
		Items: items,
	}
}

// SpendPoint is one period/value pair in a spend_over_time payload.
type SpendPoint struct {
	Period string  `json:"period" firestore:"period"`
	Spend  float64 `json:"spend" firestore:"spend"`
}

// SpendOverTimePayload is the dashboard payload for time-bucketed spend.
type SpendOverTimePayload struct {
	Type     string       `json:"type" firestore:"type"`
	Title    string       `json:"title" firestore:"title"`
	Interval string       `json:"interval" firestore:"interval"`
	Currency string       `json:"currency" firestore:"currency"`
	Points   []SpendPoint `json:"points" firestore:"points"`
}

// SummaryDocument is a precomputed aggregation result attached to an upload
// batch. Re-running a pipeline overwrites the document with the same name
// under the same batch (merge upsert, not append).
type SummaryDocument struct {
	Name        string      `json:"name" firestore:"name"`
	Dataset     string      `json:"dataset" firestore:"dataset"`
	StoragePath string      `json:"storagePath,omitempty" firestore:"storagePath,omitempty"`
	GeneratedAt time.Time   `json:"generatedAt" firestore:"generatedAt"`
	Payload     interface{} `json:"payload" firestore:"payload"`
}

// UploadBatch is one ingestion run's identity and commit unit.
type UploadBatch struct {
	UploadID    string    `json:"uploadId" firestore:"-"`
	Dataset     string    `json:"dataset" firestore:"dataset"`
	RowCount    int       `json:"rowCount" firestore:"rowCount"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	Schema      []string  `json:"schema" firestore:"schema"`
	StoragePath string    `json:"storagePath,omitempty" firestore:"storagePath,omitempty"`
}
