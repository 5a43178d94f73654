package models

// ClientLogEntry is a single log record shipped by a client to the
// server-side log ingestion endpoint. Fields mirror the client logger's
// output; unknown levels are ingested as-is.
type ClientLogEntry struct {
	Level     string `json:"level,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`

	// Context carries arbitrary structured fields attached by the client.
	Context map[string]any `json:"context,omitempty"`
}

// ClientLogBatch is the request body of the log ingestion endpoint.
type ClientLogBatch struct {
	Logs []ClientLogEntry `json:"logs"`
}
