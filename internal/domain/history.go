package domain

// HistoryRecord is one line of the prompt history log kept by the agent
// under the user's home directory. Timestamps are numeric; a missing
// timestamp decodes as zero, which matches how the log is scanned.
type HistoryRecord struct {
	SessionID string  `json:"sessionId"`
	Timestamp float64 `json:"timestamp"`
	Display   string  `json:"display"`
}
