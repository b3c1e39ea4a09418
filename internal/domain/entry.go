package domain

import (
	"encoding/json"
	"time"
)

// LogEntry is one recorded tool-usage event, persisted as a single JSON
// line. Input and Result carry the payload values through untouched; a
// nil RawMessage serializes as null, mirroring an absent payload field.
type LogEntry struct {
	Timestamp string          `json:"timestamp"`
	Tool      string          `json:"tool"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	SessionID string          `json:"session_id"`
}

// NewLogEntry builds the entry for a payload captured at now.
func NewLogEntry(payload EventPayload, now time.Time) LogEntry {
	return LogEntry{
		Timestamp: now.Format(time.RFC3339),
		Tool:      payload.ToolName,
		Input:     payload.ToolInput,
		Result:    payload.ToolResponse,
		SessionID: payload.SessionID,
	}
}

// LogFileStat summarizes one session log file for listings.
type LogFileStat struct {
	Name       string         `json:"name"`
	Entries    int            `json:"entries"`
	ToolCounts map[string]int `json:"tool_counts"`
	LastWrite  time.Time      `json:"last_write"`
	Size       int64          `json:"size"`
}
