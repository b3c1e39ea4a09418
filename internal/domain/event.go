package domain

import (
	"encoding/json"
	"fmt"
)

// EventPayload is the document a tool-usage hook receives on stdin.
// Every field is optional; absent fields stay at their zero value.
type EventPayload struct {
	SessionID    string          `json:"session_id"`
	ToolName     string          `json:"tool_name"`
	ToolInput    json.RawMessage `json:"tool_input"`
	ToolResponse json.RawMessage `json:"tool_response"`
}

// ParsePayload decodes a raw hook payload. Anything that is not a JSON
// object is an error; callers decide whether that is fatal.
func ParsePayload(data []byte) (EventPayload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return EventPayload{}, fmt.Errorf("decode event payload: %w", err)
	}
	if fields == nil {
		return EventPayload{}, ErrPayloadNotObject
	}

	var payload EventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return EventPayload{}, fmt.Errorf("decode event payload: %w", err)
	}

	return payload, nil
}
