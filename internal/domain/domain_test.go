package domain

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{name: "empty label gets placeholder", label: "", want: "unknown_session"},
		{name: "punctuation stripped", label: "Fix the bug!!", want: "Fix_the_bug"},
		{name: "hyphen runs collapse to one underscore", label: "a -- b", want: "a_b"},
		{name: "leading and trailing separators trimmed", label: " - tidy up - ", want: "tidy_up"},
		{name: "already clean text unchanged", label: "refactor_parser", want: "refactor_parser"},
		{name: "only special characters leaves nothing", label: "!!!???", want: ""},
		{name: "underscores survive", label: "keep_these_underscores", want: "keep_these_underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeLabel(tt.label))
		})
	}
}

func TestSanitizeLabelIsIdempotent(t *testing.T) {
	for _, label := range []string{"Fix the bug!!", "  spaced   out  ", "clean_already", ""} {
		once := SanitizeLabel(label)
		assert.Equal(t, once, SanitizeLabel(once), "label %q", label)
	}
}

func TestSanitizeLabelCapsLengthAndCharset(t *testing.T) {
	long := strings.Repeat("prompt text with spaces! ", 20)
	got := SanitizeLabel(long)

	assert.LessOrEqual(t, len([]rune(got)), 50)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9_]*$`), got)
}

func TestSessionFileName(t *testing.T) {
	assert.Equal(t, "session_abc123_Fix_the_bug.jsonl", SessionFileName("abc123", "Fix the bug!!"))
	assert.Equal(t, "session_abc123_unknown_session.jsonl", SessionFileName("abc123", ""))
}

func TestFallbackFileName(t *testing.T) {
	now := time.Date(2026, 2, 14, 9, 5, 7, 0, time.UTC)

	name := FallbackFileName(now)

	assert.Equal(t, "tool_usage_20260214_090507.jsonl", name)
	assert.Regexp(t, regexp.MustCompile(`^tool_usage_\d{8}_\d{6}\.jsonl$`), name)
}

func TestParsePayload(t *testing.T) {
	payload, err := ParsePayload([]byte(`{"session_id":"abc123","tool_name":"Bash","tool_input":{"cmd":"ls"},"tool_response":{"ok":true}}`))
	require.NoError(t, err)

	assert.Equal(t, "abc123", payload.SessionID)
	assert.Equal(t, "Bash", payload.ToolName)
	assert.JSONEq(t, `{"cmd":"ls"}`, string(payload.ToolInput))
	assert.JSONEq(t, `{"ok":true}`, string(payload.ToolResponse))
}

func TestParsePayloadMissingFieldsStayZero(t *testing.T) {
	payload, err := ParsePayload([]byte(`{}`))
	require.NoError(t, err)

	assert.Empty(t, payload.SessionID)
	assert.Empty(t, payload.ToolName)
	assert.Nil(t, payload.ToolInput)
	assert.Nil(t, payload.ToolResponse)
}

func TestParsePayloadRejectsNonObjects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "truncated JSON", input: `{"session_id": "abc`},
		{name: "empty input", input: ``},
		{name: "JSON null", input: `null`},
		{name: "JSON array", input: `[1,2]`},
		{name: "bare string", input: `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePayload([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestNewLogEntryMirrorsPayload(t *testing.T) {
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	payload := EventPayload{
		SessionID:    "abc123",
		ToolName:     "Bash",
		ToolInput:    json.RawMessage(`{"cmd":"ls"}`),
		ToolResponse: json.RawMessage(`{"ok":true}`),
	}

	entry := NewLogEntry(payload, now)

	assert.Equal(t, "2026-02-14T12:00:00Z", entry.Timestamp)
	assert.Equal(t, "Bash", entry.Tool)
	assert.Equal(t, payload.ToolInput, entry.Input)
	assert.Equal(t, payload.ToolResponse, entry.Result)
	assert.Equal(t, "abc123", entry.SessionID)
}

func TestLogEntryAbsentFieldsSerializeAsNull(t *testing.T) {
	entry := NewLogEntry(EventPayload{SessionID: "abc123"}, time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC))

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	assert.JSONEq(t, `{"timestamp":"2026-02-14T12:00:00Z","tool":"","input":null,"result":null,"session_id":"abc123"}`, string(data))
}
