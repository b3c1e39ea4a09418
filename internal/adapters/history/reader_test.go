package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHistory(t *testing.T, lines string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "history.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestResolveReturnsEarliestDisplay(t *testing.T) {
	path := writeHistory(t, `{"sessionId":"abc123","timestamp":9,"display":"later prompt"}
{"sessionId":"other","timestamp":1,"display":"unrelated"}
{"sessionId":"abc123","timestamp":5,"display":"Fix the bug!!"}
{"sessionId":"abc123","timestamp":7,"display":"middle prompt"}
`)

	label, ok := NewReader(path).Resolve(context.Background(), "abc123")

	require.True(t, ok)
	assert.Equal(t, "Fix the bug!!", label)
}

func TestResolveTieBreakFirstInFileOrderWins(t *testing.T) {
	path := writeHistory(t, `{"sessionId":"abc123","timestamp":5,"display":"first at five"}
{"sessionId":"abc123","timestamp":5,"display":"second at five"}
`)

	label, ok := NewReader(path).Resolve(context.Background(), "abc123")

	require.True(t, ok)
	assert.Equal(t, "first at five", label)
}

func TestResolveSkipsMalformedLines(t *testing.T) {
	path := writeHistory(t, `not json at all
{"sessionId":"abc123","timestamp":3,"display":"survives the noise"}
{"sessionId":"abc123","timestamp":
`)

	label, ok := NewReader(path).Resolve(context.Background(), "abc123")

	require.True(t, ok)
	assert.Equal(t, "survives the noise", label)
}

func TestResolveMissingDisplayFieldReturnsEmptyLabel(t *testing.T) {
	path := writeHistory(t, `{"sessionId":"abc123","timestamp":5}
`)

	label, ok := NewReader(path).Resolve(context.Background(), "abc123")

	require.True(t, ok)
	assert.Empty(t, label)
}

func TestResolveNoMatchingRecord(t *testing.T) {
	path := writeHistory(t, `{"sessionId":"other","timestamp":1,"display":"unrelated"}
`)

	_, ok := NewReader(path).Resolve(context.Background(), "abc123")

	assert.False(t, ok)
}

func TestResolveMissingFileIsAbsentNotError(t *testing.T) {
	_, ok := NewReader(filepath.Join(t.TempDir(), "nope.jsonl")).Resolve(context.Background(), "abc123")

	assert.False(t, ok)
}

func TestResolveEmptySessionID(t *testing.T) {
	path := writeHistory(t, `{"sessionId":"","timestamp":1,"display":"blank id record"}
`)

	_, ok := NewReader(path).Resolve(context.Background(), "")

	assert.False(t, ok)
}

func TestResolveCancelledContext(t *testing.T) {
	path := writeHistory(t, `{"sessionId":"abc123","timestamp":1,"display":"prompt"}
`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := NewReader(path).Resolve(ctx, "abc123")

	assert.False(t, ok)
}
