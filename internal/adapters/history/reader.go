// Package history scans the agent's prompt history log to recover the
// first prompt entered in a session.
package history

import (
	"bufio"
	"context"
	"encoding/json"
	"math"
	"os"

	"github.com/veltner/usagehook/internal/domain"
	"github.com/veltner/usagehook/internal/ports"
)

// maxLineBytes caps a single history line. First prompts are short; this
// is headroom for pasted content, matching the scanner buffer sizing used
// for session transcripts elsewhere.
const maxLineBytes = 1 << 20

type Reader struct {
	path string
}

var _ ports.SessionLabeler = (*Reader)(nil)

func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Resolve returns the display text of the earliest-timestamped history
// record for sessionID. Malformed lines are skipped; a missing or
// unreadable history file, a read error mid-scan, or no matching record
// all report ok=false. The comparison against the running minimum uses
// strict less-than, so the first record at a given timestamp wins.
func (r *Reader) Resolve(ctx context.Context, sessionID string) (string, bool) {
	if sessionID == "" {
		return "", false
	}
	if ctx.Err() != nil {
		return "", false
	}

	f, err := os.Open(r.path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		display string
		found   bool
		minTS   = math.Inf(1)
	)
	for scanner.Scan() {
		var record domain.HistoryRecord
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			continue
		}
		if record.SessionID != sessionID {
			continue
		}
		if record.Timestamp < minTS {
			minTS = record.Timestamp
			display = record.Display
			found = true
		}
	}
	if scanner.Err() != nil {
		return "", false
	}

	return display, found
}
