// Package usagelog owns the analytics directory of newline-delimited
// JSON session logs. Files are append-only; concurrent hook invocations
// rely on O_APPEND semantics instead of a locking protocol.
package usagelog

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gowebpki/jcs"

	"github.com/veltner/usagehook/internal/domain"
	"github.com/veltner/usagehook/internal/ports"
)

const (
	logDirMode   = 0o755
	logFileMode  = 0o644
	maxLineBytes = 1 << 20
	logFileExt   = ".jsonl"
)

type Writer struct {
	dir string
}

var (
	_ ports.UsageLog        = (*Writer)(nil)
	_ ports.UsageLogBrowser = (*Writer)(nil)
)

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Append serializes entry as one canonical JSON line and appends it to
// the named file, creating the directory and file as needed. The line and
// its trailing newline go out in a single write.
func (w *Writer) Append(ctx context.Context, name string, entry domain.LogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, logDirMode); err != nil {
		return fmt.Errorf("create usage log directory: %w", err)
	}

	line, err := encodeLine(entry)
	if err != nil {
		return fmt.Errorf("encode usage entry: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(w.dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode)
	if err != nil {
		return fmt.Errorf("open usage log: %w", err)
	}

	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("append usage entry: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close usage log: %w", err)
	}

	return nil
}

// List summarizes every .jsonl file in the directory. A missing directory
// is an empty listing, not an error; unreadable files and malformed lines
// are skipped, consistent with the read-side policy everywhere else.
func (w *Writer) List(ctx context.Context) ([]domain.LogFileStat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(w.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read usage log directory: %w", err)
	}

	stats := make([]domain.LogFileStat, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), logFileExt) {
			continue
		}
		stat, err := w.statFile(entry)
		if err != nil {
			continue
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

func (w *Writer) statFile(entry os.DirEntry) (domain.LogFileStat, error) {
	info, err := entry.Info()
	if err != nil {
		return domain.LogFileStat{}, err
	}

	f, err := os.Open(filepath.Join(w.dir, entry.Name()))
	if err != nil {
		return domain.LogFileStat{}, err
	}
	defer f.Close()

	stat := domain.LogFileStat{
		Name:       entry.Name(),
		ToolCounts: map[string]int{},
		LastWrite:  info.ModTime(),
		Size:       info.Size(),
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		var logged domain.LogEntry
		if err := json.Unmarshal(scanner.Bytes(), &logged); err != nil {
			continue
		}
		stat.Entries++
		if logged.Tool != "" {
			stat.ToolCounts[logged.Tool]++
		}
	}

	return stat, nil
}

// encodeLine marshals the entry and canonicalizes it per RFC 8785, so
// identical entries always serialize to identical bytes.
func encodeLine(entry domain.LogEntry) ([]byte, error) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, err
	}

	return append(canonical, '\n'), nil
}
