package ports

import (
	"context"

	"github.com/veltner/usagehook/internal/domain"
)

// UsageLog appends entries to named, append-only session log files.
type UsageLog interface {
	Append(ctx context.Context, name string, entry domain.LogEntry) error
}

// UsageLogBrowser reads back summaries of the recorded session logs.
type UsageLogBrowser interface {
	List(ctx context.Context) ([]domain.LogFileStat, error)
}
