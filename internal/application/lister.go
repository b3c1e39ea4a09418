package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/veltner/usagehook/internal/domain"
	"github.com/veltner/usagehook/internal/ports"
)

// Lister reads back summaries of the recorded session logs, most
// recently written first.
type Lister struct {
	browser ports.UsageLogBrowser
}

func NewLister(browser ports.UsageLogBrowser) *Lister {
	return &Lister{browser: browser}
}

func (l *Lister) Sessions(ctx context.Context) ([]domain.LogFileStat, error) {
	stats, err := l.browser.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list usage logs: %w", err)
	}

	sort.Slice(stats, func(i, j int) bool {
		if !stats[i].LastWrite.Equal(stats[j].LastWrite) {
			return stats[i].LastWrite.After(stats[j].LastWrite)
		}
		return stats[i].Name < stats[j].Name
	})

	return stats, nil
}
