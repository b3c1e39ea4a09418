// Package sessions renders session log listings for the terminal.
package sessions

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/veltner/usagehook/internal/domain"
)

type RenderOptions struct {
	Now       time.Time
	ShowTools bool
}

func Render(stats []domain.LogFileStat, opts RenderOptions) (string, error) {
	return renderView(stats, opts, newStyles()), nil
}

func renderView(stats []domain.LogFileStat, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Tool Usage Sessions"),
		s.header.Render(fmt.Sprintf("session logs: %d", len(stats))),
	}

	if len(stats) == 0 {
		lines = append(lines, s.empty.Render("No tool usage recorded yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, stat := range stats {
		lines = append(lines, s.section.Render(renderSession(stat, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSession(stat domain.LogFileStat, opts RenderOptions, s styles) string {
	parts := []string{
		s.session.Render(stat.Name),
		s.detail.Render(fmt.Sprintf("entries: %d  last: %s  size: %s",
			stat.Entries,
			formatLastWrite(stat.LastWrite, opts.Now),
			formatSize(stat.Size),
		)),
	}

	if opts.ShowTools && len(stat.ToolCounts) > 0 {
		parts = append(parts, s.tools.Render("tools: "+formatToolCounts(stat.ToolCounts)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func formatLastWrite(lastWrite, now time.Time) string {
	if lastWrite.IsZero() {
		return "never"
	}
	if now.IsZero() {
		return lastWrite.Format(time.RFC3339)
	}

	age := now.Sub(lastWrite)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return lastWrite.Format("2006-01-02")
	}
}

func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1fkB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%dB", size)
	}
}

func formatToolCounts(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s (%d)", name, counts[name]))
	}

	return strings.Join(parts, ", ")
}
