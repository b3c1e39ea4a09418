package domain

import (
	"regexp"
	"strings"
	"time"
)

const (
	labelPlaceholder  = "unknown_session"
	maxLabelLen       = 50
	fallbackTimestamp = "20060102_150405"
)

var (
	labelStripRe    = regexp.MustCompile(`[^\w\s-]`)
	labelCollapseRe = regexp.MustCompile(`[-\s]+`)
)

// SanitizeLabel makes a session label safe for use in a file name: strip
// everything outside word characters, whitespace and hyphens, collapse
// hyphen/whitespace runs into a single underscore, trim underscores, and
// cap the result at 50 characters. An empty label gets a placeholder.
func SanitizeLabel(label string) string {
	if label == "" {
		return labelPlaceholder
	}

	clean := labelStripRe.ReplaceAllString(label, "")
	clean = labelCollapseRe.ReplaceAllString(clean, "_")
	clean = strings.Trim(clean, "_")

	if runes := []rune(clean); len(runes) > maxLabelLen {
		clean = string(runes[:maxLabelLen])
	}

	return clean
}

// SessionFileName derives the log file name for a known session. The name
// is a pure function of the session id and the label, so every invocation
// for the same session lands in the same file.
func SessionFileName(sessionID, label string) string {
	return "session_" + sessionID + "_" + SanitizeLabel(label) + ".jsonl"
}

// FallbackFileName derives the log file name used when the payload has no
// session id. Invocations within the same second share a file.
func FallbackFileName(now time.Time) string {
	return "tool_usage_" + now.Format(fallbackTimestamp) + ".jsonl"
}
