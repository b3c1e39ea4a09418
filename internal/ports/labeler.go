package ports

import "context"

// SessionLabeler resolves a human-readable label for a session. The
// lookup is fallible by design: every failure mode (missing source,
// unreadable source, no matching record) reports ok=false rather than
// an error, and the caller falls back to a placeholder.
type SessionLabeler interface {
	Resolve(ctx context.Context, sessionID string) (label string, ok bool)
}
