// Package logger builds the stderr logger used for diagnostics. At the
// default error level the hook stays silent on every success path.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// New creates a logger writing to w. Unknown level strings fall back to
// the error level rather than failing.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.ErrorLevel
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
