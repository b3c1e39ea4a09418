package application

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/veltner/usagehook/internal/domain"
	"github.com/veltner/usagehook/internal/ports"
)

// Recorder runs the hook pipeline: parse the payload, resolve a session
// label, derive the log file name, append one entry.
type Recorder struct {
	labeler ports.SessionLabeler
	usage   ports.UsageLog
	clock   ports.Clock
	log     zerolog.Logger
}

func NewRecorder(labeler ports.SessionLabeler, usage ports.UsageLog, clock ports.Clock, log zerolog.Logger) *Recorder {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Recorder{
		labeler: labeler,
		usage:   usage,
		clock:   clock,
		log:     log,
	}
}

// Record appends one log entry for the raw payload. An unparsable payload
// is a silent no-op. Only the final append can fail; read-side problems
// degrade to an absent label and the pipeline continues.
func (r *Recorder) Record(ctx context.Context, input []byte) error {
	payload, err := domain.ParsePayload(input)
	if err != nil {
		r.log.Debug().Err(err).Msg("skip unparsable event payload")
		return nil
	}

	var label string
	if payload.SessionID != "" {
		var ok bool
		label, ok = r.labeler.Resolve(ctx, payload.SessionID)
		if !ok {
			r.log.Debug().Str("session_id", payload.SessionID).Msg("no session label found")
		}
	}

	now := r.clock.Now()
	name := domain.FallbackFileName(now)
	if payload.SessionID != "" {
		name = domain.SessionFileName(payload.SessionID, label)
	}

	if err := r.usage.Append(ctx, name, domain.NewLogEntry(payload, now)); err != nil {
		return fmt.Errorf("write tool usage log: %w", err)
	}

	r.log.Debug().Str("file", name).Str("tool", payload.ToolName).Msg("recorded tool usage")

	return nil
}
