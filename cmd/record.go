package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

// maxStdinBytes caps the stdin read. Hook payloads are small JSON
// objects; 1 MB is generous headroom against unbounded allocation.
const maxStdinBytes = 1 << 20

func newRecordCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Append one tool-usage event from stdin to its session log",
		Long:  "record reads a single JSON event payload from stdin and appends one log entry to the session's usage file. An unparsable payload is dropped silently; only a failure to write the log file is an error.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxStdinBytes))
			if err != nil {
				app.log.Debug().Err(err).Msg("read event payload")
				return nil
			}

			return app.recorder.Record(cmd.Context(), input)
		},
	}
}
