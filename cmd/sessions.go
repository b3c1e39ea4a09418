package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	sessionsadapter "github.com/veltner/usagehook/internal/adapters/render/sessions"
	"github.com/veltner/usagehook/internal/domain"
)

func newSessionsCmd(app *app) *cobra.Command {
	var (
		asJSON    bool
		showTools bool
	)

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recorded session usage logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := app.lister.Sessions(cmd.Context())
			if err != nil {
				return err
			}
			if stats == nil {
				stats = []domain.LogFileStat{}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}

			rendered, err := app.sessionsRenderer(stats, sessionsadapter.RenderOptions{
				Now:       app.now(),
				ShowTools: showTools,
			})
			if err != nil {
				return fmt.Errorf("render sessions: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&showTools, "tools", false, "Show per-tool entry counts")

	return cmd
}
