package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "usagehook",
		Short:         "Record tool-usage events into per-session JSONL logs",
		Long:          "usagehook is a post-tool-use hook for Claude Code: it reads one event payload from stdin, labels the session with its first prompt from the history log, and appends a JSON record to a per-session file under .claude/analytics/tool_usage_history.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRecordCmd(app),
		newSessionsCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
