package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/retroviz/gamewatch/pkg/buildinfo"
)

// Execute runs the gamewatch CLI and returns an error if any command fails.
//
// The root command carries all subcommands (one per chart, plus info, browse,
// serve, and completion) and configures logging based on the --verbose flag.
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "gamewatch",
		Short:        "Charts for the Nintendo Game & Watch catalogue",
		Long:         `gamewatch renders charts from the Nintendo Game & Watch release catalogue: production figures, releases per year and series, outlier diagnostics, and an annotated release timeline.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			logger.Debugf("gamewatch %s", buildinfo.String())
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newProducedCmd())
	root.AddCommand(newReleasedCmd())
	root.AddCommand(newSeriesCmd())
	root.AddCommand(newOutliersCmd())
	root.AddCommand(newTimelineCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newBrowseCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
