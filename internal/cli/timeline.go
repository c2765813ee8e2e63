package cli

import (
	"github.com/spf13/cobra"
)

// newTimelineCmd creates the timeline command: the annotated release
// timeline along a horizontal date axis.
func newTimelineCmd() *cobra.Command {
	var (
		opts   chartOpts
		manual bool
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Render the annotated release timeline",
		Long: `Render the release timeline: every game annotated along a date axis,
its label lifted to a vertical level and colored by series.

Levels alternate sides per series to keep neighboring labels apart. With
--manual-levels the hand-tuned level table for the full catalogue is used
instead of the generated levels; it covers at most 63 records.

PNG and PDF output converts the SVG via rsvg-convert (librsvg).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd.Context(), chartTimeline, opts, renderOpts{manual: manual})
		},
	}

	addChartFlags(cmd, &opts)
	cmd.Flags().BoolVar(&manual, "manual-levels", false, "use the hand-tuned level table")
	return cmd
}
