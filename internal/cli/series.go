package cli

import (
	"github.com/spf13/cobra"
)

// newSeriesCmd creates the series command: a bar chart of releases per
// product series.
func newSeriesCmd() *cobra.Command {
	var opts chartOpts

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Render the releases-per-series bar chart",
		Long: `Render a bar chart showing how many games each product series contains.

Bars appear in first-release order and use the series' catalogue color.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd.Context(), chartSeries, opts, renderOpts{})
		},
	}

	addChartFlags(cmd, &opts)
	return cmd
}
