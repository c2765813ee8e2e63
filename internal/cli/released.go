package cli

import (
	"github.com/spf13/cobra"
)

// newReleasedCmd creates the released command: a bar chart of releases
// per calendar year.
func newReleasedCmd() *cobra.Command {
	var opts chartOpts

	cmd := &cobra.Command{
		Use:   "released",
		Short: "Render the releases-per-year bar chart",
		Long: `Render a bar chart showing how many games were released each year.

Years with no releases keep an empty slot so the axis stays continuous.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd.Context(), chartReleased, opts, renderOpts{})
		},
	}

	addChartFlags(cmd, &opts)
	return cmd
}
