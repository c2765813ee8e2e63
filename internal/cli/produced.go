package cli

import (
	"github.com/spf13/cobra"
)

// newProducedCmd creates the produced command: a bar chart of units
// produced per game, colored by series.
func newProducedCmd() *cobra.Command {
	var opts chartOpts

	cmd := &cobra.Command{
		Use:   "produced",
		Short: "Render the units-produced-per-game bar chart",
		Long: `Render a bar chart showing the number of units produced for each game.

Bars appear in release order, labeled "Game (Model)" and colored by series.
The quantity axis uses abbreviated labels (400K, 1.2M).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd.Context(), chartProduced, opts, renderOpts{})
		},
	}

	addChartFlags(cmd, &opts)
	return cmd
}
