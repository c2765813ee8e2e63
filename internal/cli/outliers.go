package cli

import (
	"github.com/spf13/cobra"

	"github.com/retroviz/gamewatch/pkg/dataset"
)

// newOutliersCmd creates the outliers command: a histogram and box plot
// for one numeric column.
func newOutliersCmd() *cobra.Command {
	var (
		opts   chartOpts
		column string
	)

	cmd := &cobra.Command{
		Use:   "outliers",
		Short: "Render the distribution diagnostic for a numeric column",
		Long: `Render a histogram and a box plot side by side for a numeric column,
highlighting the shape of the distribution and any outliers.

Available columns: produced, order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd.Context(), chartOutliers, opts, renderOpts{column: column})
		},
	}

	addChartFlags(cmd, &opts)
	cmd.Flags().StringVarP(&column, "column", "c", dataset.ColumnProduced, "numeric column: produced, order")
	return cmd
}
