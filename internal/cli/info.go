package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/retroviz/gamewatch/pkg/render/charts"
)

// newInfoCmd creates the info command: a terminal summary of the dataset.
func newInfoCmd() *cobra.Command {
	var (
		data    string
		maxYear int
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show a summary table of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context(), data, maxYear)
			if err != nil {
				return err
			}

			minYear, lastYear, ok := ds.YearSpan()
			if !ok {
				printWarning("Dataset is empty")
				return nil
			}

			fmt.Println(StyleTitle.Render("Game & Watch catalogue"))
			fmt.Println(StyleDim.Render(fmt.Sprintf("%d games, %d series, %d–%d",
				ds.Len(), len(ds.ReleasesPerSeries()), minYear, lastYear)))
			fmt.Println()

			rows := make([][]string, 0, ds.Len())
			for _, g := range ds.Games {
				rows = append(rows, []string{
					"#" + strconv.Itoa(g.Order),
					g.Name,
					g.Model,
					g.Series,
					g.Released.Format("2006-01-02"),
					charts.FormatMagnitude(float64(g.Produced)),
				})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("", "Game", "Model", "Series", "Released", "Produced").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					if col == 0 || col == 4 {
						return StyleDim
					}
					return StyleValue
				})

			fmt.Println(t)
			return nil
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", defaultDataPath, "dataset file (TOML)")
	cmd.Flags().IntVar(&maxYear, "max-year", 0, "only include releases up to this year")
	return cmd
}
