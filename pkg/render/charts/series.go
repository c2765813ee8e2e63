package charts

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/retroviz/gamewatch/pkg/dataset"
	"github.com/retroviz/gamewatch/pkg/errors"
	"github.com/retroviz/gamewatch/pkg/palette"
)

// ReleasedPerSeries renders the releases-per-series bar chart, one bar per
// series in first-release order, filled with the series' palette color.
func ReleasedPerSeries(ds *dataset.Dataset, opts Options) ([]byte, error) {
	opts.setDefaults(8*vg.Inch, 4*vg.Inch)

	counts := ds.ReleasesPerSeries()
	if len(counts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "no records to plot")
	}

	p := newPlot("Number of Nintendo Game & Watch Games Released per Series", "Series", "Quantity")

	labels := make([]string, len(counts))
	maxCount := 0
	for i, sc := range counts {
		labels[i] = sc.Series
		if sc.Count > maxCount {
			maxCount = sc.Count
		}
	}

	// One single-position bar chart per series carries its palette color.
	for i, sc := range counts {
		fill, err := palette.LabelColor(sc.Series)
		if err != nil {
			return nil, err
		}

		values := make(plotter.Values, len(counts))
		values[i] = float64(sc.Count)

		bar, err := plotter.NewBarChart(values, vg.Points(16))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "bar chart for %s", sc.Series)
		}
		bar.Color = fill
		bar.LineStyle.Width = 0
		p.Add(bar)
	}

	p.NominalX(labels...)
	rotateXLabels(p)
	p.X.Tick.Label.Font.Size = vg.Points(8)
	p.Y.Min = 0
	p.Y.Max = float64(maxCount + 1)

	return encode(p, opts)
}
