package charts

import (
	"strconv"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/retroviz/gamewatch/pkg/dataset"
	"github.com/retroviz/gamewatch/pkg/errors"
)

// ReleasedPerYear renders the releases-per-year bar chart. Years with no
// releases still get a slot so the axis stays continuous.
func ReleasedPerYear(ds *dataset.Dataset, opts Options) ([]byte, error) {
	opts.setDefaults(8*vg.Inch, 4*vg.Inch)

	counts := ds.ReleasesPerYear()
	if len(counts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "no records to plot")
	}

	p := newPlot("Number of Nintendo Game & Watch Games Released per Year", "Year", "Quantity")

	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	maxCount := 0
	for i, yc := range counts {
		values[i] = float64(yc.Count)
		labels[i] = strconv.Itoa(yc.Year)
		if yc.Count > maxCount {
			maxCount = yc.Count
		}
	}

	bar, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "bar chart")
	}
	bar.Color = barBlue
	bar.LineStyle.Width = 0

	p.Add(bar)
	p.NominalX(labels...)
	p.Y.Min = 0
	p.Y.Max = float64(maxCount + 1)
	p.X.Tick.Label.Font.Size = vg.Points(8)

	return encode(p, opts)
}
