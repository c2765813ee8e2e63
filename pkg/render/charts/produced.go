package charts

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/retroviz/gamewatch/pkg/dataset"
	"github.com/retroviz/gamewatch/pkg/errors"
	"github.com/retroviz/gamewatch/pkg/palette"
)

// Produced renders the units-produced-per-game bar chart. Bars appear in
// record order, labeled "Game (Model)" and colored by series; the quantity
// axis uses abbreviated magnitude labels.
func Produced(ds *dataset.Dataset, opts Options) ([]byte, error) {
	opts.setDefaults(15*vg.Inch, 7*vg.Inch)

	if ds.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "no records to plot")
	}
	// Series outside the palette fail here, at the point of color lookup.
	for _, g := range ds.Games {
		if _, err := palette.Lookup(g.Series); err != nil {
			return nil, err
		}
	}

	p := newPlot("Number of Nintendo Game & Watch Games Produced per Game", "Game", "Quantity")
	p.Y.Tick.Marker = MagnitudeTicks{}
	p.Y.Min = 0
	p.Y.Max = float64(ds.MaxProduced() + 200000)

	labels := make([]string, ds.Len())
	for i, g := range ds.Games {
		labels[i] = g.Label()
	}

	// One bar chart per series, holding zeros at every other record's
	// position, so each series keeps its palette color while all bars
	// share the category axis.
	for _, entry := range palette.Entries() {
		values := make(plotter.Values, ds.Len())
		present := false
		for i, g := range ds.Games {
			if g.Series != entry.Series {
				continue
			}
			values[i] = float64(g.Produced)
			present = true
		}
		if !present {
			continue
		}

		bar, err := plotter.NewBarChart(values, vg.Points(9))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "bar chart for %s", entry.Series)
		}
		fill, err := palette.ParseHex(entry.Label)
		if err != nil {
			return nil, err
		}
		bar.Color = fill
		bar.LineStyle.Width = 0
		p.Add(bar)
		p.Legend.Add(entry.Series, bar)
	}

	p.NominalX(labels...)
	rotateXLabels(p)
	p.X.Tick.Label.Font.Size = vg.Points(8)
	p.Legend.Top = true

	return encode(p, opts)
}
