package charts

import (
	"bytes"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/retroviz/gamewatch/pkg/dataset"
	"github.com/retroviz/gamewatch/pkg/errors"
)

// Outliers renders the distribution diagnostic for a numeric column: a
// histogram and a box plot side by side on one canvas.
func Outliers(ds *dataset.Dataset, column string, opts Options) ([]byte, error) {
	opts.setDefaults(10*vg.Inch, 3*vg.Inch)
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, err
	}

	values, err := ds.Column(column)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "no records to plot")
	}

	histPlot := newPlot(fmt.Sprintf("Histogram of '%s'", column), column, "Count")
	hist, err := plotter.NewHist(plotter.Values(values), 16)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "histogram of %s", column)
	}
	hist.FillColor = barBlue
	histPlot.Add(hist)

	boxPlot := newPlot(fmt.Sprintf("Box plot of '%s'", column), column, "")
	box, err := plotter.NewBoxPlot(vg.Points(24), 0, plotter.Values(values))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "box plot of %s", column)
	}
	box.Horizontal = true
	boxPlot.Add(box)
	boxPlot.NominalY(column)

	return encodePanels([][]*plot.Plot{{histPlot, boxPlot}}, opts)
}

// encodePanels lays a grid of plots onto one canvas and encodes it.
// gonum/plot writes single plots directly; side-by-side panels need the
// tile/align dance on a shared canvas.
func encodePanels(plots [][]*plot.Plot, opts Options) ([]byte, error) {
	tiles := draw.Tiles{
		Rows: len(plots),
		Cols: len(plots[0]),
		PadX: vg.Millimeter * 5,
		PadY: vg.Millimeter * 5,
	}

	var (
		canvas io.WriterTo
		dc     draw.Canvas
	)

	switch opts.Format {
	case FormatSVG:
		c := vgsvg.New(opts.Width, opts.Height)
		dc = draw.New(c)
		canvas = c
	case FormatPNG:
		img := vgimg.New(opts.Width, opts.Height)
		dc = draw.New(img)
		canvas = vgimg.PngCanvas{Canvas: img}
	case FormatPDF:
		c := vgpdf.New(opts.Width, opts.Height)
		dc = draw.New(c)
		canvas = c
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", opts.Format)
	}

	panels := plot.Align(plots, tiles, dc)
	for i, row := range plots {
		for j, p := range row {
			if p != nil {
				p.Draw(panels[i][j])
			}
		}
	}

	var buf bytes.Buffer
	if _, err := canvas.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.Format)
	}
	return buf.Bytes(), nil
}
