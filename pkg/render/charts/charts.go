// Package charts renders the statistical charts of the catalogue with
// gonum/plot: units produced per game, releases per year, releases per
// series, and the histogram/box-plot distribution diagnostic.
//
// Every renderer copies or derives its own plotting data from the dataset
// it is handed; nothing is shared or mutated across calls. Renderers
// return encoded image bytes so callers decide where artifacts go (a file
// under figures/, an HTTP response, a cache).
package charts

import (
	"bytes"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/retroviz/gamewatch/pkg/errors"
)

// Supported output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{FormatSVG: true, FormatPNG: true, FormatPDF: true}

// ValidateFormat checks that a requested format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', or 'pdf')", format)
	}
	return nil
}

// Options control chart geometry and encoding.
type Options struct {
	Width  vg.Length // canvas width
	Height vg.Length // canvas height
	Format string    // svg, png, or pdf
}

// setDefaults fills unset fields with the given geometry and SVG format.
func (o *Options) setDefaults(w, h vg.Length) {
	if o.Width == 0 {
		o.Width = w
	}
	if o.Height == 0 {
		o.Height = h
	}
	if o.Format == "" {
		o.Format = FormatSVG
	}
}

// Shared chart colors.
var (
	barBlue  = color.RGBA{R: 0x4C, G: 0x72, B: 0xB0, A: 0xFF} // default bar fill
	gridGray = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF} // horizontal grid lines
)

// newPlot creates a plot with the shared cosmetic defaults: title, axis
// labels, light horizontal grid.
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(10)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

// rotateXLabels turns the X tick labels vertical for long category names.
func rotateXLabels(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}

// encode writes the plot in the requested format and returns the bytes.
func encode(p *plot.Plot, opts Options) ([]byte, error) {
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", opts.Format)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.Format)
	}
	return buf.Bytes(), nil
}
