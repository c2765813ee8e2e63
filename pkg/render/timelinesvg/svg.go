package timelinesvg

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/retroviz/gamewatch/pkg/palette"
)

const (
	defaultWidth  = 1250.0
	defaultHeight = 750.0
	defaultTitle  = "Timeless Classics: The Evolution of Nintendo Game & Watch"

	marginX      = 60.0 // left/right margin around the date axis
	marginTop    = 80.0 // room for the title
	marginBottom = 50.0 // room for year labels under the axis

	stemColor   = "#BBBBBB" // stems and baseline markers
	labelHeight = 16.0      // label box height
	charWidth   = 6.8       // approximate glyph advance at font-size 11
)

// Option configures the SVG renderer.
type Option func(*svgRenderer)

type svgRenderer struct {
	width  float64
	height float64
	title  string
	legend bool
}

// WithSize overrides the default 1250x750 viewport.
func WithSize(width, height float64) Option {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}

// WithTitle overrides the default chart title.
func WithTitle(title string) Option {
	return func(r *svgRenderer) { r.title = title }
}

// WithoutLegend drops the series legend.
func WithoutLegend() Option {
	return func(r *svgRenderer) { r.legend = false }
}

// RenderSVG draws the timeline entries as an SVG document.
// Entries must be non-empty; Build enforces that.
func RenderSVG(entries []Entry, opts ...Option) []byte {
	r := svgRenderer{width: defaultWidth, height: defaultHeight, title: defaultTitle, legend: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="white"/>`+"\n", r.width, r.height)

	scale := newScale(entries, r.width, r.height)

	r.renderTitle(&buf)
	r.renderStems(&buf, entries, scale)
	r.renderAxis(&buf, scale)
	r.renderMarkers(&buf, entries, scale)
	r.renderLabels(&buf, entries, scale)
	if r.legend {
		r.renderLegend(&buf)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// scale maps dates and levels to viewport coordinates.
type scale struct {
	minDate  time.Time
	maxDate  time.Time
	pxPerSec float64
	baseline float64
	pxPerLvl float64
	minYear  int
	maxYear  int
}

func newScale(entries []Entry, width, height float64) scale {
	minYear, maxYear := entries[0].Released.Year(), entries[0].Released.Year()
	minLevel, maxLevel := 0, 0
	for _, e := range entries {
		if y := e.Released.Year(); y < minYear {
			minYear = y
		}
		if y := e.Released.Year(); y > maxYear {
			maxYear = y
		}
		if e.Level < minLevel {
			minLevel = e.Level
		}
		if e.Level > maxLevel {
			maxLevel = e.Level
		}
	}

	// The axis spans January 1 of the first year through January 1 of the
	// year after the last release, matching the year tick range.
	minDate := time.Date(minYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxDate := time.Date(maxYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	span := maxLevel - minLevel
	if span == 0 {
		span = 1
	}
	plotHeight := height - marginTop - marginBottom
	pxPerLvl := plotHeight / float64(span+2) // one level of headroom on each side

	return scale{
		minDate:  minDate,
		maxDate:  maxDate,
		pxPerSec: (width - 2*marginX) / maxDate.Sub(minDate).Seconds(),
		baseline: marginTop + float64(maxLevel+1)*pxPerLvl,
		pxPerLvl: pxPerLvl,
		minYear:  minYear,
		maxYear:  maxYear,
	}
}

// x maps a date to a horizontal position.
func (s scale) x(t time.Time) float64 {
	return marginX + t.Sub(s.minDate).Seconds()*s.pxPerSec
}

// y maps a level to a vertical position. Positive levels go up.
func (s scale) y(level int) float64 {
	return s.baseline - float64(level)*s.pxPerLvl
}

func (r *svgRenderer) renderTitle(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="40" font-size="26" text-anchor="middle" fill="black">%s</text>`+"\n",
		r.width/2, escape(r.title))
}

func (r *svgRenderer) renderAxis(buf *bytes.Buffer, s scale) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black" stroke-width="2"/>`+"\n",
		marginX, s.baseline, r.width-marginX, s.baseline)

	for year := s.minYear; year <= s.maxYear+1; year++ {
		x := s.x(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black" stroke-width="2"/>`+"\n",
			x, s.baseline, x, s.baseline+6)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="12" text-anchor="middle" fill="black">%d</text>`+"\n",
			x, s.baseline+22, year)
	}
}

func (r *svgRenderer) renderStems(buf *bytes.Buffer, entries []Entry, s scale) {
	for _, e := range entries {
		x := s.x(e.Released)
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			x, s.baseline, x, s.y(e.Level), stemColor)
	}
}

func (r *svgRenderer) renderMarkers(buf *bytes.Buffer, entries []Entry, s scale) {
	for _, e := range entries {
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="4" fill="white" stroke="%s" stroke-width="1.5"/>`+"\n",
			s.x(e.Released), s.baseline, stemColor)
	}
}

func (r *svgRenderer) renderLabels(buf *bytes.Buffer, entries []Entry, s scale) {
	for _, e := range entries {
		text := fmt.Sprintf("#%d %s (%s)", e.Order, e.Game, e.Model)
		x := s.x(e.Released)
		y := s.y(e.Level)
		w := float64(len(text))*charWidth + 8

		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			x, y-labelHeight/2, w, labelHeight, e.LabelColor)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="11" fill="%s">%s</text>`+"\n",
			x+4, y+4, e.TextColor, escape(text))
	}
}

// renderLegend draws the full series catalogue as color swatches in the
// lower right corner, mirroring the reference figure.
func (r *svgRenderer) renderLegend(buf *bytes.Buffer) {
	entries := palette.Entries()
	rowHeight := 18.0
	x := r.width - marginX - 180
	y := r.height - marginBottom - float64(len(entries))*rowHeight

	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="13" fill="black">Series</text>`+"\n", x, y-8)
	for i, e := range entries {
		rowY := y + float64(i)*rowHeight
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="24" height="10" fill="%s"/>`+"\n", x, rowY, e.Label)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="12" fill="black">%s</text>`+"\n",
			x+32, rowY+9, escape(e.Series))
	}
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return escaper.Replace(s)
}
