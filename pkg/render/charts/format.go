package charts

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
)

// FormatMagnitude renders a numeric value as an abbreviated string:
// values of a million or more as "1.5M", thousands as "350K" (rounded to
// the nearest integer), everything below a thousand unchanged.
func FormatMagnitude(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.0fK", v/1e3)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// MagnitudeTicks is a plot.Ticker that relabels the default ticks with
// FormatMagnitude. Used on the quantity axis of the produced chart.
type MagnitudeTicks struct{}

// Ticks implements plot.Ticker.
func (MagnitudeTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" {
			continue
		}
		ticks[i].Label = FormatMagnitude(t.Value)
	}
	return ticks
}

var _ plot.Ticker = MagnitudeTicks{}
