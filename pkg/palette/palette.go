// Package palette defines the fixed color scheme for Game & Watch series.
//
// Every series in the catalogue maps to a label color (the fill used for
// bars and timeline label boxes) and a text color (chosen for contrast on
// top of the label color). The table is immutable and initialized at
// package load; consumers get copies, never the backing slice.
package palette

import (
	"fmt"
	"image/color"

	"github.com/retroviz/gamewatch/pkg/errors"
)

// Entry maps a series name to its rendering colors.
type Entry struct {
	Series string // series name, e.g. "Wide Screen"
	Label  string // label/fill color, "#RRGGBB"
	Text   string // text color drawn on top of Label, "#RRGGBB"
}

// entries is the canonical series catalogue in legend order.
var entries = []Entry{
	{"Silver", "#C0C0C0", "#FFFFFF"},
	{"Gold", "#FFD700", "#131515"},
	{"Wide Screen", "#D7CA7C", "#46422C"},
	{"Multi Screen", "#FF5F00", "#FFFFFF"},
	{"New Wide Screen", "#3C7E72", "#FFFFFF"},
	{"Table Top", "#FFFAC8", "#6E4931"},
	{"Panorama Screen", "#BA46DC", "#FFFFFF"},
	{"Super Color", "#000000", "#FFFFFF"},
	{"Micro VS. System", "#E6194B", "#FFFFFF"},
	{"Crystal Screen", "#275A76", "#FFFFFF"},
	{"Special Edition", "#FFE119", "#131515"},
	{"Reissue", "#B73E38", "#FFFFFF"},
	{"Colour Screen", "#3CB44B", "#FFFFFF"},
}

// bySeries indexes entries by series name.
var bySeries = func() map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.Series] = e
	}
	return m
}()

// Entries returns the full catalogue in legend order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the palette entry for a series name.
// Unknown names return an UNKNOWN_SERIES error.
func Lookup(series string) (Entry, error) {
	e, ok := bySeries[series]
	if !ok {
		return Entry{}, errors.New(errors.ErrCodeUnknownSeries, "unknown series: %q", series)
	}
	return e, nil
}

// LabelColor returns the label color for a series as an RGBA value.
func LabelColor(series string) (color.RGBA, error) {
	e, err := Lookup(series)
	if err != nil {
		return color.RGBA{}, err
	}
	return ParseHex(e.Label)
}

// TextColor returns the text color for a series as an RGBA value.
func TextColor(series string) (color.RGBA, error) {
	e, err := Lookup(series)
	if err != nil {
		return color.RGBA{}, err
	}
	return ParseHex(e.Text)
}

// ParseHex converts a "#RRGGBB" string into an opaque RGBA color.
func ParseHex(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
