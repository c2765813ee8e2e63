// Package dataset models the Game & Watch release catalogue.
//
// A dataset is an ordered collection of game records loaded from a TOML
// file. Records are immutable once loaded; filtering and aggregation
// operate on copies, so chart renderers never share mutable state.
package dataset

import (
	"sort"
	"time"

	"github.com/retroviz/gamewatch/pkg/errors"
)

// Game is one release in the catalogue.
type Game struct {
	Name     string    `toml:"game"`     // game name, e.g. "Ball"
	Model    string    `toml:"model"`    // model identifier, e.g. "AC-01"
	Series   string    `toml:"series"`   // product series, must be a palette key
	Released time.Time `toml:"released"` // date of release
	Order    int       `toml:"order"`    // chronological release order (1-based)
	Produced int       `toml:"produced"` // units produced
}

// Label returns the combined display label used on bar chart axes.
func (g Game) Label() string {
	return g.Name + " (" + g.Model + ")"
}

// Dataset is an ordered collection of game records.
type Dataset struct {
	Games []Game `toml:"games"`
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.Games) }

// FilterMaxYear returns a copy containing only records released in maxYear
// or earlier. A maxYear of zero disables the filter and still copies.
func (d *Dataset) FilterMaxYear(maxYear int) *Dataset {
	out := &Dataset{Games: make([]Game, 0, len(d.Games))}
	for _, g := range d.Games {
		if maxYear != 0 && g.Released.Year() > maxYear {
			continue
		}
		out.Games = append(out.Games, g)
	}
	return out
}

// Series returns the series name of every record, in record order.
func (d *Dataset) Series() []string {
	out := make([]string, len(d.Games))
	for i, g := range d.Games {
		out[i] = g.Series
	}
	return out
}

// YearCount is the number of releases in one calendar year.
type YearCount struct {
	Year  int
	Count int
}

// ReleasesPerYear aggregates record counts by release year, covering every
// year from the earliest to the latest release (zero-count years included).
func (d *Dataset) ReleasesPerYear() []YearCount {
	if len(d.Games) == 0 {
		return nil
	}
	counts := make(map[int]int)
	minYear, maxYear := d.Games[0].Released.Year(), d.Games[0].Released.Year()
	for _, g := range d.Games {
		y := g.Released.Year()
		counts[y]++
		if y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}

	out := make([]YearCount, 0, maxYear-minYear+1)
	for y := minYear; y <= maxYear; y++ {
		out = append(out, YearCount{Year: y, Count: counts[y]})
	}
	return out
}

// SeriesCount is the number of releases in one product series.
type SeriesCount struct {
	Series string
	Count  int
	From   int // year of the series' first release
}

// ReleasesPerSeries aggregates record counts by series, ordered by the
// year each series first appeared.
func (d *Dataset) ReleasesPerSeries() []SeriesCount {
	counts := make(map[string]*SeriesCount)
	order := make([]string, 0)
	for _, g := range d.Games {
		sc, ok := counts[g.Series]
		if !ok {
			sc = &SeriesCount{Series: g.Series, From: g.Released.Year()}
			counts[g.Series] = sc
			order = append(order, g.Series)
		}
		sc.Count++
		if y := g.Released.Year(); y < sc.From {
			sc.From = y
		}
	}

	out := make([]SeriesCount, 0, len(order))
	for _, s := range order {
		out = append(out, *counts[s])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].From < out[j].From })
	return out
}

// Numeric column names accepted by Column.
const (
	ColumnProduced = "produced"
	ColumnOrder    = "order"
)

// Column extracts a numeric column by name for distribution diagnostics.
// Unknown names return an INVALID_COLUMN error.
func (d *Dataset) Column(name string) ([]float64, error) {
	out := make([]float64, len(d.Games))
	switch name {
	case ColumnProduced:
		for i, g := range d.Games {
			out[i] = float64(g.Produced)
		}
	case ColumnOrder:
		for i, g := range d.Games {
			out[i] = float64(g.Order)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidColumn, "no numeric column %q (have %q, %q)", name, ColumnProduced, ColumnOrder)
	}
	return out, nil
}

// MaxProduced returns the largest produced count, or zero for an empty set.
func (d *Dataset) MaxProduced() int {
	max := 0
	for _, g := range d.Games {
		if g.Produced > max {
			max = g.Produced
		}
	}
	return max
}

// YearSpan returns the first and last release years.
// Empty datasets report ok == false.
func (d *Dataset) YearSpan() (minYear, maxYear int, ok bool) {
	if len(d.Games) == 0 {
		return 0, 0, false
	}
	minYear = d.Games[0].Released.Year()
	maxYear = minYear
	for _, g := range d.Games[1:] {
		y := g.Released.Year()
		if y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}
	return minYear, maxYear, true
}
