// Package timelinesvg renders the release timeline: every game annotated
// along a horizontal date axis, its label lifted to a per-record vertical
// level and colored by series.
//
// The output is hand-built SVG. Converting it to PNG or PDF happens in the
// parent render package via rsvg-convert.
package timelinesvg

import (
	"time"

	"github.com/retroviz/gamewatch/pkg/dataset"
	"github.com/retroviz/gamewatch/pkg/errors"
	"github.com/retroviz/gamewatch/pkg/palette"
	"github.com/retroviz/gamewatch/pkg/timeline"
)

// Entry is one positioned timeline annotation.
type Entry struct {
	Order      int       // release order, shown as "#N" in the label
	Game       string    // game name
	Model      string    // model identifier
	Series     string    // series name (legend key)
	Released   time.Time // position on the date axis
	Level      int       // signed vertical offset
	LabelColor string    // fill color of the label box, "#RRGGBB"
	TextColor  string    // text color inside the label box, "#RRGGBB"
}

// Build derives timeline entries from a dataset. With manual set, levels
// replay the hand-tuned table (which covers at most the full 63-game
// catalogue); otherwise they are generated from the series sequence.
// Records whose series is not in the palette fail with UNKNOWN_SERIES.
func Build(ds *dataset.Dataset, manual bool) ([]Entry, error) {
	if ds.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "no records to plot")
	}

	var levels []int
	if manual {
		levels = timeline.ManualLevels(ds.Len())
	} else {
		levels = timeline.GenerateLevels(ds.Series())
	}

	entries := make([]Entry, ds.Len())
	for i, g := range ds.Games {
		pal, err := palette.Lookup(g.Series)
		if err != nil {
			return nil, err
		}
		entries[i] = Entry{
			Order:      g.Order,
			Game:       g.Name,
			Model:      g.Model,
			Series:     g.Series,
			Released:   g.Released,
			Level:      levels[i],
			LabelColor: pal.Label,
			TextColor:  pal.Text,
		}
	}
	return entries, nil
}
