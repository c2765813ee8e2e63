package dataset

import (
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/retroviz/gamewatch/pkg/errors"
)

// Load reads a catalogue from a TOML file.
//
// The file holds one [[games]] table per record:
//
//	[[games]]
//	game     = "Ball"
//	model    = "AC-01"
//	series   = "Silver"
//	released = 1980-04-28
//	order    = 1
//	produced = 400000
//
// Records are sorted by release order after decoding, so file order does
// not matter. Structural problems (missing fields, bad dates) surface as
// INVALID_DATASET errors.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "read dataset %s", path)
	}
	return Parse(data)
}

// Parse decodes a catalogue from TOML bytes. See Load for the format.
func Parse(data []byte) (*Dataset, error) {
	var d Dataset
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode dataset")
	}

	for i, g := range d.Games {
		if g.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "record %d: missing game name", i+1)
		}
		if g.Series == "" {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "record %d (%s): missing series", i+1, g.Name)
		}
		if g.Released.IsZero() {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "record %d (%s): missing release date", i+1, g.Name)
		}
	}

	sort.SliceStable(d.Games, func(i, j int) bool { return d.Games[i].Order < d.Games[j].Order })
	return &d, nil
}
