package charts

import (
	"bytes"
	"testing"
	"time"

	"github.com/retroviz/gamewatch/pkg/dataset"
	"github.com/retroviz/gamewatch/pkg/errors"
)

func testCatalogue() *dataset.Dataset {
	date := func(y, m, d int) time.Time {
		return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	}
	return &dataset.Dataset{Games: []dataset.Game{
		{Name: "Ball", Model: "AC-01", Series: "Silver", Released: date(1980, 4, 28), Order: 1, Produced: 400000},
		{Name: "Flagman", Model: "FL-02", Series: "Silver", Released: date(1980, 6, 5), Order: 2, Produced: 250000},
		{Name: "Manhole", Model: "MH-06", Series: "Gold", Released: date(1981, 1, 29), Order: 6, Produced: 1000000},
		{Name: "Parachute", Model: "PR-21", Series: "Wide Screen", Released: date(1981, 6, 19), Order: 9, Produced: 1200000},
	}}
}

func TestProducedSVG(t *testing.T) {
	data, err := Produced(testCatalogue(), Options{Format: FormatSVG})
	if err != nil {
		t.Fatalf("Produced: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("output does not look like SVG")
	}
	for _, want := range []string{"Ball (AC-01)", "Silver", "Gold"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestProducedUnknownSeries(t *testing.T) {
	ds := testCatalogue()
	ds.Games[0].Series = "Virtual Boy"

	_, err := Produced(ds, Options{Format: FormatSVG})
	if err == nil {
		t.Fatal("Produced should fail for a series outside the palette")
	}
	if !errors.HasCode(err, errors.ErrCodeUnknownSeries) {
		t.Errorf("error code = %v, want UNKNOWN_SERIES", errors.CodeOf(err))
	}
}

func TestProducedEmpty(t *testing.T) {
	_, err := Produced(&dataset.Dataset{}, Options{Format: FormatSVG})
	if err == nil {
		t.Fatal("Produced should fail for an empty dataset")
	}
}

func TestReleasedPerYearSVG(t *testing.T) {
	data, err := ReleasedPerYear(testCatalogue(), Options{Format: FormatSVG})
	if err != nil {
		t.Fatalf("ReleasedPerYear: %v", err)
	}
	for _, want := range []string{"1980", "1981"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("SVG missing year label %q", want)
		}
	}
}

func TestReleasedPerSeriesSVG(t *testing.T) {
	data, err := ReleasedPerSeries(testCatalogue(), Options{Format: FormatSVG})
	if err != nil {
		t.Fatalf("ReleasedPerSeries: %v", err)
	}
	for _, want := range []string{"Silver", "Gold", "Wide Screen"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("SVG missing series label %q", want)
		}
	}
}

func TestOutliers(t *testing.T) {
	data, err := Outliers(testCatalogue(), dataset.ColumnProduced, Options{Format: FormatSVG})
	if err != nil {
		t.Fatalf("Outliers: %v", err)
	}
	if !bytes.Contains(data, []byte("Histogram of 'produced'")) {
		t.Error("SVG missing histogram title")
	}
	if !bytes.Contains(data, []byte("Box plot of 'produced'")) {
		t.Error("SVG missing box plot title")
	}
}

func TestOutliersUnknownColumn(t *testing.T) {
	_, err := Outliers(testCatalogue(), "price", Options{Format: FormatSVG})
	if err == nil {
		t.Fatal("Outliers should fail for an unknown column")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidColumn) {
		t.Errorf("error code = %v, want INVALID_COLUMN", errors.CodeOf(err))
	}
}

func TestOutliersPNG(t *testing.T) {
	data, err := Outliers(testCatalogue(), dataset.ColumnOrder, Options{Format: FormatPNG})
	if err != nil {
		t.Fatalf("Outliers png: %v", err)
	}
	// PNG magic bytes.
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output does not look like PNG")
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"jpg", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}
