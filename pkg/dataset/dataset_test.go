package dataset

import (
	"testing"
	"time"

	"github.com/retroviz/gamewatch/pkg/errors"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// testCatalogue is a small slice of the real catalogue: two Silver games,
// one Gold, one Wide Screen and one Multi Screen release.
func testCatalogue() *Dataset {
	return &Dataset{Games: []Game{
		{Name: "Ball", Model: "AC-01", Series: "Silver", Released: date(1980, 4, 28), Order: 1, Produced: 400000},
		{Name: "Flagman", Model: "FL-02", Series: "Silver", Released: date(1980, 6, 5), Order: 2, Produced: 250000},
		{Name: "Manhole", Model: "MH-06", Series: "Gold", Released: date(1981, 1, 29), Order: 6, Produced: 1000000},
		{Name: "Parachute", Model: "PR-21", Series: "Wide Screen", Released: date(1981, 6, 19), Order: 9, Produced: 1200000},
		{Name: "Oil Panic", Model: "OP-51", Series: "Multi Screen", Released: date(1982, 5, 28), Order: 17, Produced: 1150000},
	}}
}

func TestLabel(t *testing.T) {
	g := Game{Name: "Ball", Model: "AC-01"}
	if got, want := g.Label(), "Ball (AC-01)"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
}

func TestFilterMaxYear(t *testing.T) {
	tests := []struct {
		name    string
		maxYear int
		want    int
	}{
		{"no filter", 0, 5},
		{"1980 only", 1980, 2},
		{"through 1981", 1981, 4},
		{"before catalogue", 1979, 0},
		{"after catalogue", 1990, 5},
	}

	d := testCatalogue()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.FilterMaxYear(tt.maxYear)
			if got.Len() != tt.want {
				t.Errorf("FilterMaxYear(%d) kept %d records, want %d", tt.maxYear, got.Len(), tt.want)
			}
		})
	}

	// The filter copies; mutating the result must not touch the source.
	filtered := d.FilterMaxYear(0)
	filtered.Games[0].Name = "changed"
	if d.Games[0].Name != "Ball" {
		t.Error("FilterMaxYear result shares backing storage with the source")
	}
}

func TestSeries(t *testing.T) {
	got := testCatalogue().Series()
	want := []string{"Silver", "Silver", "Gold", "Wide Screen", "Multi Screen"}
	if len(got) != len(want) {
		t.Fatalf("Series() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Series()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReleasesPerYear(t *testing.T) {
	got := testCatalogue().ReleasesPerYear()
	want := []YearCount{{1980, 2}, {1981, 2}, {1982, 1}}

	if len(got) != len(want) {
		t.Fatalf("ReleasesPerYear() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ReleasesPerYear()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReleasesPerYearFillsGaps(t *testing.T) {
	d := &Dataset{Games: []Game{
		{Name: "Ball", Series: "Silver", Released: date(1980, 4, 28), Order: 1},
		{Name: "Mario's Bombs Away", Series: "Panorama Screen", Released: date(1983, 11, 10), Order: 30},
	}}
	got := d.ReleasesPerYear()
	want := []YearCount{{1980, 1}, {1981, 0}, {1982, 0}, {1983, 1}}
	if len(got) != len(want) {
		t.Fatalf("ReleasesPerYear() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ReleasesPerYear()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReleasesPerSeries(t *testing.T) {
	got := testCatalogue().ReleasesPerSeries()
	want := []SeriesCount{
		{"Silver", 2, 1980},
		{"Gold", 1, 1981},
		{"Wide Screen", 1, 1981},
		{"Multi Screen", 1, 1982},
	}

	if len(got) != len(want) {
		t.Fatalf("ReleasesPerSeries() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ReleasesPerSeries()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestColumn(t *testing.T) {
	d := testCatalogue()

	produced, err := d.Column(ColumnProduced)
	if err != nil {
		t.Fatalf("Column(produced): %v", err)
	}
	if produced[0] != 400000 || produced[4] != 1150000 {
		t.Errorf("Column(produced) = %v", produced)
	}

	order, err := d.Column(ColumnOrder)
	if err != nil {
		t.Fatalf("Column(order): %v", err)
	}
	if order[2] != 6 {
		t.Errorf("Column(order)[2] = %v, want 6", order[2])
	}

	_, err = d.Column("price")
	if err == nil {
		t.Fatal("Column(price) should fail")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidColumn) {
		t.Errorf("Column(price) error code = %v, want INVALID_COLUMN", errors.CodeOf(err))
	}
}

func TestMaxProduced(t *testing.T) {
	if got := testCatalogue().MaxProduced(); got != 1200000 {
		t.Errorf("MaxProduced() = %d, want 1200000", got)
	}
	empty := &Dataset{}
	if got := empty.MaxProduced(); got != 0 {
		t.Errorf("MaxProduced() on empty = %d, want 0", got)
	}
}

func TestYearSpan(t *testing.T) {
	minYear, maxYear, ok := testCatalogue().YearSpan()
	if !ok || minYear != 1980 || maxYear != 1982 {
		t.Errorf("YearSpan() = %d, %d, %v; want 1980, 1982, true", minYear, maxYear, ok)
	}

	if _, _, ok := (&Dataset{}).YearSpan(); ok {
		t.Error("YearSpan() on empty dataset should report ok == false")
	}
}
