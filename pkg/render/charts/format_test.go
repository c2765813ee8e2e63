package charts

import "testing"

func TestFormatMagnitude(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{999, "999"},
		{1000, "1K"},
		{2500, "2K"}, // rounds half to even, matching fmt
		{350000, "350K"},
		{999999, "1000K"},
		{1000000, "1.0M"},
		{1500000, "1.5M"},
		{1200000, "1.2M"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatMagnitude(tt.in); got != tt.want {
				t.Errorf("FormatMagnitude(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMagnitudeTicks(t *testing.T) {
	ticks := MagnitudeTicks{}.Ticks(0, 1500000)
	if len(ticks) == 0 {
		t.Fatal("no ticks generated")
	}

	labeled := 0
	for _, tick := range ticks {
		if tick.Label == "" {
			continue
		}
		labeled++
		// Every labeled tick must carry the abbreviated form.
		if want := FormatMagnitude(tick.Value); tick.Label != want {
			t.Errorf("tick at %v labeled %q, want %q", tick.Value, tick.Label, want)
		}
	}
	if labeled == 0 {
		t.Error("no labeled ticks generated")
	}
}
