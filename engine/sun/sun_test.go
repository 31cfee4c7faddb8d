package sun

import (
	"math"
	"testing"
	"time"
)

func TestDirectionIsUnitLength(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		at := start.Add(time.Duration(i) * 17 * time.Hour)
		d := Direction(at)
		if math.Abs(d.Len()-1) > 1e-9 {
			t.Fatalf("Direction(%v) length = %v, want 1", at, d.Len())
		}
	}
}

func TestDirectionAtUTCMidnightFacesPositiveX(t *testing.T) {
	at := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	d := Direction(at)
	if math.Abs(d.Z()) > 1e-9 {
		t.Errorf("z = %v, want 0", d.Z())
	}
	if d.X() <= 0.9 {
		t.Errorf("x = %v, want close to 1", d.X())
	}
}

func TestDirectionQuarterDayFacesNegativeZ(t *testing.T) {
	at := time.Date(2024, time.March, 20, 6, 0, 0, 0, time.UTC)
	d := Direction(at)
	if math.Abs(d.X()) > 1e-9 {
		t.Errorf("x = %v, want 0", d.X())
	}
	if d.Z() >= -0.9 {
		t.Errorf("z = %v, want close to -1", d.Z())
	}
}

func TestDirectionSeasons(t *testing.T) {
	december := Direction(time.Date(2024, time.December, 21, 12, 0, 0, 0, time.UTC))
	june := Direction(time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC))
	limit := math.Sin(Obliquity)

	if december.Y() <= 0.99*limit {
		t.Errorf("december y = %v, want near %v", december.Y(), limit)
	}
	if june.Y() >= -0.99*limit {
		t.Errorf("june y = %v, want near %v", june.Y(), -limit)
	}
}

func TestSecondsOfDayUsesShiftedClock(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*3600)
	at := time.Date(2024, time.May, 5, 14, 30, 15, 900_000_000, zone)

	got := SecondsOfDay(at)
	want := float64(12*3600 + 30*60 + 15)
	if got != want {
		t.Errorf("SecondsOfDay = %v, want %v", got, want)
	}
	if utc := SecondsOfDay(at.UTC()); utc != got {
		t.Errorf("SecondsOfDay differs between zones: %v local, %v UTC", got, utc)
	}

	// the day angle agrees across zones; the tilt follows each zone's own year boundaries
	local, utc := Direction(at), Direction(at.UTC())
	if d := math.Atan2(local.Z(), local.X()) - math.Atan2(utc.Z(), utc.X()); math.Abs(d) > 1e-9 {
		t.Errorf("day angle differs between zones by %v rad", d)
	}
	if YearProgress(at) == YearProgress(at.UTC()) {
		t.Errorf("expected year progress to use the instant's own location")
	}
}

func TestYearProgress(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"start of year", time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
		{"mid leap year", time.Date(2024, time.July, 2, 0, 0, 0, 0, time.UTC), 183.0 / 366.0},
		{"last second", time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC), 1 - 1.0/(365*86400)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YearProgress(tt.at)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("YearProgress = %v, want %v", got, tt.want)
			}
			if got < 0 || got >= 1 {
				t.Errorf("YearProgress = %v, out of [0,1)", got)
			}
		})
	}
}

func TestEphemerisTracksApproximateDayAngle(t *testing.T) {
	var e Ephemeris
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 48; i++ {
		at := start.Add(time.Duration(i) * 181 * time.Hour)
		a := Direction(at)
		b := e.Direction(at)
		if math.Abs(b.Len()-1) > 1e-9 {
			t.Fatalf("ephemeris length = %v at %v", b.Len(), at)
		}

		// Subsolar longitude differs only by the equation of time (under ~4.5 degrees).
		diff := math.Atan2(a.Z(), a.X()) - math.Atan2(b.Z(), b.X())
		diff = math.Remainder(diff, 2*math.Pi)
		if math.Abs(diff) > 6*math.Pi/180 {
			t.Errorf("day angle diverges at %v: %v rad", at, diff)
		}

		// The seasonal approximation carries the opposite declination sign.
		if math.Abs(a.Y()+b.Y()) > 0.06 {
			t.Errorf("declination mismatch at %v: approx=%v ephemeris=%v", at, a.Y(), b.Y())
		}
	}
}

func TestParseModel(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "approximate", false},
		{"Approximate", "approximate", false},
		{" ephemeris ", "ephemeris", false},
		{"meeus", "ephemeris", false},
		{"ptolemy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseModel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseModel(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseModel(%q): %v", tt.in, err)
			}
			if m.Name() != tt.want {
				t.Errorf("Name = %q, want %q", m.Name(), tt.want)
			}
		})
	}
}
