package solar

import (
	"testing"
	"time"

	"github.com/litescript/sunband/internal/astro"
)

var seattle = astro.Observer{LatDeg: 47.6062, LonDeg: -122.3321, Name: "Seattle"}

func TestSolarNoon(t *testing.T) {
	// Seattle is 122.33 degrees west, so its solar noon falls about
	// 8h09m after Greenwich clock noon, shifted by the equation of time.
	noon := SolarNoon(date(2024, 6, 21), seattle.LonDeg)

	lo := time.Date(2024, 6, 21, 19, 50, 0, 0, time.UTC)
	hi := time.Date(2024, 6, 21, 20, 30, 0, 0, time.UTC)
	if noon.Before(lo) || noon.After(hi) {
		t.Errorf("SolarNoon() = %v, want between %v and %v", noon, lo, hi)
	}
}

func TestSolarNoonIsDailyMaximum(t *testing.T) {
	noon := SolarNoon(date(2024, 9, 1), seattle.LonDeg)
	altNoon := astro.Altitude(noon, seattle)

	for _, offset := range []time.Duration{-2 * time.Hour, -30 * time.Minute, 30 * time.Minute, 2 * time.Hour} {
		if alt := astro.Altitude(noon.Add(offset), seattle); alt > altNoon+0.01 {
			t.Errorf("altitude %v from noon = %.3f° exceeds noon altitude %.3f°", offset, alt, altNoon)
		}
	}
}

func TestEvents(t *testing.T) {
	tests := []struct {
		name       string
		day        time.Time
		obs        astro.Observer
		minLength  time.Duration
		maxLength  time.Duration
		polarDay   bool
		polarNight bool
	}{
		{
			name:      "Seattle June solstice - long day",
			day:       date(2024, 6, 21),
			obs:       seattle,
			minLength: 15 * time.Hour,
			maxLength: 17 * time.Hour,
		},
		{
			name:      "Seattle December solstice - short day",
			day:       date(2024, 12, 21),
			obs:       seattle,
			minLength: 7 * time.Hour,
			maxLength: 9*time.Hour - time.Minute,
		},
		{
			name:      "Equator at equinox - half day",
			day:       date(2024, 3, 20),
			obs:       astro.Observer{LatDeg: 0, LonDeg: 0},
			minLength: 11*time.Hour + 50*time.Minute,
			maxLength: 12*time.Hour + 20*time.Minute,
		},
		{
			name:     "Svalbard June solstice - midnight sun",
			day:      date(2024, 6, 21),
			obs:      astro.Observer{LatDeg: 78.22, LonDeg: 15.65},
			polarDay: true,
		},
		{
			name:       "Svalbard December solstice - polar night",
			day:        date(2024, 12, 21),
			obs:        astro.Observer{LatDeg: 78.22, LonDeg: 15.65},
			polarNight: true,
		},
		{
			name:     "North pole June solstice",
			day:      date(2024, 6, 21),
			obs:      astro.Observer{LatDeg: 90, LonDeg: 0},
			polarDay: true,
		},
		{
			name:       "North pole December solstice",
			day:        date(2024, 12, 21),
			obs:        astro.Observer{LatDeg: 90, LonDeg: 0},
			polarNight: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Events(tt.day, tt.obs)

			if ev.SolarNoon.IsZero() {
				t.Fatal("SolarNoon must always be set")
			}

			if tt.polarDay || tt.polarNight {
				if ev.PolarDay != tt.polarDay || ev.PolarNight != tt.polarNight {
					t.Fatalf("Events() polar flags = day:%v night:%v, want day:%v night:%v",
						ev.PolarDay, ev.PolarNight, tt.polarDay, tt.polarNight)
				}
				if ev.HasSunrise() {
					t.Error("polar day/night must not report sunrise")
				}
				want := time.Duration(0)
				if tt.polarDay {
					want = 24 * time.Hour
				}
				if got := ev.DayLength(); got != want {
					t.Errorf("DayLength() = %v, want %v", got, want)
				}
				return
			}

			if !ev.HasSunrise() {
				t.Fatal("expected sunrise/sunset to exist")
			}
			if !ev.Sunset.After(ev.Sunrise) {
				t.Fatalf("Sunset %v not after Sunrise %v", ev.Sunset, ev.Sunrise)
			}
			if got := ev.DayLength(); got < tt.minLength || got > tt.maxLength {
				t.Errorf("DayLength() = %v, want between %v and %v", got, tt.minLength, tt.maxLength)
			}
			if ev.Sunrise.After(ev.SolarNoon) || ev.Sunset.Before(ev.SolarNoon) {
				t.Error("solar noon must fall between sunrise and sunset")
			}
		})
	}
}

func TestEventsSunNearHorizonAtSunrise(t *testing.T) {
	ev := Events(date(2024, 9, 1), seattle)
	alt := astro.Altitude(ev.Sunrise, seattle)
	if alt < HorizonAltitudeDeg-0.5 || alt > HorizonAltitudeDeg+0.5 {
		t.Errorf("altitude at sunrise = %.2f°, want near %.2f°", alt, HorizonAltitudeDeg)
	}
}
