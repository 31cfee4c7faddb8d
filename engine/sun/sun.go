// Package sun derives the direction of the sun in the scene frame from a wall-clock instant.
//
// The scene frame is Y-up: +Y points to the planet's north pole and the equatorial plane is XZ.
// Longitude 180° faces +X and longitude 90°E faces -Z, matching the equirectangular mapping used
// by the fragment shader and the preview renderer (lon = atan2(-z, -x), lat = asin(y)).
package sun

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	secondsPerDay = 86400.0

	// Obliquity is the amplitude of the declination approximation (≈ 23.5°).
	Obliquity = 0.41

	// SolsticePhase shifts the cosine so the December solstice lands near day 355.
	SolsticePhase = 0.0274
)

// Direction returns the unit sun direction for instant t using the seasonal approximation.
//
// The time of day is the wall clock after shifting t by its zone offset, and the declination is a
// cosine of the fraction of t's calendar year that has elapsed.
//
// Parameters:
//   - t: the instant; its Location defines the calendar year and the zone offset
//
// Returns:
//   - mgl64.Vec3: unit vector pointing from the planet towards the sun
func Direction(t time.Time) mgl64.Vec3 {
	dayAngle := 2 * math.Pi * SecondsOfDay(t) / secondsPerDay

	tilt := math.Cos(2*math.Pi*(YearProgress(t)+SolsticePhase)) * math.Sin(Obliquity)
	tiltCos := math.Cos(math.Asin(tilt))

	sinDay, cosDay := math.Sincos(-dayAngle)
	return mgl64.Vec3{tiltCos * cosDay, tilt, tiltCos * sinDay}
}

// SecondsOfDay returns whole seconds since midnight of the clock obtained by shifting t by its zone
// offset and reading it back in t's location. For a fixed-offset zone this is the UTC clock.
//
// Parameters:
//   - t: the instant
//
// Returns:
//   - float64: seconds in [0, 86400)
func SecondsOfDay(t time.Time) float64 {
	_, offset := t.Zone()
	shifted := t.Add(-time.Duration(offset) * time.Second)
	h, m, s := shifted.Clock()
	return float64(h*3600 + m*60 + s)
}

// YearProgress returns the fraction of t's calendar year that has elapsed at t.
// The year runs from Jan 1 00:00 to the following Jan 1 00:00 (exclusive) in t's location.
//
// Parameters:
//   - t: the instant
//
// Returns:
//   - float64: progress in [0, 1)
func YearProgress(t time.Time) float64 {
	loc := t.Location()
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
	end := time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, loc)
	return float64(t.Sub(start)) / float64(end.Sub(start))
}
