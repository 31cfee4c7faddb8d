package sun

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// Model computes the sun direction for an instant.
type Model interface {
	// Direction returns the unit sun direction in the scene frame.
	Direction(t time.Time) mgl64.Vec3

	// Name returns the identifier accepted by ParseModel.
	Name() string
}

// Approximate is the seasonal cosine model implemented by Direction. It is the default.
// Its declination has the opposite sign of the astronomical one: the sun sits over the
// northern hemisphere in December.
type Approximate struct{}

func (Approximate) Direction(t time.Time) mgl64.Vec3 { return Direction(t) }

func (Approximate) Name() string { return "approximate" }

// Ephemeris uses the apparent solar coordinates from Meeus' algorithms and rotates them into the
// Earth-fixed frame with apparent sidereal time.
type Ephemeris struct{}

func (Ephemeris) Name() string { return "ephemeris" }

func (Ephemeris) Direction(t time.Time) mgl64.Vec3 {
	jd := julian.TimeToJD(t.UTC())

	// Apparent RA/Dec of the Sun, then a unit vector in the inertial frame.
	ra, dec := solar.ApparentEquatorial(jd)
	x := dec.Cos() * ra.Cos()
	y := dec.Cos() * ra.Sin()
	z := dec.Sin()

	// Inertial -> Earth-fixed using Greenwich apparent sidereal time.
	gst := sidereal.Apparent(jd).Angle()
	cosG, sinG := gst.Cos(), gst.Sin()
	xe := x*cosG + y*sinG
	ye := -x*sinG + y*cosG
	ze := z

	// Earth-fixed (Z north, X through Greenwich) -> scene (Y north, longitude 180° on +X).
	return mgl64.Vec3{-xe, ze, -ye}.Normalize()
}

// ParseModel resolves a model by name. An empty name selects Approximate.
//
// Parameters:
//   - name: "approximate" or "ephemeris" (case-insensitive)
//
// Returns:
//   - Model: the selected model
//   - error: error if the name is unknown
func ParseModel(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "approximate", "approx":
		return Approximate{}, nil
	case "ephemeris", "meeus":
		return Ephemeris{}, nil
	default:
		return nil, fmt.Errorf("unknown sun model %q", name)
	}
}
