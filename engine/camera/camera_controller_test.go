package camera

import (
	"math"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// angleDiff returns the signed difference a-b folded into (-π, π].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

func TestNewCameraControllerDefaults(t *testing.T) {
	cc := NewCameraController()
	s := cc.State()
	if s.Azimuth != DefaultAzimuth || s.Elevation != DefaultElevation || s.Distance != DefaultDistance {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if cc.MinDistance() != 1.75 || cc.MaxDistance() != 10.0 {
		t.Fatalf("unexpected distance bounds: [%v, %v]", cc.MinDistance(), cc.MaxDistance())
	}
	if !almostEqual(cc.Fov(), math.Pi/3, tol) {
		t.Fatalf("unexpected fov: %v", cc.Fov())
	}
}

func TestNewCameraControllerNormalizesOptions(t *testing.T) {
	cc := NewCameraController(
		WithAzimuth(-math.Pi/2),
		WithElevation(10),
		WithDistance(100),
	)
	if !almostEqual(cc.Azimuth(), 3*math.Pi/2, tol) {
		t.Fatalf("azimuth not wrapped: %v", cc.Azimuth())
	}
	if cc.Elevation() >= math.Pi/2 {
		t.Fatalf("elevation not clamped: %v", cc.Elevation())
	}
	if cc.Distance() != 10.0 {
		t.Fatalf("distance not clamped: %v", cc.Distance())
	}
}

func TestWithDistanceBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		distance float64
		wantMin  float64
		wantMax  float64
		wantDist float64
	}{
		{"ordered", 2, 8, 9, 2, 8, 8},
		{"inverted bounds are swapped", 10, 1, 0.5, 1, 10, 1},
		{"inverted bounds keep distance inside", 10, 3, 5, 3, 10, 5},
		{"non-positive minimum keeps defaults", 0, 4, 5, DefaultMinDistance, DefaultMaxDistance, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := NewCameraController(WithDistanceBounds(tt.min, tt.max), WithDistance(tt.distance))
			if cc.MinDistance() != tt.wantMin || cc.MaxDistance() != tt.wantMax {
				t.Fatalf("bounds = [%v, %v], want [%v, %v]", cc.MinDistance(), cc.MaxDistance(), tt.wantMin, tt.wantMax)
			}
			if cc.Distance() != tt.wantDist {
				t.Fatalf("distance = %v, want %v", cc.Distance(), tt.wantDist)
			}
			if cc.Distance() < cc.MinDistance() || cc.Distance() > cc.MaxDistance() {
				t.Fatalf("distance %v outside [%v, %v]", cc.Distance(), cc.MinDistance(), cc.MaxDistance())
			}
		})
	}
}

func TestApplyDragScenario(t *testing.T) {
	cc := NewCameraController(WithAzimuth(1.0), WithElevation(0.2), WithDistance(5))

	cc.ApplyDrag(100, 0, 1000)

	// 100 * 0.15 / 1000 * min(25, 37) = 0.375
	if !almostEqual(cc.Azimuth(), 0.625, tol) {
		t.Fatalf("azimuth = %v, want 0.625", cc.Azimuth())
	}
	if cc.Elevation() != 0.2 {
		t.Fatalf("elevation changed: %v", cc.Elevation())
	}
}

func TestApplyDragWrapsAzimuth(t *testing.T) {
	cc := NewCameraController(WithAzimuth(DefaultAzimuth), WithDistance(5))

	cc.ApplyDrag(100, 0, 1000)

	az := cc.Azimuth()
	if az < 0 || az >= 2*math.Pi {
		t.Fatalf("azimuth %v outside [0, 2π)", az)
	}
	if d := angleDiff(az, DefaultAzimuth); !almostEqual(d, -0.375, 1e-9) {
		t.Fatalf("azimuth moved by %v, want -0.375", d)
	}
}

func TestApplyDragDampingCap(t *testing.T) {
	// distance² = 100 > 37, so the cap applies
	cc := NewCameraController(WithAzimuth(1.0), WithDistance(10))
	cc.ApplyDrag(0, 10, 1000)

	want := 0.5 + 10*0.15/1000*37
	if !almostEqual(cc.Elevation(), want, tol) {
		t.Fatalf("elevation = %v, want %v", cc.Elevation(), want)
	}
}

func TestApplyDragElevationStaysOffPoles(t *testing.T) {
	deltas := []float64{1e3, 1e6, 1e12, -1e3, -1e6, -1e12, math.MaxFloat64 / 1e10}
	for _, dy := range deltas {
		cc := NewCameraController()
		cc.ApplyDrag(0, dy, 480)
		e := cc.Elevation()
		if !(e > -math.Pi/2 && e < math.Pi/2) {
			t.Fatalf("dy=%g: elevation %v escaped (-π/2, π/2)", dy, e)
		}
		if !almostEqual(math.Abs(e), math.Pi/2-DefaultElevationMargin, 1e-12) {
			t.Fatalf("dy=%g: elevation %v not pinned to the pole margin", dy, e)
		}
	}
}

func TestApplyDragZeroIsIdempotent(t *testing.T) {
	for _, h := range []float64{1, 480, 1080, 0, -5} {
		cc := NewCameraController(WithAzimuth(2.5), WithElevation(-0.7), WithDistance(3.3))
		before := cc.State()
		cc.ApplyDrag(0, 0, h)
		if after := cc.State(); after != before {
			t.Fatalf("h=%v: state changed from %+v to %+v", h, before, after)
		}
	}
}

func TestApplyDragIgnoresDegenerateViewport(t *testing.T) {
	cc := NewCameraController()
	before := cc.State()
	cc.ApplyDrag(50, 50, 0)
	if cc.State() != before {
		t.Fatalf("zero-height viewport changed state: %+v", cc.State())
	}
}

func TestApplyZoom(t *testing.T) {
	cases := []struct {
		name   string
		start  float64
		deltaY float64
		want   float64
	}{
		{"zoom in within bounds", 5, -500, 2.5},
		{"zoom out within bounds", 5, 500, 7.5},
		{"zoom in clamps to min", 5, -5000, 1.75},
		{"zoom out clamps to max", 5, 5000, 10.0},
		{"no delta", 4, 0, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cc := NewCameraController(WithDistance(c.start))
			cc.ApplyZoom(c.deltaY)
			if !almostEqual(cc.Distance(), c.want, tol) {
				t.Fatalf("distance = %v, want %v", cc.Distance(), c.want)
			}
		})
	}
}

func TestApplyZoomAlwaysInBounds(t *testing.T) {
	cc := NewCameraController()
	for i := -20; i <= 20; i++ {
		cc.ApplyZoom(float64(i) * 137.5)
		d := cc.Distance()
		if d < 1.75 || d > 10.0 {
			t.Fatalf("step %d: distance %v out of bounds", i, d)
		}
	}
}

func TestEyePositionNormMatchesDistance(t *testing.T) {
	for _, az := range []float64{0, 0.3, 1, 2, 4, 6} {
		for _, el := range []float64{-1.5, -0.5, 0, 0.5, 1.5} {
			for _, d := range []float64{1.75, 5, 10} {
				cc := NewCameraController(WithAzimuth(az), WithElevation(el), WithDistance(d))
				if n := cc.EyePosition().Len(); !almostEqual(n, d, 1e-9) {
					t.Fatalf("az=%v el=%v d=%v: |eye| = %v", az, el, d, n)
				}
			}
		}
	}
}

func TestEyePositionAxes(t *testing.T) {
	cc := NewCameraController(WithAzimuth(0), WithElevation(0), WithDistance(2))
	eye := cc.EyePosition()
	if !almostEqual(eye[0], 2, tol) || !almostEqual(eye[1], 0, tol) || !almostEqual(eye[2], 0, tol) {
		t.Fatalf("eye = %v, want (2,0,0)", eye)
	}

	cc.SetState(OrbitState{Azimuth: math.Pi / 2, Elevation: 0, Distance: 2})
	eye = cc.EyePosition()
	if !almostEqual(eye[0], 0, 1e-12) || !almostEqual(eye[2], 2, tol) {
		t.Fatalf("eye = %v, want (0,0,2)", eye)
	}

	if cc.Target().Len() != 0 {
		t.Fatalf("target not at origin: %v", cc.Target())
	}
}

func TestSetStateReappliesInvariants(t *testing.T) {
	cc := NewCameraController()
	cc.SetState(OrbitState{Azimuth: 7 * math.Pi, Elevation: -4, Distance: 0.1})
	s := cc.State()
	if !almostEqual(s.Azimuth, math.Pi, 1e-9) {
		t.Fatalf("azimuth = %v, want π", s.Azimuth)
	}
	if s.Elevation <= -math.Pi/2 {
		t.Fatalf("elevation = %v reached the pole", s.Elevation)
	}
	if s.Distance != 1.75 {
		t.Fatalf("distance = %v, want 1.75", s.Distance)
	}
}
