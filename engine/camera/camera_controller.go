package camera

import "github.com/go-gl/mathgl/mgl64"

// OrbitState is the angular state of the orbit camera around the origin.
type OrbitState struct {
	// Azimuth is the horizontal angle in radians, kept in [0, 2π).
	Azimuth float64
	// Elevation is the vertical angle in radians, kept strictly inside (-π/2, π/2).
	Elevation float64
	// Distance is the radius from the target.
	Distance float64
}

// CameraController defines the orbit camera driven by pointer input.
// The controller owns the spherical coordinates (azimuth, elevation, distance) around a target
// fixed at the origin and derives the Cartesian eye position from them.
//
// The controller is not safe for concurrent use. It is mutated only from the input callbacks and
// read only from the frame callback, which run on the same goroutine.
type CameraController interface {
	// ApplyDrag converts a pointer drag into azimuth/elevation changes.
	// Sensitivity scales inversely with the viewport height and is damped by min(distance², damping cap),
	// so zoomed-in views rotate more slowly than zoomed-out ones. A positive horizontal drag decreases
	// the azimuth, a positive vertical drag increases the elevation, which is then clamped.
	//
	// Parameters:
	//   - dx: horizontal pointer delta in pixels
	//   - dy: vertical pointer delta in pixels
	//   - viewportHeight: current viewport height in pixels (non-positive heights are ignored)
	ApplyDrag(dx, dy, viewportHeight float64)

	// ApplyZoom scales the distance by (1 + deltaY/1000) and clamps it to the distance bounds.
	//
	// Parameters:
	//   - deltaY: wheel delta in browser units (positive zooms out)
	ApplyZoom(deltaY float64)

	// EyePosition returns the camera's world-space position.
	//
	// Returns:
	//   - mgl64.Vec3: (d·cosβ·cosα, d·sinβ, d·cosβ·sinα)
	EyePosition() mgl64.Vec3

	// Target returns the look-at point, which is always the origin.
	//
	// Returns:
	//   - mgl64.Vec3: the zero vector
	Target() mgl64.Vec3

	// State returns a copy of the current orbit state.
	//
	// Returns:
	//   - OrbitState: azimuth, elevation and distance
	State() OrbitState

	// SetState replaces the orbit state, re-applying the azimuth wrap and the elevation and distance clamps.
	//
	// Parameters:
	//   - s: the new state
	SetState(s OrbitState)

	// Azimuth returns the horizontal angle in radians.
	Azimuth() float64

	// Elevation returns the vertical angle in radians.
	Elevation() float64

	// Distance returns the distance from the target.
	Distance() float64

	// MinDistance returns the minimum allowed distance.
	MinDistance() float64

	// MaxDistance returns the maximum allowed distance.
	MaxDistance() float64

	// Fov returns the vertical field of view in radians handed to the fragment shader.
	Fov() float64
}
