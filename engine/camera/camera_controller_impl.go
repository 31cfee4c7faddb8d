package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultAzimuth is the initial horizontal angle.
	DefaultAzimuth = 0.3
	// DefaultElevation is the initial vertical angle.
	DefaultElevation = 0.5
	// DefaultDistance is the initial orbit radius.
	DefaultDistance = 5.0
	// DefaultMinDistance keeps the eye outside the planet and its cloud layer.
	DefaultMinDistance = 1.75
	// DefaultMaxDistance is the farthest zoom.
	DefaultMaxDistance = 10.0
	// DefaultElevationMargin keeps the elevation off the poles where the look-at basis degenerates.
	DefaultElevationMargin = 1e-3
	// DefaultDragSensitivity is the angular drag sensitivity before damping.
	DefaultDragSensitivity = 0.15
	// DefaultDampingCap bounds the distance² damping factor.
	DefaultDampingCap = 37.0
	// DefaultFov is the vertical field of view (60°).
	DefaultFov = math.Pi / 3
)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	// Spherical coordinates around the origin
	azimuth   float64
	elevation float64
	distance  float64

	// Constraints
	minDistance     float64
	maxDistance     float64
	elevationMargin float64

	// Drag response
	dragSensitivity float64
	dampingCap      float64

	fov float64
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new orbit camera controller with the viewer's defaults.
// Options are applied in order, then the state is normalized so every invariant holds.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		azimuth:   DefaultAzimuth,
		elevation: DefaultElevation,
		distance:  DefaultDistance,

		minDistance:     DefaultMinDistance,
		maxDistance:     DefaultMaxDistance,
		elevationMargin: DefaultElevationMargin,

		dragSensitivity: DefaultDragSensitivity,
		dampingCap:      DefaultDampingCap,

		fov: DefaultFov,
	}

	for _, option := range options {
		option(cc)
	}

	cc.normalize()
	return cc
}

// --- internal helpers ---

// normalize re-establishes the state invariants: azimuth in [0, 2π), elevation off the poles,
// distance inside its bounds.
func (cc *cameraControllerImpl) normalize() {
	cc.azimuth = common.WrapAngle(cc.azimuth)
	cc.elevation = cc.clampElevation(cc.elevation)
	cc.distance = common.Clamp(cc.distance, cc.minDistance, cc.maxDistance)
}

func (cc *cameraControllerImpl) clampElevation(e float64) float64 {
	limit := math.Pi/2 - cc.elevationMargin
	return common.Clamp(e, -limit, limit)
}

// --- CameraController implementation ---

func (cc *cameraControllerImpl) ApplyDrag(dx, dy, viewportHeight float64) {
	if viewportHeight <= 0 || (dx == 0 && dy == 0) {
		return
	}

	k := cc.dragSensitivity / viewportHeight * math.Min(cc.distance*cc.distance, cc.dampingCap)

	cc.azimuth = common.WrapAngle(cc.azimuth - dx*k)
	cc.elevation = cc.clampElevation(cc.elevation + dy*k)
}

func (cc *cameraControllerImpl) ApplyZoom(deltaY float64) {
	cc.distance *= 1 + deltaY/1000
	cc.distance = common.Clamp(cc.distance, cc.minDistance, cc.maxDistance)
}

func (cc *cameraControllerImpl) EyePosition() mgl64.Vec3 {
	sinElev, cosElev := math.Sincos(cc.elevation)
	sinAzim, cosAzim := math.Sincos(cc.azimuth)

	return mgl64.Vec3{
		cc.distance * cosElev * cosAzim,
		cc.distance * sinElev,
		cc.distance * cosElev * sinAzim,
	}
}

func (cc *cameraControllerImpl) Target() mgl64.Vec3 {
	return mgl64.Vec3{}
}

func (cc *cameraControllerImpl) State() OrbitState {
	return OrbitState{
		Azimuth:   cc.azimuth,
		Elevation: cc.elevation,
		Distance:  cc.distance,
	}
}

func (cc *cameraControllerImpl) SetState(s OrbitState) {
	cc.azimuth = s.Azimuth
	cc.elevation = s.Elevation
	cc.distance = s.Distance
	cc.normalize()
}

func (cc *cameraControllerImpl) Azimuth() float64 {
	return cc.azimuth
}

func (cc *cameraControllerImpl) Elevation() float64 {
	return cc.elevation
}

func (cc *cameraControllerImpl) Distance() float64 {
	return cc.distance
}

func (cc *cameraControllerImpl) MinDistance() float64 {
	return cc.minDistance
}

func (cc *cameraControllerImpl) MaxDistance() float64 {
	return cc.maxDistance
}

func (cc *cameraControllerImpl) Fov() float64 {
	return cc.fov
}
