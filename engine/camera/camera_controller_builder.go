package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithAzimuth sets the initial horizontal angle.
//
// Parameters:
//   - azimuth: horizontal angle in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the azimuth
func WithAzimuth(azimuth float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.azimuth = azimuth
	}
}

// WithElevation sets the initial vertical angle from the equatorial plane.
//
// Parameters:
//   - elevation: vertical angle in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the elevation
func WithElevation(elevation float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.elevation = elevation
	}
}

// WithDistance sets the initial distance from the planet center.
//
// Parameters:
//   - distance: orbit radius in planet radii
//
// Returns:
//   - CameraControllerOption: functional option to set the distance
func WithDistance(distance float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.distance = distance
	}
}

// WithDistanceBounds sets the minimum and maximum orbit distance.
// Inverted bounds are swapped. A non-positive minimum keeps the defaults.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - CameraControllerOption: functional option to set distance bounds
func WithDistanceBounds(min, max float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if min > max {
			min, max = max, min
		}
		if min <= 0 {
			return
		}
		cc.minDistance = min
		cc.maxDistance = max
	}
}

// WithElevationMargin sets how far the elevation must stay from the poles.
// Must be positive; the elevation is clamped to [-π/2+margin, π/2-margin].
//
// Parameters:
//   - margin: distance from ±π/2 in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the pole margin
func WithElevationMargin(margin float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if margin > 0 {
			cc.elevationMargin = margin
		}
	}
}

// WithDragSensitivity sets the angular sensitivity applied to pointer drags before damping.
//
// Parameters:
//   - sensitivity: radians per viewport-height of drag at unit damping
//
// Returns:
//   - CameraControllerOption: functional option to set drag sensitivity
func WithDragSensitivity(sensitivity float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.dragSensitivity = sensitivity
	}
}

// WithDampingCap sets the upper bound of the distance² damping factor.
//
// Parameters:
//   - cap: maximum damping multiplier
//
// Returns:
//   - CameraControllerOption: functional option to set the damping cap
func WithDampingCap(cap float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.dampingCap = cap
	}
}

// WithFov sets the vertical field of view.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the field of view
func WithFov(fov float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.fov = fov
	}
}
