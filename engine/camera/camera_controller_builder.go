package camera

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// WithSensitivity replaces all multipliers at once.
//
// Parameters:
//   - s: the multipliers
//
// Returns:
//   - ControllerOption: functional option to set the sensitivity
func WithSensitivity(s Sensitivity) ControllerOption {
	return func(c *controllerImpl) {
		c.sensitivity = s
	}
}

// WithOrbitSensitivity sets radians of orbit per pixel of drag.
//
// Parameters:
//   - v: orbit multiplier
//
// Returns:
//   - ControllerOption: functional option to set the orbit sensitivity
func WithOrbitSensitivity(v float32) ControllerOption {
	return func(c *controllerImpl) {
		c.sensitivity.Orbit = v
	}
}

// WithPanSensitivity sets world units of pan per pixel of drag.
//
// Parameters:
//   - v: pan multiplier
//
// Returns:
//   - ControllerOption: functional option to set the pan sensitivity
func WithPanSensitivity(v float32) ControllerOption {
	return func(c *controllerImpl) {
		c.sensitivity.Pan = v
	}
}

// WithZoomSensitivity sets the zoom fraction per scroll unit.
//
// Parameters:
//   - v: scroll zoom multiplier
//
// Returns:
//   - ControllerOption: functional option to set the scroll zoom sensitivity
func WithZoomSensitivity(v float32) ControllerOption {
	return func(c *controllerImpl) {
		c.sensitivity.Zoom = v
	}
}

// WithZoomDragSensitivity sets the zoom fraction per pixel of middle-button drag.
//
// Parameters:
//   - v: drag zoom multiplier
//
// Returns:
//   - ControllerOption: functional option to set the drag zoom sensitivity
func WithZoomDragSensitivity(v float32) ControllerOption {
	return func(c *controllerImpl) {
		c.sensitivity.ZoomDrag = v
	}
}

// WithEnabled sets whether the controller starts enabled.
func WithEnabled(enabled bool) ControllerOption {
	return func(c *controllerImpl) {
		c.enabled = enabled
	}
}
