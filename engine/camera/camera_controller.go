package camera

import (
	"github.com/Carmen-Shannon/oxy-vis/engine/input"
)

// Default sensitivities applied per pixel of pointer movement or per scroll unit.
const (
	DefaultOrbitSensitivity    float32 = 0.005
	DefaultPanSensitivity      float32 = 0.01
	DefaultZoomSensitivity     float32 = 0.1
	DefaultZoomDragSensitivity float32 = 0.01
)

// minScrollZoomFactor guards against scroll deltas large enough to flip or collapse
// the camera in a single frame.
const minScrollZoomFactor float32 = 0.01

// Sensitivity holds the input-to-motion multipliers used by the controller.
type Sensitivity struct {
	Orbit    float32
	Pan      float32
	Zoom     float32
	ZoomDrag float32
}

// DefaultSensitivity returns the default multipliers.
func DefaultSensitivity() Sensitivity {
	return Sensitivity{
		Orbit:    DefaultOrbitSensitivity,
		Pan:      DefaultPanSensitivity,
		Zoom:     DefaultZoomSensitivity,
		ZoomDrag: DefaultZoomDragSensitivity,
	}
}

// DirtyMarker is notified whenever the controller moves the camera.
type DirtyMarker interface {
	MarkDirty()
}

// Controller turns per-frame pointer input into camera orbit, pan and zoom.
//
// Each frame at most one drag gesture is applied, chosen in this order:
//  1. left drag without ctrl or shift orbits
//  2. right drag, or left drag with ctrl, pans
//  3. middle drag zooms
//  4. otherwise a non-zero scroll zooms
//
// The scroll accumulator is reset every frame whether or not it was consumed.
type Controller interface {
	// Process applies one frame of input to cam. The pointer's previous position is
	// synced afterwards, so deltas are always frame-to-frame.
	//
	// Parameters:
	//   - cam: the camera to move
	//   - in: the input state for this frame
	//   - dirty: notified when the camera changed, may be nil
	//
	// Returns:
	//   - bool: true when the camera moved
	Process(cam Camera, in *input.State, dirty DirtyMarker) bool

	// Sensitivity returns the current multipliers.
	Sensitivity() Sensitivity

	// SetSensitivity replaces the multipliers.
	SetSensitivity(s Sensitivity)

	// Enabled reports whether the controller reacts to input.
	Enabled() bool

	// SetEnabled turns input handling on or off. A disabled controller still syncs the
	// pointer and resets scroll so re-enabling does not replay stale deltas.
	SetEnabled(enabled bool)
}

type controllerImpl struct {
	sensitivity Sensitivity
	enabled     bool
}

var _ Controller = &controllerImpl{}

// NewController creates a controller with the default sensitivities.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerOption) Controller {
	c := &controllerImpl{
		sensitivity: DefaultSensitivity(),
		enabled:     true,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *controllerImpl) Sensitivity() Sensitivity { return c.sensitivity }
func (c *controllerImpl) SetSensitivity(s Sensitivity) { c.sensitivity = s }
func (c *controllerImpl) Enabled() bool { return c.enabled }
func (c *controllerImpl) SetEnabled(enabled bool) { c.enabled = enabled }

func (c *controllerImpl) Process(cam Camera, in *input.State, dirty DirtyMarker) bool {
	defer in.ResetScroll()
	defer in.SyncPrevious()

	if !c.enabled || cam == nil {
		return false
	}

	dx, dy := in.Delta()
	moved := dx != 0 || dy != 0
	left := in.Button(input.ButtonLeft)
	right := in.Button(input.ButtonRight)
	middle := in.Button(input.ButtonMiddle)
	s := c.sensitivity

	changed := false
	switch {
	case left && !in.Ctrl() && !in.Shift():
		if moved {
			cam.Orbit(-dx*s.Orbit, -dy*s.Orbit)
			changed = true
		}
	case right || (left && in.Ctrl()):
		if moved {
			delta := cam.Right().Mul(-dx * s.Pan).Add(cam.Up().Normalize().Mul(dy * s.Pan))
			cam.Pan(delta)
			changed = true
		}
	case middle:
		if dy != 0 {
			cam.Zoom(1 + dy*s.ZoomDrag)
			changed = true
		}
	case in.Scroll() != 0:
		factor := 1 - in.Scroll()*s.Zoom
		if factor > minScrollZoomFactor {
			cam.Zoom(factor)
			changed = true
		}
	}

	if changed && dirty != nil {
		dirty.MarkDirty()
	}
	return changed
}
