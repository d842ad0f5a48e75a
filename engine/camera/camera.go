package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-vis/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MinDistance is the smallest distance Zoom allows between position and center.
const MinDistance float32 = 0.1

// Default camera settings.
const (
	DefaultFov  float32 = math.Pi / 3
	DefaultNear float32 = 0.01
	DefaultFar  float32 = 1000
)

type cameraImpl struct {
	position mgl32.Vec3
	center   mgl32.Vec3
	up       mgl32.Vec3

	fov  float32
	near float32
	far  float32
}

// Camera is a look-at camera described by a position, a center it looks at and an
// up vector, plus perspective settings.
//
// The up vector must not be colinear with center - position; orbit and pan math
// degenerate (zero cross product) when it is. This is not validated.
type Camera interface {
	// Position returns the eye position.
	//
	// Returns:
	//   - mgl32.Vec3: the world-space eye position
	Position() mgl32.Vec3

	// SetPosition moves the eye without moving the center.
	//
	// Parameters:
	//   - p: the new eye position
	SetPosition(p mgl32.Vec3)

	// Center returns the point the camera looks at.
	//
	// Returns:
	//   - mgl32.Vec3: the world-space look-at point
	Center() mgl32.Vec3

	// SetCenter moves the look-at point without moving the eye.
	//
	// Parameters:
	//   - c: the new look-at point
	SetCenter(c mgl32.Vec3)

	// Up returns the world up vector used for orbit and the view matrix.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// SetUp sets the world up vector.
	//
	// Parameters:
	//   - u: the new up vector
	SetUp(u mgl32.Vec3)

	// Fov returns the vertical field of view in radians.
	Fov() float32

	// SetFov sets the vertical field of view in radians.
	SetFov(fov float32)

	// Near returns the near clipping plane distance.
	Near() float32

	// SetNear sets the near clipping plane distance.
	SetNear(near float32)

	// Far returns the far clipping plane distance.
	Far() float32

	// SetFar sets the far clipping plane distance.
	SetFar(far float32)

	// Forward returns the unit view direction, normalize(center - position).
	//
	// Returns:
	//   - mgl32.Vec3: the view direction
	Forward() mgl32.Vec3

	// Right returns the unit screen-right direction, normalize(cross(forward, up)).
	//
	// Returns:
	//   - mgl32.Vec3: the right direction
	Right() mgl32.Vec3

	// Distance returns the distance between position and center.
	//
	// Returns:
	//   - float32: the eye-to-center distance
	Distance() float32

	// Orbit rotates the eye around the center. The offset position - center is
	// rotated about the up axis by h, then about the right axis (recomputed after the
	// first step) by v. Center and up are unchanged, so the distance is preserved.
	//
	// Parameters:
	//   - h: horizontal angle in radians
	//   - v: vertical angle in radians
	Orbit(h, v float32)

	// Zoom scales the eye-to-center distance by factor, clamping the result to
	// MinDistance.
	//
	// Parameters:
	//   - factor: the distance multiplier (below 1 moves closer)
	Zoom(factor float32)

	// Pan translates position and center by the same vector, preserving the view
	// direction and distance.
	//
	// Parameters:
	//   - delta: the world-space translation
	Pan(delta mgl32.Vec3)

	// View returns the look-at view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	View() mgl32.Mat4

	// Projection returns the perspective projection for the given aspect ratio.
	//
	// Parameters:
	//   - aspect: viewport width / height
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major, WebGPU depth range)
	Projection(aspect float32) mgl32.Mat4

	// ViewProjection returns Projection(aspect) × View().
	//
	// Parameters:
	//   - aspect: viewport width / height
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ViewProjection(aspect float32) mgl32.Mat4
}

var _ Camera = &cameraImpl{}

// NewCamera creates a camera at (0, 0, 10) looking at the origin with +Y up, then
// applies the options.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		position: mgl32.Vec3{0, 0, 10},
		up:       mgl32.Vec3{0, 1, 0},
		fov:      DefaultFov,
		near:     DefaultNear,
		far:      DefaultFar,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 { return c.position }
func (c *cameraImpl) SetPosition(p mgl32.Vec3) { c.position = p }
func (c *cameraImpl) Center() mgl32.Vec3 { return c.center }
func (c *cameraImpl) SetCenter(p mgl32.Vec3) { c.center = p }
func (c *cameraImpl) Up() mgl32.Vec3 { return c.up }
func (c *cameraImpl) SetUp(u mgl32.Vec3) { c.up = u }
func (c *cameraImpl) Fov() float32 { return c.fov }
func (c *cameraImpl) SetFov(fov float32) { c.fov = fov }
func (c *cameraImpl) Near() float32 { return c.near }
func (c *cameraImpl) SetNear(near float32) { c.near = near }
func (c *cameraImpl) Far() float32 { return c.far }
func (c *cameraImpl) SetFar(far float32) { c.far = far }

func (c *cameraImpl) Forward() mgl32.Vec3 {
	return c.center.Sub(c.position).Normalize()
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	return c.Forward().Cross(c.up).Normalize()
}

func (c *cameraImpl) Distance() float32 {
	return c.position.Sub(c.center).Len()
}

func (c *cameraImpl) Orbit(h, v float32) {
	offset := common.RotateAxisAngle(c.position.Sub(c.center), c.up, h)

	// right axis after the horizontal step: forward is -offset
	right := offset.Mul(-1).Normalize().Cross(c.up).Normalize()
	offset = common.RotateAxisAngle(offset, right, v)

	c.position = c.center.Add(offset)
}

func (c *cameraImpl) Zoom(factor float32) {
	offset := c.position.Sub(c.center)
	dist := offset.Len()
	if dist == 0 {
		return
	}
	next := dist * factor
	if next < MinDistance {
		next = MinDistance
	}
	c.position = c.center.Add(offset.Mul(next / dist))
}

func (c *cameraImpl) Pan(delta mgl32.Vec3) {
	c.position = c.position.Add(delta)
	c.center = c.center.Add(delta)
}

func (c *cameraImpl) View() mgl32.Mat4 {
	return common.LookAt(c.position, c.center, c.up)
}

func (c *cameraImpl) Projection(aspect float32) mgl32.Mat4 {
	return common.Perspective(c.fov, aspect, c.near, c.far)
}

func (c *cameraImpl) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}
