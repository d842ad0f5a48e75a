package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-vis/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func assertVec3(t *testing.T, want, have mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], have[i], tol, "component %d of %v vs %v", i, want, have)
	}
}

// recordingCamera wraps a real camera and records the controller's calls.
type recordingCamera struct {
	Camera
	orbits [][2]float32
	zooms  []float32
	pans   []mgl32.Vec3
}

func (r *recordingCamera) Orbit(h, v float32) {
	r.orbits = append(r.orbits, [2]float32{h, v})
	r.Camera.Orbit(h, v)
}

func (r *recordingCamera) Zoom(f float32) {
	r.zooms = append(r.zooms, f)
	r.Camera.Zoom(f)
}

func (r *recordingCamera) Pan(d mgl32.Vec3) {
	r.pans = append(r.pans, d)
	r.Camera.Pan(d)
}

type dirtyCounter int

func (d *dirtyCounter) MarkDirty() { *d++ }

func newInput(x, y float32) *input.State {
	in := input.NewState()
	in.SetPointer(x, y)
	return in
}

func TestOrbitPreservesDistance(t *testing.T) {
	c := NewCamera(WithPosition(mgl32.Vec3{3, 1, 4}), WithCenter(mgl32.Vec3{1, 0, 0}))
	before := c.Distance()
	for _, step := range [][2]float32{{0.3, 0}, {0, 0.2}, {-1.1, 0.4}, {2, -0.7}} {
		c.Orbit(step[0], step[1])
		assert.InDelta(t, before, c.Distance(), tol)
	}
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Center())
	assertVec3(t, mgl32.Vec3{0, 1, 0}, c.Up())
}

func TestOrbitHorizontalQuarterTurn(t *testing.T) {
	c := NewCamera()
	c.Orbit(math.Pi/2, 0)
	assertVec3(t, mgl32.Vec3{10, 0, 0}, c.Position())
}

func TestZoomClampsToMinDistance(t *testing.T) {
	c := NewCamera()
	c.Zoom(0.5)
	assert.InDelta(t, 5, c.Distance(), tol)

	c.Zoom(0.0001)
	assert.InDelta(t, MinDistance, c.Distance(), tol)
	assertVec3(t, mgl32.Vec3{0, 0, 1}, c.Position().Sub(c.Center()).Normalize())
}

func TestPanPreservesOffset(t *testing.T) {
	c := NewCamera(WithPosition(mgl32.Vec3{2, 3, 4}))
	offset := c.Position().Sub(c.Center())
	c.Pan(mgl32.Vec3{1, -2, 0.5})
	assertVec3(t, offset, c.Position().Sub(c.Center()))
	assertVec3(t, mgl32.Vec3{1, -2, 0.5}, c.Center())
}

func TestForwardRightAndMatrices(t *testing.T) {
	c := NewCamera()
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Forward())
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Right())

	vp := c.ViewProjection(1.5)
	want := c.Projection(1.5).Mul4(c.View())
	for i := range vp {
		assert.InDelta(t, want[i], vp[i], tol)
	}
}

func TestControllerLeftDragOrbits(t *testing.T) {
	cam := &recordingCamera{Camera: NewCamera()}
	var dirty dirtyCounter
	ctrl := NewController()

	in := newInput(100, 100)
	in.SetButton(input.ButtonLeft, true)
	in.SetPointer(110, 100)

	require.True(t, ctrl.Process(cam, in, &dirty))
	require.Len(t, cam.orbits, 1)
	assert.InDelta(t, -0.05, cam.orbits[0][0], 1e-6)
	assert.InDelta(t, 0, cam.orbits[0][1], 1e-6)
	assert.Equal(t, dirtyCounter(1), dirty)

	dx, dy := in.Delta()
	assert.Zero(t, dx, "previous position is synced after processing")
	assert.Zero(t, dy)
}

func TestControllerScrollZoomsAndResets(t *testing.T) {
	cam := &recordingCamera{Camera: NewCamera()}
	ctrl := NewController()

	in := newInput(0, 0)
	in.AddScroll(-5)

	require.True(t, ctrl.Process(cam, in, nil))
	require.Len(t, cam.zooms, 1)
	assert.InDelta(t, 1.5, cam.zooms[0], 1e-6)
	assert.Zero(t, in.Scroll())
	assert.InDelta(t, 15, cam.Distance(), tol)
}

func TestControllerScrollFactorGuard(t *testing.T) {
	cam := &recordingCamera{Camera: NewCamera()}
	ctrl := NewController()

	in := newInput(0, 0)
	in.AddScroll(10)

	assert.False(t, ctrl.Process(cam, in, nil))
	assert.Empty(t, cam.zooms)
	assert.Zero(t, in.Scroll())
}

func TestControllerPrecedence(t *testing.T) {
	t.Run("ctrl left drag pans", func(t *testing.T) {
		cam := &recordingCamera{Camera: NewCamera()}
		in := newInput(0, 0)
		in.SetButton(input.ButtonLeft, true)
		in.SetModifiers(true, false, false)
		in.SetPointer(10, 0)

		NewController().Process(cam, in, nil)
		assert.Empty(t, cam.orbits)
		require.Len(t, cam.pans, 1)
		assertVec3(t, mgl32.Vec3{-0.1, 0, 0}, cam.pans[0])
	})

	t.Run("right drag pans up with positive dy", func(t *testing.T) {
		cam := &recordingCamera{Camera: NewCamera()}
		in := newInput(0, 0)
		in.SetButton(input.ButtonRight, true)
		in.SetPointer(0, 10)

		NewController().Process(cam, in, nil)
		require.Len(t, cam.pans, 1)
		assertVec3(t, mgl32.Vec3{0, 0.1, 0}, cam.pans[0])
	})

	t.Run("middle drag zooms", func(t *testing.T) {
		cam := &recordingCamera{Camera: NewCamera()}
		in := newInput(0, 0)
		in.SetButton(input.ButtonMiddle, true)
		in.SetPointer(0, 20)

		NewController().Process(cam, in, nil)
		require.Len(t, cam.zooms, 1)
		assert.InDelta(t, 1.2, cam.zooms[0], 1e-6)
	})

	t.Run("drag wins over scroll but scroll is still reset", func(t *testing.T) {
		cam := &recordingCamera{Camera: NewCamera()}
		in := newInput(0, 0)
		in.SetButton(input.ButtonLeft, true)
		in.SetPointer(5, 5)
		in.AddScroll(2)

		NewController().Process(cam, in, nil)
		assert.Len(t, cam.orbits, 1)
		assert.Empty(t, cam.zooms)
		assert.Zero(t, in.Scroll())
	})
}

func TestControllerNoMotionIsNotDirty(t *testing.T) {
	cam := &recordingCamera{Camera: NewCamera()}
	var dirty dirtyCounter
	in := newInput(50, 50)
	in.SetButton(input.ButtonLeft, true)

	assert.False(t, NewController().Process(cam, in, &dirty))
	assert.Zero(t, int(dirty))
}

func TestControllerDisabled(t *testing.T) {
	cam := &recordingCamera{Camera: NewCamera()}
	ctrl := NewController(WithEnabled(false))
	in := newInput(0, 0)
	in.SetButton(input.ButtonLeft, true)
	in.SetPointer(30, 0)
	in.AddScroll(1)

	assert.False(t, ctrl.Process(cam, in, nil))
	assert.Empty(t, cam.orbits)
	assert.Zero(t, in.Scroll())
	dx, _ := in.Delta()
	assert.Zero(t, dx)
}

func TestGPUCameraUniformLayout(t *testing.T) {
	c := NewCamera()
	u := NewGPUCameraUniform(c, 2)
	assert.Equal(t, 208, u.Size())
	assert.Len(t, u.Marshal(), 208)
	assert.Equal(t, [3]float32{0, 0, 10}, u.Position)
}
