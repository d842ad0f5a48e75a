package common

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = 1e-5

func assertVec3(t *testing.T, want, have mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], have[i], standardTol, "component %d of %v vs %v", i, want, have)
	}
}

func TestBasisRotationMapsLocalZOntoAxis(t *testing.T) {
	cases := []struct {
		name string
		axis mgl32.Vec3
		up   mgl32.Vec3
	}{
		{"x axis", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{"z axis", mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}},
		{"diagonal", mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 0}},
		{"down", mgl32.Vec3{0, -2, 0}, mgl32.Vec3{1, 0, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := BasisRotation(c.axis, c.up)
			assertVec3(t, c.axis.Normalize(), r.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3())
			assert.InDelta(t, 1, r.Det(), standardTol)

			// local +Y stays in the plane spanned by axis and up
			y := r.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
			assert.InDelta(t, 0, y.Dot(c.up.Cross(c.axis)), standardTol)
		})
	}
}

func TestBasisRotationDegenerateProducesNaN(t *testing.T) {
	r := BasisRotation(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0})
	assert.True(t, math32.IsNaN(r[0]))
}

func TestModelMatrix(t *testing.T) {
	pos := mgl32.Vec3{1, 2, 3}

	m := ModelMatrix(pos, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{2, 2, 2}, false)
	assertVec3(t, pos, m.Col(3).Vec3())
	assertVec3(t, mgl32.Vec3{3, 2, 3}, m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3())

	// oriented: local +Z of length 4 lands along the axis
	m = ModelMatrix(pos, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 1, 4}, true)
	assertVec3(t, mgl32.Vec3{1, 6, 3}, m.Mul4x1(mgl32.Vec4{0, 0, 1, 1}).Vec3())
}

func TestRotateAxisAngleMatchesHomogRotate(t *testing.T) {
	v := mgl32.Vec3{1, 2, 3}
	axis := mgl32.Vec3{0.3, -1, 0.5}
	for _, angle := range []float32{-2 * math.Pi, -1.3, 0, 0.25, math.Pi / 2, 2.9, 2 * math.Pi} {
		want := mgl32.HomogRotate3D(angle, axis.Normalize()).Mul4x1(v.Vec4(0)).Vec3()
		have := RotateAxisAngle(v, axis, angle)
		assertVec3(t, want, have)
		assert.InDelta(t, v.Len(), have.Len(), standardTol)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := float32(0.1), float32(100)
	p := Perspective(math.Pi/2, 2, near, far)
	assert.InDelta(t, 0.5, p[0], standardTol)
	assert.InDelta(t, 1, p[5], standardTol)

	n := p.Mul4x1(mgl32.Vec4{0, 0, -near, 1})
	assert.InDelta(t, 0, n[2]/n[3], standardTol)
	f := p.Mul4x1(mgl32.Vec4{0, 0, -far, 1})
	assert.InDelta(t, 1, f[2]/f[3], 1e-4)
}

func TestLookAt(t *testing.T) {
	v := LookAt(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	assertVec3(t, mgl32.Vec3{0, 0, -5}, v.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3())
	assertVec3(t, mgl32.Vec3{1, 0, -5}, v.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3())
}

func TestPutFloat32s(t *testing.T) {
	buf := make([]byte, 12)
	n := PutFloat32s(buf, 1.5, -2, 0.25)
	require.Equal(t, 12, n)
	assert.Equal(t, float32(-2), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])))
}

func TestKeyFromDOMCode(t *testing.T) {
	assert.Equal(t, KeyW, KeyFromDOMCode("KeyW"))
	assert.Equal(t, Key3, KeyFromDOMCode("Digit3"))
	assert.Equal(t, KeyLeftShift, KeyFromDOMCode("ShiftLeft"))
	assert.Equal(t, KeyUnknown, KeyFromDOMCode("F13"))
}
