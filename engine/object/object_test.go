package object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsThenOverrides(t *testing.T) {
	s := NewSphere(WithPos(mgl32.Vec3{1, 2, 3}), WithRadius(0.5), WithColor(mgl32.Vec3{1, 0, 0}))

	assert.Equal(t, KindSphere, s.Kind())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, s.Pos())
	assert.Equal(t, float32(0.5), s.Radius())
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, s.Color())
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, s.Axis())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, s.Up())
	assert.Equal(t, DefaultOpacity, s.Opacity())
	assert.Equal(t, DefaultShininess, s.Shininess())
	assert.True(t, s.Visible())
	assert.False(t, s.Emissive())
	assert.False(t, s.Oriented())
}

func TestOptionsIgnoredByKindsWithoutTheField(t *testing.T) {
	b := NewBox(WithRadius(7), WithSize(mgl32.Vec3{4, 2, 1}))
	assert.Equal(t, mgl32.Vec3{4, 2, 1}, b.Size())

	c := NewCylinder(WithSize(mgl32.Vec3{9, 9, 9}), WithLength(3), WithRadius(0.2))
	assert.Equal(t, float32(3), c.Length())
	assert.Equal(t, float32(0.2), c.Radius())
}

func TestScaleMapsDimensionsOntoUnitMesh(t *testing.T) {
	cases := []struct {
		name string
		obj  Object
		want mgl32.Vec3
	}{
		{"sphere", NewSphere(WithRadius(2)), mgl32.Vec3{2, 2, 2}},
		{"ellipsoid", NewEllipsoid(WithSize(mgl32.Vec3{4, 2, 1})), mgl32.Vec3{0.5, 1, 2}},
		{"box", NewBox(WithLength(4), WithHeight(2), WithWidth(1)), mgl32.Vec3{1, 2, 4}},
		{"cylinder", NewCylinder(WithRadius(0.5), WithLength(3)), mgl32.Vec3{0.5, 0.5, 3}},
		{"cone", NewCone(WithRadius(0.5), WithLength(3)), mgl32.Vec3{0.5, 0.5, 3}},
		{"arrow", NewArrow(WithLength(2), WithShaftWidth(0.2)), mgl32.Vec3{0.2, 0.2, 2}},
		{"ring", NewRing(WithRadius(2), WithThickness(0.1)), mgl32.Vec3{2, 2, 1}},
		{"helix", NewHelix(WithRadius(0.3), WithLength(5)), mgl32.Vec3{0.3, 0.3, 5}},
		{"pyramid", NewPyramid(WithSize(mgl32.Vec3{3, 2, 1})), mgl32.Vec3{1, 2, 3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			have := c.obj.Scale()
			for i := range c.want {
				assert.InDelta(t, c.want[i], have[i], 1e-6)
			}
			assert.Equal(t, c.name, c.obj.Kind().String())
		})
	}
}

func TestCommonMutatesInPlace(t *testing.T) {
	var o Object = NewCone()
	o.Common().SetPos(mgl32.Vec3{0, 5, 0})
	o.Common().SetVisible(false)

	c := o.(*Cone)
	assert.Equal(t, mgl32.Vec3{0, 5, 0}, c.Pos())
	assert.False(t, c.Visible())
}

func TestRecordTrail(t *testing.T) {
	s := NewSphere()
	assert.False(t, s.RecordTrail(), "trail is off by default")

	s = NewSphere(WithTrail(0.1, 3))
	require.True(t, s.MakeTrail())
	assert.Equal(t, float32(0.1), s.TrailRadius())

	assert.True(t, s.RecordTrail())
	assert.False(t, s.RecordTrail(), "unchanged position is not recorded twice")

	for i := 1; i <= 4; i++ {
		s.SetPos(mgl32.Vec3{float32(i), 0, 0})
		s.RecordTrail()
	}
	require.Len(t, s.Trail(), 3)
	assert.Equal(t, mgl32.Vec3{2, 0, 0}, s.Trail()[0])
	assert.Equal(t, mgl32.Vec3{4, 0, 0}, s.Trail()[2])

	s.SetRetain(1)
	require.Len(t, s.Trail(), 1)
	assert.Equal(t, mgl32.Vec3{4, 0, 0}, s.Trail()[0])

	s.ClearTrail()
	assert.Empty(t, s.Trail())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "pyramid", KindPyramid.String())
	assert.Equal(t, "unknown", KindCount.String())
}
