package model

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-vis/engine/object"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bounds(m Model) (lo, hi mgl32.Vec3) {
	lo = mgl32.Vec3{1e9, 1e9, 1e9}
	hi = mgl32.Vec3{-1e9, -1e9, -1e9}
	for _, v := range m.Vertices() {
		for i := range 3 {
			lo[i] = min(lo[i], v.Position[i])
			hi[i] = max(hi[i], v.Position[i])
		}
	}
	return lo, hi
}

func TestEveryKindHasAValidMesh(t *testing.T) {
	p := NewMeshProvider(WithSegments(12))
	for k := object.Kind(0); k < object.KindCount; k++ {
		t.Run(k.String(), func(t *testing.T) {
			m := p.Mesh(k)
			require.NotNil(t, m)
			assert.Equal(t, k, m.Kind())
			assert.Same(t, m, p.Mesh(k), "meshes are cached")

			require.NotZero(t, m.IndexCount())
			assert.Zero(t, m.IndexCount()%3)
			for _, idx := range m.Indices() {
				require.Less(t, int(idx), len(m.Vertices()))
			}
			for _, v := range m.Vertices() {
				assert.InDelta(t, 1, mgl32.Vec3(v.Normal).Len(), 1e-4)
			}
			assert.Len(t, m.VertexData(), 24*len(m.Vertices()))
			assert.Len(t, m.IndexData(), 4*m.IndexCount())
		})
	}
	assert.Nil(t, p.Mesh(object.KindCount))
}

func TestUnitMeshExtents(t *testing.T) {
	const tol = 1e-4
	cases := []struct {
		kind   object.Kind
		lo, hi mgl32.Vec3
	}{
		{object.KindSphere, mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}},
		{object.KindBox, mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0.5, 0.5, 0.5}},
		{object.KindCylinder, mgl32.Vec3{-1, -1, 0}, mgl32.Vec3{1, 1, 1}},
		{object.KindCone, mgl32.Vec3{-1, -1, 0}, mgl32.Vec3{1, 1, 1}},
		{object.KindArrow, mgl32.Vec3{-1, -1, 0}, mgl32.Vec3{1, 1, 1}},
		{object.KindPyramid, mgl32.Vec3{-0.5, -0.5, 0}, mgl32.Vec3{0.5, 0.5, 1}},
	}
	p := NewMeshProvider(WithSegments(16))
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			lo, hi := bounds(p.Mesh(c.kind))
			for i := range 3 {
				assert.InDelta(t, c.lo[i], lo[i], tol, "min %d", i)
				assert.InDelta(t, c.hi[i], hi[i], tol, "max %d", i)
			}
		})
	}
}

func TestRingAndHelixStayNearTheirCenterline(t *testing.T) {
	ring := Ring(16)
	for _, v := range ring.Vertices() {
		radial := mgl32.Vec2{v.Position[0], v.Position[1]}.Len()
		assert.InDelta(t, 1, radial, float64(object.RingTubeRadius)+1e-4)
	}

	lo, hi := bounds(Helix(16))
	assert.InDelta(t, 0, lo[2], float64(HelixTubeRadius)+1e-4)
	assert.InDelta(t, 1, hi[2], float64(HelixTubeRadius)+1e-4)
}

func TestOutwardWinding(t *testing.T) {
	// for closed convex meshes centered on the z axis each face normal points away
	// from the mesh centroid
	for _, m := range []Model{Sphere(16), Box(), Pyramid()} {
		t.Run(m.Name(), func(t *testing.T) {
			var centroid mgl32.Vec3
			for _, v := range m.Vertices() {
				centroid = centroid.Add(mgl32.Vec3(v.Position))
			}
			centroid = centroid.Mul(1 / float32(len(m.Vertices())))

			idx := m.Indices()
			for i := 0; i < len(idx); i += 3 {
				a := mgl32.Vec3(m.Vertices()[idx[i]].Position)
				b := mgl32.Vec3(m.Vertices()[idx[i+1]].Position)
				c := mgl32.Vec3(m.Vertices()[idx[i+2]].Position)
				n := b.Sub(a).Cross(c.Sub(a))
				if n.Len() < 1e-7 {
					continue // degenerate pole triangle
				}
				mid := a.Add(b).Add(c).Mul(1.0 / 3)
				assert.GreaterOrEqual(t, n.Dot(mid.Sub(centroid)), float32(0), "triangle %d", i/3)
			}
		})
	}
}

func TestGPUVertexMarshal(t *testing.T) {
	v := GPUVertex{Position: [3]float32{1, 2, 3}, Normal: [3]float32{0, 0, 1}}
	assert.Equal(t, 24, v.Size())
	assert.Len(t, v.Marshal(), 24)
}

func TestBoundingRadius(t *testing.T) {
	assert.InDelta(t, 1, Sphere(16).BoundingRadius(), 1e-5)
	assert.InDelta(t, 0.8660254, Box().BoundingRadius(), 1e-5)
}
