package model

import (
	"github.com/Carmen-Shannon/oxy-vis/engine/object"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// HelixTubeRadius is the tube radius of the unit helix mesh (coil radius 1).
const HelixTubeRadius float32 = 0.05

// meshBuilder accumulates an indexed triangle list. Triangles are wound
// counter-clockwise when seen from outside the surface.
type meshBuilder struct {
	vertices []GPUVertex
	indices  []uint32
}

func (b *meshBuilder) vertex(p, n mgl32.Vec3) uint32 {
	b.vertices = append(b.vertices, GPUVertex{Position: p, Normal: n})
	return uint32(len(b.vertices) - 1)
}

func (b *meshBuilder) tri(i0, i1, i2 uint32) {
	b.indices = append(b.indices, i0, i1, i2)
}

func (b *meshBuilder) quad(i0, i1, i2, i3 uint32) {
	b.tri(i0, i1, i2)
	b.tri(i0, i2, i3)
}

func (b *meshBuilder) build(kind object.Kind) Model {
	return NewModel(
		WithName(kind.String()),
		WithKind(kind),
		WithVertices(b.vertices),
		WithIndices(b.indices),
	)
}

// addBox appends an axis-aligned box between lo and hi with flat face normals.
func (b *meshBuilder) addBox(lo, hi mgl32.Vec3) {
	center := lo.Add(hi).Mul(0.5)
	half := hi.Sub(lo).Mul(0.5)
	x, y, z := mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}

	// u × v = n for every face
	faces := [6][3]mgl32.Vec3{
		{x, y, z},
		{x.Mul(-1), z, y},
		{y, z, x},
		{y.Mul(-1), x, z},
		{z, x, y},
		{z.Mul(-1), y, x},
	}
	for _, f := range faces {
		n, u, v := f[0], f[1], f[2]
		c := center.Add(mulElem(n, half))
		du, dv := mulElem(u, half), mulElem(v, half)
		i0 := b.vertex(c.Sub(du).Sub(dv), n)
		i1 := b.vertex(c.Add(du).Sub(dv), n)
		i2 := b.vertex(c.Add(du).Add(dv), n)
		i3 := b.vertex(c.Sub(du).Add(dv), n)
		b.quad(i0, i1, i2, i3)
	}
}

// addPyramid appends a square pyramid whose base spans [-half, half] in x and y at
// z=z0 and whose apex sits at (0, 0, z1).
func (b *meshBuilder) addPyramid(half, z0, z1 float32) {
	corners := [4]mgl32.Vec3{
		{-half, -half, z0},
		{half, -half, z0},
		{half, half, z0},
		{-half, half, z0},
	}
	apex := mgl32.Vec3{0, 0, z1}

	down := mgl32.Vec3{0, 0, -1}
	i0 := b.vertex(corners[0], down)
	i1 := b.vertex(corners[1], down)
	i2 := b.vertex(corners[2], down)
	i3 := b.vertex(corners[3], down)
	b.quad(i0, i3, i2, i1)

	for i := range corners {
		c0, c1 := corners[i], corners[(i+1)%4]
		n := c1.Sub(c0).Cross(apex.Sub(c0)).Normalize()
		b.tri(b.vertex(c0, n), b.vertex(c1, n), b.vertex(apex, n))
	}
}

// addDisc appends a flat disc of radius 1 at height z facing +Z or -Z.
func (b *meshBuilder) addDisc(segments int, z float32, up bool) {
	n := mgl32.Vec3{0, 0, -1}
	if up {
		n = mgl32.Vec3{0, 0, 1}
	}
	center := b.vertex(mgl32.Vec3{0, 0, z}, n)
	first := uint32(len(b.vertices))
	for j := 0; j <= segments; j++ {
		s, c := math32.Sincos(2 * math32.Pi * float32(j) / float32(segments))
		b.vertex(mgl32.Vec3{c, s, z}, n)
	}
	for j := range uint32(segments) {
		if up {
			b.tri(center, first+j, first+j+1)
		} else {
			b.tri(center, first+j+1, first+j)
		}
	}
}

// grid appends the triangles of a (rows+1)×(cols+1) vertex grid starting at first.
// When flip is set the winding is reversed.
func (b *meshBuilder) grid(first uint32, rows, cols int, flip bool) {
	stride := uint32(cols + 1)
	for i := range uint32(rows) {
		for j := range uint32(cols) {
			a := first + i*stride + j
			c := a + stride
			if flip {
				b.tri(a, a+1, c)
				b.tri(a+1, c+1, c)
			} else {
				b.tri(a, c, a+1)
				b.tri(a+1, c, c+1)
			}
		}
	}
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Sphere returns a UV sphere of radius 1 centered on the origin.
// Ellipsoids share this mesh.
//
// Parameters:
//   - segments: slices around the equator (stacks are half of it)
//
// Returns:
//   - Model: the sphere mesh
func Sphere(segments int) Model {
	return sphere(segments).build(object.KindSphere)
}

func sphere(segments int) *meshBuilder {
	b := &meshBuilder{}
	stacks := max(segments/2, 2)
	for i := 0; i <= stacks; i++ {
		sp, cp := math32.Sincos(math32.Pi * float32(i) / float32(stacks))
		for j := 0; j <= segments; j++ {
			st, ct := math32.Sincos(2 * math32.Pi * float32(j) / float32(segments))
			p := mgl32.Vec3{sp * ct, cp, sp * st}
			b.vertex(p, p)
		}
	}
	b.grid(0, stacks, segments, true)
	return b
}

// Box returns a unit cube centered on the origin.
func Box() Model {
	b := &meshBuilder{}
	b.addBox(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0.5, 0.5, 0.5})
	return b.build(object.KindBox)
}

// Cylinder returns a capped cylinder of radius 1 from z=0 to z=1.
func Cylinder(segments int) Model {
	b := &meshBuilder{}
	first := uint32(0)
	for j := 0; j <= segments; j++ {
		s, c := math32.Sincos(2 * math32.Pi * float32(j) / float32(segments))
		n := mgl32.Vec3{c, s, 0}
		b.vertex(mgl32.Vec3{c, s, 0}, n)
		b.vertex(mgl32.Vec3{c, s, 1}, n)
	}
	for j := range uint32(segments) {
		b0, t0 := first+2*j, first+2*j+1
		b1, t1 := b0+2, t0+2
		b.quad(b0, b1, t1, t0)
	}
	b.addDisc(segments, 0, false)
	b.addDisc(segments, 1, true)
	return b.build(object.KindCylinder)
}

// Cone returns a cone with a base of radius 1 at z=0 and its tip at z=1.
func Cone(segments int) Model {
	b := &meshBuilder{}
	for j := range segments {
		a0 := 2 * math32.Pi * float32(j) / float32(segments)
		a1 := 2 * math32.Pi * float32(j+1) / float32(segments)
		s0, c0 := math32.Sincos(a0)
		s1, c1 := math32.Sincos(a1)
		sm, cm := math32.Sincos((a0 + a1) / 2)

		i0 := b.vertex(mgl32.Vec3{c0, s0, 0}, mgl32.Vec3{c0, s0, 1}.Normalize())
		i1 := b.vertex(mgl32.Vec3{c1, s1, 0}, mgl32.Vec3{c1, s1, 1}.Normalize())
		tip := b.vertex(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{cm, sm, 1}.Normalize())
		b.tri(i0, i1, tip)
	}
	b.addDisc(segments, 0, false)
	return b.build(object.KindCone)
}

// Arrow returns a square shaft of width 1 from z=0 to the head, and a pyramidal
// head ArrowHeadWidthRatio wide ending at z=1.
func Arrow() Model {
	b := &meshBuilder{}
	neck := 1 - object.ArrowHeadFraction
	b.addBox(mgl32.Vec3{-0.5, -0.5, 0}, mgl32.Vec3{0.5, 0.5, neck})
	b.addPyramid(object.ArrowHeadWidthRatio/2, neck, 1)
	return b.build(object.KindArrow)
}

// Ring returns a torus of major radius 1 around the Z axis with tube radius
// RingTubeRadius.
func Ring(segments int) Model {
	b := &meshBuilder{}
	minor := max(segments/2, 3)
	r := object.RingTubeRadius
	for i := 0; i <= segments; i++ {
		su, cu := math32.Sincos(2 * math32.Pi * float32(i) / float32(segments))
		center := mgl32.Vec3{cu, su, 0}
		for j := 0; j <= minor; j++ {
			sv, cv := math32.Sincos(2 * math32.Pi * float32(j) / float32(minor))
			n := mgl32.Vec3{cv * cu, cv * su, sv}
			b.vertex(center.Add(n.Mul(r)), n)
		}
	}
	b.grid(0, segments, minor, false)
	return b.build(object.KindRing)
}

// Helix returns a tube of radius HelixTubeRadius coiling HelixCoils times around the
// Z axis at radius 1, from z=0 to z=1.
func Helix(segments int) Model {
	b := &meshBuilder{}
	steps := segments * object.HelixCoils
	minor := max(segments/4, 3)
	turns := 2 * math32.Pi * float32(object.HelixCoils)
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		s, c := math32.Sincos(turns * t)
		center := mgl32.Vec3{c, s, t}
		tangent := mgl32.Vec3{-turns * s, turns * c, 1}.Normalize()
		radial := mgl32.Vec3{c, s, 0}
		binormal := tangent.Cross(radial)
		for j := 0; j <= minor; j++ {
			sv, cv := math32.Sincos(2 * math32.Pi * float32(j) / float32(minor))
			n := radial.Mul(cv).Add(binormal.Mul(sv))
			b.vertex(center.Add(n.Mul(HelixTubeRadius)), n)
		}
	}
	b.grid(0, steps, minor, true)
	return b.build(object.KindHelix)
}

// Pyramid returns a pyramid with a unit square base centered on the origin at z=0
// and its apex at z=1.
func Pyramid() Model {
	b := &meshBuilder{}
	b.addPyramid(0.5, 0, 1)
	return b.build(object.KindPyramid)
}
