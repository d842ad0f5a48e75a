package object

import "github.com/go-gl/mathgl/mgl32"

// Unit mesh conventions the Scale methods map onto. Every mesh runs along local +Z,
// which the orientation basis aligns with the object's axis.
const (
	// RingTubeRadius is the tube radius of the unit ring mesh (major radius 1).
	RingTubeRadius float32 = 0.05
	// ArrowHeadFraction is the share of the arrow length taken by the head.
	ArrowHeadFraction float32 = 0.3
	// ArrowHeadWidthRatio is the head width relative to the shaft width.
	ArrowHeadWidthRatio float32 = 2
	// HelixCoils is the number of turns tessellated into the unit helix mesh.
	HelixCoils = 5
)

// Sphere is centered on its position. The unit mesh has radius 1.
type Sphere struct {
	Base
	radius float32
}

// NewSphere creates a sphere of radius 1 at the origin, then applies options.
func NewSphere(options ...Option) *Sphere {
	s := &Sphere{Base: newBase(), radius: 1}
	apply(s, options)
	return s
}

func (s *Sphere) Kind() Kind { return KindSphere }
func (s *Sphere) Oriented() bool { return false }
func (s *Sphere) Scale() mgl32.Vec3 { return mgl32.Vec3{s.radius, s.radius, s.radius} }
func (s *Sphere) Radius() float32 { return s.radius }
func (s *Sphere) SetRadius(r float32) { s.radius = r }

// Ellipsoid is centered on its position; length runs along the axis.
type Ellipsoid struct {
	Base
	size mgl32.Vec3 // length, height, width
}

// NewEllipsoid creates a unit ellipsoid (1×1×1 bounding box), then applies options.
func NewEllipsoid(options ...Option) *Ellipsoid {
	e := &Ellipsoid{Base: newBase(), size: mgl32.Vec3{1, 1, 1}}
	apply(e, options)
	return e
}

func (e *Ellipsoid) Kind() Kind { return KindEllipsoid }

// Scale halves the extents because the unit mesh is a sphere of radius 1.
func (e *Ellipsoid) Scale() mgl32.Vec3 {
	return mgl32.Vec3{e.size[2] / 2, e.size[1] / 2, e.size[0] / 2}
}
func (e *Ellipsoid) Size() mgl32.Vec3 { return e.size }
func (e *Ellipsoid) SetSize(s mgl32.Vec3) { e.size = s }
func (e *Ellipsoid) SetLength(l float32) { e.size[0] = l }
func (e *Ellipsoid) SetHeight(h float32) { e.size[1] = h }
func (e *Ellipsoid) SetWidth(w float32) { e.size[2] = w }

// Box is centered on its position; length runs along the axis.
type Box struct {
	Base
	size mgl32.Vec3 // length, height, width
}

// NewBox creates a unit cube, then applies options.
func NewBox(options ...Option) *Box {
	b := &Box{Base: newBase(), size: mgl32.Vec3{1, 1, 1}}
	apply(b, options)
	return b
}

func (b *Box) Kind() Kind { return KindBox }
func (b *Box) Scale() mgl32.Vec3 { return mgl32.Vec3{b.size[2], b.size[1], b.size[0]} }
func (b *Box) Size() mgl32.Vec3 { return b.size }
func (b *Box) SetSize(s mgl32.Vec3) { b.size = s }
func (b *Box) SetLength(l float32) { b.size[0] = l }
func (b *Box) SetHeight(h float32) { b.size[1] = h }
func (b *Box) SetWidth(w float32) { b.size[2] = w }

// Cylinder starts at its position and extends length units along the axis.
type Cylinder struct {
	Base
	radius float32
	length float32
}

// NewCylinder creates a cylinder of radius 1 and length 1, then applies options.
func NewCylinder(options ...Option) *Cylinder {
	c := &Cylinder{Base: newBase(), radius: 1, length: 1}
	apply(c, options)
	return c
}

func (c *Cylinder) Kind() Kind { return KindCylinder }
func (c *Cylinder) Scale() mgl32.Vec3 { return mgl32.Vec3{c.radius, c.radius, c.length} }
func (c *Cylinder) Radius() float32 { return c.radius }
func (c *Cylinder) SetRadius(r float32) { c.radius = r }
func (c *Cylinder) Length() float32 { return c.length }
func (c *Cylinder) SetLength(l float32) { c.length = l }

// Cone has its base at its position and its tip length units along the axis.
type Cone struct {
	Base
	radius float32
	length float32
}

// NewCone creates a cone of base radius 1 and length 1, then applies options.
func NewCone(options ...Option) *Cone {
	c := &Cone{Base: newBase(), radius: 1, length: 1}
	apply(c, options)
	return c
}

func (c *Cone) Kind() Kind { return KindCone }
func (c *Cone) Scale() mgl32.Vec3 { return mgl32.Vec3{c.radius, c.radius, c.length} }
func (c *Cone) Radius() float32 { return c.radius }
func (c *Cone) SetRadius(r float32) { c.radius = r }
func (c *Cone) Length() float32 { return c.length }
func (c *Cone) SetLength(l float32) { c.length = l }

// Arrow starts at its position and points length units along the axis. The head
// proportions are fixed by ArrowHeadFraction and ArrowHeadWidthRatio.
type Arrow struct {
	Base
	length     float32
	shaftWidth float32
}

// NewArrow creates an arrow of length 1 and shaft width 0.1, then applies options.
func NewArrow(options ...Option) *Arrow {
	a := &Arrow{Base: newBase(), length: 1, shaftWidth: 0.1}
	apply(a, options)
	return a
}

func (a *Arrow) Kind() Kind { return KindArrow }
func (a *Arrow) Scale() mgl32.Vec3 { return mgl32.Vec3{a.shaftWidth, a.shaftWidth, a.length} }
func (a *Arrow) Length() float32 { return a.length }
func (a *Arrow) SetLength(l float32) { a.length = l }
func (a *Arrow) ShaftWidth() float32 { return a.shaftWidth }
func (a *Arrow) SetShaftWidth(w float32) { a.shaftWidth = w }

// Ring is a torus centered on its position whose axis is the ring normal.
type Ring struct {
	Base
	radius    float32
	thickness float32
}

// NewRing creates a ring of radius 1 and thickness 0.1, then applies options.
func NewRing(options ...Option) *Ring {
	r := &Ring{Base: newBase(), radius: 1, thickness: 0.1}
	apply(r, options)
	return r
}

func (r *Ring) Kind() Kind { return KindRing }

// Scale stretches the unit torus so the tube depth along the axis equals thickness.
func (r *Ring) Scale() mgl32.Vec3 {
	return mgl32.Vec3{r.radius, r.radius, r.thickness / (2 * RingTubeRadius)}
}
func (r *Ring) Radius() float32 { return r.radius }
func (r *Ring) SetRadius(v float32) { r.radius = v }
func (r *Ring) Thickness() float32 { return r.thickness }
func (r *Ring) SetThickness(t float32) { r.thickness = t }

// Helix starts at its position and coils length units along the axis.
type Helix struct {
	Base
	radius float32
	length float32
}

// NewHelix creates a helix of radius 1 and length 1, then applies options.
func NewHelix(options ...Option) *Helix {
	h := &Helix{Base: newBase(), radius: 1, length: 1}
	apply(h, options)
	return h
}

func (h *Helix) Kind() Kind { return KindHelix }
func (h *Helix) Scale() mgl32.Vec3 { return mgl32.Vec3{h.radius, h.radius, h.length} }
func (h *Helix) Radius() float32 { return h.radius }
func (h *Helix) SetRadius(r float32) { h.radius = r }
func (h *Helix) Length() float32 { return h.length }
func (h *Helix) SetLength(l float32) { h.length = l }

// Pyramid has its square base centered on its position and its apex length units
// along the axis.
type Pyramid struct {
	Base
	size mgl32.Vec3 // length, height, width
}

// NewPyramid creates a unit pyramid, then applies options.
func NewPyramid(options ...Option) *Pyramid {
	p := &Pyramid{Base: newBase(), size: mgl32.Vec3{1, 1, 1}}
	apply(p, options)
	return p
}

func (p *Pyramid) Kind() Kind { return KindPyramid }
func (p *Pyramid) Scale() mgl32.Vec3 { return mgl32.Vec3{p.size[2], p.size[1], p.size[0]} }
func (p *Pyramid) Size() mgl32.Vec3 { return p.size }
func (p *Pyramid) SetSize(s mgl32.Vec3) { p.size = s }
func (p *Pyramid) SetLength(l float32) { p.size[0] = l }
func (p *Pyramid) SetHeight(h float32) { p.size[1] = h }
func (p *Pyramid) SetWidth(w float32) { p.size[2] = w }

var (
	_ Object = &Sphere{}
	_ Object = &Ellipsoid{}
	_ Object = &Box{}
	_ Object = &Cylinder{}
	_ Object = &Cone{}
	_ Object = &Arrow{}
	_ Object = &Ring{}
	_ Object = &Helix{}
	_ Object = &Pyramid{}
)
