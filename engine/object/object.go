package object

import "github.com/go-gl/mathgl/mgl32"

// Kind identifies a primitive object category. Every Kind has its own container in
// the scene graph and its own instanced draw call.
type Kind int

const (
	KindSphere Kind = iota
	KindEllipsoid
	KindBox
	KindCylinder
	KindCone
	KindArrow
	KindRing
	KindHelix
	KindPyramid

	// KindCount is the number of primitive kinds; it is not a valid Kind.
	KindCount
)

var kindNames = [KindCount]string{
	KindSphere:    "sphere",
	KindEllipsoid: "ellipsoid",
	KindBox:       "box",
	KindCylinder:  "cylinder",
	KindCone:      "cone",
	KindArrow:     "arrow",
	KindRing:      "ring",
	KindHelix:     "helix",
	KindPyramid:   "pyramid",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Object is the variant over every primitive kind. Concrete kinds embed Base for
// the common fields and add their own dimensions.
type Object interface {
	// Kind returns the primitive category of the object.
	//
	// Returns:
	//   - Kind: the object's kind
	Kind() Kind

	// Common returns the shared fields of the object for in-place mutation.
	//
	// Returns:
	//   - *Base: pointer to the object's common fields
	Common() *Base

	// Scale maps the kind-specific dimensions onto the kind's unit mesh.
	//
	// Returns:
	//   - mgl32.Vec3: local-space scale along x, y and z (z runs along the axis)
	Scale() mgl32.Vec3

	// Oriented reports whether the axis/up basis rotation is applied when building
	// the model matrix. Shapes whose orientation is visually irrelevant return false.
	//
	// Returns:
	//   - bool: true if the rotation step is needed
	Oriented() bool
}

// Base holds the fields common to every primitive kind.
// Mutating a Base does not mark the owning scene dirty; callers do that explicitly.
type Base struct {
	pos       mgl32.Vec3
	axis      mgl32.Vec3
	up        mgl32.Vec3
	color     mgl32.Vec3
	opacity   float32
	shininess float32
	emissive  bool
	visible   bool

	makeTrail   bool
	trailRadius float32
	retain      int
	trail       []mgl32.Vec3
}

// Default values applied to the common fields before options.
const (
	DefaultOpacity     float32 = 1
	DefaultShininess   float32 = 0.6
	DefaultTrailRadius float32 = 0.05
)

func newBase() Base {
	return Base{
		axis:        mgl32.Vec3{1, 0, 0},
		up:          mgl32.Vec3{0, 1, 0},
		color:       mgl32.Vec3{1, 1, 1},
		opacity:     DefaultOpacity,
		shininess:   DefaultShininess,
		visible:     true,
		trailRadius: DefaultTrailRadius,
	}
}

// Common returns b itself so every kind satisfies Object through embedding.
func (b *Base) Common() *Base { return b }

// Oriented is true for every kind unless the kind overrides it.
func (b *Base) Oriented() bool { return true }

// Pos returns the world position.
func (b *Base) Pos() mgl32.Vec3 { return b.pos }

// SetPos sets the world position.
func (b *Base) SetPos(p mgl32.Vec3) { b.pos = p }

// Axis returns the orientation direction.
func (b *Base) Axis() mgl32.Vec3 { return b.axis }

// SetAxis sets the orientation direction. Only the direction is used; dimensions
// come from the kind-specific fields.
func (b *Base) SetAxis(a mgl32.Vec3) { b.axis = a }

// Up returns the reference up vector used to build the orientation basis.
func (b *Base) Up() mgl32.Vec3 { return b.up }

// SetUp sets the reference up vector.
func (b *Base) SetUp(u mgl32.Vec3) { b.up = u }

// Color returns the base RGB color, each channel in [0, 1].
func (b *Base) Color() mgl32.Vec3 { return b.color }

// SetColor sets the base RGB color.
func (b *Base) SetColor(c mgl32.Vec3) { b.color = c }

// Opacity returns the alpha value in [0, 1].
func (b *Base) Opacity() float32 { return b.opacity }

// SetOpacity sets the alpha value.
func (b *Base) SetOpacity(o float32) { b.opacity = o }

// Shininess returns the specular exponent weight in [0, 1].
func (b *Base) Shininess() float32 { return b.shininess }

// SetShininess sets the specular weight.
func (b *Base) SetShininess(s float32) { b.shininess = s }

// Emissive reports whether the object ignores lighting and renders at full color.
func (b *Base) Emissive() bool { return b.emissive }

// SetEmissive sets the emissive flag.
func (b *Base) SetEmissive(e bool) { b.emissive = e }

// Visible reports whether the object is drawn.
func (b *Base) Visible() bool { return b.visible }

// SetVisible sets the visibility flag.
func (b *Base) SetVisible(v bool) { b.visible = v }

// MakeTrail reports whether positions are recorded into a trail.
func (b *Base) MakeTrail() bool { return b.makeTrail }

// SetMakeTrail turns trail recording on or off. Turning it off keeps the recorded
// points; use ClearTrail to drop them.
func (b *Base) SetMakeTrail(on bool) { b.makeTrail = on }

// TrailRadius returns the radius of the spheres drawn at each trail point.
func (b *Base) TrailRadius() float32 { return b.trailRadius }

// SetTrailRadius sets the trail point radius.
func (b *Base) SetTrailRadius(r float32) { b.trailRadius = r }

// Retain returns the maximum number of trail points kept, 0 meaning unbounded.
func (b *Base) Retain() int { return b.retain }

// SetRetain sets the maximum number of trail points. Existing points beyond the new
// bound are dropped oldest first.
func (b *Base) SetRetain(n int) {
	b.retain = n
	b.trimTrail()
}

// Trail returns the recorded trail points, oldest first. The slice must not be modified.
func (b *Base) Trail() []mgl32.Vec3 { return b.trail }

// ClearTrail drops every recorded trail point.
func (b *Base) ClearTrail() { b.trail = b.trail[:0] }

// RecordTrail appends the current position to the trail when trails are on and the
// object moved since the last recorded point.
//
// Returns:
//   - bool: true if a point was appended
func (b *Base) RecordTrail() bool {
	if !b.makeTrail {
		return false
	}
	if n := len(b.trail); n > 0 && b.trail[n-1] == b.pos {
		return false
	}
	b.trail = append(b.trail, b.pos)
	b.trimTrail()
	return true
}

func (b *Base) trimTrail() {
	if b.retain <= 0 || len(b.trail) <= b.retain {
		return
	}
	drop := len(b.trail) - b.retain
	n := copy(b.trail, b.trail[drop:])
	b.trail = b.trail[:n]
}
