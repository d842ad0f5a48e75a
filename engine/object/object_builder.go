package object

import "github.com/go-gl/mathgl/mgl32"

// Option is a functional option applied by the kind constructors after the field
// defaults are in place. Options naming a field a kind does not have are ignored by
// that kind, so one option set can be shared across constructors.
type Option func(o Object)

func apply(o Object, options []Option) {
	for _, opt := range options {
		opt(o)
	}
}

// WithPos sets the world position.
//
// Parameters:
//   - pos: the world position
//
// Returns:
//   - Option: option function to apply
func WithPos(pos mgl32.Vec3) Option {
	return func(o Object) {
		o.Common().pos = pos
	}
}

// WithAxis sets the orientation direction.
//
// Parameters:
//   - axis: the direction local +Z is aligned with
//
// Returns:
//   - Option: option function to apply
func WithAxis(axis mgl32.Vec3) Option {
	return func(o Object) {
		o.Common().axis = axis
	}
}

// WithUp sets the reference up vector.
//
// Parameters:
//   - up: the up vector used to complete the orientation basis
//
// Returns:
//   - Option: option function to apply
func WithUp(up mgl32.Vec3) Option {
	return func(o Object) {
		o.Common().up = up
	}
}

// WithColor sets the base RGB color.
//
// Parameters:
//   - color: RGB with each channel in [0, 1]
//
// Returns:
//   - Option: option function to apply
func WithColor(color mgl32.Vec3) Option {
	return func(o Object) {
		o.Common().color = color
	}
}

// WithOpacity sets the alpha value.
//
// Parameters:
//   - opacity: alpha in [0, 1]
//
// Returns:
//   - Option: option function to apply
func WithOpacity(opacity float32) Option {
	return func(o Object) {
		o.Common().opacity = opacity
	}
}

// WithShininess sets the specular weight.
//
// Parameters:
//   - shininess: specular weight in [0, 1]
//
// Returns:
//   - Option: option function to apply
func WithShininess(shininess float32) Option {
	return func(o Object) {
		o.Common().shininess = shininess
	}
}

// WithEmissive marks the object as self-lit.
//
// Parameters:
//   - emissive: true to skip lighting
//
// Returns:
//   - Option: option function to apply
func WithEmissive(emissive bool) Option {
	return func(o Object) {
		o.Common().emissive = emissive
	}
}

// WithVisible sets the visibility flag.
//
// Parameters:
//   - visible: false to hide the object
//
// Returns:
//   - Option: option function to apply
func WithVisible(visible bool) Option {
	return func(o Object) {
		o.Common().visible = visible
	}
}

// WithTrail turns on trail recording.
//
// Parameters:
//   - radius: radius of each trail point (non-positive keeps the default)
//   - retain: maximum number of points kept, 0 for unbounded
//
// Returns:
//   - Option: option function to apply
func WithTrail(radius float32, retain int) Option {
	return func(o Object) {
		b := o.Common()
		b.makeTrail = true
		if radius > 0 {
			b.trailRadius = radius
		}
		b.retain = retain
	}
}

// WithRadius sets the radius of spheres, cylinders, cones, rings and helices.
func WithRadius(radius float32) Option {
	return func(o Object) {
		if r, ok := o.(interface{ SetRadius(float32) }); ok {
			r.SetRadius(radius)
		}
	}
}

// WithLength sets the extent along the axis for every kind that has one.
func WithLength(length float32) Option {
	return func(o Object) {
		if l, ok := o.(interface{ SetLength(float32) }); ok {
			l.SetLength(length)
		}
	}
}

// WithHeight sets the height of boxes, ellipsoids and pyramids.
func WithHeight(height float32) Option {
	return func(o Object) {
		if h, ok := o.(interface{ SetHeight(float32) }); ok {
			h.SetHeight(height)
		}
	}
}

// WithWidth sets the width of boxes, ellipsoids and pyramids.
func WithWidth(width float32) Option {
	return func(o Object) {
		if w, ok := o.(interface{ SetWidth(float32) }); ok {
			w.SetWidth(width)
		}
	}
}

// WithSize sets length, height and width at once on boxes, ellipsoids and pyramids.
func WithSize(size mgl32.Vec3) Option {
	return func(o Object) {
		if s, ok := o.(interface{ SetSize(mgl32.Vec3) }); ok {
			s.SetSize(size)
		}
	}
}

// WithThickness sets the tube thickness of rings.
func WithThickness(thickness float32) Option {
	return func(o Object) {
		if t, ok := o.(interface{ SetThickness(float32) }); ok {
			t.SetThickness(thickness)
		}
	}
}

// WithShaftWidth sets the shaft width of arrows.
func WithShaftWidth(width float32) Option {
	return func(o Object) {
		if a, ok := o.(interface{ SetShaftWidth(float32) }); ok {
			a.SetShaftWidth(width)
		}
	}
}
