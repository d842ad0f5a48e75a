package model

import "github.com/Carmen-Shannon/oxy-vis/engine/object"

// DefaultSegments is the tessellation density of curved meshes.
const DefaultSegments = 32

// MeshProvider supplies the static unit mesh each primitive kind is drawn with.
type MeshProvider interface {
	// Mesh returns the mesh for kind, or nil for an unknown kind.
	//
	// Parameters:
	//   - kind: the primitive kind
	//
	// Returns:
	//   - Model: the unit mesh
	Mesh(kind object.Kind) Model
}

type meshProvider struct {
	segments int
	meshes   [object.KindCount]Model
}

var _ MeshProvider = &meshProvider{}

// NewMeshProvider creates a provider that generates each kind's mesh on first use
// and returns the cached mesh afterwards.
//
// Parameters:
//   - options: functional options to configure the provider
//
// Returns:
//   - MeshProvider: the newly created provider
func NewMeshProvider(options ...MeshProviderOption) MeshProvider {
	p := &meshProvider{segments: DefaultSegments}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *meshProvider) Mesh(kind object.Kind) Model {
	if kind < 0 || kind >= object.KindCount {
		return nil
	}
	if m := p.meshes[kind]; m != nil {
		return m
	}
	m := p.generate(kind)
	p.meshes[kind] = m
	return m
}

func (p *meshProvider) generate(kind object.Kind) Model {
	switch kind {
	case object.KindSphere:
		return Sphere(p.segments)
	case object.KindEllipsoid:
		return sphere(p.segments).build(object.KindEllipsoid)
	case object.KindBox:
		return Box()
	case object.KindCylinder:
		return Cylinder(p.segments)
	case object.KindCone:
		return Cone(p.segments)
	case object.KindArrow:
		return Arrow()
	case object.KindRing:
		return Ring(p.segments)
	case object.KindHelix:
		return Helix(p.segments)
	case object.KindPyramid:
		return Pyramid()
	}
	return nil
}

// MeshProviderOption is a functional option for configuring a MeshProvider.
type MeshProviderOption func(*meshProvider)

// WithSegments sets the tessellation density of curved meshes. Values below 8 are
// raised to 8.
//
// Parameters:
//   - n: slices around curved surfaces
//
// Returns:
//   - MeshProviderOption: option function to apply
func WithSegments(n int) MeshProviderOption {
	return func(p *meshProvider) {
		p.segments = max(n, 8)
	}
}
