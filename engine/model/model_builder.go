package model

import "github.com/Carmen-Shannon/oxy-vis/engine/object"

// ModelBuilderOption is a functional option for configuring a Model.
type ModelBuilderOption func(*model)

// WithName sets the model identifier.
//
// Parameters:
//   - name: the model name
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithKind sets the primitive kind the mesh is drawn for.
//
// Parameters:
//   - kind: the primitive kind
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithKind(kind object.Kind) ModelBuilderOption {
	return func(m *model) {
		m.kind = kind
	}
}

// WithVertices sets the mesh vertices.
//
// Parameters:
//   - vertices: the vertices
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithIndices sets the triangle list indices.
//
// Parameters:
//   - indices: three indices per triangle
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices
	}
}
