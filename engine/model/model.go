package model

import (
	"github.com/Carmen-Shannon/oxy-vis/common"
	"github.com/Carmen-Shannon/oxy-vis/engine/object"
	"github.com/go-gl/mathgl/mgl32"
)

// model is the implementation of the Model interface.
type model struct {
	name           string
	kind           object.Kind
	vertices       []GPUVertex
	indices        []uint32
	boundingRadius float32
}

// Model defines the interface for a static unit mesh.
// A Model holds the geometry one primitive kind is drawn with; instances scale,
// rotate and translate it through their model matrix.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Kind returns the primitive kind this mesh is drawn for.
	//
	// Returns:
	//   - object.Kind: the primitive kind
	Kind() object.Kind

	// Vertices returns the mesh vertices. The slice must not be modified.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// Indices returns the triangle list indices. The slice must not be modified.
	//
	// Returns:
	//   - []uint32: three indices per triangle
	Indices() []uint32

	// VertexData returns the raw vertex buffer bytes for GPU upload.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw uint32 index buffer bytes for GPU upload.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the index buffer.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// BoundingRadius returns the distance from the mesh origin to its farthest vertex.
	//
	// Returns:
	//   - float32: the bounding sphere radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a new Model with the provided options.
// The bounding radius is derived from the vertices.
//
// Parameters:
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the newly created model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	for i := range m.vertices {
		p := m.vertices[i].Position
		if r := mgl32.Vec3(p).Len(); r > m.boundingRadius {
			m.boundingRadius = r
		}
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Kind() object.Kind {
	return m.kind
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) VertexData() []byte {
	if len(m.vertices) == 0 {
		return nil
	}
	stride := m.vertices[0].Size()
	buf := make([]byte, 0, stride*len(m.vertices))
	for i := range m.vertices {
		buf = append(buf, m.vertices[i].Marshal()...)
	}
	return buf
}

// IndexData views the index slice as bytes; GPU targets are little-endian.
func (m *model) IndexData() []byte {
	return common.SliceToBytes(m.indices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}
