package shader

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/cogentcore/webgpu/wgpu"
)

// InstancedSource is the Blinn-Phong instanced mesh shader. Every primitive kind is
// drawn with it; only the bound mesh and instance buffer change between draws.
//
//go:embed assets/instanced.wgsl
var InstancedSource string

// ShaderType identifies the pipeline stage a shader is used for.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex stage.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment stage.
	ShaderTypeFragment
)

// shader is the implementation of the Shader interface.
type shader struct {
	key                        string
	source                     string
	shaderType                 ShaderType
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
	bindingVarNames            map[int]map[int]string
	vertexLayouts              []wgpu.VertexBufferLayout
	entryPoint                 string
	module                     *wgpu.ShaderModuleDescriptor
	declarations               []Annotation
}

// Shader is a pre-processed WGSL stage together with the layout information parsed
// from its source: entry point, bind group layouts and vertex buffer layouts.
type Shader interface {
	// Key returns the unique identifier of the shader, also used as its GPU label.
	Key() string

	// Source returns the pre-processed WGSL source.
	Source() string

	// ShaderType returns the stage this shader was parsed for.
	ShaderType() ShaderType

	// EntryPoint returns the entry point name for the shader's stage.
	//
	// Returns:
	//   - string: the entry point name, or "" if the source has none for this stage
	EntryPoint() string

	// BindGroupLayoutDescriptors returns the CPU-side bind group layouts declared by the
	// source, keyed by group index, with visibility set to this shader's stage.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// BindGroupVarName returns the WGSL variable bound at group and binding, or "".
	//
	// Parameters:
	//   - group: the bind group index
	//   - binding: the binding index within the group
	//
	// Returns:
	//   - string: the variable name
	BindGroupVarName(group, binding int) string

	// VertexLayouts returns the vertex buffer layouts in slot order. Empty for
	// fragment shaders.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: layouts indexed by vertex buffer slot
	VertexLayouts() []wgpu.VertexBufferLayout

	// Module returns the shader module descriptor ready for device creation.
	Module() *wgpu.ShaderModuleDescriptor

	// Declarations returns the @oxy:group annotations found during pre-processing.
	Declarations() []Annotation
}

var _ Shader = &shader{}

// NewShader pre-processes and parses the WGSL source for one stage.
//
// Parameters:
//   - key: unique identifier for the shader
//   - shaderType: the stage the shader is used for
//   - source: the raw WGSL source, possibly containing @oxy: annotations
//
// Returns:
//   - Shader: the parsed shader
//   - error: an error if pre-processing fails or the stage has no entry point
func NewShader(key string, shaderType ShaderType, source string) (Shader, error) {
	pp := NewPreProcessor()
	processed, err := pp.Process(source)
	if err != nil {
		return nil, fmt.Errorf("shader %s: pre-process: %w", key, err)
	}

	s := &shader{
		key:          key,
		source:       processed,
		shaderType:   shaderType,
		entryPoint:   parseEntryPoint(processed, shaderType),
		declarations: append([]Annotation(nil), pp.Declarations()...),
		module: &wgpu.ShaderModuleDescriptor{
			Label: key,
			WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
				Code: processed,
			},
		},
	}
	if s.entryPoint == "" {
		return nil, fmt.Errorf("shader %s: no entry point for stage %d", key, shaderType)
	}

	visibility := wgpu.ShaderStageVertex
	if shaderType == ShaderTypeVertex {
		s.vertexLayouts = parseVertexLayouts(processed)
	} else {
		visibility = wgpu.ShaderStageFragment
	}
	s.bindGroupLayoutDescriptors, s.bindingVarNames = parseBindGroupLayouts(processed, visibility)
	return s, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}

func (s *shader) BindGroupVarName(group, binding int) string {
	return s.bindingVarNames[group][binding]
}

func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

func (s *shader) Declarations() []Annotation {
	return s.declarations
}

// MergeBindGroupLayouts combines the layouts of a vertex and a fragment shader. A
// binding declared by both stages keeps one entry with the visibilities OR-ed.
//
// Parameters:
//   - vertex: layouts parsed from the vertex shader
//   - fragment: layouts parsed from the fragment shader
//
// Returns:
//   - []wgpu.BindGroupLayoutDescriptor: merged descriptors indexed by group
func MergeBindGroupLayouts(vertex, fragment map[int]wgpu.BindGroupLayoutDescriptor) []wgpu.BindGroupLayoutDescriptor {
	maxGroup := -1
	for g := range vertex {
		maxGroup = max(maxGroup, g)
	}
	for g := range fragment {
		maxGroup = max(maxGroup, g)
	}

	merged := make([]wgpu.BindGroupLayoutDescriptor, maxGroup+1)
	for g := range merged {
		var entries []wgpu.BindGroupLayoutEntry
		index := make(map[uint32]int)
		for _, desc := range []wgpu.BindGroupLayoutDescriptor{vertex[g], fragment[g]} {
			for _, e := range desc.Entries {
				if i, ok := index[e.Binding]; ok {
					entries[i].Visibility |= e.Visibility
					continue
				}
				index[e.Binding] = len(entries)
				entries = append(entries, e)
			}
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Binding < entries[j].Binding
		})
		merged[g] = wgpu.BindGroupLayoutDescriptor{Entries: entries}
	}
	return merged
}
