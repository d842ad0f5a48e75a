package pipeline

import (
	"github.com/Carmen-Shannon/oxy-vis/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// pipeline is the implementation of the Pipeline interface.
type pipeline struct {
	pipelineKey string

	vertexShader, fragmentShader shader.Shader

	renderPipeline *wgpu.RenderPipeline

	depthTestEnabled  bool
	depthWriteEnabled bool
	blendEnabled      bool
	cullMode          wgpu.CullMode
	topology          wgpu.PrimitiveTopology
	frontFace         wgpu.FrontFace
	writeMask         wgpu.ColorWriteMask
	blendState        *wgpu.BlendState
}

// Pipeline describes the fixed-function state of a render pipeline together with its
// shaders. The GPU pipeline object is created by the device from Descriptor and stored
// back with SetRenderPipeline.
type Pipeline interface {
	// PipelineKey returns the unique key of the pipeline, also used as its GPU label.
	PipelineKey() string

	// Shader returns the shader for the given stage, or nil if unset.
	//
	// Parameters:
	//   - shaderType: the stage to look up
	//
	// Returns:
	//   - shader.Shader: the stage's shader
	Shader(shaderType shader.ShaderType) shader.Shader

	// RenderPipeline returns the GPU pipeline, or nil before it is created.
	RenderPipeline() *wgpu.RenderPipeline

	// SetRenderPipeline stores the GPU pipeline created from Descriptor.
	SetRenderPipeline(p *wgpu.RenderPipeline)

	DepthTestEnabled() bool
	DepthWriteEnabled() bool
	BlendEnabled() bool
	CullMode() wgpu.CullMode
	Topology() wgpu.PrimitiveTopology
	FrontFace() wgpu.FrontFace
	WriteMask() wgpu.ColorWriteMask
	BlendState() *wgpu.BlendState

	// Descriptor builds the wgpu render pipeline descriptor for this state. Vertex
	// buffer layouts come from the vertex shader; the depth attachment is always
	// Depth24Plus.
	//
	// Parameters:
	//   - layout: the pipeline layout holding the bind group layouts
	//   - vs: the compiled vertex shader module
	//   - fs: the compiled fragment shader module
	//   - format: the color target format
	//   - sampleCount: the MSAA sample count of the render targets
	//
	// Returns:
	//   - *wgpu.RenderPipelineDescriptor: the descriptor ready for CreateRenderPipeline
	Descriptor(layout *wgpu.PipelineLayout, vs, fs *wgpu.ShaderModule, format wgpu.TextureFormat, sampleCount uint32) *wgpu.RenderPipelineDescriptor
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a render pipeline description. By default depth test and write
// are on, blending is off, back faces are not culled and triangles are wound CCW.
//
// Parameters:
//   - pipelineKey: the unique key for this pipeline
//   - opts: functional options to configure the pipeline
//
// Returns:
//   - Pipeline: the configured pipeline description
func NewPipeline(pipelineKey string, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:       pipelineKey,
		depthTestEnabled:  true,
		depthWriteEnabled: true,
		cullMode:          wgpu.CullModeNone,
		topology:          wgpu.PrimitiveTopologyTriangleList,
		frontFace:         wgpu.FrontFaceCCW,
		writeMask:         wgpu.ColorWriteMaskAll,
		blendState: &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) Shader(shaderType shader.ShaderType) shader.Shader {
	switch shaderType {
	case shader.ShaderTypeVertex:
		return p.vertexShader
	case shader.ShaderTypeFragment:
		return p.fragmentShader
	default:
		return nil
	}
}

func (p *pipeline) RenderPipeline() *wgpu.RenderPipeline {
	return p.renderPipeline
}

func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline) {
	p.renderPipeline = rp
}

func (p *pipeline) DepthTestEnabled() bool { return p.depthTestEnabled }
func (p *pipeline) DepthWriteEnabled() bool { return p.depthWriteEnabled }
func (p *pipeline) BlendEnabled() bool { return p.blendEnabled }
func (p *pipeline) CullMode() wgpu.CullMode { return p.cullMode }
func (p *pipeline) Topology() wgpu.PrimitiveTopology { return p.topology }
func (p *pipeline) FrontFace() wgpu.FrontFace { return p.frontFace }
func (p *pipeline) WriteMask() wgpu.ColorWriteMask { return p.writeMask }
func (p *pipeline) BlendState() *wgpu.BlendState { return p.blendState }

func (p *pipeline) Descriptor(layout *wgpu.PipelineLayout, vs, fs *wgpu.ShaderModule, format wgpu.TextureFormat, sampleCount uint32) *wgpu.RenderPipelineDescriptor {
	target := wgpu.ColorTargetState{
		Format:    format,
		WriteMask: p.writeMask,
	}
	if p.blendEnabled {
		target.Blend = p.blendState
	}

	depthCompare := wgpu.CompareFunctionLess
	if !p.depthTestEnabled {
		depthCompare = wgpu.CompareFunctionAlways
	}

	var buffers []wgpu.VertexBufferLayout
	var vsEntry, fsEntry string
	if p.vertexShader != nil {
		buffers = p.vertexShader.VertexLayouts()
		vsEntry = p.vertexShader.EntryPoint()
	}
	if p.fragmentShader != nil {
		fsEntry = p.fragmentShader.EntryPoint()
	}

	return &wgpu.RenderPipelineDescriptor{
		Label:  p.pipelineKey + " Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: vsEntry,
			Buffers:    buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: fsEntry,
			Targets:    []wgpu.ColorTargetState{target},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  p.topology,
			FrontFace: p.frontFace,
			CullMode:  p.cullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: sampleCount,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: p.depthWriteEnabled,
			DepthCompare:      depthCompare,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	}
}
