package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-vis/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("default")
	assert.Equal(t, "default", p.PipelineKey())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.False(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Nil(t, p.RenderPipeline())
	assert.Nil(t, p.Shader(shader.ShaderTypeVertex))
}

func TestDescriptorFromState(t *testing.T) {
	vs, err := shader.NewShader("vs", shader.ShaderTypeVertex, shader.InstancedSource)
	require.NoError(t, err)
	fs, err := shader.NewShader("fs", shader.ShaderTypeFragment, shader.InstancedSource)
	require.NoError(t, err)

	p := NewPipeline("instanced",
		WithVertexShader(vs),
		WithFragmentShader(fs),
		WithBlendEnabled(true),
		WithCullMode(wgpu.CullModeBack),
		WithDepthTestEnabled(false),
	)
	d := p.Descriptor(nil, nil, nil, wgpu.TextureFormatBGRA8Unorm, 4)

	assert.Equal(t, "instanced Render Pipeline", d.Label)
	assert.Equal(t, "vs_main", d.Vertex.EntryPoint)
	assert.Len(t, d.Vertex.Buffers, 2)
	assert.Equal(t, "fs_main", d.Fragment.EntryPoint)
	require.Len(t, d.Fragment.Targets, 1)
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, d.Fragment.Targets[0].Format)
	assert.Same(t, p.BlendState(), d.Fragment.Targets[0].Blend)
	assert.Equal(t, wgpu.CullModeBack, d.Primitive.CullMode)
	assert.Equal(t, uint32(4), d.Multisample.Count)
	assert.Equal(t, wgpu.CompareFunctionAlways, d.DepthStencil.DepthCompare)
}

func TestDescriptorWithoutBlend(t *testing.T) {
	d := NewPipeline("opaque").Descriptor(nil, nil, nil, wgpu.TextureFormatRGBA8Unorm, 1)
	assert.Nil(t, d.Fragment.Targets[0].Blend)
	assert.Equal(t, wgpu.CompareFunctionLess, d.DepthStencil.DepthCompare)
}
