package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-vis/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-vis/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// wgpuBuffer is the wgpu implementation of the Buffer interface.
type wgpuBuffer struct {
	label string
	size  uint64
	buf   *wgpu.Buffer
}

func (b *wgpuBuffer) Label() string { return b.label }
func (b *wgpuBuffer) Size() uint64 { return b.size }

// wgpuDevice is the implementation of the WGPUDevice interface.
type wgpuDevice struct {
	mu *sync.Mutex

	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat        wgpu.TextureFormat
	alphaMode            wgpu.CompositeAlphaMode
	presentMode          wgpu.PresentMode
	sampleCount          MSAASampleCount
	forceFallbackAdapter bool
	configured           bool

	msaaTexture          *wgpu.Texture
	msaaTextureView      *wgpu.TextureView
	depthTexture         *wgpu.Texture
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor

	pipeline         pipeline.Pipeline
	bindGroupLayouts []*wgpu.BindGroupLayout
	pipelineLayout   *wgpu.PipelineLayout
	bindGroup        *wgpu.BindGroup

	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
}

// WGPUDevice is the WebGPU Device shared by the desktop and browser backends. Only
// the origin of the surface differs between them.
type WGPUDevice interface {
	Device

	// SampleCount returns the MSAA sample count of the render targets.
	SampleCount() MSAASampleCount
}

var _ WGPUDevice = &wgpuDevice{}

// NewWGPUDevice creates the instance, surface, adapter, device and the instanced mesh
// pipeline, then configures the surface at width × height.
//
// Parameters:
//   - surfaceDescriptor: the platform surface (wgpuglfw on desktop, a canvas on js)
//   - width: initial surface width in pixels
//   - height: initial surface height in pixels
//   - options: functional options to configure the device
//
// Returns:
//   - WGPUDevice: the ready device
//   - error: ErrNoAdapter, ErrNoDevice or a pipeline creation error
func NewWGPUDevice(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...DeviceOption) (WGPUDevice, error) {
	runtime.LockOSThread()
	d := &wgpuDevice{
		mu:          &sync.Mutex{},
		presentMode: wgpu.PresentModeFifo,
		sampleCount: MSAA4x,
	}
	for _, opt := range options {
		opt(d)
	}

	// nil when the platform has no WebGPU support (browsers without navigator.gpu)
	d.instance = wgpu.CreateInstance(nil)
	if d.instance == nil {
		return nil, fmt.Errorf("%w: webgpu is not supported", ErrNoAdapter)
	}
	d.surface = d.instance.CreateSurface(surfaceDescriptor)

	a, err := d.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: d.forceFallbackAdapter,
		CompatibleSurface:    d.surface,
	})
	if err != nil {
		d.release()
		return nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	d.adapter = a

	dev, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		d.release()
		return nil, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	d.device = dev
	d.queue = dev.GetQueue()

	capabilities := d.surface.GetCapabilities(d.adapter)
	if len(capabilities.Formats) == 0 {
		d.release()
		return nil, fmt.Errorf("%w: surface reports no formats", ErrNoAdapter)
	}
	d.surfaceFormat = capabilities.Formats[0]
	if len(capabilities.AlphaModes) > 0 {
		d.alphaMode = capabilities.AlphaModes[0]
	}

	if err := d.createPipeline(); err != nil {
		d.release()
		return nil, err
	}
	d.Resize(width, height)
	return d, nil
}

// createPipeline builds the instanced mesh pipeline from the embedded WGSL source.
func (d *wgpuDevice) createPipeline() error {
	vertexShader, err := shader.NewShader("Instanced Vertex", shader.ShaderTypeVertex, shader.InstancedSource)
	if err != nil {
		return err
	}
	fragmentShader, err := shader.NewShader("Instanced Fragment", shader.ShaderTypeFragment, shader.InstancedSource)
	if err != nil {
		return err
	}
	d.pipeline = pipeline.NewPipeline("Instanced Mesh",
		pipeline.WithVertexShader(vertexShader),
		pipeline.WithFragmentShader(fragmentShader),
		pipeline.WithBlendEnabled(true),
		pipeline.WithCullMode(wgpu.CullModeBack),
	)

	vs, err := d.device.CreateShaderModule(vertexShader.Module())
	if err != nil {
		return fmt.Errorf("vertex module: %w", err)
	}
	defer vs.Release()
	fs, err := d.device.CreateShaderModule(fragmentShader.Module())
	if err != nil {
		return fmt.Errorf("fragment module: %w", err)
	}
	defer fs.Release()

	merged := shader.MergeBindGroupLayouts(vertexShader.BindGroupLayoutDescriptors(), fragmentShader.BindGroupLayoutDescriptors())
	d.bindGroupLayouts = make([]*wgpu.BindGroupLayout, len(merged))
	for g, desc := range merged {
		desc.Label = fmt.Sprintf("Group %d Layout", g)
		layout, err := d.device.CreateBindGroupLayout(&desc)
		if err != nil {
			return fmt.Errorf("failed to create bind group layout for group %d: %w", g, err)
		}
		d.bindGroupLayouts[g] = layout
	}

	d.pipelineLayout, err = d.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            d.pipeline.PipelineKey(),
		BindGroupLayouts: d.bindGroupLayouts,
	})
	if err != nil {
		return fmt.Errorf("pipeline layout: %w", err)
	}

	rp, err := d.device.CreateRenderPipeline(d.pipeline.Descriptor(d.pipelineLayout, vs, fs, d.surfaceFormat, uint32(d.sampleCount)))
	if err != nil {
		return fmt.Errorf("render pipeline: %w", err)
	}
	d.pipeline.SetRenderPipeline(rp)
	return nil
}

func (d *wgpuDevice) SampleCount() MSAASampleCount {
	return d.sampleCount
}

func (d *wgpuDevice) Resize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.releaseTargets()
	if width <= 0 || height <= 0 || d.device == nil {
		// minimized or released; BeginFrame reports the surface as unavailable
		d.configured = false
		return
	}

	d.surface.Configure(d.adapter, d.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      d.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: d.presentMode,
		AlphaMode:   d.alphaMode,
	})

	count := uint32(d.sampleCount)
	if count > 1 {
		// the pass draws into the MSAA texture and resolves into the swapchain view
		tex, view, err := d.createTarget("MSAA Texture", width, height, count, d.surfaceFormat)
		if err != nil {
			d.configured = false
			return
		}
		d.msaaTexture, d.msaaTextureView = tex, view
	}

	tex, view, err := d.createTarget("Depth Texture", width, height, count, wgpu.TextureFormatDepth24Plus)
	if err != nil {
		d.configured = false
		return
	}
	d.depthTexture, d.depthTextureView = tex, view

	storeOp := wgpu.StoreOpStore
	if count > 1 {
		storeOp = wgpu.StoreOpDiscard
	}
	d.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    d.msaaTextureView, // nil without MSAA; set per frame
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: storeOp,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            d.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	}
	d.configured = true
}

func (d *wgpuDevice) createTarget(label string, width, height int, samples uint32, format wgpu.TextureFormat) (*wgpu.Texture, *wgpu.TextureView, error) {
	tex, err := d.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   samples,
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, nil, err
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, nil, err
	}
	return tex, view, nil
}

func (d *wgpuDevice) releaseTargets() {
	if d.msaaTextureView != nil {
		d.msaaTextureView.Release()
		d.msaaTexture.Release()
		d.msaaTextureView, d.msaaTexture = nil, nil
	}
	if d.depthTextureView != nil {
		d.depthTextureView.Release()
		d.depthTexture.Release()
		d.depthTextureView, d.depthTexture = nil, nil
	}
}

func (d *wgpuDevice) CreateBuffer(label string, usage BufferUsage, size uint64) (Buffer, error) {
	var u wgpu.BufferUsage
	switch usage {
	case BufferUsageVertex:
		u = wgpu.BufferUsageVertex
	case BufferUsageIndex:
		u = wgpu.BufferUsageIndex
	case BufferUsageUniform:
		u = wgpu.BufferUsageUniform
	default:
		return nil, fmt.Errorf("unknown buffer usage %d", usage)
	}

	// WriteBuffer requires a size aligned to 4 bytes
	size = (size + 3) &^ 3
	buf, err := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: u | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	return &wgpuBuffer{label: label, size: size, buf: buf}, nil
}

func (d *wgpuDevice) WriteBuffer(buf Buffer, data []byte) error {
	b, ok := buf.(*wgpuBuffer)
	if !ok {
		return errors.New("buffer was not created by this device")
	}
	if uint64(len(data)) > b.size {
		return fmt.Errorf("write of %d bytes exceeds %s capacity %d", len(data), b.label, b.size)
	}
	return d.queue.WriteBuffer(b.buf, 0, data)
}

func (d *wgpuDevice) ReleaseBuffer(buf Buffer) {
	if b, ok := buf.(*wgpuBuffer); ok && b.buf != nil {
		b.buf.Release()
		b.buf = nil
	}
}

func (d *wgpuDevice) BindUniforms(buffers ...Buffer) error {
	entries := make([]wgpu.BindGroupEntry, len(buffers))
	for i, buf := range buffers {
		b, ok := buf.(*wgpuBuffer)
		if !ok {
			return errors.New("buffer was not created by this device")
		}
		entries[i] = wgpu.BindGroupEntry{
			Binding: uint32(i),
			Buffer:  b.buf,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}
	}

	bindGroup, err := d.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   "Uniforms Bind Group",
		Layout:  d.bindGroupLayouts[0],
		Entries: entries,
	})
	if err != nil {
		return err
	}
	if d.bindGroup != nil {
		d.bindGroup.Release()
	}
	d.bindGroup = bindGroup
	return nil
}

func (d *wgpuDevice) BeginFrame(clear mgl32.Vec3) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.configured {
		return ErrSurfaceUnavailable
	}
	if d.frameSurface != nil {
		return errors.New("previous frame surface not yet presented")
	}

	surfaceTexture, err := d.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}
	encoder, err := d.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	attachment := &d.renderPassDescriptor.ColorAttachments[0]
	if d.sampleCount > 1 {
		attachment.ResolveTarget = view
	} else {
		attachment.View = view
	}
	attachment.ClearValue = wgpu.Color{R: float64(clear[0]), G: float64(clear[1]), B: float64(clear[2]), A: 1}

	pass := encoder.BeginRenderPass(d.renderPassDescriptor)
	pass.SetPipeline(d.pipeline.RenderPipeline())
	if d.bindGroup != nil {
		pass.SetBindGroup(0, d.bindGroup, nil)
	}

	d.frameEncoder = encoder
	d.framePass = pass
	d.frameSurface = surfaceTexture
	d.frameView = view
	return nil
}

func (d *wgpuDevice) DrawIndexedInstanced(mesh Mesh, instances Buffer, count uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.framePass == nil {
		return
	}
	vb, _ := mesh.Vertices.(*wgpuBuffer)
	ib, _ := mesh.Indices.(*wgpuBuffer)
	inst, _ := instances.(*wgpuBuffer)
	if vb == nil || ib == nil || inst == nil {
		return
	}
	d.framePass.SetVertexBuffer(0, vb.buf, 0, wgpu.WholeSize)
	d.framePass.SetVertexBuffer(1, inst.buf, 0, wgpu.WholeSize)
	d.framePass.SetIndexBuffer(ib.buf, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	d.framePass.DrawIndexed(mesh.IndexCount, count, 0, 0, 0)
}

func (d *wgpuDevice) EndFrame() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.framePass == nil {
		return nil
	}
	d.framePass.End()
	d.framePass = nil

	commandBuffer, err := d.frameEncoder.Finish(nil)
	d.frameEncoder.Release()
	d.frameEncoder = nil
	if err != nil {
		d.releaseFrame()
		return err
	}
	d.queue.Submit(commandBuffer)
	commandBuffer.Release()

	d.surface.Present()
	d.releaseFrame()
	return nil
}

func (d *wgpuDevice) releaseFrame() {
	if d.frameView != nil {
		d.frameView.Release()
		d.frameView = nil
	}
	if d.frameSurface != nil {
		d.frameSurface.Release()
		d.frameSurface = nil
	}
}

func (d *wgpuDevice) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.release()
}

// release frees whatever has been created so far, so it also serves the error paths
// of NewWGPUDevice.
func (d *wgpuDevice) release() {
	d.releaseFrame()
	d.releaseTargets()
	if d.bindGroup != nil {
		d.bindGroup.Release()
		d.bindGroup = nil
	}
	if d.pipeline != nil {
		if rp := d.pipeline.RenderPipeline(); rp != nil {
			rp.Release()
		}
		d.pipeline = nil
	}
	if d.pipelineLayout != nil {
		d.pipelineLayout.Release()
		d.pipelineLayout = nil
	}
	for _, l := range d.bindGroupLayouts {
		if l != nil {
			l.Release()
		}
	}
	d.bindGroupLayouts = nil
	if d.queue != nil {
		d.queue.Release()
		d.queue = nil
	}
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	if d.surface != nil {
		d.surface.Release()
		d.surface = nil
	}
	if d.instance != nil {
		d.instance.Release()
		d.instance = nil
	}
	d.configured = false
}
