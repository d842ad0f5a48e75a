package renderer

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-vis/engine/camera"
	"github.com/Carmen-Shannon/oxy-vis/engine/light"
	"github.com/Carmen-Shannon/oxy-vis/engine/model"
	"github.com/Carmen-Shannon/oxy-vis/engine/object"
	"github.com/Carmen-Shannon/oxy-vis/engine/scene"
)

// FrameStatus is the outcome of a submission.
type FrameStatus int

const (
	// FrameRendered means the frame was drawn and presented.
	FrameRendered FrameStatus = iota

	// FrameSkipped means nothing was presented, either because the surface was
	// unavailable or because submission failed.
	FrameSkipped
)

func (f FrameStatus) String() string {
	if f == FrameRendered {
		return "rendered"
	}
	return "skipped"
}

// Stats are cumulative submission counters plus the figures of the last frame.
type Stats struct {
	FramesRendered uint64
	FramesSkipped  uint64
	Reallocations  uint64

	// DrawCalls and Instances describe the last rendered frame.
	DrawCalls int
	Instances int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	device Device
	meshes model.MeshProvider
	logger *slog.Logger

	gpuMeshes [object.KindCount]Mesh
	instances [object.KindCount]instanceBuffer
	cameraBuf Buffer
	lightBuf  Buffer

	// scratch holds each kind's packed records for the current frame. trails holds
	// the trail spheres found while packing each kind; they are appended to the
	// sphere batch once every kind is packed.
	scratch [object.KindCount][]byte
	trails  [object.KindCount][]byte

	workers int
	pool    worker.DynamicWorkerPool

	initialized bool
	stats       Stats
}

// Renderer turns a scene into one instanced draw call per non-empty primitive kind.
//
// Every kind shares one pipeline and differs only by its static mesh and its instance
// buffer. Instance buffers grow on demand and are never shrunk.
type Renderer interface {
	// Init uploads the static mesh of every kind and creates the camera and light
	// uniform buffers. It must succeed before Submit.
	//
	// Returns:
	//   - error: an error if any device allocation failed
	Init() error

	// Submit renders s:
	//  1. visible objects are packed per kind, in parallel across kinds; trail points
	//     join the sphere batch
	//  2. a frame is begun; ErrSurfaceUnavailable skips the frame without error
	//  3. camera and light uniforms are written, even for an empty scene
	//  4. every non-empty kind uploads its instances, growing its buffer if needed,
	//     and issues one draw call
	//  5. the frame is ended and presented
	//
	// A panic raised by an object while packing surfaces on the calling goroutine,
	// before any frame is begun, whichever worker packed it.
	//
	// Parameters:
	//   - s: the scene to render
	//
	// Returns:
	//   - FrameStatus: whether the frame was presented
	//   - error: ErrNotInitialized or a device error; nil for skipped frames caused by
	//     an unavailable surface
	Submit(s scene.Scene) (FrameStatus, error)

	// Resize forwards a new surface size to the device.
	Resize(width, height int)

	// Stats returns the submission counters.
	Stats() Stats

	// Capacity returns the current byte capacity of a kind's instance buffer.
	Capacity(kind object.Kind) uint64

	// Release frees every buffer created by the renderer and stops its packing
	// workers. The device itself is owned by the caller. Init may be called again.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a renderer drawing through device.
//
// Parameters:
//   - device: the graphics device
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the renderer, not yet initialized
func NewRenderer(device Device, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		device:  device,
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range options {
		opt(r)
	}
	if r.meshes == nil {
		r.meshes = model.NewMeshProvider()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	for k := range object.KindCount {
		r.instances[k].label = k.String() + " Instances"
	}
	return r
}

func (r *renderer) Init() error {
	if r.initialized {
		return nil
	}

	// Workers persist across frames until Release; a WaitGroup provides the
	// per-frame barrier.
	if r.workers > 1 && r.pool == nil {
		r.pool = worker.NewDynamicWorkerPool(r.workers, 256, 1*time.Second)
	}

	for k := range object.KindCount {
		m := r.meshes.Mesh(k)
		vb, err := r.createFilled(m.Name()+" Vertices", BufferUsageVertex, m.VertexData())
		if err != nil {
			return err
		}
		ib, err := r.createFilled(m.Name()+" Indices", BufferUsageIndex, m.IndexData())
		if err != nil {
			return err
		}
		r.gpuMeshes[k] = Mesh{Vertices: vb, Indices: ib, IndexCount: uint32(m.IndexCount())}
	}

	var err error
	cu := camera.GPUCameraUniform{}
	if r.cameraBuf, err = r.device.CreateBuffer("Camera Uniform", BufferUsageUniform, uint64(cu.Size())); err != nil {
		return fmt.Errorf("create camera uniform: %w", err)
	}
	lu := light.GPULightUniform{}
	if r.lightBuf, err = r.device.CreateBuffer("Light Uniform", BufferUsageUniform, uint64(lu.Size())); err != nil {
		return fmt.Errorf("create light uniform: %w", err)
	}
	if err := r.device.BindUniforms(r.cameraBuf, r.lightBuf); err != nil {
		return fmt.Errorf("bind uniforms: %w", err)
	}

	r.initialized = true
	r.logger.Debug("renderer initialized", "kinds", int(object.KindCount), "workers", r.workers)
	return nil
}

func (r *renderer) createFilled(label string, usage BufferUsage, data []byte) (Buffer, error) {
	buf, err := r.device.CreateBuffer(label, usage, uint64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	if err := r.device.WriteBuffer(buf, data); err != nil {
		return nil, fmt.Errorf("write %s: %w", label, err)
	}
	return buf, nil
}

func (r *renderer) Submit(s scene.Scene) (FrameStatus, error) {
	if !r.initialized {
		return FrameSkipped, ErrNotInitialized
	}

	r.pack(s)

	if err := r.device.BeginFrame(s.Background()); err != nil {
		r.stats.FramesSkipped++
		if errors.Is(err, ErrSurfaceUnavailable) {
			return FrameSkipped, nil
		}
		return FrameSkipped, fmt.Errorf("begin frame: %w", err)
	}

	drawCalls, instances, err := r.record(s)
	if endErr := r.device.EndFrame(); endErr != nil && err == nil {
		err = fmt.Errorf("end frame: %w", endErr)
	}
	if err != nil {
		r.stats.FramesSkipped++
		return FrameSkipped, err
	}

	r.stats.FramesRendered++
	r.stats.DrawCalls = drawCalls
	r.stats.Instances = instances
	return FrameRendered, nil
}

// record writes the uniforms and issues the draws of an open frame.
func (r *renderer) record(s scene.Scene) (drawCalls, instances int, err error) {
	cu := camera.NewGPUCameraUniform(s.Camera(), s.Aspect())
	if err := r.device.WriteBuffer(r.cameraBuf, cu.Marshal()); err != nil {
		return 0, 0, fmt.Errorf("write camera uniform: %w", err)
	}
	lu := light.NewGPULightUniform(s.Ambient(), s.Lights())
	if err := r.device.WriteBuffer(r.lightBuf, lu.Marshal()); err != nil {
		return 0, 0, fmt.Errorf("write light uniform: %w", err)
	}

	for k := range object.KindCount {
		data := r.scratch[k]
		if len(data) == 0 {
			continue
		}
		grew, err := r.instances[k].upload(r.device, data)
		if grew {
			r.stats.Reallocations++
		}
		if err != nil {
			return drawCalls, instances, err
		}

		count := len(data) / object.GPUInstanceStride
		r.device.DrawIndexedInstanced(r.gpuMeshes[k], r.instances[k].buf, uint32(count))
		drawCalls++
		instances += count
	}
	return drawCalls, instances, nil
}

// pack fills scratch with the visible objects of every kind. Each task writes only
// its own kind's slots, so no locking is needed beyond the barrier.
func (r *renderer) pack(s scene.Scene) {
	if r.pool == nil {
		for k := range object.KindCount {
			r.packKind(k, s.Objects(k))
		}
	} else {
		var wg sync.WaitGroup
		var panics [object.KindCount]any
		for k := range object.KindCount {
			objs := s.Objects(k)
			if len(objs) == 0 {
				r.scratch[k] = r.scratch[k][:0]
				r.trails[k] = r.trails[k][:0]
				continue
			}
			wg.Add(1)
			kind := k
			r.pool.SubmitTask(worker.Task{
				ID: int(kind),
				Do: func() (any, error) {
					defer wg.Done()
					// a panic on a worker goroutine cannot be recovered by the caller
					defer func() {
						panics[kind] = recover()
					}()
					r.packKind(kind, objs)
					return nil, nil
				},
			})
		}
		wg.Wait()

		// raise the first one on the frame goroutine, as serial packing would
		for k, p := range panics {
			if p != nil {
				panic(fmt.Errorf("pack %s: %v", object.Kind(k), p))
			}
		}
	}

	for k := range object.KindCount {
		r.scratch[object.KindSphere] = append(r.scratch[object.KindSphere], r.trails[k]...)
	}
}

func (r *renderer) packKind(k object.Kind, objs []object.Object) {
	buf := r.scratch[k][:0]
	trail := r.trails[k][:0]
	for _, o := range objs {
		b := o.Common()
		if !b.Visible() {
			continue
		}
		inst := object.NewGPUInstance(o)
		buf = appendInstance(buf, &inst)
		for _, p := range b.Trail() {
			ti := object.NewTrailInstance(o, p)
			trail = appendInstance(trail, &ti)
		}
	}
	r.scratch[k] = buf
	r.trails[k] = trail
}

func appendInstance(buf []byte, inst *object.GPUInstance) []byte {
	n := len(buf)
	buf = slices.Grow(buf, object.GPUInstanceStride)[:n+object.GPUInstanceStride]
	inst.Put(buf[n:])
	return buf
}

func (r *renderer) Resize(width, height int) {
	r.device.Resize(width, height)
}

func (r *renderer) Stats() Stats {
	return r.stats
}

func (r *renderer) Capacity(kind object.Kind) uint64 {
	if kind < 0 || kind >= object.KindCount {
		return 0
	}
	return r.instances[kind].capacity
}

func (r *renderer) Release() {
	for k := range object.KindCount {
		r.instances[k].release(r.device)
		if m := r.gpuMeshes[k]; m.Vertices != nil {
			r.device.ReleaseBuffer(m.Vertices)
			r.device.ReleaseBuffer(m.Indices)
		}
		r.gpuMeshes[k] = Mesh{}
	}
	for _, b := range []Buffer{r.cameraBuf, r.lightBuf} {
		if b != nil {
			r.device.ReleaseBuffer(b)
		}
	}
	r.cameraBuf, r.lightBuf = nil, nil
	if r.pool != nil {
		r.pool.Stop()
		r.pool = nil
	}
	r.initialized = false
}
