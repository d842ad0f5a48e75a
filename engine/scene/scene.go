package scene

import (
	"github.com/Carmen-Shannon/oxy-vis/engine/camera"
	"github.com/Carmen-Shannon/oxy-vis/engine/light"
	"github.com/Carmen-Shannon/oxy-vis/engine/object"
	"github.com/go-gl/mathgl/mgl32"
)

// Default canvas settings.
const (
	DefaultWidth  = 640
	DefaultHeight = 400
)

// DefaultAmbient is the ambient light color a new scene starts with.
var DefaultAmbient = mgl32.Vec3{0.2, 0.2, 0.2}

// Entry is a stable handle to an object: its kind and its index in that kind's container.
type Entry struct {
	Kind  object.Kind
	Index int
}

// Scene is the single source of truth for what exists and where: per-kind object
// containers, the traversal order of every added object, a camera, lights and canvas
// settings, plus the dirty flag that schedules redraws.
//
// Objects are append-only. Add never invalidates an earlier Entry; only Clear removes
// objects, and it removes all of them.
//
// Mutating an object in place through its own accessors does NOT mark the scene dirty.
// Callers that change an object after adding it must call MarkDirty themselves.
// Scene-level setters (camera, lights, ambient, background, size) mark dirty.
//
// A Scene is owned by the single frame execution context and is not safe for
// concurrent mutation. Concurrent reads while nothing mutates are fine.
type Scene interface {
	// Add appends obj to its kind's container and to the traversal order, then marks
	// the scene dirty.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - int: the entry index, 0..n-1 in insertion order, or -1 when obj is nil
	Add(obj object.Object) int

	// Clear removes every object and entry and marks the scene dirty.
	Clear()

	// MarkDirty flags the rendered image as stale.
	MarkDirty()

	// IsDirty reports whether the rendered image is stale.
	IsDirty() bool

	// ClearDirty resets the dirty flag. Only call it right after a completed render.
	ClearDirty()

	// Entries returns the traversal order of every added object.
	// The returned slice must not be modified.
	//
	// Returns:
	//   - []Entry: one entry per added object, in insertion order
	Entries() []Entry

	// Entry returns the entry at index i.
	//
	// Parameters:
	//   - i: the entry index returned by Add
	//
	// Returns:
	//   - Entry: the entry
	//   - bool: false when i is out of range
	Entry(i int) (Entry, bool)

	// Object resolves an entry to its object.
	//
	// Parameters:
	//   - e: the entry
	//
	// Returns:
	//   - object.Object: the object, or nil when the entry is not valid for this scene
	Object(e Entry) object.Object

	// ObjectCount returns the number of objects in the scene.
	ObjectCount() int

	// Objects returns the container for kind in insertion order.
	// The returned slice must not be modified.
	//
	// Parameters:
	//   - kind: the primitive kind
	//
	// Returns:
	//   - []object.Object: the kind's objects
	Objects(kind object.Kind) []object.Object

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera and marks the scene dirty. A nil camera
	// is ignored.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Lights returns the scene lights.
	Lights() []light.Light

	// AddLight appends a light and marks the scene dirty.
	//
	// Parameters:
	//   - l: the light to add
	AddLight(l light.Light)

	// ClearLights removes every light and marks the scene dirty.
	ClearLights()

	// Ambient returns the ambient light color.
	Ambient() mgl32.Vec3

	// SetAmbient sets the ambient light color and marks the scene dirty.
	SetAmbient(c mgl32.Vec3)

	// Background returns the clear color.
	Background() mgl32.Vec3

	// SetBackground sets the clear color and marks the scene dirty.
	SetBackground(c mgl32.Vec3)

	// Size returns the canvas size in pixels.
	Size() (width, height int)

	// SetSize records a new canvas size and marks the scene dirty.
	// Backends call it on resize so the next frame uses the new aspect ratio.
	//
	// Parameters:
	//   - width, height: the canvas size in pixels
	SetSize(width, height int)

	// Aspect returns width / height, or 1 when the height is zero.
	Aspect() float32

	// UpdateTrails records a trail point for every object with a trail whose position
	// changed since its last recorded point.
	//
	// Returns:
	//   - int: the number of points recorded
	UpdateTrails() int
}

type scene struct {
	kinds   [object.KindCount][]object.Object
	entries []Entry
	dirty   bool

	cam        camera.Camera
	lights     []light.Light
	ambient    mgl32.Vec3
	background mgl32.Vec3
	width      int
	height     int
}

var _ Scene = &scene{}

// NewScene creates an empty, dirty scene with a default camera, two distant lights,
// 0.2 gray ambient light, a black background and a 640×400 canvas, then applies the
// options.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		dirty:   true,
		cam:     camera.NewCamera(),
		lights:  light.DefaultLights(),
		ambient: DefaultAmbient,
		width:   DefaultWidth,
		height:  DefaultHeight,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Get resolves the entry at index i and asserts it to the concrete kind type T.
//
// Parameters:
//   - s: the scene
//   - i: the entry index returned by Add
//
// Returns:
//   - T: the typed object
//   - bool: false when i is out of range or the object is not a T
func Get[T object.Object](s Scene, i int) (T, bool) {
	var zero T
	e, ok := s.Entry(i)
	if !ok {
		return zero, false
	}
	t, ok := s.Object(e).(T)
	if !ok {
		return zero, false
	}
	return t, true
}

func (s *scene) Add(obj object.Object) int {
	if obj == nil {
		return -1
	}
	k := obj.Kind()
	if k < 0 || k >= object.KindCount {
		return -1
	}
	s.kinds[k] = append(s.kinds[k], obj)
	s.entries = append(s.entries, Entry{Kind: k, Index: len(s.kinds[k]) - 1})
	s.dirty = true
	return len(s.entries) - 1
}

func (s *scene) Clear() {
	for k := range s.kinds {
		s.kinds[k] = nil
	}
	s.entries = nil
	s.dirty = true
}

func (s *scene) MarkDirty() {
	s.dirty = true
}

func (s *scene) IsDirty() bool {
	return s.dirty
}

func (s *scene) ClearDirty() {
	s.dirty = false
}

func (s *scene) Entries() []Entry {
	return s.entries
}

func (s *scene) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[i], true
}

func (s *scene) Object(e Entry) object.Object {
	if e.Kind < 0 || e.Kind >= object.KindCount {
		return nil
	}
	c := s.kinds[e.Kind]
	if e.Index < 0 || e.Index >= len(c) {
		return nil
	}
	return c[e.Index]
}

func (s *scene) ObjectCount() int {
	return len(s.entries)
}

func (s *scene) Objects(kind object.Kind) []object.Object {
	if kind < 0 || kind >= object.KindCount {
		return nil
	}
	return s.kinds[kind]
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	if cam == nil {
		return
	}
	s.cam = cam
	s.dirty = true
}

func (s *scene) Lights() []light.Light {
	return s.lights
}

func (s *scene) AddLight(l light.Light) {
	if l == nil {
		return
	}
	s.lights = append(s.lights, l)
	s.dirty = true
}

func (s *scene) ClearLights() {
	s.lights = nil
	s.dirty = true
}

func (s *scene) Ambient() mgl32.Vec3 {
	return s.ambient
}

func (s *scene) SetAmbient(c mgl32.Vec3) {
	s.ambient = c
	s.dirty = true
}

func (s *scene) Background() mgl32.Vec3 {
	return s.background
}

func (s *scene) SetBackground(c mgl32.Vec3) {
	s.background = c
	s.dirty = true
}

func (s *scene) Size() (width, height int) {
	return s.width, s.height
}

func (s *scene) SetSize(width, height int) {
	s.width, s.height = width, height
	s.dirty = true
}

func (s *scene) Aspect() float32 {
	if s.height == 0 {
		return 1
	}
	return float32(s.width) / float32(s.height)
}

func (s *scene) UpdateTrails() int {
	recorded := 0
	for _, c := range s.kinds {
		for _, obj := range c {
			if obj.Common().RecordTrail() {
				recorded++
			}
		}
	}
	return recorded
}
