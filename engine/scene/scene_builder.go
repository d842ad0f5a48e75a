package scene

import (
	"github.com/Carmen-Shannon/oxy-vis/engine/camera"
	"github.com/Carmen-Shannon/oxy-vis/engine/light"
	"github.com/Carmen-Shannon/oxy-vis/engine/object"
	"github.com/go-gl/mathgl/mgl32"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithCamera replaces the default camera.
//
// Parameters:
//   - cam: the camera to use (nil keeps the default)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		if cam != nil {
			s.cam = cam
		}
	}
}

// WithSize sets the initial canvas size in pixels.
//
// Parameters:
//   - width, height: the canvas size
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSize(width, height int) SceneBuilderOption {
	return func(s *scene) {
		s.width, s.height = width, height
	}
}

// WithBackground sets the clear color.
//
// Parameters:
//   - c: RGB color in [0, 1]
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBackground(c mgl32.Vec3) SceneBuilderOption {
	return func(s *scene) {
		s.background = c
	}
}

// WithAmbient sets the ambient light color.
//
// Parameters:
//   - c: RGB color in [0, 1]
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAmbient(c mgl32.Vec3) SceneBuilderOption {
	return func(s *scene) {
		s.ambient = c
	}
}

// WithLights replaces the default lights. Passing no lights leaves the scene lit by
// ambient light only.
//
// Parameters:
//   - lights: the lights to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lights = append([]light.Light(nil), lights...)
	}
}

// WithObjects adds initial objects to the scene in order.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...object.Object) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			s.Add(obj)
		}
	}
}
