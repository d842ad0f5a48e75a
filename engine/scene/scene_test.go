package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-vis/engine/camera"
	"github.com/Carmen-Shannon/oxy-vis/engine/light"
	"github.com/Carmen-Shannon/oxy-vis/engine/object"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSceneDefaults(t *testing.T) {
	s := NewScene()
	w, h := s.Size()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
	assert.Equal(t, mgl32.Vec3{}, s.Background())
	assert.Equal(t, DefaultAmbient, s.Ambient())
	assert.Len(t, s.Lights(), 2)
	assert.NotNil(t, s.Camera())
	assert.True(t, s.IsDirty(), "a new scene has never been rendered")
	assert.Zero(t, s.ObjectCount())
}

func TestAddReturnsInsertionOrderIndices(t *testing.T) {
	s := NewScene()
	objs := []object.Object{
		object.NewSphere(),
		object.NewBox(),
		object.NewSphere(),
		object.NewArrow(),
		object.NewBox(),
	}
	for i, o := range objs {
		s.ClearDirty()
		assert.Equal(t, i, s.Add(o))
		assert.True(t, s.IsDirty())
	}

	require.Equal(t, len(objs), s.ObjectCount())
	for i, e := range s.Entries() {
		assert.Same(t, objs[i], s.Object(e))
	}
	assert.Equal(t, Entry{Kind: object.KindSphere, Index: 1}, s.Entries()[2])
	assert.Len(t, s.Objects(object.KindBox), 2)
	assert.Empty(t, s.Objects(object.KindHelix))
}

func TestAddNil(t *testing.T) {
	s := NewScene()
	s.ClearDirty()
	assert.Equal(t, -1, s.Add(nil))
	assert.False(t, s.IsDirty())
	assert.Zero(t, s.ObjectCount())
}

func TestClear(t *testing.T) {
	s := NewScene(WithObjects(object.NewSphere(), object.NewCone()))
	require.Equal(t, 2, s.ObjectCount())
	s.ClearDirty()

	s.Clear()
	assert.True(t, s.IsDirty())
	assert.Zero(t, s.ObjectCount())
	assert.Empty(t, s.Objects(object.KindSphere))

	assert.Equal(t, 0, s.Add(object.NewRing()), "indices restart after clear")
}

func TestGet(t *testing.T) {
	s := NewScene()
	s.Add(object.NewBox(object.WithLength(3)))
	i := s.Add(object.NewSphere(object.WithRadius(2)))

	sp, ok := Get[*object.Sphere](s, i)
	require.True(t, ok)
	assert.Equal(t, float32(2), sp.Radius())

	_, ok = Get[*object.Box](s, i)
	assert.False(t, ok)
	_, ok = Get[*object.Sphere](s, 7)
	assert.False(t, ok)
}

func TestEntryAndObjectBounds(t *testing.T) {
	s := NewScene()
	_, ok := s.Entry(0)
	assert.False(t, ok)
	assert.Nil(t, s.Object(Entry{Kind: object.KindBox, Index: 0}))
	assert.Nil(t, s.Object(Entry{Kind: object.KindCount}))
	assert.Nil(t, s.Objects(object.Kind(-1)))
}

func TestObjectMutationDoesNotMarkDirty(t *testing.T) {
	s := NewScene()
	sp := object.NewSphere()
	s.Add(sp)
	s.ClearDirty()

	sp.SetPos(mgl32.Vec3{1, 0, 0})
	assert.False(t, s.IsDirty())
	s.MarkDirty()
	assert.True(t, s.IsDirty())
}

func TestSceneSettersMarkDirty(t *testing.T) {
	setters := map[string]func(Scene){
		"camera":       func(s Scene) { s.SetCamera(camera.NewCamera()) },
		"add light":    func(s Scene) { s.AddLight(light.NewLocalLight(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})) },
		"clear lights": func(s Scene) { s.ClearLights() },
		"ambient":      func(s Scene) { s.SetAmbient(mgl32.Vec3{0.1, 0.1, 0.1}) },
		"background":   func(s Scene) { s.SetBackground(mgl32.Vec3{1, 1, 1}) },
		"size":         func(s Scene) { s.SetSize(800, 600) },
	}
	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			s := NewScene()
			s.ClearDirty()
			set(s)
			assert.True(t, s.IsDirty())
		})
	}
}

func TestAspect(t *testing.T) {
	s := NewScene(WithSize(800, 400))
	assert.Equal(t, float32(2), s.Aspect())
	s.SetSize(800, 0)
	assert.Equal(t, float32(1), s.Aspect())
}

func TestUpdateTrails(t *testing.T) {
	s := NewScene()
	ball := object.NewSphere(object.WithTrail(0.1, 0))
	s.Add(ball)
	s.Add(object.NewBox())

	assert.Equal(t, 1, s.UpdateTrails())
	assert.Equal(t, 0, s.UpdateTrails(), "unmoved object records nothing")

	ball.SetPos(mgl32.Vec3{0, 1, 0})
	assert.Equal(t, 1, s.UpdateTrails())
	assert.Len(t, ball.Trail(), 2)
}

func TestWithLightsReplacesDefaults(t *testing.T) {
	s := NewScene(WithLights())
	assert.Empty(t, s.Lights())
}
