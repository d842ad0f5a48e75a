package engine

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-vis/engine/config"
	"github.com/Carmen-Shannon/oxy-vis/engine/input"
	"github.com/Carmen-Shannon/oxy-vis/engine/object"
	"github.com/Carmen-Shannon/oxy-vis/engine/renderer"
	"github.com/Carmen-Shannon/oxy-vis/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by tick on every Now call so the timer's spin-wait terminates.
type fakeClock struct {
	now  time.Time
	tick time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.tick)
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

type fakeBackend struct {
	status    renderer.FrameStatus
	err       error
	panicWith any
	submits   int
	polls     int
	stopAfter int
	resized   [2]int
	onResize  func(width, height int)
	onPoll    func()
}

func (b *fakeBackend) SubmitFrame(s scene.Scene) (renderer.FrameStatus, error) {
	b.submits++
	if b.panicWith != nil {
		panic(b.panicWith)
	}
	return b.status, b.err
}

func (b *fakeBackend) Resize(width, height int) { b.resized = [2]int{width, height} }
func (b *fakeBackend) SetResizeCallback(callback func(width, height int)) { b.onResize = callback }

func (b *fakeBackend) PollEvents() {
	b.polls++
	if b.onPoll != nil {
		b.onPoll()
	}
}

func (b *fakeBackend) ShouldStop() bool {
	return b.stopAfter > 0 && b.polls >= b.stopAfter
}

func newTestEngine(t *testing.T, b *fakeBackend, options ...EngineBuilderOption) (Engine, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	clock := &fakeClock{now: time.Unix(1000, 0), tick: time.Millisecond}
	options = append([]EngineBuilderOption{
		WithClock(clock),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	}, options...)
	return NewEngine(b, scene.NewScene(), input.NewState(), options...), &logs
}

func TestRunOnceRendersOnlyWhenDirty(t *testing.T) {
	b := &fakeBackend{}
	e, _ := newTestEngine(t, b)

	require.True(t, e.Scene().IsDirty(), "a new scene starts dirty")
	e.RunOnce()
	assert.Equal(t, 1, b.submits)
	assert.False(t, e.Scene().IsDirty())

	e.RunOnce()
	assert.Equal(t, 1, b.submits, "clean scene is not resubmitted")

	e.Scene().MarkDirty()
	e.RunOnce()
	assert.Equal(t, 2, b.submits)
	assert.Equal(t, uint64(2), e.Stats().Rendered)
}

func TestCallbackMutationsAreDrawnSameIteration(t *testing.T) {
	b := &fakeBackend{}
	e, _ := newTestEngine(t, b)
	e.RunOnce()

	ball := object.NewSphere()
	e.Scene().Add(ball)
	e.SetUpdateCallback(func(dt float32) {
		ball.SetPos(ball.Pos().Add(mgl32.Vec3{dt, 0, 0}))
		e.Scene().MarkDirty()
	})
	e.RunOnce()
	assert.Equal(t, 2, b.submits)
}

func TestSkippedFrameKeepsDirty(t *testing.T) {
	b := &fakeBackend{status: renderer.FrameSkipped}
	e, _ := newTestEngine(t, b)

	e.RunOnce()
	e.RunOnce()
	assert.Equal(t, 2, b.submits)
	assert.True(t, e.Scene().IsDirty())
	assert.Equal(t, uint64(2), e.Stats().Skipped)
	assert.Zero(t, e.Stats().Errors)
}

func TestSubmitErrorIsLoggedAndRetried(t *testing.T) {
	b := &fakeBackend{status: renderer.FrameSkipped, err: errors.New("device lost")}
	e, logs := newTestEngine(t, b)

	e.RunOnce()
	assert.True(t, e.Scene().IsDirty())
	assert.Equal(t, uint64(1), e.Stats().Errors)
	assert.Contains(t, logs.String(), "device lost")

	b.status, b.err = renderer.FrameRendered, nil
	e.RunOnce()
	assert.False(t, e.Scene().IsDirty())
}

func TestSubmitPanicIsRecovered(t *testing.T) {
	b := &fakeBackend{panicWith: "boom"}
	e, logs := newTestEngine(t, b)

	assert.NotPanics(t, e.RunOnce)
	assert.Equal(t, uint64(1), e.Stats().Panics)
	assert.True(t, e.Scene().IsDirty())
	assert.Contains(t, logs.String(), "boom")
}

func TestCameraInputMarksDirty(t *testing.T) {
	b := &fakeBackend{}
	e, _ := newTestEngine(t, b)
	e.RunOnce()
	require.False(t, e.Scene().IsDirty())

	before := e.Scene().Camera().Position()
	e.Input().AddScroll(-5)
	e.RunOnce()

	assert.Equal(t, 2, b.submits)
	assert.Zero(t, e.Input().Scroll())
	assert.InDelta(t, 1.5*before.Len(), e.Scene().Camera().Position().Len(), 1e-4)
}

func TestUpdateDeltaFollowsClock(t *testing.T) {
	b := &fakeBackend{}
	clock := &fakeClock{now: time.Unix(0, 0)}
	var deltas []float32
	e := NewEngine(b, scene.NewScene(), input.NewState(),
		WithClock(clock),
		WithRate(50),
		WithUpdateCallback(func(dt float32) { deltas = append(deltas, dt) }),
	)

	e.RunOnce()
	clock.now = clock.now.Add(100 * time.Millisecond)
	e.RunOnce()

	require.Len(t, deltas, 2)
	assert.InDelta(t, 0.02, deltas[0], 1e-6, "first update reports one period")
	assert.InDelta(t, 0.1, deltas[1], 1e-6)
}

func TestRunStopsOnBackend(t *testing.T) {
	b := &fakeBackend{stopAfter: 4}
	e, _ := newTestEngine(t, b)
	iterations := 0
	e.SetUpdateCallback(func(float32) { iterations++ })

	e.Run()
	assert.Equal(t, 3, iterations, "the iteration whose poll requested stop is not run")
}

func TestRunStopsOnPredicateAndQuit(t *testing.T) {
	b := &fakeBackend{}
	n := 0
	e, _ := newTestEngine(t, b, WithStopWhen(func() bool { return n >= 5 }))
	e.SetUpdateCallback(func(float32) { n++ })
	e.Run()
	assert.Equal(t, 5, n)

	b2 := &fakeBackend{}
	e2, _ := newTestEngine(t, b2)
	b2.onPoll = func() {
		if b2.polls == 2 {
			e2.Quit()
		}
	}
	e2.Run()
	assert.Equal(t, uint64(1), e2.Stats().Iterations)
}

func TestSetRateIgnoresNonPositive(t *testing.T) {
	e, _ := newTestEngine(t, &fakeBackend{}, WithRate(30))
	assert.Equal(t, 30.0, e.Rate())
	e.SetRate(0)
	e.SetRate(-1)
	assert.Equal(t, 30.0, e.Rate())
	e.SetRate(120)
	assert.Equal(t, 120.0, e.Rate())
}

func TestResizeCallbackUpdatesSceneAndBackend(t *testing.T) {
	b := &fakeBackend{}
	e, _ := newTestEngine(t, b)
	e.RunOnce()
	require.NotNil(t, b.onResize)

	b.onResize(1024, 512)
	w, h := e.Scene().Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 512, h)
	assert.Equal(t, [2]int{1024, 512}, b.resized)
	assert.True(t, e.Scene().IsDirty())
}

func TestConfigUpdatesApplyLive(t *testing.T) {
	updates := make(chan config.Config, 2)
	b := &fakeBackend{}
	e, logs := newTestEngine(t, b, WithConfigUpdates(updates))

	cfg := config.Default()
	cfg.Rate = 24
	cfg.Camera.Orbit = 0.02
	cfg.Camera.Pan = -1
	updates <- cfg
	e.RunOnce()

	assert.Equal(t, 24.0, e.Rate())
	assert.Equal(t, float32(0.02), e.Controller().Sensitivity().Orbit)
	assert.Equal(t, config.Default().Camera.Pan, e.Controller().Sensitivity().Pan, "non-positive kept")
	assert.Contains(t, logs.String(), "config reloaded")

	close(updates)
	assert.NotPanics(t, e.RunOnce)
}

func TestWithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Rate = 90
	cfg.Camera.Zoom = 0.5
	e, _ := newTestEngine(t, &fakeBackend{}, WithConfig(cfg))
	assert.Equal(t, 90.0, e.Rate())
	assert.Equal(t, float32(0.5), e.Controller().Sensitivity().Zoom)
}
