//go:build !js

package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-vis/common"
	"github.com/Carmen-Shannon/oxy-vis/engine/input"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestButtonFor(t *testing.T) {
	tests := []struct {
		in   glfw.MouseButton
		want input.Button
		ok   bool
	}{
		{glfw.MouseButtonLeft, input.ButtonLeft, true},
		{glfw.MouseButtonMiddle, input.ButtonMiddle, true},
		{glfw.MouseButtonRight, input.ButtonRight, true},
		{glfw.MouseButton4, 0, false},
	}
	for _, tt := range tests {
		got, ok := buttonFor(tt.in)
		assert.Equal(t, tt.ok, ok)
		if ok {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, common.KeyA, keyFor(glfw.KeyA))
	assert.Equal(t, common.KeyEsc, keyFor(glfw.KeyEscape))
	assert.Equal(t, common.KeyUnknown, keyFor(glfw.KeyUnknown))
}

func TestSetModifiers(t *testing.T) {
	in := input.NewState()
	setModifiers(in, glfw.ModControl|glfw.ModAlt)
	assert.True(t, in.Ctrl())
	assert.False(t, in.Shift())
	assert.True(t, in.Alt())
}

func TestClosedWindow(t *testing.T) {
	w := &engineWindow{input: input.NewState()}
	assert.ErrorIs(t, w.Close(), ErrWindowNotInitialized)
	assert.False(t, w.IsRunning())
	assert.Nil(t, w.SurfaceDescriptor())
	w.PollEvents()

	var got [2]int
	w.SetResizeCallback(func(width, height int) { got = [2]int{width, height} })
	w.resized(640, 480)
	assert.Equal(t, [2]int{640, 480}, got)
	assert.Equal(t, 640, w.Width())
}
