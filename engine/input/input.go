package input

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-vis/common"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight

	buttonCount
)

// State is the mouse and keyboard state a backend populates from its event queue
// and the camera controller consumes once per frame.
//
// State is owned by the single frame execution context; it is not safe for
// concurrent use.
type State struct {
	x, y         float32
	prevX, prevY float32
	hasPointer   bool

	buttons [buttonCount]bool
	scroll  float32

	ctrl, shift, alt bool

	keys map[common.Key]bool
}

// NewState creates an empty input state with no buttons or keys down.
//
// Returns:
//   - *State: the new input state
func NewState() *State {
	return &State{keys: make(map[common.Key]bool)}
}

// SetPointer records the current pointer position in window pixels.
// The first recorded position also becomes the previous position so the first
// frame does not see a jump from the origin.
//
// Parameters:
//   - x, y: pointer position, y growing downwards
func (s *State) SetPointer(x, y float32) {
	s.x, s.y = x, y
	if !s.hasPointer {
		s.prevX, s.prevY = x, y
		s.hasPointer = true
	}
}

// Pointer returns the current pointer position.
func (s *State) Pointer() (x, y float32) {
	return s.x, s.y
}

// Previous returns the pointer position recorded at the end of the previous frame.
func (s *State) Previous() (x, y float32) {
	return s.prevX, s.prevY
}

// Delta returns the pointer movement since the previous frame (current minus previous).
func (s *State) Delta() (dx, dy float32) {
	return s.x - s.prevX, s.y - s.prevY
}

// SyncPrevious makes the current pointer position the previous one, so deltas are
// always frame-to-frame.
func (s *State) SyncPrevious() {
	s.prevX, s.prevY = s.x, s.y
}

// SetButton records a button press or release.
//
// Parameters:
//   - b: the button
//   - down: true when pressed
func (s *State) SetButton(b Button, down bool) {
	if b < 0 || b >= buttonCount {
		return
	}
	s.buttons[b] = down
}

// Button reports whether b is held down.
func (s *State) Button(b Button) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	return s.buttons[b]
}

// AddScroll accumulates a scroll delta. Positive values scroll up (zoom in).
func (s *State) AddScroll(delta float32) {
	s.scroll += delta
}

// Scroll returns the scroll delta accumulated since the last reset.
func (s *State) Scroll() float32 {
	return s.scroll
}

// ResetScroll zeroes the accumulated scroll delta.
func (s *State) ResetScroll() {
	s.scroll = 0
}

// SetModifiers records the modifier key state.
func (s *State) SetModifiers(ctrl, shift, alt bool) {
	s.ctrl, s.shift, s.alt = ctrl, shift, alt
}

// Ctrl reports whether a control key is held.
func (s *State) Ctrl() bool { return s.ctrl }

// Shift reports whether a shift key is held.
func (s *State) Shift() bool { return s.shift }

// Alt reports whether an alt key is held.
func (s *State) Alt() bool { return s.alt }

// SetKey records a key press or release.
//
// Parameters:
//   - k: the key code
//   - down: true when pressed
func (s *State) SetKey(k common.Key, down bool) {
	if k == common.KeyUnknown {
		return
	}
	if down {
		s.keys[k] = true
		return
	}
	delete(s.keys, k)
}

// KeyDown reports whether k is held.
func (s *State) KeyDown(k common.Key) bool {
	return s.keys[k]
}

// KeysDown returns every held key in ascending key code order.
//
// Returns:
//   - []common.Key: the held keys
func (s *State) KeysDown() []common.Key {
	out := make([]common.Key, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
