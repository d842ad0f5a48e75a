package common

// Key is a virtual key code shared by every backend.
// Values match GLFW key codes, which use ASCII values for printable keys; the
// browser backend translates DOM KeyboardEvent.code strings into the same values.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key uint32

const (
	KeyA Key = 65 + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

const (
	Key0 Key = 48 + iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

const (
	KeySpace     Key = 32
	KeyEsc       Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265

	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346

	KeyUnknown Key = 0
)

// domKeyCodes maps DOM KeyboardEvent.code values onto Key codes.
var domKeyCodes = map[string]Key{
	"Space":        KeySpace,
	"Escape":       KeyEsc,
	"Enter":        KeyEnter,
	"Tab":          KeyTab,
	"Backspace":    KeyBackspace,
	"ArrowRight":   KeyRight,
	"ArrowLeft":    KeyLeft,
	"ArrowDown":    KeyDown,
	"ArrowUp":      KeyUp,
	"ShiftLeft":    KeyLeftShift,
	"ShiftRight":   KeyRightShift,
	"ControlLeft":  KeyLeftControl,
	"ControlRight": KeyRightControl,
	"AltLeft":      KeyLeftAlt,
	"AltRight":     KeyRightAlt,
}

// KeyFromDOMCode translates a DOM KeyboardEvent.code ("KeyW", "Digit3", "ArrowUp", ...)
// into a Key. Unrecognized codes map to KeyUnknown.
//
// Parameters:
//   - code: the KeyboardEvent.code string
//
// Returns:
//   - Key: the matching key code, or KeyUnknown
func KeyFromDOMCode(code string) Key {
	if k, ok := domKeyCodes[code]; ok {
		return k
	}
	if len(code) == 4 && code[:3] == "Key" && code[3] >= 'A' && code[3] <= 'Z' {
		return Key(code[3])
	}
	if len(code) == 6 && code[:5] == "Digit" && code[5] >= '0' && code[5] <= '9' {
		return Key(code[5])
	}
	return KeyUnknown
}
