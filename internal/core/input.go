package core

// Key is a physical key, abstracted from the frontend's own key codes.
type Key int

const (
	KeyNone Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyT
	KeyR
	KeyE
	KeyP
	KeyEnter
	KeyEscape
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

var keyNames = map[Key]string{
	KeyW: "W", KeyA: "A", KeyS: "S", KeyD: "D",
	KeyUp: "Up", KeyDown: "Down", KeyLeft: "Left", KeyRight: "Right",
	KeySpace: "Space", KeyT: "T", KeyR: "R", KeyE: "E", KeyP: "P",
	KeyEnter: "Enter", KeyEscape: "Escape",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if k >= Key1 && k <= Key9 {
		return string(rune('1' + k - Key1))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "None"
}

// DigitKey returns the key for button slot i (0 → Key1).
// Slots past 9 have no key.
func DigitKey(i int) Key {
	if i < 0 || i > 8 {
		return KeyNone
	}
	return Key1 + Key(i)
}

// Input reports keyboard state for the current frame.
type Input interface {
	// IsKeyDown reports whether the key is held this frame.
	IsKeyDown(k Key) bool
	// IsKeyPressed reports whether the key went down this frame.
	IsKeyPressed(k Key) bool
}

// AnyDown reports whether any of the keys is held.
func AnyDown(in Input, keys ...Key) bool {
	for _, k := range keys {
		if in.IsKeyDown(k) {
			return true
		}
	}
	return false
}

// InputFrame is a plain Input implementation holding one frame of key state.
// Frontends that compute state up front and tests use it directly.
type InputFrame struct {
	Down    map[Key]bool
	Pressed map[Key]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Down:    make(map[Key]bool),
		Pressed: make(map[Key]bool),
	}
}

// Hold marks a key as held.
func (f *InputFrame) Hold(keys ...Key) {
	if f.Down == nil {
		f.Down = make(map[Key]bool)
	}
	for _, k := range keys {
		f.Down[k] = true
	}
}

// Press marks a key as pressed this frame. A pressed key is also held.
func (f *InputFrame) Press(keys ...Key) {
	if f.Pressed == nil {
		f.Pressed = make(map[Key]bool)
	}
	for _, k := range keys {
		f.Pressed[k] = true
	}
	f.Hold(keys...)
}

// IsKeyDown implements Input.
func (f InputFrame) IsKeyDown(k Key) bool {
	return f.Down[k]
}

// IsKeyPressed implements Input.
func (f InputFrame) IsKeyPressed(k Key) bool {
	return f.Pressed[k]
}

// Clear resets all keys for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Down)
	clear(f.Pressed)
}
