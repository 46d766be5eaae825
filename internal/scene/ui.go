package scene

import (
	"github.com/vovakirdan/arcade-sim/internal/core"
)

// ButtonBar is a keyboard-driven UI: the i-th button declared in a frame is
// activated by digit key i+1. Frontends draw the declared widgets afterwards.
type ButtonBar struct {
	in      core.Input
	buttons []string
	labels  []string
}

// Begin starts a new frame of widget declarations.
func (b *ButtonBar) Begin(in core.Input) {
	b.in = in
	b.buttons = b.buttons[:0]
	b.labels = b.labels[:0]
}

// Button implements UI.
func (b *ButtonBar) Button(label string) bool {
	key := core.DigitKey(len(b.buttons))
	b.buttons = append(b.buttons, label)
	if key == core.KeyNone || b.in == nil {
		return false
	}
	return b.in.IsKeyPressed(key)
}

// Label implements UI.
func (b *ButtonBar) Label(text string) {
	b.labels = append(b.labels, text)
}

// Buttons returns the buttons declared this frame, in key order.
func (b *ButtonBar) Buttons() []string {
	return b.buttons
}

// Labels returns the labels declared this frame.
func (b *ButtonBar) Labels() []string {
	return b.labels
}
