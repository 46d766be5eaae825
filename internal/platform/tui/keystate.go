package tui

import (
	"time"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// DefaultHoldWindow covers the gap between a terminal's first key event and
// its auto-repeat, so a held key does not flicker up between events.
const DefaultHoldWindow = 550 * time.Millisecond

// KeyState implements core.Input for terminals, which report key presses and
// auto-repeats but never releases. A key counts as held for a number of
// frames after its latest event; it is pressed only on the frame it first
// goes down.
type KeyState struct {
	holdFrames int
	remaining  map[core.Key]int
	pressed    map[core.Key]bool
}

// NewKeyState creates a key state whose hold window lasts holdFrames frames.
func NewKeyState(holdFrames int) *KeyState {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &KeyState{
		holdFrames: holdFrames,
		remaining:  make(map[core.Key]int),
		pressed:    make(map[core.Key]bool),
	}
}

// HoldFramesFor converts a hold window to frames at the given tick rate.
func HoldFramesFor(window time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return int(window * time.Duration(tickRate) / time.Second)
}

// Touch records a key event.
func (ks *KeyState) Touch(k core.Key) {
	if k == core.KeyNone {
		return
	}
	if ks.remaining[k] == 0 {
		ks.pressed[k] = true
	}
	ks.remaining[k] = ks.holdFrames
}

// Release drops a key immediately.
func (ks *KeyState) Release(k core.Key) {
	delete(ks.remaining, k)
	delete(ks.pressed, k)
}

// Advance ends a frame: presses expire and hold windows shrink.
func (ks *KeyState) Advance() {
	clear(ks.pressed)
	for k, n := range ks.remaining {
		if n <= 1 {
			delete(ks.remaining, k)
		} else {
			ks.remaining[k] = n - 1
		}
	}
}

// IsKeyDown implements core.Input.
func (ks *KeyState) IsKeyDown(k core.Key) bool {
	return ks.remaining[k] > 0
}

// IsKeyPressed implements core.Input.
func (ks *KeyState) IsKeyPressed(k core.Key) bool {
	return ks.pressed[k]
}
