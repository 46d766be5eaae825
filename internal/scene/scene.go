// Package scene defines the scene contract and the App state machine that
// switches between scenes. Scenes contain pure logic; frontends supply input,
// drawing and audio through the capabilities in core.
package scene

import (
	"github.com/vovakirdan/arcade-sim/internal/core"
)

// Scene is the interface every screen of the arcade implements.
type Scene interface {
	// ID returns a unique identifier (e.g., "asteroids", "turrets").
	// Used for CLI commands, scene changes and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// OnEnter is called when the scene becomes active.
	// Scenes reset their state and load persisted data here.
	OnEnter(ctx *Context)

	// OnExit is called when the scene stops being active.
	OnExit(ctx *Context)

	// Update advances the scene by dt seconds.
	Update(ctx *Context, dt float64)

	// Render draws the current state. The canvas is pre-cleared.
	Render(dst core.Canvas)

	// State returns the current status (score, paused).
	State() core.GameState
}

// GuiScene is implemented by scenes that expose immediate-mode buttons.
// OnGui is called once per frame after Update.
type GuiScene interface {
	Scene
	OnGui(ctx *Context, ui UI)
}

// UI is the immediate-mode widget capability handed to OnGui.
type UI interface {
	// Button declares a button and reports whether it was activated this frame.
	Button(label string) bool
	// Label declares a line of read-only text.
	Label(text string)
}

// ScoreSink records final scores. Implemented by storage.Store.
type ScoreSink interface {
	SaveScore(sceneID string, score int) (int64, error)
}
