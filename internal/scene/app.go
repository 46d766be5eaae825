package scene

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// ErrUnknownScene is returned when a scene ID is not part of the App.
var ErrUnknownScene = errors.New("scene: unknown scene")

// App owns a set of scenes and runs exactly one of them at a time.
type App struct {
	ctx    *Context
	scenes []Scene
	active int
	paused bool
	ui     ButtonBar
	scores ScoreSink
}

// NewApp creates an App over the given scenes. No scene is active until Start.
func NewApp(ctx *Context, scenes ...Scene) *App {
	return &App{ctx: ctx, scenes: scenes, active: -1}
}

// SetScoreSink makes the App record each scene's score when it exits.
func (a *App) SetScoreSink(s ScoreSink) {
	a.scores = s
}

// Context returns the shared scene context.
func (a *App) Context() *Context {
	return a.ctx
}

// Scenes returns every scene known to the App.
func (a *App) Scenes() []Scene {
	return a.scenes
}

// Start activates the scene with the given ID.
func (a *App) Start(id string) error {
	return a.Change(id)
}

// Active returns the running scene, or nil before Start.
func (a *App) Active() Scene {
	if a.active < 0 {
		return nil
	}
	return a.scenes[a.active]
}

func (a *App) indexOf(id string) int {
	for i, s := range a.scenes {
		if s.ID() == id {
			return i
		}
	}
	return -1
}

// Change exits the active scene and enters the one with the given ID.
// OnExit of the old scene always runs before OnEnter of the new one.
func (a *App) Change(id string) error {
	next := a.indexOf(id)
	if next < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}

	a.exitActive()
	a.active = next
	a.paused = false
	a.ctx.Log.Info("scene changed", "scene", id)
	a.scenes[next].OnEnter(a.ctx)
	return nil
}

func (a *App) exitActive() {
	cur := a.Active()
	if cur == nil {
		return
	}
	cur.OnExit(a.ctx)

	score := cur.State().Score
	if a.scores == nil || score <= 0 {
		return
	}
	if _, err := a.scores.SaveScore(cur.ID(), score); err != nil {
		a.ctx.Log.Warn("failed to save score", "scene", cur.ID(), "err", err)
	}
}

// Paused reports whether updates are suspended.
func (a *App) Paused() bool {
	return a.paused
}

// TogglePause suspends or resumes Update calls. GUI callbacks keep running.
func (a *App) TogglePause() {
	a.paused = !a.paused
}

// Frame runs one frame of the active scene: Update, then OnGui, then any
// scene change requested during the frame.
func (a *App) Frame(in core.Input, dt float64) {
	cur := a.Active()
	if cur == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	a.ctx.Input = in

	if in.IsKeyPressed(core.KeyP) {
		a.TogglePause()
	}
	if !a.paused {
		cur.Update(a.ctx, dt)
	}

	a.ui.Begin(in)
	if g, ok := cur.(GuiScene); ok {
		g.OnGui(a.ctx, &a.ui)
	}

	if id, ok := a.ctx.Pending(); ok {
		a.ctx.next = ""
		if err := a.Change(id); err != nil {
			a.ctx.Log.Warn("ignoring scene change", "err", err)
		}
	}
}

// Render draws the active scene.
func (a *App) Render(dst core.Canvas) {
	if cur := a.Active(); cur != nil {
		cur.Render(dst)
	}
}

// UI returns the widgets declared during the last frame.
func (a *App) UI() *ButtonBar {
	return &a.ui
}

// State returns the active scene's state with the App's pause flag applied.
func (a *App) State() core.GameState {
	cur := a.Active()
	if cur == nil {
		return core.GameState{}
	}
	st := cur.State()
	st.Paused = st.Paused || a.paused
	return st
}

// Stop exits the active scene. The App can be restarted with Start.
func (a *App) Stop() {
	a.exitActive()
	a.active = -1
}
