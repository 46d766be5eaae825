// Package drift is the free-flight scene: a ship moved directly with WASD
// whose position, size and speed survive between runs.
package drift

import (
	"fmt"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/save"
	"github.com/vovakirdan/arcade-sim/internal/scene"
)

// ID is the scene identifier.
const ID = "drift"

// DefaultShip is used when no save exists.
var DefaultShip = save.ShipSave{X: 100, Y: 100, W: 60, H: 40, Speed: 250}

// Scene moves a top-left anchored ship box at a constant speed.
type Scene struct {
	ship  core.Box
	speed float64
}

// New creates a free-flight scene.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register(ID, func() scene.Scene { return New() })
}

// ID implements scene.Scene.
func (s *Scene) ID() string { return ID }

// Title implements scene.Scene.
func (s *Scene) Title() string { return "Free Flight" }

// Ship returns the ship box and speed.
func (s *Scene) Ship() (core.Box, float64) {
	return s.ship, s.speed
}

// OnEnter implements scene.Scene. It restores the saved ship, or DefaultShip.
func (s *Scene) OnEnter(ctx *scene.Context) {
	saved := DefaultShip
	if ctx.Saves != nil {
		loaded, ok, err := ctx.Saves.LoadShip()
		switch {
		case err != nil:
			ctx.Log.Warn("could not load ship", "err", err)
		case ok:
			saved = loaded
		}
	}
	s.ship = core.Box{X: saved.X, Y: saved.Y, W: saved.W, H: saved.H}
	s.speed = saved.Speed
}

// OnExit implements scene.Scene. It saves the ship.
func (s *Scene) OnExit(ctx *scene.Context) {
	if ctx.Saves == nil {
		return
	}
	err := ctx.Saves.SaveShip(save.ShipSave{
		X:     s.ship.X,
		Y:     s.ship.Y,
		W:     s.ship.W,
		H:     s.ship.H,
		Speed: s.speed,
	})
	if err != nil {
		ctx.Log.Error("could not save ship", "err", err)
	}
}

// Update implements scene.Scene.
func (s *Scene) Update(ctx *scene.Context, dt float64) {
	step := s.speed * dt
	in := ctx.Input
	if in.IsKeyDown(core.KeyA) {
		s.ship.X -= step
	}
	if in.IsKeyDown(core.KeyD) {
		s.ship.X += step
	}
	if in.IsKeyDown(core.KeyW) {
		s.ship.Y -= step
	}
	if in.IsKeyDown(core.KeyS) {
		s.ship.Y += step
	}
}

// Render implements scene.Scene.
func (s *Scene) Render(dst core.Canvas) {
	dst.DrawTexture(core.TextureShip, s.ship, 0, core.ColorBrightWhite)
	dst.DrawText(8, 8, fmt.Sprintf("X %.0f  Y %.0f", s.ship.X, s.ship.Y), core.ColorGray)
}

// OnGui implements scene.GuiScene.
func (s *Scene) OnGui(ctx *scene.Context, ui scene.UI) {
	if ui.Button("End") {
		ctx.Change("title")
	}
}

// State implements scene.Scene. Free flight keeps no score.
func (s *Scene) State() core.GameState { return core.GameState{} }
