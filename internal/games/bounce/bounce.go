// Package bounce is a demo of ships bouncing off the screen edges.
package bounce

import (
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/scene"
)

const (
	ID        = "bounce"
	ShipCount = 10
	Speed     = 500.0
)

// Ship is a top-left anchored box moving diagonally.
type Ship struct {
	Box     core.Box
	Dir     core.Vec2
	Texture core.Texture
}

// Scene holds the bouncing ships.
type Scene struct {
	bounds core.Bounds
	Ships  [ShipCount]Ship
}

func New() *Scene {
	s := &Scene{}
	s.layout(core.DefaultConfig().Bounds())
	return s
}

func init() {
	registry.Register(ID, func() scene.Scene { return New() })
}

// layout stacks the ships in evenly spaced rows along the left edge.
func (s *Scene) layout(bounds core.Bounds) {
	s.bounds = bounds
	space := bounds.H / ShipCount
	for i := range s.Ships {
		tex := core.TextureShip
		if i%2 == 1 {
			tex = core.TextureShipAlt
		}
		s.Ships[i] = Ship{
			Box:     core.Box{X: bounds.W * 0.1, Y: float64(i)*space + space*0.5, W: 60, H: 40},
			Dir:     core.V(1, 1),
			Texture: tex,
		}
	}
}

func (s *Scene) ID() string    { return ID }
func (s *Scene) Title() string { return "Bouncing Ships" }

func (s *Scene) OnEnter(ctx *scene.Context) {
	s.layout(ctx.Runtime.Bounds())
}

func (s *Scene) OnExit(*scene.Context) {}

// Update reflects each axis independently, then moves.
func (s *Scene) Update(_ *scene.Context, dt float64) {
	for i := range s.Ships {
		sh := &s.Ships[i]
		b := &sh.Box

		if b.Right() >= s.bounds.W {
			sh.Dir.X = -1
		} else if b.X <= 0 {
			sh.Dir.X = 1
		}

		if b.Bottom() >= s.bounds.H {
			sh.Dir.Y = -1
		} else if b.Y <= 0 {
			sh.Dir.Y = 1
		}

		b.X += sh.Dir.X * Speed * dt
		b.Y += sh.Dir.Y * Speed * dt
	}
}

func (s *Scene) Render(dst core.Canvas) {
	for _, sh := range s.Ships {
		dst.DrawTexture(sh.Texture, sh.Box, 0, core.ColorBrightWhite)
	}
}

func (s *Scene) OnGui(ctx *scene.Context, ui scene.UI) {
	if ui.Button("Title") {
		ctx.Change("title")
	}
}

func (s *Scene) State() core.GameState { return core.GameState{} }
