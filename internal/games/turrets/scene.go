package turrets

import (
	"fmt"
	"time"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/scene"
)

// ID is the scene identifier.
const ID = "turrets"

// Scene is the turret lab. Turrets persist through the context's save store.
type Scene struct {
	lab *Lab
}

// New creates a turret lab scene.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register(ID, func() scene.Scene { return New() })
}

func (s *Scene) ID() string    { return ID }
func (s *Scene) Title() string { return "Turret Lab" }

// Lab returns the running lab, nil before the first enter.
func (s *Scene) Lab() *Lab { return s.lab }

// OnEnter restores saved turrets.
func (s *Scene) OnEnter(ctx *scene.Context) {
	seed := ctx.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.lab = NewLab(ctx.Runtime.Bounds(), seed)

	if ctx.Saves == nil {
		return
	}
	saved, ok, err := ctx.Saves.LoadTurrets()
	if err != nil {
		ctx.Log.Warn("could not load turrets", "err", err)
		return
	}
	if ok {
		s.lab.Restore(saved)
		ctx.Log.Debug("turrets restored", "count", s.lab.Turrets.Len())
	}
}

// OnExit saves the turrets.
func (s *Scene) OnExit(ctx *scene.Context) {
	if s.lab == nil || ctx.Saves == nil {
		return
	}
	if err := ctx.Saves.SaveTurrets(s.lab.Snapshot()); err != nil {
		ctx.Log.Error("could not save turrets", "err", err)
	}
}

func (s *Scene) Update(ctx *scene.Context, dt float64) {
	if s.lab != nil {
		s.lab.Step(ctx.Input, dt)
	}
}

func (s *Scene) Render(dst core.Canvas) {
	if s.lab == nil {
		return
	}
	s.lab.Turrets.Each(func(_ core.EntityID, t *Turret) {
		dst.DrawRect(t.Box, core.ColorGreen)
	})
	for _, e := range s.lab.Enemies {
		dst.DrawRect(e.Box, core.ColorRed)
	}
	for _, b := range s.lab.Bullets {
		dst.DrawRect(b.Box, core.ColorBlue)
	}
	dst.DrawText(8, 8, fmt.Sprintf("TURRETS %d  ENEMIES %d  KILLS %d",
		s.lab.Turrets.Len(), len(s.lab.Enemies), s.lab.TotalKills()), core.ColorBrightWhite)
}

func (s *Scene) OnGui(ctx *scene.Context, ui scene.UI) {
	if ui.Button("Title") {
		ctx.Change("title")
	}
	ui.Label("T turret  R remove  E enemy")
}

func (s *Scene) State() core.GameState {
	if s.lab == nil {
		return core.GameState{}
	}
	return core.GameState{Score: s.lab.TotalKills()}
}
