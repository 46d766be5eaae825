// Package title is the entry scene: one button per registered scene.
package title

import (
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/scene"
)

const ID = "title"

type Scene struct {
	targets []registry.SceneInfo
}

func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register(ID, func() scene.Scene { return New() })
}

func (s *Scene) ID() string    { return ID }
func (s *Scene) Title() string { return "Title" }

// OnEnter snapshots the registry so buttons keep a stable order while shown.
func (s *Scene) OnEnter(*scene.Context) {
	s.targets = s.targets[:0]
	for _, info := range registry.List() {
		if info.ID != ID {
			s.targets = append(s.targets, info)
		}
	}
}

func (s *Scene) OnExit(*scene.Context)          {}
func (s *Scene) Update(*scene.Context, float64) {}

func (s *Scene) Render(dst core.Canvas) {
	dst.DrawRect(core.Box{W: 1024, H: 768}, core.ColorBlack)
	dst.DrawRect(core.Box{X: 312, Y: 234, W: 400, H: 300}, core.ColorBrightWhite)
	dst.DrawText(440, 370, "A R C A D E", core.ColorBlack)
}

func (s *Scene) OnGui(ctx *scene.Context, ui scene.UI) {
	for _, info := range s.targets {
		if ui.Button(info.Title) {
			ctx.Change(info.ID)
		}
	}
}

func (s *Scene) State() core.GameState { return core.GameState{} }
