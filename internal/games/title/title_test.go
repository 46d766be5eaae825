package title

import (
	"testing"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/scene"
)

type stubScene struct {
	id, title string
}

func (s stubScene) ID() string                   { return s.id }
func (s stubScene) Title() string                { return s.title }
func (stubScene) OnEnter(*scene.Context)         {}
func (stubScene) OnExit(*scene.Context)          {}
func (stubScene) Update(*scene.Context, float64) {}
func (stubScene) Render(core.Canvas)             {}
func (stubScene) State() core.GameState          { return core.GameState{} }

func init() {
	registry.Register("a-stub", func() scene.Scene { return stubScene{"a-stub", "Alpha"} })
	registry.Register("z-stub", func() scene.Scene { return stubScene{"z-stub", "Zulu"} })
}

func TestButtonsListOtherScenes(t *testing.T) {
	ctx := scene.NewContext(core.DefaultConfig(), nil, nil, nil)
	s := New()
	s.OnEnter(ctx)

	var bar scene.ButtonBar
	in := core.NewInputFrame()
	in.Press(core.Key2)
	bar.Begin(in)
	s.OnGui(ctx, &bar)

	got := bar.Buttons()
	if len(got) != 2 || got[0] != "Alpha" || got[1] != "Zulu" {
		t.Fatalf("buttons = %v, expected [Alpha Zulu] without the title itself", got)
	}
	if id, _ := ctx.Pending(); id != "z-stub" {
		t.Errorf("pending = %q, expected z-stub", id)
	}
}
