package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/scene"
)

type stubScene struct{ id string }

func (s stubScene) ID() string                     { return s.id }
func (s stubScene) Title() string                  { return "Stub " + s.id }
func (s stubScene) OnEnter(*scene.Context)         {}
func (s stubScene) OnExit(*scene.Context)          {}
func (s stubScene) Update(*scene.Context, float64) {}
func (s stubScene) Render(core.Canvas)             {}
func (s stubScene) State() core.GameState          { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() scene.Scene { return stubScene{id: "zz-stub"} })
	RegisterScored("aa-stub", func() scene.Scene { return stubScene{id: "aa-stub"} })

	if !Exists("zz-stub") || !Exists("aa-stub") {
		t.Fatal("registered scenes should exist")
	}

	s, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if s.Title() != "Stub zz-stub" {
		t.Errorf("Title() = %q", s.Title())
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}
	for _, info := range list {
		if info.ID == "aa-stub" && !info.Scored {
			t.Error("aa-stub should be scored")
		}
	}

	if got := len(CreateAll()); got != len(list) {
		t.Errorf("CreateAll() returned %d scenes, expected %d", got, len(list))
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Create(unknown) error = %v, expected ErrUnknownScene", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() scene.Scene { return stubScene{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", func() scene.Scene { return stubScene{id: "dup-stub"} })
}

func TestNewAppUsesFreshScenes(t *testing.T) {
	Register("mm-stub", func() scene.Scene { return stubScene{id: "mm-stub"} })

	ctx := scene.NewContext(core.DefaultConfig(), nil, nil, nil)
	a, b := NewApp(ctx), NewApp(ctx)

	if len(a.Scenes()) != len(List()) {
		t.Errorf("App has %d scenes, expected one per registration", len(a.Scenes()))
	}
	if err := a.Start("mm-stub"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if b.Active() != nil {
		t.Error("starting one App should not affect another")
	}
}
