// Package soundboard plays each sound effect on demand and toggles the music.
package soundboard

import (
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/scene"
)

const ID = "soundboard"

// effects lists the buttons after Pause/Resume, in order.
var effects = []struct {
	label string
	sound core.Sound
}{
	{"Engine", core.SoundEngine},
	{"Explode", core.SoundExplode},
	{"Fire", core.SoundFire},
	{"Teleport", core.SoundTeleport},
}

// Scene is the sound board. The music loop is started once, paused, and
// only ever paused or resumed afterwards.
type Scene struct {
	started bool
	playing bool
}

func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register(ID, func() scene.Scene { return New() })
}

func (s *Scene) ID() string    { return ID }
func (s *Scene) Title() string { return "Sound Board" }

// Playing reports whether the music is audible.
func (s *Scene) Playing() bool { return s.playing }

func (s *Scene) OnEnter(ctx *scene.Context) {
	if !s.started {
		ctx.Audio.PlaySound(core.SoundMusic, true)
		s.started = true
	}
	if !s.playing {
		ctx.Audio.PauseMusic()
	}
}

func (s *Scene) OnExit(ctx *scene.Context) {
	ctx.Audio.PauseMusic()
}

func (s *Scene) Update(*scene.Context, float64) {}

func (s *Scene) Render(dst core.Canvas) {
	status := "music paused"
	if s.playing {
		status = "music playing"
	}
	dst.DrawText(8, 8, status, core.ColorGray)
}

func (s *Scene) OnGui(ctx *scene.Context, ui scene.UI) {
	if s.playing {
		if ui.Button("Pause") {
			s.playing = false
			ctx.Audio.PauseMusic()
		}
	} else if ui.Button("Resume") {
		s.playing = true
		ctx.Audio.ResumeMusic()
	}

	for _, e := range effects {
		if ui.Button(e.label) {
			ctx.Audio.PlaySound(e.sound, false)
		}
	}

	if ui.Button("Title") {
		ctx.Change("title")
	}
}

func (s *Scene) State() core.GameState { return core.GameState{} }
