package soundboard

import (
	"slices"
	"testing"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/scene"
)

func gui(s *Scene, ctx *scene.Context, keys ...core.Key) []string {
	var bar scene.ButtonBar
	in := core.NewInputFrame()
	in.Press(keys...)
	bar.Begin(in)
	s.OnGui(ctx, &bar)
	return slices.Clone(bar.Buttons())
}

func TestMusicStartsPaused(t *testing.T) {
	audio := &core.AudioLog{}
	ctx := scene.NewContext(core.DefaultConfig(), audio, nil, nil)
	s := New()

	s.OnEnter(ctx)
	if audio.Count(core.SoundMusic) != 1 || !audio.MusicPaused {
		t.Fatalf("music played %d times, paused=%v; expected started and paused",
			audio.Count(core.SoundMusic), audio.MusicPaused)
	}

	want := []string{"Resume", "Engine", "Explode", "Fire", "Teleport", "Title"}
	if got := gui(s, ctx); !slices.Equal(got, want) {
		t.Errorf("buttons = %v, expected %v", got, want)
	}

	s.OnExit(ctx)
	s.OnEnter(ctx)
	if audio.Count(core.SoundMusic) != 1 {
		t.Error("re-entering should not start a second music stream")
	}
}

func TestPauseResume(t *testing.T) {
	audio := &core.AudioLog{}
	ctx := scene.NewContext(core.DefaultConfig(), audio, nil, nil)
	s := New()
	s.OnEnter(ctx)

	got := gui(s, ctx, core.Key1)
	if !s.Playing() || audio.MusicPaused {
		t.Fatal("Resume should start the music")
	}
	if got[0] != "Resume" {
		t.Errorf("first button = %q, expected Resume", got[0])
	}

	if got := gui(s, ctx, core.Key1); got[0] != "Pause" {
		t.Errorf("first button = %q, expected Pause while playing", got[0])
	}
	if s.Playing() || !audio.MusicPaused {
		t.Error("Pause should stop the music")
	}
}

func TestEffectButtons(t *testing.T) {
	tests := []struct {
		key  core.Key
		want core.Sound
	}{
		{core.Key2, core.SoundEngine},
		{core.Key3, core.SoundExplode},
		{core.Key4, core.SoundFire},
		{core.Key5, core.SoundTeleport},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			audio := &core.AudioLog{}
			ctx := scene.NewContext(core.DefaultConfig(), audio, nil, nil)
			s := New()
			s.OnEnter(ctx)

			gui(s, ctx, tt.key)

			if audio.Count(tt.want) != 1 {
				t.Errorf("%v played %d times, expected 1", tt.want, audio.Count(tt.want))
			}
		})
	}
}
