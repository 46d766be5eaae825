package asteroids

import (
	"fmt"
	"time"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/scene"
)

// ID is the scene identifier used for registration and score storage.
const ID = "asteroids"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// tints are the base ship colors the Tint button cycles through.
var tints = []core.Color{core.ColorBrightWhite, core.ColorCyan, core.ColorGreen, core.ColorMagenta}

// Scene wraps a World as an arcade scene.
type Scene struct {
	world *World
	tint  int
}

// New creates an asteroids scene. The world is built on enter.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.RegisterScored(ID, func() scene.Scene { return New() })
}

// ID implements scene.Scene.
func (s *Scene) ID() string { return ID }

// Title implements scene.Scene.
func (s *Scene) Title() string { return "Asteroids" }

// World returns the running simulation, nil before the first enter.
func (s *Scene) World() *World { return s.world }

// OnEnter loads the configuration and starts a fresh field.
func (s *Scene) OnEnter(ctx *scene.Context) {
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		ctx.Log.Warn("using default asteroids config", "err", err)
		cfg = config.DefaultAsteroidsConfig()
	}
	config.ApplyAsteroidsPreset(&cfg, difficultyPreset)

	seed := ctx.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.world = NewWorld(cfg, seed, ctx.Log.With("scene", ID))
	s.world.Ship.BaseTint = tints[s.tint]
	s.world.Ship.Tint = tints[s.tint]

	ctx.Audio.PlaySound(core.SoundMusic, true)
	ctx.Audio.ResumeMusic()
	ctx.Log.Debug("asteroids started", "seed", seed, "preset", difficultyPreset)
}

// OnExit silences the music loop.
func (s *Scene) OnExit(ctx *scene.Context) {
	ctx.Audio.PauseMusic()
}

// Update implements scene.Scene.
func (s *Scene) Update(ctx *scene.Context, dt float64) {
	if s.world == nil {
		return
	}
	s.world.Step(ctx.Input, ctx.Audio, dt)
}

// Render draws the field, the bullets, the ship and a one-line HUD.
func (s *Scene) Render(dst core.Canvas) {
	w := s.world
	if w == nil {
		return
	}
	dst.DrawRect(w.bounds.Box(), core.ColorBlack)

	for t := range w.Asteroids {
		for i := range w.Asteroids[t] {
			a := &w.Asteroids[t][i]
			dst.DrawTexture(core.TextureAsteroid, a.Collider(), a.Heading(), core.ColorGray)
		}
	}
	for i := range w.Bullets {
		b := &w.Bullets[i]
		dst.DrawTexture(core.TextureBullet, b.Collider(), b.Heading(), core.ColorBrightYellow)
	}

	ship := &w.Ship
	dst.DrawTexture(core.TextureShip, ship.Collider(), ship.Heading(), ship.Tint)
	if ship.Exploding.Active() {
		dst.DrawTexture(core.TextureExplosion, ship.Collider().Scale(1.5), 0, core.ColorOrange)
	}

	hud := fmt.Sprintf("SCORE %d  HP %.0f/%.0f  DEATHS %d  ROCKS %d",
		w.Score, ship.Health, ship.MaxHealth, ship.Deaths, w.AsteroidCount())
	dst.DrawText(8, 8, hud, core.ColorBrightWhite)
}

// OnGui implements scene.GuiScene.
func (s *Scene) OnGui(ctx *scene.Context, ui scene.UI) {
	if ui.Button("Title") {
		ctx.Change("title")
	}
	if ui.Button("Tint") {
		s.tint = (s.tint + 1) % len(tints)
		if s.world != nil {
			s.world.Ship.BaseTint = tints[s.tint]
		}
	}
	if s.world != nil {
		sh := s.world.Ship
		ui.Label(fmt.Sprintf("Throttle %.3f", sh.Throttle))
		ui.Label(fmt.Sprintf("Heading %.0f°", sh.Heading()/core.DegToRad))
	}
}

// State implements scene.Scene.
func (s *Scene) State() core.GameState {
	if s.world == nil {
		return core.GameState{}
	}
	return core.GameState{Score: s.world.Score}
}
