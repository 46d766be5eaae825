// Package asteroids implements the fixed-step asteroid field simulation:
// a throttle-driven ship, bullets, three tiers of splitting asteroids and
// a timed spawner, all inside a wrapping world.
package asteroids

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
)

// World owns the ship and every entity collection.
type World struct {
	cfg        config.AsteroidsConfig
	bounds     core.Bounds
	rng        *core.Rand
	log        *log.Logger
	difficulty *config.DifficultyManager

	Ship      Ship
	Bullets   []Bullet
	Asteroids [tierCount][]Asteroid

	spawnTimer core.Timer

	Score int
	Steps int
}

// NewWorld creates a world from a validated config.
func NewWorld(cfg config.AsteroidsConfig, seed int64, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		cfg:    cfg,
		bounds: core.Bounds{W: cfg.World.Width, H: cfg.World.Height},
		rng:    core.NewRand(seed),
		log:    logger,
	}
	w.Reset()
	return w
}

// Reset restores the starting state: a centered ship and an empty field.
func (w *World) Reset() {
	w.difficulty = config.NewDifficultyManager(w.cfg.Difficulty)
	w.Ship = newShip(w.cfg.Ship, w.bounds)
	w.Bullets = w.Bullets[:0]
	for t := range w.Asteroids {
		w.Asteroids[t] = w.Asteroids[t][:0]
	}
	w.spawnTimer = core.NewTimer(w.cfg.Asteroids.SpawnPeriod)
	w.Score = 0
	w.Steps = 0
}

// Bounds returns the world area.
func (w *World) Bounds() core.Bounds {
	return w.bounds
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.AsteroidsConfig {
	return w.cfg
}

func (w *World) tier(t Tier) config.TierConfig {
	switch t {
	case Large:
		return w.cfg.Asteroids.Large
	case Medium:
		return w.cfg.Asteroids.Medium
	default:
		return w.cfg.Asteroids.Small
	}
}

// AsteroidCount returns the number of asteroids across all tiers.
func (w *World) AsteroidCount() int {
	n := 0
	for t := range w.Asteroids {
		n += len(w.Asteroids[t])
	}
	return n
}

// AddAsteroid places an asteroid directly, bypassing the spawner.
func (w *World) AddAsteroid(t Tier, pos, vel core.Vec2) *Asteroid {
	w.Asteroids[t] = append(w.Asteroids[t], newAsteroid(t, w.tier(t), pos, vel))
	return &w.Asteroids[t][len(w.Asteroids[t])-1]
}

// Step advances the simulation by dt seconds.
//
// Order: cooldowns, steering, fire, ship integration, ship collisions,
// health policy, bullets, asteroid integration and wrap, spawner, purge.
func (w *World) Step(in core.Input, audio core.Audio, dt float64) {
	if dt < 0 {
		dt = 0
	}
	if audio == nil {
		audio = core.NopAudio{}
	}
	w.Steps++

	s := &w.Ship
	s.DamageCooldown.Step()
	s.KnockbackCooldown.Step()
	s.CollisionDelay.Step()
	s.Exploding.Step()

	w.steer(in, dt)

	if core.AnyDown(in, core.KeySpace) && s.FireCooldown.Expired() {
		s.FireCooldown.Reset()
		w.fire()
		audio.PlaySound(core.SoundFire, false)
	}
	s.FireCooldown.Tick(dt)

	s.Velocity = s.Direction.Scale(s.Speed)
	if !s.Stunned() {
		s.IntegrateThrottled(dt)
	}

	w.resolveShipCollisions(audio)
	w.applyHealthPolicy(audio)
	w.resolveBulletCollisions(dt)

	for t := range w.Asteroids {
		for i := range w.Asteroids[t] {
			a := &w.Asteroids[t][i]
			a.Integrate(dt)
			w.bounds.Wrap(&a.Body)
		}
	}
	w.bounds.Wrap(&s.Body)

	w.tickSpawner(dt)
	w.purge()
}

// steer applies rotation immediately and ramps the throttle.
func (w *World) steer(in core.Input, dt float64) {
	s := &w.Ship
	sc := w.cfg.Ship

	if core.AnyDown(in, core.KeyA, core.KeyLeft) {
		s.Turn(-s.AngularSpeed * dt)
	}
	if core.AnyDown(in, core.KeyD, core.KeyRight) {
		s.Turn(s.AngularSpeed * dt)
	}

	if core.AnyDown(in, core.KeyW, core.KeyUp) {
		if s.Throttle < sc.ThrottleMax {
			s.Throttle += sc.ThrottleStep
		}
	} else if s.Throttle > 0 {
		s.Throttle -= sc.Decay
	}
	if core.AnyDown(in, core.KeyS, core.KeyDown) && s.Throttle > 0 {
		s.Throttle -= sc.Brake
	}
	if s.Throttle < 0 {
		s.Throttle = 0
	}
}

// fire spawns a bullet just ahead of the ship's nose.
func (w *World) fire() {
	s := &w.Ship
	bc := w.cfg.Bullet

	standoff := s.Width*0.5 + bc.Size*0.5
	w.Bullets = append(w.Bullets, Bullet{
		Entity: core.Entity{
			Body: core.Body{
				Position:  s.Position.Add(s.Direction.Scale(standoff)),
				Velocity:  s.Direction.Scale(bc.Speed),
				Direction: s.Direction,
			},
			Width:  bc.Size,
			Height: bc.Size,
		},
		Damage: bc.Damage,
	})
}

// applyHealthPolicy resets a dead ship and updates the tint.
func (w *World) applyHealthPolicy(audio core.Audio) {
	s := &w.Ship
	if s.Health <= 0 {
		s.Health = s.MaxHealth
		s.Deaths++
		s.Exploding = explosionFrames
		audio.PlaySound(core.SoundExplode, false)
		w.log.Debug("ship destroyed", "deaths", s.Deaths, "score", w.Score)
	}
	s.Tint = TintFor(s.Health, s.BaseTint)
}

// purge drops spent bullets and destroyed asteroids.
func (w *World) purge() {
	w.Bullets = slices.DeleteFunc(w.Bullets, func(b Bullet) bool { return b.dead })
	for t := range w.Asteroids {
		w.Asteroids[t] = slices.DeleteFunc(w.Asteroids[t], func(a Asteroid) bool { return !a.Alive() })
	}
}
