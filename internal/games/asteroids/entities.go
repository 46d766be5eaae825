package asteroids

import (
	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
)

// explosionFrames is how long the explosion sprite shows after a ship death.
const explosionFrames = 30

// Tier is an asteroid size class. Each tier lives in its own collection.
type Tier int

const (
	Large Tier = iota
	Medium
	Small
	tierCount
)

// String returns the tier's name.
func (t Tier) String() string {
	switch t {
	case Large:
		return "large"
	case Medium:
		return "medium"
	case Small:
		return "small"
	default:
		return "unknown"
	}
}

// Child returns the tier produced when an asteroid of this tier is destroyed.
func (t Tier) Child() (Tier, bool) {
	switch t {
	case Large:
		return Medium, true
	case Medium:
		return Small, true
	default:
		return 0, false
	}
}

// Ship is the player. Exactly one exists per World.
type Ship struct {
	core.Entity

	Speed     float64
	Health    float64
	MaxHealth float64

	// Collision windows, counted in steps.
	DamageCooldown    core.FrameCounter
	KnockbackCooldown core.FrameCounter
	CollisionDelay    core.FrameCounter
	Exploding         core.FrameCounter

	FireCooldown core.Timer

	BaseTint core.Color
	Tint     core.Color
	Deaths   int
}

// Stunned reports whether position updates are suspended.
func (s *Ship) Stunned() bool {
	return s.CollisionDelay.Active()
}

func newShip(cfg config.ShipConfig, bounds core.Bounds) Ship {
	return Ship{
		Entity: core.Entity{
			Body: core.Body{
				Position:     bounds.Center(),
				Direction:    core.V(1, 0),
				AngularSpeed: cfg.AngularSpeed * core.DegToRad,
			},
			Width:  cfg.Size,
			Height: cfg.Size,
		},
		Speed:        cfg.Speed,
		Health:       cfg.Health,
		MaxHealth:    cfg.Health,
		FireCooldown: core.NewExpiredTimer(cfg.FireCooldown),
		BaseTint:     core.ColorBrightWhite,
		Tint:         core.ColorBrightWhite,
	}
}

// Bullet travels in a fixed direction until it leaves the screen or hits.
type Bullet struct {
	core.Entity
	Damage float64
	dead   bool
}

// Asteroid is a hazard of one Tier.
type Asteroid struct {
	core.Entity
	Tier   Tier
	Health float64
	Damage float64
	Points int
}

// Alive reports whether the asteroid survives the next purge.
func (a *Asteroid) Alive() bool {
	return a.Health > 0
}

func newAsteroid(t Tier, tc config.TierConfig, pos, vel core.Vec2) Asteroid {
	return Asteroid{
		Entity: core.Entity{
			Body:   core.Body{Position: pos, Velocity: vel, Direction: vel.Normalize()},
			Width:  tc.Size,
			Height: tc.Size,
		},
		Tier:   t,
		Health: tc.Health,
		Damage: tc.Damage,
		Points: tc.Points,
	}
}

// Tint thresholds on ship health.
const (
	TintCaution  = 75
	TintWarning  = 50
	TintCritical = 25
)

// TintFor returns the ship tint for a health value.
// Ranges are half-open: [75, ∞) base, [50, 75) caution, [25, 50) warning, below 25 critical.
func TintFor(health float64, base core.Color) core.Color {
	switch {
	case health >= TintCaution:
		return base
	case health >= TintWarning:
		return core.ColorYellow
	case health >= TintCritical:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}
