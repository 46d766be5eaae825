// Package config provides YAML-based simulation configuration loading and
// difficulty management for the arcade scenes.
package config

// AsteroidsConfig contains all configuration for the asteroids simulation.
type AsteroidsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ship       ShipConfig       `yaml:"ship"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Asteroids  AsteroidField    `yaml:"asteroids"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the simulated area.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`         // px/s at full throttle
	AngularSpeed float64 `yaml:"angular_speed"` // degrees per second
	Health       float64 `yaml:"health"`        // at most MaxShipHealth

	// Throttle ramp, applied once per step.
	ThrottleStep float64 `yaml:"throttle_step"`
	ThrottleMax  float64 `yaml:"throttle_max"`
	Decay        float64 `yaml:"decay"`
	Brake        float64 `yaml:"brake"`

	FireCooldown float64 `yaml:"fire_cooldown"` // seconds

	// Collision windows in steps.
	StunFrames      int `yaml:"stun_frames"`
	DamageFrames    int `yaml:"damage_frames"`
	KnockbackFrames int `yaml:"knockback_frames"`

	KnockbackMinSpeed float64 `yaml:"knockback_min_speed"`
	KnockbackMaxSpeed float64 `yaml:"knockback_max_speed"`
}

// BulletConfig defines projectiles fired by the ship.
type BulletConfig struct {
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"`
	Damage float64 `yaml:"damage"`
}

// AsteroidField defines spawning and splitting of asteroids.
type AsteroidField struct {
	SpawnPeriod  float64 `yaml:"spawn_period"` // seconds
	Clearance    float64 `yaml:"clearance"`    // ship box scale kept free on spawn
	SpawnRetries int     `yaml:"spawn_retries"`

	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
	AimJitter float64 `yaml:"aim_jitter"` // degrees

	SplitMinAngle float64 `yaml:"split_min_angle"` // degrees
	SplitMaxAngle float64 `yaml:"split_max_angle"`
	SplitMinSpeed float64 `yaml:"split_min_speed"`
	SplitMaxSpeed float64 `yaml:"split_max_speed"`

	Large  TierConfig `yaml:"large"`
	Medium TierConfig `yaml:"medium"`
	Small  TierConfig `yaml:"small"`
}

// TierConfig defines one asteroid size class.
type TierConfig struct {
	Size   float64 `yaml:"size"`
	Health float64 `yaml:"health"`
	Damage float64 `yaml:"damage"` // dealt to the ship on contact
	Points int     `yaml:"points"` // awarded when destroyed
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/steps at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to asteroid speed factor at max difficulty
	RateMultiplier  float64 `yaml:"rate_multiplier"`  // Added to spawn rate factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
