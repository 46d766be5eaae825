package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MaxShipHealth caps ship.health.
const MaxShipHealth = 100.0

// LoadAsteroids loads the asteroids simulation configuration.
// Search order: customPath -> ~/.arcade/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	cfg, err := loadYAML("asteroids.yaml", customPath, defaultAsteroidsYAML, DefaultAsteroidsConfig())
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadYAML walks the search path for filename. Files found on the search
// path are decoded over the hard-coded defaults, so they may omit keys.
func loadYAML[T any](filename, customPath string, embedded []byte, fallback T) (T, error) {
	cfg := fallback

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := fallback
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		candidate := fallback
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c AsteroidsConfig) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive")
	check(c.Ship.Size > 0, "ship.size must be positive")
	check(c.Ship.Health > 0 && c.Ship.Health <= MaxShipHealth, "ship.health must be in (0, %v]", MaxShipHealth)
	check(c.Ship.ThrottleMax >= 0, "ship.throttle_max must not be negative")
	check(c.Ship.FireCooldown >= 0, "ship.fire_cooldown must not be negative")
	check(c.Ship.KnockbackMinSpeed <= c.Ship.KnockbackMaxSpeed, "ship knockback speed range is inverted")
	check(c.Bullet.Size > 0, "bullet.size must be positive")
	check(c.Bullet.Damage >= 0, "bullet.damage must not be negative")

	a := c.Asteroids
	check(a.SpawnPeriod > 0, "asteroids.spawn_period must be positive")
	check(a.Clearance >= 0, "asteroids.clearance must not be negative")
	check(a.SpawnRetries > 0, "asteroids.spawn_retries must be positive")
	check(a.MinSpeed <= a.MaxSpeed, "asteroids speed range is inverted")
	check(a.SplitMinAngle <= a.SplitMaxAngle, "asteroids split angle range is inverted")
	check(a.SplitMinSpeed <= a.SplitMaxSpeed, "asteroids split speed range is inverted")
	for name, tier := range map[string]TierConfig{"large": a.Large, "medium": a.Medium, "small": a.Small} {
		check(tier.Size > 0, "asteroids.%s.size must be positive", name)
		check(tier.Health > 0, "asteroids.%s.health must be positive", name)
		check(tier.Damage >= 0, "asteroids.%s.damage must not be negative", name)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
	}
	return nil
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Ship health never exceeds MaxShipHealth; easy softens collisions instead.
	switch preset {
	case DifficultyEasy:
		for _, tier := range []*TierConfig{&cfg.Asteroids.Large, &cfg.Asteroids.Medium, &cfg.Asteroids.Small} {
			tier.Damage *= 0.5
		}
		cfg.Asteroids.SpawnPeriod = 3.5
	case DifficultyHard:
		cfg.Ship.Health = 75
		cfg.Asteroids.SpawnPeriod = 1.75
	}
}
