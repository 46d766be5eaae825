package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in asteroids configuration.
// It matches defaults/asteroids.yaml and is used if the embedded file fails to parse.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{Width: 1024, Height: 768},
		Ship: ShipConfig{
			Size:              50,
			Speed:             600,
			AngularSpeed:      200,
			Health:            100,
			ThrottleStep:      0.005,
			ThrottleMax:       0.5,
			Decay:             0.005,
			Brake:             0.04,
			FireCooldown:      0.5,
			StunFrames:        10,
			DamageFrames:      60,
			KnockbackFrames:   60,
			KnockbackMinSpeed: 100,
			KnockbackMaxSpeed: 200,
		},
		Bullet: BulletConfig{
			Size:   50,
			Speed:  500,
			Damage: 10,
		},
		Asteroids: AsteroidField{
			SpawnPeriod:   2.5,
			Clearance:     4,
			SpawnRetries:  64,
			MinSpeed:      20,
			MaxSpeed:      200,
			AimJitter:     10,
			SplitMinAngle: 30,
			SplitMaxAngle: 45,
			SplitMinSpeed: 20,
			SplitMaxSpeed: 200,
			Large:         TierConfig{Size: 100, Health: 100, Damage: 20, Points: 20},
			Medium:        TierConfig{Size: 50, Health: 50, Damage: 10, Points: 50},
			Small:         TierConfig{Size: 25, Health: 20, Damage: 5, Points: 100},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				RateMultiplier:  1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a scene.
func GetDefaultYAML(sceneID string) []byte {
	switch sceneID {
	case "asteroids":
		return defaultAsteroidsYAML
	default:
		return nil
	}
}
