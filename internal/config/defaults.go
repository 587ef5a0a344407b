package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the hard-coded default configuration.
// It mirrors defaults/jumper.yaml and is used when the embedded YAML cannot be parsed.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Window: WindowConfig{
			Width:  400,
			Height: 600,
			Title:  "Doodle Jump",
		},
		Physics: PhysicsConfig{
			Gravity:           0.5,
			JumpStrength:      -15,
			MoveStep:          5,
			PowerUpMultiplier: 2,
		},
		Spawn: SpawnConfig{
			PlatformCount:   5,
			PlatformSpacing: 120,
			Margin:          80,
			EnemyChance:     0.5,
			EnemyCount:      1,
			PowerUpCount:    2,
		},
		Scoring: ScoringConfig{
			BouncePoints: 10,
		},
		Sprites: SpriteSet{
			Player:   SpriteConfig{Name: "doodle", File: "kangaroo.png", Width: 40, Height: 40, Color: "green", Glyph: "@"},
			Platform: SpriteConfig{Name: "platform", File: "platform.png", Width: 80, Height: 16, Color: "cyan", Glyph: "="},
			Enemy:    SpriteConfig{Name: "enemy", File: "enemy.png", Width: 40, Height: 40, Color: "red", Glyph: "M"},
			PowerUp:  SpriteConfig{Name: "spring", File: "spring.png", Width: 24, Height: 24, Color: "yellow", Glyph: "%"},
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultJumperYAML
}
