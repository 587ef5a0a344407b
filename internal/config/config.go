// Package config provides YAML-based game configuration loading, .env
// overrides and config file watching for the jumper.
package config

import (
	"errors"
	"fmt"
)

// JumperConfig contains all tunables of the game.
type JumperConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Scoring ScoringConfig `yaml:"scoring"`
	Sprites SpriteSet     `yaml:"sprites"`
	Input   InputConfig   `yaml:"input"`
}

// WindowConfig is the logical play area in pixels.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig defines per-frame motion constants.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`             // Added to velocity every frame
	JumpStrength      float64 `yaml:"jump_strength"`       // Velocity set by a bounce (negative = up)
	MoveStep          float64 `yaml:"move_step"`           // Horizontal pixels per held frame
	PowerUpMultiplier float64 `yaml:"power_up_multiplier"` // Jump strength factor applied by a power-up
}

// SpawnConfig controls how entities are laid out at start and restart.
type SpawnConfig struct {
	PlatformCount   int     `yaml:"platform_count"`
	PlatformSpacing int     `yaml:"platform_spacing"` // Vertical distance between initial platforms
	Margin          int     `yaml:"margin"`           // Initial x is drawn from [0, width-margin)
	EnemyChance     float64 `yaml:"enemy_chance"`     // Probability that a life has enemies at all
	EnemyCount      int     `yaml:"enemy_count"`
	PowerUpCount    int     `yaml:"power_up_count"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	BouncePoints int `yaml:"bounce_points"`
}

// SpriteConfig describes one visual asset.
// Width and height are used when no image file is available; the
// window frontend replaces them with the decoded image size.
type SpriteConfig struct {
	Name   string `yaml:"name"`
	File   string `yaml:"file"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
	Glyph  string `yaml:"glyph"`
}

// SpriteSet holds the four game sprites.
type SpriteSet struct {
	Player   SpriteConfig `yaml:"player"`
	Platform SpriteConfig `yaml:"platform"`
	Enemy    SpriteConfig `yaml:"enemy"`
	PowerUp  SpriteConfig `yaml:"power_up"`
}

// All returns the sprites in a fixed order.
func (s SpriteSet) All() []SpriteConfig {
	return []SpriteConfig{s.Player, s.Platform, s.Enemy, s.PowerUp}
}

// Lookup finds a sprite by logical name.
func (s SpriteSet) Lookup(name string) (SpriteConfig, bool) {
	for _, sp := range s.All() {
		if sp.Name == name {
			return sp, true
		}
	}
	return SpriteConfig{}, false
}

// InputConfig tunes the terminal frontend, which has no key-release events.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key press counts as held
}

// ErrInvalidConfig is wrapped by all validation failures.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the values the simulation depends on.
func (c JumperConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidConfig)
	}
	if c.Spawn.PlatformCount <= 0 {
		return fmt.Errorf("config: platform_count %d: %w", c.Spawn.PlatformCount, ErrInvalidConfig)
	}
	if c.Spawn.EnemyChance < 0 || c.Spawn.EnemyChance > 1 {
		return fmt.Errorf("config: enemy_chance %.2f outside [0, 1]: %w", c.Spawn.EnemyChance, ErrInvalidConfig)
	}
	if c.Spawn.EnemyCount < 0 || c.Spawn.PowerUpCount < 0 {
		return fmt.Errorf("config: negative entity count: %w", ErrInvalidConfig)
	}
	if c.Spawn.Margin < 0 || c.Spawn.Margin > c.Window.Width {
		return fmt.Errorf("config: margin %d: %w", c.Spawn.Margin, ErrInvalidConfig)
	}
	for _, sp := range c.Sprites.All() {
		if sp.Name == "" {
			return fmt.Errorf("config: sprite without name: %w", ErrInvalidConfig)
		}
		if sp.Width <= 0 || sp.Height <= 0 || sp.Width > c.Window.Width || sp.Height > c.Window.Height {
			return fmt.Errorf("config: sprite %q size %dx%d: %w", sp.Name, sp.Width, sp.Height, ErrInvalidConfig)
		}
	}
	return nil
}
