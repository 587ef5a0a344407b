package jumper

import (
	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
)

// Default physics, matching the embedded config.
const (
	Gravity      = 0.5
	JumpStrength = -15.0
	MoveStep     = 5.0
)

// Player is the character the user steers.
type Player struct {
	body
	velocity float64 // Positive = falling
}

func newPlayer(w *world, assets Assets, sprite config.SpriteConfig) *Player {
	return &Player{
		body: newBody(w, assets, sprite, float64(int(w.width)/2), float64(int(w.height)/2)),
	}
}

// Kind implements Entity.
func (p *Player) Kind() Kind { return KindPlayer }

// Velocity returns the vertical velocity in pixels per frame.
func (p *Player) Velocity() float64 { return p.velocity }

// SetVelocity overrides the vertical velocity.
func (p *Player) SetVelocity(v float64) { p.velocity = v }

// ApplyGravity integrates one frame of falling.
func (p *Player) ApplyGravity() {
	p.velocity += p.w.physics.Gravity
	p.y += p.velocity
}

// Jump sets the vertical velocity to strength. It overwrites, never accumulates.
func (p *Player) Jump(strength float64) {
	p.velocity = strength
}

// MoveLeft shifts the player one step left.
func (p *Player) MoveLeft() {
	p.x -= p.w.physics.MoveStep
}

// MoveRight shifts the player one step right.
func (p *Player) MoveRight() {
	p.x += p.w.physics.MoveStep
}

// Update keeps the player inside the window horizontally.
func (p *Player) Update() {
	p.x = core.ClampF(p.x, 0, p.w.width-float64(p.wd))
}

// IsFalling reports whether the player moves downward.
func (p *Player) IsFalling() bool {
	return p.velocity > 0
}

// IsOffScreen reports whether the player dropped below the window.
func (p *Player) IsOffScreen() bool {
	return p.y > p.w.height
}
