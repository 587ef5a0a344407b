package jumper

import "github.com/vovakirdan/jumper/internal/config"

// Platform is a ledge the player bounces off when landing from above.
type Platform struct {
	body
}

func newPlatform(w *world, assets Assets, sprite config.SpriteConfig, x, y float64) *Platform {
	return &Platform{body: newBody(w, assets, sprite, x, y)}
}

// Kind implements Entity.
func (pl *Platform) Kind() Kind { return KindPlatform }

// CanBounce reports whether p lands on the platform this frame: p is
// strictly above the platform's top, overlaps it and is falling.
func (pl *Platform) CanBounce(p *Player) bool {
	return p.Y() < pl.y && p.CollidesWith(pl) && p.IsFalling()
}

// Update recycles the platform once it scrolls below the window.
func (pl *Platform) Update() {
	pl.recycle()
}

// Enemy ends the game on touch.
type Enemy struct {
	body
}

func newEnemy(w *world, assets Assets, sprite config.SpriteConfig, x, y float64) *Enemy {
	return &Enemy{body: newBody(w, assets, sprite, x, y)}
}

// Kind implements Entity.
func (e *Enemy) Kind() Kind { return KindEnemy }

// Update recycles the enemy once it scrolls below the window.
func (e *Enemy) Update() {
	e.recycle()
}

// PowerUp launches the player with a boosted jump and is consumed on pickup.
type PowerUp struct {
	body
}

func newPowerUp(w *world, assets Assets, sprite config.SpriteConfig, x, y float64) *PowerUp {
	return &PowerUp{body: newBody(w, assets, sprite, x, y)}
}

// Kind implements Entity.
func (u *PowerUp) Kind() Kind { return KindPowerUp }

// Update recycles the power-up once it scrolls below the window.
func (u *PowerUp) Update() {
	u.recycle()
}

// ApplyPowerUp gives the player a jump of JumpStrength times the multiplier.
func (u *PowerUp) ApplyPowerUp(p *Player) {
	p.Jump(u.w.physics.JumpStrength * u.w.physics.PowerUpMultiplier)
}
