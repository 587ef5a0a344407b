package jumper

import (
	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
)

// Kind tags the concrete type behind an Entity.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindPlatform
	KindEnemy
	KindPowerUp
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlatform:
		return "platform"
	case KindEnemy:
		return "enemy"
	case KindPowerUp:
		return "power-up"
	default:
		return "unknown"
	}
}

// Entity is any positioned, sized, drawable, collidable game object.
type Entity interface {
	Kind() Kind
	X() float64
	Y() float64
	SetX(x float64)
	SetY(y float64)
	Width() int
	Height() int
	Bounds() core.RectF
	CollidesWith(other Entity) bool
	Update()
	Draw(c Canvas)
}

// world is the shared environment every entity of one GameState sees.
type world struct {
	width   float64
	height  float64
	physics config.PhysicsConfig
	rng     Random
	collide Collider
}

// randInt draws from [0, n). Non-positive bounds yield 0.
func (w *world) randInt(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(w.rng.Intn(n))
}

// body holds the state common to every entity.
type body struct {
	w     *world
	asset string
	x, y  float64
	wd    int
	ht    int
}

func newBody(w *world, assets Assets, sprite config.SpriteConfig, x, y float64) body {
	wd, ht := assets.Load(sprite.Name, sprite.File)
	return body{w: w, asset: sprite.Name, x: x, y: y, wd: wd, ht: ht}
}

func (b *body) X() float64     { return b.x }
func (b *body) Y() float64     { return b.y }
func (b *body) SetX(x float64) { b.x = x }
func (b *body) SetY(y float64) { b.y = y }
func (b *body) Width() int     { return b.wd }
func (b *body) Height() int    { return b.ht }

func (b *body) Bounds() core.RectF {
	return core.NewRectF(b.x, b.y, float64(b.wd), float64(b.ht))
}

func (b *body) Draw(c Canvas) {
	c.DrawSprite(b.asset, b.x, b.y, b.wd, b.ht)
}

// recycle moves a body that scrolled below the window back above the top
// edge at a random x.
func (b *body) recycle() {
	if b.y > b.w.height {
		b.x = b.w.randInt(int(b.w.width) - b.wd)
		b.y = -float64(b.ht)
	}
}

// CollidesWith reports whether the entity overlaps other, using the
// world's collider on current bounds.
func (b *body) CollidesWith(other Entity) bool {
	return b.w.collide(b.Bounds(), other.Bounds())
}
