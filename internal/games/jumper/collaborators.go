package jumper

import (
	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
)

// Assets resolves a visual asset by logical name and file path and reports
// its size in pixels. Frontends load real images; BoxAssets serves sizes
// straight from the config.
type Assets interface {
	Load(name, file string) (w, h int)
}

// Canvas receives draw calls in pixel coordinates.
type Canvas interface {
	Clear(bg core.Color)
	DrawSprite(name string, x, y float64, w, h int)
	DrawText(text string, c core.Color, x, y float64)
}

// Collider decides whether two bounding regions touch. It must be symmetric.
type Collider func(a, b core.RectF) bool

// AABB is the default collider: strict axis-aligned box overlap.
func AABB(a, b core.RectF) bool {
	return a.Intersects(b)
}

// Random is the subset of *rand.Rand the game draws from.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// BoxAssets sizes sprites from their config entries.
type BoxAssets struct {
	sprites config.SpriteSet
}

// NewBoxAssets creates an asset source backed by sprite config.
func NewBoxAssets(sprites config.SpriteSet) BoxAssets {
	return BoxAssets{sprites: sprites}
}

// Load returns the configured size for name. Unknown names are 1x1.
func (b BoxAssets) Load(name, _ string) (int, int) {
	sp, ok := b.sprites.Lookup(name)
	if !ok {
		return 1, 1
	}
	return sp.Width, sp.Height
}
