package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
)

// Canvas draws the pixel-space game onto a cell screen. Every sprite is
// scaled to the screen and filled with its configured glyph and color.
type Canvas struct {
	screen  *core.Screen
	sprites config.SpriteSet
	width   float64 // logical play area in pixels
	height  float64
}

// NewCanvas creates a canvas mapping a width x height pixel area onto screen.
func NewCanvas(screen *core.Screen, cfg config.JumperConfig) *Canvas {
	c := &Canvas{screen: screen}
	c.Configure(cfg)
	return c
}

// Configure replaces the play area and sprite table.
func (c *Canvas) Configure(cfg config.JumperConfig) {
	c.sprites = cfg.Sprites
	c.width = float64(cfg.Window.Width)
	c.height = float64(cfg.Window.Height)
}

// Clear blanks the screen. The terminal background stands in for bg.
func (c *Canvas) Clear(core.Color) {
	c.screen.Clear()
}

// DrawSprite fills the cells covered by the sprite. Anything visible
// occupies at least one cell.
func (c *Canvas) DrawSprite(name string, x, y float64, w, h int) {
	glyph, color := '#', core.ColorDefault
	if sp, ok := c.sprites.Lookup(name); ok {
		if r, _ := utf8.DecodeRuneInString(sp.Glyph); r != utf8.RuneError {
			glyph = r
		}
		color = core.ParseColor(sp.Color)
	}

	x0, y0 := c.cellX(x), c.cellY(y)
	x1 := int(math.Ceil((x + float64(w)) * c.scaleX()))
	y1 := int(math.Ceil((y + float64(h)) * c.scaleY()))
	c.screen.FillRect(core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0)), glyph, color)
}

// DrawText writes text starting at the cell under (x, y).
func (c *Canvas) DrawText(text string, col core.Color, x, y float64) {
	c.screen.DrawText(c.cellX(x), c.cellY(y), text, col)
}

func (c *Canvas) scaleX() float64 {
	if c.width <= 0 {
		return 0
	}
	return float64(c.screen.Width()) / c.width
}

func (c *Canvas) scaleY() float64 {
	if c.height <= 0 {
		return 0
	}
	return float64(c.screen.Height()) / c.height
}

func (c *Canvas) cellX(x float64) int {
	return int(math.Floor(x * c.scaleX()))
}

func (c *Canvas) cellY(y float64) int {
	return int(math.Floor(y * c.scaleY()))
}
