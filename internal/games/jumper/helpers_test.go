package jumper

import (
	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
)

// scriptedRand replays fixed draws, then falls back to constants.
type scriptedRand struct {
	floats []float64
	ints   []int
	float  float64 // Returned once floats run out
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) > 0 {
		f := r.floats[0]
		r.floats = r.floats[1:]
		return f
	}
	return r.float
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) > 0 {
		v := r.ints[0]
		r.ints = r.ints[1:]
		return v % n
	}
	return 0
}

// noEnemies never rolls under any enemy chance below one.
func noEnemies() *scriptedRand {
	return &scriptedRand{float: 0.99}
}

func newTestState(rng Random, mutate func(*config.JumperConfig)) *GameState {
	cfg := config.DefaultJumperConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewGameState(Options{Config: cfg, Rand: rng})
}

// clearField parks every platform and power-up in the left column, away
// from the player's spawn column, and drops enemies.
func clearField(s *GameState) {
	for i, pl := range s.platforms {
		pl.SetX(0)
		pl.SetY(float64(580 - i*100))
	}
	for i, u := range s.powerUps {
		u.SetX(0)
		u.SetY(float64(50 + i*30))
	}
	s.enemies = nil
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

type spriteCall struct {
	name string
	x, y float64
}

type textCall struct {
	text  string
	color core.Color
	x, y  float64
}

// recordingCanvas captures draw calls.
type recordingCanvas struct {
	cleared int
	sprites []spriteCall
	texts   []textCall
}

func (c *recordingCanvas) Clear(core.Color) { c.cleared++ }

func (c *recordingCanvas) DrawSprite(name string, x, y float64, _, _ int) {
	c.sprites = append(c.sprites, spriteCall{name: name, x: x, y: y})
}

func (c *recordingCanvas) DrawText(text string, col core.Color, x, y float64) {
	c.texts = append(c.texts, textCall{text: text, color: col, x: x, y: y})
}
