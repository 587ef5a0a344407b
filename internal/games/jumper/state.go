package jumper

import (
	"fmt"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
)

// Options configures a GameState.
type Options struct {
	Config config.JumperConfig
	Rand   Random

	// Assets sizes sprites. Nil uses BoxAssets over Config.Sprites.
	Assets Assets
	// Collider tests overlap. Nil uses AABB.
	Collider Collider
}

// GameState is the single authoritative game object. It owns every entity
// and runs the per-frame update.
type GameState struct {
	cfg        config.JumperConfig
	assets     Assets
	ownAssets  bool
	world      *world
	player     *Player
	platforms  []*Platform
	enemies    []*Enemy
	powerUps   []*PowerUp
	score      int
	viewOffset float64
	gameOver   bool
}

// NewGameState builds a fresh game in the Playing state.
func NewGameState(opts Options) *GameState {
	s := &GameState{
		world: &world{
			rng:     opts.Rand,
			collide: opts.Collider,
		},
		assets: opts.Assets,
	}
	if s.world.collide == nil {
		s.world.collide = AABB
	}
	s.ownAssets = s.assets == nil
	s.configure(opts.Config)
	s.RestartGame()
	return s
}

// configure applies cfg to the shared world. Entities pick it up on the
// next RestartGame.
func (s *GameState) configure(cfg config.JumperConfig) {
	s.cfg = cfg
	s.world.width = float64(cfg.Window.Width)
	s.world.height = float64(cfg.Window.Height)
	s.world.physics = cfg.Physics
	if s.ownAssets {
		s.assets = NewBoxAssets(cfg.Sprites)
	}
}

// Reconfigure swaps the rules and restarts.
func (s *GameState) Reconfigure(cfg config.JumperConfig) {
	s.configure(cfg)
	s.RestartGame()
}

// Update advances one frame. It does nothing once the game is over.
func (s *GameState) Update(in core.InputFrame) {
	if s.gameOver {
		return
	}

	s.player.ApplyGravity()
	s.player.Update()

	if in.Has(core.ActionLeft) {
		s.player.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		s.player.MoveRight()
	}

	for _, pl := range s.platforms {
		pl.Update()
		if pl.CanBounce(s.player) {
			s.player.Jump(s.cfg.Physics.JumpStrength)
			s.score += s.cfg.Scoring.BouncePoints
		}
	}

	// Every enemy is checked even after a hit.
	for _, e := range s.enemies {
		e.Update()
		if s.player.CollidesWith(e) {
			s.endGame()
		}
	}

	// At most one power-up per frame; removal waits until the scan is done.
	consumed := -1
	for i, u := range s.powerUps {
		u.Update()
		if s.player.CollidesWith(u) {
			u.ApplyPowerUp(s.player)
			consumed = i
			break
		}
	}
	if consumed >= 0 {
		s.powerUps = append(s.powerUps[:consumed], s.powerUps[consumed+1:]...)
	}

	s.scroll()

	// Runs after the scroll clamp, so it only fires while the view is still.
	if s.player.IsOffScreen() {
		s.endGame()
	}
}

// scroll keeps the player at mid-height while ascending by shifting
// everything else down.
func (s *GameState) scroll() {
	mid := float64(s.cfg.Window.Height / 2)
	if s.player.Y() >= mid {
		return
	}

	offset := mid - s.player.Y()
	for _, pl := range s.platforms {
		pl.SetY(pl.Y() + offset)
	}
	for _, e := range s.enemies {
		e.SetY(e.Y() + offset)
	}
	for _, u := range s.powerUps {
		u.SetY(u.Y() + offset)
	}
	s.viewOffset += offset
	s.player.SetY(mid)
}

func (s *GameState) endGame() {
	s.gameOver = true
}

// RestartGame rebuilds every entity, clears score and view offset, and
// returns to Playing.
func (s *GameState) RestartGame() {
	w := s.world
	sp := s.cfg.Sprites
	spawn := s.cfg.Spawn
	width, height := s.cfg.Window.Width, s.cfg.Window.Height

	s.player = newPlayer(w, s.assets, sp.Player)

	s.platforms = make([]*Platform, 0, spawn.PlatformCount)
	for i := 0; i < spawn.PlatformCount; i++ {
		x := w.randInt(width - spawn.Margin)
		y := float64(height - i*spawn.PlatformSpacing)
		s.platforms = append(s.platforms, newPlatform(w, s.assets, sp.Platform, x, y))
	}

	s.enemies = nil
	if w.rng.Float64() < spawn.EnemyChance {
		s.enemies = make([]*Enemy, 0, spawn.EnemyCount)
		for i := 0; i < spawn.EnemyCount; i++ {
			x := w.randInt(width - spawn.Margin)
			y := w.randInt(height / 2)
			s.enemies = append(s.enemies, newEnemy(w, s.assets, sp.Enemy, x, y))
		}
	}

	s.powerUps = make([]*PowerUp, 0, spawn.PowerUpCount)
	for i := 0; i < spawn.PowerUpCount; i++ {
		x := w.randInt(width - spawn.Margin)
		y := w.randInt(height / 2)
		s.powerUps = append(s.powerUps, newPowerUp(w, s.assets, sp.PowerUp, x, y))
	}

	s.viewOffset = 0
	s.score = 0
	s.gameOver = false
}

// Draw renders the frame: sprites and score while playing, the game over
// prompt otherwise.
func (s *GameState) Draw(c Canvas) {
	c.Clear(core.ColorWhite)

	w := float64(s.cfg.Window.Width)
	h := float64(s.cfg.Window.Height)
	if s.gameOver {
		c.DrawText("Game Over", core.ColorRed, w/2-50, h/2)
		c.DrawText("Press 'R' to Restart", core.ColorBlack, w/2-70, h/2+40)
		return
	}

	for _, e := range s.Entities() {
		e.Draw(c)
	}
	c.DrawText(fmt.Sprintf("Score: %d", s.score), core.ColorBlack, 10, 10)
}

// Entities returns every live entity in draw order: player, platforms,
// enemies, power-ups.
func (s *GameState) Entities() []Entity {
	out := make([]Entity, 0, 1+len(s.platforms)+len(s.enemies)+len(s.powerUps))
	out = append(out, s.player)
	for _, pl := range s.platforms {
		out = append(out, pl)
	}
	for _, e := range s.enemies {
		out = append(out, e)
	}
	for _, u := range s.powerUps {
		out = append(out, u)
	}
	return out
}

// Player returns the current player.
func (s *GameState) Player() *Player { return s.player }

// Platforms returns the live platforms in insertion order.
func (s *GameState) Platforms() []*Platform { return s.platforms }

// Enemies returns the live enemies.
func (s *GameState) Enemies() []*Enemy { return s.enemies }

// PowerUps returns the power-ups not yet consumed.
func (s *GameState) PowerUps() []*PowerUp { return s.powerUps }

// Score returns the current score.
func (s *GameState) Score() int { return s.score }

// ViewOffset returns the total scroll distance of this life.
func (s *GameState) ViewOffset() float64 { return s.viewOffset }

// IsGameOver reports whether the current life has ended.
func (s *GameState) IsGameOver() bool { return s.gameOver }

// Config returns the rules in effect.
func (s *GameState) Config() config.JumperConfig { return s.cfg }
