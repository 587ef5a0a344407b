// Package jumper implements an endless vertical jumper.
// The player falls under gravity, bounces off platforms, avoids enemies and
// collects springs while the view scrolls upward.
package jumper

import (
	"math/rand"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
)

// ID is the identifier used for recorded runs and file names.
const ID = "jumper"

// Game wraps a GameState with the frame protocol frontends drive:
// Step once per tick, then Draw.
type Game struct {
	cfg     config.JumperConfig
	assets  Assets
	runtime core.RuntimeConfig
	state   *GameState
	pending *config.JumperConfig
	frame   uint64
	lives   int
}

// New creates a game with the given rules. A nil assets uses BoxAssets.
// Reset must be called before the first Step.
func New(cfg config.JumperConfig, assets Assets) *Game {
	return &Game{cfg: cfg, assets: assets}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.cfg.Window.Title != "" {
		return g.cfg.Window.Title
	}
	return "Jumper"
}

// Reset starts a new session seeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}
	g.state = NewGameState(Options{
		Config: g.cfg,
		Rand:   rand.New(rand.NewSource(runtime.Seed)),
		Assets: g.assets,
	})
	g.frame = 0
	g.lives = 1
}

// Step advances the simulation by one tick. The game updates while
// playing; once over, ActionRestart starts the next life.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	var res core.StepResult
	if !g.state.IsGameOver() {
		g.state.Update(in)
		res.Ended = g.state.IsGameOver()
	}
	res.Final = g.State()
	if g.state.IsGameOver() && in.Has(core.ActionRestart) {
		g.restart()
		res.Restarted = true
	}

	res.State = g.State()
	return res
}

func (g *Game) restart() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
		g.state.Reconfigure(g.cfg)
	} else {
		g.state.RestartGame()
	}
	g.lives++
}

// StageConfig queues new rules; they take effect at the next restart so
// a running life never changes underneath the player.
func (g *Game) StageConfig(cfg config.JumperConfig) {
	g.pending = &cfg
}

// Config returns the rules of the current life.
func (g *Game) Config() config.JumperConfig {
	return g.cfg
}

// Runtime returns the session settings passed to Reset.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.runtime
}

// Draw renders the current frame.
func (g *Game) Draw(c Canvas) {
	g.state.Draw(c)
}

// Current exposes the underlying game state.
func (g *Game) Current() *GameState {
	return g.state
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.state.IsGameOver(),
	}
}

// Snapshot captures the game for determinism checks and replay output.
type Snapshot struct {
	Frame      uint64
	Life       int
	Score      int
	ViewOffset float64
	PlayerX    float64
	PlayerY    float64
	Velocity   float64
	Platforms  int
	Enemies    int
	PowerUps   int
	GameOver   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Frame:      g.frame,
		Life:       g.lives,
		Score:      s.Score(),
		ViewOffset: s.ViewOffset(),
		PlayerX:    s.Player().X(),
		PlayerY:    s.Player().Y(),
		Velocity:   s.Player().Velocity(),
		Platforms:  len(s.Platforms()),
		Enemies:    len(s.Enemies()),
		PowerUps:   len(s.PowerUps()),
		GameOver:   s.IsGameOver(),
	}
}
