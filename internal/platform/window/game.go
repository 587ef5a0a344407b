package window

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/games/jumper"
	"github.com/vovakirdan/jumper/internal/replay"
)

// keyboard reports key state; ebiten satisfies it at runtime and tests
// substitute a fake.
type keyboard interface {
	pressed(k ebiten.Key) bool
	justPressed(k ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeyboard) justPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

var (
	leftKeys  = []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}
	quitKeys  = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

func anyPressed(kb keyboard, keys []ebiten.Key) bool {
	for _, k := range keys {
		if kb.pressed(k) {
			return true
		}
	}
	return false
}

// pollInput samples held movement keys and the restart edge.
func pollInput(kb keyboard) (core.InputFrame, bool) {
	var in core.InputFrame
	if anyPressed(kb, leftKeys) {
		in.Set(core.ActionLeft)
	}
	if anyPressed(kb, rightKeys) {
		in.Set(core.ActionRight)
	}
	if kb.justPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	return in, anyPressed(kb, quitKeys)
}

// windowGame implements ebiten.Game.
type windowGame struct {
	ctx      context.Context
	game     *jumper.Game
	assets   *Assets
	staged   *Assets
	canvas   *canvas
	recorder *replay.Recorder
	watcher  *config.Watcher
	logger   *log.Logger
	keys     keyboard
	dirs     []string
	resize   func(w, h int)
	debug    bool
}

func (w *windowGame) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	w.pollConfig()

	in, quit := pollInput(w.keys)
	if quit {
		return ebiten.Termination
	}

	res := w.game.Step(in)
	w.recorder.Record(in, res)

	if res.Ended {
		w.logger.Info("game over", "score", res.Final.Score, "offset", w.game.Current().ViewOffset())
	}
	if res.Restarted {
		w.restarted()
	}
	return nil
}

// pollConfig drains pending watcher events without blocking the frame.
func (w *windowGame) pollConfig() {
	if w.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-w.watcher.Events:
			if !ok {
				w.watcher = nil
				return
			}
			w.stage(path)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.watcher = nil
				return
			}
			w.logger.Warn("config watch failed", "error", err)
		default:
			return
		}
	}
}

// stage loads the config at path and its sprites. Both take effect at
// the next restart; until then the current life keeps its images.
func (w *windowGame) stage(path string) {
	cfg, err := config.LoadJumper(path)
	var assets *Assets
	if err == nil {
		cfg, assets, err = loadAssets(cfg, w.dirs)
	}
	if err != nil {
		w.logger.Warn("config reload rejected", "path", path, "error", err)
		return
	}
	w.staged = assets
	w.game.StageConfig(cfg)
	w.recorder.Stage(cfg)
	w.logger.Info("config staged for next restart", "path", path)
}

func (w *windowGame) restarted() {
	if w.staged != nil {
		w.assets, w.staged = w.staged, nil
		w.canvas.assets = w.assets
		win := w.game.Config().Window
		if w.resize != nil {
			w.resize(win.Width, win.Height)
		}
	}
	w.logger.Info("restart", "life", w.game.Snapshot().Life)
}

func (w *windowGame) Draw(screen *ebiten.Image) {
	w.canvas.dst = screen
	w.game.Draw(w.canvas)
	if w.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  offset %.0f", ebiten.ActualTPS(), w.game.Current().ViewOffset()), 10, 40)
	}
}

func (w *windowGame) Layout(_, _ int) (int, int) {
	win := w.game.Config().Window
	return win.Width, win.Height
}
