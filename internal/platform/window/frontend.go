package window

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/games/jumper"
	"github.com/vovakirdan/jumper/internal/registry"
	"github.com/vovakirdan/jumper/internal/replay"
)

// Name is the registry name of the window frontend.
const Name = "window"

// SpriteDirs are searched for sprite files after the configured path.
var SpriteDirs = []string{"assets", "images"}

func init() {
	registry.Register(Name, func() registry.Frontend { return Frontend{} })
}

// Frontend plays the game in a desktop window.
type Frontend struct{}

// Name returns the registry name.
func (Frontend) Name() string { return Name }

// Description returns a one-line summary.
func (Frontend) Description() string { return "Desktop window with ebiten" }

// Run opens the window and plays until it is closed.
func (Frontend) Run(ctx context.Context, s registry.Session) (replay.Run, error) {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}

	cfg, assets, err := loadAssets(s.Config, SpriteDirs)
	if err != nil {
		return replay.Run{}, err
	}
	cv, err := newCanvas(assets)
	if err != nil {
		return replay.Run{}, fmt.Errorf("window: font: %w", err)
	}

	// cfg carries the decoded sprite sizes, so the game sizes its boxes
	// from it and a replay of the recording sees the same boxes.
	game := jumper.New(cfg, nil)
	game.Reset(s.Runtime)
	rec := replay.NewRecorder(s.Runtime, cfg)

	var watcher *config.Watcher
	if s.ConfigPath != "" {
		if w, err := config.NewWatcher(s.ConfigPath); err != nil {
			s.Logger.Warn("config watch disabled", "path", s.ConfigPath, "error", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	win := cfg.Window
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(game.Title())
	if s.Runtime.TickRate > 0 {
		ebiten.SetTPS(s.Runtime.TickRate)
	}

	wg := &windowGame{
		ctx:      ctx,
		game:     game,
		assets:   assets,
		canvas:   cv,
		recorder: rec,
		watcher:  watcher,
		logger:   s.Logger,
		keys:     ebitenKeyboard{},
		dirs:     SpriteDirs,
		resize:   ebiten.SetWindowSize,
		debug:    s.Logger.GetLevel() <= log.DebugLevel,
	}
	if err := ebiten.RunGame(wg); err != nil && !errors.Is(err, ebiten.Termination) {
		return rec.Run(), fmt.Errorf("window: %w", err)
	}
	return rec.Run(), nil
}
