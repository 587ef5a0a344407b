package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/games/jumper"
	"github.com/vovakirdan/jumper/internal/registry"
	"github.com/vovakirdan/jumper/internal/replay"
)

// Name is the registry name of the terminal frontend.
const Name = "tui"

func init() {
	registry.Register(Name, func() registry.Frontend { return Frontend{} })
}

// Frontend plays the game in the terminal.
type Frontend struct{}

// Name returns the registry name.
func (Frontend) Name() string { return Name }

// Description returns a one-line summary.
func (Frontend) Description() string { return "Terminal play with Bubble Tea" }

// Run plays one session in the alternate screen.
func (Frontend) Run(ctx context.Context, s registry.Session) (replay.Run, error) {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	game := jumper.New(s.Config, nil)
	game.Reset(s.Runtime)
	rec := replay.NewRecorder(s.Runtime, s.Config)

	var watcher *config.Watcher
	if s.ConfigPath != "" {
		w, err := config.NewWatcher(s.ConfigPath)
		if err != nil {
			s.Logger.Warn("config watch disabled", "path", s.ConfigPath, "error", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	width, height := terminalSize()
	model := NewModel(game, rec, watcher, s.Logger, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return rec.Run(), fmt.Errorf("tui: %w", err)
	}
	return rec.Run(), nil
}

// terminalSize reports the size of stdout, falling back to 80x24.
func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
