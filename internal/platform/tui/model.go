package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/games/jumper"
	"github.com/vovakirdan/jumper/internal/replay"
)

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a play session.
type Model struct {
	game     *jumper.Game
	screen   *core.Screen
	canvas   *Canvas
	recorder *replay.Recorder
	watcher  *config.Watcher
	logger   *log.Logger
	runtime  core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     heldKeys
	state    core.GameState
	shotDir  string
	quitting bool
}

// NewModel creates a model for a game that has already been Reset.
// The recorder and watcher are optional.
func NewModel(game *jumper.Game, rec *replay.Recorder, w *config.Watcher, logger *log.Logger, width, height int) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen := core.NewScreen(width, core.Max(1, height-footerHeight))
	home, _ := os.UserHomeDir()
	return Model{
		game:     game,
		screen:   screen,
		canvas:   NewCanvas(screen, game.Config()),
		recorder: rec,
		watcher:  w,
		logger:   logger,
		runtime:  game.Runtime(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		held:     newHeldKeys(game.Config().Input.HoldTicks),
		state:    game.State(),
		shotDir:  filepath.Join(home, ".jumper", "screenshots"),
	}
}

// Init starts the tick loop and the config watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.runtime.TickRate), waitForConfig(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(1, msg.Height-footerHeight))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case configChangedMsg:
		m.reloadConfig(string(msg))
		return m, waitForConfig(m.watcher)

	case configErrMsg:
		m.logger.Warn("config watch failed", "error", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Press(action)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.held.Frame()
	res := m.game.Step(in)
	if m.recorder != nil {
		m.recorder.Record(in, res)
	}
	m.held.Tick()

	if res.Ended {
		m.logger.Info("game over", "score", res.Final.Score, "offset", m.game.Current().ViewOffset())
	}
	if res.Restarted {
		m.logger.Info("restart", "life", m.game.Snapshot().Life)
		m.canvas.Configure(m.game.Config())
		m.held = newHeldKeys(m.game.Config().Input.HoldTicks)
	}
	m.state = res.State

	return m, tickCmd(m.runtime.TickRate)
}

// reloadConfig stages an edited config for the next restart.
func (m *Model) reloadConfig(path string) {
	cfg, err := config.LoadJumper(path)
	if err != nil {
		m.logger.Warn("config reload rejected", "path", path, "error", err)
		return
	}
	m.game.StageConfig(cfg)
	if m.recorder != nil {
		m.recorder.Stage(cfg)
	}
	m.logger.Info("config staged for next restart", "path", path)
}

// saveScreenshot writes the current cell buffer as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Draw(m.canvas)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Draw(m.canvas)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// State returns the last stepped game state.
func (m Model) State() core.GameState {
	return m.state
}
