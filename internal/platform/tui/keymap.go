package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jumper/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the compact help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Screenshot is handled by the model and maps to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// heldKeys emulates key state on terminals, which report presses and
// auto-repeats but never releases. A press keeps its action held for a
// number of ticks; auto-repeat refreshes it.
type heldKeys struct {
	hold  int
	ticks [core.ActionQuit + 1]int
}

func newHeldKeys(hold int) heldKeys {
	if hold < 1 {
		hold = 1
	}
	return heldKeys{hold: hold}
}

// Press marks a as held. Left and right cancel each other, and restart
// lasts a single tick.
func (h *heldKeys) Press(a core.Action) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionLeft:
		h.ticks[core.ActionRight] = 0
	case core.ActionRight:
		h.ticks[core.ActionLeft] = 0
	case core.ActionRestart:
		h.ticks[a] = 1
		return
	}
	h.ticks[a] = h.hold
}

// Frame returns the actions currently held.
func (h *heldKeys) Frame() core.InputFrame {
	var f core.InputFrame
	for a, n := range h.ticks {
		if n > 0 {
			f.Set(core.Action(a))
		}
	}
	return f
}

// Tick ages every held action by one tick.
func (h *heldKeys) Tick() {
	for a := range h.ticks {
		if h.ticks[a] > 0 {
			h.ticks[a]--
		}
	}
}
