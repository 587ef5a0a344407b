package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/games/jumper"
	"github.com/vovakirdan/jumper/internal/replay"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"r", runeKey("r"), core.ActionRestart},
		{"R", runeKey("R"), core.ActionRestart},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.MapKey(tt.msg))
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	h := newHeldKeys(3)
	h.Press(core.ActionLeft)

	for i := 0; i < 3; i++ {
		assert.True(t, h.Frame().Has(core.ActionLeft), "tick %d", i)
		h.Tick()
	}
	assert.True(t, h.Frame().Empty())
}

func TestHeldKeysOpposingDirections(t *testing.T) {
	h := newHeldKeys(5)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	f := h.Frame()
	assert.False(t, f.Has(core.ActionLeft))
	assert.True(t, f.Has(core.ActionRight))
}

func TestHeldKeysRestartIsOneTick(t *testing.T) {
	h := newHeldKeys(5)
	h.Press(core.ActionRestart)
	h.Press(core.ActionQuit)

	assert.Equal(t, core.NewInputFrame(core.ActionRestart), h.Frame())
	h.Tick()
	assert.True(t, h.Frame().Empty())
}

func TestCanvasScalesSprites(t *testing.T) {
	screen := core.NewScreen(40, 30)
	c := NewCanvas(screen, config.DefaultJumperConfig())

	// 80x16 px at (100, 300) on a 400x600 area maps to 8x1 cells at (10, 15).
	c.DrawSprite("platform", 100, 300, 80, 16)

	assert.Equal(t, "========", screen.Row(15)[10:18])
	assert.Equal(t, core.ColorCyan, screen.GetCell(10, 15).Color)
	assert.Equal(t, ' ', screen.GetCell(18, 15).Rune)
	assert.Equal(t, ' ', screen.GetCell(10, 14).Rune)
}

func TestCanvasUnknownSpriteAndText(t *testing.T) {
	screen := core.NewScreen(40, 30)
	c := NewCanvas(screen, config.DefaultJumperConfig())

	c.DrawSprite("mystery", 0, 0, 1, 1)
	c.DrawText("Score: 5", core.ColorBlack, 10, 10)

	assert.Equal(t, '#', screen.GetCell(0, 0).Rune)
	assert.Equal(t, "Score: 5", screen.Row(0)[1:9])

	c.Clear(core.ColorWhite)
	assert.Equal(t, strings.Repeat(" ", 40), screen.Row(0))
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(5, 2)
	screen.DrawText(0, 0, "ab", core.ColorRed)
	screen.DrawText(2, 0, "cd", core.ColorGreen)

	out := RenderScreen(screen)
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "cd")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func newTestModel(t *testing.T) (Model, *replay.Recorder) {
	t.Helper()
	cfg := config.DefaultJumperConfig()
	runtime := core.RuntimeConfig{TickRate: 60, Seed: 11}
	game := jumper.New(cfg, nil)
	game.Reset(runtime)
	rec := replay.NewRecorder(runtime, cfg)

	m := NewModel(game, rec, nil, nil, 40, 31)
	m.shotDir = t.TempDir()
	return m, rec
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func TestModelTickRecordsHeldInput(t *testing.T) {
	m, rec := newTestModel(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 10; i++ {
		m = step(t, m, TickMsg{})
	}

	run := rec.Run()
	require.Len(t, run.Frames, 10)
	hold := config.DefaultJumperConfig().Input.HoldTicks
	for i, mask := range run.Frames {
		assert.Equal(t, i < hold, core.FrameFromMask(mask).Has(core.ActionLeft), "frame %d", i)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", next.View())
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Score: 0")
	assert.Contains(t, view, "restart")
	assert.Equal(t, 30, strings.Count(view, "\n"), "30 game rows plus the footer")
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m, rec := newTestModel(t)
	m.game.Current().Player().SetY(5000)

	m = step(t, m, TickMsg{})
	assert.True(t, m.State().GameOver)

	m = step(t, m, runeKey("r"))
	m = step(t, m, TickMsg{})
	assert.False(t, m.State().GameOver)
	assert.Equal(t, 2, rec.Run().Lives)
}

func TestModelStagesReloadedConfig(t *testing.T) {
	m, rec := newTestModel(t)

	path := filepath.Join(t.TempDir(), "jumper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spawn:\n  platform_count: 2\n"), 0o600))

	m = step(t, m, TickMsg{})
	m = step(t, m, configChangedMsg(path))

	run := rec.Run()
	require.Len(t, run.Stages, 1)
	assert.Equal(t, 1, run.Stages[0].Frame)
	assert.Equal(t, 2, run.Stages[0].Config.Spawn.PlatformCount)
	assert.Equal(t, 5, m.game.Config().Spawn.PlatformCount, "applies at the next restart")
}

func TestModelRejectsBrokenConfig(t *testing.T) {
	m, rec := newTestModel(t)

	path := filepath.Join(t.TempDir(), "jumper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: -1\n"), 0o600))

	m = step(t, m, configChangedMsg(path))
	assert.Empty(t, rec.Run().Stages)
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.shotDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "jumper_"))

	data, err := os.ReadFile(filepath.Join(m.shotDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Score: 0")
}

func TestSummarizeLives(t *testing.T) {
	got := SummarizeLives([]replay.Life{
		{Index: 1, Score: 30, Ended: true},
		{Index: 2, Score: 10},
	})
	assert.Equal(t, "life 1: 30 pts (ended), life 2: 10 pts (running)", got)
}

func TestWaitForConfigEndsWhenWatcherCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumper.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	w, err := config.NewWatcher(path)
	require.NoError(t, err)

	cmd := waitForConfig(w)
	require.NotNil(t, cmd)

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	require.NoError(t, w.Close())

	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("waitForConfig still blocked after Close")
	}
}
