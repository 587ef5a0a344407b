package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/replay"
	"github.com/vovakirdan/jumper/internal/storage"
)

const maxRuns = 100

// RunsKeyMap defines the key bindings for the run browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Replay key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the compact help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Delete, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Replay, k.Delete, k.Quit},
	}
}

// DefaultRunsKeyMap returns the default run browser bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel browses recorded runs and replays them on demand.
type RunsModel struct {
	store    *storage.Store
	runs     []storage.RunEntry
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	status   string
	width    int
	height   int
	quitting bool
}

// NewRunsModel creates a run browser over store.
func NewRunsModel(store *storage.Store, width, height int) RunsModel {
	m := RunsModel{
		store:  store,
		keys:   DefaultRunsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newRunsTable(core.Max(3, height-6), true)
	m.load()
	return m
}

// newRunsTable creates the run table with the shared column layout.
func newRunsTable(height int, focused bool) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Seed", Width: 20},
			{Title: "Frames", Width: 8},
			{Title: "Lives", Width: 6},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(focused),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	if focused {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
	} else {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)
	return t
}

func runRows(runs []storage.RunEntry) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Frames),
			strconv.Itoa(r.Lives),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// RenderRunsTable renders runs as a static table for non-interactive output.
func RenderRunsTable(runs []storage.RunEntry) string {
	t := newRunsTable(len(runs)+1, false)
	t.SetRows(runRows(runs))
	return t.View()
}

func (m *RunsModel) load() {
	runs, err := m.store.Runs(maxRuns)
	if err != nil {
		m.status = err.Error()
		runs = nil
	}
	m.runs = runs
	m.table.SetRows(runRows(runs))
}

func (m RunsModel) selected() (storage.RunEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.RunEntry{}, false
	}
	return m.runs[i], true
}

// Init initializes the run browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Replay):
			if r, ok := m.selected(); ok {
				m.status = m.replay(r.ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.selected(); ok {
				if err := m.store.DeleteRun(r.ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("deleted run %d", r.ID)
					m.load()
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(core.Max(3, msg.Height-6))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m RunsModel) replay(id int64) string {
	run, err := m.store.LoadRun(id)
	if err != nil {
		return err.Error()
	}
	res, err := replay.Play(run)
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("run %d: %s", id, SummarizeLives(res.Lives))
}

// SummarizeLives formats per-life scores on one line.
func SummarizeLives(lives []replay.Life) string {
	parts := make([]string, len(lives))
	for i, l := range lives {
		state := "ended"
		if !l.Ended {
			state = "running"
		}
		parts[i] = fmt.Sprintf("life %d: %d pts (%s)", l.Index, l.Score, state)
	}
	return strings.Join(parts, ", ")
}

// View renders the run browser.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("RECORDED RUNS"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No runs recorded yet.\nPlay a game to record one!")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunRunsBrowser runs the interactive run browser.
func RunRunsBrowser(store *storage.Store) error {
	width, height := terminalSize()
	p := tea.NewProgram(NewRunsModel(store, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
