package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/snakescript/snakescript/internal/engine"
	"github.com/snakescript/snakescript/internal/storage"
)

// Model runs one simulation in the terminal.
type Model struct {
	eng        *engine.Engine
	store      *storage.Store
	agent      string // display/score label for the loaded script
	lastErr    string // most recent script failure, shown until the next one
	scoreSaved bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a model around an engine whose script is already loaded.
func NewModel(eng *engine.Engine, store *storage.Store, agent string) Model {
	return Model{
		eng:   eng,
		store: store,
		agent: agent,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.eng.Interval())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.backToMenu = true
			return m, nil
		case "r":
			m.eng.RequestReset()
			m.lastErr = ""
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleTick advances the simulation by one interval.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.eng.Tick(now)

	if msg, ok := m.eng.TakeLastScriptError(); ok {
		m.lastErr = msg
	}

	snap := m.eng.Snapshot()
	switch {
	case snap.GameOver && !m.scoreSaved:
		if m.store != nil && snap.Score > 0 {
			//nolint:errcheck // Best-effort save, the game continues regardless
			m.store.SaveScore(m.agent, snap.Score)
		}
		m.scoreSaved = true
	case !snap.GameOver:
		// Auto-reset happened; arm saving for the next game.
		m.scoreSaved = false
	}

	return m, tickCmd(m.eng.Interval())
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderGame(m.eng.Snapshot(), m.agent, m.lastErr)
}

// IsQuitting reports whether the user asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the agent picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the game.
func Run(eng *engine.Engine, store *storage.Store, agent string) error {
	p := tea.NewProgram(NewModel(eng, store, agent), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
