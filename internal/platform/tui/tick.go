// Package tui provides the Bubble Tea integration: the terminal loop that
// drives the simulation engine at its fixed interval and renders snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per simulation interval.
type TickMsg time.Time

// tickCmd returns a command that fires at the engine's tick interval.
// The simulation is stepped per interval, not per video frame.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
