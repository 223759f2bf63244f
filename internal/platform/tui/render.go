package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/snakescript/snakescript/internal/game"
)

var (
	headStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	bodyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	foodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	borderStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	hudStyle     = lipgloss.NewStyle().Bold(true)
	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	winOverlay   = "YOU WIN!"
	crashOverlay = "GAME OVER"
)

// headGlyph points the head along the direction of travel, taken from the
// neck-to-head offset so it reflects the move that actually happened.
func headGlyph(snap game.Snapshot) string {
	dir := snap.Dir
	if len(snap.Body) > 1 {
		dir = game.DirectionBetween(snap.Body[1], snap.Body[0])
	}
	switch dir {
	case game.North:
		return "^"
	case game.South:
		return "v"
	case game.East:
		return ">"
	default:
		return "<"
	}
}

// RenderGame draws a snapshot as a bordered grid with a HUD line above and
// status lines below. Grid y grows north, so rows are emitted top-down
// from y = size-1.
func RenderGame(snap game.Snapshot, agent, scriptErr string) string {
	head := snap.Body[0]
	occupied := make(map[game.Point]bool, len(snap.Body))
	for _, seg := range snap.Body {
		occupied[seg] = true
	}

	var grid strings.Builder
	for y := snap.GridSize - 1; y >= 0; y-- {
		if y != snap.GridSize-1 {
			grid.WriteByte('\n')
		}
		for x := 0; x < snap.GridSize; x++ {
			p := game.Point{X: x, Y: y}
			switch {
			case p == head:
				grid.WriteString(headStyle.Render(headGlyph(snap)))
			case occupied[p]:
				grid.WriteString(bodyStyle.Render("o"))
			case p == snap.Food && !snap.Won:
				grid.WriteString(foodStyle.Render("*"))
			default:
				grid.WriteByte(' ')
			}
		}
	}

	hud := fmt.Sprintf("Score: %d", snap.Score)
	if agent != "" {
		hud += "  Agent: " + agent
	}
	hud += "  Heading: " + snap.Dir.String()

	lines := []string{
		hudStyle.Render(hud),
		borderStyle.Render(grid.String()),
	}

	switch {
	case snap.Won:
		lines = append(lines, overStyle.Render(winOverlay+" Resetting shortly."))
	case snap.GameOver:
		lines = append(lines, overStyle.Render(crashOverlay+" Resetting shortly."))
	}
	if scriptErr != "" {
		lines = append(lines, errStyle.Render("script: "+scriptErr))
	}
	lines = append(lines, helpStyle.Render("r: reset  q: quit"))

	return strings.Join(lines, "\n")
}
