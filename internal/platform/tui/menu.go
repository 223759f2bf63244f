package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/snakescript/snakescript/internal/script"
	"github.com/snakescript/snakescript/internal/storage"
)

// agentItem is a list entry for one selectable agent.
type agentItem struct {
	name string
	code string
	desc string
}

func (i agentItem) Title() string       { return i.name }
func (i agentItem) Description() string { return i.desc }
func (i agentItem) FilterValue() string { return i.name }

// MenuModel lets a user pick which agent script drives the snake.
type MenuModel struct {
	list     list.Model
	choice   *agentItem
	quitting bool
}

// NewMenuModel builds the picker from the stored agents plus the built-in
// default. Storage being unavailable just means a shorter list.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	items := []list.Item{
		agentItem{name: "default", code: script.DefaultSource, desc: "built-in greedy agent"},
	}
	if store != nil {
		if agents, err := store.ListAgents(); err == nil {
			for _, a := range agents {
				desc := fmt.Sprintf("updated %s", a.UpdatedAt.Format("2006-01-02"))
				items = append(items, agentItem{name: a.Name, code: a.Code, desc: desc})
			}
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Pick an agent"
	l.SetShowStatusBar(false)

	return MenuModel{list: l}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(agentItem); ok {
				m.choice = &item
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Selected returns the chosen agent, or nil while still picking.
func (m MenuModel) Selected() *agentItem {
	return m.choice
}

// IsQuitting reports whether the user asked to exit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
