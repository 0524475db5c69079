package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jordip/pawpal/internal/care"
	"github.com/jordip/pawpal/internal/tui/msgs"
	"github.com/jordip/pawpal/internal/tui/styles"
)

// MenuItem represents a menu option in the home view.
type MenuItem struct {
	Label       string
	Shortcut    string
	Description string
}

// HomeModel is the dashboard landing screen.
type HomeModel struct {
	store  *care.Store
	items  []MenuItem
	cursor int
	width  int
	height int
}

// NewHomeModel creates the home menu for store.
func NewHomeModel(store *care.Store) HomeModel {
	return HomeModel{
		store: store,
		items: []MenuItem{
			{Label: "Owner", Shortcut: "o", Description: "Edit name and daily time budget"},
			{Label: "Pets", Shortcut: "p", Description: "View and add pets"},
			{Label: "Tasks", Shortcut: "t", Description: "View, add and complete care tasks"},
			{Label: "Schedule", Shortcut: "s", Description: "Today's plan, explanation and conflicts"},
			{Label: "Quit", Shortcut: "q", Description: ""},
		},
	}
}

// Init implements tea.Model.
func (m HomeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "o":
			return m, func() tea.Msg { return msgs.GoToOwnerMsg{} }
		case "p":
			return m, func() tea.Msg { return msgs.GoToPetsMsg{} }
		case "t":
			return m, func() tea.Msg { return msgs.GoToTasksMsg{} }
		case "s":
			return m, func() tea.Msg { return msgs.GoToScheduleMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			return m.selectCurrentItem()
		}
	}
	return m, nil
}

func (m HomeModel) selectCurrentItem() (HomeModel, tea.Cmd) {
	switch m.items[m.cursor].Shortcut {
	case "o":
		return m, func() tea.Msg { return msgs.GoToOwnerMsg{} }
	case "p":
		return m, func() tea.Msg { return msgs.GoToPetsMsg{} }
	case "t":
		return m, func() tea.Msg { return msgs.GoToTasksMsg{} }
	case "s":
		return m, func() tea.Msg { return msgs.GoToScheduleMsg{} }
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m HomeModel) View() string {
	var b strings.Builder

	owner := m.store.Owner()
	b.WriteString(styles.TitleStyle.Render("PawPal") + "\n")
	b.WriteString(fmt.Sprintf("Owner: %s, %d minutes available per day\n",
		owner.Name, owner.AvailableTime()))
	b.WriteString(fmt.Sprintf("%d pets, %d tasks (%d incomplete)\n\n",
		len(m.store.Pets()), len(m.store.Tasks()), len(m.store.IncompleteTasks())))

	for i, item := range m.items {
		line := fmt.Sprintf("[%s] %s", item.Shortcut, item.Label)
		if item.Description != "" {
			line += styles.SubtleStyle.Render("  " + item.Description)
		}
		if i == m.cursor {
			line = styles.SelectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + styles.SubtleStyle.Render("↑/↓ move · enter select · q quit"))
	return b.String()
}
