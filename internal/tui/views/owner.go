package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jordip/pawpal/internal/care"
	"github.com/jordip/pawpal/internal/tui/msgs"
	"github.com/jordip/pawpal/internal/tui/styles"
)

// Indexes into the owner form inputs.
const (
	ownerFieldName = iota
	ownerFieldMinutes
	ownerFieldCount
)

// OwnerModel edits the owner's name and daily time budget.
type OwnerModel struct {
	store  *care.Store
	inputs []textinput.Model
	focus  int
	errMsg string
	width  int
	height int
}

// NewOwnerModel creates the owner form prefilled from store.
func NewOwnerModel(store *care.Store) OwnerModel {
	owner := store.Owner()

	inputs := make([]textinput.Model, ownerFieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[ownerFieldName].Placeholder = "Owner name"
	inputs[ownerFieldName].SetValue(owner.Name)
	inputs[ownerFieldMinutes].Placeholder = "Available minutes per day"
	inputs[ownerFieldMinutes].SetValue(strconv.Itoa(owner.AvailableTime()))
	inputs[ownerFieldName].Focus()

	return OwnerModel{store: store, inputs: inputs}
}

// Init implements tea.Model.
func (m OwnerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m OwnerModel) Update(msg tea.Msg) (OwnerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return msgs.GoToHomeMsg{} }

		case "tab", "down", "shift+tab", "up":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % ownerFieldCount
			return m, m.inputs[m.focus].Focus()

		case "enter":
			if m.focus < ownerFieldCount-1 {
				m.inputs[m.focus].Blur()
				m.focus++
				return m, m.inputs[m.focus].Focus()
			}
			return m.submit()
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m OwnerModel) submit() (OwnerModel, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[ownerFieldName].Value())
	minutes, err := strconv.Atoi(strings.TrimSpace(m.inputs[ownerFieldMinutes].Value()))
	if err != nil {
		m.errMsg = "minutes must be a number"
		return m, nil
	}
	if minutes < 0 {
		m.errMsg = "minutes must not be negative"
		return m, nil
	}

	owner := m.store.Owner()
	owner.Name = name
	owner.AvailableTimeMinutes = minutes
	for _, pet := range m.store.Pets() {
		pet.Owner = name
	}

	m.errMsg = ""
	return m, tea.Batch(
		func() tea.Msg { return msgs.StateChangedMsg{} },
		func() tea.Msg { return msgs.GoToHomeMsg{} },
	)
}

// View implements tea.Model.
func (m OwnerModel) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Owner") + "\n\n")

	labels := []string{"Name", "Minutes per day"}
	for i, in := range m.inputs {
		cursor := "  "
		if i == m.focus {
			cursor = styles.SelectedStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s: %s\n", cursor, labels[i], in.View()))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + styles.ErrorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + styles.SubtleStyle.Render("tab next field · enter save · esc cancel"))
	return b.String()
}
