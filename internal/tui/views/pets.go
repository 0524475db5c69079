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

// petsState represents the current state of the pets view.
type petsState int

const (
	petsListing petsState = iota
	petsAdding
)

// Indexes into the add-pet form inputs.
const (
	petFieldName = iota
	petFieldSpecies
	petFieldAge
	petFieldNeeds
	petFieldCount
)

// PetsModel lists the owner's pets and hosts the add-pet form.
type PetsModel struct {
	store  *care.Store
	state  petsState
	inputs []textinput.Model
	focus  int
	errMsg string
	width  int
	height int
}

// NewPetsModel creates the pets view for store.
func NewPetsModel(store *care.Store) PetsModel {
	inputs := make([]textinput.Model, petFieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[petFieldName].Placeholder = "Name"
	inputs[petFieldSpecies].Placeholder = "Species (dog, cat, ...)"
	inputs[petFieldAge].Placeholder = "Age in years"
	inputs[petFieldNeeds].Placeholder = "Special needs, comma separated (optional)"

	return PetsModel{
		store:  store,
		state:  petsListing,
		inputs: inputs,
	}
}

// Init implements tea.Model.
func (m PetsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PetsModel) Update(msg tea.Msg) (PetsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.state == petsAdding {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
		case "a":
			m.state = petsAdding
			m.errMsg = ""
			m.focus = petFieldName
			for i := range m.inputs {
				m.inputs[i].SetValue("")
				m.inputs[i].Blur()
			}
			return m, m.inputs[petFieldName].Focus()
		}
	}
	return m, nil
}

func (m PetsModel) updateForm(msg tea.KeyMsg) (PetsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = petsListing
		m.errMsg = ""
		return m, nil

	case "tab", "down":
		return m.focusField((m.focus + 1) % petFieldCount)

	case "shift+tab", "up":
		return m.focusField((m.focus + petFieldCount - 1) % petFieldCount)

	case "enter":
		if m.focus < petFieldCount-1 {
			return m.focusField(m.focus + 1)
		}
		return m.submitPet()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m PetsModel) focusField(idx int) (PetsModel, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	return m, m.inputs[m.focus].Focus()
}

func (m PetsModel) submitPet() (PetsModel, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[petFieldName].Value())
	species := strings.TrimSpace(m.inputs[petFieldSpecies].Value())

	age := 0
	if raw := strings.TrimSpace(m.inputs[petFieldAge].Value()); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			m.errMsg = "age must be a number"
			return m, nil
		}
		age = parsed
	}

	pet, err := care.NewPet(name, species, age)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	for _, need := range strings.Split(m.inputs[petFieldNeeds].Value(), ",") {
		pet.AddSpecialNeed(strings.TrimSpace(need))
	}

	if err := m.store.AddPet(pet); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.state = petsListing
	m.errMsg = ""
	return m, func() tea.Msg { return msgs.StateChangedMsg{} }
}

// View implements tea.Model.
func (m PetsModel) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Pets") + "\n\n")

	if m.state == petsAdding {
		labels := []string{"Name", "Species", "Age", "Special needs"}
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
		b.WriteString("\n" + styles.SubtleStyle.Render("tab next field · enter submit · esc cancel"))
		return b.String()
	}

	pets := m.store.Pets()
	if len(pets) == 0 {
		b.WriteString(styles.SubtleStyle.Render("(No pets registered)") + "\n")
	}
	for _, pet := range pets {
		line := fmt.Sprintf("• %s (%s, age %d)", pet.Name, pet.Species, pet.Age)
		if len(pet.SpecialNeeds) > 0 {
			line += styles.WarningStyle.Render("  needs: " + strings.Join(pet.SpecialNeeds, ", "))
		}
		b.WriteString(line + "\n")
		b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("  id %s · %d tasks", pet.ID, len(m.store.TasksByPet(pet)))) + "\n")
	}

	b.WriteString("\n" + styles.SubtleStyle.Render("a add pet · esc back"))
	return b.String()
}
