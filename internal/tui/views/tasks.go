package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jordip/pawpal/internal/care"
	"github.com/jordip/pawpal/internal/display"
	"github.com/jordip/pawpal/internal/schedule"
	"github.com/jordip/pawpal/internal/tui/msgs"
	"github.com/jordip/pawpal/internal/tui/styles"
)

// tasksState represents the current state of the tasks view.
type tasksState int

const (
	tasksListing tasksState = iota
	tasksAdding
)

// Indexes into the add-task form inputs.
const (
	taskFieldName = iota
	taskFieldPet
	taskFieldDuration
	taskFieldPriority
	taskFieldType
	taskFieldTime
	taskFieldFrequency
	taskFieldDue
	taskFieldCount
)

// TasksModel lists care tasks and hosts the add-task form. Completing a
// task from the list schedules the next occurrence for recurring tasks.
type TasksModel struct {
	store    *care.Store
	state    tasksState
	inputs   []textinput.Model
	focus    int
	cursor   int
	errMsg   string
	statusLn string
	width    int
	height   int
}

// NewTasksModel creates the tasks view for store.
func NewTasksModel(store *care.Store) TasksModel {
	inputs := make([]textinput.Model, taskFieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[taskFieldName].Placeholder = "Task name"
	inputs[taskFieldPet].Placeholder = "Pet name or id"
	inputs[taskFieldDuration].Placeholder = "Duration in minutes"
	inputs[taskFieldPriority].Placeholder = "Priority 1-5 (default 3)"
	inputs[taskFieldType].Placeholder = "Type (walk, feed, medication, ...)"
	inputs[taskFieldTime].Placeholder = "Scheduled time HH:MM (optional)"
	inputs[taskFieldFrequency].Placeholder = "Frequency: once, daily, weekly, monthly"
	inputs[taskFieldDue].Placeholder = "Due date YYYY-MM-DD (recurring only)"

	return TasksModel{
		store:  store,
		state:  tasksListing,
		inputs: inputs,
	}
}

// Init implements tea.Model.
func (m TasksModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TasksModel) Update(msg tea.Msg) (TasksModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.state == tasksAdding {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m TasksModel) updateList(msg tea.KeyMsg) (TasksModel, tea.Cmd) {
	tasks := m.store.Tasks()
	switch msg.String() {
	case "q", "esc":
		return m, func() tea.Msg { return msgs.GoToHomeMsg{} }

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}

	case "a":
		m.state = tasksAdding
		m.errMsg = ""
		m.statusLn = ""
		m.focus = taskFieldName
		for i := range m.inputs {
			m.inputs[i].SetValue("")
			m.inputs[i].Blur()
		}
		return m, m.inputs[taskFieldName].Focus()

	case "c", "enter":
		if len(tasks) == 0 || m.cursor >= len(tasks) {
			return m, nil
		}
		task := tasks[m.cursor]
		if task.Completed {
			m.statusLn = fmt.Sprintf("%q is already complete", task.Name)
			return m, nil
		}
		next := schedule.New(m.store).AddNextOccurrence(task)
		m.statusLn = fmt.Sprintf("Completed %q", task.Name)
		if next != nil {
			m.statusLn += fmt.Sprintf(", next occurrence due %s", next.DueDate)
		}
		return m, func() tea.Msg { return msgs.StateChangedMsg{} }

	case "d":
		if len(tasks) == 0 || m.cursor >= len(tasks) {
			return m, nil
		}
		task := tasks[m.cursor]
		m.store.RemoveTask(task)
		if m.cursor > 0 {
			m.cursor--
		}
		m.statusLn = fmt.Sprintf("Removed %q", task.Name)
		return m, func() tea.Msg { return msgs.StateChangedMsg{} }
	}
	return m, nil
}

func (m TasksModel) updateForm(msg tea.KeyMsg) (TasksModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = tasksListing
		m.errMsg = ""
		return m, nil

	case "tab", "down":
		return m.focusTaskField((m.focus + 1) % taskFieldCount)

	case "shift+tab", "up":
		return m.focusTaskField((m.focus + taskFieldCount - 1) % taskFieldCount)

	case "enter":
		if m.focus < taskFieldCount-1 {
			return m.focusTaskField(m.focus + 1)
		}
		return m.submitTask()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m TasksModel) focusTaskField(idx int) (TasksModel, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	return m, m.inputs[m.focus].Focus()
}

func (m TasksModel) submitTask() (TasksModel, tea.Cmd) {
	pet := m.findPet(strings.TrimSpace(m.inputs[taskFieldPet].Value()))
	if pet == nil {
		m.errMsg = "unknown pet"
		return m, nil
	}

	duration, err := strconv.Atoi(strings.TrimSpace(m.inputs[taskFieldDuration].Value()))
	if err != nil {
		m.errMsg = "duration must be a number"
		return m, nil
	}

	priority := 3
	if raw := strings.TrimSpace(m.inputs[taskFieldPriority].Value()); raw != "" {
		priority, err = strconv.Atoi(raw)
		if err != nil {
			m.errMsg = "priority must be a number"
			return m, nil
		}
	}

	taskType, err := care.ParseTaskType(strings.TrimSpace(m.inputs[taskFieldType].Value()))
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	freq := care.FrequencyOnce
	if raw := strings.TrimSpace(m.inputs[taskFieldFrequency].Value()); raw != "" {
		freq, err = care.ParseFrequency(raw)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
	}

	task, err := care.NewTask(care.TaskSpec{
		Name:            strings.TrimSpace(m.inputs[taskFieldName].Value()),
		DurationMinutes: duration,
		Priority:        priority,
		Type:            taskType,
		PetID:           pet.ID,
		ScheduledTime:   strings.TrimSpace(m.inputs[taskFieldTime].Value()),
		Frequency:       freq,
		DueDate:         strings.TrimSpace(m.inputs[taskFieldDue].Value()),
	})
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.store.AddTask(task)
	m.state = tasksListing
	m.errMsg = ""
	m.statusLn = fmt.Sprintf("Added %q for %s", task.Name, pet.Name)
	return m, func() tea.Msg { return msgs.StateChangedMsg{} }
}

func (m TasksModel) findPet(ref string) *care.Pet {
	if pet := m.store.PetByID(ref); pet != nil {
		return pet
	}
	for _, pet := range m.store.Pets() {
		if strings.EqualFold(pet.Name, ref) {
			return pet
		}
	}
	return nil
}

// View implements tea.Model.
func (m TasksModel) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Tasks") + "\n\n")

	if m.state == tasksAdding {
		labels := []string{"Name", "Pet", "Duration", "Priority", "Type", "Time", "Frequency", "Due date"}
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

	tasks := m.store.Tasks()
	if len(tasks) == 0 {
		b.WriteString(styles.SubtleStyle.Render("(No tasks)") + "\n")
	}
	for i, task := range tasks {
		line := display.TaskLine(m.store, task)
		if task.Completed {
			line = styles.DoneStyle.Render(line)
		}
		if i == m.cursor {
			line = styles.SelectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if m.statusLn != "" {
		b.WriteString("\n" + styles.SubtleStyle.Render(m.statusLn) + "\n")
	}
	b.WriteString("\n" + styles.SubtleStyle.Render("a add · c complete · d delete · esc back"))
	return b.String()
}
