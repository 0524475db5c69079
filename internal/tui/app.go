package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jordip/pawpal/internal/care"
	"github.com/jordip/pawpal/internal/tui/msgs"
	"github.com/jordip/pawpal/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewHome View = iota
	ViewOwner
	ViewPets
	ViewTasks
	ViewSchedule
)

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	width       int
	height      int

	home     views.HomeModel
	owner    views.OwnerModel
	pets     views.PetsModel
	tasks    views.TasksModel
	schedule views.ScheduleModel

	// Shared state
	stateDir string
	store    *care.Store
	err      error
}

// Run loads the saved state from dir and starts the TUI application.
func Run(dir string) error {
	store, err := care.Load(dir)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		initialModel(dir, store),
		tea.WithAltScreen(),
	)
	_, runErr := p.Run()
	return runErr
}

func initialModel(dir string, store *care.Store) Model {
	return Model{
		currentView: ViewHome,
		stateDir:    dir,
		store:       store,
		home:        views.NewHomeModel(store),
		owner:       views.NewOwnerModel(store),
		pets:        views.NewPetsModel(store),
		tasks:       views.NewTasksModel(store),
		schedule:    views.NewScheduleModel(store),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.home.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Every view tracks its own dimensions.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.home, cmd = m.home.Update(msg)
		cmds = append(cmds, cmd)
		m.owner, cmd = m.owner.Update(msg)
		cmds = append(cmds, cmd)
		m.pets, cmd = m.pets.Update(msg)
		cmds = append(cmds, cmd)
		m.tasks, cmd = m.tasks.Update(msg)
		cmds = append(cmds, cmd)
		m.schedule, cmd = m.schedule.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case msgs.GoToHomeMsg:
		m.currentView = ViewHome
		m.home = views.NewHomeModel(m.store)
		return m, nil

	case msgs.GoToOwnerMsg:
		m.currentView = ViewOwner
		m.owner = views.NewOwnerModel(m.store)
		return m, nil

	case msgs.GoToPetsMsg:
		m.currentView = ViewPets
		return m, nil

	case msgs.GoToTasksMsg:
		m.currentView = ViewTasks
		return m, nil

	case msgs.GoToScheduleMsg:
		m.currentView = ViewSchedule
		m.schedule = views.NewScheduleModel(m.store)
		return m, nil

	case msgs.StateChangedMsg:
		if err := care.Save(m.stateDir, m.store); err != nil {
			m.err = err
		}
		return m, nil
	}

	return m.updateCurrentView(msg)
}

func (m Model) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewHome:
		m.home, cmd = m.home.Update(msg)
	case ViewOwner:
		m.owner, cmd = m.owner.Update(msg)
	case ViewPets:
		m.pets, cmd = m.pets.Update(msg)
	case ViewTasks:
		m.tasks, cmd = m.tasks.Update(msg)
	case ViewSchedule:
		m.schedule, cmd = m.schedule.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	body := ""
	switch m.currentView {
	case ViewHome:
		body = m.home.View()
	case ViewOwner:
		body = m.owner.View()
	case ViewPets:
		body = m.pets.View()
	case ViewTasks:
		body = m.tasks.View()
	case ViewSchedule:
		body = m.schedule.View()
	}
	if m.err != nil {
		body += "\n\nError: " + m.err.Error()
	}
	return body
}
