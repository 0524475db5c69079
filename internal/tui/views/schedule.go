package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jordip/pawpal/internal/care"
	"github.com/jordip/pawpal/internal/display"
	"github.com/jordip/pawpal/internal/schedule"
	"github.com/jordip/pawpal/internal/tui/msgs"
	"github.com/jordip/pawpal/internal/tui/styles"
)

// ScheduleModel renders the daily plan with its explanation and any
// time conflicts. The plan is recomputed every time the view is entered.
type ScheduleModel struct {
	store     *care.Store
	scheduler *schedule.Scheduler
	width     int
	height    int
}

// NewScheduleModel builds a fresh plan for store.
func NewScheduleModel(store *care.Store) ScheduleModel {
	s := schedule.New(store)
	s.GenerateDailyPlan()
	return ScheduleModel{store: store, scheduler: s}
}

// Init implements tea.Model.
func (m ScheduleModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScheduleModel) Update(msg tea.Msg) (ScheduleModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
		case "r":
			return NewScheduleModel(m.store), nil
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m ScheduleModel) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Today's Schedule") + "\n\n")

	plan := m.scheduler.Schedule()
	if len(plan) == 0 {
		b.WriteString(styles.SubtleStyle.Render("(Nothing scheduled)") + "\n")
	}
	for i, task := range plan {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, display.TaskLine(m.store, task)))
	}
	b.WriteString(fmt.Sprintf("\nTotal scheduled time: %d minutes\n", m.scheduler.TotalScheduledTime()))

	b.WriteString("\n" + styles.BoxStyle.Render(m.scheduler.Explain().String()) + "\n")

	if warnings := m.scheduler.ConflictWarnings(); warnings != "" {
		b.WriteString("\n" + styles.WarningStyle.Render(warnings) + "\n")
	} else {
		b.WriteString("\n" + styles.SubtleStyle.Render("No scheduling conflicts.") + "\n")
	}

	b.WriteString("\n" + styles.SubtleStyle.Render("r refresh · esc back"))
	return b.String()
}
