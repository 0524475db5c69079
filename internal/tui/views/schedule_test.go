package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jordip/pawpal/internal/tui/msgs"
)

func TestScheduleModel_ViewEmpty(t *testing.T) {
	out := NewScheduleModel(newTestStore(t)).View()
	for _, want := range []string{"(Nothing scheduled)", "Total scheduled time: 0 minutes", "No scheduling conflicts."} {
		if !strings.Contains(out, want) {
			t.Errorf("expected view to contain %q\n%s", want, out)
		}
	}
}

func TestScheduleModel_ViewShowsPlanAndExplanation(t *testing.T) {
	store := newTestStore(t)
	pet := addTestPet(t, store, "Max")
	addTestTask(t, store, pet, "Morning walk")

	out := NewScheduleModel(store).View()
	for _, want := range []string{
		"Morning walk",
		"Total scheduled time: 30 minutes",
		"Schedule Summary for Jordan",
		"Scheduled 1 out of 1 incomplete tasks",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected view to contain %q\n%s", want, out)
		}
	}
}

func TestScheduleModel_ShowsConflicts(t *testing.T) {
	store := newTestStore(t)
	pet := addTestPet(t, store, "Max")
	a := addTestTask(t, store, pet, "Morning walk")
	b := addTestTask(t, store, pet, "Breakfast")
	a.ScheduledTime = "08:00"
	b.ScheduledTime = "08:15"

	out := NewScheduleModel(store).View()
	if !strings.Contains(out, "Scheduling conflicts detected") {
		t.Errorf("expected conflict warning\n%s", out)
	}
}

func TestScheduleModel_EscGoesHome(t *testing.T) {
	m := NewScheduleModel(newTestStore(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(msgs.GoToHomeMsg); !ok {
		t.Errorf("expected GoToHomeMsg, got %T", cmd())
	}
}

func TestScheduleModel_RefreshPicksUpNewTasks(t *testing.T) {
	store := newTestStore(t)
	pet := addTestPet(t, store, "Max")
	m := NewScheduleModel(store)

	addTestTask(t, store, pet, "Evening walk")
	m, _ = m.Update(keyRunes("r"))

	if !strings.Contains(m.View(), "Evening walk") {
		t.Error("expected refreshed plan to include the new task")
	}
}
