package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jordip/pawpal/internal/care"
)

func fixture(t *testing.T) (*care.Store, *care.Pet) {
	t.Helper()
	owner, err := care.NewOwner("Jordan", 180)
	if err != nil {
		t.Fatalf("NewOwner failed: %v", err)
	}
	store := care.NewStore(owner)
	dog, err := care.NewPet("Max", "dog", 3)
	if err != nil {
		t.Fatalf("NewPet failed: %v", err)
	}
	if err := store.AddPet(dog); err != nil {
		t.Fatalf("AddPet failed: %v", err)
	}
	return store, dog
}

func TestTaskLine(t *testing.T) {
	store, dog := fixture(t)
	task, err := care.NewTask(care.TaskSpec{
		Name:            "Morning medication",
		DurationMinutes: 5,
		Priority:        5,
		Type:            care.TaskMedication,
		PetID:           dog.ID,
		ScheduledTime:   "08:00",
		Frequency:       care.FrequencyDaily,
		DueDate:         "2026-08-28",
	})
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	store.AddTask(task)

	line := TaskLine(store, task)
	for _, want := range []string{"[ ]", "Morning medication", "Max", "5 min", "Priority 5/5", "medication", "at 08:00", "daily, due 2026-08-28"} {
		if !strings.Contains(line, want) {
			t.Errorf("TaskLine missing %q: %s", want, line)
		}
	}

	task.MarkComplete()
	if !strings.Contains(TaskLine(store, task), "[x]") {
		t.Error("completed task should render [x]")
	}
}

func TestTaskListEmpty(t *testing.T) {
	store, _ := fixture(t)
	var buf bytes.Buffer
	TaskList(&buf, store, nil, "Tasks")
	if !strings.Contains(buf.String(), "(No tasks)") {
		t.Errorf("empty list output wrong: %q", buf.String())
	}
}

func TestStats(t *testing.T) {
	store, dog := fixture(t)
	task, err := care.NewTask(care.TaskSpec{Name: "Walk", DurationMinutes: 30, Priority: 4, Type: care.TaskWalk, PetID: dog.ID})
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	store.AddTask(task)

	var buf bytes.Buffer
	Stats(&buf, store, []*care.Task{task}, 30)
	out := buf.String()
	for _, want := range []string{"Total tasks: 1", "Available time: 180 minutes", "Scheduled time: 30 minutes", "Utilization: 16.7%", "Max tasks: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Stats missing %q:\n%s", want, out)
		}
	}
}
