package schedule

import (
	"testing"

	"github.com/jordip/pawpal/internal/care"
)

func recurringTask(pet *care.Pet, freq care.Frequency, due string) care.TaskSpec {
	return care.TaskSpec{
		Name:            "Morning medication",
		DurationMinutes: 5,
		Priority:        5,
		Type:            care.TaskMedication,
		PetID:           pet.ID,
		ScheduledTime:   "08:00",
		Frequency:       freq,
		DueDate:         due,
	}
}

func TestMarkCompleteOnce(t *testing.T) {
	s, dog := newFixture(t, 180)
	task := addTask(t, s, simpleTask(dog, "walk", 30, 5))

	next := s.MarkComplete(task)
	if next != nil {
		t.Errorf("once-off completion must not produce a new task, got %+v", next)
	}
	if !task.Completed {
		t.Error("task must be marked completed")
	}
	if len(s.Store().Tasks()) != 1 {
		t.Errorf("store must still hold exactly the original task")
	}
}

func TestMarkCompleteDaily(t *testing.T) {
	s, dog := newFixture(t, 180)
	task := addTask(t, s, recurringTask(dog, care.FrequencyDaily, "2026-08-28"))

	next := s.MarkComplete(task)
	if next == nil {
		t.Fatal("daily completion must produce the next occurrence")
	}
	if !task.Completed {
		t.Error("original must stay completed")
	}
	if next.Completed {
		t.Error("next occurrence must start incomplete")
	}
	if next.DueDate != "2026-08-29" {
		t.Errorf("due date advanced to %q, want 2026-08-29", next.DueDate)
	}
	if next == task || next.ID == task.ID {
		t.Error("next occurrence must be a distinct instance")
	}
	// All other fields are copied.
	if next.Name != task.Name || next.DurationMinutes != task.DurationMinutes ||
		next.Priority != task.Priority || next.Type != task.Type ||
		next.PetID != task.PetID || next.ScheduledTime != task.ScheduledTime ||
		next.Frequency != task.Frequency {
		t.Errorf("occurrence fields not copied: %+v", next)
	}
}

func TestMarkCompleteWeekly(t *testing.T) {
	s, dog := newFixture(t, 180)
	task := addTask(t, s, recurringTask(dog, care.FrequencyWeekly, "2026-08-28"))

	next := s.MarkComplete(task)
	if next == nil || next.DueDate != "2026-09-04" {
		t.Fatalf("weekly due date wrong: %+v", next)
	}
}

func TestMarkCompleteMonthly(t *testing.T) {
	s, dog := newFixture(t, 180)
	task := addTask(t, s, recurringTask(dog, care.FrequencyMonthly, "2026-08-28"))

	next := s.MarkComplete(task)
	if next == nil || next.DueDate != "2026-09-28" {
		t.Fatalf("monthly due date wrong: %+v", next)
	}
}

func TestMarkCompleteMonthlyNormalizes(t *testing.T) {
	s, dog := newFixture(t, 180)
	task := addTask(t, s, recurringTask(dog, care.FrequencyMonthly, "2026-01-31"))

	// Go normalizes Jan 31 + 1 month past the end of February.
	next := s.MarkComplete(task)
	if next == nil || next.DueDate != "2026-03-03" {
		t.Fatalf("normalized monthly due date wrong: %+v", next)
	}
}

func TestAddNextOccurrence(t *testing.T) {
	s, dog := newFixture(t, 180)
	task := addTask(t, s, recurringTask(dog, care.FrequencyDaily, "2026-08-28"))

	next := s.AddNextOccurrence(task)
	if next == nil {
		t.Fatal("expected next occurrence")
	}
	tasks := s.Store().Tasks()
	if len(tasks) != 2 || tasks[1] != next {
		t.Errorf("next occurrence must be registered with the store")
	}

	// The completed original never reappears; the occurrence is eligible.
	plan := s.GenerateDailyPlan()
	if len(plan) != 1 || plan[0] != next {
		t.Errorf("plan after completion must hold only the new occurrence")
	}
}

func TestOccurrenceHistoryIsAppendOnly(t *testing.T) {
	s, dog := newFixture(t, 180)
	task := addTask(t, s, recurringTask(dog, care.FrequencyDaily, "2026-08-28"))

	first := s.AddNextOccurrence(task)
	second := s.AddNextOccurrence(first)
	if second == nil || second.DueDate != "2026-08-30" {
		t.Fatalf("second occurrence wrong: %+v", second)
	}

	completed := 0
	for _, tk := range s.Store().Tasks() {
		if tk.Completed {
			completed++
		}
	}
	if len(s.Store().Tasks()) != 3 || completed != 2 {
		t.Errorf("expected 3 tasks with 2 completed, got %d with %d completed",
			len(s.Store().Tasks()), completed)
	}
}
