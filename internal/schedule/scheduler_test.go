package schedule

import (
	"testing"

	"github.com/jordip/pawpal/internal/care"
)

func newFixture(t *testing.T, availableMinutes int) (*Scheduler, *care.Pet) {
	t.Helper()
	owner, err := care.NewOwner("Jordan", availableMinutes)
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
	return New(store), dog
}

func addTask(t *testing.T, s *Scheduler, spec care.TaskSpec) *care.Task {
	t.Helper()
	task, err := care.NewTask(spec)
	if err != nil {
		t.Fatalf("NewTask(%q) failed: %v", spec.Name, err)
	}
	s.Store().AddTask(task)
	return task
}

func simpleTask(pet *care.Pet, name string, duration, priority int) care.TaskSpec {
	return care.TaskSpec{
		Name:            name,
		DurationMinutes: duration,
		Priority:        priority,
		Type:            care.TaskWalk,
		PetID:           pet.ID,
	}
}

func TestPrioritizeOrdering(t *testing.T) {
	s, dog := newFixture(t, 180)
	low := addTask(t, s, simpleTask(dog, "low", 20, 1))
	highLong := addTask(t, s, simpleTask(dog, "high long", 60, 5))
	mid := addTask(t, s, simpleTask(dog, "mid", 30, 3))
	highShort := addTask(t, s, simpleTask(dog, "high short", 10, 5))

	got := s.Prioritize()
	want := []*care.Task{highShort, highLong, mid, low}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i].Name, want[i].Name)
		}
	}
}

func TestPrioritizeStableOnFullTies(t *testing.T) {
	s, dog := newFixture(t, 180)
	first := addTask(t, s, simpleTask(dog, "first", 30, 4))
	second := addTask(t, s, simpleTask(dog, "second", 30, 4))
	third := addTask(t, s, simpleTask(dog, "third", 30, 4))

	got := s.Prioritize()
	want := []*care.Task{first, second, third}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tie order not stable at %d: got %q, want %q", i, got[i].Name, want[i].Name)
		}
	}
}

func TestPrioritizeExcludesCompleted(t *testing.T) {
	s, dog := newFixture(t, 180)
	done := addTask(t, s, simpleTask(dog, "done", 10, 5))
	open := addTask(t, s, simpleTask(dog, "open", 10, 1))
	done.MarkComplete()

	got := s.Prioritize()
	if len(got) != 1 || got[0] != open {
		t.Errorf("completed tasks must not be prioritized, got %d tasks", len(got))
	}
}

func TestGenerateDailyPlanGreedy(t *testing.T) {
	// 90 minutes: A (60 min, prio 5), B (30 min, prio 4), C (30 min, prio 4).
	// Plan must be [A, B] with C skipped on the insertion-order tie.
	s, dog := newFixture(t, 90)
	a := addTask(t, s, simpleTask(dog, "A", 60, 5))
	b := addTask(t, s, simpleTask(dog, "B", 30, 4))
	c := addTask(t, s, simpleTask(dog, "C", 30, 4))

	plan := s.GenerateDailyPlan()
	if len(plan) != 2 || plan[0] != a || plan[1] != b {
		names := make([]string, len(plan))
		for i, task := range plan {
			names[i] = task.Name
		}
		t.Fatalf("expected plan [A B], got %v", names)
	}
	if s.TotalScheduledTime() != 90 {
		t.Errorf("TotalScheduledTime = %d, want 90", s.TotalScheduledTime())
	}

	e := s.Explain()
	if len(e.Skipped) != 1 || e.Skipped[0].Task != c {
		t.Fatalf("expected C to be the one skipped task")
	}
	if e.Skipped[0].RemainingBefore != 0 {
		t.Errorf("C was evaluated with %d min remaining, want 0", e.Skipped[0].RemainingBefore)
	}
}

func TestGenerateDailyPlanNoBacktracking(t *testing.T) {
	// A large high-priority task blocks two smaller tasks that would
	// together fill the budget. The greedy walk accepts that.
	s, dog := newFixture(t, 60)
	big := addTask(t, s, simpleTask(dog, "big", 50, 5))
	addTask(t, s, simpleTask(dog, "small1", 30, 4))
	addTask(t, s, simpleTask(dog, "small2", 30, 4))

	plan := s.GenerateDailyPlan()
	if len(plan) != 1 || plan[0] != big {
		t.Errorf("expected only the big task scheduled, got %d tasks", len(plan))
	}
}

func TestGenerateDailyPlanSkipsThenFits(t *testing.T) {
	// A task that does not fit is skipped permanently, but later smaller
	// candidates are still considered.
	s, dog := newFixture(t, 40)
	addTask(t, s, simpleTask(dog, "too big", 50, 5))
	small := addTask(t, s, simpleTask(dog, "small", 30, 4))

	plan := s.GenerateDailyPlan()
	if len(plan) != 1 || plan[0] != small {
		t.Errorf("expected the small task to be scheduled")
	}
}

func TestGenerateDailyPlanBudgetProperty(t *testing.T) {
	s, dog := newFixture(t, 100)
	durations := []int{15, 25, 35, 45, 10, 5, 60}
	for i, d := range durations {
		addTask(t, s, simpleTask(dog, "t", d, 1+i%5))
	}

	s.GenerateDailyPlan()
	if s.TotalScheduledTime() > 100 {
		t.Errorf("plan exceeds budget: %d > 100", s.TotalScheduledTime())
	}
}

func TestGenerateDailyPlanIdempotent(t *testing.T) {
	s, dog := newFixture(t, 90)
	for i := 0; i < 5; i++ {
		addTask(t, s, simpleTask(dog, "t", 20+i, 1+i%5))
	}

	first := s.GenerateDailyPlan()
	second := s.GenerateDailyPlan()
	if len(first) != len(second) {
		t.Fatalf("plan lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("plan differs at %d without intervening mutation", i)
		}
	}
}

func TestGenerateDailyPlanEdgeCases(t *testing.T) {
	t.Run("zero available time", func(t *testing.T) {
		s, dog := newFixture(t, 0)
		addTask(t, s, simpleTask(dog, "walk", 30, 5))
		if plan := s.GenerateDailyPlan(); len(plan) != 0 {
			t.Errorf("expected empty plan, got %d tasks", len(plan))
		}
	})

	t.Run("no tasks", func(t *testing.T) {
		s, _ := newFixture(t, 180)
		if plan := s.GenerateDailyPlan(); len(plan) != 0 {
			t.Errorf("expected empty plan, got %d tasks", len(plan))
		}
	})

	t.Run("nothing fits", func(t *testing.T) {
		s, dog := newFixture(t, 20)
		addTask(t, s, simpleTask(dog, "a", 30, 5))
		addTask(t, s, simpleTask(dog, "b", 40, 4))
		if plan := s.GenerateDailyPlan(); len(plan) != 0 {
			t.Errorf("expected empty plan, got %d tasks", len(plan))
		}
	})
}

func TestScheduleReturnsLastPlan(t *testing.T) {
	s, dog := newFixture(t, 90)
	if s.Schedule() != nil {
		t.Error("schedule before generation should be nil")
	}
	addTask(t, s, simpleTask(dog, "walk", 30, 5))
	plan := s.GenerateDailyPlan()

	// Mutating the store does not change the cached schedule.
	addTask(t, s, simpleTask(dog, "late addition", 10, 5))
	got := s.Schedule()
	if len(got) != len(plan) || got[0] != plan[0] {
		t.Error("Schedule must return the last generated plan without recomputing")
	}
}

func TestCompletedNeverRescheduled(t *testing.T) {
	s, dog := newFixture(t, 180)
	walk := addTask(t, s, simpleTask(dog, "walk", 30, 5))
	addTask(t, s, simpleTask(dog, "feed", 10, 5))

	walk.MarkComplete()
	for _, task := range s.GenerateDailyPlan() {
		if task == walk {
			t.Error("completed task appeared in a subsequent plan")
		}
	}
}

func TestSortByTime(t *testing.T) {
	s, dog := newFixture(t, 180)
	noTime1 := addTask(t, s, simpleTask(dog, "no time 1", 10, 3))
	late := addTask(t, s, care.TaskSpec{Name: "late", DurationMinutes: 10, Priority: 3, Type: care.TaskFeed, PetID: dog.ID, ScheduledTime: "18:00"})
	early := addTask(t, s, care.TaskSpec{Name: "early", DurationMinutes: 10, Priority: 3, Type: care.TaskWalk, PetID: dog.ID, ScheduledTime: "07:30"})
	noTime2 := addTask(t, s, simpleTask(dog, "no time 2", 10, 3))
	alsoEarly := addTask(t, s, care.TaskSpec{Name: "also early", DurationMinutes: 5, Priority: 2, Type: care.TaskFeed, PetID: dog.ID, ScheduledTime: "07:30"})

	got := s.SortByTime()
	want := []*care.Task{early, alsoEarly, late, noTime1, noTime2}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i].Name, want[i].Name)
		}
	}
}
