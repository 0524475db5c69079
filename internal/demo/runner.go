package demo

import (
	"fmt"
	"io"
	"time"

	"github.com/jordip/pawpal/internal/care"
	"github.com/jordip/pawpal/internal/display"
	"github.com/jordip/pawpal/internal/schedule"
)

// Runner walks the demo scenario step by step, writing to w.
type Runner struct {
	cfg *Config
	w   io.Writer
}

// NewRunner creates a runner writing to w.
func NewRunner(cfg *Config, w io.Writer) *Runner {
	return &Runner{cfg: cfg, w: w}
}

func (r *Runner) pause() {
	if r.cfg.StepDelay > 0 {
		time.Sleep(r.cfg.StepDelay)
	}
}

func (r *Runner) step(title string) {
	r.pause()
	display.Header(r.w, title)
}

// Run executes the full walkthrough.
func (r *Runner) Run() error {
	display.Header(r.w, "PawPal CLI Demo")
	fmt.Fprintln(r.w, "\nWelcome to PawPal! Let's set up a pet care schedule.")

	fix, err := NewFixture()
	if err != nil {
		return err
	}
	store := fix.Store
	sched := schedule.New(store)

	r.step("Step 1: Owner")
	fmt.Fprintf(r.w, "\nOwner created: %s\n", store.Owner().Name)
	fmt.Fprintf(r.w, "Available time: %d minutes per day\n", store.Owner().AvailableTime())

	r.step("Step 2: Pets")
	display.PetList(r.w, store.Pets())

	r.step("Step 3: Care Tasks")
	display.TaskList(r.w, store, store.Tasks(), "All tasks")

	r.step("Step 4: Filter Tasks")
	display.TaskList(r.w, store, store.TasksByPet(fix.Dog), fmt.Sprintf("Tasks for %s", fix.Dog.Name))
	display.TaskList(r.w, store, store.TasksByType(care.TaskFeed), "All feeding tasks")

	r.step("Step 5: Generate Daily Schedule")
	fmt.Fprintf(r.w, "\nGenerating schedule for %d minutes...\n", store.Owner().AvailableTime())
	plan := sched.GenerateDailyPlan()
	fmt.Fprintf(r.w, "Schedule generated with %d tasks\n", len(plan))
	display.TaskList(r.w, store, plan, "Today's schedule")

	r.step("Step 6: Scheduling Explanation")
	fmt.Fprintf(r.w, "\n%s", sched.Explain().String())

	r.step("Step 7: Conflict Check")
	if warnings := sched.ConflictWarnings(); warnings != "" {
		fmt.Fprintf(r.w, "\n%s", warnings)
	} else {
		fmt.Fprintln(r.w, "\nNo scheduling conflicts.")
	}

	r.step("Step 8: Complete Tasks")
	r.completeTasks(store, sched)

	r.step("Step 9: Summary Statistics")
	display.Stats(r.w, store, sched.Schedule(), sched.TotalScheduledTime())

	r.step("Demo Complete")
	fmt.Fprintln(r.w, "\nPawPal demonstrated:")
	for _, feature := range []string{
		"Owner and pet management",
		"Task creation and tracking",
		"Priority-based scheduling",
		"Time constraint handling",
		"Conflict detection",
		"Recurring task regeneration",
		"Schedule explanations",
	} {
		fmt.Fprintf(r.w, "  - %s\n", feature)
	}
	return nil
}

// completeTasks marks the first two planned tasks done and regenerates the
// plan. Recurring tasks spawn their next occurrence.
func (r *Runner) completeTasks(store *care.Store, sched *schedule.Scheduler) {
	plan := sched.Schedule()
	if len(plan) == 0 {
		fmt.Fprintln(r.w, "\n(Nothing scheduled to complete)")
		return
	}

	for _, task := range plan[:min(2, len(plan))] {
		next := sched.AddNextOccurrence(task)
		fmt.Fprintf(r.w, "\nCompleted: %s\n", task.Name)
		if next != nil {
			fmt.Fprintf(r.w, "  Recurring %s task regenerated, next due %s\n", next.Frequency, next.DueDate)
		}
	}

	incomplete := store.IncompleteTasks()
	fmt.Fprintf(r.w, "\nRemaining incomplete tasks: %d\n", len(incomplete))

	fmt.Fprintln(r.w, "\nRegenerating schedule with completed tasks excluded...")
	display.TaskList(r.w, store, sched.GenerateDailyPlan(), "Updated schedule")
}
