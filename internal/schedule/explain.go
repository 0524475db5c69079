package schedule

import (
	"fmt"
	"strings"
)

// Strategy is the plain-language statement of the ordering policy,
// included in every explanation.
const Strategy = "Tasks are sorted by priority (highest first), then by duration " +
	"(shorter first for equal priorities). This ensures critical tasks are " +
	"completed while maximizing the number of tasks that fit in available time."

// Explanation reports why the daily plan looks the way it does. It is
// derived purely from the owner's budget and the current backlog, so
// building it twice without intervening mutation yields identical reports.
type Explanation struct {
	OwnerName        string
	AvailableMinutes int
	UsedMinutes      int
	Scheduled        []Decision
	Skipped          []Decision
}

// Explain recomputes the selection walk fresh against the current store
// state. It never reads or writes the cached plan, so it can be called
// before or after GenerateDailyPlan with the same result.
func (s *Scheduler) Explain() *Explanation {
	owner := s.store.Owner()
	_, decisions := buildPlan(owner.AvailableTime(), s.Prioritize())

	e := &Explanation{
		OwnerName:        owner.Name,
		AvailableMinutes: owner.AvailableTime(),
	}
	for _, d := range decisions {
		d.PetName = s.store.PetName(d.Task)
		if d.Scheduled {
			e.UsedMinutes += d.Task.DurationMinutes
			e.Scheduled = append(e.Scheduled, d)
		} else {
			e.Skipped = append(e.Skipped, d)
		}
	}
	return e
}

// RemainingMinutes returns the unused part of the budget.
func (e *Explanation) RemainingMinutes() int {
	return e.AvailableMinutes - e.UsedMinutes
}

// String renders the explanation as the multi-line report shown to users.
func (e *Explanation) String() string {
	var b strings.Builder

	total := len(e.Scheduled) + len(e.Skipped)
	fmt.Fprintf(&b, "Schedule Summary for %s\n", e.OwnerName)
	fmt.Fprintf(&b, "- Scheduled %d out of %d incomplete tasks\n", len(e.Scheduled), total)
	fmt.Fprintf(&b, "- Total time: %d minutes out of %d minutes available\n",
		e.UsedMinutes, e.AvailableMinutes)
	fmt.Fprintf(&b, "- Time remaining: %d minutes\n", e.RemainingMinutes())

	b.WriteString("\nPrioritization Strategy:\n")
	b.WriteString(Strategy)
	b.WriteString("\n")

	if len(e.Scheduled) > 0 {
		b.WriteString("\nScheduled Tasks:\n")
		for i, d := range e.Scheduled {
			fmt.Fprintf(&b, "%d. %s (%s) - %d min, Priority %d/5, %s\n",
				i+1, d.Task.Name, d.PetName, d.Task.DurationMinutes,
				d.Task.Priority, d.Task.Type)
		}
	}

	if len(e.Skipped) > 0 {
		fmt.Fprintf(&b, "\nTasks Not Scheduled (%d):\n", len(e.Skipped))
		b.WriteString("These tasks did not fit in the remaining time:\n")
		for _, d := range e.Skipped {
			fmt.Fprintf(&b, "- %s (%s) - %d min, Priority %d/5: did not fit in remaining time (%d min left)\n",
				d.Task.Name, d.PetName, d.Task.DurationMinutes,
				d.Task.Priority, d.RemainingBefore)
		}
	}

	return b.String()
}
