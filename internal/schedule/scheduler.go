// Package schedule implements the PawPal scheduling engine: greedy
// priority-first daily plan generation, time-overlap conflict detection,
// recurring-task regeneration, and the explanation of scheduling decisions.
package schedule

import (
	"sort"

	"github.com/jordip/pawpal/internal/care"
)

// Scheduler turns the incomplete-task backlog of a store into a
// time-bounded daily plan. It holds only a reference into the store; the
// store remains the single owner of the task records.
type Scheduler struct {
	store *care.Store
	plan  []*care.Task
}

// New creates a scheduler reading from store.
func New(store *care.Store) *Scheduler {
	return &Scheduler{store: store}
}

// Store returns the task store the scheduler reads from.
func (s *Scheduler) Store() *care.Store {
	return s.store
}

// Prioritize returns the incomplete tasks sorted by priority (highest
// first), then duration (shortest first) on ties. The sort is stable, so
// tasks equal on both keys keep their insertion order and the output is
// deterministic for identical input.
func (s *Scheduler) Prioritize() []*care.Task {
	incomplete := s.store.IncompleteTasks()
	sorted := make([]*care.Task, len(incomplete))
	copy(sorted, incomplete)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].DurationMinutes < sorted[j].DurationMinutes
	})
	return sorted
}

// GenerateDailyPlan walks the prioritized backlog once, greedily taking
// every task that still fits in the owner's remaining time budget. Skipped
// tasks are skipped permanently: a large high-priority task can crowd out
// smaller lower-priority ones, because priority models care-criticality
// (medication must not lose its slot just to fit more tasks). The result
// is cached as the current plan and also returned.
func (s *Scheduler) GenerateDailyPlan() []*care.Task {
	selected, _ := buildPlan(s.store.Owner().AvailableTime(), s.Prioritize())
	s.plan = selected
	return s.plan
}

// Schedule returns the last generated daily plan without recomputing.
func (s *Scheduler) Schedule() []*care.Task {
	return s.plan
}

// TotalScheduledTime sums the durations of the tasks in the current daily
// plan, not the whole backlog.
func (s *Scheduler) TotalScheduledTime() int {
	total := 0
	for _, t := range s.plan {
		total += t.DurationMinutes
	}
	return total
}

// Decision records how one candidate task fared during plan generation.
type Decision struct {
	Task            *care.Task
	PetName         string
	Scheduled       bool
	RemainingBefore int // minutes left in the budget when the task was evaluated
}

// buildPlan is the selection walk shared by GenerateDailyPlan and Explain.
// It is pure: same candidates and budget, same output.
func buildPlan(available int, candidates []*care.Task) (selected []*care.Task, decisions []Decision) {
	selected = []*care.Task{}
	remaining := available
	for _, task := range candidates {
		d := Decision{Task: task, RemainingBefore: remaining}
		if task.DurationMinutes <= remaining {
			d.Scheduled = true
			selected = append(selected, task)
			remaining -= task.DurationMinutes
		}
		decisions = append(decisions, d)
	}
	return selected, decisions
}

// SortByTime returns all tasks ordered chronologically by scheduled time.
// Tasks without a scheduled time come after, keeping their original
// relative order; so do ties at identical times.
func (s *Scheduler) SortByTime() []*care.Task {
	tasks := s.store.Tasks()
	sorted := make([]*care.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, iOK := sorted[i].StartMinutes()
		sj, jOK := sorted[j].StartMinutes()
		if iOK && jOK {
			return si < sj
		}
		// Scheduled tasks sort before unscheduled ones.
		return iOK && !jOK
	})
	return sorted
}
