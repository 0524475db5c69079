package schedule

import (
	"time"

	"github.com/jordip/pawpal/internal/care"
	"github.com/jordip/pawpal/internal/util"
)

func newTaskID() (string, error) {
	return util.GenerateShortID()
}

// MarkComplete marks task as done. For once-off tasks that is the whole
// story and nil is returned. For recurring tasks it derives the next
// occurrence: a brand-new task with the same fields, a fresh ID,
// Completed=false, and the due date advanced by the frequency interval.
// The completed instance stays completed forever, forming an append-only
// history of occurrences. The caller registers the returned task with the
// store (AddNextOccurrence does both).
func (s *Scheduler) MarkComplete(task *care.Task) *care.Task {
	task.MarkComplete()
	if task.Frequency == care.FrequencyOnce {
		return nil
	}

	next := *task
	next.Completed = false
	next.DueDate = nextDueDate(task.DueDate, task.Frequency)
	if id, err := newTaskID(); err == nil {
		next.ID = id
	}
	return &next
}

// AddNextOccurrence is MarkComplete plus registration of the produced
// occurrence with the store.
func (s *Scheduler) AddNextOccurrence(task *care.Task) *care.Task {
	next := s.MarkComplete(task)
	if next != nil {
		s.store.AddTask(next)
	}
	return next
}

// nextDueDate advances a due date by one day, seven days, or one calendar
// month. Month arithmetic uses Go's normalization, so end-of-month
// overflow rolls forward.
func nextDueDate(due string, freq care.Frequency) string {
	d, err := time.Parse(care.DateLayout, due)
	if err != nil {
		// Due dates are validated at construction; an unparsable one here
		// means the task bypassed NewTask. Leave it unchanged.
		return due
	}
	switch freq {
	case care.FrequencyDaily:
		d = d.AddDate(0, 0, 1)
	case care.FrequencyWeekly:
		d = d.AddDate(0, 0, 7)
	case care.FrequencyMonthly:
		d = d.AddDate(0, 1, 0)
	}
	return d.Format(care.DateLayout)
}
