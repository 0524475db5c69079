package schedule

import (
	"fmt"
	"strings"

	"github.com/jordip/pawpal/internal/care"
)

// Conflict is an unordered pair of tasks whose scheduled time windows
// overlap. A appears before B in store insertion order.
type Conflict struct {
	A *care.Task
	B *care.Task
}

// tasksOverlap reports whether both tasks have scheduled times and their
// half-open [start, end) windows intersect. Identical starts overlap; one
// window ending exactly when the other begins does not.
func tasksOverlap(a, b *care.Task) bool {
	aStart, ok := a.StartMinutes()
	if !ok {
		return false
	}
	bStart, ok := b.StartMinutes()
	if !ok {
		return false
	}
	aEnd := aStart + a.DurationMinutes
	bEnd := bStart + b.DurationMinutes
	return aStart < bEnd && bStart < aEnd
}

// DetectConflicts examines every unordered pair of time-scheduled tasks
// and returns the overlapping ones. Tasks without a scheduled time never
// participate. Quadratic over the scheduled tasks, which is fine at this
// system's scale (tens of tasks).
func (s *Scheduler) DetectConflicts() []Conflict {
	var scheduled []*care.Task
	for _, t := range s.store.Tasks() {
		if _, ok := t.StartMinutes(); ok {
			scheduled = append(scheduled, t)
		}
	}

	var conflicts []Conflict
	for i := 0; i < len(scheduled); i++ {
		for j := i + 1; j < len(scheduled); j++ {
			if tasksOverlap(scheduled[i], scheduled[j]) {
				conflicts = append(conflicts, Conflict{A: scheduled[i], B: scheduled[j]})
			}
		}
	}
	return conflicts
}

// ConflictWarnings renders the conflict set as a human-readable multi-line
// message. An empty string means no conflicts.
func (s *Scheduler) ConflictWarnings() string {
	conflicts := s.DetectConflicts()
	if len(conflicts) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Scheduling conflicts detected (%d):\n", len(conflicts))
	for _, c := range conflicts {
		fmt.Fprintf(&b, "- %q (%s, %s for %d min) overlaps %q (%s, %s for %d min)\n",
			c.A.Name, s.store.PetName(c.A), c.A.ScheduledTime, c.A.DurationMinutes,
			c.B.Name, s.store.PetName(c.B), c.B.ScheduledTime, c.B.DurationMinutes)
	}
	return b.String()
}
