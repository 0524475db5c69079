package care

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrValidation marks construction failures. Callers branch on it with
// errors.Is; the wrapped message carries the specific violation.
var ErrValidation = errors.New("validation failed")

// TaskType classifies a pet care task.
type TaskType string

const (
	TaskWalk       TaskType = "walk"
	TaskFeed       TaskType = "feed"
	TaskMedication TaskType = "medication"
	TaskGrooming   TaskType = "grooming"
	TaskEnrichment TaskType = "enrichment"
	TaskPlaytime   TaskType = "playtime"
	TaskTraining   TaskType = "training"
)

// TaskTypes lists all task types in display order.
var TaskTypes = []TaskType{
	TaskWalk, TaskFeed, TaskMedication, TaskGrooming,
	TaskEnrichment, TaskPlaytime, TaskTraining,
}

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	switch t {
	case TaskWalk, TaskFeed, TaskMedication, TaskGrooming,
		TaskEnrichment, TaskPlaytime, TaskTraining:
		return true
	}
	return false
}

// ParseTaskType converts user input to a TaskType.
func ParseTaskType(s string) (TaskType, error) {
	t := TaskType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown task type %q: %w", s, ErrValidation)
	}
	return t, nil
}

// Frequency controls how a task recurs after completion.
type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Frequencies lists all frequencies in display order.
var Frequencies = []Frequency{
	FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly,
}

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// ParseFrequency converts user input to a Frequency. Empty input means once.
func ParseFrequency(s string) (Frequency, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FrequencyOnce, nil
	}
	f := Frequency(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown frequency %q: %w", s, ErrValidation)
	}
	return f, nil
}

// DateLayout is the calendar date format used for due dates.
const DateLayout = "2006-01-02"

// Task represents a single pet care chore. Construct through NewTask so the
// invariants hold; a Task that exists is valid.
type Task struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	Priority        int       `json:"priority"`
	Type            TaskType  `json:"type"`
	PetID           string    `json:"petId"`
	Completed       bool      `json:"completed"`
	ScheduledTime   string    `json:"scheduledTime,omitempty"` // "HH:MM", optional
	Frequency       Frequency `json:"frequency"`
	DueDate         string    `json:"dueDate,omitempty"` // "2006-01-02", required unless once
}

// TaskSpec carries the fields for NewTask. Zero-value Frequency means once.
type TaskSpec struct {
	Name            string
	DurationMinutes int
	Priority        int
	Type            TaskType
	PetID           string
	ScheduledTime   string
	Frequency       Frequency
	DueDate         string
}

// NewTask validates spec and returns a Task with a fresh ID. On any
// violation it returns an error wrapping ErrValidation and no Task.
func NewTask(spec TaskSpec) (*Task, error) {
	if spec.Priority < 1 || spec.Priority > 5 {
		return nil, fmt.Errorf("priority must be between 1 and 5, got %d: %w", spec.Priority, ErrValidation)
	}
	if spec.DurationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d: %w", spec.DurationMinutes, ErrValidation)
	}
	if !spec.Type.Valid() {
		return nil, fmt.Errorf("unknown task type %q: %w", spec.Type, ErrValidation)
	}
	freq := spec.Frequency
	if freq == "" {
		freq = FrequencyOnce
	}
	if !freq.Valid() {
		return nil, fmt.Errorf("unknown frequency %q: %w", spec.Frequency, ErrValidation)
	}
	if spec.ScheduledTime != "" {
		if _, err := ParseClock(spec.ScheduledTime); err != nil {
			return nil, err
		}
	}
	if freq != FrequencyOnce && spec.DueDate == "" {
		return nil, fmt.Errorf("due date is required for %s tasks: %w", freq, ErrValidation)
	}
	if spec.DueDate != "" {
		if err := validDate(spec.DueDate); err != nil {
			return nil, err
		}
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}
	return &Task{
		ID:              id,
		Name:            spec.Name,
		DurationMinutes: spec.DurationMinutes,
		Priority:        spec.Priority,
		Type:            spec.Type,
		PetID:           spec.PetID,
		ScheduledTime:   spec.ScheduledTime,
		Frequency:       freq,
		DueDate:         spec.DueDate,
	}, nil
}

// MarkComplete flips the task to completed. The flip is terminal: recurring
// tasks get a brand-new instance for the next occurrence instead of a reset.
func (t *Task) MarkComplete() {
	t.Completed = true
}

// StartMinutes returns the scheduled start as minutes since midnight.
// ok is false when the task has no scheduled time.
func (t *Task) StartMinutes() (start int, ok bool) {
	if t.ScheduledTime == "" {
		return 0, false
	}
	// Validated at construction; a parse failure here means the Task was
	// built outside NewTask.
	start, err := ParseClock(t.ScheduledTime)
	if err != nil {
		return 0, false
	}
	return start, true
}

// EndMinutes returns the half-open end of the scheduled window.
func (t *Task) EndMinutes() (end int, ok bool) {
	start, ok := t.StartMinutes()
	if !ok {
		return 0, false
	}
	return start + t.DurationMinutes, true
}

// ParseClock parses a 24-hour "HH:MM" value into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM: %w", s, ErrValidation)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, ErrValidation)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, ErrValidation)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
