// Package display renders pawpal entities for plain terminal output. The
// CLI and the demo write through it; the TUI has its own lipgloss styling.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/jordip/pawpal/internal/care"
)

const headerWidth = 60

// Header prints a boxed section header.
func Header(w io.Writer, text string) {
	line := strings.Repeat("=", headerWidth)
	fmt.Fprintf(w, "\n%s\n  %s\n%s\n", line, text, line)
}

// Stars renders a priority as a 1-5 star gauge.
func Stars(priority int) string {
	return strings.Repeat("*", priority)
}

// TaskLine renders the one-line summary used in listings.
func TaskLine(store *care.Store, task *care.Task) string {
	status := "[ ]"
	if task.Completed {
		status = "[x]"
	}
	line := fmt.Sprintf("%s %s — %s | %d min | Priority %d/5 | %s",
		status, task.Name, store.PetName(task), task.DurationMinutes,
		task.Priority, task.Type)
	if task.ScheduledTime != "" {
		line += " | at " + task.ScheduledTime
	}
	if task.Frequency != care.FrequencyOnce {
		line += fmt.Sprintf(" | %s, due %s", task.Frequency, task.DueDate)
	}
	return line
}

// TaskList prints a titled, numbered task listing.
func TaskList(w io.Writer, store *care.Store, tasks []*care.Task, title string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	if len(tasks) == 0 {
		fmt.Fprintln(w, "  (No tasks)")
		return
	}
	for i, task := range tasks {
		fmt.Fprintf(w, "  %d. %s\n", i+1, TaskLine(store, task))
	}
}

// PetList prints the owner's pets with their special needs.
func PetList(w io.Writer, pets []*care.Pet) {
	if len(pets) == 0 {
		fmt.Fprintln(w, "  (No pets)")
		return
	}
	for _, p := range pets {
		fmt.Fprintf(w, "  - %s (%s, age %d)\n", p.Name, p.Species, p.Age)
		if len(p.SpecialNeeds) > 0 {
			fmt.Fprintf(w, "    Special needs: %s\n", strings.Join(p.SpecialNeeds, ", "))
		}
	}
}

// Stats prints the summary statistics block for the current plan state.
func Stats(w io.Writer, store *care.Store, planned []*care.Task, scheduledTime int) {
	total := len(store.Tasks())
	completed := total - len(store.IncompleteTasks())
	available := store.Owner().AvailableTime()

	fmt.Fprintln(w, "\nTask Statistics:")
	fmt.Fprintf(w, "  Total tasks: %d\n", total)
	fmt.Fprintf(w, "  Completed: %d\n", completed)
	fmt.Fprintf(w, "  Incomplete: %d\n", total-completed)
	fmt.Fprintf(w, "  Scheduled in current plan: %d\n", len(planned))

	fmt.Fprintln(w, "\nTime Statistics:")
	fmt.Fprintf(w, "  Available time: %d minutes\n", available)
	fmt.Fprintf(w, "  Scheduled time: %d minutes\n", scheduledTime)
	fmt.Fprintf(w, "  Remaining time: %d minutes\n", available-scheduledTime)
	if available > 0 {
		fmt.Fprintf(w, "  Utilization: %.1f%%\n", float64(scheduledTime)/float64(available)*100)
	}

	fmt.Fprintln(w, "\nPet Statistics:")
	fmt.Fprintf(w, "  Total pets: %d\n", len(store.Pets()))
	for _, p := range store.Pets() {
		fmt.Fprintf(w, "  %s tasks: %d\n", p.Name, len(store.TasksByPet(p)))
	}
}
