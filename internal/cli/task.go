package cli

import (
	"fmt"
	"os"

	"github.com/jordip/pawpal/internal/care"
	"github.com/jordip/pawpal/internal/display"
	"github.com/jordip/pawpal/internal/schedule"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage care tasks",
}

var (
	taskPet        string
	taskDuration   int
	taskPriority   int
	taskType       string
	taskAt         string
	taskFrequency  string
	taskDue        string
	listPet        string
	listType       string
	listIncomplete bool
)

var taskAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a care task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runTaskList,
}

var taskCompleteCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Mark a task complete (recurring tasks regenerate)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskComplete,
}

var taskRemoveCmd = &cobra.Command{
	Use:   "remove <task-id>",
	Short: "Remove a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskRemove,
}

func init() {
	taskAddCmd.Flags().StringVar(&taskPet, "pet", "", "Pet name or ID (required)")
	taskAddCmd.Flags().IntVar(&taskDuration, "duration", 0, "Duration in minutes (required)")
	taskAddCmd.Flags().IntVar(&taskPriority, "priority", 3, "Priority 1 (lowest) to 5 (highest)")
	taskAddCmd.Flags().StringVar(&taskType, "type", "", "Task type: walk, feed, medication, grooming, enrichment, playtime, training (required)")
	taskAddCmd.Flags().StringVar(&taskAt, "at", "", "Scheduled time of day, HH:MM")
	taskAddCmd.Flags().StringVar(&taskFrequency, "frequency", "", "once (default), daily, weekly, monthly")
	taskAddCmd.Flags().StringVar(&taskDue, "due", "", "Due date, YYYY-MM-DD (required for recurring tasks)")
	_ = taskAddCmd.MarkFlagRequired("pet")
	_ = taskAddCmd.MarkFlagRequired("duration")
	_ = taskAddCmd.MarkFlagRequired("type")

	taskListCmd.Flags().StringVar(&listPet, "pet", "", "Only tasks for this pet (name or ID)")
	taskListCmd.Flags().StringVar(&listType, "type", "", "Only tasks of this type")
	taskListCmd.Flags().BoolVar(&listIncomplete, "incomplete", false, "Only incomplete tasks")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskCompleteCmd)
	taskCmd.AddCommand(taskRemoveCmd)
}

// findPet resolves a pet by ID first, then by name.
func findPet(store *care.Store, ref string) (*care.Pet, error) {
	if p := store.PetByID(ref); p != nil {
		return p, nil
	}
	for _, p := range store.Pets() {
		if p.Name == ref {
			return p, nil
		}
	}
	return nil, fmt.Errorf("pet not found: %s", ref)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	store, err := care.Load(stateDir)
	if err != nil {
		return err
	}

	pet, err := findPet(store, taskPet)
	if err != nil {
		return err
	}
	typ, err := care.ParseTaskType(taskType)
	if err != nil {
		return err
	}
	freq, err := care.ParseFrequency(taskFrequency)
	if err != nil {
		return err
	}

	task, err := care.NewTask(care.TaskSpec{
		Name:            args[0],
		DurationMinutes: taskDuration,
		Priority:        taskPriority,
		Type:            typ,
		PetID:           pet.ID,
		ScheduledTime:   taskAt,
		Frequency:       freq,
		DueDate:         taskDue,
	})
	if err != nil {
		return err
	}

	store.AddTask(task)
	if err := care.Save(stateDir, store); err != nil {
		return err
	}

	fmt.Printf("Added task [%s] %s\n", task.ID, display.TaskLine(store, task))
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	store, err := care.Load(stateDir)
	if err != nil {
		return err
	}

	tasks := store.Tasks()
	title := "All tasks"
	switch {
	case listPet != "":
		pet, err := findPet(store, listPet)
		if err != nil {
			return err
		}
		tasks = store.TasksByPet(pet)
		title = fmt.Sprintf("Tasks for %s", pet.Name)
	case listType != "":
		typ, err := care.ParseTaskType(listType)
		if err != nil {
			return err
		}
		tasks = store.TasksByType(typ)
		title = fmt.Sprintf("%s tasks", typ)
	}
	if listIncomplete {
		var open []*care.Task
		for _, t := range tasks {
			if !t.Completed {
				open = append(open, t)
			}
		}
		tasks = open
		title += " (incomplete)"
	}

	display.TaskList(os.Stdout, store, tasks, title)
	for _, t := range tasks {
		fmt.Printf("  id: %s  %s\n", t.ID, t.Name)
	}
	return nil
}

func runTaskComplete(cmd *cobra.Command, args []string) error {
	store, err := care.Load(stateDir)
	if err != nil {
		return err
	}

	task := store.TaskByID(args[0])
	if task == nil {
		return fmt.Errorf("task not found: %s", args[0])
	}

	sched := schedule.New(store)
	next := sched.AddNextOccurrence(task)
	if err := care.Save(stateDir, store); err != nil {
		return err
	}

	fmt.Printf("Completed: %s\n", task.Name)
	if next != nil {
		fmt.Printf("Recurring %s task regenerated [%s], next due %s\n",
			next.Frequency, next.ID, next.DueDate)
	}
	return nil
}

func runTaskRemove(cmd *cobra.Command, args []string) error {
	store, err := care.Load(stateDir)
	if err != nil {
		return err
	}

	// Removal of an absent task is a deliberate no-op.
	if task := store.TaskByID(args[0]); task != nil {
		store.RemoveTask(task)
		fmt.Printf("Removed: %s\n", task.Name)
	} else {
		fmt.Printf("No task with id %s (nothing removed)\n", args[0])
	}
	return care.Save(stateDir, store)
}
