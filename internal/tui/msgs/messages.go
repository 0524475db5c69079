// Package msgs defines the messages views use to navigate the dashboard.
package msgs

// GoToHomeMsg returns to the home menu.
type GoToHomeMsg struct{}

// GoToOwnerMsg opens the owner form.
type GoToOwnerMsg struct{}

// GoToPetsMsg opens the pet list.
type GoToPetsMsg struct{}

// GoToTasksMsg opens the task list.
type GoToTasksMsg struct{}

// GoToScheduleMsg opens the schedule view (plan + explanation + conflicts).
type GoToScheduleMsg struct{}

// StateChangedMsg signals that a view mutated the store and the state file
// should be written.
type StateChangedMsg struct{}
