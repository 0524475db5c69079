package cli

import (
	"fmt"

	"github.com/jordip/pawpal/internal/care"
	"github.com/jordip/pawpal/internal/schedule"
	"github.com/spf13/cobra"
)

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Check scheduled tasks for time overlaps",
	RunE:  runConflicts,
}

func runConflicts(cmd *cobra.Command, args []string) error {
	store, err := care.Load(stateDir)
	if err != nil {
		return err
	}

	sched := schedule.New(store)
	if warnings := sched.ConflictWarnings(); warnings != "" {
		fmt.Print(warnings)
		return nil
	}
	fmt.Println("No scheduling conflicts.")
	return nil
}
