package cli

import (
	"fmt"
	"os"

	"github.com/jordip/pawpal/internal/care"
	"github.com/jordip/pawpal/internal/display"
	"github.com/jordip/pawpal/internal/schedule"
	"github.com/spf13/cobra"
)

var planExplain bool

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate today's care plan",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&planExplain, "explain", true,
		"Print the scheduling explanation")
}

func runPlan(cmd *cobra.Command, args []string) error {
	store, err := care.Load(stateDir)
	if err != nil {
		return err
	}

	sched := schedule.New(store)
	plan := sched.GenerateDailyPlan()

	display.TaskList(os.Stdout, store, plan, "Today's schedule")
	fmt.Printf("\nScheduled time: %d of %d minutes\n",
		sched.TotalScheduledTime(), store.Owner().AvailableTime())

	if planExplain {
		fmt.Printf("\n%s", sched.Explain().String())
	}

	if warnings := sched.ConflictWarnings(); warnings != "" {
		fmt.Printf("\n%s", warnings)
	}
	return nil
}
