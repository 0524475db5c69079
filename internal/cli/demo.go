package cli

import (
	"fmt"
	"os"

	"github.com/jordip/pawpal/internal/demo"
	"github.com/spf13/cobra"
)

var demoSpeed string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted walkthrough of the scheduler",
	Long: `Run a scripted walkthrough with sample data: two pets, nine tasks,
a deliberate scheduling conflict, and a daily recurring medication.

No state file is read or written.

Speeds:
  fast     no pauses
  normal   1s per step (default)
  slow     3s per step`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoSpeed, "speed", "normal",
		"Walkthrough speed: fast, normal, slow")
}

func runDemo(cmd *cobra.Command, args []string) error {
	speed := demo.Speed(demoSpeed)
	switch speed {
	case demo.SpeedFast, demo.SpeedNormal, demo.SpeedSlow:
	default:
		return fmt.Errorf("invalid speed: %s", demoSpeed)
	}

	return demo.NewRunner(demo.NewConfig(speed), os.Stdout).Run()
}
