package cli

import (
	"fmt"
	"os"

	"github.com/jordip/pawpal/internal/care"
	"github.com/spf13/cobra"
)

var (
	initName    string
	initMinutes int
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the pawpal state file for an owner",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Owner name (required)")
	initCmd.Flags().IntVar(&initMinutes, "minutes", 180,
		"Daily time budget in minutes")
	_ = initCmd.MarkFlagRequired("name")
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(care.StatePath(stateDir)); err == nil {
		return fmt.Errorf("state already exists at %s", care.StatePath(stateDir))
	}

	owner, err := care.NewOwner(initName, initMinutes)
	if err != nil {
		return err
	}
	if err := care.Save(stateDir, care.NewStore(owner)); err != nil {
		return err
	}

	fmt.Printf("Initialized pawpal for %s (%d minutes per day) in %s\n",
		owner.Name, owner.AvailableTimeMinutes, stateDir)
	return nil
}
