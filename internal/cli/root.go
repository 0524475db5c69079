// Package cli implements the pawpal command tree. Commands are thin:
// load state, call the core, render, save when mutated.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "pawpal",
	Short:   "Daily pet care planner",
	Long:    `PawPal plans daily pet care tasks against your time budget, ordering tasks by priority and explaining every scheduling decision.`,
	Version: "0.1.0",
}

// stateDir is where pawpal keeps its state file; shared by all commands.
var stateDir string

func init() {
	rootCmd.PersistentFlags().StringVar(&stateDir, "dir", ".pawpal",
		"Directory holding pawpal state")
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(petCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(conflictsCmd)
	rootCmd.AddCommand(demoCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
