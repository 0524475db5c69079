package main

import (
	"fmt"
	"os"

	"github.com/jordip/pawpal/internal/care"
	"github.com/jordip/pawpal/internal/cli"
	"github.com/jordip/pawpal/internal/tui"
)

func main() {
	// If no args, launch the TUI dashboard; otherwise route to the CLI
	if len(os.Args) == 1 {
		if err := tui.Run(care.DefaultDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
	}
}
