// ABOUTME: Entry point for the gymtrack CLI.
// ABOUTME: Invokes the root Cobra command and prints a reset hint on init failures.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/storage"
)

func main() {
	err := rootCmd.Execute()
	_ = closeStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))

		var initErr *storage.InitError
		if errors.As(err, &initErr) {
			fmt.Fprintln(os.Stderr, "The database could not be opened. Run 'gymtrack reset' to start over.")
		}
		os.Exit(1)
	}
}
