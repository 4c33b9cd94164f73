// ABOUTME: CLI command that deletes the local database and optionally the KV store.
// ABOUTME: Runs without opening the stores so it also works on a corrupt database.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	resetYes bool
	resetAll bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local database",
	Long: `Delete the SQLite database and its WAL files. The default routines are
seeded again on the next run. With --all the KV store holding the response
cache and preferences is deleted as well.

This cannot be undone. Export first if you want to keep your data.`,
	Annotations: map[string]string{skipStores: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to delete %s without --yes", cfg.DBPath())
		}

		if err := storage.Reset(cfg.DBPath()); err != nil {
			return err
		}
		color.Yellow("✗ Deleted %s", cfg.DBPath())

		if resetAll {
			if err := os.RemoveAll(cfg.KVDir()); err != nil {
				return fmt.Errorf("remove %s: %w", cfg.KVDir(), err)
			}
			color.Yellow("✗ Deleted %s", cfg.KVDir())
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "confirm deletion")
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "also delete the KV store")

	rootCmd.AddCommand(resetCmd)
}
