// ABOUTME: CLI commands for store statistics and explicit seeding.
// ABOUTME: stats prints row counts and schema version; seed loads the default routines.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show row counts and storage locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		counts, err := store.CountRows(cmd.Context())
		if err != nil {
			return err
		}
		version, err := store.SchemaVersion()
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		printSummary(counts.Exercises, counts.Workouts, counts.WorkoutExercises, counts.Progress)
		fmt.Println()
		fmt.Printf("  Schema version:    %d\n", version)
		fmt.Printf("  Database:          %s\n", faint.Sprint(store.Path()))
		fmt.Printf("  KV store:          %s\n", faint.Sprint(cfg.KVDir()))
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the default routines",
	Long: `Insert the built-in exercises, workouts and workout exercises.

Rows whose id already exists are left untouched, so running seed on a
populated database only fills in what is missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := store.SeedIfEmpty(cmd.Context(), storage.DefaultSeed())
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
		if summary.Total() == 0 {
			fmt.Println("Nothing to seed, all default rows are present.")
			return nil
		}
		color.Green("✓ Seeded %d rows", summary.Total())
		printSummary(summary.Exercises, summary.Workouts, summary.WorkoutExercises, summary.Progress)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(seedCmd)
}
