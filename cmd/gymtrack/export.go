// ABOUTME: CLI commands for exporting and importing gym data.
// ABOUTME: JSON exports round-trip through import; YAML and Markdown are for reading.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	exportOutput   string
	exportExercise string
	exportSince    string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export gym data",
	Long: `Export every exercise, workout, workout exercise and progress entry.

FORMATS:

  json       Full JSON export, suitable for backup and import
  yaml       YAML export with exercises grouped under their workout
  markdown   One table per workout plus the progress history

OPTIONS:

  --output, -o     Write to file instead of stdout
  --exercise, -e   Only this exercise's progress history (markdown only)
  --since          Only progress dated on or after this day (markdown only)

EXAMPLES:

  gymtrack export json -o backup.json
  gymtrack export yaml
  gymtrack export markdown --exercise 4
  gymtrack export markdown --since 2025-01-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		switch args[0] {
		case "json":
			data, err = store.ExportJSON(cmd.Context())
		case "yaml":
			data, err = store.ExportYAML(cmd.Context())
		case "markdown":
			var md string
			md, err = exportMarkdown(cmd)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
			return nil
		}
		fmt.Println(string(data))
		return nil
	},
}

func exportMarkdown(cmd *cobra.Command) (string, error) {
	var exerciseID *int64
	if exportExercise != "" {
		id, err := parseID(exportExercise, "exercise")
		if err != nil {
			return "", err
		}
		exerciseID = &id
	}
	var since *time.Time
	if exportSince != "" {
		day, err := parseDate(exportSince)
		if err != nil {
			return "", err
		}
		t, err := time.Parse(models.DateLayout, day)
		if err != nil {
			return "", err
		}
		since = &t
	}
	return store.ExportMarkdown(cmd.Context(), exerciseID, since)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import gym data from a JSON export",
	Long: `Import a JSON file written by 'gymtrack export json'.

Rows keep their ids. Rows whose id already exists are skipped, so importing
the same file twice changes nothing. The import is all or nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		summary, err := store.ImportJSON(cmd.Context(), data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", args[0])
		printSummary(summary.Exercises, summary.Workouts, summary.WorkoutExercises, summary.Progress)
		return nil
	},
}

func printSummary(exercises, workouts, links, progress int) {
	fmt.Printf("  Exercises:         %d\n", exercises)
	fmt.Printf("  Workouts:          %d\n", workouts)
	fmt.Printf("  Workout exercises: %d\n", links)
	fmt.Printf("  Progress entries:  %d\n", progress)
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportExercise, "exercise", "e", "", "filter by exercise id (markdown only)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include progress since this date (markdown only)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
