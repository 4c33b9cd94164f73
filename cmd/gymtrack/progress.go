// ABOUTME: CLI commands for logged progress entries.
// ABOUTME: Entries record weight x reps for an exercise on a calendar date.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/models"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	progressDate   string
	progressNotes  string
	progressDesc   bool
	progressLimit  int
	progressWeight float64
	progressReps   int
)

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"p", "log"},
	Short:   "Log and review progress",
	Long: `Log results and review the history of an exercise.

A weight of 0 records a bodyweight set.

COMMANDS:

  list     Progress history of one exercise
  recent   Latest entries across all exercises
  add      Log a result
  edit     Change a logged result
  delete   Delete a logged result

EXAMPLES:

  gymtrack progress add 4 82.5 5
  gymtrack progress add 1 0 15 --date yesterday --notes "slow tempo"
  gymtrack progress list 4 --desc
  gymtrack progress recent -n 5`,
}

var progressListCmd = &cobra.Command{
	Use:   "list <exercise-id>",
	Short: "Show progress for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID, err := parseID(args[0], "exercise")
		if err != nil {
			return err
		}
		order := storage.Ascending
		if progressDesc {
			order = storage.Descending
		}
		entries, err := store.GetExerciseProgress(cmd.Context(), exerciseID, order)
		if err != nil {
			return fmt.Errorf("failed to get progress: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No progress logged for this exercise.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range entries {
			line := fmt.Sprintf("%s %s %s x %d",
				faint.Sprint(padRight(fmt.Sprint(p.ID), 4)),
				p.Date,
				padRight(formatWeight(p.Weight), 9),
				p.Reps)
			if p.Notes != nil && *p.Notes != "" {
				line += "  " + faint.Sprint(truncate(*p.Notes, 40))
			}
			fmt.Println(line)
		}
		return nil
	},
}

var progressRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the latest progress entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.GetRecentProgress(cmd.Context(), progressLimit)
		if err != nil {
			return fmt.Errorf("failed to get recent progress: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No progress logged yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			fmt.Printf("%s %s %s %s x %d\n",
				faint.Sprint(padRight(fmt.Sprint(e.ID), 4)),
				e.Date,
				padRight(truncate(e.ExerciseName, 24), 24),
				padRight(formatWeight(e.Weight), 9),
				e.Reps)
		}
		return nil
	},
}

var progressAddCmd = &cobra.Command{
	Use:   "add <exercise-id> <weight> <reps>",
	Short: "Log a result",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID, err := parseID(args[0], "exercise")
		if err != nil {
			return err
		}
		weight, reps, err := parseResult(args[1], args[2])
		if err != nil {
			return err
		}

		p := models.NewProgress(exerciseID, weight, reps)
		if progressDate != "" {
			date, err := parseDate(progressDate)
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}
			p.Date = date
		}
		if progressNotes != "" {
			p.WithNotes(progressNotes)
		}

		id, err := store.CreateProgress(cmd.Context(), p)
		if err != nil {
			return fmt.Errorf("failed to log progress: %w", err)
		}

		color.Green("✓ Logged %s x %d", formatWeight(weight), reps)
		fmt.Printf("  ID: %d\n", id)
		fmt.Printf("  Date: %s\n", p.Date)
		return nil
	},
}

var progressEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a logged result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "progress")
		if err != nil {
			return err
		}
		p, err := store.GetProgress(cmd.Context(), id)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("weight") {
			if progressWeight < 0 {
				return fmt.Errorf("weight cannot be negative")
			}
			p.Weight = progressWeight
		}
		if flags.Changed("reps") {
			if progressReps <= 0 {
				return fmt.Errorf("reps must be positive")
			}
			p.Reps = progressReps
		}
		if flags.Changed("date") {
			date, err := parseDate(progressDate)
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}
			p.Date = date
		}
		if flags.Changed("notes") {
			if progressNotes == "" {
				p.Notes = nil
			} else {
				p.WithNotes(progressNotes)
			}
		}

		if err := store.UpdateProgress(cmd.Context(), p); err != nil {
			return fmt.Errorf("failed to update progress: %w", err)
		}
		color.Green("✓ Updated progress %d", id)
		return nil
	},
}

var progressDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a logged result",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "progress")
		if err != nil {
			return err
		}
		if err := store.DeleteProgress(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete progress: %w", err)
		}
		color.Yellow("✗ Deleted progress %d", id)
		return nil
	},
}

func parseResult(weightArg, repsArg string) (float64, int, error) {
	weight, err := strconv.ParseFloat(weightArg, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid weight: %s", weightArg)
	}
	if weight < 0 {
		return 0, 0, fmt.Errorf("weight cannot be negative")
	}
	reps, err := strconv.Atoi(repsArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid reps: %s", repsArg)
	}
	if reps <= 0 {
		return 0, 0, fmt.Errorf("reps must be positive")
	}
	return weight, reps, nil
}

func init() {
	progressListCmd.Flags().BoolVar(&progressDesc, "desc", false, "newest first")

	progressRecentCmd.Flags().IntVarP(&progressLimit, "limit", "n", 20, "number of entries")

	progressAddCmd.Flags().StringVarP(&progressDate, "date", "d", "", "date (YYYY-MM-DD, today, yesterday)")
	progressAddCmd.Flags().StringVar(&progressNotes, "notes", "", "notes")

	progressEditCmd.Flags().Float64Var(&progressWeight, "weight", 0, "new weight in kg, 0 for bodyweight")
	progressEditCmd.Flags().IntVar(&progressReps, "reps", 0, "new reps")
	progressEditCmd.Flags().StringVarP(&progressDate, "date", "d", "", "new date")
	progressEditCmd.Flags().StringVar(&progressNotes, "notes", "", "new notes, empty to clear")

	progressCmd.AddCommand(progressListCmd, progressRecentCmd, progressAddCmd, progressEditCmd, progressDeleteCmd)
	rootCmd.AddCommand(progressCmd)
}
