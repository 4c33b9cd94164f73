// ABOUTME: CLI commands for workout routines and the exercises they contain.
// ABOUTME: Workouts are listed per weekday; links carry sets, reps, rest and series type.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	workoutDay   string
	workoutName  string
	workoutImage string

	linkSets   string
	linkReps   string
	linkRest   int
	linkSeries string
	linkNotes  string
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workout routines",
	Long: `Manage workout routines and the exercises prescribed in them.

COMMANDS:

  list             List workouts, optionally for one day
  show             Show a workout with its exercises
  add              Create a workout
  edit             Rename or reschedule a workout
  delete           Delete a workout and its exercise links
  add-exercise     Add an exercise to a workout
  edit-exercise    Change sets, reps, rest or series type of a link
  remove-exercise  Remove an exercise link

SERIES TYPES:

  regular, drop_set, super_set, rest_pause, sst, top_set_back_off

EXAMPLES:

  gymtrack workout list --day Monday
  gymtrack workout add "Pull Day" --day Thursday
  gymtrack workout add-exercise 5 8 --sets 4 --reps 8-10 --rest 120
  gymtrack workout add-exercise 5 4 --sets "1TS + 2BO" --series top_set_back_off`,
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		var (
			workouts []*models.Workout
			err      error
		)
		if workoutDay != "" {
			workouts, err = store.GetWorkoutsByDay(ctx, workoutDay)
		} else {
			workouts, err = store.ListWorkouts(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(padRight(fmt.Sprint(w.ID), 4)),
				padRight(w.Day, 10),
				w.Name)
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show workout details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "workout")
		if err != nil {
			return err
		}
		w, err := store.GetWorkout(cmd.Context(), id)
		if err != nil {
			return err
		}
		details, err := store.GetWorkoutExercises(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get workout exercises: %w", err)
		}

		fmt.Printf("Workout: %d\n", w.ID)
		fmt.Printf("Name: %s\n", w.Name)
		fmt.Printf("Day: %s\n", w.Day)
		if w.Image != "" {
			fmt.Printf("Image: %s\n", w.Image)
		}

		if len(details) == 0 {
			fmt.Println("\nNo exercises yet.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Println("\nExercises:")
		for _, d := range details {
			prescription := d.Sets
			if d.Reps != "" {
				prescription += " x " + d.Reps
			}
			line := fmt.Sprintf("  %s %s %s rest %ds",
				faint.Sprint(padRight(fmt.Sprint(d.ID), 4)),
				padRight(truncate(d.Name, 24), 24),
				padRight(prescription, 14),
				d.Rest)
			if d.SeriesType != models.SeriesRegular {
				line += " " + color.CyanString("[%s]", d.SeriesType)
			}
			fmt.Println(line)
			if d.Notes != nil && *d.Notes != "" {
				fmt.Printf("       %s\n", faint.Sprint(*d.Notes))
			}
		}
		return nil
	},
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("workout name cannot be empty")
		}

		w := models.NewWorkout(name, workoutDay).WithImage(workoutImage)
		id, err := store.CreateWorkout(cmd.Context(), w)
		if err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		color.Green("✓ Created workout %s", name)
		fmt.Printf("  ID: %d\n", id)
		if workoutDay != "" {
			fmt.Printf("  Day: %s\n", workoutDay)
		}
		return nil
	},
}

var workoutEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "workout")
		if err != nil {
			return err
		}
		w, err := store.GetWorkout(cmd.Context(), id)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("name") {
			w.Name = workoutName
		}
		if flags.Changed("day") {
			w.Day = workoutDay
		}
		if flags.Changed("image") {
			w.Image = workoutImage
		}
		if strings.TrimSpace(w.Name) == "" {
			return fmt.Errorf("workout name cannot be empty")
		}

		if err := store.UpdateWorkout(cmd.Context(), w); err != nil {
			return fmt.Errorf("failed to update workout: %w", err)
		}
		color.Green("✓ Updated workout %d", id)
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "workout")
		if err != nil {
			return err
		}
		if err := store.DeleteWorkout(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		color.Yellow("✗ Deleted workout %d", id)
		return nil
	},
}

var workoutAddExerciseCmd = &cobra.Command{
	Use:   "add-exercise <workout-id> <exercise-id>",
	Short: "Add an exercise to a workout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		workoutID, err := parseID(args[0], "workout")
		if err != nil {
			return err
		}
		exerciseID, err := parseID(args[1], "exercise")
		if err != nil {
			return err
		}
		if err := checkLink(linkSets, linkRest, linkSeries); err != nil {
			return err
		}

		we := models.NewWorkoutExercise(workoutID, exerciseID, linkSets, linkReps, linkRest).
			WithSeriesType(models.SeriesType(linkSeries))
		if linkNotes != "" {
			we.WithNotes(linkNotes)
		}

		id, err := store.CreateWorkoutExercise(cmd.Context(), we)
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}
		color.Green("✓ Added exercise %d to workout %d", exerciseID, workoutID)
		fmt.Printf("  Link ID: %d\n", id)
		return nil
	},
}

var workoutEditExerciseCmd = &cobra.Command{
	Use:   "edit-exercise <link-id>",
	Short: "Edit an exercise link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "link")
		if err != nil {
			return err
		}
		we, err := store.GetWorkoutExercise(cmd.Context(), id)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("sets") {
			we.Sets = linkSets
		}
		if flags.Changed("reps") {
			we.Reps = linkReps
		}
		if flags.Changed("rest") {
			we.Rest = linkRest
		}
		if flags.Changed("series") {
			we.SeriesType = models.SeriesType(linkSeries)
		}
		if flags.Changed("notes") {
			if linkNotes == "" {
				we.Notes = nil
			} else {
				we.WithNotes(linkNotes)
			}
		}
		if err := checkLink(we.Sets, we.Rest, string(we.SeriesType)); err != nil {
			return err
		}

		if err := store.UpdateWorkoutExercise(cmd.Context(), we); err != nil {
			return fmt.Errorf("failed to update link: %w", err)
		}
		color.Green("✓ Updated link %d", id)
		return nil
	},
}

var workoutRemoveExerciseCmd = &cobra.Command{
	Use:   "remove-exercise <link-id>",
	Short: "Remove an exercise link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "link")
		if err != nil {
			return err
		}
		if err := store.DeleteWorkoutExercise(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to remove link: %w", err)
		}
		color.Yellow("✗ Removed link %d", id)
		return nil
	},
}

func checkLink(sets string, rest int, series string) error {
	if strings.TrimSpace(sets) == "" {
		return fmt.Errorf("sets cannot be empty")
	}
	if rest < 0 {
		return fmt.Errorf("rest cannot be negative")
	}
	if !models.IsKnownSeriesType(series) {
		return fmt.Errorf("unknown series type %q", series)
	}
	return nil
}

func addLinkFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&linkSets, "sets", "s", "3", "sets, numeric or notation such as \"1TS + 2BO\"")
	cmd.Flags().StringVarP(&linkReps, "reps", "r", "", "reps, a number or a range such as 8-12")
	cmd.Flags().IntVar(&linkRest, "rest", 90, "rest between sets in seconds")
	cmd.Flags().StringVar(&linkSeries, "series", string(models.SeriesRegular), "series type")
	cmd.Flags().StringVarP(&linkNotes, "notes", "n", "", "notes")
}

func init() {
	workoutListCmd.Flags().StringVarP(&workoutDay, "day", "d", "", "only workouts on this day")

	workoutAddCmd.Flags().StringVarP(&workoutDay, "day", "d", "", "weekday the workout is scheduled on")
	workoutAddCmd.Flags().StringVar(&workoutImage, "image", "", "image URL or path")

	workoutEditCmd.Flags().StringVar(&workoutName, "name", "", "new name")
	workoutEditCmd.Flags().StringVarP(&workoutDay, "day", "d", "", "new day")
	workoutEditCmd.Flags().StringVar(&workoutImage, "image", "", "new image URL or path")

	addLinkFlags(workoutAddExerciseCmd)
	addLinkFlags(workoutEditExerciseCmd)

	workoutCmd.AddCommand(
		workoutListCmd,
		workoutShowCmd,
		workoutAddCmd,
		workoutEditCmd,
		workoutDeleteCmd,
		workoutAddExerciseCmd,
		workoutEditExerciseCmd,
		workoutRemoveExerciseCmd,
	)
	rootCmd.AddCommand(workoutCmd)
}
