// ABOUTME: CLI commands for the exercise catalogue.
// ABOUTME: Supports list, show, add, edit, and delete subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	exerciseMuscle string
	exerciseType   string
	exerciseImage  string
	exerciseName   string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex", "e"},
	Short:   "Manage the exercise catalogue",
	Long: `Manage the exercises that workouts and progress entries refer to.

COMMANDS:

  list     List exercises, optionally by muscle group
  show     Show an exercise and the workouts that include it
  add      Add an exercise
  edit     Change an exercise
  delete   Delete an exercise with its workout links and progress

EXAMPLES:

  gymtrack exercise list --muscle chest
  gymtrack exercise add "Face Pull" --muscle Shoulders --type Cable
  gymtrack exercise edit 1 --name "Push-Up"`,
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := store.ListExercises(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		faint := color.New(color.Faint)
		shown := 0
		for _, e := range exercises {
			if exerciseMuscle != "" && !strings.EqualFold(e.MuscleGroup, exerciseMuscle) {
				continue
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(padRight(fmt.Sprint(e.ID), 4)),
				padRight(e.Name, 26),
				padRight(e.MuscleGroup, 10),
				faint.Sprint(e.ExerciseType))
			shown++
		}
		if shown == 0 {
			fmt.Println("No exercises found.")
		}
		return nil
	},
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show exercise details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "exercise")
		if err != nil {
			return err
		}
		e, err := store.GetExercise(cmd.Context(), id)
		if err != nil {
			return err
		}
		workouts, err := store.GetExerciseWorkouts(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		fmt.Printf("Exercise: %d\n", e.ID)
		fmt.Printf("Name: %s\n", e.Name)
		fmt.Printf("Muscle group: %s\n", e.MuscleGroup)
		fmt.Printf("Type: %s\n", e.ExerciseType)
		if e.Image != "" {
			fmt.Printf("Image: %s\n", e.Image)
		}
		if len(workouts) > 0 {
			fmt.Println("\nWorkouts:")
			for _, w := range workouts {
				fmt.Printf("  %d  %s (%s)\n", w.ID, w.Name, w.Day)
			}
		}
		return nil
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("exercise name cannot be empty")
		}

		e := models.NewExercise(name, exerciseMuscle, exerciseType).WithImage(exerciseImage)
		id, err := store.CreateExercise(cmd.Context(), e)
		if err != nil {
			return fmt.Errorf("failed to create exercise: %w", err)
		}

		color.Green("✓ Added exercise %s", name)
		fmt.Printf("  ID: %d\n", id)
		return nil
	},
}

var exerciseEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "exercise")
		if err != nil {
			return err
		}
		e, err := store.GetExercise(cmd.Context(), id)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("name") {
			e.Name = exerciseName
		}
		if flags.Changed("muscle") {
			e.MuscleGroup = exerciseMuscle
		}
		if flags.Changed("type") {
			e.ExerciseType = exerciseType
		}
		if flags.Changed("image") {
			e.Image = exerciseImage
		}
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("exercise name cannot be empty")
		}

		if err := store.UpdateExercise(cmd.Context(), e); err != nil {
			return fmt.Errorf("failed to update exercise: %w", err)
		}
		color.Green("✓ Updated exercise %d", id)
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise",
	Long: `Delete an exercise. Its workout links and progress entries are
deleted with it. Deleting an id that does not exist does nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "exercise")
		if err != nil {
			return err
		}
		if err := store.DeleteExercise(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}
		color.Yellow("✗ Deleted exercise %d", id)
		return nil
	},
}

func init() {
	exerciseListCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "filter by muscle group")

	exerciseAddCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "muscle group")
	exerciseAddCmd.Flags().StringVarP(&exerciseType, "type", "t", "", "exercise type (Bodyweight, Barbell, ...)")
	exerciseAddCmd.Flags().StringVar(&exerciseImage, "image", "", "image URL or path")

	exerciseEditCmd.Flags().StringVar(&exerciseName, "name", "", "new name")
	exerciseEditCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "new muscle group")
	exerciseEditCmd.Flags().StringVarP(&exerciseType, "type", "t", "", "new exercise type")
	exerciseEditCmd.Flags().StringVar(&exerciseImage, "image", "", "new image URL or path")

	exerciseCmd.AddCommand(exerciseListCmd, exerciseShowCmd, exerciseAddCmd, exerciseEditCmd, exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
