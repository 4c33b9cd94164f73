// ABOUTME: CLI commands for exercise name translation and ExerciseDB lookups.
// ABOUTME: translate works offline; get and search need a RapidAPI key.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/exercisedb"
	"github.com/harperreed/gymtrack/internal/translate"
	"github.com/spf13/cobra"
)

var (
	lookupOffset int
	lookupLimit  int
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look exercises up in ExerciseDB",
	Long: `Translate exercise names to English and look them up in ExerciseDB.

Responses are cached in the local KV store for the configured cache TTL.

EXAMPLES:

  gymtrack lookup translate "press de banca"
  gymtrack lookup search "bench press" --limit 5
  gymtrack lookup get 0025`,
}

var lookupTranslateCmd = &cobra.Command{
	Use:         "translate <name>",
	Short:       "Translate an exercise name to English",
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{skipStores: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(translate.ExerciseName(args[0]))
		if similar := translate.Similar(args[0]); len(similar) > 0 {
			fmt.Println(color.New(color.Faint).Sprint("Similar: " + strings.Join(similar, ", ")))
		}
		return nil
	},
}

var lookupGetCmd = &cobra.Command{
	Use:   "get <exercisedb-id>",
	Short: "Fetch an exercise by ExerciseDB id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := requireLookup()
		if err != nil {
			return err
		}
		e, err := client.GetExercise(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printLookupExercise(e)
		return nil
	},
}

var lookupSearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search ExerciseDB by name",
	Long: `Search ExerciseDB by name. Non-English names are translated first.
When the full name has no match, the first word is tried on its own.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := requireLookup()
		if err != nil {
			return err
		}
		query := translate.ExerciseName(args[0])
		results, err := client.SearchExercises(cmd.Context(), query, lookupOffset, lookupLimit)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Printf("No exercises found for %q.\n", query)
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range results {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(padRight(e.ID, 6)),
				padRight(truncate(e.Name, 36), 36),
				faint.Sprintf("%s / %s", e.Target, e.Equipment))
		}
		return nil
	},
}

func printLookupExercise(e *exercisedb.Exercise) {
	fmt.Printf("ID: %s\n", e.ID)
	fmt.Printf("Name: %s\n", e.Name)
	fmt.Printf("Body part: %s\n", e.BodyPart)
	fmt.Printf("Target: %s\n", e.Target)
	fmt.Printf("Equipment: %s\n", e.Equipment)
	if len(e.SecondaryMuscles) > 0 {
		fmt.Printf("Secondary: %s\n", strings.Join(e.SecondaryMuscles, ", "))
	}
	if e.GifURL != "" {
		fmt.Printf("GIF: %s\n", e.GifURL)
	}
	if len(e.Instructions) > 0 {
		fmt.Println("\nInstructions:")
		for i, step := range e.Instructions {
			fmt.Printf("  %d. %s\n", i+1, step)
		}
	}
}

func init() {
	lookupSearchCmd.Flags().IntVar(&lookupOffset, "offset", 0, "result offset")
	lookupSearchCmd.Flags().IntVarP(&lookupLimit, "limit", "n", 10, "maximum results")

	lookupCmd.AddCommand(lookupTranslateCmd, lookupGetCmd, lookupSearchCmd)
	rootCmd.AddCommand(lookupCmd)
}
