// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio MCP server so AI assistants can manage routines and progress.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/gymtrack/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Logs go to the log file only.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "gymtrack": {
        "command": "gymtrack",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_exercises, add_exercise, update_exercise, delete_exercise,
  exercise_workouts, list_workouts, get_workout, add_workout,
  delete_workout, add_workout_exercise, remove_workout_exercise,
  log_progress, exercise_progress, recent_progress, delete_progress,
  stats, translate_exercise, lookup_exercise, search_exercises,
  folder_images, get_preferences, set_preferences

AVAILABLE RESOURCES:

  gym://schedule           Workouts with their exercises
  gym://exercises          Exercise catalogue by muscle group
  gym://progress/recent    Latest progress entries`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := buildServices(cmd.Context())
		server, err := mcp.NewServer(store, mcp.Services{
			Prefs:   svc.prefs,
			Lookup:  svc.lookup,
			Images:  svc.images,
			Folders: svc.folders,
		})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
