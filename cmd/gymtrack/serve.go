// ABOUTME: CLI commands for the HTTP API and store maintenance.
// ABOUTME: serve runs the JSON API with scheduled maintenance; maintenance runs it once.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/harperreed/gymtrack/internal/maintenance"
	"github.com/harperreed/gymtrack/internal/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	serveAddr          string
	serveNoMaintenance bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	Long: `Serve the JSON API under /api until interrupted.

While serving, store maintenance runs on maintenance.schedule (default
@daily). The listen address defaults to server.addr from the config or
127.0.0.1:8420.

EXAMPLES:

  gymtrack serve
  gymtrack serve --addr :8080
  curl localhost:8420/api/workouts?day=Monday`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = cfg.GetServerAddr()
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if !serveNoMaintenance {
			m := maintenance.New(store, kvStore)
			if err := m.Start(cfg.GetMaintenanceSchedule()); err != nil {
				return err
			}
			defer m.Stop()
		}

		svc := buildServices(ctx)
		api := server.New(store, server.Services{
			Prefs:   svc.prefs,
			Lookup:  svc.lookup,
			Images:  svc.images,
			Folders: svc.folders,
		}, server.Options{AllowedOrigins: cfg.Server.AllowedOrigins})

		fmt.Printf("Serving on http://%s/api\n", addr)
		return api.ListenAndServe(ctx, addr)
	},
}

var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Run store maintenance now",
	Long: `Refresh the SQLite query planner statistics and reclaim space in the
KV store value log. serve runs this on a schedule.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := maintenance.New(store, kvStore)
		if err := m.RunOnce(cmd.Context()); err != nil {
			return fmt.Errorf("maintenance failed: %w", err)
		}
		log.Info().Str("db", store.Path()).Msg("Maintenance complete")
		color.Green("✓ Maintenance complete")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().BoolVar(&serveNoMaintenance, "no-maintenance", false, "do not schedule store maintenance")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(maintenanceCmd)
}
