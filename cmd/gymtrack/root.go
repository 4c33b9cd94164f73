// ABOUTME: Root Cobra command for the gymtrack CLI.
// ABOUTME: Loads config, configures logging, and opens the stores via PersistentPre/PostRunE.
package main

import (
	"context"
	"fmt"

	"github.com/harperreed/gymtrack/internal/cache"
	"github.com/harperreed/gymtrack/internal/config"
	"github.com/harperreed/gymtrack/internal/kv"
	"github.com/harperreed/gymtrack/internal/logging"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Commands annotated with skipStores run without opening the database or
// the KV store.
const skipStores = "gymtrack/skip-stores"

var (
	configPath  string
	dataDirFlag string
	logLevel    string
	noSeed      bool

	cfg       *config.Config
	store     *storage.DB
	kvStore   *kv.Store
	respCache *cache.Cache
)

var rootCmd = &cobra.Command{
	Use:   "gymtrack",
	Short: "Workout routines and progress tracker",
	Long: `gymtrack keeps your exercise catalogue, weekly workout routines and
logged progress in a local SQLite database.

WHAT IT TRACKS:

  Exercises          name, muscle group, equipment type, image
  Workouts           named routines scheduled on a weekday
  Workout exercises  sets, reps, rest and series type per exercise
  Progress           weight x reps results per exercise and date

QUICK START:

  $ gymtrack workout list                   # See your routines
  $ gymtrack workout show 2                 # Exercises in workout 2
  $ gymtrack progress add 4 82.5 5          # Log 82.5 kg x 5 on exercise 4
  $ gymtrack progress recent                # Latest results

LOOKUPS:

  $ gymtrack lookup translate "press de banca"
  $ gymtrack lookup search "bench press"    # Needs a RapidAPI key
  $ gymtrack images                         # Needs a Google Drive API key

SERVERS:

  $ gymtrack serve                          # JSON API under /api
  $ gymtrack mcp                            # MCP server on stdio

DATA STORAGE:

  The database, KV store and log file live in ~/.local/share/gymtrack
  (override with data_dir in ~/.config/gymtrack/config.yaml or
  GYMTRACK_DATA_DIR). The default routines are seeded on first run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}

		opts := logging.Options{
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		}
		if cmd.Name() == "mcp" {
			logging.ApplyQuiet(cfg.GetLogLevel(), cfg.LogFile(), opts)
		} else {
			logging.Apply(cfg.GetLogLevel(), cfg.LogFile(), opts)
		}

		if cmd.Annotations[skipStores] != "" {
			return nil
		}
		return openStores(cmd.Context())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStores()
	},
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.GetConfigPath()
	}
	c, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dataDirFlag != "" {
		c.DataDir = dataDirFlag
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	return c, nil
}

// openStores opens the database, seeds it, then opens the KV store and the
// response cache on top of it.
func openStores(ctx context.Context) error {
	// A failed command skips PersistentPostRunE and leaves handles behind.
	if err := closeStores(); err != nil {
		log.Warn().Err(err).Msg("Close previous stores")
	}

	var err error
	store, err = cfg.OpenStorage()
	if err != nil {
		return err
	}

	if !noSeed {
		if err := seedFresh(ctx); err != nil {
			return err
		}
	}

	kvStore, err = kv.Open(cfg.KVDir())
	if err != nil {
		return err
	}
	respCache = cache.New(kvStore, cache.WithPrefix(kv.CachePrefix), cache.WithTTL(cfg.Cache.TTL))
	return nil
}

// seedFresh loads the default routines into a database with no exercises
// or workouts. Populated databases are left alone so deleted defaults stay
// deleted.
func seedFresh(ctx context.Context) error {
	counts, err := store.CountRows(ctx)
	if err != nil {
		return err
	}
	if counts.Exercises > 0 || counts.Workouts > 0 {
		return nil
	}
	summary, err := store.SeedIfEmpty(ctx, storage.DefaultSeed())
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	log.Debug().Int("rows", summary.Total()).Msg("Seeded default data")
	return nil
}

func closeStores() error {
	var firstErr error
	if kvStore != nil {
		if err := kvStore.Close(); err != nil {
			firstErr = err
		}
		kvStore = nil
	}
	respCache = nil
	if store != nil {
		if err := store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		store = nil
	}
	return firstErr
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/gymtrack/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noSeed, "no-seed", false, "do not load the default routines into an empty database")
}
