// ABOUTME: Builds the optional lookup, image, and preference services from config.
// ABOUTME: Services without credentials are left nil and reported as not configured.
package main

import (
	"context"
	"fmt"

	"github.com/harperreed/gymtrack/internal/exercisedb"
	"github.com/harperreed/gymtrack/internal/gdrive"
	"github.com/harperreed/gymtrack/internal/prefs"
	"github.com/rs/zerolog/log"
)

// lookupClient returns nil when no RapidAPI key is configured.
func lookupClient() *exercisedb.Client {
	if cfg.ExerciseDB.APIKey == "" {
		return nil
	}
	return exercisedb.NewClient(exercisedb.Config{
		APIKey:  cfg.ExerciseDB.APIKey,
		Host:    cfg.GetExerciseDBHost(),
		BaseURL: cfg.ExerciseDB.BaseURL,
	}, respCache)
}

// imagesClient returns nil when no Drive API key is configured.
func imagesClient(ctx context.Context) (*gdrive.Client, error) {
	if cfg.Drive.APIKey == "" {
		return nil, nil
	}
	lister, err := gdrive.NewDriveLister(ctx, cfg.Drive.APIKey)
	if err != nil {
		return nil, err
	}
	return gdrive.NewClient(lister, respCache), nil
}

func prefsStore() *prefs.Store {
	return prefs.New(kvStore)
}

// serviceSet is the shared shape of the MCP and HTTP service bundles.
type serviceSet struct {
	prefs   *prefs.Store
	lookup  *exercisedb.Client
	images  *gdrive.Client
	folders []string
}

func buildServices(ctx context.Context) serviceSet {
	images, err := imagesClient(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Google Drive images disabled")
	}
	return serviceSet{
		prefs:   prefsStore(),
		lookup:  lookupClient(),
		images:  images,
		folders: cfg.Drive.Folders,
	}
}

func requireLookup() (*exercisedb.Client, error) {
	c := lookupClient()
	if c == nil {
		return nil, fmt.Errorf("exercise lookups need exercisedb.api_key in the config or GYMTRACK_RAPIDAPI_KEY")
	}
	return c, nil
}
