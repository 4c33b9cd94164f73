// ABOUTME: MCP tools backed by the lookup services rather than the store.
// ABOUTME: Covers name translation, ExerciseDB lookups, Drive images, and preferences.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/gymtrack/internal/exercisedb"
	"github.com/harperreed/gymtrack/internal/prefs"
	"github.com/harperreed/gymtrack/internal/translate"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var errUnavailable = errors.New("not configured")

func (s *Server) registerLookupTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "translate_exercise",
		Description: "Translate a Spanish exercise name to English and suggest similar names",
	}, s.handleTranslateExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "lookup_exercise",
		Description: "Fetch an exercise from ExerciseDB by its id",
	}, s.handleLookupExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_exercises",
		Description: "Search ExerciseDB by exercise name",
	}, s.handleSearchExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "folder_images",
		Description: "List thumbnail URLs for the images in the configured Drive folders",
	}, s.handleFolderImages)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_preferences",
		Description: "Get the selected anime and wallpaper",
	}, s.handleGetPreferences)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_preferences",
		Description: "Change the selected anime or wallpaper; an empty string clears it",
	}, s.handleSetPreferences)
}

type translateInput struct {
	Name string `json:"name" jsonschema:"exercise name, usually Spanish"`
}

type translateOutput struct {
	English string   `json:"english"`
	Similar []string `json:"similar"`
}

type lookupInput struct {
	ID string `json:"id" jsonschema:"ExerciseDB id, at least 4 characters"`
}

type searchInput struct {
	Query  string `json:"query" jsonschema:"exercise name to search for"`
	Offset int    `json:"offset,omitempty" jsonschema:"result offset"`
	Limit  int    `json:"limit,omitempty" jsonschema:"max results (default 10)"`
}

type searchOutput struct {
	Exercises []exercisedb.Exercise `json:"exercises"`
}

type imagesOutput struct {
	Images []string `json:"images"`
}

type setPreferencesInput struct {
	SelectedAnime     *string `json:"selected_anime,omitempty" jsonschema:"anime to show, empty to clear"`
	SelectedWallpaper *string `json:"selected_wallpaper,omitempty" jsonschema:"wallpaper to show, empty to clear"`
}

func (s *Server) handleTranslateExercise(ctx context.Context, req *mcp.CallToolRequest, input translateInput) (*mcp.CallToolResult, translateOutput, error) {
	similar := translate.Similar(input.Name)
	if similar == nil {
		similar = []string{}
	}
	return nil, translateOutput{
		English: translate.ExerciseName(input.Name),
		Similar: similar,
	}, nil
}

func (s *Server) handleLookupExercise(ctx context.Context, req *mcp.CallToolRequest, input lookupInput) (*mcp.CallToolResult, exercisedb.Exercise, error) {
	if s.svc.Lookup == nil {
		return nil, exercisedb.Exercise{}, fmt.Errorf("exercisedb: %w", errUnavailable)
	}
	e, err := s.svc.Lookup.GetExercise(ctx, input.ID)
	if err != nil {
		return nil, exercisedb.Exercise{}, err
	}
	return nil, *e, nil
}

func (s *Server) handleSearchExercises(ctx context.Context, req *mcp.CallToolRequest, input searchInput) (*mcp.CallToolResult, searchOutput, error) {
	if s.svc.Lookup == nil {
		return nil, searchOutput{}, fmt.Errorf("exercisedb: %w", errUnavailable)
	}
	if input.Limit <= 0 {
		input.Limit = 10
	}
	results, err := s.svc.Lookup.SearchExercises(ctx, input.Query, input.Offset, input.Limit)
	if err != nil {
		return nil, searchOutput{}, err
	}
	return nil, searchOutput{Exercises: results}, nil
}

func (s *Server) handleFolderImages(ctx context.Context, req *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, imagesOutput, error) {
	if s.svc.Images == nil {
		return nil, imagesOutput{}, fmt.Errorf("google drive: %w", errUnavailable)
	}
	urls, err := s.svc.Images.FolderImages(ctx, s.svc.Folders)
	if err != nil {
		return nil, imagesOutput{}, err
	}
	return nil, imagesOutput{Images: urls}, nil
}

func (s *Server) handleGetPreferences(ctx context.Context, req *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, prefs.Preferences, error) {
	if s.svc.Prefs == nil {
		return nil, prefs.Preferences{}, fmt.Errorf("preferences: %w", errUnavailable)
	}
	return nil, s.svc.Prefs.Get(ctx), nil
}

func (s *Server) handleSetPreferences(ctx context.Context, req *mcp.CallToolRequest, input setPreferencesInput) (*mcp.CallToolResult, prefs.Preferences, error) {
	if s.svc.Prefs == nil {
		return nil, prefs.Preferences{}, fmt.Errorf("preferences: %w", errUnavailable)
	}
	p, err := s.svc.Prefs.Update(ctx, prefs.Patch{
		SelectedAnime:     input.SelectedAnime,
		SelectedWallpaper: input.SelectedWallpaper,
	})
	if err != nil {
		return nil, prefs.Preferences{}, err
	}
	return nil, p, nil
}
