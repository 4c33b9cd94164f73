// ABOUTME: MCP resource implementations for the gym store.
// ABOUTME: Provides gym://schedule, gym://exercises, and gym://progress/recent resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/gymtrack/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	scheduleURI       = "gym://schedule"
	exercisesURI      = "gym://exercises"
	recentProgressURI = "gym://progress/recent"

	recentProgressLimit = 10
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         scheduleURI,
		Name:        "Training Schedule",
		Description: "Every workout with its exercises, sets, reps and rest",
		MIMEType:    "application/json",
	}, s.handleScheduleResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         exercisesURI,
		Name:        "Exercise Catalogue",
		Description: "All exercises grouped by muscle group",
		MIMEType:    "application/json",
	}, s.handleExercisesResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentProgressURI,
		Name:        "Recent Progress",
		Description: "Last 10 progress entries across all exercises",
		MIMEType:    "application/json",
	}, s.handleRecentProgressResource)
}

type scheduledWorkout struct {
	*models.Workout
	Exercises []*models.WorkoutExerciseDetail `json:"exercises"`
}

func (s *Server) handleScheduleResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.repo.ListWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	schedule := make([]scheduledWorkout, 0, len(workouts))
	for _, w := range workouts {
		exercises, err := s.repo.GetWorkoutExercises(ctx, w.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list exercises for workout %d: %w", w.ID, err)
		}
		schedule = append(schedule, scheduledWorkout{Workout: w, Exercises: exercises})
	}

	return jsonResource(scheduleURI, map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"workouts":     schedule,
	})
}

func (s *Server) handleExercisesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	exercises, err := s.repo.ListExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	byMuscle := make(map[string][]*models.Exercise)
	for _, e := range exercises {
		byMuscle[e.MuscleGroup] = append(byMuscle[e.MuscleGroup], e)
	}

	return jsonResource(exercisesURI, map[string]interface{}{
		"count":           len(exercises),
		"by_muscle_group": byMuscle,
	})
}

func (s *Server) handleRecentProgressResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.repo.GetRecentProgress(ctx, recentProgressLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent progress: %w", err)
	}

	return jsonResource(recentProgressURI, map[string]interface{}{
		"progress": entries,
		"count":    len(entries),
	})
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
