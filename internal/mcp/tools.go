// ABOUTME: MCP tool implementations for the gym repository.
// ABOUTME: Provides CRUD for exercises, workouts, workout links, and progress.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/gymtrack/internal/models"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List every exercise in the catalogue",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise to the catalogue",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_exercise",
		Description: "Change the name, muscle group, type or image of an exercise",
	}, s.handleUpdateExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_exercise",
		Description: "Delete an exercise along with its workout links and progress",
	}, s.handleDeleteExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "exercise_workouts",
		Description: "List the workouts that include an exercise",
	}, s.handleExerciseWorkouts)

	// workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workouts, optionally only those scheduled on a day",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout with its exercises in order",
	}, s.handleGetWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_workout",
		Description: "Create a new workout routine",
	}, s.handleAddWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout and its exercise links",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_workout_exercise",
		Description: "Add an exercise to a workout with sets, reps and rest",
	}, s.handleAddWorkoutExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "remove_workout_exercise",
		Description: "Remove an exercise link from a workout",
	}, s.handleRemoveWorkoutExercise)

	// progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_progress",
		Description: "Record a weight and reps result for an exercise",
	}, s.handleLogProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "exercise_progress",
		Description: "Get the progress history of an exercise",
	}, s.handleExerciseProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recent_progress",
		Description: "Get the most recent progress entries across all exercises",
	}, s.handleRecentProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_progress",
		Description: "Delete a progress entry",
	}, s.handleDeleteProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "stats",
		Description: "Count the rows in each table",
	}, s.handleStats)
}

// Tool input/output types

type emptyInput struct{}

type idInput struct {
	ID int64 `json:"id" jsonschema:"the numeric id"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type createdOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type exercisesOutput struct {
	Exercises []*models.Exercise `json:"exercises"`
}

type addExerciseInput struct {
	Name         string `json:"name" jsonschema:"exercise name"`
	MuscleGroup  string `json:"muscle_group" jsonschema:"muscle group such as Chest or Legs"`
	ExerciseType string `json:"exercise_type" jsonschema:"equipment type such as Bodyweight, Barbell or Machine"`
	Image        string `json:"image,omitempty" jsonschema:"image URL or path"`
}

type updateExerciseInput struct {
	ID           int64  `json:"id" jsonschema:"exercise id"`
	Name         string `json:"name,omitempty" jsonschema:"new name, unchanged when empty"`
	MuscleGroup  string `json:"muscle_group,omitempty" jsonschema:"new muscle group, unchanged when empty"`
	ExerciseType string `json:"exercise_type,omitempty" jsonschema:"new exercise type, unchanged when empty"`
	Image        string `json:"image,omitempty" jsonschema:"new image, unchanged when empty"`
}

type workoutsOutput struct {
	Workouts []*models.Workout `json:"workouts"`
}

type listWorkoutsInput struct {
	Day string `json:"day,omitempty" jsonschema:"only workouts on this weekday, case-insensitive"`
}

type workoutDetailOutput struct {
	Workout   *models.Workout                 `json:"workout"`
	Exercises []*models.WorkoutExerciseDetail `json:"exercises"`
}

type addWorkoutInput struct {
	Name  string `json:"name" jsonschema:"workout name"`
	Day   string `json:"day" jsonschema:"weekday the workout is scheduled on"`
	Image string `json:"image,omitempty" jsonschema:"image URL or path"`
}

type addWorkoutExerciseInput struct {
	WorkoutID  int64  `json:"workout_id" jsonschema:"workout id"`
	ExerciseID int64  `json:"exercise_id" jsonschema:"exercise id"`
	Sets       string `json:"sets" jsonschema:"sets, free text such as 3 or 1TS + 2BO"`
	Reps       string `json:"reps,omitempty" jsonschema:"reps, free text such as 8-12"`
	Rest       int    `json:"rest,omitempty" jsonschema:"rest between sets in seconds"`
	SeriesType string `json:"series_type,omitempty" jsonschema:"regular, drop_set, super_set, rest_pause, sst or top_set_back_off"`
	Notes      string `json:"notes,omitempty" jsonschema:"notes for this exercise in the workout"`
}

type logProgressInput struct {
	ExerciseID int64   `json:"exercise_id" jsonschema:"exercise id"`
	Weight     float64 `json:"weight,omitempty" jsonschema:"weight in kg, 0 for bodyweight"`
	Reps       int     `json:"reps" jsonschema:"repetitions performed"`
	Date       string  `json:"date,omitempty" jsonschema:"date as YYYY-MM-DD, defaults to today"`
	Notes      string  `json:"notes,omitempty" jsonschema:"optional notes"`
}

type exerciseProgressInput struct {
	ExerciseID int64 `json:"exercise_id" jsonschema:"exercise id"`
	Newest     bool  `json:"newest_first,omitempty" jsonschema:"most recent first instead of oldest first"`
}

type progressOutput struct {
	Progress []*models.Progress `json:"progress"`
}

type recentProgressInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"max results (default 20)"`
}

type recentProgressOutput struct {
	Progress []*models.ProgressEntry `json:"progress"`
}

// Tool handlers

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, exercisesOutput, error) {
	exercises, err := s.repo.ListExercises(ctx)
	if err != nil {
		return nil, exercisesOutput{}, fmt.Errorf("failed to list exercises: %w", err)
	}
	return nil, exercisesOutput{Exercises: exercises}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, createdOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, createdOutput{}, errors.New("name is required")
	}

	e := models.NewExercise(input.Name, input.MuscleGroup, input.ExerciseType).WithImage(input.Image)
	id, err := s.repo.CreateExercise(ctx, e)
	if err != nil {
		return nil, createdOutput{}, fmt.Errorf("failed to create exercise: %w", err)
	}

	return nil, createdOutput{
		ID:      id,
		Message: fmt.Sprintf("Added exercise %s (ID: %d)", input.Name, id),
	}, nil
}

func (s *Server) handleUpdateExercise(ctx context.Context, req *mcp.CallToolRequest, input updateExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	e, err := s.repo.GetExercise(ctx, input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if input.Name != "" {
		e.Name = input.Name
	}
	if input.MuscleGroup != "" {
		e.MuscleGroup = input.MuscleGroup
	}
	if input.ExerciseType != "" {
		e.ExerciseType = input.ExerciseType
	}
	if input.Image != "" {
		e.Image = input.Image
	}

	if err := s.repo.UpdateExercise(ctx, e); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update exercise: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Updated exercise %d", e.ID)}, nil
}

func (s *Server) handleDeleteExercise(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteExercise(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete exercise: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted exercise %d", input.ID)}, nil
}

func (s *Server) handleExerciseWorkouts(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, workoutsOutput, error) {
	workouts, err := s.repo.GetExerciseWorkouts(ctx, input.ID)
	if err != nil {
		return nil, workoutsOutput{}, fmt.Errorf("failed to list workouts: %w", err)
	}
	return nil, workoutsOutput{Workouts: workouts}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, workoutsOutput, error) {
	var (
		workouts []*models.Workout
		err      error
	)
	if input.Day != "" {
		workouts, err = s.repo.GetWorkoutsByDay(ctx, input.Day)
	} else {
		workouts, err = s.repo.ListWorkouts(ctx)
	}
	if err != nil {
		return nil, workoutsOutput{}, fmt.Errorf("failed to list workouts: %w", err)
	}
	return nil, workoutsOutput{Workouts: workouts}, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, workoutDetailOutput, error) {
	w, err := s.repo.GetWorkout(ctx, input.ID)
	if err != nil {
		return nil, workoutDetailOutput{}, err
	}
	exercises, err := s.repo.GetWorkoutExercises(ctx, w.ID)
	if err != nil {
		return nil, workoutDetailOutput{}, fmt.Errorf("failed to list workout exercises: %w", err)
	}
	return nil, workoutDetailOutput{Workout: w, Exercises: exercises}, nil
}

func (s *Server) handleAddWorkout(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutInput) (*mcp.CallToolResult, createdOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, createdOutput{}, errors.New("name is required")
	}

	w := models.NewWorkout(input.Name, input.Day).WithImage(input.Image)
	id, err := s.repo.CreateWorkout(ctx, w)
	if err != nil {
		return nil, createdOutput{}, fmt.Errorf("failed to create workout: %w", err)
	}

	return nil, createdOutput{
		ID:      id,
		Message: fmt.Sprintf("Added workout %s on %s (ID: %d)", input.Name, input.Day, id),
	}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteWorkout(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted workout %d", input.ID)}, nil
}

func (s *Server) handleAddWorkoutExercise(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutExerciseInput) (*mcp.CallToolResult, createdOutput, error) {
	if input.Sets == "" {
		return nil, createdOutput{}, errors.New("sets is required")
	}

	we := models.NewWorkoutExercise(input.WorkoutID, input.ExerciseID, input.Sets, input.Reps, input.Rest)
	if input.SeriesType != "" {
		if !models.IsKnownSeriesType(input.SeriesType) {
			return nil, createdOutput{}, fmt.Errorf("unknown series type: %s", input.SeriesType)
		}
		we.WithSeriesType(models.SeriesType(input.SeriesType))
	}
	if input.Notes != "" {
		we.WithNotes(input.Notes)
	}

	id, err := s.repo.CreateWorkoutExercise(ctx, we)
	if err != nil {
		if errors.Is(err, storage.ErrForeignKey) {
			return nil, createdOutput{}, fmt.Errorf("workout %d or exercise %d does not exist", input.WorkoutID, input.ExerciseID)
		}
		return nil, createdOutput{}, fmt.Errorf("failed to add exercise to workout: %w", err)
	}

	return nil, createdOutput{
		ID:      id,
		Message: fmt.Sprintf("Added exercise %d to workout %d (ID: %d)", input.ExerciseID, input.WorkoutID, id),
	}, nil
}

func (s *Server) handleRemoveWorkoutExercise(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteWorkoutExercise(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to remove workout exercise: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Removed workout exercise %d", input.ID)}, nil
}

func (s *Server) handleLogProgress(ctx context.Context, req *mcp.CallToolRequest, input logProgressInput) (*mcp.CallToolResult, createdOutput, error) {
	if input.Reps <= 0 {
		return nil, createdOutput{}, errors.New("reps must be positive")
	}
	if input.Weight < 0 {
		return nil, createdOutput{}, errors.New("weight cannot be negative")
	}

	p := models.NewProgress(input.ExerciseID, input.Weight, input.Reps)
	if input.Date != "" {
		t, err := time.Parse(models.DateLayout, input.Date)
		if err != nil {
			return nil, createdOutput{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", input.Date)
		}
		p.WithDate(t)
	}
	if input.Notes != "" {
		p.WithNotes(input.Notes)
	}

	id, err := s.repo.CreateProgress(ctx, p)
	if err != nil {
		if errors.Is(err, storage.ErrForeignKey) {
			return nil, createdOutput{}, fmt.Errorf("exercise %d does not exist", input.ExerciseID)
		}
		return nil, createdOutput{}, fmt.Errorf("failed to log progress: %w", err)
	}

	return nil, createdOutput{
		ID:      id,
		Message: fmt.Sprintf("Logged %.1f kg x %d on %s (ID: %d)", p.Weight, p.Reps, p.Date, id),
	}, nil
}

func (s *Server) handleExerciseProgress(ctx context.Context, req *mcp.CallToolRequest, input exerciseProgressInput) (*mcp.CallToolResult, progressOutput, error) {
	order := storage.Ascending
	if input.Newest {
		order = storage.Descending
	}
	progress, err := s.repo.GetExerciseProgress(ctx, input.ExerciseID, order)
	if err != nil {
		return nil, progressOutput{}, fmt.Errorf("failed to get progress: %w", err)
	}
	return nil, progressOutput{Progress: progress}, nil
}

func (s *Server) handleRecentProgress(ctx context.Context, req *mcp.CallToolRequest, input recentProgressInput) (*mcp.CallToolResult, recentProgressOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	entries, err := s.repo.GetRecentProgress(ctx, input.Limit)
	if err != nil {
		return nil, recentProgressOutput{}, fmt.Errorf("failed to get recent progress: %w", err)
	}
	return nil, recentProgressOutput{Progress: entries}, nil
}

func (s *Server) handleDeleteProgress(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteProgress(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete progress: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted progress entry %d", input.ID)}, nil
}

func (s *Server) handleStats(ctx context.Context, req *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, storage.RowCounts, error) {
	counts, err := s.repo.CountRows(ctx)
	if err != nil {
		return nil, storage.RowCounts{}, fmt.Errorf("failed to count rows: %w", err)
	}
	return nil, *counts, nil
}
