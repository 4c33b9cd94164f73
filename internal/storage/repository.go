// ABOUTME: Repository interface for gym data storage.
// ABOUTME: Defines contract for exercises, workouts, links, and progress CRUD plus derived queries.
package storage

import (
	"context"

	"github.com/harperreed/gymtrack/internal/models"
)

// Order selects the date ordering of progress queries.
type Order int

const (
	// Ascending is oldest first, the order used for progress charts.
	Ascending Order = iota
	// Descending is most recent first.
	Descending
)

// RowCounts holds the number of rows per table.
type RowCounts struct {
	Exercises        int `json:"exercises"`
	Workouts         int `json:"workouts"`
	WorkoutExercises int `json:"workout_exercises"`
	Progress         int `json:"progress"`
}

// Repository defines the storage interface for gym data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Exercise operations
	ListExercises(ctx context.Context) ([]*models.Exercise, error)
	GetExercise(ctx context.Context, id int64) (*models.Exercise, error)
	CreateExercise(ctx context.Context, e *models.Exercise) (int64, error)
	UpdateExercise(ctx context.Context, e *models.Exercise) error
	DeleteExercise(ctx context.Context, id int64) error
	GetExerciseWorkouts(ctx context.Context, exerciseID int64) ([]*models.Workout, error)

	// Workout operations
	ListWorkouts(ctx context.Context) ([]*models.Workout, error)
	GetWorkout(ctx context.Context, id int64) (*models.Workout, error)
	CreateWorkout(ctx context.Context, w *models.Workout) (int64, error)
	UpdateWorkout(ctx context.Context, w *models.Workout) error
	DeleteWorkout(ctx context.Context, id int64) error
	GetWorkoutsByDay(ctx context.Context, day string) ([]*models.Workout, error)
	GetWorkoutExercises(ctx context.Context, workoutID int64) ([]*models.WorkoutExerciseDetail, error)

	// Workout exercise link operations
	ListWorkoutExercises(ctx context.Context) ([]*models.WorkoutExercise, error)
	GetWorkoutExercise(ctx context.Context, id int64) (*models.WorkoutExercise, error)
	CreateWorkoutExercise(ctx context.Context, we *models.WorkoutExercise) (int64, error)
	UpdateWorkoutExercise(ctx context.Context, we *models.WorkoutExercise) error
	DeleteWorkoutExercise(ctx context.Context, id int64) error

	// Progress operations
	ListProgress(ctx context.Context) ([]*models.Progress, error)
	GetProgress(ctx context.Context, id int64) (*models.Progress, error)
	CreateProgress(ctx context.Context, p *models.Progress) (int64, error)
	UpdateProgress(ctx context.Context, p *models.Progress) error
	DeleteProgress(ctx context.Context, id int64) error
	GetExerciseProgress(ctx context.Context, exerciseID int64, order Order) ([]*models.Progress, error)
	GetRecentProgress(ctx context.Context, limit int) ([]*models.ProgressEntry, error)

	// Seeding and export/import
	SeedIfEmpty(ctx context.Context, seed *SeedData) (*SeedSummary, error)
	CountRows(ctx context.Context) (*RowCounts, error)
	GetAllData(ctx context.Context) (*ExportData, error)
	ImportData(ctx context.Context, data *ExportData) (*SeedSummary, error)

	// Lifecycle
	Close() error
}

// Compile-time check: DB satisfies Repository.
var _ Repository = (*DB)(nil)
