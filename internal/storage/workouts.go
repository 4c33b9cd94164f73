// ABOUTME: Workout CRUD operations for SQLite storage.
// ABOUTME: Includes the day filter and the denormalized exercise join.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/gymtrack/internal/models"
)

const workoutColumns = "id, name, day, image"

// ListWorkouts returns every workout ordered by id.
func (d *DB) ListWorkouts(ctx context.Context) ([]*models.Workout, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT `+workoutColumns+` FROM workouts ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// GetWorkout retrieves a workout by id.
func (d *DB) GetWorkout(ctx context.Context, id int64) (*models.Workout, error) {
	row := d.db.QueryRowContext(ctx, `SELECT `+workoutColumns+` FROM workouts WHERE id = ?`, id)
	w, err := scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Entity: "workout", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return w, nil
}

// CreateWorkout stores a new workout and returns its id.
func (d *DB) CreateWorkout(ctx context.Context, w *models.Workout) (int64, error) {
	result, err := d.db.ExecContext(ctx,
		`INSERT INTO workouts (name, day, image) VALUES (?, ?, ?)`,
		w.Name, w.Day, w.Image)
	if err != nil {
		return 0, writeErr("create workout", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create workout: %w", err)
	}
	w.ID = id
	return id, nil
}

// UpdateWorkout replaces every field of an existing workout.
func (d *DB) UpdateWorkout(ctx context.Context, w *models.Workout) error {
	result, err := d.db.ExecContext(ctx,
		`UPDATE workouts SET name = ?, day = ?, image = ? WHERE id = ?`,
		w.Name, w.Day, w.Image, w.ID)
	if err != nil {
		return writeErr("update workout", err)
	}
	return requireAffected(result, "workout", w.ID)
}

// DeleteWorkout removes a workout and its exercise links (cascade delete).
// Deleting a missing id is a no-op.
func (d *DB) DeleteWorkout(ctx context.Context, id int64) error {
	// CASCADE is enabled, so deleting the workout deletes its links
	if _, err := d.db.ExecContext(ctx, "DELETE FROM workouts WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

// GetWorkoutsByDay returns the workouts scheduled on a weekday label,
// compared case-insensitively.
func (d *DB) GetWorkoutsByDay(ctx context.Context, day string) ([]*models.Workout, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE LOWER(day) = LOWER(?)
		ORDER BY id ASC`, day)
	if err != nil {
		return nil, fmt.Errorf("get workouts by day: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// GetWorkoutExercises returns a workout's exercise links in insertion order,
// each carrying its exercise's descriptive fields.
func (d *DB) GetWorkoutExercises(ctx context.Context, workoutID int64) ([]*models.WorkoutExerciseDetail, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT we.id, we.workout_id, we.exercise_id, we.sets, we.reps, we.rest, we.notes, we.series_type,
		       e.name, e.muscle_group, e.exercise_type, e.image
		FROM workout_exercises we
		JOIN exercises e ON we.exercise_id = e.id
		WHERE we.workout_id = ?
		ORDER BY we.id ASC`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("get workout exercises: %w", err)
	}
	defer rows.Close()

	var details []*models.WorkoutExerciseDetail
	for rows.Next() {
		var wd models.WorkoutExerciseDetail
		var notes, image sql.NullString
		err := rows.Scan(
			&wd.ID, &wd.WorkoutID, &wd.ExerciseID, &wd.Sets, &wd.Reps, &wd.Rest, &notes, &wd.SeriesType,
			&wd.Name, &wd.MuscleGroup, &wd.ExerciseType, &image,
		)
		if err != nil {
			return nil, fmt.Errorf("scan workout exercise: %w", err)
		}
		wd.Notes = nullStringPtr(notes)
		wd.Image = nullStringValue(image)
		details = append(details, &wd)
	}
	return details, rows.Err()
}

func scanWorkout(row rowScanner) (*models.Workout, error) {
	var w models.Workout
	var image sql.NullString
	if err := row.Scan(&w.ID, &w.Name, &w.Day, &image); err != nil {
		return nil, err
	}
	w.Image = nullStringValue(image)
	return &w, nil
}

func scanWorkouts(rows *sql.Rows) ([]*models.Workout, error) {
	var workouts []*models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}
