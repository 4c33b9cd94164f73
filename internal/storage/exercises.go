// ABOUTME: Exercise CRUD operations for SQLite storage.
// ABOUTME: Deleting an exercise cascades to its workout links and progress.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/gymtrack/internal/models"
)

const exerciseColumns = "id, name, muscle_group, exercise_type, image"

// ListExercises returns every exercise ordered by id.
func (d *DB) ListExercises(ctx context.Context) ([]*models.Exercise, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT `+exerciseColumns+` FROM exercises ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// GetExercise retrieves an exercise by id.
func (d *DB) GetExercise(ctx context.Context, id int64) (*models.Exercise, error) {
	row := d.db.QueryRowContext(ctx, `SELECT `+exerciseColumns+` FROM exercises WHERE id = ?`, id)
	e, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Entity: "exercise", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return e, nil
}

// CreateExercise stores a new exercise and returns its id. e.ID is ignored
// on input and set on success.
func (d *DB) CreateExercise(ctx context.Context, e *models.Exercise) (int64, error) {
	result, err := d.db.ExecContext(ctx, `
		INSERT INTO exercises (name, muscle_group, exercise_type, image)
		VALUES (?, ?, ?, ?)`,
		e.Name, e.MuscleGroup, e.ExerciseType, e.Image)
	if err != nil {
		return 0, writeErr("create exercise", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create exercise: %w", err)
	}
	e.ID = id
	return id, nil
}

// UpdateExercise replaces every field of an existing exercise.
func (d *DB) UpdateExercise(ctx context.Context, e *models.Exercise) error {
	result, err := d.db.ExecContext(ctx, `
		UPDATE exercises SET name = ?, muscle_group = ?, exercise_type = ?, image = ?
		WHERE id = ?`,
		e.Name, e.MuscleGroup, e.ExerciseType, e.Image, e.ID)
	if err != nil {
		return writeErr("update exercise", err)
	}
	return requireAffected(result, "exercise", e.ID)
}

// DeleteExercise removes an exercise, its workout links and its progress
// (cascade delete). Deleting a missing id is a no-op.
func (d *DB) DeleteExercise(ctx context.Context, id int64) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM exercises WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}

// GetExerciseWorkouts returns the workouts that include an exercise.
func (d *DB) GetExerciseWorkouts(ctx context.Context, exerciseID int64) ([]*models.Workout, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT DISTINCT w.id, w.name, w.day, w.image
		FROM workouts w
		JOIN workout_exercises we ON we.workout_id = w.id
		WHERE we.exercise_id = ?
		ORDER BY w.id ASC`, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("get exercise workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// requireAffected turns a zero-row update into a NotFoundError.
func requireAffected(result sql.Result, entity string, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", entity, err)
	}
	if affected == 0 {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return nil
}

func scanExercise(row rowScanner) (*models.Exercise, error) {
	var e models.Exercise
	var image sql.NullString
	if err := row.Scan(&e.ID, &e.Name, &e.MuscleGroup, &e.ExerciseType, &image); err != nil {
		return nil, err
	}
	e.Image = nullStringValue(image)
	return &e, nil
}

func scanExercises(rows *sql.Rows) ([]*models.Exercise, error) {
	var exercises []*models.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}
