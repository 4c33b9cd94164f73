// ABOUTME: WorkoutExercise CRUD operations for SQLite storage.
// ABOUTME: Links must reference an existing workout and exercise.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/gymtrack/internal/models"
)

const workoutExerciseColumns = "id, workout_id, exercise_id, sets, reps, rest, notes, series_type"

// ListWorkoutExercises returns every workout link ordered by id.
func (d *DB) ListWorkoutExercises(ctx context.Context) ([]*models.WorkoutExercise, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT `+workoutExerciseColumns+` FROM workout_exercises ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list workout exercises: %w", err)
	}
	defer rows.Close()

	var links []*models.WorkoutExercise
	for rows.Next() {
		we, err := scanWorkoutExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workout exercise: %w", err)
		}
		links = append(links, we)
	}
	return links, rows.Err()
}

// GetWorkoutExercise retrieves a workout link by id.
func (d *DB) GetWorkoutExercise(ctx context.Context, id int64) (*models.WorkoutExercise, error) {
	row := d.db.QueryRowContext(ctx, `SELECT `+workoutExerciseColumns+` FROM workout_exercises WHERE id = ?`, id)
	we, err := scanWorkoutExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Entity: "workout exercise", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get workout exercise: %w", err)
	}
	return we, nil
}

// CreateWorkoutExercise stores a new workout link and returns its id.
// A dangling workout or exercise id fails with ErrForeignKey.
func (d *DB) CreateWorkoutExercise(ctx context.Context, we *models.WorkoutExercise) (int64, error) {
	result, err := d.db.ExecContext(ctx, `
		INSERT INTO workout_exercises (workout_id, exercise_id, sets, reps, rest, notes, series_type)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		we.WorkoutID, we.ExerciseID, we.Sets, we.Reps, we.Rest, ptrArg(we.Notes), string(we.SeriesType))
	if err != nil {
		return 0, writeErr("create workout exercise", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create workout exercise: %w", err)
	}
	we.ID = id
	return id, nil
}

// UpdateWorkoutExercise replaces every field of an existing workout link.
func (d *DB) UpdateWorkoutExercise(ctx context.Context, we *models.WorkoutExercise) error {
	result, err := d.db.ExecContext(ctx, `
		UPDATE workout_exercises
		SET workout_id = ?, exercise_id = ?, sets = ?, reps = ?, rest = ?, notes = ?, series_type = ?
		WHERE id = ?`,
		we.WorkoutID, we.ExerciseID, we.Sets, we.Reps, we.Rest, ptrArg(we.Notes), string(we.SeriesType), we.ID)
	if err != nil {
		return writeErr("update workout exercise", err)
	}
	return requireAffected(result, "workout exercise", we.ID)
}

// DeleteWorkoutExercise removes a workout link. Deleting a missing id is a no-op.
func (d *DB) DeleteWorkoutExercise(ctx context.Context, id int64) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM workout_exercises WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete workout exercise: %w", err)
	}
	return nil
}

func scanWorkoutExercise(row rowScanner) (*models.WorkoutExercise, error) {
	var we models.WorkoutExercise
	var notes sql.NullString
	err := row.Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.Sets, &we.Reps, &we.Rest, &notes, &we.SeriesType)
	if err != nil {
		return nil, err
	}
	we.Notes = nullStringPtr(notes)
	return &we, nil
}
