// ABOUTME: Idempotent bulk seeding of the gym store.
// ABOUTME: Rows keep their ids; rows whose id already exists are skipped.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperreed/gymtrack/internal/models"
	"github.com/rs/zerolog/log"
)

// SeedData is a full set of rows with explicit ids.
type SeedData struct {
	Exercises        []models.Exercise        `json:"exercises" yaml:"exercises"`
	Workouts         []models.Workout         `json:"workouts" yaml:"workouts"`
	WorkoutExercises []models.WorkoutExercise `json:"workout_exercises" yaml:"workout_exercises"`
	Progress         []models.Progress        `json:"progress" yaml:"progress"`
}

// SeedSummary counts the rows a seed actually inserted.
type SeedSummary struct {
	Exercises        int `json:"exercises"`
	Workouts         int `json:"workouts"`
	WorkoutExercises int `json:"workout_exercises"`
	Progress         int `json:"progress"`
}

// Total returns the number of inserted rows across all tables.
func (s *SeedSummary) Total() int {
	return s.Exercises + s.Workouts + s.WorkoutExercises + s.Progress
}

// SeedIfEmpty inserts every row of seed whose id is not yet present, in
// foreign key order, inside a single transaction. Running it twice leaves
// the store unchanged as long as every row carries an explicit id: a row
// with id 0 gets a fresh id from SQLite and is inserted again on each run.
// A link or progress row referencing an id that
// exists neither in the store nor in seed fails with ErrForeignKey and
// nothing is written.
func (d *DB) SeedIfEmpty(ctx context.Context, seed *SeedData) (*SeedSummary, error) {
	summary := &SeedSummary{}
	if seed == nil {
		return summary, nil
	}

	err := d.Transaction(ctx, func(tx *sql.Tx) error {
		for i := range seed.Exercises {
			e := &seed.Exercises[i]
			n, err := insertIgnore(ctx, tx, "exercise", `
				INSERT OR IGNORE INTO exercises (id, name, muscle_group, exercise_type, image)
				VALUES (?, ?, ?, ?, ?)`,
				e.ID, e.Name, e.MuscleGroup, e.ExerciseType, e.Image)
			if err != nil {
				return err
			}
			summary.Exercises += n
		}

		for i := range seed.Workouts {
			w := &seed.Workouts[i]
			n, err := insertIgnore(ctx, tx, "workout", `
				INSERT OR IGNORE INTO workouts (id, name, day, image)
				VALUES (?, ?, ?, ?)`,
				w.ID, w.Name, w.Day, w.Image)
			if err != nil {
				return err
			}
			summary.Workouts += n
		}

		for i := range seed.WorkoutExercises {
			we := &seed.WorkoutExercises[i]
			seriesType := we.SeriesType
			if seriesType == "" {
				seriesType = models.SeriesRegular
			}
			n, err := insertIgnore(ctx, tx, "workout exercise", `
				INSERT OR IGNORE INTO workout_exercises
					(id, workout_id, exercise_id, sets, reps, rest, notes, series_type)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				we.ID, we.WorkoutID, we.ExerciseID, we.Sets, we.Reps, we.Rest, ptrArg(we.Notes), string(seriesType))
			if err != nil {
				return err
			}
			summary.WorkoutExercises += n
		}

		for i := range seed.Progress {
			p := &seed.Progress[i]
			n, err := insertIgnore(ctx, tx, "progress", `
				INSERT OR IGNORE INTO progress (id, exercise_id, weight, reps, date, notes)
				VALUES (?, ?, ?, ?, ?, ?)`,
				p.ID, p.ExerciseID, p.Weight, p.Reps, p.Date, ptrArg(p.Notes))
			if err != nil {
				return err
			}
			summary.Progress += n
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	if summary.Total() > 0 {
		log.Info().
			Int("exercises", summary.Exercises).
			Int("workouts", summary.Workouts).
			Int("workout_exercises", summary.WorkoutExercises).
			Int("progress", summary.Progress).
			Msg("Seeded store")
	}
	return summary, nil
}

// insertIgnore runs an INSERT OR IGNORE and reports whether a row was added.
// A zero id lets SQLite assign one.
func insertIgnore(ctx context.Context, ex execer, entity, query string, args ...any) (int, error) {
	if id, ok := args[0].(int64); ok && id == 0 {
		args[0] = nil
	}
	result, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, writeErr("seed "+entity, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("seed %s: %w", entity, err)
	}
	return int(n), nil
}
