// ABOUTME: Tests for the seed loader.
// ABOUTME: Covers idempotence, atomic rollback, and counts of inserted rows.
package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/harperreed/gymtrack/internal/models"
)

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first, err := db.SeedIfEmpty(ctx, DefaultSeed())
	if err != nil {
		t.Fatalf("first SeedIfEmpty failed: %v", err)
	}
	if first.Exercises != 16 || first.Workouts != 3 || first.WorkoutExercises != 17 || first.Progress != 7 {
		t.Errorf("unexpected first summary: %+v", first)
	}

	snapshot, err := db.GetAllData(ctx)
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		again, err := db.SeedIfEmpty(ctx, DefaultSeed())
		if err != nil {
			t.Fatalf("SeedIfEmpty run %d failed: %v", i+2, err)
		}
		if again.Total() != 0 {
			t.Errorf("run %d inserted %d rows, want 0", i+2, again.Total())
		}
	}

	after, err := db.GetAllData(ctx)
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	if len(after.Exercises) != len(snapshot.Exercises) ||
		len(after.Workouts) != len(snapshot.Workouts) ||
		len(after.WorkoutExercises) != len(snapshot.WorkoutExercises) ||
		len(after.Progress) != len(snapshot.Progress) {
		t.Fatalf("row counts changed after reseeding")
	}
	for i := range after.Exercises {
		if *after.Exercises[i] != *snapshot.Exercises[i] {
			t.Errorf("exercise %d changed: %+v -> %+v", i, snapshot.Exercises[i], after.Exercises[i])
		}
	}
}

func TestSeedIfEmptyNeverUpdates(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	e, _ := db.GetExercise(ctx, 1)
	e.Name = "Push-Up"
	if err := db.UpdateExercise(ctx, e); err != nil {
		t.Fatalf("UpdateExercise failed: %v", err)
	}

	if _, err := db.SeedIfEmpty(ctx, DefaultSeed()); err != nil {
		t.Fatalf("SeedIfEmpty failed: %v", err)
	}

	got, _ := db.GetExercise(ctx, 1)
	if got.Name != "Push-Up" {
		t.Errorf("seed overwrote user edit: %q", got.Name)
	}
}

func TestSeedIfEmptyRollsBack(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seed := &SeedData{
		Exercises: []models.Exercise{
			{ID: 1, Name: "Push Up", MuscleGroup: "Chest", ExerciseType: "Bodyweight"},
		},
		Workouts: []models.Workout{
			{ID: 1, Name: "Full Body Workout", Day: "Monday"},
		},
		WorkoutExercises: []models.WorkoutExercise{
			{ID: 1, WorkoutID: 1, ExerciseID: 42, Sets: "3", Reps: "10", Rest: 60},
		},
	}

	_, err := db.SeedIfEmpty(ctx, seed)
	if !errors.Is(err, ErrForeignKey) {
		t.Fatalf("expected ErrForeignKey, got %v", err)
	}

	counts, err := db.CountRows(ctx)
	if err != nil {
		t.Fatalf("CountRows failed: %v", err)
	}
	if *counts != (RowCounts{}) {
		t.Errorf("partial seed visible after rollback: %+v", counts)
	}
}

func TestSeedIfEmptyDefaultsSeriesType(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seed := &SeedData{
		Exercises: []models.Exercise{{ID: 1, Name: "Squat", MuscleGroup: "Legs", ExerciseType: "Bodyweight"}},
		Workouts:  []models.Workout{{ID: 1, Name: "Legs", Day: "Friday"}},
		WorkoutExercises: []models.WorkoutExercise{
			{ID: 1, WorkoutID: 1, ExerciseID: 1, Sets: "5", Reps: "5", Rest: 120},
		},
	}
	if _, err := db.SeedIfEmpty(ctx, seed); err != nil {
		t.Fatalf("SeedIfEmpty failed: %v", err)
	}

	we, err := db.GetWorkoutExercise(ctx, 1)
	if err != nil {
		t.Fatalf("GetWorkoutExercise failed: %v", err)
	}
	if we.SeriesType != models.SeriesRegular {
		t.Errorf("SeriesType = %q, want regular", we.SeriesType)
	}
}

func TestSeedIfEmptyIdlessRowsRepeat(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seed := &SeedData{Exercises: []models.Exercise{*models.NewExercise("Face Pull", "Shoulders", "Cable")}}
	for i := 0; i < 2; i++ {
		summary, err := db.SeedIfEmpty(ctx, seed)
		if err != nil {
			t.Fatalf("SeedIfEmpty run %d failed: %v", i+1, err)
		}
		if summary.Exercises != 1 {
			t.Errorf("run %d: expected 1 inserted exercise, got %d", i+1, summary.Exercises)
		}
	}

	exercises, err := db.ListExercises(ctx)
	if err != nil {
		t.Fatalf("ListExercises failed: %v", err)
	}
	if len(exercises) != 2 || exercises[0].ID == exercises[1].ID {
		t.Errorf("expected two rows with distinct ids, got %d", len(exercises))
	}
}

func TestSeedIfEmptyNil(t *testing.T) {
	db := setupTestDB(t)

	summary, err := db.SeedIfEmpty(context.Background(), nil)
	if err != nil {
		t.Fatalf("SeedIfEmpty(nil) failed: %v", err)
	}
	if summary.Total() != 0 {
		t.Errorf("expected empty summary, got %+v", summary)
	}
}

func TestDefaultSeedIsFresh(t *testing.T) {
	a := DefaultSeed()
	a.Exercises[0].Name = "changed"

	b := DefaultSeed()
	if b.Exercises[0].Name != "Push Up" {
		t.Error("DefaultSeed returned shared state")
	}
}
