// ABOUTME: Built-in seed loaded into an empty store on first run.
// ABOUTME: Three weekly workouts over sixteen exercises, plus a short progress history.
package storage

import "github.com/harperreed/gymtrack/internal/models"

func strPtr(s string) *string { return &s }

// DefaultSeed returns a fresh copy of the built-in seed.
func DefaultSeed() *SeedData {
	return &SeedData{
		Exercises: []models.Exercise{
			{ID: 1, Name: "Push Up", MuscleGroup: "Chest", ExerciseType: "Bodyweight"},
			{ID: 2, Name: "Squat", MuscleGroup: "Legs", ExerciseType: "Bodyweight"},
			{ID: 3, Name: "Bicep Curl", MuscleGroup: "Arms", ExerciseType: "Dumbbell"},
			{ID: 4, Name: "Bench Press", MuscleGroup: "Chest", ExerciseType: "Barbell"},
			{ID: 5, Name: "Incline Dumbbell Press", MuscleGroup: "Chest", ExerciseType: "Dumbbell"},
			{ID: 6, Name: "Cable Fly", MuscleGroup: "Chest", ExerciseType: "Cable"},
			{ID: 7, Name: "Overhead Press", MuscleGroup: "Shoulders", ExerciseType: "Barbell"},
			{ID: 8, Name: "Lateral Raise", MuscleGroup: "Shoulders", ExerciseType: "Dumbbell"},
			{ID: 9, Name: "Pull Up", MuscleGroup: "Back", ExerciseType: "Bodyweight"},
			{ID: 10, Name: "Barbell Row", MuscleGroup: "Back", ExerciseType: "Barbell"},
			{ID: 11, Name: "Lat Pulldown", MuscleGroup: "Back", ExerciseType: "Cable"},
			{ID: 12, Name: "Tricep Pushdown", MuscleGroup: "Arms", ExerciseType: "Cable"},
			{ID: 13, Name: "Hammer Curl", MuscleGroup: "Arms", ExerciseType: "Dumbbell"},
			{ID: 14, Name: "Romanian Deadlift", MuscleGroup: "Legs", ExerciseType: "Barbell"},
			{ID: 15, Name: "Leg Press", MuscleGroup: "Legs", ExerciseType: "Machine"},
			{ID: 16, Name: "Plank", MuscleGroup: "Core", ExerciseType: "Bodyweight"},
		},
		Workouts: []models.Workout{
			{ID: 1, Name: "Full Body Workout", Day: "Monday"},
			{ID: 2, Name: "Upper Body Workout", Day: "Thursday"},
			{ID: 3, Name: "Lower Body Workout", Day: "Saturday"},
		},
		WorkoutExercises: []models.WorkoutExercise{
			{ID: 1, WorkoutID: 1, ExerciseID: 1, Sets: "3", Reps: "12", Rest: 60, Notes: strPtr("Keep your back straight"), SeriesType: models.SeriesRegular},
			{ID: 2, WorkoutID: 1, ExerciseID: 2, Sets: "3", Reps: "15", Rest: 90, SeriesType: models.SeriesRegular},
			{ID: 3, WorkoutID: 1, ExerciseID: 3, Sets: "4", Reps: "10", Rest: 45, SeriesType: models.SeriesDropSet},

			{ID: 4, WorkoutID: 2, ExerciseID: 4, Sets: "1TS + 2BO", Reps: "6-8", Rest: 180, Notes: strPtr("Top set at RPE 9, back-off sets at 85%"), SeriesType: models.SeriesTopSetBackOff},
			{ID: 5, WorkoutID: 2, ExerciseID: 5, Sets: "3", Reps: "8-10", Rest: 120, SeriesType: models.SeriesRegular},
			{ID: 6, WorkoutID: 2, ExerciseID: 6, Sets: "3", Reps: "12-15", Rest: 60, SeriesType: models.SeriesDropSet},
			{ID: 7, WorkoutID: 2, ExerciseID: 7, Sets: "3", Reps: "6-8", Rest: 150, SeriesType: models.SeriesRegular},
			{ID: 8, WorkoutID: 2, ExerciseID: 8, Sets: "3", Reps: "12-15", Rest: 45, SeriesType: models.SeriesRestPause},
			{ID: 9, WorkoutID: 2, ExerciseID: 9, Sets: "3", Reps: "AMRAP", Rest: 120, SeriesType: models.SeriesRegular},
			{ID: 10, WorkoutID: 2, ExerciseID: 10, Sets: "3", Reps: "8-10", Rest: 120, SeriesType: models.SeriesRegular},
			{ID: 11, WorkoutID: 2, ExerciseID: 11, Sets: "2", Reps: "10-12", Rest: 90, SeriesType: models.SeriesSST},
			{ID: 12, WorkoutID: 2, ExerciseID: 12, Sets: "3", Reps: "10-12", Rest: 60, Notes: strPtr("Superset with hammer curl"), SeriesType: models.SeriesSuperSet},
			{ID: 13, WorkoutID: 2, ExerciseID: 13, Sets: "3", Reps: "10-12", Rest: 60, SeriesType: models.SeriesSuperSet},

			{ID: 14, WorkoutID: 3, ExerciseID: 14, Sets: "3", Reps: "8-10", Rest: 150, SeriesType: models.SeriesRegular},
			{ID: 15, WorkoutID: 3, ExerciseID: 15, Sets: "3", Reps: "10-12", Rest: 120, SeriesType: models.SeriesRegular},
			{ID: 16, WorkoutID: 3, ExerciseID: 16, Sets: "3", Reps: "60s", Rest: 60, SeriesType: models.SeriesRegular},
			{ID: 17, WorkoutID: 3, ExerciseID: 2, Sets: "4", Reps: "12", Rest: 90, SeriesType: models.SeriesRegular},
		},
		Progress: []models.Progress{
			{ID: 1, ExerciseID: 1, Weight: 0, Reps: 12, Date: "2025-01-01"},
			{ID: 2, ExerciseID: 3, Weight: 12.5, Reps: 10, Date: "2025-01-02"},
			{ID: 3, ExerciseID: 2, Weight: 0, Reps: 15, Date: "2025-01-03"},
			{ID: 4, ExerciseID: 4, Weight: 80, Reps: 5, Date: "2025-01-06"},
			{ID: 5, ExerciseID: 4, Weight: 82.5, Reps: 5, Date: "2025-01-13", Notes: strPtr("New top set")},
			{ID: 6, ExerciseID: 3, Weight: 14, Reps: 8, Date: "2025-01-09"},
			{ID: 7, ExerciseID: 10, Weight: 70, Reps: 8, Date: "2025-01-13"},
		},
	}
}
