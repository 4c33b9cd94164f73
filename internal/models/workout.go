// ABOUTME: Workout and WorkoutExercise models for training routines.
// ABOUTME: Sets and reps are free text because some protocols are not numeric.
package models

// Workout is a named routine scheduled on a weekday.
type Workout struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Day   string `json:"day" yaml:"day"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

// NewWorkout creates a Workout without an ID.
func NewWorkout(name, day string) *Workout {
	return &Workout{Name: name, Day: day}
}

// WithImage sets the image URL or path.
func (w *Workout) WithImage(image string) *Workout {
	w.Image = image
	return w
}

// SeriesType describes how the sets of a workout exercise are performed.
type SeriesType string

const (
	SeriesRegular       SeriesType = "regular"
	SeriesDropSet       SeriesType = "drop_set"
	SeriesSuperSet      SeriesType = "super_set"
	SeriesRestPause     SeriesType = "rest_pause"
	SeriesSST           SeriesType = "sst"
	SeriesTopSetBackOff SeriesType = "top_set_back_off"
)

// AllSeriesTypes lists the series types the app knows how to display.
var AllSeriesTypes = []SeriesType{
	SeriesRegular, SeriesDropSet, SeriesSuperSet,
	SeriesRestPause, SeriesSST, SeriesTopSetBackOff,
}

// IsKnownSeriesType reports whether s is one of AllSeriesTypes.
// The store accepts any text; this is only used for user-facing validation.
func IsKnownSeriesType(s string) bool {
	for _, st := range AllSeriesTypes {
		if string(st) == s {
			return true
		}
	}
	return false
}

// WorkoutExercise links an exercise into a workout with its prescription.
type WorkoutExercise struct {
	ID         int64      `json:"id" yaml:"id"`
	WorkoutID  int64      `json:"workout_id" yaml:"workout_id"`
	ExerciseID int64      `json:"exercise_id" yaml:"exercise_id"`
	Sets       string     `json:"sets" yaml:"sets"`
	Reps       string     `json:"reps" yaml:"reps"`
	Rest       int        `json:"rest" yaml:"rest"` // seconds
	Notes      *string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	SeriesType SeriesType `json:"series_type" yaml:"series_type"`
}

// NewWorkoutExercise creates a regular-series link without an ID.
func NewWorkoutExercise(workoutID, exerciseID int64, sets, reps string, rest int) *WorkoutExercise {
	return &WorkoutExercise{
		WorkoutID:  workoutID,
		ExerciseID: exerciseID,
		Sets:       sets,
		Reps:       reps,
		Rest:       rest,
		SeriesType: SeriesRegular,
	}
}

// WithNotes sets notes on the link.
func (we *WorkoutExercise) WithNotes(notes string) *WorkoutExercise {
	we.Notes = &notes
	return we
}

// WithSeriesType sets the series type.
func (we *WorkoutExercise) WithSeriesType(st SeriesType) *WorkoutExercise {
	we.SeriesType = st
	return we
}

// WorkoutExerciseDetail is a WorkoutExercise with its exercise's
// descriptive fields flattened onto it.
type WorkoutExerciseDetail struct {
	WorkoutExercise
	Name         string `json:"name" yaml:"name"`
	MuscleGroup  string `json:"muscle_group" yaml:"muscle_group"`
	ExerciseType string `json:"exercise_type" yaml:"exercise_type"`
	Image        string `json:"image,omitempty" yaml:"image,omitempty"`
}
