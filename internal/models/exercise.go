// ABOUTME: Exercise model for the gym catalogue.
// ABOUTME: Exercises are referenced by workout links and progress entries.
package models

// Exercise is a single movement in the catalogue.
type Exercise struct {
	ID           int64  `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	MuscleGroup  string `json:"muscle_group" yaml:"muscle_group"`
	ExerciseType string `json:"exercise_type" yaml:"exercise_type"`
	Image        string `json:"image,omitempty" yaml:"image,omitempty"`
}

// NewExercise creates an Exercise without an ID; the store assigns one on create.
func NewExercise(name, muscleGroup, exerciseType string) *Exercise {
	return &Exercise{
		Name:         name,
		MuscleGroup:  muscleGroup,
		ExerciseType: exerciseType,
	}
}

// WithImage sets the image URL or path.
func (e *Exercise) WithImage(image string) *Exercise {
	e.Image = image
	return e
}
