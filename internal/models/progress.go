// ABOUTME: Progress model for logged sets against an exercise.
// ABOUTME: Dates are ISO calendar dates kept as text, weight 0 means bodyweight.
package models

import "time"

// DateLayout is the format of Progress.Date.
const DateLayout = "2006-01-02"

// Progress is one logged result for an exercise.
type Progress struct {
	ID         int64   `json:"id" yaml:"id"`
	ExerciseID int64   `json:"exercise_id" yaml:"exercise_id"`
	Weight     float64 `json:"weight" yaml:"weight"`
	Reps       int     `json:"reps" yaml:"reps"`
	Date       string  `json:"date" yaml:"date"`
	Notes      *string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewProgress creates a Progress entry dated today.
func NewProgress(exerciseID int64, weight float64, reps int) *Progress {
	return &Progress{
		ExerciseID: exerciseID,
		Weight:     weight,
		Reps:       reps,
		Date:       time.Now().Format(DateLayout),
	}
}

// WithDate sets the entry date.
func (p *Progress) WithDate(t time.Time) *Progress {
	p.Date = t.Format(DateLayout)
	return p
}

// WithNotes sets notes on the entry.
func (p *Progress) WithNotes(notes string) *Progress {
	p.Notes = &notes
	return p
}

// IsBodyweight reports whether the entry was logged without external load.
func (p *Progress) IsBodyweight() bool {
	return p.Weight == 0
}

// Volume returns weight × reps for the entry.
func (p *Progress) Volume() float64 {
	return p.Weight * float64(p.Reps)
}

// ProgressEntry is a Progress row with its exercise's name flattened onto it.
type ProgressEntry struct {
	Progress
	ExerciseName string `json:"exercise_name" yaml:"exercise_name"`
	MuscleGroup  string `json:"muscle_group" yaml:"muscle_group"`
}
