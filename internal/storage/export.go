// ABOUTME: Export and import functionality for gym data.
// ABOUTME: Supports JSON, YAML and Markdown export; import goes through the seed loader.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/gymtrack/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportVersion is the version written into every export.
const ExportVersion = "1.0"

// ExportData represents the full export format for gym data.
type ExportData struct {
	Version          string                    `json:"version" yaml:"version"`
	ExportedAt       time.Time                 `json:"exported_at" yaml:"exported_at"`
	Tool             string                    `json:"tool" yaml:"tool"`
	Exercises        []*models.Exercise        `json:"exercises" yaml:"exercises"`
	Workouts         []*models.Workout         `json:"workouts" yaml:"workouts"`
	WorkoutExercises []*models.WorkoutExercise `json:"workout_exercises" yaml:"workout_exercises"`
	Progress         []*models.Progress        `json:"progress" yaml:"progress"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData(ctx context.Context) (*ExportData, error) {
	exercises, err := d.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	workouts, err := d.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	links, err := d.ListWorkoutExercises(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := d.ListProgress(ctx)
	if err != nil {
		return nil, err
	}

	return &ExportData{
		Version:          ExportVersion,
		ExportedAt:       time.Now().UTC(),
		Tool:             "gymtrack",
		Exercises:        exercises,
		Workouts:         workouts,
		WorkoutExercises: links,
		Progress:         progress,
	}, nil
}

// ImportData loads an export into the store. Rows whose id already exists
// are kept as they are, and the whole import is a single transaction.
func (d *DB) ImportData(ctx context.Context, data *ExportData) (*SeedSummary, error) {
	if data == nil {
		return &SeedSummary{}, nil
	}
	if data.Version != "" && data.Version != ExportVersion {
		return nil, fmt.Errorf("import: unsupported export version %q", data.Version)
	}
	return d.SeedIfEmpty(ctx, data.SeedData())
}

// SeedData converts an export into seed rows. Null entries are skipped.
func (e *ExportData) SeedData() *SeedData {
	seed := &SeedData{
		Exercises:        make([]models.Exercise, 0, len(e.Exercises)),
		Workouts:         make([]models.Workout, 0, len(e.Workouts)),
		WorkoutExercises: make([]models.WorkoutExercise, 0, len(e.WorkoutExercises)),
		Progress:         make([]models.Progress, 0, len(e.Progress)),
	}
	for _, ex := range e.Exercises {
		if ex == nil {
			continue
		}
		seed.Exercises = append(seed.Exercises, *ex)
	}
	for _, w := range e.Workouts {
		if w == nil {
			continue
		}
		seed.Workouts = append(seed.Workouts, *w)
	}
	for _, we := range e.WorkoutExercises {
		if we == nil {
			continue
		}
		seed.WorkoutExercises = append(seed.WorkoutExercises, *we)
	}
	for _, p := range e.Progress {
		if p == nil {
			continue
		}
		seed.Progress = append(seed.Progress, *p)
	}
	return seed
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON(ctx context.Context) ([]byte, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML, with links grouped under their workout.
func (d *DB) ExportYAML(ctx context.Context) ([]byte, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(data.Exercises))
	for _, e := range data.Exercises {
		names[e.ID] = e.Name
	}

	yamlData := struct {
		Version    string         `yaml:"version"`
		ExportedAt string         `yaml:"exported_at"`
		Tool       string         `yaml:"tool"`
		Exercises  []yamlExercise `yaml:"exercises"`
		Workouts   []yamlWorkout  `yaml:"workouts"`
		Progress   []yamlProgress `yaml:"progress"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Exercises:  make([]yamlExercise, 0, len(data.Exercises)),
		Workouts:   make([]yamlWorkout, 0, len(data.Workouts)),
		Progress:   make([]yamlProgress, 0, len(data.Progress)),
	}

	for _, e := range data.Exercises {
		yamlData.Exercises = append(yamlData.Exercises, yamlExercise{
			ID:           e.ID,
			Name:         e.Name,
			MuscleGroup:  e.MuscleGroup,
			ExerciseType: e.ExerciseType,
			Image:        e.Image,
		})
	}

	byWorkout := make(map[int64][]yamlWorkoutExercise)
	for _, we := range data.WorkoutExercises {
		ywe := yamlWorkoutExercise{
			Exercise:   names[we.ExerciseID],
			Sets:       we.Sets,
			Reps:       we.Reps,
			Rest:       we.Rest,
			SeriesType: string(we.SeriesType),
		}
		if we.Notes != nil {
			ywe.Notes = *we.Notes
		}
		byWorkout[we.WorkoutID] = append(byWorkout[we.WorkoutID], ywe)
	}

	for _, w := range data.Workouts {
		yamlData.Workouts = append(yamlData.Workouts, yamlWorkout{
			ID:        w.ID,
			Name:      w.Name,
			Day:       w.Day,
			Exercises: byWorkout[w.ID],
		})
	}

	for _, p := range data.Progress {
		yp := yamlProgress{
			Exercise: names[p.ExerciseID],
			Weight:   p.Weight,
			Reps:     p.Reps,
			Date:     p.Date,
		}
		if p.Notes != nil {
			yp.Notes = *p.Notes
		}
		yamlData.Progress = append(yamlData.Progress, yp)
	}

	return yaml.Marshal(yamlData)
}

type yamlExercise struct {
	ID           int64  `yaml:"id"`
	Name         string `yaml:"name"`
	MuscleGroup  string `yaml:"muscle_group"`
	ExerciseType string `yaml:"exercise_type"`
	Image        string `yaml:"image,omitempty"`
}

type yamlWorkout struct {
	ID        int64                 `yaml:"id"`
	Name      string                `yaml:"name"`
	Day       string                `yaml:"day"`
	Exercises []yamlWorkoutExercise `yaml:"exercises,omitempty"`
}

type yamlWorkoutExercise struct {
	Exercise   string `yaml:"exercise"`
	Sets       string `yaml:"sets"`
	Reps       string `yaml:"reps,omitempty"`
	Rest       int    `yaml:"rest"`
	SeriesType string `yaml:"series_type"`
	Notes      string `yaml:"notes,omitempty"`
}

type yamlProgress struct {
	Exercise string  `yaml:"exercise"`
	Weight   float64 `yaml:"weight"`
	Reps     int     `yaml:"reps"`
	Date     string  `yaml:"date"`
	Notes    string  `yaml:"notes,omitempty"`
}

// ExportMarkdown exports the weekly routine and progress history as Markdown.
// With exerciseID set only that exercise's history is written. Entries dated
// before since are left out.
func (d *DB) ExportMarkdown(ctx context.Context, exerciseID *int64, since *time.Time) (string, error) {
	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Gym Export - %s\n\n", now.Format(models.DateLayout)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if exerciseID != nil {
		exercise, err := d.GetExercise(ctx, *exerciseID)
		if err != nil {
			return "", err
		}
		progress, err := d.GetExerciseProgress(ctx, exercise.ID, Ascending)
		if err != nil {
			return "", err
		}
		sb.WriteString(fmt.Sprintf("## %s\n\n", exercise.Name))
		sb.WriteString("| Date | Weight | Reps | Notes |\n")
		sb.WriteString("|------|--------|------|-------|\n")
		for _, p := range filterSince(progress, since) {
			sb.WriteString(fmt.Sprintf("| %s | %s | %d | %s |\n",
				p.Date, markdownWeight(p.Weight), p.Reps, derefString(p.Notes)))
		}
		return sb.String(), nil
	}

	workouts, err := d.ListWorkouts(ctx)
	if err != nil {
		return "", err
	}
	for _, w := range workouts {
		details, err := d.GetWorkoutExercises(ctx, w.ID)
		if err != nil {
			return "", err
		}
		sb.WriteString(fmt.Sprintf("## %s (%s)\n\n", w.Name, w.Day))
		if len(details) == 0 {
			sb.WriteString("No exercises.\n\n")
			continue
		}
		sb.WriteString("| Exercise | Sets | Reps | Rest | Series | Notes |\n")
		sb.WriteString("|----------|------|------|------|--------|-------|\n")
		for _, we := range details {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %ds | %s | %s |\n",
				we.Name, we.Sets, we.Reps, we.Rest, we.SeriesType, derefString(we.Notes)))
		}
		sb.WriteString("\n")
	}

	exercises, err := d.ListExercises(ctx)
	if err != nil {
		return "", err
	}
	names := make(map[int64]string, len(exercises))
	for _, e := range exercises {
		names[e.ID] = e.Name
	}

	progress, err := d.ListProgress(ctx)
	if err != nil {
		return "", err
	}
	progress = filterSince(progress, since)
	if len(progress) > 0 {
		sort.SliceStable(progress, func(i, j int) bool {
			return progress[i].Date < progress[j].Date
		})
		sb.WriteString("## Progress\n\n")
		sb.WriteString("| Date | Exercise | Weight | Reps | Notes |\n")
		sb.WriteString("|------|----------|--------|------|-------|\n")
		for _, p := range progress {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %d | %s |\n",
				p.Date, names[p.ExerciseID], markdownWeight(p.Weight), p.Reps, derefString(p.Notes)))
		}
	}

	return sb.String(), nil
}

func filterSince(progress []*models.Progress, since *time.Time) []*models.Progress {
	if since == nil {
		return progress
	}
	cutoff := since.Format(models.DateLayout)
	var filtered []*models.Progress
	for _, p := range progress {
		if p.Date >= cutoff {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func markdownWeight(w float64) string {
	if w == 0 {
		return "BW"
	}
	return fmt.Sprintf("%g kg", w)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(ctx context.Context, data []byte) (*SeedSummary, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(ctx, &exportData)
}
