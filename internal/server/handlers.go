// ABOUTME: HTTP handlers for exercises, workouts, workout links, and progress.
// ABOUTME: Each handler validates input, calls the repository, and writes JSON.
package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/harperreed/gymtrack/internal/models"
	"github.com/harperreed/gymtrack/internal/storage"
)

const defaultRecentLimit = 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.repo.CountRows(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// Exercises

func validateExercise(e *models.Exercise) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.repo.ListExercises(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	e, err := s.repo.GetExercise(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var e models.Exercise
	if err := decodeBody(r, &e); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := validateExercise(&e); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	e.ID = 0

	id, err := s.repo.CreateExercise(r.Context(), &e)
	if err != nil {
		writeError(w, r, err)
		return
	}
	e.ID = id
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var e models.Exercise
	if err := decodeBody(r, &e); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := validateExercise(&e); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	e.ID = id

	if err := s.repo.UpdateExercise(r.Context(), &e); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := s.repo.DeleteExercise(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExerciseWorkouts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	workouts, err := s.repo.GetExerciseWorkouts(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	order := storage.Ascending
	switch strings.ToLower(r.URL.Query().Get("order")) {
	case "", "asc":
	case "desc":
		order = storage.Descending
	default:
		writeBadRequest(w, "order must be asc or desc")
		return
	}

	progress, err := s.repo.GetExerciseProgress(r.Context(), id, order)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// Workouts

func validateWorkout(wo *models.Workout) error {
	if strings.TrimSpace(wo.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	var (
		workouts []*models.Workout
		err      error
	)
	if day := r.URL.Query().Get("day"); day != "" {
		workouts, err = s.repo.GetWorkoutsByDay(r.Context(), day)
	} else {
		workouts, err = s.repo.ListWorkouts(r.Context())
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	wo, err := s.repo.GetWorkout(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wo)
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	var wo models.Workout
	if err := decodeBody(r, &wo); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := validateWorkout(&wo); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	wo.ID = 0

	id, err := s.repo.CreateWorkout(r.Context(), &wo)
	if err != nil {
		writeError(w, r, err)
		return
	}
	wo.ID = id
	writeJSON(w, http.StatusCreated, wo)
}

func (s *Server) handleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var wo models.Workout
	if err := decodeBody(r, &wo); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := validateWorkout(&wo); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	wo.ID = id

	if err := s.repo.UpdateWorkout(r.Context(), &wo); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wo)
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := s.repo.DeleteWorkout(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWorkoutExercises(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	details, err := s.repo.GetWorkoutExercises(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// Workout exercise links

func validateWorkoutExercise(we *models.WorkoutExercise) error {
	if we.WorkoutID <= 0 || we.ExerciseID <= 0 {
		return fmt.Errorf("workout_id and exercise_id are required")
	}
	if strings.TrimSpace(we.Sets) == "" {
		return fmt.Errorf("sets is required")
	}
	if we.Rest < 0 {
		return fmt.Errorf("rest cannot be negative")
	}
	if we.SeriesType == "" {
		we.SeriesType = models.SeriesRegular
	}
	if !models.IsKnownSeriesType(string(we.SeriesType)) {
		return fmt.Errorf("unknown series type %q", we.SeriesType)
	}
	return nil
}

func (s *Server) handleListWorkoutExercises(w http.ResponseWriter, r *http.Request) {
	links, err := s.repo.ListWorkoutExercises(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (s *Server) handleGetWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	we, err := s.repo.GetWorkoutExercise(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, we)
}

func (s *Server) handleCreateWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	var we models.WorkoutExercise
	if err := decodeBody(r, &we); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := validateWorkoutExercise(&we); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	we.ID = 0

	id, err := s.repo.CreateWorkoutExercise(r.Context(), &we)
	if err != nil {
		writeError(w, r, err)
		return
	}
	we.ID = id
	writeJSON(w, http.StatusCreated, we)
}

func (s *Server) handleUpdateWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var we models.WorkoutExercise
	if err := decodeBody(r, &we); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := validateWorkoutExercise(&we); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	we.ID = id

	if err := s.repo.UpdateWorkoutExercise(r.Context(), &we); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, we)
}

func (s *Server) handleDeleteWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := s.repo.DeleteWorkoutExercise(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Progress

func validateProgress(p *models.Progress) error {
	if p.ExerciseID <= 0 {
		return fmt.Errorf("exercise_id is required")
	}
	if p.Reps <= 0 {
		return fmt.Errorf("reps must be positive")
	}
	if p.Weight < 0 {
		return fmt.Errorf("weight cannot be negative")
	}
	if p.Date == "" {
		p.Date = time.Now().Format(models.DateLayout)
	}
	if _, err := time.Parse(models.DateLayout, p.Date); err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", p.Date)
	}
	return nil
}

func (s *Server) handleListProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := s.repo.ListProgress(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (s *Server) handleRecentProgress(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", defaultRecentLimit)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	entries, err := s.repo.GetRecentProgress(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	p, err := s.repo.GetProgress(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCreateProgress(w http.ResponseWriter, r *http.Request) {
	var p models.Progress
	if err := decodeBody(r, &p); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := validateProgress(&p); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	p.ID = 0

	id, err := s.repo.CreateProgress(r.Context(), &p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	p.ID = id
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var p models.Progress
	if err := decodeBody(r, &p); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := validateProgress(&p); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	p.ID = id

	if err := s.repo.UpdateProgress(r.Context(), &p); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := s.repo.DeleteProgress(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
