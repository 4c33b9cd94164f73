// ABOUTME: Tests for the HTTP API.
// ABOUTME: Drives the chi router with httptest against a seeded database.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/harperreed/gymtrack/internal/exercisedb"
	"github.com/harperreed/gymtrack/internal/gdrive"
	"github.com/harperreed/gymtrack/internal/kv"
	"github.com/harperreed/gymtrack/internal/models"
	"github.com/harperreed/gymtrack/internal/prefs"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "gymtrack.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.SeedIfEmpty(context.Background(), storage.DefaultSeed())
	require.NoError(t, err)
	return db
}

func newTestServer(t *testing.T, svc Services) (*Server, *storage.DB) {
	t.Helper()
	db := setupTestDB(t)
	return New(db, svc, Options{}), db
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v
}

func TestHealthAndStats(t *testing.T) {
	s, _ := newTestServer(t, Services{})

	rec := do(t, s, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	counts := decode[storage.RowCounts](t, rec)
	assert.Equal(t, storage.RowCounts{Exercises: 16, Workouts: 3, WorkoutExercises: 17, Progress: 7}, counts)
}

func TestExerciseCRUD(t *testing.T) {
	s, _ := newTestServer(t, Services{})

	rec := do(t, s, http.MethodPost, "/api/exercises", models.Exercise{Name: "Face Pull", MuscleGroup: "Shoulders", ExerciseType: "Cable"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[models.Exercise](t, rec)
	assert.Equal(t, int64(17), created.ID)

	rec = do(t, s, http.MethodGet, "/api/exercises/17", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Face Pull", decode[models.Exercise](t, rec).Name)

	rec = do(t, s, http.MethodPut, "/api/exercises/17", models.Exercise{Name: "Rope Face Pull", MuscleGroup: "Shoulders", ExerciseType: "Cable"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rope Face Pull", decode[models.Exercise](t, rec).Name)

	rec = do(t, s, http.MethodDelete, "/api/exercises/17", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/exercises/17", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/exercises", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Exercise](t, rec), 16)
}

func TestErrorStatuses(t *testing.T) {
	s, _ := newTestServer(t, Services{})

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"bad id", http.MethodGet, "/api/exercises/abc", nil, http.StatusBadRequest},
		{"zero id", http.MethodGet, "/api/workouts/0", nil, http.StatusBadRequest},
		{"missing exercise", http.MethodGet, "/api/exercises/9999", nil, http.StatusNotFound},
		{"update missing workout", http.MethodPut, "/api/workouts/9999", models.Workout{Name: "x", Day: "Monday"}, http.StatusNotFound},
		{"delete missing is a no-op", http.MethodDelete, "/api/progress/9999", nil, http.StatusNoContent},
		{"exercise without name", http.MethodPost, "/api/exercises", models.Exercise{MuscleGroup: "Chest"}, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/api/workouts", map[string]string{"title": "x"}, http.StatusBadRequest},
		{"link to missing workout", http.MethodPost, "/api/workout-exercises",
			models.WorkoutExercise{WorkoutID: 9999, ExerciseID: 1, Sets: "3"}, http.StatusConflict},
		{"progress for missing exercise", http.MethodPost, "/api/progress",
			models.Progress{ExerciseID: 9999, Reps: 5, Date: "2025-02-01"}, http.StatusConflict},
		{"progress with bad date", http.MethodPost, "/api/progress",
			models.Progress{ExerciseID: 1, Reps: 5, Date: "01/02/2025"}, http.StatusBadRequest},
		{"unknown series type", http.MethodPost, "/api/workout-exercises",
			models.WorkoutExercise{WorkoutID: 1, ExerciseID: 1, Sets: "3", SeriesType: "giant_set"}, http.StatusBadRequest},
		{"bad order", http.MethodGet, "/api/exercises/4/progress?order=sideways", nil, http.StatusBadRequest},
		{"bad limit", http.MethodGet, "/api/progress/recent?limit=-1", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestWorkoutRoutes(t *testing.T) {
	s, _ := newTestServer(t, Services{})

	rec := do(t, s, http.MethodGet, "/api/workouts?day=SATURDAY", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	byDay := decode[[]models.Workout](t, rec)
	require.Len(t, byDay, 1)
	assert.Equal(t, "Lower Body Workout", byDay[0].Name)

	rec = do(t, s, http.MethodGet, "/api/workouts/2/exercises", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	details := decode[[]models.WorkoutExerciseDetail](t, rec)
	require.Len(t, details, 10)
	for i, d := range details {
		assert.Equal(t, int64(i+4), d.ExerciseID)
	}
	assert.Equal(t, "Bench Press", details[0].Name)

	rec = do(t, s, http.MethodGet, "/api/exercises/2/workouts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Workout](t, rec), 2)

	rec = do(t, s, http.MethodDelete, "/api/workouts/1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/workout-exercises", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.WorkoutExercise](t, rec), 14)
}

func TestWorkoutExerciseDefaultsToRegular(t *testing.T) {
	s, _ := newTestServer(t, Services{})

	rec := do(t, s, http.MethodPost, "/api/workout-exercises", models.WorkoutExercise{WorkoutID: 3, ExerciseID: 9, Sets: "3", Reps: "8", Rest: 90})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[models.WorkoutExercise](t, rec)
	assert.Equal(t, models.SeriesRegular, created.SeriesType)

	rec = do(t, s, http.MethodGet, "/api/workout-exercises/18", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", decode[models.WorkoutExercise](t, rec).Sets)
}

func TestProgressRoutes(t *testing.T) {
	s, _ := newTestServer(t, Services{})

	rec := do(t, s, http.MethodPost, "/api/progress", models.Progress{ExerciseID: 4, Weight: 85, Reps: 3, Date: "2025-01-20"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[models.Progress](t, rec)

	rec = do(t, s, http.MethodGet, "/api/exercises/4/progress?order=desc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	desc := decode[[]models.Progress](t, rec)
	require.Len(t, desc, 3)
	assert.Equal(t, created.ID, desc[0].ID)

	rec = do(t, s, http.MethodGet, "/api/exercises/4/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	asc := decode[[]models.Progress](t, rec)
	assert.Equal(t, "2025-01-06", asc[0].Date)

	rec = do(t, s, http.MethodGet, "/api/progress/recent?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	recent := decode[[]models.ProgressEntry](t, rec)
	require.Len(t, recent, 2)
	assert.Equal(t, "Bench Press", recent[0].ExerciseName)

	rec = do(t, s, http.MethodGet, "/api/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Progress](t, rec), 8)
}

func TestProgressDefaultsDate(t *testing.T) {
	s, _ := newTestServer(t, Services{})

	rec := do(t, s, http.MethodPost, "/api/progress", models.Progress{ExerciseID: 9, Reps: 10})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, decode[models.Progress](t, rec).Date)
}

func TestTranslate(t *testing.T) {
	s, _ := newTestServer(t, Services{})

	rec := do(t, s, http.MethodGet, "/api/translate?name=Sentadillas", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tr := decode[translation](t, rec)
	assert.Equal(t, "squats", tr.English)

	rec = do(t, s, http.MethodGet, "/api/translate", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServicesUnavailable(t *testing.T) {
	s, _ := newTestServer(t, Services{})

	for _, path := range []string{"/api/lookup/exercises/0001", "/api/lookup/search?q=curl", "/api/images", "/api/preferences"} {
		rec := do(t, s, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
}

func TestLookupRoutes(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/exercises/exercise/0025":
			_ = json.NewEncoder(w).Encode(exercisedb.Exercise{ID: "0025", Name: "barbell bench press"})
		case "/exercises/name/curl":
			_ = json.NewEncoder(w).Encode([]exercisedb.Exercise{{ID: "0031", Name: "barbell curl"}})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "no such exercise"})
		}
	}))
	defer upstream.Close()

	lookup := exercisedb.NewClient(exercisedb.Config{APIKey: "k", BaseURL: upstream.URL}, nil)
	s, _ := newTestServer(t, Services{Lookup: lookup})

	rec := do(t, s, http.MethodGet, "/api/lookup/exercises/0025", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "barbell bench press", decode[exercisedb.Exercise](t, rec).Name)

	rec = do(t, s, http.MethodGet, "/api/lookup/exercises/12", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/lookup/exercises/9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/lookup/search?q=Curl", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]exercisedb.Exercise](t, rec), 1)

	rec = do(t, s, http.MethodGet, "/api/lookup/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type stubLister struct{}

func (stubLister) ListImages(_ context.Context, folderID string) ([]gdrive.File, error) {
	return []gdrive.File{{ID: folderID + "-a"}, {ID: folderID + "-b"}}, nil
}

func TestImages(t *testing.T) {
	images := gdrive.NewClient(stubLister{}, nil)
	s, _ := newTestServer(t, Services{
		Images:  images,
		Folders: []string{"https://drive.google.com/drive/folders/abc123"},
	})

	rec := do(t, s, http.MethodGet, "/api/images", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string][]string](t, rec)
	assert.Equal(t, []string{gdrive.ThumbnailURL("abc123-a"), gdrive.ThumbnailURL("abc123-b")}, body["images"])
}

func TestPreferences(t *testing.T) {
	store, err := kv.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	s, _ := newTestServer(t, Services{Prefs: prefs.New(store)})

	rec := do(t, s, http.MethodPut, "/api/preferences", map[string]string{"selected_wallpaper": "mountains"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/preferences", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[prefs.Preferences](t, rec)
	require.NotNil(t, p.SelectedWallpaper)
	assert.Equal(t, "mountains", *p.SelectedWallpaper)
	assert.Nil(t, p.SelectedAnime)

	rec = do(t, s, http.MethodPut, "/api/preferences", map[string]string{"selected_wallpaper": ""})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[prefs.Preferences](t, rec).SelectedWallpaper)
}

func TestCORSPreflight(t *testing.T) {
	db := setupTestDB(t)
	s := New(db, Services{}, Options{AllowedOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/exercises", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
