// ABOUTME: HTTP API server for the gym store.
// ABOUTME: Routes JSON endpoints under /api through chi with CORS and request logging.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/harperreed/gymtrack/internal/exercisedb"
	"github.com/harperreed/gymtrack/internal/gdrive"
	"github.com/harperreed/gymtrack/internal/prefs"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

// Services are the collaborators beyond the repository. Nil services make
// their endpoints answer 503.
type Services struct {
	Prefs   *prefs.Store
	Lookup  *exercisedb.Client
	Images  *gdrive.Client
	Folders []string
}

// Options configure the HTTP layer.
type Options struct {
	AllowedOrigins []string
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	repo   storage.Repository
	svc    Services
	opts   Options
	router chi.Router
}

// New creates a Server with all routes configured.
func New(repo storage.Repository, svc Services, opts Options) *Server {
	s := &Server{
		repo:   repo,
		svc:    svc,
		opts:   opts,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.corsHandler().Handler)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/stats", s.handleStats)

		r.Route("/exercises", func(r chi.Router) {
			r.Get("/", s.handleListExercises)
			r.Post("/", s.handleCreateExercise)
			r.Get("/{id}", s.handleGetExercise)
			r.Put("/{id}", s.handleUpdateExercise)
			r.Delete("/{id}", s.handleDeleteExercise)
			r.Get("/{id}/workouts", s.handleExerciseWorkouts)
			r.Get("/{id}/progress", s.handleExerciseProgress)
		})

		r.Route("/workouts", func(r chi.Router) {
			r.Get("/", s.handleListWorkouts)
			r.Post("/", s.handleCreateWorkout)
			r.Get("/{id}", s.handleGetWorkout)
			r.Put("/{id}", s.handleUpdateWorkout)
			r.Delete("/{id}", s.handleDeleteWorkout)
			r.Get("/{id}/exercises", s.handleWorkoutExercises)
		})

		r.Route("/workout-exercises", func(r chi.Router) {
			r.Get("/", s.handleListWorkoutExercises)
			r.Post("/", s.handleCreateWorkoutExercise)
			r.Get("/{id}", s.handleGetWorkoutExercise)
			r.Put("/{id}", s.handleUpdateWorkoutExercise)
			r.Delete("/{id}", s.handleDeleteWorkoutExercise)
		})

		r.Route("/progress", func(r chi.Router) {
			r.Get("/", s.handleListProgress)
			r.Post("/", s.handleCreateProgress)
			r.Get("/recent", s.handleRecentProgress)
			r.Get("/{id}", s.handleGetProgress)
			r.Put("/{id}", s.handleUpdateProgress)
			r.Delete("/{id}", s.handleDeleteProgress)
		})

		r.Get("/translate", s.handleTranslate)
		r.Get("/lookup/exercises/{id}", s.handleLookupExercise)
		r.Get("/lookup/search", s.handleLookupSearch)
		r.Get("/images", s.handleImages)
		r.Get("/preferences", s.handleGetPreferences)
		r.Put("/preferences", s.handleUpdatePreferences)
	})
}

func (s *Server) corsHandler() *cors.Cors {
	origins := s.opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP API listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info().Msg("HTTP API stopped")
	return nil
}
