// ABOUTME: HTTP handlers for translation, ExerciseDB lookups, Drive images, and preferences.
// ABOUTME: Endpoints answer 503 when the backing service is not configured.
package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/harperreed/gymtrack/internal/prefs"
	"github.com/harperreed/gymtrack/internal/translate"
)

const defaultSearchLimit = 10

type translation struct {
	Name    string   `json:"name"`
	English string   `json:"english"`
	Similar []string `json:"similar"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		writeBadRequest(w, "name parameter required")
		return
	}
	similar := translate.Similar(name)
	if similar == nil {
		similar = []string{}
	}
	writeJSON(w, http.StatusOK, translation{
		Name:    name,
		English: translate.ExerciseName(name),
		Similar: similar,
	})
}

func (s *Server) handleLookupExercise(w http.ResponseWriter, r *http.Request) {
	if s.svc.Lookup == nil {
		writeError(w, r, fmt.Errorf("exercisedb: %w", errUnavailable))
		return
	}
	e, err := s.svc.Lookup.GetExercise(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleLookupSearch(w http.ResponseWriter, r *http.Request) {
	if s.svc.Lookup == nil {
		writeError(w, r, fmt.Errorf("exercisedb: %w", errUnavailable))
		return
	}
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		writeBadRequest(w, "q parameter required")
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	limit, err := queryInt(r, "limit", defaultSearchLimit)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	results, err := s.svc.Lookup.SearchExercises(r.Context(), q, offset, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleImages(w http.ResponseWriter, r *http.Request) {
	if s.svc.Images == nil {
		writeError(w, r, fmt.Errorf("google drive: %w", errUnavailable))
		return
	}
	urls, err := s.svc.Images.FolderImages(r.Context(), s.svc.Folders)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if urls == nil {
		urls = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"images": urls})
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	if s.svc.Prefs == nil {
		writeError(w, r, fmt.Errorf("preferences: %w", errUnavailable))
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Prefs.Get(r.Context()))
}

type preferencesPatch struct {
	SelectedAnime     *string `json:"selected_anime"`
	SelectedWallpaper *string `json:"selected_wallpaper"`
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if s.svc.Prefs == nil {
		writeError(w, r, fmt.Errorf("preferences: %w", errUnavailable))
		return
	}
	var patch preferencesPatch
	if err := decodeBody(r, &patch); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	p, err := s.svc.Prefs.Update(r.Context(), prefs.Patch{
		SelectedAnime:     patch.SelectedAnime,
		SelectedWallpaper: patch.SelectedWallpaper,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
