// ABOUTME: User display preferences kept in the KV store.
// ABOUTME: Reads fall back to defaults; updates merge into the stored value.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/gymtrack/internal/kv"
	"github.com/rs/zerolog/log"
)

// Key is the KV key holding the user's preferences.
const Key = kv.PrefPrefix + "user"

// Backend persists the encoded preferences. *kv.Store satisfies it.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
}

// Preferences are the user's background choices. Nil means nothing selected.
type Preferences struct {
	SelectedAnime     *string `json:"selected_anime"`
	SelectedWallpaper *string `json:"selected_wallpaper"`
}

// Patch is a partial update. Nil fields are left unchanged; a pointer to ""
// clears the field.
type Patch struct {
	SelectedAnime     *string
	SelectedWallpaper *string
}

// Store reads and writes Preferences.
type Store struct {
	backend Backend
}

// New creates a Store over backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Get returns the stored preferences, or empty preferences if none are
// stored or they cannot be read.
func (s *Store) Get(ctx context.Context) Preferences {
	raw, err := s.backend.Get(Key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Warn().Err(err).Msg("Read preferences")
		}
		return Preferences{}
	}

	var p Preferences
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Warn().Err(err).Msg("Decode preferences")
		return Preferences{}
	}
	return p
}

// Update merges patch into the stored preferences and writes the result.
func (s *Store) Update(ctx context.Context, patch Patch) (Preferences, error) {
	p := s.Get(ctx)
	if patch.SelectedAnime != nil {
		p.SelectedAnime = emptyToNil(*patch.SelectedAnime)
	}
	if patch.SelectedWallpaper != nil {
		p.SelectedWallpaper = emptyToNil(*patch.SelectedWallpaper)
	}

	data, err := json.Marshal(p)
	if err != nil {
		return p, fmt.Errorf("encode preferences: %w", err)
	}
	if err := s.backend.Set(Key, data); err != nil {
		return p, fmt.Errorf("update preferences: %w", err)
	}
	return p, nil
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
