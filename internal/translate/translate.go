// ABOUTME: Spanish to English exercise-name translation for catalogue lookups.
// ABOUTME: Exact dictionary match plus word-overlap suggestions.
package translate

import "strings"

type entry struct {
	spanish string
	english string
}

// dictionary keeps insertion order so suggestions come back in a stable order.
var dictionary = []entry{
	// Chest
	{"press de banca", "bench press"},
	{"press inclinado", "incline bench press"},
	{"press declinado", "decline bench press"},
	{"aperturas", "chest fly"},
	{"fondos", "chest dips"},
	{"pullover", "pullover"},

	// Back
	{"dominadas", "pull ups"},
	{"jalones al pecho", "lat pulldown"},
	{"remo", "row"},
	{"remo con barra", "barbell row"},
	{"peso muerto", "deadlift"},
	{"hiperextensiones", "back extension"},

	// Shoulders
	{"elevaciones laterales", "lateral raises"},
	{"press militar", "military press"},
	{"press de hombros", "shoulder press"},
	{"elevaciones frontales", "front raises"},
	{"elevaciones posteriores", "rear delt fly"},
	{"encogimientos de hombros", "shrugs"},

	// Arms
	{"curl de bíceps", "bicep curl"},
	{"curl martillo", "hammer curl"},
	{"curl concentrado", "concentration curl"},
	{"extensiones de tríceps", "tricep extension"},
	{"fondos para tríceps", "tricep dips"},
	{"press francés", "skull crusher"},

	// Legs
	{"sentadillas", "squats"},
	{"prensa de piernas", "leg press"},
	{"extensiones de piernas", "leg extension"},
	{"curl de piernas", "leg curl"},
	{"zancadas", "lunges"},
	{"peso muerto rumano", "romanian deadlift"},
	{"elevaciones de pantorrilla", "calf raises"},

	// Core
	{"abdominales", "crunches"},
	{"plancha", "plank"},
	{"elevaciones de piernas", "leg raises"},
	{"mountain climbers", "mountain climbers"},
	{"rueda abdominal", "ab wheel rollout"},

	// Conditioning
	{"burpees", "burpees"},
	{"saltos al cajón", "box jumps"},
	{"flexiones", "push ups"},
	{"sentadillas con salto", "jump squats"},
	{"escaladores", "mountain climbers"},
}

var lookup = func() map[string]string {
	m := make(map[string]string, len(dictionary))
	for _, e := range dictionary {
		m[e.spanish] = e.english
	}
	return m
}()

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ExerciseName returns the English name for a Spanish exercise name, or the
// lowercased, trimmed input when the dictionary has no entry.
func ExerciseName(name string) string {
	n := normalize(name)
	if en, ok := lookup[n]; ok {
		return en
	}
	return n
}

// Similar returns the English names of every dictionary entry whose Spanish
// key contains one of the query's words longer than three characters.
// Each English name appears once.
func Similar(name string) []string {
	n := normalize(name)
	if n == "" {
		return nil
	}

	var words []string
	for _, w := range strings.Fields(n) {
		if len([]rune(w)) > 3 {
			words = append(words, w)
		}
	}

	var matches []string
	seen := make(map[string]bool)
	for _, e := range dictionary {
		for _, w := range words {
			if strings.Contains(e.spanish, w) {
				if !seen[e.english] {
					seen[e.english] = true
					matches = append(matches, e.english)
				}
				break
			}
		}
	}
	return matches
}

// Len returns the number of dictionary entries.
func Len() int {
	return len(dictionary)
}
