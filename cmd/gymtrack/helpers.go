// ABOUTME: Formatting and argument parsing helpers shared by the CLI commands.
// ABOUTME: Covers ids, dates, and column padding for list output.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/harperreed/gymtrack/internal/models"
)

func parseID(s, what string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id: %s", what, s)
	}
	return id, nil
}

// parseDate accepts the formats of parseTime and returns the calendar date.
func parseDate(s string) (string, error) {
	switch strings.ToLower(s) {
	case "today":
		return time.Now().Format(models.DateLayout), nil
	case "yesterday":
		return time.Now().AddDate(0, 0, -1).Format(models.DateLayout), nil
	}
	t, err := parseTime(s)
	if err != nil {
		return "", err
	}
	return t.Format(models.DateLayout), nil
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		models.DateLayout,
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func formatWeight(w float64) string {
	if w == 0 {
		return "BW"
	}
	return strconv.FormatFloat(w, 'f', -1, 64) + " kg"
}

// truncate and padRight count runes so accented names keep their width.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
