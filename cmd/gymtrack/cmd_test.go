// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Commands run against a temp data directory and are verified through storage.
package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/gymtrack/internal/kv"
	"github.com/harperreed/gymtrack/internal/models"
	"github.com/harperreed/gymtrack/internal/prefs"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "date and time with space", input: "2025-01-31 08:30"},
		{name: "date and time with T", input: "2025-01-31T08:30"},
		{name: "date only", input: "2025-01-31"},
		{name: "RFC3339", input: "2025-01-31T08:30:00Z"},
		{name: "RFC3339 with offset", input: "2025-01-31T08:30:00+05:00"},
		{name: "invalid format", input: "31-01-2025", wantErr: true},
		{name: "invalid random string", input: "not a date", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
				return
			}
			if result.IsZero() {
				t.Errorf("parseTime(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	today := time.Now().Format(models.DateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(models.DateLayout)

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "2025-06-15", want: "2025-06-15"},
		{input: "2025-06-15 18:30", want: "2025-06-15"},
		{input: "today", want: today},
		{input: "Yesterday", want: yesterday},
		{input: "15/06/2025", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseDate(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseDate(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDate(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, err := parseID("42", "exercise"); err != nil || id != 42 {
		t.Errorf("parseID(42) = %d, %v", id, err)
	}
	for _, bad := range []string{"0", "-3", "abc", ""} {
		if _, err := parseID(bad, "exercise"); err == nil {
			t.Errorf("parseID(%q) expected error", bad)
		}
	}
}

func TestParseResult(t *testing.T) {
	weight, reps, err := parseResult("82.5", "5")
	if err != nil {
		t.Fatalf("parseResult failed: %v", err)
	}
	if weight != 82.5 || reps != 5 {
		t.Errorf("parseResult = %v, %d", weight, reps)
	}

	if _, _, err := parseResult("0", "12"); err != nil {
		t.Errorf("bodyweight entry rejected: %v", err)
	}

	bad := [][2]string{{"heavy", "5"}, {"-1", "5"}, {"80", "0"}, {"80", "five"}}
	for _, b := range bad {
		if _, _, err := parseResult(b[0], b[1]); err == nil {
			t.Errorf("parseResult(%q, %q) expected error", b[0], b[1])
		}
	}
}

func TestCheckLink(t *testing.T) {
	if err := checkLink("1TS + 2BO", 180, "top_set_back_off"); err != nil {
		t.Errorf("valid link rejected: %v", err)
	}
	if err := checkLink(" ", 60, "regular"); err == nil {
		t.Error("expected error for empty sets")
	}
	if err := checkLink("3", -1, "regular"); err == nil {
		t.Error("expected error for negative rest")
	}
	if err := checkLink("3", 60, "giant_set"); err == nil {
		t.Error("expected error for unknown series type")
	}
}

func TestFormatWeight(t *testing.T) {
	tests := map[float64]string{
		0:    "BW",
		82.5: "82.5 kg",
		100:  "100 kg",
	}
	for in, want := range tests {
		if got := formatWeight(in); got != want {
			t.Errorf("formatWeight(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "short string no truncation", input: "hello", maxLen: 10, want: "hello"},
		{name: "exact length", input: "hello", maxLen: 5, want: "hello"},
		{name: "needs truncation", input: "Incline Dumbbell Press", maxLen: 10, want: "Incline..."},
		{name: "empty string", input: "", maxLen: 10, want: ""},
		{name: "very short maxLen", input: "hello", maxLen: 3, want: "..."},
		{name: "multi-byte runes", input: "curl de bíceps", maxLen: 12, want: "curl de b..."},
		{name: "cut after accent", input: "curl de bíceps", maxLen: 13, want: "curl de bí..."},
		{name: "accented fits", input: "curl de bíceps", maxLen: 14, want: "curl de bíceps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{name: "needs padding", input: "hi", length: 5, want: "hi   "},
		{name: "exact length", input: "hello", length: 5, want: "hello"},
		{name: "longer than length", input: "hello world", length: 5, want: "hello world"},
		{name: "empty string", input: "", length: 3, want: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.input, tt.length); got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestRootCmd(t *testing.T) {
	if rootCmd.Use != "gymtrack" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "gymtrack")
	}
	for _, name := range []string{"config", "data-dir", "log-level", "no-seed"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected --%s persistent flag", name)
		}
	}
}

func TestSubcommands(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		want []string
	}{
		{rootCmd, []string{"exercise", "workout", "progress", "lookup", "images", "prefs", "export", "import", "stats", "seed", "reset", "serve", "maintenance", "mcp"}},
		{exerciseCmd, []string{"list", "show", "add", "edit", "delete"}},
		{workoutCmd, []string{"list", "show", "add", "edit", "delete", "add-exercise", "edit-exercise", "remove-exercise"}},
		{progressCmd, []string{"list", "recent", "add", "edit", "delete"}},
		{lookupCmd, []string{"translate", "get", "search"}},
	}

	for _, tt := range tests {
		names := make(map[string]bool)
		for _, c := range tt.cmd.Commands() {
			names[c.Name()] = true
		}
		for _, want := range tt.want {
			if !names[want] {
				t.Errorf("%s: missing subcommand %q", tt.cmd.Name(), want)
			}
		}
	}
}

func TestFlagDefaults(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		flag string
		want string
	}{
		{progressRecentCmd, "limit", "20"},
		{workoutAddExerciseCmd, "series", "regular"},
		{workoutAddExerciseCmd, "rest", "90"},
		{workoutAddExerciseCmd, "sets", "3"},
		{lookupSearchCmd, "limit", "10"},
		{serveCmd, "addr", ""},
	}
	for _, tt := range tests {
		f := tt.cmd.Flags().Lookup(tt.flag)
		if f == nil {
			t.Errorf("%s: missing --%s", tt.cmd.Name(), tt.flag)
			continue
		}
		if f.DefValue != tt.want {
			t.Errorf("%s --%s default = %q, want %q", tt.cmd.Name(), tt.flag, f.DefValue, tt.want)
		}
	}
}

func TestCommandAliases(t *testing.T) {
	tests := map[*cobra.Command]string{
		exerciseCmd:       "ex",
		workoutCmd:        "w",
		progressCmd:       "log",
		exerciseDeleteCmd: "rm",
	}
	for cmd, alias := range tests {
		found := false
		for _, a := range cmd.Aliases {
			if a == alias {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: missing alias %q", cmd.Name(), alias)
		}
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	want := map[string]bool{"json": true, "yaml": true, "markdown": true}
	if len(exportCmd.ValidArgs) != len(want) {
		t.Fatalf("ValidArgs = %v", exportCmd.ValidArgs)
	}
	for _, a := range exportCmd.ValidArgs {
		if !want[a] {
			t.Errorf("unexpected valid arg %q", a)
		}
	}
}

func TestSkipStoresAnnotations(t *testing.T) {
	for _, cmd := range []*cobra.Command{resetCmd, lookupTranslateCmd} {
		if cmd.Annotations[skipStores] == "" {
			t.Errorf("%s should run without opening the stores", cmd.Name())
		}
	}
}

// resetFlags restores every flag to its default so tests do not leak
// values or Changed state into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// setupTestCLI points the CLI at a fresh data and config directory and
// returns the data directory.
func setupTestCLI(t *testing.T) string {
	t.Helper()

	dataDir := t.TempDir()
	t.Setenv("GYMTRACK_DATA_DIR", dataDir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GYMTRACK_RAPIDAPI_KEY", "")
	t.Setenv("GYMTRACK_GOOGLE_DRIVE_API_KEY", "")
	t.Setenv("GYMTRACK_LOG_LEVEL", "")

	resetFlags(rootCmd)
	t.Cleanup(func() {
		_ = closeStores()
		resetFlags(rootCmd)
	})
	return dataDir
}

func run(args ...string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	_ = closeStores()
	resetFlags(rootCmd)
	return err
}

func openTestDB(t *testing.T, dataDir string) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(dataDir, "gymtrack.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func counts(t *testing.T, db *storage.DB) *storage.RowCounts {
	t.Helper()
	c, err := db.CountRows(t.Context())
	if err != nil {
		t.Fatalf("CountRows failed: %v", err)
	}
	return c
}

func TestFirstRunSeeds(t *testing.T) {
	dataDir := setupTestCLI(t)

	if err := run("stats"); err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	c := counts(t, openTestDB(t, dataDir))
	if c.Exercises != 16 || c.Workouts != 3 || c.WorkoutExercises != 17 || c.Progress != 7 {
		t.Errorf("unexpected seeded counts: %+v", c)
	}
}

func TestNoSeedFlag(t *testing.T) {
	dataDir := setupTestCLI(t)

	if err := run("--no-seed", "stats"); err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	c := counts(t, openTestDB(t, dataDir))
	if c.Exercises != 0 || c.Workouts != 0 {
		t.Errorf("expected an empty database, got %+v", c)
	}
}

func TestDeletedDefaultsStayDeleted(t *testing.T) {
	dataDir := setupTestCLI(t)

	if err := run("exercise", "delete", "1"); err != nil {
		t.Fatalf("exercise delete failed: %v", err)
	}
	if err := run("exercise", "list"); err != nil {
		t.Fatalf("exercise list failed: %v", err)
	}

	db := openTestDB(t, dataDir)
	if _, err := db.GetExercise(t.Context(), 1); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("deleted exercise came back: %v", err)
	}
	if c := counts(t, db); c.Exercises != 15 {
		t.Errorf("Exercises = %d, want 15", c.Exercises)
	}
}

func TestExerciseAddAndEdit(t *testing.T) {
	dataDir := setupTestCLI(t)

	err := run("--no-seed", "exercise", "add", "Face Pull", "--muscle", "Shoulders", "--type", "Cable")
	if err != nil {
		t.Fatalf("exercise add failed: %v", err)
	}
	if err := run("--no-seed", "exercise", "edit", "1", "--name", "Face Pulls"); err != nil {
		t.Fatalf("exercise edit failed: %v", err)
	}

	e, err := openTestDB(t, dataDir).GetExercise(t.Context(), 1)
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if e.Name != "Face Pulls" {
		t.Errorf("Name = %q, want Face Pulls", e.Name)
	}
	if e.MuscleGroup != "Shoulders" || e.ExerciseType != "Cable" {
		t.Errorf("edit changed fields it was not given: %+v", e)
	}
}

func TestExerciseAddEmptyName(t *testing.T) {
	setupTestCLI(t)

	if err := run("--no-seed", "exercise", "add", "  "); err == nil {
		t.Error("expected error for empty exercise name")
	}
}

func TestExerciseShowNotFound(t *testing.T) {
	setupTestCLI(t)

	err := run("--no-seed", "exercise", "show", "99")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestWorkoutAddExercise(t *testing.T) {
	dataDir := setupTestCLI(t)

	if err := run("workout", "add", "Pull Day", "--day", "Friday"); err != nil {
		t.Fatalf("workout add failed: %v", err)
	}

	db := openTestDB(t, dataDir)
	workouts, err := db.GetWorkoutsByDay(t.Context(), "Friday")
	if err != nil || len(workouts) != 1 {
		t.Fatalf("GetWorkoutsByDay = %v, %v", workouts, err)
	}
	id := workouts[0].ID
	_ = db.Close()

	err = run("workout", "add-exercise", strconv.FormatInt(id, 10), "9", "--sets", "4", "--reps", "8-10", "--rest", "120")
	if err != nil {
		t.Fatalf("workout add-exercise failed: %v", err)
	}

	details, err := openTestDB(t, dataDir).GetWorkoutExercises(t.Context(), id)
	if err != nil {
		t.Fatalf("GetWorkoutExercises failed: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(details))
	}
	d := details[0]
	if d.Name != "Pull Up" || d.Sets != "4" || d.Reps != "8-10" || d.Rest != 120 {
		t.Errorf("unexpected link: %+v", d)
	}
	if d.SeriesType != models.SeriesRegular {
		t.Errorf("SeriesType = %q, want regular", d.SeriesType)
	}
}

func TestWorkoutAddExerciseValidation(t *testing.T) {
	dataDir := setupTestCLI(t)

	if err := run("workout", "add-exercise", "1", "4", "--series", "giant_set"); err == nil {
		t.Error("expected error for unknown series type")
	}
	err := run("workout", "add-exercise", "99", "4")
	if !errors.Is(err, storage.ErrForeignKey) {
		t.Errorf("expected ErrForeignKey for missing workout, got %v", err)
	}

	if c := counts(t, openTestDB(t, dataDir)); c.WorkoutExercises != 17 {
		t.Errorf("WorkoutExercises = %d, want 17", c.WorkoutExercises)
	}
}

func TestWorkoutEditExerciseKeepsUnchangedFields(t *testing.T) {
	dataDir := setupTestCLI(t)

	if err := run("workout", "edit-exercise", "4", "--rest", "200"); err != nil {
		t.Fatalf("workout edit-exercise failed: %v", err)
	}

	we, err := openTestDB(t, dataDir).GetWorkoutExercise(t.Context(), 4)
	if err != nil {
		t.Fatalf("GetWorkoutExercise failed: %v", err)
	}
	if we.Rest != 200 {
		t.Errorf("Rest = %d, want 200", we.Rest)
	}
	if we.Sets != "1TS + 2BO" || we.SeriesType != models.SeriesTopSetBackOff {
		t.Errorf("edit changed fields it was not given: %+v", we)
	}
	if we.Notes == nil {
		t.Error("notes were cleared")
	}
}

func TestWorkoutDeleteCascades(t *testing.T) {
	dataDir := setupTestCLI(t)

	if err := run("workout", "delete", "1"); err != nil {
		t.Fatalf("workout delete failed: %v", err)
	}

	db := openTestDB(t, dataDir)
	details, err := db.GetWorkoutExercises(t.Context(), 1)
	if err != nil {
		t.Fatalf("GetWorkoutExercises failed: %v", err)
	}
	if len(details) != 0 {
		t.Errorf("expected links to be deleted, got %d", len(details))
	}
	if c := counts(t, db); c.Workouts != 2 || c.WorkoutExercises != 14 {
		t.Errorf("unexpected counts after delete: %+v", c)
	}
}

func TestProgressAddAndEdit(t *testing.T) {
	dataDir := setupTestCLI(t)

	err := run("progress", "add", "4", "85", "3", "--date", "2025-01-20", "--notes", "grinder")
	if err != nil {
		t.Fatalf("progress add failed: %v", err)
	}

	db := openTestDB(t, dataDir)
	entries, err := db.GetExerciseProgress(t.Context(), 4, storage.Descending)
	if err != nil {
		t.Fatalf("GetExerciseProgress failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	latest := entries[0]
	if latest.Date != "2025-01-20" || latest.Weight != 85 || latest.Reps != 3 {
		t.Errorf("unexpected entry: %+v", latest)
	}
	if latest.Notes == nil || *latest.Notes != "grinder" {
		t.Error("expected notes to be stored")
	}
	_ = db.Close()

	if err := run("progress", "edit", strconv.FormatInt(latest.ID, 10), "--reps", "4", "--notes", ""); err != nil {
		t.Fatalf("progress edit failed: %v", err)
	}

	p, err := openTestDB(t, dataDir).GetProgress(t.Context(), latest.ID)
	if err != nil {
		t.Fatalf("GetProgress failed: %v", err)
	}
	if p.Reps != 4 || p.Weight != 85 || p.Date != "2025-01-20" {
		t.Errorf("unexpected entry after edit: %+v", p)
	}
	if p.Notes != nil {
		t.Errorf("expected notes to be cleared, got %q", *p.Notes)
	}
}

func TestProgressAddRejectsBadInput(t *testing.T) {
	dataDir := setupTestCLI(t)

	bad := [][]string{
		{"progress", "add", "4", "80", "0"},
		{"progress", "add", "4", "heavy", "5"},
		{"progress", "add", "4", "80", "5", "--date", "next week"},
	}
	for _, args := range bad {
		if err := run(args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
	if err := run("progress", "add", "99", "80", "5"); !errors.Is(err, storage.ErrForeignKey) {
		t.Errorf("expected ErrForeignKey for missing exercise, got %v", err)
	}

	if c := counts(t, openTestDB(t, dataDir)); c.Progress != 7 {
		t.Errorf("Progress = %d, want 7", c.Progress)
	}
}

func TestProgressListAndRecent(t *testing.T) {
	setupTestCLI(t)

	if err := run("progress", "list", "4", "--desc"); err != nil {
		t.Errorf("progress list failed: %v", err)
	}
	if err := run("progress", "recent", "-n", "3"); err != nil {
		t.Errorf("progress recent failed: %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	setupTestCLI(t)
	out := filepath.Join(t.TempDir(), "backup.json")

	if err := run("export", "json", "-o", out); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if err := run("export", "yaml", "-o", filepath.Join(t.TempDir(), "backup.yaml")); err != nil {
		t.Fatalf("yaml export failed: %v", err)
	}

	fresh := setupTestCLI(t)
	if err := run("--no-seed", "import", out); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if err := run("--no-seed", "import", out); err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	c := counts(t, openTestDB(t, fresh))
	if c.Exercises != 16 || c.Workouts != 3 || c.WorkoutExercises != 17 || c.Progress != 7 {
		t.Errorf("unexpected counts after import: %+v", c)
	}
}

func TestExportMarkdown(t *testing.T) {
	setupTestCLI(t)
	out := filepath.Join(t.TempDir(), "bench.md")

	if err := run("export", "markdown", "--exercise", "4", "--since", "2025-01-10", "-o", out); err != nil {
		t.Fatalf("markdown export failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	md := string(data)
	if !strings.Contains(md, "## Bench Press") || !strings.Contains(md, "| 2025-01-13 | 82.5 kg |") {
		t.Errorf("Expected filtered bench press history, got:\n%s", md)
	}
	if strings.Contains(md, "2025-01-06") {
		t.Errorf("Expected entries before --since to be dropped, got:\n%s", md)
	}

	if err := run("export", "markdown", "--since", "01/10/2025"); err == nil {
		t.Error("expected error for invalid --since")
	}
	if err := run("export", "markdown", "--exercise", "abc"); err == nil {
		t.Error("expected error for invalid --exercise")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	setupTestCLI(t)

	if err := run("export", "csv"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	dataDir := setupTestCLI(t)
	dbPath := filepath.Join(dataDir, "gymtrack.db")

	if err := run("stats"); err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if err := run("reset"); err == nil {
		t.Error("expected reset without --yes to fail")
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("database removed without confirmation: %v", err)
	}

	if err := run("reset", "--yes", "--all"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Errorf("expected database to be removed, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dataDir, "kv")); !os.IsNotExist(err) {
		t.Errorf("expected KV store to be removed, stat err = %v", err)
	}
}

func TestResetCorruptDatabase(t *testing.T) {
	dataDir := setupTestCLI(t)
	dbPath := filepath.Join(dataDir, "gymtrack.db")

	garbage := make([]byte, 8192)
	for i := range garbage {
		garbage[i] = byte(i % 251)
	}
	if err := os.WriteFile(dbPath, garbage, 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := run("stats"); err == nil {
		t.Fatal("expected stats to fail on a corrupt database")
	}
	if err := run("reset", "--yes"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if err := run("stats"); err != nil {
		t.Errorf("stats after reset failed: %v", err)
	}
}

func TestTranslateSkipsStores(t *testing.T) {
	dataDir := setupTestCLI(t)

	if err := run("lookup", "translate", "sentadillas"); err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dataDir, "gymtrack.db")); !os.IsNotExist(err) {
		t.Errorf("translate opened the database, stat err = %v", err)
	}
}

func TestLookupWithoutKey(t *testing.T) {
	setupTestCLI(t)

	err := run("lookup", "search", "bench press")
	if err == nil || !strings.Contains(err.Error(), "GYMTRACK_RAPIDAPI_KEY") {
		t.Errorf("expected missing key error, got %v", err)
	}
	if err := run("images"); err == nil {
		t.Error("expected images without a Drive key to fail")
	}
}

func TestLookupGetFromConfig(t *testing.T) {
	setupTestCLI(t)

	var gotKey string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-RapidAPI-Key")
		if r.URL.Path != "/exercises/exercise/0025" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"0025","name":"barbell bench press","bodyPart":"chest","target":"pectorals","equipment":"barbell"}`))
	}))
	defer upstream.Close()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "exercisedb:\n  api_key: test-key\n  base_url: " + upstream.URL + "\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := run("--config", cfgPath, "lookup", "get", "0025"); err != nil {
		t.Fatalf("lookup get failed: %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("X-RapidAPI-Key = %q, want test-key", gotKey)
	}
}

func TestPrefsSet(t *testing.T) {
	dataDir := setupTestCLI(t)

	if err := run("prefs", "set"); err == nil {
		t.Error("expected prefs set without flags to fail")
	}
	if err := run("prefs", "set", "--anime", "Naruto"); err != nil {
		t.Fatalf("prefs set failed: %v", err)
	}
	if err := run("prefs"); err != nil {
		t.Fatalf("prefs failed: %v", err)
	}

	store, err := kv.Open(filepath.Join(dataDir, "kv"))
	if err != nil {
		t.Fatalf("kv.Open failed: %v", err)
	}
	defer store.Close()

	p := prefs.New(store).Get(t.Context())
	if p.SelectedAnime == nil || *p.SelectedAnime != "Naruto" {
		t.Errorf("SelectedAnime = %v, want Naruto", p.SelectedAnime)
	}
	if p.SelectedWallpaper != nil {
		t.Errorf("SelectedWallpaper = %q, want unset", *p.SelectedWallpaper)
	}
}

func TestMaintenanceCmd(t *testing.T) {
	setupTestCLI(t)

	if err := run("maintenance"); err != nil {
		t.Errorf("maintenance failed: %v", err)
	}
}

func TestSeedCmdFillsMissingDefaults(t *testing.T) {
	dataDir := setupTestCLI(t)

	if err := run("--no-seed", "seed"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := run("seed"); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	if c := counts(t, openTestDB(t, dataDir)); c.Exercises != 16 || c.Progress != 7 {
		t.Errorf("unexpected counts: %+v", c)
	}
}
