// ABOUTME: Tests for global logger configuration.
// ABOUTME: Checks level parsing, file output, and log path derivation.
package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestApplyLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"info", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		applyLevel(tt.in)
		if got := zerolog.GlobalLevel(); got != tt.want {
			t.Errorf("applyLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestApplyQuietWritesFile(t *testing.T) {
	saved := log.Logger
	t.Cleanup(func() {
		log.Logger = saved
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	path := filepath.Join(t.TempDir(), "logs", "gymtrack.log")
	ApplyQuiet("info", path, Options{})
	log.Info().Str("component", "test").Msg("hello file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file missing message: %q", string(data))
	}
}

func TestFilePathForDB(t *testing.T) {
	if got := FilePathForDB(""); got != DefaultLogFileName {
		t.Errorf("FilePathForDB(\"\") = %q", got)
	}
	if got := FilePathForDB("/var/lib/gymtrack/gymtrack.db"); got != "/var/lib/gymtrack/gymtrack.log" {
		t.Errorf("FilePathForDB = %q", got)
	}
}

func TestOrDefault(t *testing.T) {
	if orDefault(0, 5) != 5 || orDefault(-1, 5) != 5 || orDefault(7, 5) != 7 {
		t.Error("orDefault returned unexpected value")
	}
}
