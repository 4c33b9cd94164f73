// ABOUTME: Global zerolog configuration for gymtrack.
// ABOUTME: Console output on stderr plus a lumberjack-rotated log file.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultLogFileName = "gymtrack.log"
	DefaultMaxSizeMB   = 20
	DefaultMaxBackups  = 3
	DefaultMaxAgeDays  = 30
	timeFormat         = "2006-01-02 15:04:05"
)

// Options tunes the rotated log file. Zero values use the defaults.
type Options struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Apply sets the global log level and output writers. Console output goes to
// stderr so stdout stays free for command output and the MCP stdio transport.
// An empty filePath logs to the console only.
func Apply(level, filePath string, opts Options) {
	applyLevel(level)
	log.Logger = zerolog.New(outputs(os.Stderr, filePath, opts)).With().Timestamp().Logger()
}

// ApplyQuiet discards console output and keeps only the file. Used by the
// MCP server where stderr may be shown to the user.
func ApplyQuiet(level, filePath string, opts Options) {
	applyLevel(level)
	log.Logger = zerolog.New(outputs(io.Discard, filePath, opts)).With().Timestamp().Logger()
}

func applyLevel(level string) {
	switch level {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func outputs(console io.Writer, filePath string, opts Options) io.Writer {
	consoleOutput := zerolog.ConsoleWriter{Out: console, TimeFormat: timeFormat}
	if filePath == "" {
		return consoleOutput
	}

	if err := ensureLogDir(filePath); err != nil {
		log.Logger = zerolog.New(consoleOutput).With().Timestamp().Logger()
		log.Error().Err(err).Str("path", filePath).Msg("Failed to prepare log directory; logging to console only")
		return consoleOutput
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    orDefault(opts.MaxSizeMB, DefaultMaxSizeMB),
		MaxBackups: orDefault(opts.MaxBackups, DefaultMaxBackups),
		MaxAge:     orDefault(opts.MaxAgeDays, DefaultMaxAgeDays),
		Compress:   true,
	}

	fileConsole := zerolog.ConsoleWriter{
		Out:        fileWriter,
		TimeFormat: timeFormat,
		NoColor:    true,
	}

	return zerolog.MultiLevelWriter(consoleOutput, fileConsole)
}

// FilePathForDB returns a log file path that lives alongside the database file.
func FilePathForDB(dbPath string) string {
	if dbPath == "" {
		return DefaultLogFileName
	}
	absDBPath, err := filepath.Abs(dbPath)
	if err != nil {
		return filepath.Join(filepath.Dir(dbPath), DefaultLogFileName)
	}
	return filepath.Join(filepath.Dir(absDBPath), DefaultLogFileName)
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o750)
}
