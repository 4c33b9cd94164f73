// ABOUTME: gymtrack configuration management.
// ABOUTME: YAML file at the XDG config path, defaults, and GYMTRACK_* env overrides.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harperreed/gymtrack/internal/logging"
	"github.com/harperreed/gymtrack/internal/storage"
	"gopkg.in/yaml.v3"
)

// Defaults for settings that are not in the file or the environment.
const (
	DefaultLogLevel            = "info"
	DefaultServerAddr          = "127.0.0.1:8420"
	DefaultExerciseDBHost      = "exercisedb.p.rapidapi.com"
	DefaultMaintenanceSchedule = "@daily"
)

// Config stores gymtrack configuration.
type Config struct {
	// DataDir is the root directory for the database, KV store and logs.
	// Supports ~ expansion. Defaults to ~/.local/share/gymtrack.
	DataDir string `yaml:"data_dir,omitempty"`

	Log         LogConfig         `yaml:"log,omitempty"`
	Cache       CacheConfig       `yaml:"cache,omitempty"`
	ExerciseDB  ExerciseDBConfig  `yaml:"exercisedb,omitempty"`
	Drive       DriveConfig       `yaml:"drive,omitempty"`
	Server      ServerConfig      `yaml:"server,omitempty"`
	Maintenance MaintenanceConfig `yaml:"maintenance,omitempty"`
}

// LogConfig controls the zerolog level and the rotated log file.
type LogConfig struct {
	Level      string `yaml:"level,omitempty"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
}

// CacheConfig controls the response cache.
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl,omitempty"`
}

// ExerciseDBConfig holds the RapidAPI credentials for exercise lookups.
type ExerciseDBConfig struct {
	APIKey  string `yaml:"api_key,omitempty"`
	Host    string `yaml:"host,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// DriveConfig holds the Google Drive API key and the default image folders.
type DriveConfig struct {
	APIKey  string   `yaml:"api_key,omitempty"`
	Folders []string `yaml:"folders,omitempty"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr           string   `yaml:"addr,omitempty"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

// MaintenanceConfig controls the background maintenance job.
type MaintenanceConfig struct {
	Schedule string `yaml:"schedule,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// DBPath returns the SQLite database path inside the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "gymtrack.db")
}

// KVDir returns the badger directory inside the data directory.
func (c *Config) KVDir() string {
	return filepath.Join(c.GetDataDir(), "kv")
}

// LogFile returns the configured log file, defaulting to one next to the database.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return ExpandPath(c.Log.File)
	}
	return logging.FilePathForDB(c.DBPath())
}

// GetLogLevel returns the configured log level, defaulting to info.
func (c *Config) GetLogLevel() string {
	if c.Log.Level == "" {
		return DefaultLogLevel
	}
	return strings.ToLower(c.Log.Level)
}

// GetServerAddr returns the HTTP listen address.
func (c *Config) GetServerAddr() string {
	if c.Server.Addr == "" {
		return DefaultServerAddr
	}
	return c.Server.Addr
}

// GetExerciseDBHost returns the RapidAPI host for exercise lookups.
func (c *Config) GetExerciseDBHost() string {
	if c.ExerciseDB.Host == "" {
		return DefaultExerciseDBHost
	}
	return c.ExerciseDB.Host
}

// GetMaintenanceSchedule returns the cron spec for maintenance.
func (c *Config) GetMaintenanceSchedule() string {
	if c.Maintenance.Schedule == "" {
		return DefaultMaintenanceSchedule
	}
	return c.Maintenance.Schedule
}

// OpenStorage opens the SQLite store in the data directory.
func (c *Config) OpenStorage() (*storage.DB, error) {
	return storage.Open(c.DBPath())
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "gymtrack", "config.yaml")
}

// Load reads config from the default path, then applies environment
// overrides. A missing file yields defaults.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads config from path, then applies environment overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets GYMTRACK_* variables take precedence over the file:
//
//	GYMTRACK_DATA_DIR, GYMTRACK_LOG_LEVEL, GYMTRACK_CACHE_TTL,
//	GYMTRACK_RAPIDAPI_KEY, GYMTRACK_GOOGLE_DRIVE_API_KEY, GYMTRACK_SERVER_ADDR
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("GYMTRACK_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("GYMTRACK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("GYMTRACK_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse GYMTRACK_CACHE_TTL: %w", err)
		}
		cfg.Cache.TTL = ttl
	}
	if v := os.Getenv("GYMTRACK_RAPIDAPI_KEY"); v != "" {
		cfg.ExerciseDB.APIKey = v
	}
	if v := os.Getenv("GYMTRACK_GOOGLE_DRIVE_API_KEY"); v != "" {
		cfg.Drive.APIKey = v
	}
	if v := os.Getenv("GYMTRACK_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	return nil
}

// Save writes config to the default path.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes config to path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
