package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/attendance/internal/timesheet"
	"github.com/joho/godotenv"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// Config holds process-wide settings for the attendance CLI.
type Config struct {
	DBPath     string
	SourceZone string
	LogCalls   bool
}

// DefaultConfig returns a Config with the database under the user's home
// directory and no use-case logging.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath:     filepath.Join(home, ".attendance", "attendance.db"),
		SourceZone: timesheet.DefaultSourceZone,
	}, nil
}

// Load reads configuration from environment variables and ./.env, falling
// back to defaults for any unset values.
func Load() (Config, error) {
	return LoadFrom(DotEnvFile)
}

// LoadFrom is Load with an explicit dotenv path. A missing file is not an
// error. Process environment variables take precedence over the file.
func LoadFrom(dotEnvPath string) (Config, error) {
	dotenv, err := godotenv.Read(dotEnvPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading %s: %w", dotEnvPath, err)
		}
		dotenv = map[string]string{}
	}
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	cfg := Config{SourceZone: timesheet.DefaultSourceZone}

	if v := lookup("ATTENDANCE_DB"); v != "" {
		cfg.DBPath = v
	} else {
		def, err := DefaultConfig()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = def.DBPath
	}
	if v := lookup("ATTENDANCE_SOURCE_TZ"); v != "" {
		cfg.SourceZone = v
	}
	if v := lookup("ATTENDANCE_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg, nil
}
