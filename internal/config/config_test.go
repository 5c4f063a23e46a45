package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/attendance/internal/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ATTENDANCE_DB", "")
	t.Setenv("ATTENDANCE_SOURCE_TZ", "")
	t.Setenv("ATTENDANCE_LOG_CALLS", "")
}

func missingDotEnv(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

func TestLoadFrom_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadFrom(missingDotEnv(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".attendance", "attendance.db"), cfg.DBPath)
	assert.Equal(t, timesheet.DefaultSourceZone, cfg.SourceZone)
	assert.False(t, cfg.LogCalls)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("ATTENDANCE_DB", "/tmp/att.db")
	t.Setenv("ATTENDANCE_SOURCE_TZ", "Europe/Berlin")
	t.Setenv("ATTENDANCE_LOG_CALLS", "true")

	cfg, err := LoadFrom(missingDotEnv(t))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/att.db", cfg.DBPath)
	assert.Equal(t, "Europe/Berlin", cfg.SourceZone)
	assert.True(t, cfg.LogCalls)
}

func TestLoadFrom_InvalidBoolIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("ATTENDANCE_DB", "/tmp/att.db")
	t.Setenv("ATTENDANCE_LOG_CALLS", "sometimes")

	cfg, err := LoadFrom(missingDotEnv(t))
	require.NoError(t, err)
	assert.False(t, cfg.LogCalls)
}

func TestLoadFrom_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"ATTENDANCE_DB=/data/attendance.db\nATTENDANCE_SOURCE_TZ=Asia/Tokyo\nATTENDANCE_LOG_CALLS=1\n"), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/attendance.db", cfg.DBPath)
	assert.Equal(t, "Asia/Tokyo", cfg.SourceZone)
	assert.True(t, cfg.LogCalls)

	t.Setenv("ATTENDANCE_SOURCE_TZ", "UTC")
	cfg, err = LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.SourceZone, "process env wins over .env")
}

func TestLoadFrom_UnreadableDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}
