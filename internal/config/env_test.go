package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettings_Defaults(t *testing.T) {
	for _, key := range []string{"FICALC_FORMAT", "FICALC_DEBUG", "FICALC_LOG_LEVEL", "FICALC_NO_COLOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	s, err := ParseSettings()
	require.NoError(t, err)
	assert.Equal(t, Settings{Format: "console", LogLevel: "info"}, s)
}

func TestParseSettings_FromEnvironment(t *testing.T) {
	t.Setenv("FICALC_FORMAT", "json")
	t.Setenv("FICALC_DEBUG", "true")
	t.Setenv("FICALC_LOG_LEVEL", "warn")
	t.Setenv("FICALC_NO_COLOR", "1")

	s, err := ParseSettings()
	require.NoError(t, err)
	assert.Equal(t, "json", s.Format)
	assert.True(t, s.Debug)
	assert.Equal(t, "warn", s.LogLevel)
	assert.True(t, s.NoColor)
}

func TestParseSettings_InvalidBool(t *testing.T) {
	t.Setenv("FICALC_DEBUG", "sometimes")

	_, err := ParseSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestLoadSettings_EnvFile(t *testing.T) {
	t.Setenv("FICALC_FORMAT", "")
	os.Unsetenv("FICALC_FORMAT")
	t.Setenv("FICALC_LOG_LEVEL", "error")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FICALC_FORMAT=csv\nFICALC_LOG_LEVEL=debug\n"), 0644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "csv", s.Format)
	assert.Equal(t, "error", s.LogLevel, "environment wins over the file")

	os.Unsetenv("FICALC_FORMAT")
}

func TestLoadSettings_MissingFileIgnored(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
