package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFrom_Missing(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)

	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettingsFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	content := `{
  "addr": "127.0.0.1:9000",
  "allowed_origins": "chrome-extension://a, moz-extension://b",
  "debug": true,
  "max_concurrent_fetches": 4,
  "max_archive_bytes": 1048576,
  "output_dir": "/tmp/archives"
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := LoadSettingsFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", settings.Addr)
	assert.Equal(t, StringArray{"chrome-extension://a", "moz-extension://b"}, settings.AllowedOrigins)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.MaxConcurrentFetches)
	assert.Equal(t, 4, *settings.MaxConcurrentFetches)
	require.NotNil(t, settings.MaxArchiveBytes)
	assert.Equal(t, int64(1048576), *settings.MaxArchiveBytes)
	assert.Equal(t, "/tmp/archives", settings.OutputDir)
	assert.Nil(t, settings.MaxLogFiles)
}

func TestLoadSettingsFrom_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output_dir":"~/grabs","db_path":"~/.sitegrab/state.db"}`), 0644))

	settings, err := LoadSettingsFrom(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "grabs"), settings.OutputDir)
	assert.Equal(t, filepath.Join(home, ".sitegrab", "state.db"), settings.DBPath)
}

func TestLoadSettingsFrom_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := LoadSettingsFrom(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestSaveSettingsTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	workers := 3
	original := &Settings{
		AllowedOrigins:       StringArray{"chrome-extension://a"},
		MaxConcurrentFetches: &workers,
		UserAgent:            "custom",
	}

	require.NoError(t, SaveSettingsTo(path, original))

	loaded, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestStringArray_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  StringArray
	}{
		{name: "array", input: `["a","b"]`, want: StringArray{"a", "b"}},
		{name: "comma separated", input: `"a, b,,c "`, want: StringArray{"a", "b", "c"}},
		{name: "empty string", input: `""`, want: StringArray{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringArray
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"addr", "allowed_origins", "db_path", "debug", "fetch_timeout_seconds",
		"max_archive_bytes", "max_concurrent_fetches", "max_log_files", "output_dir", "user_agent"}, Keys())
}

func TestSettings_Values_OnlySetKeys(t *testing.T) {
	fetches := 4
	settings := &Settings{
		AllowedOrigins:       StringArray{"chrome-extension://abc"},
		MaxConcurrentFetches: &fetches,
		OutputDir:            "/archives",
	}

	values, err := settings.Values()

	require.NoError(t, err)
	assert.Len(t, values, 3)
	assert.Equal(t, float64(4), values["max_concurrent_fetches"])
	assert.Equal(t, "/archives", values["output_dir"])
	assert.Equal(t, []any{"chrome-extension://abc"}, values["allowed_origins"])
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("SITEGRAB_ENV_FILE", "")

	require.NoError(t, os.WriteFile(".env", []byte("SITEGRAB_TEST_A=from-env\nSITEGRAB_TEST_B=from-env\n"), 0644))
	require.NoError(t, os.WriteFile(".env.local", []byte("SITEGRAB_TEST_B=from-local\n"), 0644))
	t.Setenv("SITEGRAB_TEST_A", "")
	t.Setenv("SITEGRAB_TEST_B", "")
	os.Unsetenv("SITEGRAB_TEST_A")
	os.Unsetenv("SITEGRAB_TEST_B")

	require.NoError(t, LoadEnvFiles())

	assert.Equal(t, "from-env", os.Getenv("SITEGRAB_TEST_A"))
	assert.Equal(t, "from-local", os.Getenv("SITEGRAB_TEST_B"))
}

func TestLoadEnvFiles_NoFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SITEGRAB_ENV_FILE", "")

	assert.NoError(t, LoadEnvFiles())
}
