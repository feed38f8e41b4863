package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DiscardsWithoutDebug(t *testing.T) {
	path, err := Setup(Options{MaxFiles: DefaultMaxLogFiles})

	require.NoError(t, err)
	assert.Empty(t, path)
	require.NotNil(t, Logger)
}

func TestSetup_CustomFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Setup(Options{File: logPath})
	require.NoError(t, err)
	assert.Equal(t, logPath, path)

	Logger.Info("hello", "key", "value")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestSetup_RotatedFileInDir(t *testing.T) {
	dir := t.TempDir()

	path, err := Setup(Options{Debug: true, Dir: dir, MaxFiles: 3})
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "sitegrab-"))
	assert.FileExists(t, path)
}

func TestForSession_TagsRecords(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "session.log")
	_, err := Setup(Options{File: logPath})
	require.NoError(t, err)

	ForSession("session-1").Warn("Failed to capture resource", "url", "https://example.com/a.js")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session_id":"session-1"`)
	assert.Contains(t, string(data), `"url":"https://example.com/a.js"`)
}

func TestOptions_ApplyEnv(t *testing.T) {
	t.Setenv(EnvDebug, "1")
	t.Setenv(EnvDebugFile, "/tmp/sitegrab-debug.log")
	t.Setenv(EnvMaxLogFiles, "5")

	opts := Options{MaxFiles: DefaultMaxLogFiles}
	opts.ApplyEnv()

	assert.True(t, opts.Debug)
	assert.Equal(t, "/tmp/sitegrab-debug.log", opts.File)
	assert.Equal(t, 5, opts.MaxFiles)
}

func TestOptions_ApplyEnv_FlagsWin(t *testing.T) {
	t.Setenv(EnvDebugFile, "/tmp/from-env.log")
	t.Setenv(EnvMaxLogFiles, "5")

	opts := Options{File: "/tmp/from-flag.log", MaxFiles: 10}
	opts.ApplyEnv()

	assert.Equal(t, "/tmp/from-flag.log", opts.File)
	assert.Equal(t, 10, opts.MaxFiles)
}

func TestPruneLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"sitegrab-20260101-000000-aaaaaaaa.log",
		"sitegrab-20260102-000000-bbbbbbbb.log",
		"sitegrab-20260103-000000-cccccccc.log",
		"other.log",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	require.NoError(t, pruneLogs(dir, 1))

	assert.NoFileExists(t, filepath.Join(dir, "sitegrab-20260101-000000-aaaaaaaa.log"))
	assert.NoFileExists(t, filepath.Join(dir, "sitegrab-20260102-000000-bbbbbbbb.log"))
	assert.FileExists(t, filepath.Join(dir, "sitegrab-20260103-000000-cccccccc.log"))
	assert.FileExists(t, filepath.Join(dir, "other.log"))
}
